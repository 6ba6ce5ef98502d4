package engine_test

import (
	"strings"
	"testing"

	"github.com/giblfiz/hexwar/pkg/engine"
	"github.com/stretchr/testify/assert"
)

func TestNameReportsHexwarAndVersion(t *testing.T) {
	name := engine.Name()
	assert.True(t, strings.HasPrefix(name, "hexwar "))
}
