package game_test

import (
	"testing"

	"github.com/giblfiz/hexwar/pkg/game"
	"github.com/stretchr/testify/assert"
)

func TestTemplateLengths(t *testing.T) {
	assert.Equal(t, 1, game.TemplateA.Len())
	assert.Equal(t, 2, game.TemplateB.Len())
	assert.Equal(t, 3, game.TemplateC.Len())
	assert.Equal(t, 2, game.TemplateD.Len())
	assert.Equal(t, 1, game.TemplateE.Len())
	assert.Equal(t, 3, game.TemplateF.Len())
}

func TestTemplateEIsChessLike(t *testing.T) {
	actions := game.TemplateE.Actions()
	assert.Len(t, actions, 1)
	assert.Equal(t, game.ActMoveOrRotate, actions[0].Kind)
}

func TestTemplateDSequence(t *testing.T) {
	actions := game.TemplateD.Actions()
	assert.Equal(t, game.ActMove, actions[0].Kind)
	assert.Equal(t, game.ActRotate, actions[1].Kind)
	assert.Equal(t, game.Different, actions[1].Constraint)
}

func TestTemplateCResolvedOpenQuestion(t *testing.T) {
	actions := game.TemplateC.Actions()
	assert.Equal(t, []game.Action{
		{Kind: game.ActMove, Constraint: game.Any},
		{Kind: game.ActMove, Constraint: game.Different},
		{Kind: game.ActRotate, Constraint: game.Any},
	}, actions)
}

func TestParseTemplate(t *testing.T) {
	tpl, ok := game.ParseTemplate("E")
	assert.True(t, ok)
	assert.Equal(t, game.TemplateE, tpl)

	_, ok = game.ParseTemplate("Z")
	assert.False(t, ok)
}
