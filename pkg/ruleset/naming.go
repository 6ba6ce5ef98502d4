package ruleset

import (
	"fmt"
	"hash/fnv"
	"sort"

	"github.com/giblfiz/hexwar/pkg/piece"
)

// adjectives and nouns together give 4096 possible two-word names; indexed
// by six bits each out of a signature hash (spec.md §4.12).
var adjectives = [64]string{
	"red", "blue", "gold", "dark", "pale", "wild", "calm", "bold",
	"swift", "slow", "warm", "cold", "soft", "hard", "deep", "high",
	"iron", "silk", "jade", "ruby", "onyx", "opal", "amber", "coral",
	"quick", "still", "bright", "dim", "fresh", "old", "new", "lost",
	"stone", "glass", "steel", "brass", "copper", "silver", "bronze", "chrome",
	"sharp", "blunt", "keen", "dull", "pure", "mixed", "raw", "fine",
	"north", "south", "east", "west", "inner", "outer", "upper", "lower",
	"first", "last", "prime", "dual", "twin", "lone", "true", "void",
}

var nouns = [64]string{
	"wolf", "bear", "hawk", "lion", "fox", "owl", "elk", "ram",
	"oak", "pine", "elm", "ash", "fern", "moss", "vine", "root",
	"storm", "flame", "frost", "tide", "wind", "dust", "mist", "haze",
	"crown", "blade", "shield", "helm", "lance", "bow", "staff", "ring",
	"tower", "gate", "wall", "bridge", "path", "road", "trail", "pass",
	"dawn", "dusk", "noon", "night", "moon", "star", "sun", "sky",
	"peak", "vale", "cave", "lake", "river", "shore", "cliff", "ridge",
	"forge", "anvil", "hammer", "arrow", "spear", "axe", "sword", "torch",
}

// Signature canonicalizes r's army composition: piece lists are sorted so
// that rearranging pieces never changes the signature, while each side's
// king is kept as a separate stability key (spec.md §4.12).
func Signature(r RuleSet) string {
	return fmt.Sprintf("%s:%v|%s:%v",
		piece.Get(r.WhiteKing).Code, sortedCodes(r.WhitePieces),
		piece.Get(r.BlackKing).Code, sortedCodes(r.BlackPieces))
}

func sortedCodes(ids []piece.ID) []string {
	codes := make([]string, len(ids))
	for i, id := range ids {
		codes[i] = piece.Get(id).Code
	}
	sort.Strings(codes)
	return codes
}

// Name derives r's deterministic human-readable name from its Signature: the
// same composition always yields the same name, regardless of position or
// facing differences.
func Name(r RuleSet) string {
	return nameFromSignature(Signature(r))
}

func nameFromSignature(sig string) string {
	h := fnv.New64a()
	_, _ = h.Write([]byte(sig))
	sum := h.Sum64()

	adjIdx := (sum >> 6) & 0x3F
	nounIdx := sum & 0x3F
	return fmt.Sprintf("%s-%s", adjectives[adjIdx], nouns[nounIdx])
}
