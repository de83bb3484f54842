package report

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"terminalist/internal/alternatives"
)

func findSpec() alternatives.AlternativeSpec {
	return alternatives.AlternativeSpec{
		Original:  "find",
		Alternate: "fd",
		Rules: []alternatives.FlagRule{
			{Original: "-name", New: "<name>", Note: "The name argument does not have a flag.", Consume: 1},
			{Original: "-empty", New: "-t empty"},
			{Original: "-ls", New: "-l", Note: "closest in spirit"},
			{Original: "-ls", New: "-x ls -dgils", Note: "identical output"},
			{Original: "-type", New: "-t", Consume: 1},
		},
	}
}

func flagsOf(matches []Match) []string {
	flags := make([]string, 0, len(matches))
	for _, m := range matches {
		flags = append(flags, m.Flag)
	}
	return flags
}

func TestTranslate_PreservesOrderWithoutDeduplication(t *testing.T) {
	matches := Translate(findSpec(), []string{"-empty", "-ls", "-empty"}, true)
	assert.Equal(t, []string{"-empty", "-ls", "-empty"}, flagsOf(matches))
}

func TestTranslate_FanOut(t *testing.T) {
	matches := Translate(findSpec(), []string{".", "-ls"}, true)
	require.Len(t, matches, 1)
	require.Len(t, matches[0].Rules, 2)
	assert.Equal(t, "-l", matches[0].Rules[0].New)
	assert.Equal(t, "-x ls -dgils", matches[0].Rules[1].New)
}

func TestTranslate_IgnoresUnknownTokens(t *testing.T) {
	matches := Translate(findSpec(), []string{".", "-newer", "foo.txt", "-fstype", "nfs"}, true)
	assert.Empty(t, matches)

	assert.Empty(t, Translate(findSpec(), nil, true))
}

func TestTranslate_Operands(t *testing.T) {
	// "-empty" is the value of -name here, not a flag
	args := []string{".", "-name", "-empty", "-type", "f"}

	t.Run("skipped", func(t *testing.T) {
		matches := Translate(findSpec(), args, true)
		assert.Equal(t, []string{"-name", "-type"}, flagsOf(matches))
	})

	t.Run("rescanned", func(t *testing.T) {
		matches := Translate(findSpec(), args, false)
		assert.Equal(t, []string{"-name", "-empty", "-type"}, flagsOf(matches))
	})

	t.Run("operand past the end", func(t *testing.T) {
		matches := Translate(findSpec(), []string{"-type"}, true)
		assert.Equal(t, []string{"-type"}, flagsOf(matches))
	})
}

func TestTranslate_KnownFlagInOperandPosition(t *testing.T) {
	args := []string{"-name", "-type", "-name"}

	// -type is the value of the first -name and is not reported on its own
	assert.Equal(t, []string{"-name", "-name"}, flagsOf(Translate(findSpec(), args, true)))
	assert.Equal(t, []string{"-name", "-type", "-name"}, flagsOf(Translate(findSpec(), args, false)))
}
