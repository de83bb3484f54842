package alternatives

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRegistry_LookupReturnsRegisteredSpec(t *testing.T) {
	reg := NewRegistry()
	rules := []FlagRule{{Original: "-name", New: "<name>", Note: "positional", Consume: 1}}
	reg.Register("find", "fd", "https://github.com/sharkdp/fd", rules)

	spec, ok := reg.Lookup("find")
	require.True(t, ok)
	assert.Equal(t, AlternativeSpec{
		Original:       "find",
		Alternate:      "fd",
		FurtherReading: "https://github.com/sharkdp/fd",
		Rules:          rules,
	}, spec)

	_, ok = reg.Lookup("grep")
	assert.False(t, ok)
}

func TestRegistry_LastRegistrationWins(t *testing.T) {
	reg := NewRegistry()
	reg.Register("find", "fd", "", nil)
	reg.Register("ls", "eza", "", nil)
	reg.Register("find", "bfs", "", nil)

	spec, ok := reg.Lookup("find")
	require.True(t, ok)
	assert.Equal(t, "bfs", spec.Alternate)

	// The overwritten key keeps its original position
	assert.Equal(t, []string{"find", "ls"}, reg.Names())
	assert.Equal(t, 2, reg.Len())
}

func TestRegistry_LookupReturnsCopy(t *testing.T) {
	reg := NewRegistry()
	reg.Register("find", "fd", "", []FlagRule{{Original: "-L", New: "-L"}})

	spec, _ := reg.Lookup("find")
	spec.Rules[0].New = "changed"

	again, _ := reg.Lookup("find")
	assert.Equal(t, "-L", again.Rules[0].New)
}

func TestRegistry_AllIsOrderedAndRestartable(t *testing.T) {
	reg := NewRegistry()
	reg.Register("find", "fd", "", nil)
	reg.Register("ls", "eza", "", nil)
	reg.Register("cat", "bat", "", nil)

	collect := func() []string {
		var pairs []string
		for name, spec := range reg.All() {
			pairs = append(pairs, name+"->"+spec.Alternate)
		}
		return pairs
	}

	want := []string{"find->fd", "ls->eza", "cat->bat"}
	assert.Equal(t, want, collect())
	assert.Equal(t, want, collect(), "second iteration starts from the beginning")

	t.Run("stops early", func(t *testing.T) {
		var seen []string
		for name := range reg.All() {
			seen = append(seen, name)
			if name == "ls" {
				break
			}
		}
		assert.Equal(t, []string{"find", "ls"}, seen)
	})
}

func TestAlternativeSpec_Index(t *testing.T) {
	spec := AlternativeSpec{
		Original:  "find",
		Alternate: "fd",
		Rules: []FlagRule{
			{Original: "-ls", New: "-l"},
			{Original: "-type", New: "-t", Consume: 1},
			{Original: "-ls", New: "-x ls -dgils"},
		},
	}

	index := spec.Index()
	require.Len(t, index, 2)
	require.Len(t, index["-ls"], 2)
	assert.Equal(t, "-l", index["-ls"][0].New)
	assert.Equal(t, "-x ls -dgils", index["-ls"][1].New)
	assert.Equal(t, "-t", index["-type"][0].New)
}
