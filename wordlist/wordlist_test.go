package wordlist

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestSubstituteBasic(t *testing.T) {
	w := New()
	release := w.Push(map[string][]string{"name": {"Alice", "Bob"}})
	defer release()

	require.Equal(t, "Hello Alice", w.Substitute("Hello {name}"))
	w.Advance("name")
	require.Equal(t, "Hello Bob", w.Substitute("Hello {name}"))
	w.Advance("name")
	require.Equal(t, "Hello Alice", w.Substitute("Hello {name}")) // wraps
}

func TestSubstituteUnknownTokenLeftAlone(t *testing.T) {
	w := New()
	require.Equal(t, "keep {mystery} as-is", w.Substitute("keep {mystery} as-is"))
}

func TestSubstituteExplicitIndexDoesNotAdvance(t *testing.T) {
	w := New()
	release := w.Push(map[string][]string{"n": {"a", "b", "c"}})
	defer release()

	require.Equal(t, "c", w.Substitute("{n#2}"))
	require.Equal(t, "a", w.Substitute("{n}")) // running index unaffected
}

func TestPushPopRestoresPriorFrame(t *testing.T) {
	w := New()
	release := w.Push(map[string][]string{"n": {"outer"}})

	release2 := w.Push(map[string][]string{"n": {"inner"}})
	require.Equal(t, "inner", w.Substitute("{n}"))
	release2()

	require.Equal(t, "outer", w.Substitute("{n}"))
	release()
}

func TestAdvanceOnMissingVariableIsNoop(t *testing.T) {
	w := New()
	require.NotPanics(t, func() { w.Advance("nope") })
}

func TestAdvanceAllMovesEveryVariable(t *testing.T) {
	w := New()
	release := w.Push(map[string][]string{
		"name":  {"Alice", "Bob"},
		"batch": {"A1", "A2", "A3"},
	})
	defer release()

	w.AdvanceAll()
	require.Equal(t, "Bob A2", w.Substitute("{name} {batch}"))
	w.AdvanceAll()
	require.Equal(t, "Alice A3", w.Substitute("{name} {batch}"))
}
