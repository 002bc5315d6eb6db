package tui

import (
	"testing"

	"github.com/charmbracelet/bubbles/key"
	"github.com/stretchr/testify/require"
)

func TestKeyMap_ListKeysDoNotOverlap(t *testing.T) {
	bindings := map[string]key.Binding{
		"Up":     DefaultKeyMap.Up,
		"Down":   DefaultKeyMap.Down,
		"Top":    DefaultKeyMap.Top,
		"Bottom": DefaultKeyMap.Bottom,
		"Add":    DefaultKeyMap.Add,
		"Edit":   DefaultKeyMap.Edit,
		"Toggle": DefaultKeyMap.Toggle,
		"Delete": DefaultKeyMap.Delete,
		"Copy":   DefaultKeyMap.Copy,
		"Help":   DefaultKeyMap.Help,
		"Quit":   DefaultKeyMap.Quit,
	}

	owner := map[string]string{}
	for name, b := range bindings {
		for _, k := range b.Keys() {
			prev, taken := owner[k]
			require.False(t, taken, "key %q bound to both %s and %s", k, prev, name)
			owner[k] = name
		}
	}
}

func TestKeyMap_HelpText(t *testing.T) {
	for _, group := range (listHelp{keys: DefaultKeyMap}).FullHelp() {
		for _, b := range group {
			require.NotEmpty(t, b.Help().Key)
			require.NotEmpty(t, b.Help().Desc)
		}
	}
	require.Equal(t, "toggle done", DefaultKeyMap.Toggle.Help().Desc)
}

func TestKeyMap_QuitOnlyCtrlCWhileTyping(t *testing.T) {
	short := (inputHelp{keys: DefaultKeyMap}).ShortHelp()
	require.Contains(t, short, DefaultKeyMap.Exit)
	require.NotContains(t, short, DefaultKeyMap.Quit)
	require.Equal(t, []string{"ctrl+c"}, DefaultKeyMap.Exit.Keys())
}
