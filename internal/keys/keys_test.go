package keys

import (
	"testing"

	"github.com/charmbracelet/bubbles/key"
	"github.com/stretchr/testify/require"
)

func TestViewer_KeyAssignments(t *testing.T) {
	tests := []struct {
		name     string
		binding  key.Binding
		expected []string
	}{
		{name: "Copy uses c and y", binding: Viewer.Copy, expected: []string{"c", "y"}},
		{name: "ToggleLineNumbers uses n", binding: Viewer.ToggleLineNumbers, expected: []string{"n"}},
		{name: "Reload uses r", binding: Viewer.Reload, expected: []string{"r"}},
		{name: "Up uses k and up", binding: Viewer.Up, expected: []string{"k", "up"}},
		{name: "Down uses j and down", binding: Viewer.Down, expected: []string{"j", "down"}},
		{name: "Quit uses q and ctrl+c", binding: Viewer.Quit, expected: []string{"q", "ctrl+c"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			require.Equal(t, tt.expected, tt.binding.Keys())
		})
	}
}

func TestViewer_HelpTextDefined(t *testing.T) {
	for _, group := range Viewer.FullHelp() {
		for _, b := range group {
			require.NotEmpty(t, b.Help().Key, "binding %v missing help key", b.Keys())
			require.NotEmpty(t, b.Help().Desc, "binding %v missing help desc", b.Keys())
		}
	}
}

func TestViewer_NoDuplicateKeys(t *testing.T) {
	seen := map[string]string{}
	for _, group := range Viewer.FullHelp() {
		for _, b := range group {
			for _, k := range b.Keys() {
				prev, dup := seen[k]
				require.False(t, dup, "key %q bound to both %q and %q", k, prev, b.Help().Desc)
				seen[k] = b.Help().Desc
			}
		}
	}
}

func TestViewerShortHelp(t *testing.T) {
	short := Viewer.ShortHelp()
	require.Len(t, short, 5)
	require.Equal(t, Viewer.Copy.Keys(), short[0].Keys())
}
