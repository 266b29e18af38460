package keymap

import (
	"testing"

	"github.com/charmbracelet/bubbles/key"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefaultKeyMap(t *testing.T) {
	km := DefaultKeyMap()

	require.NotNil(t, km)
}

func TestDefaultKeyMap_Keys(t *testing.T) {
	km := DefaultKeyMap()

	tests := []struct {
		name    string
		binding key.Binding
		keys    []string
	}{
		{"Quit", km.Quit, []string{"q", "ctrl+c"}},
		{"Help", km.Help, []string{"?"}},
		{"Back", km.Back, []string{"esc"}},
		{"Up", km.Up, []string{"up", "k"}},
		{"Down", km.Down, []string{"down", "j"}},
		{"Select", km.Select, []string{"enter"}},
		{"NextField", km.NextField, []string{"tab", "down"}},
		{"PrevField", km.PrevField, []string{"shift+tab", "up"}},
		{"Evaluate", km.Evaluate, []string{"enter"}},
		{"Clear", km.Clear, []string{"ctrl+r"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.keys, tt.binding.Keys())
			assert.NotEmpty(t, tt.binding.Help().Key, "binding should have help key")
			assert.NotEmpty(t, tt.binding.Help().Desc, "binding should have help text")
		})
	}
}

func TestDefaultKeyMap_FieldKeysDoNotCaptureLetters(t *testing.T) {
	km := DefaultKeyMap()

	for _, b := range []key.Binding{km.NextField, km.PrevField, km.Evaluate, km.Clear} {
		for _, k := range b.Keys() {
			assert.Greater(t, len(k), 1, "form binding %q would swallow typed text", k)
		}
	}
}

func TestShortHelp(t *testing.T) {
	km := DefaultKeyMap()

	bindings := km.ShortHelp()

	assert.Len(t, bindings, 2)
	assert.Equal(t, km.Quit, bindings[0])
	assert.Equal(t, km.Help, bindings[1])
}

func TestFormHelp(t *testing.T) {
	km := DefaultKeyMap()

	bindings := km.FormHelp()

	require.Len(t, bindings, 4)
	assert.Equal(t, km.Evaluate, bindings[1])
	assert.Equal(t, km.Back, bindings[3])
}

func TestListHelp(t *testing.T) {
	km := DefaultKeyMap()

	assert.Equal(t, []key.Binding{km.Up, km.Down, km.Back}, km.ListHelp())
}

func TestFullHelp(t *testing.T) {
	km := DefaultKeyMap()

	bindings := km.FullHelp()

	assert.Len(t, bindings, 3)
	assert.Len(t, bindings[0], 3)
	assert.Len(t, bindings[1], 4)
	assert.Len(t, bindings[2], 3)
}

func TestMatches(t *testing.T) {
	km := DefaultKeyMap()

	assert.True(t, Matches("q", km.Quit))
	assert.True(t, Matches("ctrl+c", km.Quit))
	assert.True(t, Matches("tab", km.NextField))
	assert.True(t, Matches("shift+tab", km.PrevField))
	assert.False(t, Matches("x", km.Quit))
	assert.False(t, Matches("k", km.PrevField))
}
