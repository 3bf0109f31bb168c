package editor

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestContentSyncFocusGuard(t *testing.T) {
	s := NewContentSync("<p>initial</p>")

	// Without focus, differing external content replaces the document.
	assert.True(t, s.ApplyExternal("<p>fetched</p>"))
	assert.Equal(t, "<p>fetched</p>", s.Content())

	// While focused, the editor's document is the source of truth.
	s.Focus()
	s.Edit("<p>typing</p>")
	assert.False(t, s.ApplyExternal("<p>late fetch</p>"))
	assert.Equal(t, "<p>typing</p>", s.Content())

	// Blur lifts the guard again.
	s.Blur()
	assert.True(t, s.ApplyExternal("<p>late fetch</p>"))
	assert.Equal(t, "<p>late fetch</p>", s.Content())
}

func TestContentSyncIgnoresEqualExternalContent(t *testing.T) {
	s := NewContentSync("<p>same</p>")
	assert.False(t, s.ApplyExternal("<p>same</p>"))
}

func TestContentSyncEditAlwaysWins(t *testing.T) {
	s := NewContentSync("")
	s.Edit("<p>a</p>")
	assert.Equal(t, "<p>a</p>", s.Content())
	s.Focus()
	s.Edit("<p>b</p>")
	assert.Equal(t, "<p>b</p>", s.Content())
	assert.True(t, s.Focused())
}
