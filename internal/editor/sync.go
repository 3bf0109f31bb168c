package editor

import "sync"

// ContentSync is the focus guard between the live editor document and
// content arriving from elsewhere (typically an async fetch finishing after
// the editor mounted). While the editor has focus its document is the source
// of truth and external updates are ignored; without focus, a differing
// external update replaces the document.
type ContentSync struct {
	mu      sync.Mutex
	content string
	focused bool
}

func NewContentSync(initial string) *ContentSync {
	return &ContentSync{content: initial}
}

func (s *ContentSync) Focus() {
	s.mu.Lock()
	s.focused = true
	s.mu.Unlock()
}

func (s *ContentSync) Blur() {
	s.mu.Lock()
	s.focused = false
	s.mu.Unlock()
}

func (s *ContentSync) Focused() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.focused
}

// Edit records a change made inside the editor; it always wins.
func (s *ContentSync) Edit(content string) {
	s.mu.Lock()
	s.content = content
	s.mu.Unlock()
}

// ApplyExternal offers externally fetched content. It reports whether the
// document was replaced: never while focused, and only when the incoming
// content actually differs.
func (s *ContentSync) ApplyExternal(content string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.focused || content == s.content {
		return false
	}
	s.content = content
	return true
}

func (s *ContentSync) Content() string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.content
}
