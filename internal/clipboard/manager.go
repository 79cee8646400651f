package clipboard

import (
	"fmt"
	"sync"

	"github.com/atotto/clipboard"
	"github.com/bethropolis/primer/internal/logger"
)

// Manager holds the last copied text and optionally mirrors it to the
// system clipboard.
type Manager struct {
	mu          sync.Mutex
	system      bool
	clipboard   string
	writeSystem func(string) error
}

// NewManager creates a clipboard manager. With system set, Copy also
// writes to the operating system clipboard.
func NewManager(system bool) *Manager {
	return &Manager{
		system:      system,
		writeSystem: clipboard.WriteAll,
	}
}

// SystemAvailable reports whether a system clipboard backend was found.
func SystemAvailable() bool {
	return !clipboard.Unsupported
}

// Copy stores text. A system clipboard failure is returned but the
// internal copy is kept.
func (m *Manager) Copy(text string) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.clipboard = text
	logger.DebugTagf("clipboard", "ClipboardManager: Copied %d bytes", len(text))

	if !m.system {
		return nil
	}
	if err := m.writeSystem(text); err != nil {
		logger.Warnf("ClipboardManager: system clipboard unavailable, kept internal copy: %v", err)
		return fmt.Errorf("system clipboard write failed: %w", err)
	}
	return nil
}

// Contents returns the last copied text.
func (m *Manager) Contents() string {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.clipboard
}

// UsesSystem reports whether copies are mirrored to the system clipboard.
func (m *Manager) UsesSystem() bool {
	return m.system
}
