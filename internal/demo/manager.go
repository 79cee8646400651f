// internal/demo/manager.go
package demo

import (
	"errors"
	"fmt"
	"slices"
	"sync"

	"github.com/bethropolis/primer/internal/event"
	"github.com/bethropolis/primer/internal/logger"
)

var (
	ErrEmptyName     = errors.New("demo name cannot be empty")
	ErrDuplicateDemo = errors.New("demo already registered")
	ErrUnknownDemo   = errors.New("unknown demo")
)

// Manager handles the registration and execution of demos.
type Manager struct {
	mu    sync.RWMutex
	demos map[string]Demo // Registered demos by name
}

// NewManager creates a new demo manager.
func NewManager() *Manager {
	return &Manager{
		demos: make(map[string]Demo),
	}
}

// Register adds a demo instance to the manager.
func (m *Manager) Register(d Demo) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	name := d.Name()
	if name == "" {
		return fmt.Errorf("demo registration failed: %w", ErrEmptyName)
	}
	if _, exists := m.demos[name]; exists {
		return fmt.Errorf("demo registration failed: '%s': %w", name, ErrDuplicateDemo)
	}

	m.demos[name] = d
	logger.DebugTagf("demo", "Demo Manager: Registered demo '%s'", name)
	return nil
}

// Get returns a registered demo by name.
func (m *Manager) Get(name string) (Demo, bool) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	d, exists := m.demos[name]
	return d, exists
}

// Names returns registered demo names in ascending order.
func (m *Manager) Names() []string {
	m.mu.RLock()
	names := make([]string, 0, len(m.demos))
	for name := range m.demos {
		names = append(names, name)
	}
	m.mu.RUnlock()

	slices.Sort(names)
	return names
}

// Run executes the named demo, dispatching lifecycle events on env.Events.
func (m *Manager) Run(name string, env *Env, args []string) error {
	d, ok := m.Get(name)
	if !ok {
		return fmt.Errorf("%w '%s'", ErrUnknownDemo, name)
	}

	env.Events.Dispatch(event.TypeDemoStarted, event.DemoData{Name: name, Args: args})
	logger.InfoTagf("demo", "Demo Manager: Running '%s' with %d argument(s)", name, len(args))

	if err := d.Run(env, args); err != nil {
		env.Events.Dispatch(event.TypeDemoFailed, event.DemoFailedData{Name: name, Err: err})
		return fmt.Errorf("demo '%s': %w", name, err)
	}

	env.Events.Dispatch(event.TypeDemoFinished, event.DemoData{Name: name, Args: args})
	return nil
}
