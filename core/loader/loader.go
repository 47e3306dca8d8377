package loader

import (
	"fmt"

	"github.com/gofiber/fiber/v2"
)

// Feature is the lifecycle contract every application module implements.
type Feature interface {
	// Name returns the unique name of the feature (e.g. "auction", "user").
	Name() string

	// IsEnabled reports whether the feature should be loaded.
	IsEnabled() bool

	// Load registers the feature's routes on the given router.
	Load(app fiber.Router) error
}

// Manager holds the registry of available features.
type Manager struct {
	features []Feature
}

// NewManager creates an empty feature registry.
func NewManager() *Manager {
	return &Manager{}
}

// Register adds a feature to the registry. Registration order is load order.
func (m *Manager) Register(f Feature) {
	m.features = append(m.features, f)
}

// LoadAll loads every enabled feature, stopping at the first failure.
func (m *Manager) LoadAll(app fiber.Router) error {
	for _, f := range m.features {
		if !f.IsEnabled() {
			continue
		}
		if err := f.Load(app); err != nil {
			return fmt.Errorf("failed to load feature %s: %w", f.Name(), err)
		}
	}
	return nil
}

// Names returns the names of all registered features, in load order.
func (m *Manager) Names() []string {
	names := make([]string, 0, len(m.features))
	for _, f := range m.features {
		names = append(names, f.Name())
	}
	return names
}
