package device

import (
	"fmt"
	"sync"
)

// Logger abstracts structured logging so the package stays decoupled
// from the logging implementation.
type Logger interface {
	Debug(msg string, args ...any)
	Info(msg string, args ...any)
	Warn(msg string, args ...any)
	Error(msg string, args ...any)
}

// noopLogger discards all log output. Used when no logger is provided.
type noopLogger struct{}

func (noopLogger) Debug(msg string, args ...any) {}
func (noopLogger) Info(msg string, args ...any)  {}
func (noopLogger) Warn(msg string, args ...any)  {}
func (noopLogger) Error(msg string, args ...any) {}

// Registry is the in-memory device catalogue. It is populated from
// gateway discovery and indexed three ways: by internal ID, by alias
// (topic key), and by hardware address (reconciliation key).
//
// All accessors return copies so callers cannot mutate registry state.
// Safe for concurrent use.
type Registry struct {
	mu        sync.RWMutex
	byID      map[string]*Device
	byAlias   map[string]*Device
	byAddress map[string]*Device
	logger    Logger
}

// NewRegistry creates an empty device registry. Pass nil to disable
// logging.
func NewRegistry(logger Logger) *Registry {
	if logger == nil {
		logger = noopLogger{}
	}
	return &Registry{
		byID:      make(map[string]*Device),
		byAlias:   make(map[string]*Device),
		byAddress: make(map[string]*Device),
		logger:    logger,
	}
}

// Register adds a new device to the registry.
//
// Returns:
//   - ErrInvalidDevice if ID or alias is empty
//   - ErrAliasInUse if the alias belongs to a different device
func (r *Registry) Register(d *Device) error {
	if d == nil || d.ID == "" || d.Alias == "" {
		return fmt.Errorf("%w: id and alias are required", ErrInvalidDevice)
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	if existing, ok := r.byAlias[d.Alias]; ok && existing.ID != d.ID {
		return fmt.Errorf("%w: %q", ErrAliasInUse, d.Alias)
	}
	if old, ok := r.byID[d.ID]; ok {
		r.unindex(old)
	}

	cpy := d.Copy()
	r.index(cpy)

	r.logger.Info("device registered",
		"device_id", cpy.ID,
		"alias", cpy.Alias,
		"model", cpy.Model,
	)
	return nil
}

// Replace swaps the stored device with the given ID for a fresh copy,
// reindexing all lookup keys. Used during discovery reconciliation when
// a known device reappears with updated metadata or capabilities.
func (r *Registry) Replace(d *Device) error {
	if d == nil || d.ID == "" || d.Alias == "" {
		return fmt.Errorf("%w: id and alias are required", ErrInvalidDevice)
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	old, ok := r.byID[d.ID]
	if !ok {
		return fmt.Errorf("%w: %s", ErrDeviceNotFound, d.ID)
	}
	if existing, found := r.byAlias[d.Alias]; found && existing.ID != d.ID {
		return fmt.Errorf("%w: %q", ErrAliasInUse, d.Alias)
	}

	r.unindex(old)
	r.index(d.Copy())

	r.logger.Debug("device replaced", "device_id", d.ID, "alias", d.Alias)
	return nil
}

func (r *Registry) index(d *Device) {
	r.byID[d.ID] = d
	r.byAlias[d.Alias] = d
	if d.Address != "" {
		r.byAddress[d.Address] = d
	}
}

func (r *Registry) unindex(d *Device) {
	delete(r.byID, d.ID)
	delete(r.byAlias, d.Alias)
	if d.Address != "" {
		delete(r.byAddress, d.Address)
	}
}

// GetByID retrieves a device by its internal identifier.
func (r *Registry) GetByID(id string) (*Device, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	d, ok := r.byID[id]
	if !ok {
		return nil, fmt.Errorf("%w: %s", ErrDeviceNotFound, id)
	}
	return d.Copy(), nil
}

// GetByAlias retrieves a device by its topic alias.
func (r *Registry) GetByAlias(alias string) (*Device, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	d, ok := r.byAlias[alias]
	if !ok {
		return nil, fmt.Errorf("%w: alias %q", ErrDeviceNotFound, alias)
	}
	return d.Copy(), nil
}

// GetByAddress retrieves a device by its hardware address.
func (r *Registry) GetByAddress(address string) (*Device, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	d, ok := r.byAddress[address]
	if !ok {
		return nil, fmt.Errorf("%w: address %q", ErrDeviceNotFound, address)
	}
	return d.Copy(), nil
}

// List returns copies of all registered devices. Order is unspecified.
func (r *Registry) List() []*Device {
	r.mu.RLock()
	defer r.mu.RUnlock()

	devices := make([]*Device, 0, len(r.byID))
	for _, d := range r.byID {
		devices = append(devices, d.Copy())
	}
	return devices
}

// Count returns the number of registered devices.
func (r *Registry) Count() int {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return len(r.byID)
}
