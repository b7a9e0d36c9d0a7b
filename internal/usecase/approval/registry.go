package approval

import (
	"fmt"

	"github.com/saqib1218/FoodApp-Backend-sub000/internal/model"
	"github.com/saqib1218/FoodApp-Backend-sub000/internal/port"
)

// Key identifies a synchronizer by the (entity, action) pair of the change
// requests it handles.
type Key struct {
	Entity string
	Action string
}

// Registry maps (entity, action) pairs to synchronizers. It is populated at
// startup and validated for completeness before any approval runs, so an
// unrecognised action fails fast instead of falling through silently.
type Registry struct {
	syncs map[Key]port.Synchronizer
}

func NewRegistry() *Registry {
	return &Registry{syncs: make(map[Key]port.Synchronizer)}
}

// Register binds a synchronizer to its key. Double registration is a wiring
// bug and errors out.
func (r *Registry) Register(key Key, sync port.Synchronizer) error {
	if _, dup := r.syncs[key]; dup {
		return fmt.Errorf("synchronizer already registered for %s/%s", key.Entity, key.Action)
	}
	r.syncs[key] = sync
	return nil
}

// Lookup returns the synchronizer for the pair, or ErrNoSynchronizer.
func (r *Registry) Lookup(entity, action string) (port.Synchronizer, error) {
	sync, ok := r.syncs[Key{Entity: entity, Action: action}]
	if !ok {
		return nil, fmt.Errorf("%w for %s/%s", ErrNoSynchronizer, entity, action)
	}
	return sync, nil
}

// requiredKeys is the full action set the workflow engine must cover.
var requiredKeys = []Key{
	{Entity: model.EntityKitchen, Action: model.ActionKitchenCreated},
	{Entity: model.EntityKitchen, Action: model.ActionKitchenProfileUpdated},
	{Entity: model.EntityKitchen, Action: model.ActionKitchenAddressUpdated},
	{Entity: model.EntityKitchen, Action: model.ActionKitchenAvailabilityUpdated},
	{Entity: model.EntityKitchen, Action: model.ActionKitchenMediaUploaded},
}

// Validate checks that every known (entity, action) pair has a synchronizer.
func (r *Registry) Validate() error {
	for _, key := range requiredKeys {
		if _, ok := r.syncs[key]; !ok {
			return fmt.Errorf("missing synchronizer for %s/%s", key.Entity, key.Action)
		}
	}
	return nil
}

// DefaultRegistry wires every synchronizer this engine knows about.
func DefaultRegistry() (*Registry, error) {
	r := NewRegistry()

	registrations := []struct {
		key  Key
		sync port.Synchronizer
	}{
		{Key{model.EntityKitchen, model.ActionKitchenCreated}, NewKitchenSynchronizer()},
		{Key{model.EntityKitchen, model.ActionKitchenProfileUpdated}, NewProfileSynchronizer()},
		{Key{model.EntityKitchen, model.ActionKitchenAddressUpdated}, NewAddressSynchronizer()},
		{Key{model.EntityKitchen, model.ActionKitchenAvailabilityUpdated}, NewAvailabilitySynchronizer()},
		{Key{model.EntityKitchen, model.ActionKitchenMediaUploaded}, NewMediaSynchronizer()},
	}
	for _, reg := range registrations {
		if err := r.Register(reg.key, reg.sync); err != nil {
			return nil, err
		}
	}

	if err := r.Validate(); err != nil {
		return nil, err
	}
	return r, nil
}
