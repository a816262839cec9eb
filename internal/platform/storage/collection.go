package storage

import (
	"encoding/json"

	"github.com/rs/zerolog"
)

// Record is anything a Collection can look up by id.
type Record interface {
	RecordID() string
}

// Collection is a typed handle on one named, file-backed sequence of records.
// All operations are full read or full overwrite; there is no locking, so two
// overlapping read-modify-write cycles lose the earlier write.
type Collection[T Record] struct {
	backend Backend
	name    string
	log     zerolog.Logger
}

func NewCollection[T Record](backend Backend, name string, log zerolog.Logger) *Collection[T] {
	return &Collection[T]{
		backend: backend,
		name:    name,
		log:     log.With().Str("collection", name).Logger(),
	}
}

func (c *Collection[T]) Name() string { return c.name }

// Read returns the stored records. A missing collection is created empty; a
// collection that fails to load or parse is reported and treated as empty so
// requests keep working against stale-but-valid state.
func (c *Collection[T]) Read() []T {
	data, exists, err := c.backend.Load(c.name)
	if err != nil {
		c.log.Error().Err(err).Msg("failed to read collection")
		return []T{}
	}
	if !exists {
		if err := c.Write([]T{}); err != nil {
			c.log.Error().Err(err).Msg("failed to initialize collection")
		}
		return []T{}
	}

	var records []T
	if err := json.Unmarshal(data, &records); err != nil {
		c.log.Error().Err(err).Msg("failed to parse collection")
		return []T{}
	}
	if records == nil {
		records = []T{}
	}
	return records
}

// Write serializes the full sequence and overwrites the backing file.
func (c *Collection[T]) Write(records []T) error {
	data, err := json.MarshalIndent(records, "", "  ")
	if err != nil {
		return err
	}
	return c.backend.Store(c.name, data)
}

// FindByID linearly scans for a record; fine while collections stay small.
func (c *Collection[T]) FindByID(id string) (T, bool) {
	for _, record := range c.Read() {
		if record.RecordID() == id {
			return record, true
		}
	}
	var zero T
	return zero, false
}

// FindIndex returns the position of a record, or -1.
func (c *Collection[T]) FindIndex(id string) int {
	for i, record := range c.Read() {
		if record.RecordID() == id {
			return i
		}
	}
	return -1
}
