package store

import "github.com/jgoulah/homeaudit/pkg/models"

// RecordStore is an ordered mapping from assessment id to the full record.
// Every write replaces the whole value under its key; there is no
// partial-field update. Reads return independent copies of stored state.
type RecordStore interface {
	// Get returns the record for id, or nil (with no error) when absent
	Get(id string) (*models.Assessment, error)

	// Put inserts or fully replaces the record under id
	Put(id string, assessment models.Assessment) error

	// Delete removes the record for id and returns the prior value,
	// or nil (with no error) when absent
	Delete(id string) (*models.Assessment, error)

	// Values returns all records in ascending id order
	Values() ([]models.Assessment, error)

	// Close releases any underlying resources
	Close() error
}
