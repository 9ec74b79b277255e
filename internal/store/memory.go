package store

import (
	"sort"
	"sync"

	"github.com/jgoulah/homeaudit/pkg/models"
)

// Memory is an in-memory RecordStore with the same value semantics as the
// SQLite store. Useful in tests and for throwaway runs.
type Memory struct {
	mu      sync.RWMutex
	records map[string]models.Assessment
}

// NewMemory constructs an empty in-memory store
func NewMemory() *Memory {
	return &Memory{records: make(map[string]models.Assessment)}
}

// Get retrieves an assessment by id, returning nil if it doesn't exist
func (m *Memory) Get(id string) (*models.Assessment, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	a, ok := m.records[id]
	if !ok {
		return nil, nil
	}
	cp := a.Clone()
	return &cp, nil
}

// Put inserts an assessment, replacing any existing record under the same id
func (m *Memory) Put(id string, assessment models.Assessment) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.records[id] = assessment.Clone()
	return nil
}

// Delete removes an assessment and returns the prior value, or nil if absent
func (m *Memory) Delete(id string) (*models.Assessment, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	a, ok := m.records[id]
	if !ok {
		return nil, nil
	}
	delete(m.records, id)
	cp := a.Clone()
	return &cp, nil
}

// Values retrieves all assessments ordered by id
func (m *Memory) Values() ([]models.Assessment, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	out := make([]models.Assessment, 0, len(m.records))
	for _, a := range m.records {
		out = append(out, a.Clone())
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out, nil
}

// Close is a no-op for the in-memory store
func (m *Memory) Close() error {
	return nil
}
