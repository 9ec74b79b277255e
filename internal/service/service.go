// Package service implements the assessment CRUD and domain logic on top of
// a RecordStore. All mutating operations validate their input before any
// store write, so a failed call leaves stored state exactly as it was.
package service

import (
	"fmt"
	"time"

	"github.com/jgoulah/homeaudit/internal/store"
	"github.com/jgoulah/homeaudit/pkg/models"
)

// DefaultOwner is used when no caller identity is configured
const DefaultOwner = "homeowner"

// Service provides assessment operations backed by a RecordStore
type Service struct {
	store  store.RecordStore
	ids    IdentifierSource
	clock  ClockSource
	caller CallerIdentity
}

// New constructs a Service. Nil sources fall back to production defaults:
// UUID ids, system clock, and the DefaultOwner identity.
func New(st store.RecordStore, ids IdentifierSource, clock ClockSource, caller CallerIdentity) *Service {
	if ids == nil {
		ids = UUIDSource{}
	}
	if clock == nil {
		clock = NewSystemClock()
	}
	if caller == nil {
		caller = StaticIdentity(DefaultOwner)
	}
	return &Service{store: st, ids: ids, clock: clock, caller: caller}
}

// validatePayload applies the field rules shared by create and update
func validatePayload(p models.AssessmentPayload) error {
	if p.Address == "" {
		return &ValidationError{Field: "address", Reason: "must not be empty"}
	}
	if p.EfficiencyRating <= 0 {
		return &ValidationError{Field: "efficiency_rating", Reason: "must be greater than zero"}
	}
	if p.CostSavings <= 0 {
		return &ValidationError{Field: "cost_savings", Reason: "must be greater than zero"}
	}
	return nil
}

// Create validates the payload and stores a new assessment. The id, owner,
// and timestamps are assigned here and never come from the caller.
func (s *Service) Create(p models.AssessmentPayload) (models.Assessment, error) {
	if err := validatePayload(p); err != nil {
		return models.Assessment{}, err
	}

	now := s.clock.Now()
	assessment := models.Assessment{
		ID:               s.ids.NewID(),
		Owner:            s.caller.Current(),
		Address:          p.Address,
		AssessmentDate:   now,
		EfficiencyRating: p.EfficiencyRating,
		Recommendations:  p.Recommendations,
		CostSavings:      p.CostSavings,
		CreatedAt:        now,
		UsageHistory:     []models.UsageReading{},
	}

	if err := s.store.Put(assessment.ID, assessment); err != nil {
		return models.Assessment{}, fmt.Errorf("storing assessment: %w", err)
	}

	return assessment, nil
}

// Get retrieves an assessment by id
func (s *Service) Get(id string) (models.Assessment, error) {
	assessment, err := s.load(id)
	if err != nil {
		return models.Assessment{}, err
	}
	return *assessment, nil
}

// List returns all assessments in the store's key order
func (s *Service) List() ([]models.Assessment, error) {
	values, err := s.store.Values()
	if err != nil {
		return nil, fmt.Errorf("listing assessments: %w", err)
	}
	return values, nil
}

// Update merges the payload into an existing assessment. The id, owner,
// creation timestamp, and usage history are preserved verbatim; UpdatedAt
// is restamped. Payload fields are validated the same way as on create.
func (s *Service) Update(id string, p models.AssessmentPayload) (models.Assessment, error) {
	if err := validatePayload(p); err != nil {
		return models.Assessment{}, err
	}

	assessment, err := s.load(id)
	if err != nil {
		return models.Assessment{}, err
	}

	assessment.Address = p.Address
	assessment.EfficiencyRating = p.EfficiencyRating
	assessment.Recommendations = p.Recommendations
	assessment.CostSavings = p.CostSavings
	now := s.clock.Now()
	assessment.UpdatedAt = &now

	if err := s.store.Put(id, *assessment); err != nil {
		return models.Assessment{}, fmt.Errorf("storing assessment: %w", err)
	}

	return *assessment, nil
}

// Delete removes an assessment and returns the removed record
func (s *Service) Delete(id string) (models.Assessment, error) {
	if id == "" {
		return models.Assessment{}, &ValidationError{Field: "id", Reason: "must not be empty"}
	}

	removed, err := s.store.Delete(id)
	if err != nil {
		return models.Assessment{}, fmt.Errorf("deleting assessment: %w", err)
	}
	if removed == nil {
		return models.Assessment{}, &NotFoundError{ID: id}
	}

	return *removed, nil
}

// AppendUsage records a consumption reading against an assessment. Readings
// are kept in append order and are never removed.
func (s *Service) AppendUsage(id string, timestamp time.Time, consumption float64) (models.Assessment, error) {
	assessment, err := s.load(id)
	if err != nil {
		return models.Assessment{}, err
	}

	assessment.UsageHistory = append(assessment.UsageHistory, models.UsageReading{
		Timestamp:   timestamp,
		Consumption: consumption,
	})

	if err := s.store.Put(id, *assessment); err != nil {
		return models.Assessment{}, fmt.Errorf("storing assessment: %w", err)
	}

	return *assessment, nil
}

// UsageHistory returns the readings recorded against an assessment, in
// append order
func (s *Service) UsageHistory(id string) ([]models.UsageReading, error) {
	assessment, err := s.load(id)
	if err != nil {
		return nil, err
	}
	return assessment.UsageHistory, nil
}

// TotalConsumption sums the consumption over an assessment's usage history
func (s *Service) TotalConsumption(id string) (float64, error) {
	assessment, err := s.load(id)
	if err != nil {
		return 0, err
	}

	var total float64
	for _, reading := range assessment.UsageHistory {
		total += reading.Consumption
	}
	return total, nil
}

// HighEfficiency returns the assessments whose efficiency rating meets or
// exceeds the threshold, via a linear scan over all records
func (s *Service) HighEfficiency(threshold float64) ([]models.Assessment, error) {
	if threshold <= 0 {
		return nil, &ValidationError{Field: "threshold", Reason: "must be greater than zero"}
	}

	values, err := s.store.Values()
	if err != nil {
		return nil, fmt.Errorf("listing assessments: %w", err)
	}

	matches := []models.Assessment{}
	for _, a := range values {
		if a.EfficiencyRating >= threshold {
			matches = append(matches, a)
		}
	}
	return matches, nil
}

// load fetches a record, translating empty ids and missing records into the
// service error taxonomy
func (s *Service) load(id string) (*models.Assessment, error) {
	if id == "" {
		return nil, &ValidationError{Field: "id", Reason: "must not be empty"}
	}

	assessment, err := s.store.Get(id)
	if err != nil {
		return nil, fmt.Errorf("reading assessment: %w", err)
	}
	if assessment == nil {
		return nil, &NotFoundError{ID: id}
	}
	return assessment, nil
}
