package publisher

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/jgoulah/homeaudit/internal/config"
	"github.com/jgoulah/homeaudit/pkg/models"
)

func TestNewRequiresBroker(t *testing.T) {
	_, err := New(config.MQTTConfig{Enabled: true})
	assert.Error(t, err)
}

func TestReadingTopic(t *testing.T) {
	p := &Publisher{topicPrefix: "energy"}
	assert.Equal(t, "energy/a-1/usage", p.readingTopic("a-1"))
}

func TestNewReadingPayload(t *testing.T) {
	assessment := models.Assessment{ID: "a-1", Address: "1 Main St"}
	reading := models.UsageReading{
		Timestamp:   time.Date(2025, 6, 1, 13, 0, 0, 0, time.UTC),
		Consumption: 30,
	}

	payload := newReadingPayload(assessment, reading)
	assert.Equal(t, "a-1", payload.AssessmentID)
	assert.Equal(t, "1 Main St", payload.Address)
	assert.Equal(t, "2025-06-01T13:00:00Z", payload.Timestamp)
	assert.Equal(t, 30.0, payload.Consumption)
}
