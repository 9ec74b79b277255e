package publisher

import (
	"encoding/json"
	"fmt"
	"time"

	mqtt "github.com/eclipse/paho.mqtt.golang"

	"github.com/jgoulah/homeaudit/internal/config"
	"github.com/jgoulah/homeaudit/pkg/models"
)

const defaultTopicPrefix = "homeaudit"

// Publisher sends usage readings to an MQTT broker, one retained message
// per reading, for consumption by dashboards like Home Assistant.
type Publisher struct {
	client      mqtt.Client
	topicPrefix string
}

// New connects to the broker described by the MQTT config
func New(cfg config.MQTTConfig) (*Publisher, error) {
	if cfg.Broker == "" {
		return nil, fmt.Errorf("MQTT broker address is required")
	}

	topicPrefix := cfg.TopicPrefix
	if topicPrefix == "" {
		topicPrefix = defaultTopicPrefix
	}

	// Configure MQTT client options
	opts := mqtt.NewClientOptions()
	opts.AddBroker(fmt.Sprintf("tcp://%s", cfg.Broker))
	opts.SetClientID("homeaudit")
	opts.SetAutoReconnect(true)
	opts.SetConnectRetry(true)
	opts.SetConnectTimeout(10 * time.Second)

	if cfg.Username != "" {
		opts.SetUsername(cfg.Username)
	}
	if cfg.Password != "" {
		opts.SetPassword(cfg.Password)
	}

	// Create and connect client
	client := mqtt.NewClient(opts)
	if token := client.Connect(); token.Wait() && token.Error() != nil {
		return nil, fmt.Errorf("connecting to MQTT broker: %w", token.Error())
	}

	return &Publisher{
		client:      client,
		topicPrefix: topicPrefix,
	}, nil
}

// ReadingPayload is the JSON message published for one usage reading
type ReadingPayload struct {
	AssessmentID string  `json:"assessment_id"`
	Address      string  `json:"address"`
	Timestamp    string  `json:"timestamp"`
	Consumption  float64 `json:"consumption"`
}

// PublishReading sends one usage reading on the assessment's usage topic
func (p *Publisher) PublishReading(assessment models.Assessment, reading models.UsageReading) error {
	payload := newReadingPayload(assessment, reading)

	body, err := json.Marshal(payload)
	if err != nil {
		return fmt.Errorf("encoding payload: %w", err)
	}

	topic := p.readingTopic(assessment.ID)
	if token := p.client.Publish(topic, 1, true, body); token.Wait() && token.Error() != nil {
		return fmt.Errorf("publishing to %s: %w", topic, token.Error())
	}

	return nil
}

func (p *Publisher) readingTopic(assessmentID string) string {
	return fmt.Sprintf("%s/%s/usage", p.topicPrefix, assessmentID)
}

func newReadingPayload(assessment models.Assessment, reading models.UsageReading) ReadingPayload {
	return ReadingPayload{
		AssessmentID: assessment.ID,
		Address:      assessment.Address,
		Timestamp:    reading.Timestamp.Format(time.RFC3339),
		Consumption:  reading.Consumption,
	}
}

// Close disconnects from the MQTT broker
func (p *Publisher) Close() {
	if p.client != nil && p.client.IsConnected() {
		p.client.Disconnect(250)
	}
}
