package config

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadMissingFile(t *testing.T) {
	cfg, err := Load(filepath.Join(t.TempDir(), "nope.yaml"))
	require.NoError(t, err)

	assert.Equal(t, "homeowner", cfg.GetOwner())
	assert.Equal(t, "assessments.db", cfg.GetDatabase())
	assert.False(t, cfg.MQTT.Enabled)
}

func TestSaveLoadRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")

	want := &Config{
		Owner:    "alice",
		Database: "/var/lib/homeaudit/assessments.db",
		MQTT: MQTTConfig{
			Enabled:     true,
			Broker:      "broker.local:1883",
			Username:    "mqtt-user",
			Password:    "secret",
			TopicPrefix: "energy",
		},
	}
	require.NoError(t, Save(path, want))

	got, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, want, got)
}

func TestEnvOverrides(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, Save(path, &Config{Owner: "alice", Database: "from-file.db"}))

	t.Setenv("HOMEAUDIT_OWNER", "bob")
	t.Setenv("HOMEAUDIT_MQTT_BROKER", "env-broker:1883")

	cfg, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, "bob", cfg.Owner)
	assert.Equal(t, "from-file.db", cfg.Database)
	assert.Equal(t, "env-broker:1883", cfg.MQTT.Broker)
}
