package config

import (
	"os"
	"path/filepath"
	"testing"
)

func writeConfig(t *testing.T, content string) string {
	t.Helper()
	tmpDir := t.TempDir()
	configPath := filepath.Join(tmpDir, "config.yaml")
	if err := os.WriteFile(configPath, []byte(content), 0600); err != nil {
		t.Fatalf("failed to write test config: %v", err)
	}
	return configPath
}

func TestLoad_ValidConfig(t *testing.T) {
	configPath := writeConfig(t, `
site:
  id: "test-site"
database:
  path: "/tmp/test.db"
  wal_mode: true
  busy_timeout: 5
mqtt:
  broker:
    host: "localhost"
    port: 1883
    client_id: "test-client"
  qos: 1
bridge:
  base_topic: "zigbee2mqtt"
api:
  host: "0.0.0.0"
  port: 8080
`)

	cfg, err := Load(configPath)
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}

	if cfg.Site.ID != "test-site" {
		t.Errorf("Site.ID = %q, want %q", cfg.Site.ID, "test-site")
	}

	if cfg.Database.Path != "/tmp/test.db" {
		t.Errorf("Database.Path = %q, want %q", cfg.Database.Path, "/tmp/test.db")
	}

	if cfg.Bridge.BaseTopic != "zigbee2mqtt" {
		t.Errorf("Bridge.BaseTopic = %q, want %q", cfg.Bridge.BaseTopic, "zigbee2mqtt")
	}
}

func TestLoad_MissingFile(t *testing.T) {
	_, err := Load("/nonexistent/path/config.yaml")
	if err == nil {
		t.Error("Load() expected error for missing file, got nil")
	}
}

func TestLoad_InvalidYAML(t *testing.T) {
	configPath := writeConfig(t, "invalid: [yaml: content")

	_, err := Load(configPath)
	if err == nil {
		t.Error("Load() expected error for invalid YAML, got nil")
	}
}

func TestLoad_Defaults(t *testing.T) {
	configPath := writeConfig(t, `
site:
  id: "test-site"
`)

	cfg, err := Load(configPath)
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}

	if cfg.Bridge.BaseTopic != "zigbee2mqtt" {
		t.Errorf("default Bridge.BaseTopic = %q, want %q", cfg.Bridge.BaseTopic, "zigbee2mqtt")
	}
	if cfg.Bridge.PermitJoin {
		t.Error("default Bridge.PermitJoin = true, want false")
	}
	if cfg.MQTT.QoS != 1 {
		t.Errorf("default MQTT.QoS = %d, want 1", cfg.MQTT.QoS)
	}
}

func TestLoad_EnvOverrides(t *testing.T) {
	configPath := writeConfig(t, `
site:
  id: "test-site"
bridge:
  base_topic: "zigbee2mqtt"
`)

	t.Setenv("SLATELOGIC_MQTT_HOST", "broker.internal")
	t.Setenv("SLATELOGIC_BRIDGE_BASE_TOPIC", "z2m-east")

	cfg, err := Load(configPath)
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}

	if cfg.MQTT.Broker.Host != "broker.internal" {
		t.Errorf("MQTT.Broker.Host = %q, want %q", cfg.MQTT.Broker.Host, "broker.internal")
	}
	if cfg.Bridge.BaseTopic != "z2m-east" {
		t.Errorf("Bridge.BaseTopic = %q, want %q", cfg.Bridge.BaseTopic, "z2m-east")
	}
}

func TestConfig_Validate(t *testing.T) {
	valid := func() *Config {
		cfg := defaultConfig()
		return cfg
	}

	tests := []struct {
		name    string
		mutate  func(*Config)
		wantErr bool
	}{
		{
			name:    "valid defaults",
			mutate:  func(*Config) {},
			wantErr: false,
		},
		{
			name:    "empty site id",
			mutate:  func(c *Config) { c.Site.ID = "" },
			wantErr: true,
		},
		{
			name:    "empty database path",
			mutate:  func(c *Config) { c.Database.Path = "" },
			wantErr: true,
		},
		{
			name:    "invalid qos",
			mutate:  func(c *Config) { c.MQTT.QoS = 3 },
			wantErr: true,
		},
		{
			name:    "empty base topic",
			mutate:  func(c *Config) { c.Bridge.BaseTopic = "" },
			wantErr: true,
		},
		{
			name:    "base topic with trailing slash",
			mutate:  func(c *Config) { c.Bridge.BaseTopic = "zigbee2mqtt/" },
			wantErr: true,
		},
		{
			name:    "base topic with wildcard",
			mutate:  func(c *Config) { c.Bridge.BaseTopic = "zigbee2mqtt/#" },
			wantErr: true,
		},
		{
			name:    "invalid api port",
			mutate:  func(c *Config) { c.API.Port = 70000 },
			wantErr: true,
		},
		{
			name: "api disabled skips port check",
			mutate: func(c *Config) {
				c.API.Enabled = false
				c.API.Port = 0
			},
			wantErr: false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := valid()
			tt.mutate(cfg)
			err := cfg.Validate()
			if (err != nil) != tt.wantErr {
				t.Errorf("Validate() error = %v, wantErr %v", err, tt.wantErr)
			}
		})
	}
}
