// Package config loads the pfcpd example node's YAML configuration.
package config

import (
	"fmt"
	"os"

	"github.com/google/uuid"
	"gopkg.in/yaml.v3"
)

// Config holds the pfcpd node configuration.
type Config struct {
	Node          NodeConfig          `yaml:"node"`
	PFCP          PFCPConfig          `yaml:"pfcp"`
	Observability ObservabilityConfig `yaml:"observability"`
	ClickHouse    ClickHouseConfig    `yaml:"clickhouse"`
}

// NodeConfig identifies this node on the PFCP association.
type NodeConfig struct {
	InstanceID string `yaml:"instance_id"`
	NodeID     string `yaml:"node_id"` // dotted IPv4 or FQDN, per ie.NodeID
}

// PFCPConfig holds the N4 listener configuration.
type PFCPConfig struct {
	BindAddress string `yaml:"bind_address"`
	Port        int    `yaml:"port"`
}

// ObservabilityConfig groups the node's ambient-stack settings.
type ObservabilityConfig struct {
	Metrics MetricsConfig `yaml:"metrics"`
	Tracing TracingConfig `yaml:"tracing"`
	Debug   DebugConfig   `yaml:"debug"`
	Logging LoggingConfig `yaml:"logging"`
}

// MetricsConfig holds Prometheus exposition settings.
type MetricsConfig struct {
	Enabled bool `yaml:"enabled"`
	Port    int  `yaml:"port"`
}

// TracingConfig holds OpenTelemetry exporter settings.
type TracingConfig struct {
	Enabled  bool   `yaml:"enabled"`
	Exporter string `yaml:"exporter"`
	Endpoint string `yaml:"endpoint"`
}

// DebugConfig holds the chi read-only session-inspection HTTP server.
type DebugConfig struct {
	Enabled bool `yaml:"enabled"`
	Port    int  `yaml:"port"`
}

// LoggingConfig holds zap logging settings.
type LoggingConfig struct {
	Level  string `yaml:"level"`
	Format string `yaml:"format"`
}

// ClickHouseConfig holds the optional usage-report sink settings.
type ClickHouseConfig struct {
	Enabled  bool   `yaml:"enabled"`
	DSN      string `yaml:"dsn"`
	Database string `yaml:"database"`
	Table    string `yaml:"table"`
}

// Load reads and defaults the configuration from a YAML file.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config file: %w", err)
	}

	if cfg.Node.InstanceID == "" {
		cfg.Node.InstanceID = uuid.NewString()
	}
	if cfg.PFCP.Port == 0 {
		cfg.PFCP.Port = 8805
	}
	if cfg.Observability.Metrics.Port == 0 {
		cfg.Observability.Metrics.Port = 9098
	}
	if cfg.Observability.Debug.Port == 0 {
		cfg.Observability.Debug.Port = 9096
	}
	if cfg.ClickHouse.Table == "" {
		cfg.ClickHouse.Table = "pfcp_usage_reports"
	}

	return &cfg, nil
}

// Address returns the PFCP bind address in host:port form.
func (c *Config) Address() string {
	return fmt.Sprintf("%s:%d", c.PFCP.BindAddress, c.PFCP.Port)
}
