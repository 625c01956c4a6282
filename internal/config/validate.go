package config

import (
	"fmt"
	"strings"
	"time"
)

// Validate performs business-rule validation on the loaded configuration.
// It must be called after loading; Load calls it automatically.
func (c *Config) Validate() error {
	if c.Server.Port <= 0 || c.Server.Port > 65535 {
		return fmt.Errorf("server.port must be in 1..65535 (got %d)", c.Server.Port)
	}

	if err := c.Log.validate(); err != nil {
		return fmt.Errorf("log: %w", err)
	}

	if c.Registry.CacheTTL < 0 {
		return fmt.Errorf("registry.cache_ttl must be >= 0 (got %v)", c.Registry.CacheTTL)
	}

	if err := c.Table.validate(); err != nil {
		return fmt.Errorf("table: %w", err)
	}

	if c.Cleanup.BatchSize <= 0 {
		return fmt.Errorf("cleanup.batch_size must be > 0 (got %d)", c.Cleanup.BatchSize)
	}
	if c.Cleanup.Grace < 0 {
		return fmt.Errorf("cleanup.grace must be >= 0 (got %v)", c.Cleanup.Grace)
	}

	if c.Metrics.Enabled && !strings.HasPrefix(c.Metrics.Path, "/") {
		return fmt.Errorf("metrics.path must start with / (got %q)", c.Metrics.Path)
	}

	return nil
}

func (l LogConfig) validate() error {
	switch strings.ToLower(l.Level) {
	case "debug", "info", "warn", "warning", "error", "":
	default:
		return fmt.Errorf("unknown level %q", l.Level)
	}
	switch strings.ToLower(l.Format) {
	case "json", "text", "":
	default:
		return fmt.Errorf("unknown format %q", l.Format)
	}
	return nil
}

func (t *TableConfig) validate() error {
	name := strings.TrimSpace(t.Timezone)
	if name == "" {
		name = "UTC"
	}
	loc, err := time.LoadLocation(name)
	if err != nil {
		return fmt.Errorf("timezone %q: %w", t.Timezone, err)
	}
	t.Location = loc
	return nil
}
