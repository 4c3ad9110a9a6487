package config

import (
	"fmt"
	"strings"
)

// Validate performs business-rule validation on the loaded configuration.
// It must be called after loading; Load calls it automatically.
func (c *Config) Validate() error {
	if c.Server.Port <= 0 || c.Server.Port > 65535 {
		return fmt.Errorf("server.port must be in 1..65535 (got %d)", c.Server.Port)
	}
	if err := c.Storage.validate(); err != nil {
		return fmt.Errorf("storage: %w", err)
	}
	if c.Generator.Delay < 0 {
		return fmt.Errorf("generator.delay must be >= 0 (got %v)", c.Generator.Delay)
	}
	if c.Generator.MaxInputLength <= 0 {
		return fmt.Errorf("generator.max_input_length must be > 0 (got %d)", c.Generator.MaxInputLength)
	}
	if c.Subscription.Delay < 0 {
		return fmt.Errorf("subscription.delay must be >= 0 (got %v)", c.Subscription.Delay)
	}
	if c.RateLimit.GeneratePerMinute < 0 || c.RateLimit.SubscribePerMinute < 0 {
		return fmt.Errorf("rate_limit values must be >= 0")
	}
	if c.RateLimit.CleanupInterval <= 0 {
		return fmt.Errorf("rate_limit.cleanup_interval must be > 0 (got %v)", c.RateLimit.CleanupInterval)
	}
	return nil
}

func (s *StorageConfig) validate() error {
	s.Driver = strings.ToLower(strings.TrimSpace(s.Driver))
	if strings.TrimSpace(s.SlotKey) == "" {
		return fmt.Errorf("slot_key is required")
	}
	if s.RetentionDays < 0 {
		return fmt.Errorf("retention_days must be >= 0 (got %d)", s.RetentionDays)
	}
	if s.RetentionDays > 0 && s.RetentionInterval <= 0 {
		return fmt.Errorf("retention_interval must be > 0 (got %v)", s.RetentionInterval)
	}

	switch s.Driver {
	case DriverMemory:
	case DriverFile:
		if strings.TrimSpace(s.DataDir) == "" {
			return fmt.Errorf("data_dir is required for the %s driver", DriverFile)
		}
	case DriverPostgres:
		if s.Database.DSN == "" {
			return fmt.Errorf("database.dsn is required for the %s driver", DriverPostgres)
		}
		if s.Database.MinConns > s.Database.MaxConns {
			return fmt.Errorf("database.min_conns (%d) exceeds max_conns (%d)", s.Database.MinConns, s.Database.MaxConns)
		}
	case DriverRedis:
		if s.Redis.Addr == "" {
			return fmt.Errorf("redis.addr is required for the %s driver", DriverRedis)
		}
	default:
		return fmt.Errorf("unknown driver %q (want %s, %s, %s or %s)",
			s.Driver, DriverMemory, DriverFile, DriverPostgres, DriverRedis)
	}
	return nil
}
