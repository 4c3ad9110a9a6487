package seeder

import (
	"errors"
	"fmt"
	"strings"

	"github.com/ilyakaznacheev/cleanenv"

	"github.com/heartmarshall/captionkit-backend/internal/domain"
)

// Config holds seeder pipeline settings.
type Config struct {
	Prompts   []string `yaml:"prompts"    env:"SEEDER_PROMPTS"    env-separator:"," env-default:"morning coffee routine,my first marathon,weekend skincare haul,building a side project,street food in Bangkok"`
	Styles    []string `yaml:"styles"     env:"SEEDER_STYLES"     env-separator:","`
	Niches    []string `yaml:"niches"     env:"SEEDER_NICHES"     env-separator:","`
	PerPrompt int      `yaml:"per_prompt" env:"SEEDER_PER_PROMPT" env-default:"2"`
	Seed      uint64   `yaml:"seed"       env:"SEEDER_SEED"       env-default:"1"`
	DryRun    bool     `yaml:"dry_run"    env:"SEEDER_DRY_RUN"`
}

// LoadConfig reads the YAML file at path, when given, then the environment.
// An explicit path must exist.
func LoadConfig(path string) (*Config, error) {
	var (
		cfg Config
		err error
	)
	if path != "" {
		err = cleanenv.ReadConfig(path, &cfg)
	} else {
		err = cleanenv.ReadEnv(&cfg)
	}
	if err != nil {
		return nil, fmt.Errorf("seeder config: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("seeder config: %w", err)
	}
	return &cfg, nil
}

// Validate rejects names the generator would silently replace with a default.
func (c Config) Validate() error {
	var errs []error
	if c.PerPrompt <= 0 {
		errs = append(errs, fmt.Errorf("per_prompt must be > 0 (got %d)", c.PerPrompt))
	}
	for _, s := range c.Styles {
		if !domain.Style(strings.ToLower(strings.TrimSpace(s))).IsValid() {
			errs = append(errs, fmt.Errorf("unknown style %q", s))
		}
	}
	for _, n := range c.Niches {
		if !domain.Niche(strings.ToLower(strings.TrimSpace(n))).IsValid() {
			errs = append(errs, fmt.Errorf("unknown niche %q", n))
		}
	}
	return errors.Join(errs...)
}
