package agentic

import (
	"fmt"
	"strings"

	"github.com/spf13/viper"
)

// Config is a serialisable representation of the orchestrator configuration.
// It can be populated from YAML, JSON or environment variables; the zero value
// of every nested field inherits its package default.
type Config struct {
	Name      string              `json:"name" yaml:"name" mapstructure:"name"`
	Version   string              `json:"version" yaml:"version" mapstructure:"version"`
	Routes    map[string]string   `json:"routes" yaml:"routes" mapstructure:"routes"`
	Workflows map[string][]string `json:"workflows" yaml:"workflows" mapstructure:"workflows"`
	Cache     CacheConfig         `json:"cache" yaml:"cache" mapstructure:"cache"`
	Tracing   TracingConfig       `json:"tracing" yaml:"tracing" mapstructure:"tracing"`
}

// CacheConfig controls the best-effort outcome cache.
type CacheConfig struct {
	TTLSeconds int         `json:"ttlSeconds" yaml:"ttlSeconds" mapstructure:"ttlSeconds"`
	Redis      RedisConfig `json:"redis" yaml:"redis" mapstructure:"redis"`
}

// RedisConfig identifies the Redis server backing the cache. An empty Addr
// leaves the cache disabled.
type RedisConfig struct {
	Addr     string `json:"addr" yaml:"addr" mapstructure:"addr"`
	Password string `json:"password" yaml:"password" mapstructure:"password"`
	DB       int    `json:"db" yaml:"db" mapstructure:"db"`
}

// TracingConfig controls the OpenTelemetry stdout exporter.
type TracingConfig struct {
	Enabled    bool   `json:"enabled" yaml:"enabled" mapstructure:"enabled"`
	OutputFile string `json:"outputFile" yaml:"outputFile" mapstructure:"outputFile"`
}

// DefaultConfig returns the configuration the original deployment shipped
// with: the learning-platform routing rules and its three predefined
// workflows.
func DefaultConfig() *Config {
	return &Config{
		Name:    "master_orchestrator",
		Version: "1.0.0",
		Routes: map[string]string{
			"profile_analysis":       "profiling_agent",
			"generate_learning_path": "learning_path_agent",
			"curate_content":         "content_curator_agent",
			"track_progress":         "progress_tracker_agent",
			"motivational_support":   "motivation_coach_agent",
			"assess_skills":          "assessment_agent",
			"industry_insights":      "industry_intelligence_agent",
		},
		Workflows: map[string][]string{
			"new_user_onboarding": {
				"profile_analysis",
				"generate_learning_path",
				"curate_content",
			},
			"progress_check": {
				"track_progress",
				"assess_skills",
				"motivational_support",
			},
			"path_adaptation": {
				"track_progress",
				"profile_analysis",
				"generate_learning_path",
			},
		},
		Cache: CacheConfig{TTLSeconds: 300},
	}
}

// Validate returns an error describing invalid settings or nil.
func (c *Config) Validate() error {
	if c == nil {
		return nil
	}
	if c.Name == "" {
		return fmt.Errorf("name must not be empty")
	}
	if c.Cache.TTLSeconds < 0 {
		return fmt.Errorf("cache.ttlSeconds must be >= 0")
	}
	for name, steps := range c.Workflows {
		if len(steps) == 0 {
			return fmt.Errorf("workflow %v has no steps", name)
		}
		for _, step := range steps {
			if _, ok := c.Routes[step]; !ok {
				return fmt.Errorf("workflow %v step %v has no route", name, step)
			}
		}
	}
	return nil
}

// LoadConfig loads the configuration from a config.yaml found in the working
// directory or ./config, with environment variables taking precedence
// (nested keys joined by underscores, e.g. CACHE_REDIS_ADDR).
func LoadConfig() (*Config, error) {
	v := viper.New()
	v.SetConfigName("config")
	v.SetConfigType("yaml")
	v.AddConfigPath(".")
	v.AddConfigPath("./config")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if err := v.ReadInConfig(); err != nil {
		return nil, err
	}
	config := DefaultConfig()
	if err := v.Unmarshal(config); err != nil {
		return nil, err
	}
	if err := config.Validate(); err != nil {
		return nil, err
	}
	return config, nil
}
