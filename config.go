package mdnotebook

import (
	"fmt"
	"os"
	"sync"

	"gopkg.in/yaml.v3"

	"github.com/riverfjs/mdnotebook-go/internal/types"
)

// 导出类型别名
type Config = types.Config
type KernelSpec = types.KernelSpec

var (
	defaultConfig     *Config
	defaultConfigOnce sync.Once
)

// DefaultConfig returns the default conversion configuration (singleton).
// Callers that need different settings should copy it first.
func DefaultConfig() *Config {
	defaultConfigOnce.Do(func() {
		defaultConfig = types.DefaultConfig()
	})
	return defaultConfig
}

// LoadConfig reads a YAML configuration file. ${VAR} references are expanded
// from the environment, and keys missing from the file keep their defaults.
func LoadConfig(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	expanded := os.ExpandEnv(string(data))

	cfg := types.DefaultConfig()
	if err := yaml.Unmarshal([]byte(expanded), cfg); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}
	if err := ValidateConfig(cfg); err != nil {
		return nil, err
	}
	return cfg, nil
}

// ValidateConfig rejects settings the notebook writer cannot honor.
func ValidateConfig(cfg *Config) error {
	if cfg == nil {
		return fmt.Errorf("config is nil")
	}
	if cfg.Indent < 0 || cfg.Indent > 8 {
		return fmt.Errorf("indent must be between 0 and 8, got %d", cfg.Indent)
	}
	if cfg.Kernel.Name == "" && (cfg.Kernel.DisplayName != "" || cfg.Kernel.Language != "") {
		return fmt.Errorf("kernel.name is required when other kernel fields are set")
	}
	return nil
}
