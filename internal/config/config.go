// Package config loads the resumake YAML configuration, with .env support
// and environment-variable expansion inside the config file.
package config

import (
	"fmt"
	"os"

	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"
)

// Config is the application configuration.
type Config struct {
	OpenAI OpenAIConfig `yaml:"openai"`
	Output OutputConfig `yaml:"output"`
}

// OpenAIConfig configures the optional content-improvement API. The key is
// normally supplied as ${OPENAI_API_KEY} in the config file or left unset.
type OpenAIConfig struct {
	APIKey   string `yaml:"api_key,omitempty"`
	Model    string `yaml:"model,omitempty"`
	Disabled bool   `yaml:"disabled,omitempty"`
}

// OutputConfig configures export.
type OutputConfig struct {
	Path     string `yaml:"path,omitempty"`
	Template string `yaml:"template,omitempty"`
}

// Enabled reports whether the improvement API should be used.
func (o OpenAIConfig) Enabled() bool {
	return !o.Disabled && o.APIKey != ""
}

// Default returns the built-in configuration, including the API key from the
// environment when present.
func Default() *Config {
	cfg := &Config{}
	cfg.applyDefaults()
	return cfg
}

// Load reads the configuration file at path. A missing file falls back to
// defaults unless required is true. Environment variables referenced in the
// file are expanded before unmarshalling; a .env file in the working
// directory is loaded first when present.
func Load(path string, required bool) (*Config, error) {
	// .env is optional; a missing file is not an error.
	_ = godotenv.Load()

	if _, err := os.Stat(path); os.IsNotExist(err) {
		if required {
			return nil, fmt.Errorf("configuration file not found: %s", path)
		}
		return Default(), nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read config file: %w", err)
	}

	var cfg Config
	if err := yaml.Unmarshal([]byte(os.ExpandEnv(string(data))), &cfg); err != nil {
		return nil, fmt.Errorf("unmarshal config: %w", err)
	}

	cfg.applyDefaults()
	return &cfg, nil
}

func (c *Config) applyDefaults() {
	if c.OpenAI.APIKey == "" {
		c.OpenAI.APIKey = os.Getenv("OPENAI_API_KEY")
	}
	if c.OpenAI.Model == "" {
		c.OpenAI.Model = "gpt-3.5-turbo"
	}
	if c.Output.Path == "" {
		c.Output.Path = "resume_improved.md"
	}
	if c.Output.Template == "" {
		c.Output.Template = "default"
	}
}

const exampleConfig = `# resumake configuration
openai:
  # Read from the environment so the key never lands in the file.
  api_key: ${OPENAI_API_KEY}
  model: gpt-3.5-turbo

output:
  path: resume_improved.md
  template: default
`

// Init writes a starter configuration file. An existing file is only
// overwritten when force is set.
func Init(path string, force bool) error {
	if _, err := os.Stat(path); err == nil && !force {
		return fmt.Errorf("configuration file already exists: %s (use --force to overwrite)", path)
	}
	if err := os.WriteFile(path, []byte(exampleConfig), 0o644); err != nil {
		return fmt.Errorf("write config file: %w", err)
	}
	return nil
}
