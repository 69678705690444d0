package config

import (
	"errors"
	"os"
	"path/filepath"

	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"
)

type Config struct {
	Provider string `yaml:"provider"`
	APIKey   string `yaml:"api_key,omitempty"`
	Model    string `yaml:"model"`
	BaseURL  string `yaml:"base_url,omitempty"`

	// Language the model should respond in; empty means the model's default.
	Language string `yaml:"language,omitempty"`

	Editor  EditorConfig `yaml:"editor"`
	LogFile string       `yaml:"log_file,omitempty"`
	Debug   bool         `yaml:"debug,omitempty"`
}

type EditorConfig struct {
	TabWidth int `yaml:"tab_width"`
}

func DefaultConfig() *Config {
	return &Config{
		Provider: "ollama",
		Model:    "llama3.1:8b",
		Editor: EditorConfig{
			TabWidth: 4,
		},
	}
}

func ConfigDir() (string, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(home, ".config", "gloss"), nil
}

func ConfigPath() (string, error) {
	dir, err := ConfigDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(dir, "config.yaml"), nil
}

// ActionsDir is where user-defined action templates live.
func ActionsDir() (string, error) {
	dir, err := ConfigDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(dir, "actions"), nil
}

// LogPath resolves the log file location, honoring an explicit setting.
func (c *Config) LogPath() (string, error) {
	if c.LogFile != "" {
		return c.LogFile, nil
	}
	dir, err := ConfigDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(dir, "gloss.log"), nil
}

func Exists() bool {
	path, err := ConfigPath()
	if err != nil {
		return false
	}
	_, err = os.Stat(path)
	return err == nil
}

// Load reads the yaml config and applies environment overrides on top.
// A .env file in the working directory is loaded first; variables already
// set in the environment win. Missing config file yields (nil, nil) so the
// caller can run first-time setup.
func Load() (*Config, error) {
	path, err := ConfigPath()
	if err != nil {
		return nil, err
	}
	return LoadFrom(path)
}

// LoadFrom is Load with an explicit config file path.
func LoadFrom(path string) (*Config, error) {
	_ = godotenv.Load()

	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return nil, nil
		}
		return nil, err
	}

	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, err
	}

	cfg.applyEnv()
	return &cfg, nil
}

// applyEnv layers GLOSS_* variables over the file values, then falls back
// to the conventional provider key variables when no key is set yet.
func (c *Config) applyEnv() {
	if v := os.Getenv("GLOSS_PROVIDER"); v != "" {
		c.Provider = v
	}
	if v := os.Getenv("GLOSS_MODEL"); v != "" {
		c.Model = v
	}
	if v := os.Getenv("GLOSS_API_KEY"); v != "" {
		c.APIKey = v
	}
	if v := os.Getenv("GLOSS_LANGUAGE"); v != "" {
		c.Language = v
	}

	if c.APIKey == "" {
		keyVars := map[string]string{
			"anthropic":  "ANTHROPIC_API_KEY",
			"openai":     "OPENAI_API_KEY",
			"groq":       "GROQ_API_KEY",
			"openrouter": "OPENROUTER_API_KEY",
		}
		if envVar, ok := keyVars[c.Provider]; ok {
			c.APIKey = os.Getenv(envVar)
		}
	}
}

func (c *Config) Save() error {
	dir, err := ConfigDir()
	if err != nil {
		return err
	}

	if err := os.MkdirAll(dir, 0755); err != nil {
		return err
	}

	path, err := ConfigPath()
	if err != nil {
		return err
	}

	data, err := yaml.Marshal(c)
	if err != nil {
		return err
	}

	return os.WriteFile(path, data, 0600)
}
