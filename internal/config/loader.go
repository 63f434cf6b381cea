package config

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// load reads a game config following the standard search order:
// customPath -> ~/.gamaleiga/configs/<name> -> ./configs/<name> -> embedded.
// A bad custom path is an error; failures further down fall through.
func load(customPath, filename string, embedded []byte, out any) error {
	if customPath != "" {
		data, err := os.ReadFile(customPath)
		if err != nil {
			return fmt.Errorf("failed to read config %s: %w", customPath, err)
		}
		if err := yaml.Unmarshal(data, out); err != nil {
			return fmt.Errorf("failed to parse config %s: %w", customPath, err)
		}
		return nil
	}

	if userPath := userConfigPath(filename); userPath != "" {
		if data, err := os.ReadFile(userPath); err == nil {
			if err := yaml.Unmarshal(data, out); err == nil {
				return nil
			}
		}
	}

	if data, err := os.ReadFile(filepath.Join("configs", filename)); err == nil {
		if err := yaml.Unmarshal(data, out); err == nil {
			return nil
		}
	}

	return yaml.Unmarshal(embedded, out)
}

// userConfigPath returns the path to a user config file, or empty if the
// home directory is unavailable.
func userConfigPath(filename string) string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, ".gamaleiga", "configs", filename)
}

// LoadGarbage loads the garbage game configuration.
func LoadGarbage(customPath string) (GarbageConfig, error) {
	var cfg GarbageConfig
	if err := load(customPath, "garbage.yaml", defaultGarbageYAML, &cfg); err != nil {
		if customPath != "" {
			return cfg, err
		}
		return DefaultGarbageConfig(), nil
	}
	return cfg, nil
}

// LoadHook loads the hook crane game configuration.
func LoadHook(customPath string) (HookConfig, error) {
	var cfg HookConfig
	if err := load(customPath, "hook.yaml", defaultHookYAML, &cfg); err != nil {
		if customPath != "" {
			return cfg, err
		}
		return DefaultHookConfig(), nil
	}
	return cfg, nil
}

// LoadSnow loads the snow plow game configuration.
func LoadSnow(customPath string) (SnowConfig, error) {
	var cfg SnowConfig
	if err := load(customPath, "snowplow.yaml", defaultSnowYAML, &cfg); err != nil {
		if customPath != "" {
			return cfg, err
		}
		return DefaultSnowConfig(), nil
	}
	return cfg, nil
}

// LoadSand loads the sand excavator game configuration.
func LoadSand(customPath string) (SandConfig, error) {
	var cfg SandConfig
	if err := load(customPath, "sand.yaml", defaultSandYAML, &cfg); err != nil {
		if customPath != "" {
			return cfg, err
		}
		return DefaultSandConfig(), nil
	}
	return cfg, nil
}
