package config

import (
	"os"
)

// DefaultConfig returns the configuration used when no config file exists.
func DefaultConfig() *Config {
	return &Config{
		Defaults: DefaultsConfig{
			ThawDays: 7,
		},
		Storage: StorageConfig{
			DataFile: "",
		},
	}
}

// WriteDefault writes the commented default configuration to a file.
func WriteDefault(path string) error {
	content := `# Kelvin configuration

[defaults]
# Days a task stays frozen when 'kelvin freeze' is run without --date
thaw_days = 7

[storage]
# Override the task file location (default: ~/.config/kelvin/tasks.json)
# data_file = "~/tasks/kelvin.json"
`
	return os.WriteFile(path, []byte(content), 0644)
}
