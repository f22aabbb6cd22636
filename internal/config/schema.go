package config

// Config is the full kelvin configuration, read from
// ~/.config/kelvin/config.toml.
type Config struct {
	Defaults DefaultsConfig `yaml:"defaults" mapstructure:"defaults"`
	Storage  StorageConfig  `yaml:"storage" mapstructure:"storage"`
}

// DefaultsConfig holds fallback values for commands invoked without an
// explicit date.
type DefaultsConfig struct {
	// ThawDays is the number of days a task stays frozen when freeze is
	// invoked without a date.
	ThawDays int `yaml:"thaw_days" mapstructure:"thaw_days"`
}

// StorageConfig locates the task file.
type StorageConfig struct {
	// DataFile overrides the task file path. Empty means the default
	// ~/.config/kelvin/tasks.json. A leading "~" expands to the home
	// directory.
	DataFile string `yaml:"data_file" mapstructure:"data_file"`
}
