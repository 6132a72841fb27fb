package config

// Config represents the complete structdoc configuration.
// It can be loaded from .structdoc/config.yml with environment variable
// overrides.
type Config struct {
	Paths  PathsConfig  `yaml:"paths" mapstructure:"paths"`
	Output OutputConfig `yaml:"output" mapstructure:"output"`
	Tree   TreeConfig   `yaml:"tree" mapstructure:"tree"`
}

// PathsConfig defines which files to collect and which to skip.
type PathsConfig struct {
	Assets []string `yaml:"assets" mapstructure:"assets"` // glob patterns for site assets
	Ignore []string `yaml:"ignore" mapstructure:"ignore"` // glob patterns to ignore
}

// OutputConfig names the three generated artifacts inside the output
// directory.
type OutputConfig struct {
	Diagram   string `yaml:"diagram" mapstructure:"diagram"`
	Functions string `yaml:"functions" mapstructure:"functions"`
	Assets    string `yaml:"assets" mapstructure:"assets"`
}

// TreeConfig configures the companion directory-tree printer.
type TreeConfig struct {
	Exclude []string `yaml:"exclude" mapstructure:"exclude"` // entry names skipped entirely
}

// Default returns a configuration with sensible defaults.
func Default() *Config {
	return &Config{
		Paths: PathsConfig{
			Assets: []string{
				"**/*.html",
				"**/*.js",
				"**/*.css",
			},
			Ignore: []string{
				".git/**",
				"__pycache__/**",
				"node_modules/**",
				"venv/**",
				".venv/**",
				"*.pyc",
			},
		},
		Output: OutputConfig{
			Diagram:   "uml.txt",
			Functions: "module_functions.txt",
			Assets:    "site-content.txt",
		},
		Tree: TreeConfig{
			Exclude: []string{
				"__pycache__",
				".git",
				".idea",
				".pytest_cache",
				"node_modules",
			},
		},
	}
}
