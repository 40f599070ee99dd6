package domain

// Config mirrors ~/.appgen/config.yaml.
type Config struct {
	ConfigFormatVersion string            `yaml:"config_format_version"`
	Preferences         Preferences       `yaml:"preferences"`
	Models              []ModelDefinition `yaml:"models"`
	Artifact            ArtifactSettings  `yaml:"artifact"`
	Execution           ExecutionSettings `yaml:"execution"`
}

// Preferences captures user level toggles.
type Preferences struct {
	DefaultModel   string `yaml:"default_model"`
	SourceLanguage string `yaml:"source_language"`
	TimeoutSeconds int    `yaml:"timeout"`
	EnvFile        string `yaml:"env_file"`
}

// ArtifactSettings controls where generated source is written.
type ArtifactSettings struct {
	Dir      string `yaml:"dir"`
	FileName string `yaml:"file_name"`
	Naming   string `yaml:"naming"`
}

// ExecutionSettings controls how the generated program is launched.
type ExecutionSettings struct {
	Interpreter string `yaml:"interpreter"`
	SkipLaunch  bool   `yaml:"skip_launch"`
}
