package config

type YAMLConfig struct {
	Tempdial YAMLTempdial `yaml:"tempdial"`
}

type YAMLTempdial struct {
	Source   YAMLSource   `yaml:"source"`
	Range    YAMLRange    `yaml:"range"`
	Override YAMLOverride `yaml:"override"`
	Display  YAMLDisplay  `yaml:"display"`
	Log      YAMLLog      `yaml:"log"`
}

type YAMLSource struct {
	Interval    string   `yaml:"interval,omitempty"`
	Latency     string   `yaml:"latency,omitempty"`
	Timeout     string   `yaml:"timeout,omitempty"`
	Retries     *int     `yaml:"retries,omitempty"`
	FailureRate *float64 `yaml:"failure_rate,omitempty"`
}

type YAMLRange struct {
	Min *int `yaml:"min,omitempty"`
	Max *int `yaml:"max,omitempty"`
}

type YAMLOverride struct {
	Window string `yaml:"window,omitempty"`
}

type YAMLDisplay struct {
	Loading string `yaml:"loading,omitempty"`
}

type YAMLLog struct {
	MaxSizeMB  *int `yaml:"max_size_mb,omitempty"`
	MaxBackups *int `yaml:"max_backups,omitempty"`
}
