package config

// LogLevel controls how chatty the server log is.
type LogLevel string

const (
	LogInfo  LogLevel = "info"
	LogDebug LogLevel = "debug"
)

// Config is the top-level scenedash configuration, corresponding to .scenedash.yml.
type Config struct {
	Port             int      `yaml:"port" koanf:"port"`
	BreakpointPx     int      `yaml:"breakpoint_px" koanf:"breakpoint_px"`
	DataDir          string   `yaml:"data_dir" koanf:"data_dir"`
	NavigationFile   string   `yaml:"navigation_file" koanf:"navigation_file"`
	SortChildren     bool     `yaml:"sort_children" koanf:"sort_children"`
	AutoExpandActive bool     `yaml:"auto_expand_active" koanf:"auto_expand_active"`
	SessionTTL       string   `yaml:"session_ttl" koanf:"session_ttl"`
	AllowAllOrigins  bool     `yaml:"allow_all_origins" koanf:"allow_all_origins"`
	LogLevel         LogLevel `yaml:"log_level" koanf:"log_level"`
}
