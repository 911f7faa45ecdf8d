package config

// DefaultConfigFile is the config file looked up in the working directory.
const DefaultConfigFile = ".scenedash.yml"

// DefaultConfig returns a Config with sensible defaults.
func DefaultConfig() *Config {
	return &Config{
		Port:             8080,
		BreakpointPx:     1024,
		DataDir:          ".scenedash",
		NavigationFile:   "",
		SortChildren:     false,
		AutoExpandActive: false,
		SessionTTL:       "30m",
		AllowAllOrigins:  true,
		LogLevel:         LogInfo,
	}
}
