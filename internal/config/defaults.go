package config

const (
	defaultTranscriptDir = "."
	defaultLogDir        = "~/.local/share/aurgen/logs"
	defaultHelperName    = "yay"
	defaultHistoryFile   = "history.db"
	defaultLogFormat     = "console"
	defaultLogLevel      = "info"
)

// Default returns a Config populated with repository defaults.
func Default() Config {
	return Config{
		Paths: Paths{
			TranscriptDir: defaultTranscriptDir,
		},
		Helper: Helper{
			Name:         defaultHelperName,
			Needed:       true,
			Sudoloop:     true,
			Batchinstall: true,
			Asdeps:       true,
		},
		History: History{
			Enabled: true,
		},
		Logging: Logging{
			Format: defaultLogFormat,
			Level:  defaultLogLevel,
		},
	}
}
