package usecase

// ConfigFile describes TOML configuration structure.
type ConfigFile struct {
	Notifier NotifierConfig `toml:"notifier"`
	Logger   LoggerConfig   `toml:"logger"`
	Logging  LoggingConfig  `toml:"logging"`
}

// NotifierConfig holds per-channel output settings.
type NotifierConfig struct {
	EmailPrefix string `toml:"email_prefix"`
	SMSPrefix   string `toml:"sms_prefix"`
}

// LoggerConfig holds settings of the notification log sink.
type LoggerConfig struct {
	Sink   string `toml:"sink"`
	Prefix string `toml:"prefix"`
}

// LoggingConfig holds diagnostic logging settings.
type LoggingConfig struct {
	Level string `toml:"level"`
}

// DefaultConfigFile returns default TOML configuration.
func DefaultConfigFile() ConfigFile {
	return ConfigFile{
		Notifier: NotifierConfig{
			EmailPrefix: "Sending Email: ",
			SMSPrefix:   "Sending SMS: ",
		},
		Logger: LoggerConfig{
			Sink:   LogSinkConsole,
			Prefix: "Logging: ",
		},
		Logging: LoggingConfig{
			Level: "info",
		},
	}
}
