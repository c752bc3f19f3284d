package logger

// Config holds configuration for the logger.
type Config struct {
	// Level is the minimum log level (debug, info, warn, error).
	Level string `mapstructure:"level" default:"info"`
	// Format is the output encoding (json, console).
	Format string `mapstructure:"format" default:"console"`
	// Console enables logging to stdout.
	Console bool `mapstructure:"console" default:"true"`
	// File enables logging to FilePath.
	File bool `mapstructure:"file" default:"false"`
	// FilePath is the log file location used when File is enabled.
	FilePath string `mapstructure:"file_path" default:"logs/app.log"`
}
