package logger

// Console implements a console based logger.
type Console struct {
	Enabled          bool `mapstructure:"enabled" json:"enabled"`
	UseConsoleWriter bool `mapstructure:"useConsoleWriter" json:"useConsoleWriter"`
}

// RollingFile describes one lumberjack managed log file.
type RollingFile struct {
	Name       string `mapstructure:"name" json:"name"`
	MaxSize    int    `mapstructure:"maxSize" json:"maxSize"`       // megabytes
	MaxBackups int    `mapstructure:"maxBackups" json:"maxBackups"` // files
	MaxAge     int    `mapstructure:"maxAge" json:"maxAge"`         // days
}

// LogFile implements a file based logger.
type LogFile struct {
	Enabled bool   `mapstructure:"enabled" json:"enabled"`
	Path    string `mapstructure:"path" json:"path"`

	Access RollingFile `mapstructure:"access" json:"access"`
	Error  RollingFile `mapstructure:"error" json:"error"`
	Info   RollingFile `mapstructure:"info" json:"info"`
	Trace  RollingFile `mapstructure:"trace" json:"trace"`
	Warn   RollingFile `mapstructure:"warn" json:"warn"`
}

// Log implements the logger config.
type Log struct {
	LogLevel string `mapstructure:"logLevel" json:"logLevel"` // trace, debug, info, warn, error.
	LogEnv   string `mapstructure:"logEnv" json:"logEnv"`

	// EnableAccessLogToConsole writes the http access log to the console as well.
	// Console.Enabled still has to be true.
	EnableAccessLogToConsole bool `mapstructure:"enableAccessLogToConsole" json:"enableAccessLogToConsole"`
	ReportCaller             bool `mapstructure:"reportCaller" json:"reportCaller"`
	DisableCheckAlive        bool `mapstructure:"disableCheckAlive" json:"disableCheckAlive"` // do not log health calls

	AppName     string `mapstructure:"appName" json:"appName"`
	ServiceName string `mapstructure:"serviceName" json:"serviceName"`

	// Console used mainly for docker and dev.
	Console Console `mapstructure:"console" json:"console"`

	File LogFile `mapstructure:"file" json:"file"`
}
