package sitelog

const (
	// EnvLogLevel is the environment variable holding the default minimum level.
	EnvLogLevel     = "LOG_LEVEL"
	envPrefix       = "SITELOG"
	defaultFileName = "site.log"
	emptyString     = ""
)

const (
	errMsgNilConfig     = "Logging config is nil."
	errMsgNilService    = "Logger service is nil."
	errMsgConfigInvalid = "Logging configuration is invalid."
	errMsgNoChannels    = "No logging channels enabled."
	errMsgLogDir        = "Failed to create logs directory."
	errMsgUnknownLevel  = "Unknown log level."
	errMsgReadConfig    = "Failed to read config file."
	errMsgDecodeConfig  = "Failed to decode config."
)
