package sitelog

import (
	stderrs "errors"
	"os"
	"path/filepath"
	"strings"

	"github.com/Station-Manager/errors"
	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

// ConfigName is the base name of the optional settings file (sitelog.yaml).
const ConfigName = "sitelog"

// Settings configures a Service. MinLevel is the external default used when
// a logger is created without an explicit level and LOG_LEVEL is unset.
type Settings struct {
	MinLevel          Level  `mapstructure:"min_level" validate:"omitempty,oneof=info warning error"`
	ConsoleLogging    bool   `mapstructure:"console_logging"`
	FileLogging       bool   `mapstructure:"file_logging"`
	WithTimestamp     bool   `mapstructure:"with_timestamp"`
	SyncWriters       bool   `mapstructure:"sync_writers"`
	LogFileDir        string `mapstructure:"log_file_dir" validate:"required_if=FileLogging true"`
	FileName          string `mapstructure:"file_name"`
	LogFileMaxSizeMB  int    `mapstructure:"log_file_max_size_mb" validate:"gte=0"`
	LogFileMaxBackups int    `mapstructure:"log_file_max_backups" validate:"gte=0"`
	LogFileMaxAgeDays int    `mapstructure:"log_file_max_age_days" validate:"gte=0"`
	LogFileCompress   bool   `mapstructure:"log_file_compress"`
}

// DefaultSettings returns console-only settings with no level override.
func DefaultSettings() *Settings {
	return &Settings{
		ConsoleLogging:    true,
		LogFileDir:        "logs",
		FileName:          defaultFileName,
		LogFileMaxSizeMB:  10,
		LogFileMaxBackups: 3,
		LogFileMaxAgeDays: 7,
	}
}

// LoadSettings builds Settings from, in increasing precedence: defaults, the
// first sitelog.yaml found in configPaths, and the environment (SITELOG_*
// keys, with LOG_LEVEL also bound to min_level). The first .env file found in
// configPaths is loaded into the environment first. A missing config file is
// not an error; an unrecognised min_level falls back to unset.
func LoadSettings(configPaths ...string) (*Settings, error) {
	const op errors.Op = "sitelog.LoadSettings"

	if err := loadDotEnvFile(configPaths); err != nil {
		return nil, errors.New(op).Err(err).Msg(errMsgReadConfig)
	}

	v := viper.New()
	v.SetConfigName(ConfigName)
	v.SetConfigType("yaml")
	for _, p := range configPaths {
		v.AddConfigPath(p)
	}

	setDefaults(v)

	v.SetEnvPrefix(envPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()
	if err := v.BindEnv("min_level", envPrefix+"_MIN_LEVEL", EnvLogLevel); err != nil {
		return nil, errors.New(op).Err(err).Msg(errMsgReadConfig)
	}

	if len(configPaths) > 0 {
		if err := v.ReadInConfig(); err != nil {
			var notFound viper.ConfigFileNotFoundError
			if !stderrs.As(err, &notFound) {
				return nil, errors.New(op).Err(err).Msg(errMsgReadConfig)
			}
		}
	}

	var settings Settings
	if err := v.Unmarshal(&settings); err != nil {
		return nil, errors.New(op).Err(err).Msg(errMsgDecodeConfig)
	}
	if !settings.MinLevel.Valid() {
		settings.MinLevel = emptyString
	}

	return &settings, nil
}

func setDefaults(v *viper.Viper) {
	d := DefaultSettings()
	v.SetDefault("min_level", emptyString)
	v.SetDefault("console_logging", d.ConsoleLogging)
	v.SetDefault("file_logging", d.FileLogging)
	v.SetDefault("with_timestamp", d.WithTimestamp)
	v.SetDefault("sync_writers", d.SyncWriters)
	v.SetDefault("log_file_dir", d.LogFileDir)
	v.SetDefault("file_name", d.FileName)
	v.SetDefault("log_file_max_size_mb", d.LogFileMaxSizeMB)
	v.SetDefault("log_file_max_backups", d.LogFileMaxBackups)
	v.SetDefault("log_file_max_age_days", d.LogFileMaxAgeDays)
	v.SetDefault("log_file_compress", d.LogFileCompress)
}

// loadDotEnvFile loads the first .env found in dirs. Variables already set in
// the environment are left alone.
func loadDotEnvFile(dirs []string) error {
	for _, dir := range dirs {
		path := filepath.Join(dir, ".env")
		if _, err := os.Stat(path); err != nil {
			continue
		}
		return godotenv.Load(path)
	}
	return nil
}
