package cmd

import (
	"errors"
	"log/slog"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"time"

	"github.com/spf13/viper"
	"gopkg.in/natefinch/lumberjack.v2"

	"testgenie.dev/pkg/testgenie/internal/adapter"
	"testgenie.dev/pkg/testgenie/internal/domain"
)

const (
	configVersionKey     = "version"
	currentConfigVersion = 1

	configBaseName   = "testgenie"
	configFileName   = configBaseName + ".yaml"
	configFolderPath = "."

	excludeFlagName  = "exclude"
	verboseFlagName  = "verbose"
	runTestsFlagName = "run-tests"
	yesFlagName      = "yes"
	languageFlagName = "language"
	resultsFlagName  = "results"
	coverageFlagName = "coverage"
	limitFlagName    = "limit"
	runFlagName      = "run"

	workspaceKey           = "workspace"
	excludeConfigKey       = "paths.exclude"
	excludeDirsKey         = "discovery.exclude_dirs"
	excludeFilesKey        = "discovery.exclude_files"
	includeKeywordsKey     = "discovery.include_keywords"
	detectionSkipDirsKey   = "detection.skip_dirs"
	generatorModelKey      = "generator.model"
	generatorAPIKeyKey     = "generator.api_key"
	generatorTimeoutKey    = "generator.timeout"
	generatorRateKey       = "generator.requests_per_minute"
	historyPathKey         = "history.path"
	historyEnabledKey      = "history.enabled"
	runTestsConfigKey      = "run_tests"
	runnerTimeoutConfigKey = "runner.timeout"

	// geminiAPIKeyEnv is read when generator.api_key is unset.
	geminiAPIKeyEnv = "GEMINI_API_KEY"

	defaultHistoryPath    = ".testgenie/history.db"
	defaultHistoryEnabled = true
	defaultRunTests       = "ask"
	defaultHistoryLimit   = 20

	envPrefix = "TESTGENIE"

	logFilenameKey   = "log.filename"
	logLevelKey      = "log.level"
	logVerboseKey    = "log.verbose"
	logMaxSizeKey    = "log.max_size"
	logMaxBackupsKey = "log.max_backups"
	logMaxAgeKey     = "log.max_age"
	logCompressKey   = "log.compress"

	defaultLogFilename   = ".testgenie.log"
	defaultLogLevel      = int(slog.LevelInfo)
	defaultLogVerbose    = false
	defaultLogMaxSize    = 10
	defaultLogMaxBackups = 3
	defaultLogMaxAge     = 28
	defaultLogCompress   = true
)

var globalLogger *slog.Logger

func init() {
	viper.SetConfigName(configBaseName)
	viper.SetConfigType("yaml")
	viper.AddConfigPath(configFolderPath)
	viper.SetConfigFile(filepath.Join(configFolderPath, configFileName))
	viper.AutomaticEnv()
	viper.SetEnvPrefix(envPrefix)
	viper.SetEnvKeyReplacer(strings.NewReplacer("-", "_", ".", "_"))

	viper.SetDefault(configVersionKey, currentConfigVersion)
	viper.SetDefault(workspaceKey, []string{})
	viper.SetDefault(excludeConfigKey, []string{})
	viper.SetDefault(excludeDirsKey, domain.DefaultExcludedDirs)
	viper.SetDefault(excludeFilesKey, domain.DefaultExcludedFiles)
	viper.SetDefault(includeKeywordsKey, domain.DefaultIncludeKeywords)
	viper.SetDefault(detectionSkipDirsKey, domain.DefaultDetectionSkipDirs)
	viper.SetDefault(generatorModelKey, adapter.DefaultGeminiModel)
	viper.SetDefault(generatorAPIKeyKey, "")
	viper.SetDefault(generatorTimeoutKey, int64(adapter.DefaultGenerationTimeout.Seconds()))
	viper.SetDefault(generatorRateKey, adapter.DefaultRequestsPerMinute)
	viper.SetDefault(historyPathKey, defaultHistoryPath)
	viper.SetDefault(historyEnabledKey, defaultHistoryEnabled)
	viper.SetDefault(runTestsConfigKey, defaultRunTests)
	viper.SetDefault(runnerTimeoutConfigKey, int64(adapter.DefaultTestRunTimeout.Seconds()))

	// Logging defaults (used by config/env and as fallbacks for flags).
	viper.SetDefault(logFilenameKey, defaultLogFilename)
	viper.SetDefault(logLevelKey, defaultLogLevel)
	viper.SetDefault(logVerboseKey, defaultLogVerbose)
	viper.SetDefault(logMaxSizeKey, defaultLogMaxSize)
	viper.SetDefault(logMaxBackupsKey, defaultLogMaxBackups)
	viper.SetDefault(logMaxAgeKey, defaultLogMaxAge)
	viper.SetDefault(logCompressKey, defaultLogCompress)

	if err := viper.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if errors.As(err, &notFound) {
			return
		}

		return
	}
}

// generatorConfig assembles the generation client settings. The API key
// falls back to GEMINI_API_KEY.
func generatorConfig() adapter.GeminiConfig {
	apiKey := strings.TrimSpace(viper.GetString(generatorAPIKeyKey))
	if apiKey == "" {
		apiKey = strings.TrimSpace(os.Getenv(geminiAPIKeyEnv))
	}

	return adapter.GeminiConfig{
		APIKey:            apiKey,
		Model:             viper.GetString(generatorModelKey),
		Timeout:           secondsSetting(generatorTimeoutKey),
		RequestsPerMinute: viper.GetInt(generatorRateKey),
	}
}

// secondsSetting reads a duration stored as whole seconds.
func secondsSetting(key string) time.Duration {
	return time.Duration(viper.GetInt64(key)) * time.Second
}

func parseSlogLevel(value string, defaultLevel slog.Level) slog.Level {
	level := strings.ToLower(strings.TrimSpace(value))
	if level == "" {
		return defaultLevel
	}

	switch level {
	case "debug":
		return slog.LevelDebug
	case "info":
		return slog.LevelInfo
	case "warn", "warning":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	}

	// Allow numeric slog levels as well (e.g. -4 for debug).
	if n, err := strconv.Atoi(level); err == nil {
		return slog.Level(n)
	}

	return defaultLevel
}

// configureLogger configures the global slog logger.
//
// By default it logs at the configured level; if verbose is true it logs at Debug.
func configureLogger(logPath string, verbose bool) {
	if strings.TrimSpace(logPath) == "" {
		logPath = viper.GetString(logFilenameKey)
	}

	if strings.TrimSpace(logPath) == "" {
		logPath = defaultLogFilename
	}

	var logLevel slog.Level
	if verbose {
		logLevel = slog.LevelDebug
	} else {
		logLevel = parseSlogLevel(viper.GetString(logLevelKey), slog.LevelInfo)
	}

	logWriter := &lumberjack.Logger{
		Filename:   logPath,
		MaxSize:    viper.GetInt(logMaxSizeKey),
		MaxBackups: viper.GetInt(logMaxBackupsKey),
		MaxAge:     viper.GetInt(logMaxAgeKey),
		Compress:   viper.GetBool(logCompressKey),
	}

	handler := slog.NewTextHandler(logWriter, &slog.HandlerOptions{
		AddSource: true,
		Level:     logLevel,
	})

	globalLogger = slog.New(handler)
	slog.SetDefault(globalLogger)
}
