package commands

import (
	"fmt"

	"github.com/openmerch/commerce-api/internal/pkg/config"
	"github.com/openmerch/commerce-api/internal/pkg/logger"
)

func setupLogger() (logger.Logger, error) {
	settings := &config.LoggerSettings{
		LogLevel: "info",
		LogType:  "console",
		FilePath: "",
	}

	if err := logger.InitLogger(settings); err != nil {
		return nil, fmt.Errorf("failed to initialize logger: %w", err)
	}

	loggerInstance, err := logger.GetLogger()
	if err != nil {
		return nil, fmt.Errorf("failed to get logger instance: %w", err)
	}

	return loggerInstance, nil
}

// databaseSettingsFromFlags assembles DatabaseSettings from the shared
// database flags registered by registerDatabaseFlags.
func databaseSettingsFromFlags(dbType, dsn, name string) (config.DatabaseSettings, error) {
	settings := config.DatabaseSettings{
		Type: dbType,
		DSN:  dsn,
		Name: name,
	}

	if err := settings.Validate(); err != nil {
		return settings, err
	}

	return settings, nil
}
