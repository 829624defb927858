package commands

import (
	"context"
	"fmt"
	"time"

	"github.com/openmerch/commerce-api/internal/infrastructure/persistence"
	"github.com/openmerch/commerce-api/internal/pkg/config"
	"github.com/openmerch/commerce-api/internal/pkg/logger"

	"github.com/spf13/cobra"
	"gorm.io/gorm"
)

// Defaults for the dbinit wait loop. Container orchestration usually starts
// the database and the API together, so the first connection attempts are
// expected to fail.
const (
	defaultInitAttempts        = 30
	defaultInitIntervalSeconds = 2
)

// DBCommandHandler encapsulates database setup operations for the CLI.
type DBCommandHandler struct {
	logger logger.Logger
}

// NewDBCommandHandler initializes and returns a DBCommandHandler instance
// with a configured logger.
func NewDBCommandHandler() (*DBCommandHandler, error) {
	loggerInstance, err := setupLogger()
	if err != nil {
		return nil, fmt.Errorf("failed to setup logger: %w", err)
	}

	return &DBCommandHandler{logger: loggerInstance}, nil
}

// InitDBCmd waits for the database to accept connections and runs the schema
// migrations. It is meant to run before the API server starts so the server
// never serves requests against a missing schema.
func (commandHandler *DBCommandHandler) InitDBCmd(cmd *cobra.Command, _ []string) error {
	settings, err := databaseSettingsFromCommand(cmd)
	if err != nil {
		return err
	}

	attempts, err := cmd.Flags().GetInt("attempts")
	if err != nil {
		return fmt.Errorf("invalid attempts flag: %w", err)
	}
	intervalSeconds, err := cmd.Flags().GetInt("interval")
	if err != nil {
		return fmt.Errorf("invalid interval flag: %w", err)
	}

	db, err := commandHandler.waitForDB(settings, attempts, time.Duration(intervalSeconds)*time.Second)
	if err != nil {
		return err
	}

	if err := persistence.AutoMigrateAll(db); err != nil {
		return fmt.Errorf("failed to migrate schema: %w", err)
	}

	commandHandler.logger.Info("Database initialized successfully")
	return persistence.CloseDB(db)
}

// waitForDB retries the connection until the database answers a ping or the
// attempts are used up.
func (commandHandler *DBCommandHandler) waitForDB(settings config.DatabaseSettings, attempts int, interval time.Duration) (*gorm.DB, error) {
	if attempts < 1 {
		attempts = 1
	}

	var lastErr error
	for attempt := 1; attempt <= attempts; attempt++ {
		db, err := persistence.NewDBConnection(settings)
		if err == nil {
			if err = pingDB(db); err == nil {
				return db, nil
			}
			_ = persistence.CloseDB(db)
		}
		lastErr = err

		commandHandler.logger.Info(fmt.Sprintf("Database not ready (attempt %d/%d): %v", attempt, attempts, err))
		if attempt < attempts {
			time.Sleep(interval)
		}
	}

	return nil, fmt.Errorf("database not reachable after %d attempts: %w", attempts, lastErr)
}

func pingDB(db *gorm.DB) error {
	sqlDB, err := db.DB()
	if err != nil {
		return err
	}

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	return sqlDB.PingContext(ctx)
}

func databaseSettingsFromCommand(cmd *cobra.Command) (config.DatabaseSettings, error) {
	dbType, err := cmd.Flags().GetString("db-type")
	if err != nil {
		return config.DatabaseSettings{}, fmt.Errorf("invalid db-type flag: %w", err)
	}
	dsn, err := cmd.Flags().GetString("dsn")
	if err != nil {
		return config.DatabaseSettings{}, fmt.Errorf("invalid dsn flag: %w", err)
	}
	dbName, err := cmd.Flags().GetString("db-name")
	if err != nil {
		return config.DatabaseSettings{}, fmt.Errorf("invalid db-name flag: %w", err)
	}

	return databaseSettingsFromFlags(dbType, dsn, dbName)
}

func registerDatabaseFlags(cmd *cobra.Command) {
	cmd.Flags().String("db-type", config.PostgresDbType, "Database type (postgres or sqlite)")
	cmd.Flags().String("dsn", "", "Database connection string")
	cmd.Flags().String("db-name", "", "Database name, created on first connect when missing (postgres only)")
}

// InitDBCommands registers database commands with the root command.
func InitDBCommands(rootCmd *cobra.Command) error {
	handler, err := NewDBCommandHandler()
	if err != nil {
		return fmt.Errorf("failed to create DB command handler: %w", err)
	}

	initCmd := &cobra.Command{
		Use:   "dbinit",
		Short: "Wait for the database and run schema migrations",
		RunE:  handler.InitDBCmd,
	}
	registerDatabaseFlags(initCmd)
	initCmd.Flags().Int("attempts", defaultInitAttempts, "Connection attempts before giving up")
	initCmd.Flags().Int("interval", defaultInitIntervalSeconds, "Seconds between connection attempts")
	rootCmd.AddCommand(initCmd)

	return nil
}
