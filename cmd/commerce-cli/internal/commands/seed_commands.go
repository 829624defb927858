package commands

import (
	"context"
	"errors"
	"fmt"

	"github.com/openmerch/commerce-api/internal/domain/catalog"
	"github.com/openmerch/commerce-api/internal/domain/customers"
	"github.com/openmerch/commerce-api/internal/infrastructure/persistence"
	"github.com/openmerch/commerce-api/internal/pkg/logger"

	"github.com/spf13/cobra"
)

// SeedCommandHandler loads a small demo catalog into the database.
type SeedCommandHandler struct {
	logger logger.Logger
}

// NewSeedCommandHandler initializes and returns a SeedCommandHandler instance
// with a configured logger.
func NewSeedCommandHandler() (*SeedCommandHandler, error) {
	loggerInstance, err := setupLogger()
	if err != nil {
		return nil, fmt.Errorf("failed to setup logger: %w", err)
	}

	return &SeedCommandHandler{logger: loggerInstance}, nil
}

// SeedCmd inserts demo categories, products and clients. Rows that already
// exist are skipped, so the command can run repeatedly.
func (commandHandler *SeedCommandHandler) SeedCmd(cmd *cobra.Command, _ []string) error {
	settings, err := databaseSettingsFromCommand(cmd)
	if err != nil {
		return err
	}

	db, err := persistence.NewDBConnection(settings)
	if err != nil {
		return fmt.Errorf("failed to connect to database: %w", err)
	}
	defer func() {
		_ = persistence.CloseDB(db)
	}()

	if err := persistence.AutoMigrateAll(db); err != nil {
		return fmt.Errorf("failed to migrate schema: %w", err)
	}

	categoryRepo, err := persistence.NewGormCategoryRepository(db, commandHandler.logger)
	if err != nil {
		return fmt.Errorf("failed to create category repository: %w", err)
	}
	productRepo, err := persistence.NewGormProductRepository(db, commandHandler.logger)
	if err != nil {
		return fmt.Errorf("failed to create product repository: %w", err)
	}
	clientRepo, err := persistence.NewGormClientRepository(db, commandHandler.logger)
	if err != nil {
		return fmt.Errorf("failed to create client repository: %w", err)
	}

	ctx := context.Background()

	categories := []*catalog.Category{
		{Name: "Apparel"},
		{Name: "Accessories"},
		{Name: "Home"},
	}
	for _, category := range categories {
		if err := categoryRepo.Create(ctx, category); err != nil {
			if errors.Is(err, persistence.ErrConflict) {
				commandHandler.logger.Info("Category already present, skipping: ", category.Name)
				continue
			}
			return fmt.Errorf("failed to seed category %q: %w", category.Name, err)
		}
	}

	existing, err := categoryRepo.List(ctx, catalog.NewCategoryQuery())
	if err != nil {
		return fmt.Errorf("failed to list categories: %w", err)
	}
	categoryIDs := map[string]uint{}
	for _, category := range existing {
		categoryIDs[category.Name] = category.ID
	}

	products := []*catalog.Product{
		{Name: "Logo T-Shirt", Price: 19.99, Stock: 100, CategoryID: categoryIDs["Apparel"]},
		{Name: "Hoodie", Price: 49.99, Stock: 50, CategoryID: categoryIDs["Apparel"]},
		{Name: "Sticker Pack", Price: 4.99, Stock: 500, CategoryID: categoryIDs["Accessories"]},
		{Name: "Enamel Mug", Price: 14.99, Stock: 80, CategoryID: categoryIDs["Home"]},
	}
	for _, product := range products {
		if err := productRepo.Create(ctx, product); err != nil {
			if errors.Is(err, persistence.ErrConflict) {
				commandHandler.logger.Info("Product already present, skipping: ", product.Name)
				continue
			}
			return fmt.Errorf("failed to seed product %q: %w", product.Name, err)
		}
	}

	clients := []*customers.Client{
		{Name: "Ada", Lastname: "Lovelace", Email: "ada@example.com", Telephone: "5550001111"},
		{Name: "Grace", Lastname: "Hopper", Email: "grace@example.com", Telephone: "5550002222"},
	}
	for _, client := range clients {
		if err := clientRepo.Create(ctx, client); err != nil {
			if errors.Is(err, persistence.ErrConflict) {
				commandHandler.logger.Info("Client already present, skipping: ", client.Email)
				continue
			}
			return fmt.Errorf("failed to seed client %q: %w", client.Email, err)
		}
	}

	commandHandler.logger.Info("Seed data loaded successfully")
	return nil
}

// InitSeedCommands registers seed commands with the root command.
func InitSeedCommands(rootCmd *cobra.Command) error {
	handler, err := NewSeedCommandHandler()
	if err != nil {
		return fmt.Errorf("failed to create seed command handler: %w", err)
	}

	seedCmd := &cobra.Command{
		Use:   "seed",
		Short: "Load demo categories, products and clients",
		RunE:  handler.SeedCmd,
	}
	registerDatabaseFlags(seedCmd)
	rootCmd.AddCommand(seedCmd)

	return nil
}
