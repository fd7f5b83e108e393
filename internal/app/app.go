package app

import (
	"context"
	"fmt"
	"path/filepath"

	"go.uber.org/zap"

	"github.com/xavierca1/carretel-crm/internal/config"
	"github.com/xavierca1/carretel-crm/internal/entity"
	"github.com/xavierca1/carretel-crm/internal/infra/database"
	"github.com/xavierca1/carretel-crm/internal/infra/integration/gemini"
	"github.com/xavierca1/carretel-crm/internal/usecase"
)

// App junta as peças que a API e a CLI compartilham.
type App struct {
	Config     config.Config
	Logger     *zap.Logger
	Store      database.KeyValueStore
	Repo       *usecase.Repository
	Gemini     *gemini.Client
	Summarizer *usecase.Summarizer
	Insights   *usecase.InsightBoard
}

func New(ctx context.Context, cfg config.Config, logger *zap.Logger) (*App, error) {
	if logger == nil {
		logger = zap.NewNop()
	}

	store, err := OpenStore(cfg)
	if err != nil {
		return nil, err
	}

	// 1. Coleções persistidas
	contacts := database.NewCollection[entity.Contact](
		store, cfg.ContactsKey, database.SeedContacts(), logger.Named("contacts"))
	opportunities := database.NewCollection[entity.Opportunity](
		store, cfg.OpportunitiesKey, database.SeedOpportunities(), logger.Named("opportunities"))

	// 2. Repositório
	repo := usecase.NewRepository(ctx, contacts, opportunities, logger.Named("repository"))

	// 3. IA
	geminiClient, err := gemini.NewClient(ctx, cfg.GeminiAPIKey, cfg.GeminiModel)
	if err != nil {
		store.Close()
		return nil, err
	}
	if !geminiClient.Configured() {
		logger.Warn("API_KEY não configurada, insights vão devolver a mensagem de fallback")
	}
	summarizer := usecase.NewSummarizer(geminiClient, logger.Named("insights"))

	return &App{
		Config:     cfg,
		Logger:     logger,
		Store:      store,
		Repo:       repo,
		Gemini:     geminiClient,
		Summarizer: summarizer,
		Insights:   usecase.NewInsightBoard(summarizer),
	}, nil
}

// OpenStore escolhe o backend de chave-valor pelo STORAGE_DRIVER.
func OpenStore(cfg config.Config) (database.KeyValueStore, error) {
	switch cfg.StorageDriver {
	case config.StorageMemory:
		return database.NewMemoryStore(), nil
	case config.StorageFile:
		return database.NewFileStore(cfg.StoragePath)
	case config.StorageSQLite:
		return database.OpenSQLiteStore(filepath.Join(cfg.StoragePath, "carretel.db"))
	default:
		return nil, fmt.Errorf("driver de armazenamento desconhecido: %s", cfg.StorageDriver)
	}
}

func (a *App) Close() error {
	return a.Store.Close()
}
