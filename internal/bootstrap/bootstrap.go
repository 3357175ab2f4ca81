package bootstrap

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/axrail/quotation-processor/internal/config"
	"github.com/axrail/quotation-processor/internal/core/ports"
	"github.com/axrail/quotation-processor/internal/core/usecase"
	"github.com/axrail/quotation-processor/internal/infrastructure/extractor/doctext"
	"github.com/axrail/quotation-processor/internal/infrastructure/llm/anthropic"
	"github.com/axrail/quotation-processor/internal/infrastructure/report"
	"github.com/axrail/quotation-processor/internal/infrastructure/repository/postgres"
	"github.com/axrail/quotation-processor/internal/infrastructure/resilience"
	"github.com/axrail/quotation-processor/internal/infrastructure/storage/localfs"
)

type App struct {
	Config config.Config

	Processor ports.QuotationProcessor

	closeFn func()
}

func New(ctx context.Context, cfg config.Config, logger *slog.Logger) (*App, error) {
	db, err := postgres.OpenDB(cfg.PostgresDSN)
	if err != nil {
		return nil, fmt.Errorf("open postgres: %w", err)
	}
	repo, err := postgres.NewQuotationRepository(db, cfg.QuotationsTable)
	if err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("init quotation repository: %w", err)
	}
	if err := repo.EnsureSchema(ctx); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("ensure schema: %w", err)
	}

	blobs, err := localfs.New(cfg.ReportsDir, cfg.ReportsBaseURL)
	if err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("init report storage: %w", err)
	}

	llmClient := anthropic.NewClient(cfg.LLMBaseURL, cfg.LLMAPIKey, cfg.LLMModel)
	guard := resilience.NewGuard("anthropic_messages", resilience.Config{})
	fieldExtractor, err := anthropic.NewExtractor(llmClient, guard, logger, cfg.LLMMaxTokens)
	if err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("init field extractor: %w", err)
	}

	textExtractor := doctext.New(logger)
	renderer := report.NewRenderer(blobs, logger)

	processUC := usecase.NewProcessQuotationUseCase(textExtractor, fieldExtractor, repo, renderer, logger)

	return &App{
		Config:    cfg,
		Processor: processUC,
		closeFn: func() {
			_ = db.Close()
		},
	}, nil
}

func (a *App) Close() {
	if a.closeFn != nil {
		a.closeFn()
	}
}
