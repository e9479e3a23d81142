package main

import (
	"context"
	"log"
	"os"
	"os/signal"
	"syscall"

	"go.uber.org/zap"

	"sitegen/internal/adapters/cli"
	"sitegen/internal/application"
	"sitegen/internal/config"
	"sitegen/internal/domain/entities"
	"sitegen/internal/infrastructure/content"
	"sitegen/internal/infrastructure/i18n"
	"sitegen/internal/infrastructure/site"
)

func main() {
	configPath := os.Getenv("SITE_CONFIG")
	if configPath == "" {
		configPath = "site.toml"
	}

	cfg, err := config.Load(configPath)
	if err != nil {
		log.Fatalf("sitegen: %v", err)
	}

	logger, err := newLogger()
	if err != nil {
		log.Fatalf("sitegen: logger: %v", err)
	}
	defer logger.Sync()

	locales := entities.LocaleSet{
		Codes:   cfg.Locales.Codes,
		Default: cfg.Locales.Default,
	}

	translator, err := i18n.NewTranslator(os.DirFS(cfg.Paths.I18n), locales.Default, locales.Codes)
	if err != nil {
		logger.Fatal("load translations", zap.Error(err))
	}
	data, err := i18n.NewDataTable(os.DirFS(cfg.Paths.Data), locales.Default, locales.Codes)
	if err != nil {
		logger.Fatal("load data tables", zap.Error(err))
	}
	repo := content.NewRepository(os.DirFS(cfg.Paths.Content), cfg.Collections, cfg.Build.IncludeDrafts)
	renderer, err := site.NewRenderer(os.DirFS(cfg.Paths.Templates), translator, data)
	if err != nil {
		logger.Fatal("load templates", zap.Error(err))
	}
	writer, err := site.NewDistWriter(cfg.Paths.Output)
	if err != nil {
		logger.Fatal("open output directory", zap.Error(err))
	}

	builder := application.NewBuildService(
		locales, cfg.BaseURL, repo, content.NewMarkdown(), renderer, writer, logger)
	validator := application.NewValidateService(
		locales, repo, translator, data, logger)

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	if err := cli.New(cfg, builder, validator, logger).Execute(ctx); err != nil {
		logger.Error("command failed", zap.Error(err))
		os.Exit(1)
	}
}

func newLogger() (*zap.Logger, error) {
	if os.Getenv("SITE_DEBUG") != "" {
		return zap.NewDevelopment()
	}
	cfg := zap.NewProductionConfig()
	cfg.Encoding = "console"
	cfg.DisableStacktrace = true
	return cfg.Build()
}
