package main

import (
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"forge.capytal.company/capytal/dislate-relay/bot"
	"forge.capytal.company/capytal/dislate-relay/config"
	"forge.capytal.company/capytal/dislate-relay/detector"
	"forge.capytal.company/capytal/dislate-relay/router"
	"forge.capytal.company/capytal/dislate-relay/translator"

	"github.com/charmbracelet/log"
)

func main() {
	l := log.NewWithOptions(os.Stderr, log.Options{
		ReportTimestamp: true,
		Prefix:          "dislate-relay",
	})

	cfg, err := config.Load()
	if err != nil {
		l.Fatal("Failed to load configuration", "err", err)
	}
	l.SetLevel(cfg.LogLevel)
	logger := slog.New(l)

	t, err := translator.New(translator.Config{
		Engine:  cfg.Engine,
		APIKey:  cfg.APIKey,
		BaseURL: cfg.TranslationURL,
		Logger:  logger.With(slog.String("component", "translator")),
	})
	if err != nil {
		l.Fatal("Failed to create translator", "err", err)
	}

	ls, err := detector.NewLingua(cfg.DetectionLanguages, cfg.PreloadModels)
	if err != nil {
		l.Fatal("Failed to create language detector", "err", err)
	}
	d := detector.New(ls, cfg.ValidLanguages, logger.With(slog.String("component", "detector")))

	b, err := bot.NewBot(cfg.DiscordToken, logger)
	if err != nil {
		l.Fatal("Failed to create bot", "err", err)
	}

	r := router.New(
		cfg.Routes,
		t,
		d,
		b.Sender(),
		logger.With(slog.String("component", "router")),
		router.Options{ReportAllFailures: cfg.ReportAllFailures},
	)

	if err := b.Start(r); err != nil {
		l.Fatal("Failed to start bot", "err", err)
	}
	logger.Info("Bot session opened successfully",
		slog.String("engine", string(cfg.Engine)),
		slog.Bool("report_all_failures", cfg.ReportAllFailures),
	)

	sig := make(chan os.Signal, 1)
	signal.Notify(sig, os.Interrupt, syscall.SIGINT, syscall.SIGTERM)
	<-sig

	if err := b.Stop(); err != nil {
		logger.Error("Could not close session", slog.String("err", err.Error()))
		os.Exit(1)
	}
	logger.Info("Bot session closed successfully")
}
