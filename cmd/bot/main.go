package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"github.com/joho/godotenv"

	"goldapple-bot/internal/catalog"
	"goldapple-bot/internal/config"
	"goldapple-bot/internal/contact"
	"goldapple-bot/internal/logger"
	"goldapple-bot/internal/recommend"
	"goldapple-bot/internal/scheduler"
	"goldapple-bot/internal/session"
	"goldapple-bot/internal/storage"
	"goldapple-bot/internal/telegram"
)

func main() {
	_ = godotenv.Load()

	cfg := config.New()
	logger.Init(cfg.LogLevel, cfg.LogFilePath)
	defer logger.Sync()

	repo, err := catalog.Open(cfg.CatalogDBPath)
	if err != nil {
		logger.Fatalf("failed to open catalog: %v", err)
	}

	contactRepo, err := contact.NewFileRepository(cfg.ContactsFilePath)
	if err != nil {
		logger.Fatalf("failed to open contacts store: %v", err)
	}
	contacts := contact.NewRegistry(contactRepo)

	recorder, err := storage.NewFileRecorder(cfg.TranscriptFilePath)
	if err != nil {
		logger.Fatalf("failed to open transcript recorder: %v", err)
	}

	sessions := session.NewManager(cfg.SessionTTL)
	recommender := recommend.NewService(repo)
	criteria := recommend.NewCriteriaStore(0)

	bot, err := telegram.New(
		cfg.TelegramBotToken,
		cfg.OperatorChatID,
		sessions,
		contacts,
		recommender,
		criteria,
		recorder,
		cfg.MessageParseMode,
	)
	if err != nil {
		logger.Fatalf("failed to create bot: %v", err)
	}

	sched := scheduler.New()
	sched.SetRefreshFunction(func(ctx context.Context) error {
		if err := repo.Refresh(ctx); err != nil {
			return err
		}
		counts := recommender.CategoryCounts()
		total := int64(0)
		for category, n := range counts {
			logger.Infof("catalog refresh: %s has %d products", category, n)
			total += n
		}
		if total == 0 {
			logger.Warnf("catalog refresh: catalog is empty")
		}
		return nil
	})
	if err := sched.Start(); err != nil {
		logger.Fatalf("failed to start scheduler: %v", err)
	}
	defer sched.Stop()

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	go func() {
		sig := make(chan os.Signal, 1)
		signal.Notify(sig, syscall.SIGINT, syscall.SIGTERM)
		<-sig
		logger.Infof("shutting down")
		cancel()
	}()

	logger.Infof("bot started, operator chat %d", cfg.OperatorChatID)
	bot.Start(ctx)
}
