package bootstrap

import (
	"context"
	"log"

	"github.com/redis/go-redis/v9"
	"gorm.io/gorm"

	"book-duets-be/internal/config"
	"book-duets-be/internal/controller"
	"book-duets-be/internal/pkg/logger"
	"book-duets-be/internal/repository/implementation"
	"book-duets-be/internal/service"
	"book-duets-be/pkg/corpus"
	"book-duets-be/pkg/filter"
	"book-duets-be/pkg/lyrics"
	"book-duets-be/pkg/quotes"
	"book-duets-be/pkg/store"
	"book-duets-be/pkg/textgen"
)

type Container struct {
	DuetController    controller.IDuetController
	PairingController controller.IPairingController

	Logger logger.ILogger
}

func NewContainer(db *gorm.DB, cfg *config.Config) *Container {
	sysLogger := logger.NewZapLogger(cfg.App.LogFilePath, cfg.App.Environment == "production")

	// Shared corpus cache + build-frequency log. Redis in deployment; the
	// in-memory store only when REDIS_URL is explicitly emptied (dev runs).
	var cache corpus.Cache
	var buildLog corpus.BuildLog
	if cfg.App.RedisURL == "" {
		log.Println("[WARN] REDIS_URL empty, using in-memory corpus store")
		mem := store.NewMemoryStore()
		cache, buildLog = mem, mem
	} else {
		opt, err := redis.ParseURL(cfg.App.RedisURL)
		if err != nil {
			log.Printf("[WARN] Failed to parse Redis URL: %v. Using direct Addr", err)
			opt = &redis.Options{Addr: cfg.App.RedisURL}
		}
		rdb := redis.NewClient(opt)
		if _, err := rdb.Ping(context.Background()).Result(); err != nil {
			log.Printf("[WARN] Failed to connect to Redis: %v", err)
		}
		rs := store.NewRedisStore(rdb)
		cache, buildLog = rs, rs
	}

	// Providers
	lyricsClient := lyrics.NewClient(lyrics.Config{
		APIKey:  cfg.Providers.MusixmatchKey,
		BaseURL: cfg.Providers.MusixmatchBaseURL,
		Timeout: cfg.Providers.Timeout,
	})
	quotesClient := quotes.NewClient(quotes.Config{
		BaseURL: cfg.Providers.WikiquoteBaseURL,
		Timeout: cfg.Providers.Timeout,
	})

	builder := corpus.NewBuilder(
		cache,
		buildLog,
		cfg.Corpus.TTL,
		corpus.NewLyricalSource(lyricsClient),
		corpus.NewLiterarySource(quotesClient),
	)

	langFilter := filter.New(cfg.Corpus.FilterWords)

	duetService := service.NewDuetService(builder, textgen.NewEphemeralModel, langFilter, sysLogger)

	pairingRepo := implementation.NewSuggestedPairingRepository(db)
	pairingService := service.NewPairingService(pairingRepo, cfg.Corpus.DictionariesDir, textgen.NewEphemeralModel, sysLogger)

	return &Container{
		DuetController:    controller.NewDuetController(duetService),
		PairingController: controller.NewPairingController(pairingService),
		Logger:            sysLogger,
	}
}
