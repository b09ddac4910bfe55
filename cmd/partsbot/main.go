package main

import (
	"context"
	"log"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
	"github.com/joho/godotenv"
	"golang.org/x/sync/errgroup"

	"github.com/zamezamo/partsbot/internal/bot"
	"github.com/zamezamo/partsbot/internal/database"
	router "github.com/zamezamo/partsbot/internal/http"
	"github.com/zamezamo/partsbot/internal/logger"
	"github.com/zamezamo/partsbot/internal/services"
	"github.com/zamezamo/partsbot/internal/utils"
)

func main() {
	ctx, cancel := context.WithCancel(context.Background())

	// .env необязателен, переменные окружения имеют приоритет.
	_ = godotenv.Load()
	config := NewConfig()

	if err := logger.Initialize(config.logLevel, config.env); err != nil {
		log.Fatalf("Logger wasn't initialized due to %s", err)
	}

	db, err := database.New(ctx, config.dsn)
	if err != nil {
		log.Fatalf("Database wasn't initialized due to %s", err)
	}

	if err := db.RunMigrations(); err != nil {
		log.Fatalf("Migrations weren't run due to %s", err)
	}

	api, err := tgbotapi.NewBotAPI(config.telegramToken)
	if err != nil {
		log.Fatalf("Telegram API wasn't initialized due to %s", err)
	}

	authService, err := services.NewAdminAuthService(config.adminAPIPassword)
	if err != nil {
		log.Fatalf("Auth service wasn't initialized due to %s", err)
	}

	transport := bot.NewTelegram(api)
	notifierService := services.NewNotifierService(transport, db)
	statsService := services.NewStatsService(db)

	tgBot := bot.New(
		transport,
		config.assetsURL,
		services.NewCatalogService(db),
		services.NewCartService(db),
		services.NewOrderLifecycleService(db, notifierService),
		services.NewProfileService(db),
		services.NewAdminService(db),
		statsService,
	)

	utils.HandleTerminationProcess(func() {
		cancel()
		db.Close()
	})

	g, gCtx := errgroup.WithContext(ctx)

	g.Go(func() error {
		return tgBot.Run(gCtx)
	})

	if config.webhookURL == "" {
		// Без публичного адреса обновления забираются длинным опросом.
		g.Go(func() error {
			updateConfig := tgbotapi.NewUpdate(0)
			updateConfig.Timeout = 30

			updates := api.GetUpdatesChan(updateConfig)
			for {
				select {
				case update := <-updates:
					tgBot.Enqueue(update)
				case <-gCtx.Done():
					api.StopReceivingUpdates()
					return gCtx.Err()
				}
			}
		})
	} else {
		wh, err := tgbotapi.NewWebhook(config.webhookURL + "/telegram")
		if err != nil {
			log.Fatalf("Webhook wasn't built due to %s", err)
		}
		if _, err := api.Request(wh); err != nil {
			log.Fatalf("Webhook wasn't set due to %s", err)
		}
	}

	log.Printf("Running server on %s\n", config.endpoint)

	router.New(
		router.Config{Endpoint: config.endpoint},
		authService,
		services.NewJWTService(config.authSecretKey),
		statsService,
		tgBot,
	).Run()

	if err := g.Wait(); err != nil {
		log.Printf("Bot stopped due to %s\n", err)
	}
}
