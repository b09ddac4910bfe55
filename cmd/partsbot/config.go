package main

import (
	"crypto/rand"
	"encoding/base64"
	"flag"
	"log"
	"os"
)

type Config struct {
	endpoint         string
	dsn              string
	telegramToken    string
	webhookURL       string
	assetsURL        string
	adminAPIPassword string
	logLevel         string
	env              string
	authSecretKey    string
}

func generateRandomString(length int) string {
	b := make([]byte, length)
	_, err := rand.Read(b)
	if err != nil {
		panic(err)
	}
	return base64.StdEncoding.EncodeToString(b)
}

func NewConfig() Config {
	var (
		endpoint         string
		dsn              string
		telegramToken    string
		webhookURL       string
		assetsURL        string
		adminAPIPassword string
		logLevel         string
		env              string
		authSecretKey    string
	)

	flag.StringVar(&endpoint, "a", "localhost:8090", "address and port to run server")
	flag.StringVar(&dsn, "d", "", "data source name for database connection")
	flag.StringVar(&telegramToken, "t", "", "telegram bot api token")
	flag.StringVar(&webhookURL, "w", "", "public webhook url, empty enables long polling")
	flag.StringVar(&assetsURL, "s", "", "base url for static images")
	flag.Parse()

	if address := os.Getenv("RUN_ADDRESS"); address != "" {
		endpoint = address
	}

	if d := os.Getenv("DATABASE_URI"); d != "" {
		dsn = d
	}

	if token := os.Getenv("TELEGRAM_TOKEN"); token != "" {
		telegramToken = token
	}

	if url := os.Getenv("WEBHOOK_URL"); url != "" {
		webhookURL = url
	}

	if url := os.Getenv("ASSETS_URL"); url != "" {
		assetsURL = url
	}

	if password := os.Getenv("ADMIN_API_PASSWORD"); password != "" {
		adminAPIPassword = password
	} else {
		adminAPIPassword = generateRandomString(10)
		log.Printf("WARNING: ADMIN_API_PASSWORD has to be defined, a random one is generated\n")
	}

	if l := os.Getenv("LOG_LEVEL"); l != "" {
		logLevel = l
	} else {
		logLevel = "error"
	}

	if e := os.Getenv("ENV"); e != "" {
		env = e
	} else {
		env = "production"
	}

	if secret := os.Getenv("AUTH_SECRET_KEY"); secret != "" {
		authSecretKey = secret
	} else {
		if env == "production" {
			authSecretKey = generateRandomString(10)
			log.Printf("WARNING: AUTH_SECRET_KEY has to be defined for production environment\n")
		} else {
			authSecretKey = "development-key"
		}
	}

	return Config{
		endpoint,
		dsn,
		telegramToken,
		webhookURL,
		assetsURL,
		adminAPIPassword,
		logLevel,
		env,
		authSecretKey,
	}
}
