package router

import (
	"log"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/zamezamo/partsbot/internal/logger"
	"github.com/zamezamo/partsbot/internal/middlewares"
	"github.com/zamezamo/partsbot/internal/models"
)

type Config struct {
	// Endpoint адрес и порт, на которых сервер будет слушать входящие запросы.
	Endpoint string
}

type Router struct {
	config       Config
	authService  models.AdminAuthService
	jwtService   models.JWTService
	statsService models.StatsService
	updateSink   models.UpdateSink
}

// New создает новый экземпляр Router с заданными зависимостями.
func New(
	config Config,
	authService models.AdminAuthService,
	jwtService models.JWTService,
	statsService models.StatsService,
	updateSink models.UpdateSink,
) *Router {
	return &Router{
		config:       config,
		authService:  authService,
		jwtService:   jwtService,
		statsService: statsService,
		updateSink:   updateSink,
	}
}

// get возвращает настроенный роутер.
func (router *Router) get() chi.Router {
	r := chi.NewRouter()

	r.Use(
		// Инжектор сервисов для предоставления сервисов в обработчиках.
		middlewares.ServiceInjectorMiddleware(
			router.authService,
			router.jwtService,
			router.statsService,
			router.updateSink,
		),
		// Логгер для регистрации запросов.
		logger.RequestLogger,
		// Middleware для проверки аутентификации, исключая указанные пути.
		middlewares.AuthMiddleware().WithExcludedPaths(
			"/telegram",
			"/api/admin/login",
		).Middleware,
	)

	// Вебхук мессенджера.
	r.Post("/telegram", Webhook)

	// Служебный API администратора.
	r.Route("/api/admin", func(r chi.Router) {
		r.With(middlewares.JSONMiddleware[models.AdminCredentials]).Post("/login", Login)
		r.Get("/stats", GetStats)
	})

	return r
}

// Run запускает HTTP сервер на заданном endpoint и начинает принимать запросы.
func (router *Router) Run() {
	log.Fatal(http.ListenAndServe(router.config.Endpoint, router.get()))
}
