package router

import (
	"fmt"
	"net/http"

	"github.com/zamezamo/partsbot/internal/middlewares"
	"github.com/zamezamo/partsbot/internal/models"
)

// GetStats возвращает сводную статистику магазина.
func GetStats(w http.ResponseWriter, r *http.Request) {
	statsService := middlewares.GetServiceFromContext[models.StatsService](w, r, middlewares.StatsServiceKey)

	stats, err := (*statsService).GetStats(r.Context())
	if err != nil {
		http.Error(w, fmt.Sprintf("Произошла ошибка при получении статистики: %s", err.Error()), http.StatusInternalServerError)
		return
	}

	middlewares.EncodeJSONResponse(w, stats)
}
