package router

import (
	"encoding/json"
	"fmt"
	"net/http"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"

	"github.com/zamezamo/partsbot/internal/middlewares"
	"github.com/zamezamo/partsbot/internal/models"
)

// Webhook принимает обновление от мессенджера и ставит его в очередь бота.
// Ответ отдается сразу: обновление обрабатывается асинхронно.
func Webhook(w http.ResponseWriter, r *http.Request) {
	updateSink := middlewares.GetServiceFromContext[models.UpdateSink](w, r, middlewares.UpdateSinkKey)

	var update tgbotapi.Update
	if err := json.NewDecoder(r.Body).Decode(&update); err != nil {
		http.Error(w, fmt.Sprintf("Ошибка при разборе обновления: %s", err.Error()), http.StatusBadRequest)
		return
	}

	(*updateSink).Enqueue(update)
	w.WriteHeader(http.StatusOK)
}
