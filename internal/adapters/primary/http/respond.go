package server

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/admin/astro-apps/kundali-api/internal/domain"
)

// WriteError маппит доменные ошибки на HTTP-статусы и отвечает шаблонным
// сообщением. Детали ошибки остаются в логах и не утекают клиенту.
func WriteError(ctx *gin.Context, log *slog.Logger, err error, message string) {
	status := http.StatusInternalServerError
	switch {
	case errors.Is(err, domain.ErrValidation):
		status = http.StatusBadRequest
	case errors.Is(err, domain.ErrNotFound):
		status = http.StatusNotFound
	case errors.Is(err, domain.ErrForbidden):
		status = http.StatusForbidden
	}

	if status == http.StatusInternalServerError {
		log.Error(message,
			"error", err,
			"path", ctx.Request.URL.Path)
	} else {
		log.Warn(message,
			"error", err,
			"status", status,
			"path", ctx.Request.URL.Path)
	}

	ctx.JSON(status, gin.H{"message": message})
}
