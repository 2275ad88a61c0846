package prediction

import (
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"

	server "github.com/admin/astro-apps/kundali-api/internal/adapters/primary/http"
	"github.com/admin/astro-apps/kundali-api/internal/adapters/primary/http/middlewares"
	"github.com/admin/astro-apps/kundali-api/internal/ports/repository"
	"github.com/admin/astro-apps/kundali-api/internal/usecases/astro"
)

type Controller struct {
	Service *astro.Service
	Log     *slog.Logger
}

func New(service *astro.Service, log *slog.Logger) *Controller {
	return &Controller{
		Service: service,
		Log:     log,
	}
}

func (c *Controller) RegisterRoutes(router *gin.Engine) {
	group := router.Group("/api/predictions", middlewares.Identity(c.Log))
	group.GET("", c.listPredictions)
	group.GET("/active", c.activePredictions)
}

// listPredictions прогнозы пользователя, опциональные фильтры type и category
func (c *Controller) listPredictions(ctx *gin.Context) {
	userID := middlewares.UserID(ctx)

	filter := repository.PredictionFilter{
		Type:     ctx.Query("type"),
		Category: ctx.Query("category"),
	}

	predictions, err := c.Service.ListPredictions(ctx.Request.Context(), userID, filter)
	if err != nil {
		server.WriteError(ctx, c.Log, err, "Failed to fetch predictions")
		return
	}

	ctx.JSON(http.StatusOK, predictions)
}

// activePredictions прогнозы с окном действия, покрывающим сегодняшний день
func (c *Controller) activePredictions(ctx *gin.Context) {
	userID := middlewares.UserID(ctx)

	predictions, err := c.Service.ActivePredictions(ctx.Request.Context(), userID)
	if err != nil {
		server.WriteError(ctx, c.Log, err, "Failed to fetch active predictions")
		return
	}

	ctx.JSON(http.StatusOK, predictions)
}
