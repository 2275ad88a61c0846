package subscription

import (
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"

	server "github.com/admin/astro-apps/kundali-api/internal/adapters/primary/http"
	"github.com/admin/astro-apps/kundali-api/internal/adapters/primary/http/middlewares"
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
	group := router.Group("/api/subscription", middlewares.Identity(c.Log))
	group.GET("", c.getSubscription)
	group.POST("", c.upgradeSubscription)
}

// getSubscription подписка пользователя, без записи в БД — базовый план
func (c *Controller) getSubscription(ctx *gin.Context) {
	userID := middlewares.UserID(ctx)

	subscription, err := c.Service.GetSubscription(ctx.Request.Context(), userID)
	if err != nil {
		server.WriteError(ctx, c.Log, err, "Failed to fetch subscription")
		return
	}

	ctx.JSON(http.StatusOK, subscription)
}

// upgradeSubscription смена плана подписки
func (c *Controller) upgradeSubscription(ctx *gin.Context) {
	userID := middlewares.UserID(ctx)

	var req UpgradeRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		c.Log.Warn("failed to bind subscription request",
			"error", err,
			"user_id", userID)
		ctx.JSON(http.StatusBadRequest, gin.H{"message": "Failed to create subscription"})
		return
	}

	subscription, err := c.Service.UpgradeSubscription(ctx.Request.Context(), userID, req.Plan)
	if err != nil {
		server.WriteError(ctx, c.Log, err, "Failed to create subscription")
		return
	}

	ctx.JSON(http.StatusOK, subscription)
}
