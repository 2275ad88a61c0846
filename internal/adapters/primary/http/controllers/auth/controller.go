package auth

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
	group := router.Group("/api/auth", middlewares.Identity(c.Log))
	group.GET("/user", c.getUser)
}

// getUser профиль аутентифицированного пользователя
func (c *Controller) getUser(ctx *gin.Context) {
	userID := middlewares.UserID(ctx)

	user, err := c.Service.GetUser(ctx.Request.Context(), userID)
	if err != nil {
		server.WriteError(ctx, c.Log, err, "Failed to fetch user")
		return
	}

	ctx.JSON(http.StatusOK, user)
}
