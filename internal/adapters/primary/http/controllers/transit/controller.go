package transit

import (
	"log/slog"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	server "github.com/admin/astro-apps/kundali-api/internal/adapters/primary/http"
	"github.com/admin/astro-apps/kundali-api/internal/usecases/astro"
)

const defaultLimit = 10

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
	// Каталог транзитов публичный, аутентификация не требуется
	router.GET("/api/transits", c.listTransits)
}

// listTransits ближайшие события каталога транзитов
func (c *Controller) listTransits(ctx *gin.Context) {
	limit, err := strconv.Atoi(ctx.Query("limit"))
	if err != nil || limit <= 0 {
		limit = defaultLimit
	}

	transits, err := c.Service.UpcomingTransits(ctx.Request.Context(), limit)
	if err != nil {
		server.WriteError(ctx, c.Log, err, "Failed to fetch transits")
		return
	}

	ctx.JSON(http.StatusOK, transits)
}
