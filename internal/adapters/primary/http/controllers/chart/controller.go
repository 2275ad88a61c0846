package chart

import (
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	server "github.com/admin/astro-apps/kundali-api/internal/adapters/primary/http"
	"github.com/admin/astro-apps/kundali-api/internal/adapters/primary/http/middlewares"
	"github.com/admin/astro-apps/kundali-api/internal/domain"
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
	group := router.Group("/api/birth-charts", middlewares.Identity(c.Log))
	group.POST("", c.createChart)
	group.GET("", c.listCharts)
	group.GET("/:id", c.getChart)
}

// createChart создаёт натальную карту из данных рождения
func (c *Controller) createChart(ctx *gin.Context) {
	userID := middlewares.UserID(ctx)

	var data domain.BirthData
	if err := ctx.ShouldBindJSON(&data); err != nil {
		c.Log.Warn("failed to bind birth data",
			"error", err,
			"user_id", userID)
		ctx.JSON(http.StatusBadRequest, gin.H{"message": "Failed to create birth chart"})
		return
	}

	chart, err := c.Service.CreateChart(ctx.Request.Context(), userID, data)
	if err != nil {
		server.WriteError(ctx, c.Log, err, "Failed to create birth chart")
		return
	}

	ctx.JSON(http.StatusOK, chart)
}

// listCharts все карты пользователя, новые первыми
func (c *Controller) listCharts(ctx *gin.Context) {
	userID := middlewares.UserID(ctx)

	charts, err := c.Service.ListCharts(ctx.Request.Context(), userID)
	if err != nil {
		server.WriteError(ctx, c.Log, err, "Failed to fetch birth charts")
		return
	}

	ctx.JSON(http.StatusOK, charts)
}

// getChart карта по идентификатору, только для владельца
func (c *Controller) getChart(ctx *gin.Context) {
	userID := middlewares.UserID(ctx)

	chartID, err := uuid.Parse(ctx.Param("id"))
	if err != nil {
		ctx.JSON(http.StatusNotFound, gin.H{"message": "Birth chart not found"})
		return
	}

	chart, err := c.Service.GetChart(ctx.Request.Context(), userID, chartID)
	if err != nil {
		server.WriteError(ctx, c.Log, err, "Failed to fetch birth chart")
		return
	}

	ctx.JSON(http.StatusOK, chart)
}
