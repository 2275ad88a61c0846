package compatibility

import (
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

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
	group := router.Group("/api/compatibility", middlewares.Identity(c.Log))
	group.POST("", c.createAnalysis)
	group.GET("", c.listAnalyses)
	group.GET("/:id", c.getAnalysis)
}

// createAnalysis рассчитывает совместимость двух людей и сохраняет анализ
func (c *Controller) createAnalysis(ctx *gin.Context) {
	userID := middlewares.UserID(ctx)

	var req CreateRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		c.Log.Warn("failed to bind compatibility request",
			"error", err,
			"user_id", userID)
		ctx.JSON(http.StatusBadRequest, gin.H{"message": "Failed to create compatibility analysis"})
		return
	}

	analysis, err := c.Service.CreateCompatibility(ctx.Request.Context(), userID, req.Person1Data, req.Person2Data)
	if err != nil {
		server.WriteError(ctx, c.Log, err, "Failed to create compatibility analysis")
		return
	}

	ctx.JSON(http.StatusOK, analysis)
}

// listAnalyses все анализы пользователя, новые первыми
func (c *Controller) listAnalyses(ctx *gin.Context) {
	userID := middlewares.UserID(ctx)

	analyses, err := c.Service.ListCompatibilities(ctx.Request.Context(), userID)
	if err != nil {
		server.WriteError(ctx, c.Log, err, "Failed to fetch compatibility analyses")
		return
	}

	ctx.JSON(http.StatusOK, analyses)
}

// getAnalysis анализ по идентификатору, только для владельца
func (c *Controller) getAnalysis(ctx *gin.Context) {
	userID := middlewares.UserID(ctx)

	id, err := uuid.Parse(ctx.Param("id"))
	if err != nil {
		ctx.JSON(http.StatusNotFound, gin.H{"message": "Compatibility analysis not found"})
		return
	}

	analysis, err := c.Service.GetCompatibility(ctx.Request.Context(), userID, id)
	if err != nil {
		server.WriteError(ctx, c.Log, err, "Failed to fetch compatibility analysis")
		return
	}

	ctx.JSON(http.StatusOK, analysis)
}
