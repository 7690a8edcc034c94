package http

import (
	"net/http"
	"strconv"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"golang.org/x/time/rate"

	"project_sentinel/internal/infrastructure"
	"project_sentinel/internal/usecases"
)

type Handler struct {
	dashboard *usecases.DashboardUsecase
	chat      *usecases.ChatService
	log       *infrastructure.Logger
}

func NewHandler(dashboard *usecases.DashboardUsecase, chat *usecases.ChatService, log *infrastructure.Logger) *Handler {
	return &Handler{dashboard: dashboard, chat: chat, log: log.With("service", "Handler")}
}

func SetupRoutes(r *gin.Engine, dashboard *usecases.DashboardUsecase, chat *usecases.ChatService, middleware *Middleware, chatRate float64, chatBurst int, log *infrastructure.Logger) {
	h := NewHandler(dashboard, chat, log)

	r.Use(SecurityHeaders())
	r.Use(cors.Default())

	r.GET("/", h.DashboardPage)
	r.GET("/healthz", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	api := r.Group("/api")
	{
		api.GET("/metrics", h.GetMetrics)
		api.GET("/charts", h.GetCharts)
		api.GET("/insights", h.GetInsights)
		api.GET("/risk", h.GetRisk)

		api.POST("/chat", middleware.RateLimitPerClient(rate.Limit(chatRate), chatBurst), h.PostChat)
		api.GET("/chat/:session_id/history", h.GetHistory)

		api.POST("/dataset/reload", h.ReloadDataset)
	}
}

func (h *Handler) GetMetrics(c *gin.Context) {
	m, err := h.dashboard.Metrics()
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, m)
}

func (h *Handler) GetCharts(c *gin.Context) {
	charts, err := h.dashboard.Charts()
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, charts)
}

func (h *Handler) GetInsights(c *gin.Context) {
	cards, err := h.dashboard.Insights()
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"insights": cards})
}

func (h *Handler) GetRisk(c *gin.Context) {
	limit := 0
	if raw := c.Query("limit"); raw != "" {
		n, err := strconv.Atoi(raw)
		if err != nil || n < 1 {
			c.JSON(http.StatusBadRequest, gin.H{"error": "limit must be a positive integer"})
			return
		}
		limit = n
	}
	entries, err := h.dashboard.Risk(limit)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"customers": entries})
}

func (h *Handler) PostChat(c *gin.Context) {
	var payload struct {
		SessionID string `json:"session_id"`
		Message   string `json:"message" binding:"required"`
	}
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	result := h.chat.HandleTurn(c.Request.Context(), payload.SessionID, payload.Message)

	resp := gin.H{
		"session_id": result.SessionID,
		"reply":      result.Reply,
	}
	if result.Table != nil {
		resp["table"] = result.Table
	}
	if result.Err != "" {
		resp["error"] = result.Err
	}
	c.JSON(http.StatusOK, resp)
}

func (h *Handler) GetHistory(c *gin.Context) {
	sessionID := c.Param("session_id")
	history, ok := h.chat.History(sessionID)
	if !ok {
		c.JSON(http.StatusNotFound, gin.H{"error": "session not found"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"session_id": sessionID, "messages": history})
}

func (h *Handler) ReloadDataset(c *gin.Context) {
	if err := h.dashboard.Reload(); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	h.log.Info("dataset reloaded")
	c.JSON(http.StatusOK, gin.H{"status": "reloaded"})
}
