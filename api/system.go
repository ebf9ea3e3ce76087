package api

import (
	"context"
	"net/http"

	"github.com/Domenick1991/spacebooking/internal/service/tips"
	"github.com/gin-gonic/gin"
)

const WelcomeMessage = "Welcome to Dubai Space Travel Booking API"

// Pinger is a dependency checked by /healthz.
type Pinger interface {
	Ping(ctx context.Context) error
}

type SystemHandler struct {
	tips   tips.TipsUseCase
	checks map[string]Pinger
}

func NewSystemHandler(tipsService tips.TipsUseCase, checks map[string]Pinger) *SystemHandler {
	return &SystemHandler{tips: tipsService, checks: checks}
}

func (h *SystemHandler) Register(router *gin.RouterGroup) {
	router.GET("/", h.root)
	router.GET("/healthz", h.health)
	router.GET("/space-travel-tips", h.spaceTravelTips)
}

func (h *SystemHandler) root(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"message": WelcomeMessage})
}

func (h *SystemHandler) spaceTravelTips(c *gin.Context) {
	c.JSON(http.StatusOK, h.tips.Sample())
}

func (h *SystemHandler) health(c *gin.Context) {
	status := http.StatusOK
	report := make(map[string]string, len(h.checks))
	for name, check := range h.checks {
		if err := check.Ping(c.Request.Context()); err != nil {
			report[name] = err.Error()
			status = http.StatusServiceUnavailable
			continue
		}
		report[name] = "ok"
	}
	c.JSON(status, gin.H{"status": http.StatusText(status), "checks": report})
}
