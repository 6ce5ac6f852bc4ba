package server

import (
	"fmt"
	"net/http"
	"path/filepath"
	"strconv"

	"github.com/gin-gonic/gin"
	campaigndomain "github.com/raqamly/console/internal/campaign/domain"
	notificationdomain "github.com/raqamly/console/internal/notification/domain"
	"github.com/raqamly/console/internal/observability/logger"
	"github.com/raqamly/console/internal/observability/metrics"
	"go.uber.org/zap"
	"golang.org/x/time/rate"
)

type campaignHandler struct {
	campaigns     campaigndomain.Service
	notifications notificationdomain.Service
	authn         *Authenticator
	metrics       *metrics.Metrics
	limiter       *rate.Limiter
}

func (h *campaignHandler) Register(r *gin.RouterGroup) {
	campaigns := r.Group("/campaigns", h.authn.Required())
	campaigns.POST("/generate", h.Generate)
	campaigns.POST("", h.Save)
	campaigns.GET("", h.List)
	campaigns.GET("/:id", h.Get)
	campaigns.POST("/:id/export", h.Export)
}

type generateRequest struct {
	ProductID uint   `json:"product_id" binding:"required"`
	Platform  string `json:"platform" binding:"required"`
	Language  string `json:"language"`
}

func (h *campaignHandler) Generate(c *gin.Context) {
	if !h.limiter.Allow() {
		c.AbortWithStatusJSON(http.StatusTooManyRequests, gin.H{"error": errorPayload{
			Type:    "rate_limited",
			Code:    "generation_rate_limited",
			Message: "too many generation requests",
		}})
		return
	}

	var req generateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		abortBadRequest(c, err)
		return
	}

	sessionKey := ""
	if sess := currentSession(c); sess != nil {
		sessionKey = sess.SessionTokenHash
	}

	campaign, err := h.campaigns.Generate(c.Request.Context(), campaigndomain.GenerateRequest{
		SessionKey: sessionKey,
		ProductID:  req.ProductID,
		Platform:   req.Platform,
		Language:   req.Language,
	})
	if err != nil {
		h.metrics.RecordCampaignGeneration(c.Request.Context(), req.Platform, "failure")
		abortWithError(c, err)
		return
	}

	h.metrics.RecordCampaignGeneration(c.Request.Context(), campaign.Platform, "success")
	c.JSON(http.StatusOK, gin.H{"campaign": campaign})
}

func (h *campaignHandler) Save(c *gin.Context) {
	var campaign campaigndomain.Campaign
	if err := c.ShouldBindJSON(&campaign); err != nil {
		abortBadRequest(c, err)
		return
	}

	saved, err := h.campaigns.Save(c.Request.Context(), &campaign)
	if err != nil {
		abortWithError(c, err)
		return
	}
	c.JSON(http.StatusCreated, gin.H{"campaign": saved})
}

func (h *campaignHandler) List(c *gin.Context) {
	productID, err := strconv.ParseUint(c.Query("product_id"), 10, 64)
	if err != nil {
		abortBadRequest(c, err)
		return
	}

	campaigns, err := h.campaigns.ListByProduct(c.Request.Context(), uint(productID))
	if err != nil {
		abortWithError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"campaigns": campaigns})
}

func (h *campaignHandler) Get(c *gin.Context) {
	campaign, err := h.campaigns.Get(c.Request.Context(), c.Param("id"))
	if err != nil {
		abortWithError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"campaign": campaign})
}

func (h *campaignHandler) Export(c *gin.Context) {
	path, err := h.campaigns.Export(c.Request.Context(), c.Param("id"))
	if err != nil {
		abortWithError(c, err)
		return
	}

	// export success lands in the user's notification feed; a failure to
	// record it does not fail the export
	if user := currentUser(c); user != nil {
		if _, err := h.notifications.Notify(c.Request.Context(), user.ID, notificationdomain.NotifyRequest{
			Type:    notificationdomain.TypeSuccess,
			Content: fmt.Sprintf("Export ready: %s", filepath.Base(path)),
		}); err != nil {
			logger.FromContext(c.Request.Context()).Warn("failed to record export notification", zap.Error(err))
		}
	}

	c.JSON(http.StatusOK, gin.H{"path": path, "filename": filepath.Base(path)})
}
