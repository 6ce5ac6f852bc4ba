package server

import (
	"net/http"

	"github.com/gin-gonic/gin"
	notificationdomain "github.com/raqamly/console/internal/notification/domain"
)

// notificationHandler exposes the feed. It is read-only for clients; entries
// are produced by backend flows such as campaign export.
type notificationHandler struct {
	notifications notificationdomain.Service
	authn         *Authenticator
}

func (h *notificationHandler) Register(r *gin.RouterGroup) {
	notifications := r.Group("/notifications", h.authn.Required())
	notifications.GET("", h.List)
}

func (h *notificationHandler) List(c *gin.Context) {
	notifications, err := h.notifications.List(c.Request.Context(), currentUser(c).ID)
	if err != nil {
		abortWithError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"notifications": notifications})
}
