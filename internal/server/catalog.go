package server

import (
	"io"
	"net/http"
	"strconv"
	"strings"

	"github.com/gin-gonic/gin"
	catalogdomain "github.com/raqamly/console/internal/catalog/domain"
	"github.com/raqamly/console/internal/observability/metrics"
)

type catalogHandler struct {
	catalog catalogdomain.Service
	authn   *Authenticator
	metrics *metrics.Metrics
}

func (h *catalogHandler) Register(r *gin.RouterGroup) {
	catalog := r.Group("/catalog/products", h.authn.Required())
	catalog.POST("", h.Add)
	catalog.GET("", h.List)
	catalog.GET("/watch", h.Watch)
	catalog.GET("/:id", h.Get)
	catalog.PATCH("/:id", h.Update)
	catalog.DELETE("/:id", h.Delete)
}

func (h *catalogHandler) Add(c *gin.Context) {
	var req catalogdomain.AddProductRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		abortBadRequest(c, err)
		return
	}

	// the local store takes what it is given; required fields are enforced here
	if strings.TrimSpace(req.Name) == "" {
		abortWithError(c, catalogdomain.ErrInvalidName)
		return
	}
	if req.Price < 0 {
		abortWithError(c, catalogdomain.ErrInvalidPrice)
		return
	}

	product, err := h.catalog.Add(c.Request.Context(), req)
	if err != nil {
		abortWithError(c, err)
		return
	}

	h.metrics.RecordCatalogWrite(c.Request.Context(), "add")
	c.JSON(http.StatusCreated, gin.H{"product": product})
}

func (h *catalogHandler) List(c *gin.Context) {
	products, err := h.catalog.List(c.Request.Context())
	if err != nil {
		abortWithError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"products": products})
}

func (h *catalogHandler) Get(c *gin.Context) {
	id, ok := parseCatalogID(c)
	if !ok {
		return
	}

	product, err := h.catalog.Get(c.Request.Context(), id)
	if err != nil {
		abortWithError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"product": product})
}

func (h *catalogHandler) Update(c *gin.Context) {
	id, ok := parseCatalogID(c)
	if !ok {
		return
	}

	var req catalogdomain.UpdateProductRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		abortBadRequest(c, err)
		return
	}

	if req.Name != nil && strings.TrimSpace(*req.Name) == "" {
		abortWithError(c, catalogdomain.ErrInvalidName)
		return
	}
	if req.Price != nil && *req.Price < 0 {
		abortWithError(c, catalogdomain.ErrInvalidPrice)
		return
	}

	product, err := h.catalog.Update(c.Request.Context(), id, req)
	if err != nil {
		abortWithError(c, err)
		return
	}

	h.metrics.RecordCatalogWrite(c.Request.Context(), "update")
	c.JSON(http.StatusOK, gin.H{"product": product})
}

func (h *catalogHandler) Delete(c *gin.Context) {
	id, ok := parseCatalogID(c)
	if !ok {
		return
	}

	if err := h.catalog.Delete(c.Request.Context(), id); err != nil {
		abortWithError(c, err)
		return
	}

	h.metrics.RecordCatalogWrite(c.Request.Context(), "delete")
	c.Status(http.StatusNoContent)
}

// Watch streams catalog snapshots as server-sent events. The client gets the
// current state immediately and a new event after every mutation.
func (h *catalogHandler) Watch(c *gin.Context) {
	sub, err := h.catalog.Watch(c.Request.Context())
	if err != nil {
		abortWithError(c, err)
		return
	}
	defer sub.Close()

	c.Writer.Header().Set("Cache-Control", "no-cache")
	c.Stream(func(w io.Writer) bool {
		select {
		case snapshot, ok := <-sub.Snapshots():
			if !ok {
				return false
			}
			c.SSEvent("snapshot", snapshot)
			return true
		case <-c.Request.Context().Done():
			return false
		}
	})
}

func parseCatalogID(c *gin.Context) (uint, bool) {
	raw, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		abortWithError(c, catalogdomain.ErrNotFound)
		return 0, false
	}
	return uint(raw), true
}
