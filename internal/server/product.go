package server

import (
	"net/http"
	"strconv"

	"github.com/bwmarrin/snowflake"
	"github.com/gin-gonic/gin"
	"github.com/raqamly/console/internal/observability/metrics"
	productdomain "github.com/raqamly/console/internal/product/domain"
)

type productHandler struct {
	products productdomain.Service
	authn    *Authenticator
	metrics  *metrics.Metrics
}

func (h *productHandler) Register(r *gin.RouterGroup) {
	products := r.Group("/products", h.authn.Required())
	products.POST("", h.Create)
	products.GET("", h.List)
	products.GET("/:id", h.Get)
	products.PATCH("/:id", h.Update)
	products.DELETE("/:id", h.Delete)
}

func (h *productHandler) Create(c *gin.Context) {
	var req productdomain.CreateProductRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		abortBadRequest(c, err)
		return
	}

	product, err := h.products.Create(c.Request.Context(), currentUser(c).ID, req)
	if err != nil {
		abortWithError(c, err)
		return
	}

	h.metrics.RecordProductWrite(c.Request.Context(), "create")
	c.JSON(http.StatusCreated, gin.H{"product": product})
}

func (h *productHandler) List(c *gin.Context) {
	products, err := h.products.List(c.Request.Context(), currentUser(c).ID)
	if err != nil {
		abortWithError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"products": products})
}

func (h *productHandler) Get(c *gin.Context) {
	id, ok := parseProductID(c)
	if !ok {
		return
	}

	product, err := h.products.Get(c.Request.Context(), currentUser(c).ID, id)
	if err != nil {
		abortWithError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"product": product})
}

func (h *productHandler) Update(c *gin.Context) {
	id, ok := parseProductID(c)
	if !ok {
		return
	}

	var req productdomain.UpdateProductRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		abortBadRequest(c, err)
		return
	}

	product, err := h.products.Update(c.Request.Context(), currentUser(c).ID, id, req)
	if err != nil {
		abortWithError(c, err)
		return
	}

	h.metrics.RecordProductWrite(c.Request.Context(), "update")
	c.JSON(http.StatusOK, gin.H{"product": product})
}

func (h *productHandler) Delete(c *gin.Context) {
	id, ok := parseProductID(c)
	if !ok {
		return
	}

	if err := h.products.Delete(c.Request.Context(), currentUser(c).ID, id); err != nil {
		abortWithError(c, err)
		return
	}

	h.metrics.RecordProductWrite(c.Request.Context(), "delete")
	c.Status(http.StatusNoContent)
}

func parseProductID(c *gin.Context) (snowflake.ID, bool) {
	raw, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		abortWithError(c, productdomain.ErrNotFound)
		return 0, false
	}
	return snowflake.ID(raw), true
}
