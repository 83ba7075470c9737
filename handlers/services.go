package handlers

import (
	"net/http"
	"strings"

	"servicehub/models"
	"servicehub/services/catalog"
	"servicehub/services/user"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// ServiceHandler serves the public catalog and the provider's own listings.
type ServiceHandler struct {
	Catalog catalog.CatalogService
	Users   user.UserService
}

// NewServiceHandler creates a new ServiceHandler.
func NewServiceHandler(cs catalog.CatalogService, us user.UserService) *ServiceHandler {
	return &ServiceHandler{Catalog: cs, Users: us}
}

// ListServices handles GET /api/services.
func (h *ServiceHandler) ListServices(c *gin.Context) {
	sortBy := c.Query("sortBy")
	if sortBy == "" {
		sortBy = "rating"
	}
	filter := models.ServiceFilter{
		Category: c.Query("category"),
		Location: queryString(c, "location", "city"),
		Lat:      queryFloat(c, "lat"),
		Lon:      queryFloat(c, "lon"),
		RadiusKm: queryFloat(c, "radiusKm", "radius"),
		SortBy:   models.ParseSortKey(sortBy),
	}

	services, err := h.Catalog.Search(c.Request.Context(), filter)
	if err != nil {
		respondError(c, "Failed to fetch services", err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"services": services})
}

// GetService handles GET /api/services/:id.
func (h *ServiceHandler) GetService(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		return
	}
	svc, err := h.Catalog.GetService(c.Request.Context(), id)
	if err != nil {
		respondError(c, "Service not found", err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"service": svc})
}

// serviceRequest is the body of POST /api/provider/services. Provider fields
// are always taken from the token.
type serviceRequest struct {
	Title        string   `json:"title"`
	Description  string   `json:"description"`
	Category     string   `json:"category"`
	Location     string   `json:"location"`
	City         string   `json:"city"`
	Price        float64  `json:"price"`
	DeliveryTime string   `json:"deliveryTime"`
	Features     []string `json:"features"`
	Image        string   `json:"image"`
}

// ListProviderServices handles GET /api/provider/services.
func (h *ServiceHandler) ListProviderServices(c *gin.Context) {
	providerID, ok := currentUserID(c)
	if !ok {
		return
	}
	services, err := h.Catalog.ListProviderServices(c.Request.Context(), providerID)
	if err != nil {
		respondError(c, "Failed to fetch services", err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"services": services})
}

// CreateService handles POST /api/provider/services.
func (h *ServiceHandler) CreateService(c *gin.Context) {
	logger := getLogger(c)
	providerID, ok := currentUserID(c)
	if !ok {
		return
	}
	var req serviceRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, err.Error())
		return
	}
	owner, err := h.Users.GetUserByID(c.Request.Context(), providerID)
	if err != nil {
		respondError(c, "Provider not found", err)
		return
	}

	location := strings.TrimSpace(req.City)
	if location == "" {
		location = strings.TrimSpace(req.Location)
	}
	created, err := h.Catalog.CreateService(c.Request.Context(), owner.AsProvider(), models.Service{
		Title:        req.Title,
		Description:  req.Description,
		Category:     req.Category,
		Location:     location,
		Price:        req.Price,
		DeliveryTime: req.DeliveryTime,
		Features:     req.Features,
		Image:        req.Image,
	})
	if err != nil {
		respondError(c, "Failed to create service", err)
		return
	}
	logger.Info("Service created", zap.Int64("serviceID", created.ID), zap.Int64("providerID", providerID))
	c.JSON(http.StatusCreated, gin.H{"service": created})
}

// GetProviderService handles GET /api/provider/services/:id.
func (h *ServiceHandler) GetProviderService(c *gin.Context) {
	providerID, ok := currentUserID(c)
	if !ok {
		return
	}
	id, ok := pathID(c, "id")
	if !ok {
		return
	}
	svc, err := h.Catalog.GetService(c.Request.Context(), id)
	if err != nil {
		respondError(c, "Service not found", err)
		return
	}
	if svc.ProviderID != providerID {
		respondError(c, "Service belongs to another provider", catalog.ErrForbidden)
		return
	}
	c.JSON(http.StatusOK, gin.H{"service": svc})
}

// UpdateService handles PATCH /api/provider/services/:id.
func (h *ServiceHandler) UpdateService(c *gin.Context) {
	providerID, ok := currentUserID(c)
	if !ok {
		return
	}
	id, ok := pathID(c, "id")
	if !ok {
		return
	}
	var patch models.ServicePatch
	if err := c.ShouldBindJSON(&patch); err != nil {
		badRequest(c, err.Error())
		return
	}
	updated, err := h.Catalog.UpdateService(c.Request.Context(), providerID, id, patch)
	if err != nil {
		respondError(c, "Failed to update service", err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"service": updated})
}

// DeleteService handles DELETE /api/provider/services/:id.
func (h *ServiceHandler) DeleteService(c *gin.Context) {
	providerID, ok := currentUserID(c)
	if !ok {
		return
	}
	id, ok := pathID(c, "id")
	if !ok {
		return
	}
	if err := h.Catalog.DeleteService(c.Request.Context(), providerID, id); err != nil {
		respondError(c, "Failed to delete service", err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true})
}
