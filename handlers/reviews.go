package handlers

import (
	"math"
	"net/http"
	"strings"

	"servicehub/middleware"
	"servicehub/models"
	"servicehub/services/catalog"
	"servicehub/services/user"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// ReviewHandler serves review listing and submission.
type ReviewHandler struct {
	Catalog catalog.CatalogService
	Users   user.UserService
}

func NewReviewHandler(cs catalog.CatalogService, us user.UserService) *ReviewHandler {
	return &ReviewHandler{Catalog: cs, Users: us}
}

// ListReviews handles GET /api/reviews?serviceId=|userId=.
func (h *ReviewHandler) ListReviews(c *gin.Context) {
	ctx := c.Request.Context()
	if serviceID, ok := queryID(c, "serviceId"); ok {
		reviews, err := h.Catalog.ListByService(ctx, serviceID)
		if err != nil {
			respondError(c, "Failed to fetch reviews", err)
			return
		}
		c.JSON(http.StatusOK, gin.H{"reviews": reviews})
		return
	}
	if userID, ok := queryID(c, "userId"); ok {
		reviews, err := h.Catalog.ListByUser(ctx, userID)
		if err != nil {
			respondError(c, "Failed to fetch reviews", err)
			return
		}
		c.JSON(http.StatusOK, gin.H{"reviews": reviews})
		return
	}
	c.JSON(http.StatusOK, gin.H{"reviews": []models.Review{}})
}

type reviewRequest struct {
	ServiceID int64   `json:"serviceId"`
	Rating    float64 `json:"rating"`
	Comment   string  `json:"comment"`
	UserID    int64   `json:"userId"`
	Name      string  `json:"name"`
}

// CreateReview handles POST /api/reviews. The reviewer is the token's user
// when present, then the body's userId/name, then the anonymous defaults.
func (h *ReviewHandler) CreateReview(c *gin.Context) {
	var req reviewRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, err.Error())
		return
	}
	if req.ServiceID <= 0 {
		badRequest(c, "serviceId is required")
		return
	}
	if req.Rating != math.Trunc(req.Rating) || req.Rating < 1 || req.Rating > 5 {
		respondError(c, "Invalid rating", catalog.ErrInvalidReview)
		return
	}

	in := models.ReviewInput{
		UserID:  req.UserID,
		Name:    strings.TrimSpace(req.Name),
		Rating:  int(req.Rating),
		Comment: strings.TrimSpace(req.Comment),
	}
	if uid, ok := middleware.UserID(c); ok {
		in.UserID = uid
		if u, err := h.Users.GetUserByID(c.Request.Context(), uid); err == nil {
			in.Name = u.Name
			in.Avatar = u.Avatar
		} else {
			getLogger(c).Warn("CreateReview: reviewer not found", zap.Int64("userID", uid), zap.Error(err))
		}
	}

	review, err := h.Catalog.AddReview(c.Request.Context(), req.ServiceID, in)
	if err != nil {
		respondError(c, "Service not found", err)
		return
	}
	c.JSON(http.StatusCreated, gin.H{"review": review})
}
