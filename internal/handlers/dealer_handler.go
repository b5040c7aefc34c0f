package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	apierrors "github.com/srqtax/tdt/internal/errors"
	"github.com/srqtax/tdt/internal/models"
	"github.com/srqtax/tdt/internal/services"
)

// DealerHandler handles dealer-related HTTP requests.
type DealerHandler struct {
	service services.DealerService
}

// NewDealerHandler creates a new DealerHandler instance.
func NewDealerHandler(service services.DealerService) *DealerHandler {
	return &DealerHandler{
		service: service,
	}
}

// DealerListResponse represents the response for the dealer list endpoint.
type DealerListResponse struct {
	Dealers []models.Dealer `json:"dealers"`
	Count   int             `json:"count"`
}

// List handles GET /api/v1/dealers.
func (h *DealerHandler) List(c *gin.Context) {
	dealers, err := h.service.ListDealers(c.Request.Context())
	if err != nil {
		apierrors.InternalServerError(c, "Failed to list dealers", err)
		return
	}

	c.JSON(http.StatusOK, DealerListResponse{
		Dealers: dealers,
		Count:   len(dealers),
	})
}
