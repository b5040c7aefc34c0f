package handlers

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	apierrors "github.com/srqtax/tdt/internal/errors"
	"github.com/srqtax/tdt/internal/models"
	"github.com/srqtax/tdt/internal/repository"
	"github.com/srqtax/tdt/internal/services"
)

// CountyHandler serves county assessor reference data.
type CountyHandler struct {
	service services.CountyService
}

// NewCountyHandler creates a new CountyHandler instance.
func NewCountyHandler(service services.CountyService) *CountyHandler {
	return &CountyHandler{
		service: service,
	}
}

// LookupCodesResponse wraps a lookup-code listing.
type LookupCodesResponse struct {
	Codes []models.LookupCode `json:"codes"`
	Count int                 `json:"count"`
}

// Assessor handles GET /api/v1/properties/:id/assessor.
// Returns the county assessor data linked to a property by parcel id.
func (h *CountyHandler) Assessor(c *gin.Context) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		apierrors.BadRequest(c, "Property id must be an integer", nil)
		return
	}

	detail, err := h.service.GetAssessorDetail(c.Request.Context(), id)
	if err != nil {
		if errors.Is(err, services.ErrPropertyNotFound) {
			apierrors.NotFound(c, "Property not found")
			return
		}
		apierrors.InternalServerError(c, "Failed to load assessor data", err)
		return
	}

	c.JSON(http.StatusOK, detail)
}

// LookupCodes handles GET /api/v1/lookups/:kind.
// Valid kinds: land_use, deed_type, neighborhood, exemption.
func (h *CountyHandler) LookupCodes(c *gin.Context) {
	codes, err := h.service.ListLookupCodes(c.Request.Context(), c.Param("kind"))
	if err != nil {
		if errors.Is(err, repository.ErrUnknownLookupKind) {
			apierrors.BadRequest(c, "Unknown lookup kind", map[string]interface{}{
				"kind": c.Param("kind"),
			})
			return
		}
		apierrors.InternalServerError(c, "Failed to load lookup codes", err)
		return
	}

	if codes == nil {
		codes = []models.LookupCode{}
	}
	c.JSON(http.StatusOK, LookupCodesResponse{
		Codes: codes,
		Count: len(codes),
	})
}
