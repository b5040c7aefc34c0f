package handlers

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"
	apierrors "github.com/srqtax/tdt/internal/errors"
	"github.com/srqtax/tdt/internal/middleware"
	"github.com/srqtax/tdt/internal/models"
	"github.com/srqtax/tdt/internal/repository"
	"github.com/srqtax/tdt/internal/services"
)

// PropertyHandler handles property-related HTTP requests.
type PropertyHandler struct {
	service services.PropertyService
}

// NewPropertyHandler creates a new PropertyHandler instance.
func NewPropertyHandler(service services.PropertyService) *PropertyHandler {
	return &PropertyHandler{
		service: service,
	}
}

// ListPropertiesRequest represents the query parameters for the list endpoint.
type ListPropertiesRequest struct {
	Scenario *int   `form:"scenario" binding:"omitempty,min=1,max=4"`
	Search   string `form:"search"`
	Limit    int    `form:"limit" binding:"omitempty,min=1,max=500"`
	Offset   int    `form:"offset" binding:"omitempty,min=0"`
}

// LookupPropertyRequest represents the query parameters for the lookup endpoint.
type LookupPropertyRequest struct {
	ParcelID  string `form:"parcel_id"`
	TDTNumber string `form:"tdt_number"`
}

// CreatePropertyRequest represents the JSON body for the intake endpoint.
type CreatePropertyRequest struct {
	ParcelID       *string  `json:"parcel_id"`
	OwnerName      *string  `json:"owner_name"`
	Address        string   `json:"address" binding:"required"`
	StreetNumber   *string  `json:"street_number"`
	LocDescription *string  `json:"loc_description"`
	City           string   `json:"city"`
	ZipCode        string   `json:"zip_code"`
	Lat            *float64 `json:"lat" binding:"omitempty,min=-90,max=90"`
	Lng            *float64 `json:"lng" binding:"omitempty,min=-180,max=180"`
	LandUseCode    *string  `json:"land_use_code"`
	ZoningType     string   `json:"zoning_type"`
	Description    *string  `json:"description"`
	Homestead      bool     `json:"homestead_status"`
	Register       bool     `json:"register"`
}

// PropertyListResponse represents the response for the list endpoint.
type PropertyListResponse struct {
	Properties []models.Property `json:"properties"`
	Count      int               `json:"count"`
}

// MapResponse represents the response for the map endpoint.
type MapResponse struct {
	Points []repository.MapPoint `json:"points"`
	Count  int                   `json:"count"`
}

// List handles GET /api/v1/properties.
// Supports optional scenario and search filters.
func (h *PropertyHandler) List(c *gin.Context) {
	var req ListPropertiesRequest
	if err := c.ShouldBindQuery(&req); err != nil {
		if validationErrors, ok := err.(validator.ValidationErrors); ok {
			apierrors.ValidationError(c, validationErrors)
			return
		}
		apierrors.BadRequest(c, "Invalid query parameters", nil)
		return
	}

	properties, err := h.service.ListProperties(c.Request.Context(), repository.PropertyFilter{
		Scenario: req.Scenario,
		Search:   req.Search,
		Limit:    req.Limit,
		Offset:   req.Offset,
	})
	if err != nil {
		apierrors.InternalServerError(c, "Failed to list properties", err)
		return
	}

	c.JSON(http.StatusOK, PropertyListResponse{
		Properties: properties,
		Count:      len(properties),
	})
}

// Map handles GET /api/v1/properties/map.
// Returns the reduced point set consumed by the dashboard map.
func (h *PropertyHandler) Map(c *gin.Context) {
	points, err := h.service.GetMapPoints(c.Request.Context())
	if err != nil {
		apierrors.InternalServerError(c, "Failed to load map data", err)
		return
	}

	c.JSON(http.StatusOK, MapResponse{
		Points: points,
		Count:  len(points),
	})
}

// Get handles GET /api/v1/properties/:id.
func (h *PropertyHandler) Get(c *gin.Context) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		apierrors.BadRequest(c, "Property id must be an integer", nil)
		return
	}

	property, err := h.service.GetProperty(c.Request.Context(), id)
	if err != nil {
		if errors.Is(err, services.ErrPropertyNotFound) {
			apierrors.NotFound(c, "Property not found")
			return
		}
		apierrors.InternalServerError(c, "Failed to query property", err)
		return
	}

	c.JSON(http.StatusOK, property)
}

// Lookup handles GET /api/v1/properties/lookup.
// Resolves a property by parcel_id or tdt_number query parameter.
func (h *PropertyHandler) Lookup(c *gin.Context) {
	var req LookupPropertyRequest
	if err := c.ShouldBindQuery(&req); err != nil {
		apierrors.BadRequest(c, "Invalid query parameters", nil)
		return
	}

	property, err := h.service.LookupProperty(c.Request.Context(), req.ParcelID, req.TDTNumber)
	if err != nil {
		if errors.Is(err, services.ErrLookupKeyRequired) {
			apierrors.BadRequest(c, "Either parcel_id or tdt_number is required", nil)
			return
		}
		if errors.Is(err, services.ErrPropertyNotFound) {
			apierrors.NotFound(c, "Property not found")
			return
		}
		apierrors.InternalServerError(c, "Failed to look up property", err)
		return
	}

	c.JSON(http.StatusOK, property)
}

// Create handles POST /api/v1/properties.
func (h *PropertyHandler) Create(c *gin.Context) {
	log := middleware.GetLogger(c)

	var req CreatePropertyRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		if validationErrors, ok := err.(validator.ValidationErrors); ok {
			apierrors.ValidationError(c, validationErrors)
			return
		}
		apierrors.BadRequest(c, "Invalid request body", nil)
		return
	}

	if log != nil {
		log.Info("Processing property intake", map[string]interface{}{
			"address":  req.Address,
			"register": req.Register,
		})
	}

	property, err := h.service.CreateProperty(c.Request.Context(), services.CreatePropertyInput{
		ParcelID:       req.ParcelID,
		OwnerName:      req.OwnerName,
		Address:        req.Address,
		StreetNumber:   req.StreetNumber,
		LocDescription: req.LocDescription,
		City:           req.City,
		ZipCode:        req.ZipCode,
		Lat:            req.Lat,
		Lng:            req.Lng,
		LandUseCode:    req.LandUseCode,
		ZoningType:     req.ZoningType,
		Description:    req.Description,
		Homestead:      req.Homestead,
		Register:       req.Register,
	})
	if err != nil {
		if errors.Is(err, services.ErrDuplicateProperty) {
			apierrors.Conflict(c, "A property with this parcel id already exists")
			return
		}
		apierrors.InternalServerError(c, "Failed to create property", err)
		return
	}

	c.JSON(http.StatusCreated, property)
}

// Register handles POST /api/v1/properties/:id/register.
// Performs the one-time unregistered -> registered transition.
func (h *PropertyHandler) Register(c *gin.Context) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		apierrors.BadRequest(c, "Property id must be an integer", nil)
		return
	}

	property, err := h.service.RegisterProperty(c.Request.Context(), id)
	if err != nil {
		if errors.Is(err, services.ErrPropertyNotFound) {
			apierrors.NotFound(c, "Property not found")
			return
		}
		if errors.Is(err, services.ErrAlreadyRegistered) {
			apierrors.Conflict(c, "Property is already registered")
			return
		}
		apierrors.InternalServerError(c, "Failed to register property", err)
		return
	}

	c.JSON(http.StatusOK, property)
}
