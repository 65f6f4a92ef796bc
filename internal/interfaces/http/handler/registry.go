package handler

import (
	"strconv"

	appregistry "github.com/autoexpert/backend/internal/application/registry"
	"github.com/autoexpert/backend/internal/interfaces/http/middleware"
	"github.com/gin-gonic/gin"
)

// RegistryHandler handles the reference catalog endpoints
type RegistryHandler struct {
	BaseHandler
	registryService *appregistry.Service
}

// NewRegistryHandler creates a new RegistryHandler
func NewRegistryHandler(registryService *appregistry.Service) *RegistryHandler {
	return &RegistryHandler{registryService: registryService}
}

// RegisterRoutes registers catalog routes. Reads are open to every
// authenticated user, mutations are reserved to managers.
func (h *RegistryHandler) RegisterRoutes(rg *gin.RouterGroup) {
	manage := middleware.RequireManager()

	insurers := rg.Group("/insurers")
	insurers.GET("", h.ListInsurers)
	insurers.POST("", manage, h.CreateInsurer)
	insurers.PUT("/:id", manage, h.UpdateInsurer)
	insurers.DELETE("/:id", manage, h.DeleteInsurer)

	agencies := rg.Group("/agencies")
	agencies.GET("", h.ListAgencies)
	agencies.POST("", manage, h.CreateAgency)
	agencies.PUT("/:id", manage, h.UpdateAgency)
	agencies.DELETE("/:id", manage, h.DeleteAgency)

	brands := rg.Group("/brands")
	brands.GET("", h.ListBrands)
	brands.POST("", manage, h.CreateBrand)
	brands.PUT("/:id", manage, h.UpdateBrand)
	brands.DELETE("/:id", manage, h.DeleteBrand)

	garages := rg.Group("/garages")
	garages.GET("", h.ListGarages)
	garages.POST("", manage, h.CreateGarage)
	garages.PUT("/:id", manage, h.UpdateGarage)
	garages.DELETE("/:id", manage, h.DeleteGarage)
}

// ListInsurers returns all insurers ordered by name
func (h *RegistryHandler) ListInsurers(c *gin.Context) {
	insurers, err := h.registryService.ListInsurers(c.Request.Context())
	if err != nil {
		h.HandleDomainError(c, err)
		return
	}
	h.Success(c, insurers)
}

// CreateInsurer adds an insurer to the catalog
func (h *RegistryHandler) CreateInsurer(c *gin.Context) {
	var req appregistry.InsurerRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.BadRequest(c, err.Error())
		return
	}

	insurer, err := h.registryService.CreateInsurer(c.Request.Context(), req)
	if err != nil {
		h.HandleDomainError(c, err)
		return
	}
	h.Created(c, insurer)
}

// UpdateInsurer renames or recontacts an insurer
func (h *RegistryHandler) UpdateInsurer(c *gin.Context) {
	id, err := parseIDParam(c, "id")
	if err != nil {
		h.BadRequest(c, "Invalid insurer ID")
		return
	}

	var req appregistry.InsurerRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.BadRequest(c, err.Error())
		return
	}

	insurer, err := h.registryService.UpdateInsurer(c.Request.Context(), id, req)
	if err != nil {
		h.HandleDomainError(c, err)
		return
	}
	h.Success(c, insurer)
}

// DeleteInsurer removes an insurer when no mission references it
func (h *RegistryHandler) DeleteInsurer(c *gin.Context) {
	id, err := parseIDParam(c, "id")
	if err != nil {
		h.BadRequest(c, "Invalid insurer ID")
		return
	}

	if err := h.registryService.DeleteInsurer(c.Request.Context(), id); err != nil {
		h.HandleDomainError(c, err)
		return
	}
	h.NoContent(c)
}

// ListAgencies returns agencies, narrowed to one insurer when the
// insurer_id query parameter is present
func (h *RegistryHandler) ListAgencies(c *gin.Context) {
	var insurerID uint
	if raw := c.Query("insurer_id"); raw != "" {
		parsed, err := strconv.ParseUint(raw, 10, 64)
		if err != nil {
			h.BadRequest(c, "Invalid insurer_id")
			return
		}
		insurerID = uint(parsed)
	}

	agencies, err := h.registryService.ListAgencies(c.Request.Context(), insurerID)
	if err != nil {
		h.HandleDomainError(c, err)
		return
	}
	h.Success(c, agencies)
}

// CreateAgency adds an agency under an insurer
func (h *RegistryHandler) CreateAgency(c *gin.Context) {
	var req appregistry.AgencyRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.BadRequest(c, err.Error())
		return
	}

	agency, err := h.registryService.CreateAgency(c.Request.Context(), req)
	if err != nil {
		h.HandleDomainError(c, err)
		return
	}
	h.Created(c, agency)
}

// UpdateAgency updates an agency, possibly moving it to another insurer
func (h *RegistryHandler) UpdateAgency(c *gin.Context) {
	id, err := parseIDParam(c, "id")
	if err != nil {
		h.BadRequest(c, "Invalid agency ID")
		return
	}

	var req appregistry.AgencyRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.BadRequest(c, err.Error())
		return
	}

	agency, err := h.registryService.UpdateAgency(c.Request.Context(), id, req)
	if err != nil {
		h.HandleDomainError(c, err)
		return
	}
	h.Success(c, agency)
}

// DeleteAgency removes an agency when no mission references it
func (h *RegistryHandler) DeleteAgency(c *gin.Context) {
	id, err := parseIDParam(c, "id")
	if err != nil {
		h.BadRequest(c, "Invalid agency ID")
		return
	}

	if err := h.registryService.DeleteAgency(c.Request.Context(), id); err != nil {
		h.HandleDomainError(c, err)
		return
	}
	h.NoContent(c)
}

// ListBrands returns all vehicle brands ordered by name
func (h *RegistryHandler) ListBrands(c *gin.Context) {
	brands, err := h.registryService.ListBrands(c.Request.Context())
	if err != nil {
		h.HandleDomainError(c, err)
		return
	}
	h.Success(c, brands)
}

// CreateBrand adds a vehicle brand
func (h *RegistryHandler) CreateBrand(c *gin.Context) {
	var req appregistry.BrandRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.BadRequest(c, err.Error())
		return
	}

	brand, err := h.registryService.CreateBrand(c.Request.Context(), req)
	if err != nil {
		h.HandleDomainError(c, err)
		return
	}
	h.Created(c, brand)
}

// UpdateBrand renames a vehicle brand
func (h *RegistryHandler) UpdateBrand(c *gin.Context) {
	id, err := parseIDParam(c, "id")
	if err != nil {
		h.BadRequest(c, "Invalid brand ID")
		return
	}

	var req appregistry.BrandRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.BadRequest(c, err.Error())
		return
	}

	brand, err := h.registryService.UpdateBrand(c.Request.Context(), id, req)
	if err != nil {
		h.HandleDomainError(c, err)
		return
	}
	h.Success(c, brand)
}

// DeleteBrand removes a brand when no mission references it
func (h *RegistryHandler) DeleteBrand(c *gin.Context) {
	id, err := parseIDParam(c, "id")
	if err != nil {
		h.BadRequest(c, "Invalid brand ID")
		return
	}

	if err := h.registryService.DeleteBrand(c.Request.Context(), id); err != nil {
		h.HandleDomainError(c, err)
		return
	}
	h.NoContent(c)
}

// ListGarages returns all repair garages ordered by name
func (h *RegistryHandler) ListGarages(c *gin.Context) {
	garages, err := h.registryService.ListGarages(c.Request.Context())
	if err != nil {
		h.HandleDomainError(c, err)
		return
	}
	h.Success(c, garages)
}

// CreateGarage adds a repair garage
func (h *RegistryHandler) CreateGarage(c *gin.Context) {
	var req appregistry.GarageRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.BadRequest(c, err.Error())
		return
	}

	garage, err := h.registryService.CreateGarage(c.Request.Context(), req)
	if err != nil {
		h.HandleDomainError(c, err)
		return
	}
	h.Created(c, garage)
}

// UpdateGarage updates a repair garage
func (h *RegistryHandler) UpdateGarage(c *gin.Context) {
	id, err := parseIDParam(c, "id")
	if err != nil {
		h.BadRequest(c, "Invalid garage ID")
		return
	}

	var req appregistry.GarageRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.BadRequest(c, err.Error())
		return
	}

	garage, err := h.registryService.UpdateGarage(c.Request.Context(), id, req)
	if err != nil {
		h.HandleDomainError(c, err)
		return
	}
	h.Success(c, garage)
}

// DeleteGarage removes a garage when no mission references it
func (h *RegistryHandler) DeleteGarage(c *gin.Context) {
	id, err := parseIDParam(c, "id")
	if err != nil {
		h.BadRequest(c, "Invalid garage ID")
		return
	}

	if err := h.registryService.DeleteGarage(c.Request.Context(), id); err != nil {
		h.HandleDomainError(c, err)
		return
	}
	h.NoContent(c)
}
