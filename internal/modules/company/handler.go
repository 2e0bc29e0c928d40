package company

import (
	"errors"
	"net/http"
	"strconv"

	"eventagency/internal/domain"
	"eventagency/internal/pkg/response"
	"eventagency/internal/pkg/validator"

	"github.com/gin-gonic/gin"
)

type PartnerRequest struct {
	Name        string `json:"name" binding:"required"`
	Category    string `json:"category"`
	LogoURL     string `json:"logo_url"`
	WebsiteURL  string `json:"website_url"`
	Description string `json:"description"`
}

type StaffRequest struct {
	Name         string `json:"name" binding:"required"`
	Role         string `json:"role"`
	Bio          string `json:"bio"`
	PhotoURL     string `json:"photo_url"`
	Email        string `json:"email" binding:"omitempty,email"`
	Phone        string `json:"phone"`
	DisplayOrder int    `json:"display_order"`
}

type Handler struct {
	service *Service
}

func NewHandler(service *Service) *Handler {
	return &Handler{service: service}
}

func (h *Handler) RegisterPublicRoutes(rg *gin.RouterGroup) {
	rg.GET("/partners", h.ListPartners)
	rg.GET("/partners/:id", h.GetPartner)
	rg.GET("/staff", h.ListStaff)
	rg.GET("/staff/:id", h.GetStaff)
}

func (h *Handler) RegisterAdminRoutes(rg *gin.RouterGroup) {
	rg.POST("/partners", h.CreatePartner)
	rg.PUT("/partners/:id", h.UpdatePartner)
	rg.DELETE("/partners/:id", h.DeletePartner)
	rg.POST("/staff", h.CreateStaff)
	rg.PUT("/staff/:id", h.UpdateStaff)
	rg.DELETE("/staff/:id", h.DeleteStaff)
}

func (h *Handler) ListPartners(c *gin.Context) {
	partners, err := h.service.ListPartners(c.Request.Context())
	if err != nil {
		h.respondError(c, err)
		return
	}
	response.Success(c, http.StatusOK, gin.H{"partners": partners})
}

func (h *Handler) GetPartner(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}
	p, err := h.service.GetPartner(c.Request.Context(), id)
	if err != nil {
		h.respondError(c, err)
		return
	}
	response.Success(c, http.StatusOK, gin.H{"partner": p})
}

func (h *Handler) CreatePartner(c *gin.Context) {
	var req PartnerRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		validator.BindError(c, err)
		return
	}
	p := partnerFromRequest(req)
	if err := h.service.CreatePartner(c.Request.Context(), p); err != nil {
		h.respondError(c, err)
		return
	}
	response.Success(c, http.StatusCreated, gin.H{"partner": p})
}

func (h *Handler) UpdatePartner(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}
	var req PartnerRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		validator.BindError(c, err)
		return
	}
	p := partnerFromRequest(req)
	p.ID = id
	if err := h.service.UpdatePartner(c.Request.Context(), p); err != nil {
		h.respondError(c, err)
		return
	}
	response.Success(c, http.StatusOK, gin.H{"partner": p})
}

func (h *Handler) DeletePartner(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}
	if err := h.service.DeletePartner(c.Request.Context(), id); err != nil {
		h.respondError(c, err)
		return
	}
	response.Success(c, http.StatusOK, gin.H{"deleted": true})
}

func (h *Handler) ListStaff(c *gin.Context) {
	staff, err := h.service.ListStaff(c.Request.Context())
	if err != nil {
		h.respondError(c, err)
		return
	}
	response.Success(c, http.StatusOK, gin.H{"staff": staff})
}

func (h *Handler) GetStaff(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}
	m, err := h.service.GetStaff(c.Request.Context(), id)
	if err != nil {
		h.respondError(c, err)
		return
	}
	response.Success(c, http.StatusOK, gin.H{"staff": m})
}

func (h *Handler) CreateStaff(c *gin.Context) {
	var req StaffRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		validator.BindError(c, err)
		return
	}
	m := staffFromRequest(req)
	if err := h.service.CreateStaff(c.Request.Context(), m); err != nil {
		h.respondError(c, err)
		return
	}
	response.Success(c, http.StatusCreated, gin.H{"staff": m})
}

func (h *Handler) UpdateStaff(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}
	var req StaffRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		validator.BindError(c, err)
		return
	}
	m := staffFromRequest(req)
	m.ID = id
	if err := h.service.UpdateStaff(c.Request.Context(), m); err != nil {
		h.respondError(c, err)
		return
	}
	response.Success(c, http.StatusOK, gin.H{"staff": m})
}

func (h *Handler) DeleteStaff(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}
	if err := h.service.DeleteStaff(c.Request.Context(), id); err != nil {
		h.respondError(c, err)
		return
	}
	response.Success(c, http.StatusOK, gin.H{"deleted": true})
}

func partnerFromRequest(req PartnerRequest) *domain.Partner {
	return &domain.Partner{
		Name:        req.Name,
		Category:    req.Category,
		LogoURL:     req.LogoURL,
		WebsiteURL:  req.WebsiteURL,
		Description: req.Description,
	}
}

func staffFromRequest(req StaffRequest) *domain.Staff {
	return &domain.Staff{
		Name:         req.Name,
		Role:         req.Role,
		Bio:          req.Bio,
		PhotoURL:     req.PhotoURL,
		Email:        req.Email,
		Phone:        req.Phone,
		DisplayOrder: req.DisplayOrder,
	}
}

func (h *Handler) respondError(c *gin.Context, err error) {
	if errors.Is(err, ErrNotFound) {
		response.Error(c, http.StatusNotFound, "NOT_FOUND", "Not found")
		return
	}
	response.Error(c, http.StatusInternalServerError, "INTERNAL_ERROR", "Something went wrong")
}

func pathID(c *gin.Context) (int64, bool) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil || id <= 0 {
		response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", "Invalid id")
		return 0, false
	}
	return id, true
}
