package catalog

import (
	"errors"
	"net/http"
	"strconv"

	"eventagency/internal/pkg/response"
	"eventagency/internal/pkg/validator"
	"eventagency/internal/repository"

	"github.com/gin-gonic/gin"
)

type Handler struct {
	service *Service
}

func NewHandler(service *Service) *Handler {
	return &Handler{service: service}
}

// RegisterPublicRoutes exposes the read-only catalog. Public listings only
// show active/available items.
func (h *Handler) RegisterPublicRoutes(rg *gin.RouterGroup) {
	rg.GET("/events", h.ListEvents)
	rg.GET("/events/:id", h.GetEvent)
	rg.GET("/cars", h.ListCars)
	rg.GET("/cars/:id", h.GetCar)
	rg.GET("/tours", h.ListTours)
	rg.GET("/tours/:id", h.GetTour)
}

// RegisterAdminRoutes exposes the write side on the authenticated group.
// Admin listings include inactive items.
func (h *Handler) RegisterAdminRoutes(rg *gin.RouterGroup) {
	rg.GET("/events", h.AdminListEvents)
	rg.GET("/cars", h.AdminListCars)
	rg.GET("/tours", h.AdminListTours)
	rg.POST("/events", h.CreateEvent)
	rg.PUT("/events/:id", h.UpdateEvent)
	rg.DELETE("/events/:id", h.DeleteEvent)
	rg.POST("/cars", h.CreateCar)
	rg.PUT("/cars/:id", h.UpdateCar)
	rg.DELETE("/cars/:id", h.DeleteCar)
	rg.POST("/tours", h.CreateTour)
	rg.PUT("/tours/:id", h.UpdateTour)
	rg.DELETE("/tours/:id", h.DeleteTour)
}

func (h *Handler) ListEvents(c *gin.Context) {
	f := repository.EventFilters{
		Category:     c.Query("category"),
		FeaturedOnly: c.Query("featured") == "true",
		ActiveOnly:   true,
	}
	events, err := h.service.ListEvents(c.Request.Context(), f)
	if err != nil {
		h.respondError(c, err)
		return
	}
	response.Success(c, http.StatusOK, gin.H{"events": events})
}

func (h *Handler) GetEvent(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}
	e, err := h.service.GetEvent(c.Request.Context(), id)
	if err != nil {
		h.respondError(c, err)
		return
	}
	response.Success(c, http.StatusOK, gin.H{"event": e})
}

func (h *Handler) CreateEvent(c *gin.Context) {
	var req EventRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		validator.BindError(c, err)
		return
	}
	e, err := h.service.CreateEvent(c.Request.Context(), req)
	if err != nil {
		h.respondError(c, err)
		return
	}
	response.Success(c, http.StatusCreated, gin.H{"event": e})
}

func (h *Handler) UpdateEvent(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}
	var req EventRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		validator.BindError(c, err)
		return
	}
	e, err := h.service.UpdateEvent(c.Request.Context(), id, req)
	if err != nil {
		h.respondError(c, err)
		return
	}
	response.Success(c, http.StatusOK, gin.H{"event": e})
}

func (h *Handler) DeleteEvent(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}
	if err := h.service.DeleteEvent(c.Request.Context(), id); err != nil {
		h.respondError(c, err)
		return
	}
	response.Success(c, http.StatusOK, gin.H{"deleted": true})
}

func (h *Handler) ListCars(c *gin.Context) {
	f := repository.CarFilters{
		Category:      c.Query("category"),
		AvailableOnly: c.Query("available") != "false",
	}
	cars, err := h.service.ListCars(c.Request.Context(), f)
	if err != nil {
		h.respondError(c, err)
		return
	}
	response.Success(c, http.StatusOK, gin.H{"cars": cars})
}

func (h *Handler) GetCar(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}
	car, err := h.service.GetCar(c.Request.Context(), id)
	if err != nil {
		h.respondError(c, err)
		return
	}
	response.Success(c, http.StatusOK, gin.H{"car": car})
}

func (h *Handler) CreateCar(c *gin.Context) {
	var req CarRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		validator.BindError(c, err)
		return
	}
	car, err := h.service.CreateCar(c.Request.Context(), req)
	if err != nil {
		h.respondError(c, err)
		return
	}
	response.Success(c, http.StatusCreated, gin.H{"car": car})
}

func (h *Handler) UpdateCar(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}
	var req CarRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		validator.BindError(c, err)
		return
	}
	car, err := h.service.UpdateCar(c.Request.Context(), id, req)
	if err != nil {
		h.respondError(c, err)
		return
	}
	response.Success(c, http.StatusOK, gin.H{"car": car})
}

func (h *Handler) DeleteCar(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}
	if err := h.service.DeleteCar(c.Request.Context(), id); err != nil {
		h.respondError(c, err)
		return
	}
	response.Success(c, http.StatusOK, gin.H{"deleted": true})
}

func (h *Handler) ListTours(c *gin.Context) {
	f := repository.TourFilters{
		Region:     c.Query("region"),
		ActiveOnly: true,
	}
	tours, err := h.service.ListTours(c.Request.Context(), f)
	if err != nil {
		h.respondError(c, err)
		return
	}
	response.Success(c, http.StatusOK, gin.H{"tours": tours})
}

func (h *Handler) GetTour(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}
	t, err := h.service.GetTour(c.Request.Context(), id)
	if err != nil {
		h.respondError(c, err)
		return
	}
	response.Success(c, http.StatusOK, gin.H{"tour": t})
}

func (h *Handler) CreateTour(c *gin.Context) {
	var req TourRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		validator.BindError(c, err)
		return
	}
	t, err := h.service.CreateTour(c.Request.Context(), req)
	if err != nil {
		h.respondError(c, err)
		return
	}
	response.Success(c, http.StatusCreated, gin.H{"tour": t})
}

func (h *Handler) UpdateTour(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}
	var req TourRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		validator.BindError(c, err)
		return
	}
	t, err := h.service.UpdateTour(c.Request.Context(), id, req)
	if err != nil {
		h.respondError(c, err)
		return
	}
	response.Success(c, http.StatusOK, gin.H{"tour": t})
}

func (h *Handler) DeleteTour(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}
	if err := h.service.DeleteTour(c.Request.Context(), id); err != nil {
		h.respondError(c, err)
		return
	}
	response.Success(c, http.StatusOK, gin.H{"deleted": true})
}

func (h *Handler) AdminListEvents(c *gin.Context) {
	f := repository.EventFilters{
		Category:     c.Query("category"),
		FeaturedOnly: c.Query("featured") == "true",
	}
	events, err := h.service.ListEvents(c.Request.Context(), f)
	if err != nil {
		h.respondError(c, err)
		return
	}
	response.Success(c, http.StatusOK, gin.H{"events": events})
}

func (h *Handler) AdminListCars(c *gin.Context) {
	f := repository.CarFilters{Category: c.Query("category")}
	cars, err := h.service.ListCars(c.Request.Context(), f)
	if err != nil {
		h.respondError(c, err)
		return
	}
	response.Success(c, http.StatusOK, gin.H{"cars": cars})
}

func (h *Handler) AdminListTours(c *gin.Context) {
	f := repository.TourFilters{Region: c.Query("region")}
	tours, err := h.service.ListTours(c.Request.Context(), f)
	if err != nil {
		h.respondError(c, err)
		return
	}
	response.Success(c, http.StatusOK, gin.H{"tours": tours})
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
