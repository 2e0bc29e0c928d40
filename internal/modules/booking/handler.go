package booking

import (
	"errors"
	"fmt"
	"net/http"
	"strconv"
	"time"

	"eventagency/internal/domain"
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

// RegisterRoutes mounts the booking endpoints on the authenticated admin
// group. The static stats route is registered before the :id routes.
func (h *Handler) RegisterRoutes(rg *gin.RouterGroup) {
	rg.GET("/bookings/stats/summary", h.Stats)
	rg.GET("/bookings/export", h.Export)
	rg.GET("/bookings", h.List)
	rg.POST("/bookings", h.Create)
	rg.GET("/bookings/:id", h.Get)
	rg.PUT("/bookings/:id", h.Update)
	rg.DELETE("/bookings/:id", h.Delete)
	rg.PATCH("/bookings/:id/status", h.UpdateStatus)
	rg.PATCH("/bookings/:id/payment", h.UpdatePayment)
}

func (h *Handler) Create(c *gin.Context) {
	var req CreateBookingRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		validator.BindError(c, err)
		return
	}

	b, err := h.service.Create(c.Request.Context(), req)
	if err != nil {
		h.respondError(c, err)
		return
	}

	response.Success(c, http.StatusCreated, gin.H{
		"id":             b.ID,
		"booking_number": b.BookingNumber,
		"booking":        b,
	})
}

func (h *Handler) List(c *gin.Context) {
	f := repository.BookingFilters{
		Status:      c.Query("status"),
		ServiceType: c.Query("type"),
	}
	if v := c.Query("startDate"); v != "" {
		t, err := time.Parse("2006-01-02", v)
		if err != nil {
			response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", "startDate must be YYYY-MM-DD")
			return
		}
		f.StartDate = &t
	}
	if v := c.Query("endDate"); v != "" {
		t, err := time.Parse("2006-01-02", v)
		if err != nil {
			response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", "endDate must be YYYY-MM-DD")
			return
		}
		// inclusive upper bound on a date-only filter
		end := t.AddDate(0, 0, 1)
		f.EndDate = &end
	}
	if v := c.Query("customerId"); v != "" {
		id, err := strconv.ParseInt(v, 10, 64)
		if err != nil {
			response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", "customerId must be an integer")
			return
		}
		f.CustomerID = id
	}

	rows, err := h.service.List(c.Request.Context(), f)
	if err != nil {
		h.respondError(c, err)
		return
	}
	response.Success(c, http.StatusOK, gin.H{"bookings": rows})
}

func (h *Handler) Get(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}

	b, err := h.service.GetByID(c.Request.Context(), id)
	if err != nil {
		h.respondError(c, err)
		return
	}
	response.Success(c, http.StatusOK, gin.H{"booking": b})
}

func (h *Handler) Update(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}

	var req UpdateBookingRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		validator.BindError(c, err)
		return
	}

	b, err := h.service.Update(c.Request.Context(), id, req)
	if err != nil {
		h.respondError(c, err)
		return
	}
	response.Success(c, http.StatusOK, gin.H{"booking": b})
}

func (h *Handler) Delete(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}

	if err := h.service.Delete(c.Request.Context(), id); err != nil {
		h.respondError(c, err)
		return
	}
	response.Success(c, http.StatusOK, gin.H{"deleted": true})
}

func (h *Handler) UpdateStatus(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}

	var req UpdateStatusRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		validator.BindError(c, err)
		return
	}

	b, err := h.service.UpdateStatus(c.Request.Context(), id, domain.BookingStatus(req.Status))
	if err != nil {
		h.respondError(c, err)
		return
	}
	response.Success(c, http.StatusOK, gin.H{"booking": b})
}

func (h *Handler) UpdatePayment(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}

	var req UpdatePaymentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		validator.BindError(c, err)
		return
	}

	b, err := h.service.UpdatePayment(c.Request.Context(), id, domain.PaymentStatus(req.PaymentStatus))
	if err != nil {
		h.respondError(c, err)
		return
	}
	response.Success(c, http.StatusOK, gin.H{"booking": b})
}

func (h *Handler) Stats(c *gin.Context) {
	summary, err := h.service.Stats(c.Request.Context())
	if err != nil {
		h.respondError(c, err)
		return
	}
	response.Success(c, http.StatusOK, gin.H{"summary": summary})
}

func (h *Handler) Export(c *gin.Context) {
	f := repository.BookingFilters{
		Status:      c.Query("status"),
		ServiceType: c.Query("type"),
	}

	file, err := h.service.ExportXLSX(c.Request.Context(), f)
	if err != nil {
		h.respondError(c, err)
		return
	}
	defer file.Close()

	name := ExportFileName(time.Now())
	c.Header("Content-Disposition", fmt.Sprintf("attachment; filename=%q", name))
	c.Header("Content-Type", "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet")
	if err := file.Write(c.Writer); err != nil {
		c.Status(http.StatusInternalServerError)
	}
}

func (h *Handler) respondError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, ErrNotFound):
		response.Error(c, http.StatusNotFound, "NOT_FOUND", "Booking not found")
	case errors.Is(err, ErrCustomerNotFound):
		response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", "Customer does not exist")
	case errors.Is(err, ErrServiceNotFound):
		response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", "Service does not exist")
	case errors.Is(err, ErrValidation):
		response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", "Invalid booking fields")
	case errors.Is(err, ErrInvalidTransition):
		response.Error(c, http.StatusConflict, "INVALID_TRANSITION", "Status transition not allowed")
	case errors.Is(err, ErrDuplicateNumber):
		response.Error(c, http.StatusConflict, "CONFLICT", "Booking number collision, retry the request")
	default:
		response.Error(c, http.StatusInternalServerError, "INTERNAL_ERROR", "Something went wrong")
	}
}

func pathID(c *gin.Context) (int64, bool) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil || id <= 0 {
		response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", "Invalid id")
		return 0, false
	}
	return id, true
}
