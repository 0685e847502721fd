package handler

import (
	"context"
	"errors"
	"io"
	"net/http"
	"time"

	"github.com/google/uuid"
	"github.com/wb-go/wbf/ginext"
	"github.com/yseddiki/ohIPlay/internal/domain"
	"github.com/yseddiki/ohIPlay/internal/handler/dto"
	"github.com/yseddiki/ohIPlay/internal/payment"
)

type BookingSvc interface {
	Create(ctx context.Context, input domain.CreateBookingInput) (*domain.Booking, error)
	GetByID(ctx context.Context, id string) (*domain.Booking, error)
	List(ctx context.Context, filter domain.BookingFilter) ([]*domain.Booking, error)
	Override(ctx context.Context, id string, newStatus domain.BookingStatus) (*domain.Booking, error)
}

type CheckoutSvc interface {
	OpenSession(ctx context.Context, bookingID string) (*domain.CheckoutSession, error)
}

type WebhookSvc interface {
	HandleEvent(ctx context.Context, payload []byte, signature string) error
}

type OfferingSvc interface {
	GetByID(ctx context.Context, id string) (*domain.Offering, error)
	List(ctx context.Context) ([]*domain.Offering, error)
}

type Handler struct {
	bookingService  BookingSvc
	checkoutService CheckoutSvc
	webhookService  WebhookSvc
	offeringService OfferingSvc
}

func NewHandler(bookingService BookingSvc, checkoutService CheckoutSvc, webhookService WebhookSvc, offeringService OfferingSvc) *Handler {
	return &Handler{
		bookingService:  bookingService,
		checkoutService: checkoutService,
		webhookService:  webhookService,
		offeringService: offeringService,
	}
}

// Bookings

func (h *Handler) CreateBooking(c *ginext.Context) {
	var req dto.CreateBookingRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: err.Error()})
		return
	}

	bookingDate, err := time.Parse(time.RFC3339, req.BookingDate)
	if err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error: "invalid booking_date format, expected RFC3339",
		})
		return
	}

	input := domain.CreateBookingInput{
		OfferingID: req.OfferingID,
		Customer: domain.CustomerInfo{
			FullName: req.Customer.FullName,
			Email:    req.Customer.Email,
			Phone:    req.Customer.Phone,
		},
		NumberOfParticipants: req.NumberOfParticipants,
		BookingDate:          bookingDate,
		SpecialRequests:      req.SpecialRequests,
	}

	booking, err := h.bookingService.Create(c.Request.Context(), input)
	if err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusCreated, dto.ToBookingResponse(booking))
}

func (h *Handler) GetBooking(c *ginext.Context) {
	id := c.Param("id")
	if _, err := uuid.Parse(id); err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: "invalid booking id"})
		return
	}

	booking, err := h.bookingService.GetByID(c.Request.Context(), id)
	if err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.ToBookingResponse(booking))
}

// Checkout

func (h *Handler) OpenCheckout(c *ginext.Context) {
	id := c.Param("id")
	if _, err := uuid.Parse(id); err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: "invalid booking id"})
		return
	}

	session, err := h.checkoutService.OpenSession(c.Request.Context(), id)
	if err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.ToCheckoutResponse(session))
}

// PaymentWebhook receives gateway deliveries. Anything past an authentic
// signature is acknowledged, otherwise the gateway would redeliver forever.
func (h *Handler) PaymentWebhook(c *ginext.Context) {
	payload, err := io.ReadAll(c.Request.Body)
	if err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: "unreadable payload"})
		return
	}

	signature := c.Request.Header.Get(payment.SignatureHeader)
	if err := h.webhookService.HandleEvent(c.Request.Context(), payload, signature); err != nil {
		if errors.Is(err, domain.ErrInvalidSignature) {
			c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: err.Error()})
			return
		}
		c.Set("error", err.Error())
		c.JSON(http.StatusInternalServerError, dto.ErrorResponse{Error: "internal server error"})
		return
	}

	c.JSON(http.StatusOK, ginext.H{"received": true})
}

// Offerings

func (h *Handler) GetOffering(c *ginext.Context) {
	id := c.Param("id")
	if _, err := uuid.Parse(id); err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: "invalid offering id"})
		return
	}

	offering, err := h.offeringService.GetByID(c.Request.Context(), id)
	if err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.ToOfferingResponse(offering))
}

func (h *Handler) ListOfferings(c *ginext.Context) {
	offerings, err := h.offeringService.List(c.Request.Context())
	if err != nil {
		h.handleError(c, err)
		return
	}

	resp := make([]dto.OfferingResponse, 0, len(offerings))
	for _, o := range offerings {
		resp = append(resp, dto.ToOfferingResponse(o))
	}

	c.JSON(http.StatusOK, resp)
}

// Operator

func (h *Handler) ListBookings(c *ginext.Context) {
	var filter domain.BookingFilter
	if s := c.Query("status"); s != "" {
		status := domain.BookingStatus(s)
		if !status.Valid() {
			c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: "invalid status filter"})
			return
		}
		filter.Status = &status
	}
	filter.Email = c.Query("email")

	bookings, err := h.bookingService.List(c.Request.Context(), filter)
	if err != nil {
		h.handleError(c, err)
		return
	}

	resp := make([]dto.BookingResponse, 0, len(bookings))
	for _, b := range bookings {
		resp = append(resp, dto.ToBookingResponse(b))
	}

	c.JSON(http.StatusOK, resp)
}

func (h *Handler) OverrideBookingStatus(c *ginext.Context) {
	id := c.Param("id")
	if _, err := uuid.Parse(id); err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: "invalid booking id"})
		return
	}

	var req dto.OverrideStatusRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: err.Error()})
		return
	}

	booking, err := h.bookingService.Override(c.Request.Context(), id, domain.BookingStatus(req.Status))
	if err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.ToBookingResponse(booking))
}

func (h *Handler) handleError(c *ginext.Context, err error) {
	c.Set("error", err.Error())

	switch {
	case errors.Is(err, domain.ErrBookingNotFound),
		errors.Is(err, domain.ErrOfferingNotFound):
		c.JSON(http.StatusNotFound, dto.ErrorResponse{Error: err.Error()})

	case errors.Is(err, domain.ErrSessionAlreadyOpen),
		errors.Is(err, domain.ErrBookingAlreadyPaid),
		errors.Is(err, domain.ErrIllegalTransition):
		c.JSON(http.StatusConflict, dto.ErrorResponse{Error: err.Error()})

	case errors.Is(err, domain.ErrValidation):
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: err.Error()})

	case errors.Is(err, domain.ErrProviderUnavailable):
		c.JSON(http.StatusBadGateway, dto.ErrorResponse{Error: "payment provider unavailable, try again later"})

	default:
		c.JSON(http.StatusInternalServerError, dto.ErrorResponse{Error: "internal server error"})
	}
}
