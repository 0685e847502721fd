package handler

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"github.com/wb-go/wbf/ginext"
	"github.com/yseddiki/ohIPlay/internal/domain"
	"github.com/yseddiki/ohIPlay/internal/handler/dto"
	hmocks "github.com/yseddiki/ohIPlay/internal/handler/mocks"
	"github.com/yseddiki/ohIPlay/internal/payment"
)

func setupRouter(t *testing.T) (*hmocks.MockBookingSvc, *hmocks.MockCheckoutSvc, *hmocks.MockWebhookSvc, *hmocks.MockOfferingSvc, http.Handler) {
	t.Helper()
	bookingSvc := hmocks.NewMockBookingSvc(t)
	checkoutSvc := hmocks.NewMockCheckoutSvc(t)
	webhookSvc := hmocks.NewMockWebhookSvc(t)
	offeringSvc := hmocks.NewMockOfferingSvc(t)

	h := NewHandler(bookingSvc, checkoutSvc, webhookSvc, offeringSvc)

	r := ginext.New("test")
	api := r.Group("/api")
	{
		api.GET("/offerings", h.ListOfferings)
		api.GET("/offerings/:id", h.GetOffering)
		api.POST("/bookings", h.CreateBooking)
		api.GET("/bookings/:id", h.GetBooking)
		api.POST("/bookings/:id/checkout", h.OpenCheckout)
		api.POST("/webhooks/payment", h.PaymentWebhook)
		api.GET("/admin/bookings", h.ListBookings)
		api.POST("/admin/bookings/:id/status", h.OverrideBookingStatus)
	}

	return bookingSvc, checkoutSvc, webhookSvc, offeringSvc, r
}

func sampleBooking(id string) *domain.Booking {
	return &domain.Booking{
		ID:         id,
		OfferingID: uuid.New().String(),
		Customer: domain.CustomerInfo{
			FullName: "Alice Martin",
			Email:    "alice@example.com",
			Phone:    "+33612345678",
		},
		NumberOfParticipants: 2,
		TotalAmountCents:     10000,
		Currency:             "EUR",
		BookingDate:          time.Now().Add(30 * 24 * time.Hour),
		Status:               domain.BookingStatusPending,
		PaymentStatus:        domain.PaymentStatusPending,
		CreatedAt:            time.Now(),
		UpdatedAt:            time.Now(),
	}
}

// --- Bookings ---

func TestHandler_CreateBooking_Success(t *testing.T) {
	bookingSvc, _, _, _, r := setupRouter(t)

	booking := sampleBooking(uuid.New().String())
	bookingSvc.EXPECT().Create(mock.Anything, mock.Anything).Return(booking, nil)

	body, _ := json.Marshal(dto.CreateBookingRequest{
		OfferingID: booking.OfferingID,
		Customer: dto.CustomerInfoRequest{
			FullName: "Alice Martin",
			Email:    "alice@example.com",
			Phone:    "+33612345678",
		},
		NumberOfParticipants: 2,
		BookingDate:          booking.BookingDate.Format(time.RFC3339),
	})

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/api/bookings", bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusCreated, w.Code)

	var resp dto.BookingResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, booking.ID, resp.ID)
	assert.Equal(t, "pending", resp.Status)
	assert.Equal(t, "pending", resp.PaymentStatus)
}

func TestHandler_CreateBooking_BadRequest(t *testing.T) {
	_, _, _, _, r := setupRouter(t)

	body := []byte(`{"offering_id":""}`)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/api/bookings", bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestHandler_CreateBooking_InvalidDate(t *testing.T) {
	_, _, _, _, r := setupRouter(t)

	body, _ := json.Marshal(dto.CreateBookingRequest{
		OfferingID: uuid.New().String(),
		Customer: dto.CustomerInfoRequest{
			FullName: "Alice Martin",
			Email:    "alice@example.com",
			Phone:    "+33612345678",
		},
		NumberOfParticipants: 2,
		BookingDate:          "next tuesday",
	})

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/api/bookings", bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestHandler_GetBooking_NotFound(t *testing.T) {
	bookingSvc, _, _, _, r := setupRouter(t)

	id := uuid.New().String()
	bookingSvc.EXPECT().GetByID(mock.Anything, id).Return(nil, domain.ErrBookingNotFound)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/api/bookings/"+id, nil)
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestHandler_GetBooking_InvalidID(t *testing.T) {
	_, _, _, _, r := setupRouter(t)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/api/bookings/not-a-uuid", nil)
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

// --- Checkout ---

func TestHandler_OpenCheckout_Success(t *testing.T) {
	_, checkoutSvc, _, _, r := setupRouter(t)

	id := uuid.New().String()
	session := &domain.CheckoutSession{SessionID: "sess_1", RedirectURL: "https://pay.example.com/sess_1"}
	checkoutSvc.EXPECT().OpenSession(mock.Anything, id).Return(session, nil)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/api/bookings/"+id+"/checkout", nil)
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)

	var resp dto.CheckoutResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, "https://pay.example.com/sess_1", resp.RedirectURL)
}

func TestHandler_OpenCheckout_Conflicts(t *testing.T) {
	tests := []struct {
		name string
		err  error
	}{
		{"already paid", domain.ErrBookingAlreadyPaid},
		{"session open", domain.ErrSessionAlreadyOpen},
		{"illegal transition", domain.ErrIllegalTransition},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, checkoutSvc, _, _, r := setupRouter(t)

			id := uuid.New().String()
			checkoutSvc.EXPECT().OpenSession(mock.Anything, id).Return(nil, tt.err)

			w := httptest.NewRecorder()
			req := httptest.NewRequest(http.MethodPost, "/api/bookings/"+id+"/checkout", nil)
			r.ServeHTTP(w, req)

			assert.Equal(t, http.StatusConflict, w.Code)
		})
	}
}

func TestHandler_OpenCheckout_ProviderDown(t *testing.T) {
	_, checkoutSvc, _, _, r := setupRouter(t)

	id := uuid.New().String()
	checkoutSvc.EXPECT().OpenSession(mock.Anything, id).Return(nil, domain.ErrProviderUnavailable)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/api/bookings/"+id+"/checkout", nil)
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusBadGateway, w.Code)
}

// --- Webhook ---

func TestHandler_PaymentWebhook_Acked(t *testing.T) {
	_, _, webhookSvc, _, r := setupRouter(t)

	payload := []byte(`{"id":"evt_1","type":"checkout.session.completed"}`)
	webhookSvc.EXPECT().HandleEvent(mock.Anything, payload, "t=1,v1=abc").Return(nil)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/api/webhooks/payment", bytes.NewReader(payload))
	req.Header.Set(payment.SignatureHeader, "t=1,v1=abc")
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `{"received":true}`, w.Body.String())
}

func TestHandler_PaymentWebhook_BadSignature(t *testing.T) {
	_, _, webhookSvc, _, r := setupRouter(t)

	payload := []byte(`{}`)
	webhookSvc.EXPECT().HandleEvent(mock.Anything, payload, "").Return(domain.ErrInvalidSignature)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/api/webhooks/payment", bytes.NewReader(payload))
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestHandler_PaymentWebhook_StorageError(t *testing.T) {
	_, _, webhookSvc, _, r := setupRouter(t)

	payload := []byte(`{}`)
	webhookSvc.EXPECT().HandleEvent(mock.Anything, payload, mock.Anything).Return(assert.AnError)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/api/webhooks/payment", bytes.NewReader(payload))
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusInternalServerError, w.Code)
}

// --- Offerings ---

func TestHandler_ListOfferings(t *testing.T) {
	_, _, _, offeringSvc, r := setupRouter(t)

	offerings := []*domain.Offering{
		{ID: uuid.New().String(), Title: "Surf Bootcamp", PriceCents: 49900, Currency: "EUR", Active: true},
		{ID: uuid.New().String(), Title: "Yoga Retreat", PriceCents: 29900, Currency: "EUR", Active: true},
	}
	offeringSvc.EXPECT().List(mock.Anything).Return(offerings, nil)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/api/offerings", nil)
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)

	var resp []dto.OfferingResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	require.Len(t, resp, 2)
	assert.Equal(t, "Surf Bootcamp", resp[0].Title)
}

func TestHandler_GetOffering_NotFound(t *testing.T) {
	_, _, _, offeringSvc, r := setupRouter(t)

	id := uuid.New().String()
	offeringSvc.EXPECT().GetByID(mock.Anything, id).Return(nil, domain.ErrOfferingNotFound)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/api/offerings/"+id, nil)
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusNotFound, w.Code)
}

// --- Operator ---

func TestHandler_ListBookings_WithFilter(t *testing.T) {
	bookingSvc, _, _, _, r := setupRouter(t)

	confirmed := domain.BookingStatusConfirmed
	bookingSvc.EXPECT().List(mock.Anything, domain.BookingFilter{Status: &confirmed, Email: "alice@example.com"}).
		Return([]*domain.Booking{sampleBooking(uuid.New().String())}, nil)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/api/admin/bookings?status=confirmed&email=alice@example.com", nil)
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)

	var resp []dto.BookingResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Len(t, resp, 1)
}

func TestHandler_ListBookings_InvalidStatus(t *testing.T) {
	_, _, _, _, r := setupRouter(t)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/api/admin/bookings?status=archived", nil)
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestHandler_OverrideStatus_Success(t *testing.T) {
	bookingSvc, _, _, _, r := setupRouter(t)

	id := uuid.New().String()
	completed := sampleBooking(id)
	completed.Status = domain.BookingStatusCompleted
	completed.PaymentStatus = domain.PaymentStatusPaid

	bookingSvc.EXPECT().Override(mock.Anything, id, domain.BookingStatusCompleted).Return(completed, nil)

	body := []byte(`{"status":"completed"}`)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/api/admin/bookings/"+id+"/status", bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)

	var resp dto.BookingResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, "completed", resp.Status)
}

func TestHandler_OverrideStatus_Illegal(t *testing.T) {
	bookingSvc, _, _, _, r := setupRouter(t)

	id := uuid.New().String()
	bookingSvc.EXPECT().Override(mock.Anything, id, domain.BookingStatusCancelled).Return(nil, domain.ErrIllegalTransition)

	body := []byte(`{"status":"cancelled"}`)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/api/admin/bookings/"+id+"/status", bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusConflict, w.Code)
}

func TestHandler_OverrideStatus_UnknownValue(t *testing.T) {
	_, _, _, _, r := setupRouter(t)

	body := []byte(`{"status":"archived"}`)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/api/admin/bookings/"+uuid.New().String()+"/status", bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)
}
