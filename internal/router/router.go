package router

import (
	"net/http"

	"github.com/wb-go/wbf/ginext"
	"github.com/yseddiki/ohIPlay/internal/metrics"
)

type Handler interface {
	CreateBooking(c *ginext.Context)
	GetBooking(c *ginext.Context)
	OpenCheckout(c *ginext.Context)
	PaymentWebhook(c *ginext.Context)
	GetOffering(c *ginext.Context)
	ListOfferings(c *ginext.Context)
	ListBookings(c *ginext.Context)
	OverrideBookingStatus(c *ginext.Context)
}

func InitRouter(mode string, h Handler, mw ...ginext.HandlerFunc) *ginext.Engine {
	router := ginext.New(mode)
	router.Use(mw...)

	api := router.Group("/api")
	{
		// Offerings (read-only)
		api.GET("/offerings", h.ListOfferings)
		api.GET("/offerings/:id", h.GetOffering)

		// Bookings
		api.POST("/bookings", h.CreateBooking)
		api.GET("/bookings/:id", h.GetBooking)
		api.POST("/bookings/:id/checkout", h.OpenCheckout)

		// Gateway callbacks
		api.POST("/webhooks/payment", h.PaymentWebhook)

		// Operator. Authentication sits in front of this group, outside
		// this service.
		admin := api.Group("/admin")
		{
			admin.GET("/bookings", h.ListBookings)
			admin.POST("/bookings/:id/status", h.OverrideBookingStatus)
		}
	}

	router.GET("/health", func(c *ginext.Context) {
		c.JSON(http.StatusOK, ginext.H{"status": "ok"})
	})

	router.GET("/metrics", metrics.Handler())

	return router
}
