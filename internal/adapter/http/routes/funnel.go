package routes

import (
	"github.com/tukang-design/tukang-api/internal/adapter/http/handlers"
	"github.com/tukang-design/tukang-api/internal/adapter/http/middleware"
	"github.com/tukang-design/tukang-api/internal/config"

	"github.com/gin-gonic/gin"
)

const (
	PathSubmitQuote      = "/submit-quote"
	PathSendNotification = "/send-notification"
	PathAdmin            = "/admin"
)

func addFunnelRoutes(rg *gin.RouterGroup, quoteHandler *handlers.QuoteHandler, notificationHandler *handlers.NotificationHandler) {
	rg.POST(PathSubmitQuote, quoteHandler.SubmitQuote)
	rg.POST(PathSendNotification, notificationHandler.SendNotification)
}

func addAdminRoutes(
	rg *gin.RouterGroup,
	adminCfg *config.AdminConfig,
	quoteHandler *handlers.QuoteHandler,
	bookingHandler *handlers.BookingHandler,
	paymentHandler *handlers.BookingPaymentHandler,
) {
	admin := rg.Group(PathAdmin, middleware.AdminAuth(adminCfg))

	submissions := admin.Group("/submissions")
	{
		submissions.GET("", quoteHandler.ListSubmissions)
		submissions.GET("/:id", quoteHandler.GetSubmission)
		submissions.PATCH("/:id/status", quoteHandler.UpdateSubmissionStatus)
	}

	admin.GET("/follow-up", bookingHandler.RunFollowUpScan)
	admin.POST("/follow-up", bookingHandler.RecordManualFollowUp)

	bookings := admin.Group("/bookings")
	{
		bookings.POST("", bookingHandler.CreateBooking)
		bookings.GET("/:booking_id", bookingHandler.GetBooking)
		bookings.POST("/:booking_id/payments", paymentHandler.CreatePaymentByBookingID)
		bookings.GET("/:booking_id/payments", paymentHandler.ListPaymentsByBookingID)
	}
}
