package routes

import (
	"log"
	"strconv"

	_ "github.com/tukang-design/tukang-api/docs" // This will be auto-generated
	"github.com/tukang-design/tukang-api/internal/adapter/http/handlers"
	repository2 "github.com/tukang-design/tukang-api/internal/adapter/persistence/repository"
	"github.com/tukang-design/tukang-api/internal/config"
	"github.com/tukang-design/tukang-api/internal/infrastructure/database"
	"github.com/tukang-design/tukang-api/internal/infrastructure/mail"
	"github.com/tukang-design/tukang-api/internal/infrastructure/payments"
	"github.com/tukang-design/tukang-api/internal/usecase"
	"github.com/tukang-design/tukang-api/internal/usecase/interfaces"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
)

var router = gin.Default()

// Run will start the server
func Run() {
	cfg := config.Load()

	setMiddlewares()

	// Swagger documentation endpoint
	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	getRoutes(cfg)

	err := router.Run(":" + strconv.Itoa(cfg.Port))
	if err != nil {
		log.Fatalf("Failed to startup the application: %v", err.Error())
	}
}

func getRoutes(cfg *config.Config) {
	ddb := database.ConnectDynamoDB(cfg.AWS)

	submissionRepo := repository2.NewSubmissionDynamoRepository(ddb, cfg.Tables.Submissions)
	bookingRepo := repository2.NewBookingDynamoRepository(ddb, cfg.Tables.Bookings)
	paymentRepo := repository2.NewBookingPaymentDynamoRepository(ddb, cfg.Tables.BookingPayments)

	var mailer interfaces.IMailer
	smtpMailer, err := mail.NewSMTPMailer(cfg.Mail)
	if err != nil {
		log.Printf("SMTP mailer not configured: %v", err)
	} else {
		mailer = smtpMailer
	}

	var paymentGateway interfaces.IPaymentGateway
	mpGateway, err := payments.NewMercadoPagoGateway(cfg.Payments)
	if err != nil {
		log.Printf("Mercado Pago gateway not configured: %v", err)
	} else {
		paymentGateway = mpGateway
	}

	notificationUseCase := usecase.NewNotificationUseCase(mailer, cfg.Mail)
	quoteUseCase := usecase.NewQuoteUseCase(submissionRepo, notificationUseCase)
	bookingUseCase := usecase.NewBookingUseCase(bookingRepo, notificationUseCase, cfg.FollowUpAfter)
	paymentUseCase := usecase.NewBookingPaymentUseCase(paymentRepo, bookingRepo, paymentGateway)

	quoteHandler := handlers.NewQuoteHandler(quoteUseCase)
	notificationHandler := handlers.NewNotificationHandler(notificationUseCase)
	bookingHandler := handlers.NewBookingHandler(bookingUseCase)
	bookingPaymentHandler := handlers.NewBookingPaymentHandler(paymentUseCase)

	// Public funnel routes
	v1 := router.Group("/v1")
	addPingRoutes(v1)
	addFunnelRoutes(v1, quoteHandler, notificationHandler)

	// Admin routes behind token or basic auth
	addAdminRoutes(v1, cfg.Admin, quoteHandler, bookingHandler, bookingPaymentHandler)
}

func setMiddlewares() {
	router.Use(gin.Logger())
	router.Use(gin.Recovery())
	router.Use(gin.CustomRecovery(func(c *gin.Context, recovered interface{}) {
		log.Printf("Recovered from panic: %v", recovered)
		c.AbortWithStatus(500)
	}))
}
