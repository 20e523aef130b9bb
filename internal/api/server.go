package api

import (
	"github.com/gin-contrib/requestid"
	"github.com/gin-gonic/gin"
	swaggerfiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
	"gorm.io/gorm"

	"github.com/vietanh2810/drivent-api/docs"
	v1 "github.com/vietanh2810/drivent-api/internal/api/handler/v1"
	"github.com/vietanh2810/drivent-api/internal/api/middleware"
	"github.com/vietanh2810/drivent-api/internal/config"
	"github.com/vietanh2810/drivent-api/internal/repository"
	"github.com/vietanh2810/drivent-api/internal/repository/dao"
	"github.com/vietanh2810/drivent-api/internal/service"
)

type Server struct {
	Config *config.AppConfig
	Router *gin.Engine
}

type Handlers struct {
	auth       *v1.AuthHandler
	enrollment *v1.EnrollmentHandler
	ticket     *v1.TicketHandler
	hotel      *v1.HotelHandler
	booking    *v1.BookingHandler
	payment    *v1.PaymentHandler
}

func NewServer(conf *config.AppConfig, db *gorm.DB) *Server {
	gin.SetMode(conf.Gin.Mode)
	engine := gin.New()

	s := &Server{
		Config: conf,
		Router: engine,
	}

	s.MountMiddlewares()

	userRepo := repository.NewUserRepository(dao.NewUserDAO(db))
	enrollmentRepo := repository.NewEnrollmentRepository(dao.NewEnrollmentDAO(db))
	ticketRepo := repository.NewTicketRepository(dao.NewTicketDAO(db))
	hotelRepo := repository.NewHotelRepository(dao.NewHotelDAO(db))
	bookingRepo := repository.NewBookingRepository(dao.NewBookingDAO(db))
	paymentRepo := repository.NewPaymentRepository(dao.NewPaymentDAO(db))

	authSvc := service.NewAuthService(userRepo)

	h := Handlers{
		auth:       v1.NewAuthHandler(conf.API, authSvc),
		enrollment: v1.NewEnrollmentHandler(service.NewEnrollmentService(enrollmentRepo)),
		ticket:     v1.NewTicketHandler(service.NewTicketService(enrollmentRepo, ticketRepo)),
		hotel:      v1.NewHotelHandler(service.NewHotelService(enrollmentRepo, ticketRepo, hotelRepo)),
		booking:    v1.NewBookingHandler(service.NewBookingService(enrollmentRepo, ticketRepo, bookingRepo)),
		payment:    v1.NewPaymentHandler(service.NewPaymentService(enrollmentRepo, ticketRepo, paymentRepo)),
	}

	s.MountHandlers(h, middleware.NewAuthenticator(conf.API.JWTSigningKey, authSvc))

	return s
}

func (s *Server) MountMiddlewares() {
	// Logger and Recovery are needed unless we use gin.Default().
	s.Router.Use(gin.Logger())
	s.Router.Use(gin.Recovery())
	s.Router.Use(requestid.New())
	s.Router.Use(middleware.ConfigCORS(s.Config.API.AllowedCORSDomains))
}

func (s *Server) MountHandlers(h Handlers, authenticator *middleware.Authenticator) {
	s.Router.GET("/health", v1.HandleHealthcheck)

	s.Router.POST("/users", h.auth.HandleSignUp)
	s.Router.POST("/auth/sign-in", h.auth.HandleSignIn)

	protected := s.Router.Group("", authenticator.VerifyJWT())
	{
		protected.GET("/enrollments", h.enrollment.HandleGetEnrollment)
		protected.POST("/enrollments", h.enrollment.HandleUpsertEnrollment)

		protected.GET("/tickets/types", h.ticket.HandleGetTicketTypes)
		protected.GET("/tickets", h.ticket.HandleGetTicket)
		protected.POST("/tickets", h.ticket.HandlePurchaseTicket)

		protected.GET("/payments", h.payment.HandleGetPayment)
		protected.POST("/payments/process", h.payment.HandleProcessPayment)

		protected.GET("/hotels", h.hotel.HandleGetHotels)
		protected.GET("/hotels/:hotelId", h.hotel.HandleGetHotelRooms)

		protected.GET("/booking", h.booking.HandleGetBooking)
		protected.POST("/booking", h.booking.HandleCreateBooking)
		protected.PUT("/booking/:bookingId", h.booking.HandleUpdateBooking)
	}

	// Setup Swagger UI.
	docs.SwaggerInfo.Host = s.Config.API.BaseURL
	docs.SwaggerInfo.BasePath = "/"
	docs.SwaggerInfo.Title = "Drivent API"
	docs.SwaggerInfo.Description = "Event registration: enrollments, tickets, payments, hotels and room booking."
	docs.SwaggerInfo.Version = "1.0"
	s.Router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerfiles.Handler))
}
