package main

import (
	"context"
	"log"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"

	"hoteldesk/internal/config"
	"hoteldesk/internal/database"
	"hoteldesk/internal/middleware"
	"hoteldesk/internal/modules/auth"
	"hoteldesk/internal/modules/booking"
	"hoteldesk/internal/modules/catalog"
	"hoteldesk/internal/modules/dashboard"
	"hoteldesk/internal/modules/offer"
	"hoteldesk/internal/modules/payment"
	"hoteldesk/internal/modules/review"
	"hoteldesk/internal/modules/user"
	"hoteldesk/internal/modules/whatsapp"
	jwtsvc "hoteldesk/internal/pkg/jwt"
	"hoteldesk/internal/repository"
	"hoteldesk/internal/wizard"
)

func main() {
	if err := godotenv.Load(); err != nil {
		log.Println("no .env file found, using environment")
	}

	cfg, err := config.LoadRuntimeConfig()
	if err != nil {
		log.Fatal(err)
	}

	db, err := database.Connect(cfg.DatabaseDSN)
	if err != nil {
		log.Fatal(err)
	}

	userRepo := repository.NewUserRepository(db)
	adminRepo := repository.NewAdminRepository(db)
	roomRepo := repository.NewRoomRepository(db)
	offerRepo := repository.NewOfferRepository(db)
	bookingRepo := repository.NewBookingRepository(db)
	paymentRepo := repository.NewPaymentRepository(db)
	reviewRepo := repository.NewReviewRepository(db)
	whatsappRepo := repository.NewWhatsappRepository(db)
	refreshRepo := repository.NewRefreshTokenRepository(db)
	dashboardRepo := repository.NewDashboardRepository(db)

	j := jwtsvc.New(cfg.JWTSecret, cfg.JWTAccessTTL)

	authService := auth.NewService(adminRepo, refreshRepo, j, cfg.RefreshTTL)
	authHandler := auth.NewHandler(authService, cfg)

	catalogService := catalog.NewService(roomRepo)
	catalogHandler := catalog.NewHandler(catalogService)

	offerService := offer.NewService(offerRepo, roomRepo)
	offerHandler := offer.NewHandler(offerService)

	bookingService := booking.NewService(bookingRepo, roomRepo, userRepo, offerRepo, paymentRepo)
	bookingHandler := booking.NewHandler(bookingService)

	wizardStore := wizard.NewStore(cfg.WizardTTL)
	wizardHandler := booking.NewWizardHandler(bookingService, userRepo, paymentRepo, wizardStore)

	userService := user.NewService(userRepo)
	userHandler := user.NewHandler(userService)

	paymentService := payment.NewService(paymentRepo)
	paymentHandler := payment.NewHandler(paymentService)

	reviewService := review.NewService(reviewRepo, userRepo, roomRepo)
	reviewHandler := review.NewHandler(reviewService)

	dashboardService := dashboard.NewService(dashboardRepo, userRepo, bookingRepo)
	dashboardHandler := dashboard.NewHandler(dashboardService)

	hub := whatsapp.NewHub()
	defer hub.Close()
	whatsappService := whatsapp.NewService(whatsappRepo, hub)
	whatsappHandler := whatsapp.NewHandler(whatsappService, hub)

	go sweepWizardSessions(wizardStore)
	go purgeExpiredTokens(refreshRepo)

	if cfg.AppEnv == "prod" {
		gin.SetMode(gin.ReleaseMode)
	}

	r := gin.New()
	r.Use(gin.Logger())
	r.Use(middleware.ErrorLogger())
	r.Use(middleware.CORS())

	v1 := r.Group("/api/v1")
	{
		authHandler.RegisterRoutes(v1)

		protected := v1.Group("/")
		protected.Use(middleware.Auth(j))
		{
			authHandler.RegisterProtectedRoutes(protected)
			bookingHandler.RegisterRoutes(protected)
			wizardHandler.RegisterRoutes(protected)
			catalogHandler.RegisterRoutes(protected)
			offerHandler.RegisterRoutes(protected)
			userHandler.RegisterRoutes(protected)
			paymentHandler.RegisterRoutes(protected)
			reviewHandler.RegisterRoutes(protected)
			dashboardHandler.RegisterRoutes(protected)
			whatsappHandler.RegisterRoutes(protected)
		}
	}

	log.Printf("listening on %s", cfg.ListenAddr)
	if err := r.Run(cfg.ListenAddr); err != nil {
		log.Fatal(err)
	}
}

func sweepWizardSessions(store *wizard.Store) {
	ticker := time.NewTicker(5 * time.Minute)
	defer ticker.Stop()
	for range ticker.C {
		if n := store.Sweep(); n > 0 {
			log.Printf("swept %d expired wizard sessions", n)
		}
	}
}

func purgeExpiredTokens(repo *repository.RefreshTokenRepository) {
	ticker := time.NewTicker(time.Hour)
	defer ticker.Stop()
	for range ticker.C {
		if err := repo.DeleteExpired(context.Background()); err != nil {
			log.Printf("refresh token cleanup failed: %v", err)
		}
	}
}
