package main

import (
	"database/sql"
	"log"
	"net/http"
	"time"

	_ "github.com/lib/pq"

	"slotswapper/config"
	_ "slotswapper/docs"
	"slotswapper/internal/adapters/auth"
	"slotswapper/internal/adapters/email"
	httpdelivery "slotswapper/internal/delivery/http"
	"slotswapper/internal/delivery/http/controllers"
	"slotswapper/internal/delivery/http/middleware"
	"slotswapper/internal/repository/postgres"
	"slotswapper/internal/services"
)

const serviceTimeout = 5 * time.Second

// @title SlotSwapper API
// @version 1.0
// @description Peer-to-peer calendar slot barter marketplace. Users list busy slots as swappable and trade them with other users through atomic swap requests.
// @BasePath /
// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
// @description Type "Bearer" followed by a space and the JWT token.
func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("failed to load config: %v", err)
	}
	logger := config.NewLogger(cfg.Environment)

	db, err := sql.Open("postgres", cfg.DBUrl)
	if err != nil {
		log.Fatalf("failed to open database: %v", err)
	}
	defer db.Close()
	if err := db.Ping(); err != nil {
		log.Fatalf("failed to ping database: %v", err)
	}

	mailer, err := email.NewMailer(email.MailerConfig{
		Provider:    cfg.EmailProvider,
		FromAddress: cfg.EmailFrom,
		FromName:    cfg.EmailFromName,
		SES: email.SESConfig{
			Region:          cfg.SESRegion,
			AccessKeyID:     cfg.SESAccessKey,
			SecretAccessKey: cfg.SESSecretKey,
		},
	})
	if err != nil {
		log.Fatalf("failed to create mailer: %v", err)
	}

	userRepo := postgres.NewUserRepository(db)
	slotRepo := postgres.NewSlotRepository(db)
	swapRepo := postgres.NewSwapRequestRepository(db)
	swapStore := postgres.NewSwapStore(db)

	jwtManager := auth.NewJWTManager(cfg.JWTSecret)
	hasher := auth.NewBcryptHasher(0)

	emailService := services.NewEmailService(mailer, email.NewTemplateRenderer())
	authService := services.NewAuthService(userRepo, hasher, jwtManager, cfg.JWTExpiry, serviceTimeout)
	userService := services.NewUserService(userRepo, serviceTimeout)
	slotService := services.NewSlotService(slotRepo, swapStore, serviceTimeout)
	marketService := services.NewMarketService(slotRepo, swapRepo, serviceTimeout)
	swapService := services.NewSwapService(swapStore, userRepo, slotRepo, emailService, logger, serviceTimeout)

	mux := httpdelivery.NewRouter(
		jwtManager,
		controllers.NewAuthController(logger, authService),
		controllers.NewUserController(logger, userService),
		controllers.NewSlotController(logger, slotService, marketService),
		controllers.NewSwapController(logger, swapService, marketService),
	)

	handler := middleware.CORS(cfg.CORSAllowedOrigins, middleware.LoggingMiddleware(logger, mux))

	server := &http.Server{
		Addr:              ":" + cfg.Port,
		Handler:           handler,
		ReadHeaderTimeout: 10 * time.Second,
	}

	logger.Info("starting server", "port", cfg.Port, "env", cfg.Environment)
	if err := server.ListenAndServe(); err != nil {
		log.Fatalf("server stopped: %v", err)
	}
}
