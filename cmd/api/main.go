package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"eventagency/internal/cache"
	"eventagency/internal/config"
	"eventagency/internal/database"
	"eventagency/internal/jobs"
	"eventagency/internal/logging"
	"eventagency/internal/metrics"
	"eventagency/internal/middleware"
	"eventagency/internal/modules/auth"
	"eventagency/internal/modules/booking"
	"eventagency/internal/modules/catalog"
	"eventagency/internal/modules/company"
	"eventagency/internal/modules/contact"
	"eventagency/internal/modules/customer"
	"eventagency/internal/modules/dashboard"
	jwtsvc "eventagency/internal/pkg/jwt"
	"eventagency/internal/pkg/response"
	"eventagency/internal/repository"
)

func main() {
	configPath := flag.String("config", "config.yaml", "path to config file")
	flag.Parse()

	cfg, err := config.Load(*configPath)
	if err != nil {
		fmt.Fprintln(os.Stderr, "config:", err)
		os.Exit(1)
	}

	log := logging.New(cfg.Logging, cfg.App)

	if cfg.Metrics.Enabled {
		metrics.Register()
	}

	db, err := database.Connect(cfg.Database.DSN)
	if err != nil {
		log.Fatal().Err(err).Msg("database connect failed")
	}
	if err := repository.AutoMigrate(db); err != nil {
		log.Fatal().Err(err).Msg("migration failed")
	}

	userRepo := repository.NewUserRepository(db)
	eventRepo := repository.NewEventRepository(db)
	carRepo := repository.NewCarRepository(db)
	tourRepo := repository.NewTourRepository(db)
	partnerRepo := repository.NewPartnerRepository(db)
	staffRepo := repository.NewStaffRepository(db)
	customerRepo := repository.NewCustomerRepository(db)
	contactRepo := repository.NewContactRepository(db)
	bookingRepo := repository.NewBookingRepository(db)

	tokenTTL, err := time.ParseDuration(cfg.Auth.TokenTTL)
	if err != nil {
		log.Fatal().Err(err).Msg("invalid auth token ttl")
	}
	j := jwtsvc.New(cfg.Auth.JWTSecret, tokenTTL)

	var store cache.Cache
	if cfg.Cache.RedisAddress != "" {
		store = cache.NewRedisCache(cache.NewRedisClient(cfg.Cache))
		log.Info().Str("address", cfg.Cache.RedisAddress).Msg("using redis cache")
	} else {
		store = cache.NewMemoryCache()
	}

	authService := auth.NewService(userRepo, j)
	authHandler := auth.NewHandler(authService)

	catalogService := catalog.NewService(eventRepo, carRepo, tourRepo)
	catalogHandler := catalog.NewHandler(catalogService)

	companyService := company.NewService(partnerRepo, staffRepo)
	companyHandler := company.NewHandler(companyService)

	customerService := customer.NewService(customerRepo, bookingRepo)
	customerHandler := customer.NewHandler(customerService)

	contactService := contact.NewService(contactRepo)
	contactHandler := contact.NewHandler(contactService)

	bookingService := booking.NewService(bookingRepo, customerRepo, catalogService, cfg.Booking.AllowAnyTransition)
	bookingHandler := booking.NewHandler(bookingService)

	dashboardService := dashboard.NewService(
		eventRepo, carRepo, tourRepo, partnerRepo, staffRepo, customerRepo,
		bookingService,
		bookingRepo,
		contactRepo,
		store,
		time.Duration(cfg.Cache.TTLSeconds)*time.Second,
	)
	dashboardHandler := dashboard.NewHandler(dashboardService)

	runner, err := jobs.NewRunner(cfg.Jobs, bookingService, log)
	if err != nil {
		log.Fatal().Err(err).Msg("invalid jobs schedule")
	}

	if cfg.App.Environment == "prod" {
		gin.SetMode(gin.ReleaseMode)
	}
	r := gin.New()
	r.Use(gin.Recovery())
	r.Use(middleware.RequestLogger(log))
	r.Use(middleware.CORS(cfg.HTTP.AllowedOrigins))

	r.GET("/healthz", func(c *gin.Context) {
		response.Success(c, http.StatusOK, gin.H{"status": "ok", "version": cfg.App.Version})
	})
	if cfg.Metrics.Enabled {
		r.GET("/metrics", gin.WrapH(promhttp.Handler()))
	}

	v1 := r.Group("/api/v1")
	{
		authHandler.RegisterRoutes(v1)
		catalogHandler.RegisterPublicRoutes(v1)
		companyHandler.RegisterPublicRoutes(v1)

		form := v1.Group("/")
		form.Use(middleware.RateLimit(cfg.Contact.RateLimitRPS, cfg.Contact.RateLimitBurst))
		{
			contactHandler.RegisterPublicRoutes(form)
		}

		admin := v1.Group("/admin")
		admin.Use(middleware.Auth(j))
		{
			catalogHandler.RegisterAdminRoutes(admin)
			companyHandler.RegisterAdminRoutes(admin)
			contactHandler.RegisterAdminRoutes(admin)
			customerHandler.RegisterRoutes(admin)
			bookingHandler.RegisterRoutes(admin)
			dashboardHandler.RegisterRoutes(admin)
		}
	}

	runner.Start()

	srv := &http.Server{
		Addr:    fmt.Sprintf(":%d", cfg.HTTP.Port),
		Handler: r,
	}

	go func() {
		log.Info().Int("port", cfg.HTTP.Port).Msg("server listening")
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatal().Err(err).Msg("server failed")
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info().Msg("shutting down")
	runner.Stop()

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		log.Error().Err(err).Msg("shutdown failed")
	}
}
