package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"net/http"
	"time"

	"tripdesk/internal/auth"
	"tripdesk/internal/cache"
	"tripdesk/internal/config"
	"tripdesk/internal/database"
	"tripdesk/internal/db"
	"tripdesk/internal/handlers"
	"tripdesk/internal/health"
	h "tripdesk/internal/http"
	"tripdesk/internal/middleware"
	"tripdesk/internal/monitoring"
	"tripdesk/internal/repositories"
	"tripdesk/internal/services"
	"tripdesk/internal/storage"
	"tripdesk/migrations"
)

func main() {
	port := flag.Int("port", 0, "Server port (overrides config)")
	flag.Parse()

	// Load configuration
	cfg := config.Load()
	if *port != 0 {
		cfg.Server.Port = *port
	}

	// Connect to the database
	pool := db.Connect(cfg)
	defer pool.Close()

	// Initialize Redis cache (optional - graceful fallback if unavailable)
	if err := cache.Init(); err != nil {
		log.Printf("[Redis] Cache unavailable: %v (responses served from database)", err)
	} else {
		log.Println("[Redis] Cache connected successfully")
	}

	// Run database migrations
	log.Println("Running database migrations...")
	migrator := database.NewMigrator(pool, migrations.FS)
	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()
	if err := migrator.RunMigrations(ctx); err != nil {
		log.Fatalf("Failed to run migrations: %v", err)
	}

	// Initialize health checker
	healthChecker := health.NewHealthChecker(pool)

	// Start monitoring sidecar in background
	go monitoring.NewMonitoringServer(pool, cfg.Server.MonitoringPort).Start()

	// Initialize JWT manager
	jwtManager := auth.NewJWTManager(cfg.JWT.Secret, cfg.JWT.ExpirationHours, cfg.JWT.Issuer)

	// Initialize repositories
	userRepo := repositories.NewUserRepository(pool)
	agencyRepo := repositories.NewAgencyRepository(pool)
	stakeholderRepo := repositories.NewStakeholderRepository(pool)
	locationRepo := repositories.NewLocationRepository(pool)
	templateRepo := repositories.NewTemplateRepository(pool)
	itineraryRepo := repositories.NewItineraryRepository(pool)
	assignmentRepo := repositories.NewAssignmentRepository(pool)

	// Initialize document archive (optional)
	var archive services.ArchiveUploader
	if a := storage.NewArchive(cfg); a != nil {
		log.Printf("[Archive] Uploading issued documents to bucket %s", cfg.Archive.Bucket)
		archive = a
	}

	// Initialize services
	userService := services.NewUserService(userRepo, jwtManager)
	itineraryService := services.NewItineraryService(itineraryRepo)
	assignmentService := services.NewAssignmentService(assignmentRepo, itineraryRepo, agencyRepo, archive)

	// Initialize middleware
	authMiddleware := middleware.NewAuthMiddleware(jwtManager, userRepo)
	corsMiddleware := middleware.NewCORS(cfg)

	// Initialize handlers
	authHandler := handlers.NewAuthHandler(userService, agencyRepo)
	userHandler := handlers.NewUserHandler(userService)
	agencyHandler := handlers.NewAgencyHandler(agencyRepo)
	stakeholderHandler := handlers.NewStakeholderHandler(stakeholderRepo)
	locationHandler := handlers.NewLocationHandler(locationRepo)
	templateHandler := handlers.NewTemplateHandler(templateRepo)
	itineraryHandler := handlers.NewItineraryHandler(itineraryService, assignmentService)
	healthHandler := handlers.NewHealthHandler(healthChecker)

	router := h.NewRouter(
		authHandler,
		userHandler,
		agencyHandler,
		stakeholderHandler,
		locationHandler,
		templateHandler,
		itineraryHandler,
		healthHandler,
		authMiddleware,
	)

	// Wrap with panic recovery, metrics, logging and CORS
	handler := middleware.PanicRecovery(
		middleware.MetricsMiddleware(
			middleware.RequestLogging(
				corsMiddleware(router))))

	addr := fmt.Sprintf(":%d", cfg.Server.Port)
	log.Printf("Server listening on %s", addr)
	if err := http.ListenAndServe(addr, handler); err != nil {
		log.Fatalf("Server failed: %v", err)
	}
}
