package main

import (
	"fmt"
	"net/http"
	"time"

	"github.com/gorilla/mux"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/redis/go-redis/v9"
	log "github.com/sirupsen/logrus"

	"blogapi/auth"
	"blogapi/cache"
	"blogapi/config"
	"blogapi/database"
	"blogapi/handlers"
	"blogapi/middleware"
	"blogapi/monitoring"
	"blogapi/repositories"
	"blogapi/routes"
	"blogapi/services"
)

func main() {
	log.SetFormatter(&log.JSONFormatter{})

	cfg := config.Load()
	if cfg.IsProduction() {
		handlers.SetIncludeStacks(false)
	}

	db, err := database.Connect(cfg.DatabaseURL)
	if err != nil {
		log.Fatalf("Error connecting to database: %s", err)
	}
	if err := database.Migrate(db); err != nil {
		log.Fatalf("Error migrating database: %s", err)
	}

	redisOptions := redis.Options{
		Addr:     fmt.Sprintf("%s:%s", cfg.RedisHost, cfg.RedisPort),
		Password: "", // no password set
		DB:       0,  // use default DB
	}
	responseCache := cache.NewResponseCache(&redisOptions, time.Duration(cfg.CacheTTLSeconds)*time.Second)

	tokens := auth.NewTokenManager(cfg.UserAuthSecret, time.Duration(cfg.TokenTTLHours)*time.Hour)

	devices := repositories.NewDeviceRepository(db)
	notifier, err := services.NewNotifier(cfg.FirebaseCredentialsPath, devices)
	if err != nil {
		log.Errorf("Error initializing firebase, notifications disabled: %s", err)
	}

	users := repositories.NewUserRepository(db)
	statistics := repositories.NewStatisticsRepository(db)

	deps := &routes.Dependencies{
		Posts:            repositories.NewPostRepository(db),
		Notes:            repositories.NewNoteRepository(db),
		Tags:             repositories.NewTagRepository(db),
		Users:            users,
		Comments:         repositories.NewCommentRepository(db),
		Bookmarks:        repositories.NewBookmarkRepository(db),
		Devices:          devices,
		Statistics:       statistics,
		PostInteractions: repositories.NewPostInteractionRepository(db),
		NoteInteractions: repositories.NewNoteInteractionRepository(db),
		Responses:        responseCache,
		Tokens:           tokens,
		Notifier:         notifier,
		Authenticate:     middleware.Auth(tokens, users),
	}

	router := mux.NewRouter()
	router.Handle("/metrics", promhttp.Handler()).Methods("GET")

	api := router.PathPrefix("/api").Subrouter()
	api.Use(middleware.Logging)
	api.Use(middleware.GuestTracking(statistics))
	api.Use(middleware.CacheInvalidation(responseCache))

	routes.CreatePostRoutes(deps, api)
	routes.CreateNoteRoutes(deps, api)
	routes.CreateTagRoutes(deps, api)
	routes.CreateUserRoutes(deps, api)
	routes.CreateCommentRoutes(deps, api)
	routes.CreateBookmarkRoutes(deps, api)
	routes.CreateStatisticRoutes(deps, api)

	limiter := middleware.NewLimiter(cfg.RateLimitPerMinute, time.Duration(cfg.SpeedLimitDelayMs)*time.Millisecond)

	var handler http.Handler = router
	handler = limiter.Middleware(handler)
	handler = middleware.APIKey(cfg.APIKey)(handler)
	handler = monitoring.NewPrometheusMiddleware(handler)

	log.Infof("listening on port %s", cfg.Port)
	if err := http.ListenAndServe(":"+cfg.Port, handler); err != nil {
		log.Fatalf("Server stopped: %s", err)
	}
}
