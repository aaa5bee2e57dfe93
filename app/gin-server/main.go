package main

import (
	"log"
	"os"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"

	"github.com/joblane/joblane-backend/config"
	"github.com/joblane/joblane-backend/internal/api/handlers"
	"github.com/joblane/joblane-backend/internal/api/routes"
	"github.com/joblane/joblane-backend/internal/cache"
	"github.com/joblane/joblane-backend/internal/logger"
	"github.com/joblane/joblane-backend/internal/pdf"
	mongorepo "github.com/joblane/joblane-backend/internal/repositories/mongo"
	"github.com/joblane/joblane-backend/internal/services"

	apimw "github.com/joblane/joblane-backend/internal/api/middleware"
)

func main() {
	_ = godotenv.Load()

	l := logger.New()

	// Init MongoDB
	if err := config.InitMongo(); err != nil {
		log.Fatalf("MongoDB init error: %v", err)
	}
	if err := config.EnsureMongoIndexes(); err != nil {
		log.Fatalf("MongoDB index error: %v", err)
	}
	l.Info("MongoDB connected")

	// Init Redis; the cache is optional so a missing Redis only degrades
	// listings, it never takes the API down.
	var listingCache cache.Cache
	if err := config.InitRedis(); err != nil {
		l.WithError(err).Warn("Redis unavailable, job caching disabled")
	} else {
		listingCache = cache.NewRedisCache(config.RedisClient)
		l.Info("Redis connected")
	}

	db := config.MongoDatabase()

	userRepo := mongorepo.NewUserRepo(db)
	jobRepo := mongorepo.NewJobRepo(db)
	applicationRepo := mongorepo.NewApplicationRepo(db)
	resumeRepo := mongorepo.NewResumeRepo(db)

	renderer, err := pdf.NewRenderer()
	if err != nil {
		log.Fatalf("PDF renderer init error: %v", err)
	}

	authSvc := services.NewAuthService(userRepo)
	jobSvc := services.NewJobService(jobRepo, userRepo, listingCache)
	applicationSvc := services.NewApplicationService(applicationRepo, jobRepo, userRepo)
	resumeSvc := services.NewResumeService(resumeRepo, renderer)

	r := gin.New()
	r.Use(gin.Recovery())
	r.Use(apimw.RequestLogger(l))

	routes.RegisterRoutes(r, routes.Deps{
		Auth:        handlers.NewAuthHandler(authSvc),
		Job:         handlers.NewJobHandler(jobSvc),
		Application: handlers.NewApplicationHandler(applicationSvc),
		Resume:      handlers.NewResumeHandler(resumeSvc),
	})

	port := os.Getenv("PORT")
	if port == "" {
		port = "8080"
	}
	if err := r.Run(":" + port); err != nil {
		log.Fatalf("server error: %v", err)
	}
}
