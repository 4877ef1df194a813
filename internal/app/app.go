package app

import (
	"database/sql"
	"errors"
	"fmt"
	"log"

	"galleria/internal/config"
	"galleria/internal/handlers"
	"galleria/internal/repositories"
	"galleria/internal/routes"
	"galleria/internal/services"

	"github.com/gin-gonic/gin"
	"github.com/golang-migrate/migrate/v4"
	"github.com/golang-migrate/migrate/v4/database/postgres"
	_ "github.com/golang-migrate/migrate/v4/source/file"
	_ "github.com/lib/pq"
)

func Run() {
	cfg := config.LoadConfig()

	// === DB ===
	db, err := sql.Open("postgres", cfg.Database.DSN)
	if err != nil {
		log.Fatal("Failed to connect to DB: ", err)
	}
	defer func() {
		if err := db.Close(); err != nil {
			log.Printf("Failed to close DB: %v", err)
		}
	}()

	if err := runMigrations(db); err != nil {
		log.Fatal("Failed to run migrations: ", err)
	}

	// === Repos ===
	userRepo := repositories.NewUserRepository(db)
	codeRepo := repositories.NewVerificationCodeRepository(db)
	articleRepo := repositories.NewArticleRepository(db)
	collectionRepo := repositories.NewCollectionRepository(db)
	imageRepo := repositories.NewImageRepository(db)
	tagRepo := repositories.NewTagRepository(db)

	// === Services ===
	emailService := services.NewEmailService(
		cfg.Email.SMTPHost,
		cfg.Email.SMTPPort,
		cfg.Email.SMTPUser,
		cfg.Email.SMTPPassword,
		cfg.Email.FromEmail,
	)
	tokenService := services.NewTokenService(cfg.Auth.JWTSecret, cfg.Auth.TokenLifetime)
	verificationService := services.NewVerificationService(codeRepo, cfg.Auth.CodeValidity)
	registrationService := services.NewRegistrationService(userRepo, verificationService, emailService, tokenService)

	userService := services.NewUserService(userRepo)
	articleService := services.NewArticleService(articleRepo, userRepo)
	collectionService := services.NewCollectionService(collectionRepo, imageRepo)
	tagService := services.NewTagService(tagRepo, imageRepo)

	// === Handlers ===
	authHandler := handlers.NewAuthHandler(registrationService)
	userHandler := handlers.NewUserHandler(userService)
	articleHandler := handlers.NewArticleHandler(articleService)
	collectionHandler := handlers.NewCollectionHandler(collectionService)
	tagHandler := handlers.NewTagHandler(tagService)

	// === Gin ===
	router := gin.Default()
	router.Use(corsMiddleware())

	routes.SetupRoutes(
		router,
		tokenService,
		authHandler,
		userHandler,
		articleHandler,
		collectionHandler,
		tagHandler,
	)

	// === Run ===
	listenAddr := fmt.Sprintf(":%d", cfg.Server.Port)
	log.Printf("Server listening on %s", listenAddr)
	if err := router.Run(listenAddr); err != nil {
		log.Fatal("Failed to start server: ", err)
	}
}

func runMigrations(db *sql.DB) error {
	driver, err := postgres.WithInstance(db, &postgres.Config{})
	if err != nil {
		return err
	}
	m, err := migrate.NewWithDatabaseInstance("file://migrations", "postgres", driver)
	if err != nil {
		return err
	}
	if err := m.Up(); err != nil && !errors.Is(err, migrate.ErrNoChange) {
		return err
	}
	return nil
}

func corsMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Writer.Header().Set("Access-Control-Allow-Origin", "*")
		c.Writer.Header().Set("Access-Control-Allow-Methods", "GET, POST, PUT, DELETE, OPTIONS")
		c.Writer.Header().Set("Access-Control-Allow-Headers", "Origin, Content-Type, Authorization")
		if c.Request.Method == "OPTIONS" {
			c.AbortWithStatus(204)
			return
		}
		c.Next()
	}
}
