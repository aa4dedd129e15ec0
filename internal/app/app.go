package app

import (
	"fmt"

	"freelance_backend/internal/auth"
	"freelance_backend/internal/config"
	"freelance_backend/internal/database"
	"freelance_backend/internal/email"
	"freelance_backend/internal/handlers"
	"freelance_backend/internal/logger"
	"freelance_backend/internal/middleware"
	"freelance_backend/internal/models"
	"freelance_backend/internal/repositories"
	"freelance_backend/internal/routes"
	"freelance_backend/internal/services"

	"github.com/gin-gonic/gin"
	"gorm.io/driver/mysql"
	"gorm.io/gorm"
)

// Run wires the application and starts the HTTP server.
func Run() error {
	config.LoadConfig()
	cfg := config.GetConfig()

	logger.Init(cfg.Server.Env)

	db, err := gorm.Open(mysql.Open(cfg.Database.DSN), &gorm.Config{})
	if err != nil {
		return fmt.Errorf("failed to connect to database: %w", err)
	}

	if err := database.Migrate(db); err != nil {
		return fmt.Errorf("failed to run migrations: %w", err)
	}

	if err := seedFirstModerator(db, cfg); err != nil {
		return fmt.Errorf("failed to seed moderator: %w", err)
	}

	emailProvider := newEmailProvider(cfg)
	defer emailProvider.Close()

	router := SetupRouter(db, emailProvider)

	addr := fmt.Sprintf("%s:%d", cfg.Server.Host, cfg.Server.Port)
	logger.Info("starting server", "addr", addr, "env", cfg.Server.Env)
	return router.Run(addr)
}

// SetupRouter builds the gin engine with the full middleware chain and route
// table. Tests call it directly with their own DB handle.
func SetupRouter(db *gorm.DB, emailProvider email.Provider) *gin.Engine {
	container := services.NewServiceContainer(db, emailProvider)
	appHandlers := handlers.NewAppHandlers(container)

	router := gin.New()
	router.Use(
		gin.Recovery(),
		middleware.RequestIDMiddleware(),
		middleware.LoggingMiddleware(),
		middleware.CORSMiddleware(),
	)

	routes.RegisterRoutes(router, appHandlers)
	return router
}

func newEmailProvider(cfg *config.Config) email.Provider {
	smtpCfg := email.DefaultConfig()
	if cfg.Email.SMTPHost != "" {
		smtpCfg.Host = cfg.Email.SMTPHost
	}
	if cfg.Email.SMTPPort != 0 {
		smtpCfg.Port = cfg.Email.SMTPPort
	}
	smtpCfg.Username = cfg.Email.SMTPUsername
	smtpCfg.Password = cfg.Email.SMTPPassword
	smtpCfg.FromEmail = cfg.Email.FromEmail
	smtpCfg.FromName = cfg.Email.FromName
	smtpCfg.UseTLS = cfg.Email.UseTLS

	renderer := email.NewTemplateManager()
	if cfg.Email.TemplatesDir != "" {
		if err := renderer.LoadTemplates(cfg.Email.TemplatesDir); err != nil {
			logger.WithError(err).Warn("failed to load email templates", "dir", cfg.Email.TemplatesDir)
		}
	}

	return email.NewSMTPProvider(smtpCfg, renderer)
}

// seedFirstModerator creates the bootstrap moderator account when configured
// and missing. Existing accounts are left untouched.
func seedFirstModerator(db *gorm.DB, cfg *config.Config) error {
	if cfg.FirstModeratorEmail == "" || cfg.FirstModeratorPassword == "" {
		return nil
	}

	userRepo := repositories.NewUserRepository(db)
	if _, err := userRepo.FindByEmail(cfg.FirstModeratorEmail); err == nil {
		return nil
	} else if err != repositories.ErrUserNotFound {
		return err
	}

	hash, err := auth.HashPassword(cfg.FirstModeratorPassword)
	if err != nil {
		return err
	}

	moderator := &models.User{
		Email:        cfg.FirstModeratorEmail,
		PasswordHash: hash,
		Role:         models.UserRoleModerator,
		IsVerified:   true,
		FullName:     "Moderator",
	}
	if err := userRepo.Create(moderator); err != nil {
		return err
	}

	logger.Info("seeded first moderator", "email", cfg.FirstModeratorEmail)
	return nil
}
