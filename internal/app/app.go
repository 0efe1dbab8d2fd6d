package app

import (
	"fmt"

	"github.com/jmoiron/sqlx"

	"github.com/clinicapires/backend/internal/config"
	"github.com/clinicapires/backend/internal/db"
	"github.com/clinicapires/backend/internal/repository"
	"github.com/clinicapires/backend/internal/service"
	"github.com/clinicapires/backend/internal/service/mail"
	"github.com/clinicapires/backend/internal/storage"
)

type App struct {
	Cfg         *config.Config
	DB          *sqlx.DB
	Users       repository.UserRepository
	Posts       repository.PostRepository
	Storage     storage.Storage
	Mailer      mail.Sender
	AuthService *service.AuthService
	PostService *service.PostService
}

func New(cfg *config.Config) (*App, error) {
	// Repositories: flat JSON documents by default, SQL when configured
	var (
		database *sqlx.DB
		users    repository.UserRepository
		posts    repository.PostRepository
	)
	if cfg.DBDriver == "json" {
		users = repository.NewJSONUserRepository(cfg.UsersPath)
		posts = repository.NewJSONPostRepository(cfg.PostsPath)
	} else {
		var err error
		database, err = db.Init(cfg.DBDriver, cfg.DBConnection)
		if err != nil {
			return nil, fmt.Errorf("failed to initialize database: %v", err)
		}

		err = db.RunMigrations(database.DB, cfg.DBDriver)
		if err != nil {
			return nil, fmt.Errorf("failed to run migrations: %v", err)
		}

		users = repository.NewSQLUserRepository(database)
		posts = repository.NewSQLPostRepository(database)
	}

	// Blob store for uploaded attachments
	fileStorage, err := storage.New(cfg)
	if err != nil {
		return nil, fmt.Errorf("failed to initialize storage: %v", err)
	}

	// Mail provider for recovery codes
	mailer, err := mail.NewSender(cfg)
	if err != nil {
		return nil, fmt.Errorf("failed to initialize mail provider: %v", err)
	}

	// Services
	authService := service.NewAuthService(users, mailer, cfg.AdminEmail, cfg.AdminPassword)
	postService := service.NewPostService(posts, fileStorage)

	// One-time seeding of the default admin account. Explicit startup
	// step, never triggered by request handling.
	err = authService.SeedAdmin()
	if err != nil {
		return nil, fmt.Errorf("failed to seed admin account: %v", err)
	}

	return &App{
		Cfg:         cfg,
		DB:          database,
		Users:       users,
		Posts:       posts,
		Storage:     fileStorage,
		Mailer:      mailer,
		AuthService: authService,
		PostService: postService,
	}, nil
}

func (a *App) Close() error {
	if a.DB != nil {
		return a.DB.Close()
	}
	return nil
}
