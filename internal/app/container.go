package app

import (
	"context"
	"io/fs"
	"log"
	"os"
	"time"

	"careerhub/internal/ai"
	"careerhub/internal/config"
	"careerhub/internal/database"
	"careerhub/internal/database/migration"
	"careerhub/internal/database/migrations"
	dbpostgres "careerhub/internal/database/postgres"
	"careerhub/internal/database/seeder"
	"careerhub/internal/domain/account"
	"careerhub/internal/infrastructure/cache"
	"careerhub/internal/infrastructure/mail"
	"careerhub/internal/pkg/jwt"
	"careerhub/internal/repository"
	"careerhub/internal/usecase"
	"careerhub/internal/verification"
	"careerhub/internal/ws"
)

// Container owns every long-lived dependency: database pool, cache client,
// mail sender, model client, websocket hub, and the usecases built on them.
type Container struct {
	Config config.Config
	Logger *log.Logger

	DB    database.DB
	Cache *cache.Redis
	Hub   *ws.Hub

	JWT      jwt.Service
	Accounts account.Repository

	AuthUC    usecase.AuthUsecase
	JobUC     usecase.JobUsecase
	SearchUC  usecase.JobSearchUsecase
	ProfileUC usecase.ProfileUsecase
	ResumeUC  usecase.ResumeAnalysisUsecase
}

func NewContainer(cfg config.Config, logger *log.Logger) (*Container, error) {
	if logger == nil {
		logger = log.Default()
	}

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	db, err := dbpostgres.Connect(ctx, cfg.Database)
	if err != nil {
		return nil, err
	}

	if err := runMigrations(ctx, cfg, db); err != nil {
		_ = db.Close()
		return nil, err
	}

	if cfg.App.Environment == "development" {
		if err := (seeder.Runner{Seeders: seeder.Defaults()}).Run(ctx, db); err != nil {
			logger.Printf("[App] Demo seed failed | err=%v", err)
		}
	}

	redisCache := cache.NewRedis(cfg.Redis, logger)
	mailer := mail.NewSMTPSender(cfg.SMTP)
	verifier := verification.NewService(redisCache, mailer, logger)

	jwtSvc := jwt.NewHMACService(
		cfg.JWT.AccessSecret,
		cfg.JWT.RefreshSecret,
		cfg.JWT.AccessExpiresIn,
		cfg.JWT.RefreshExpiresIn,
	)

	hub := ws.NewHub(logger)
	go hub.Run()

	accountRepo := repository.NewPostgresAccountRepository(db)
	jobRepo := repository.NewPostgresJobRepository(db)
	studentProfiles := repository.NewPostgresStudentProfileRepository(db)
	companyProfiles := repository.NewPostgresCompanyProfileRepository(db)

	jobUC := usecase.NewJobUsecase(jobRepo, hub)

	var analyzer ai.Analyzer
	if geminiAnalyzer, err := ai.NewGeminiAnalyzer(ctx, cfg.Gemini); err == nil {
		analyzer = geminiAnalyzer
	} else {
		logger.Printf("[App] Resume analysis disabled | err=%v", err)
	}

	return &Container{
		Config:   cfg,
		Logger:   logger,
		DB:       db,
		Cache:    redisCache,
		Hub:      hub,
		JWT:      jwtSvc,
		Accounts: accountRepo,

		AuthUC:    usecase.NewAuthUsecase(accountRepo, jwtSvc, verifier, logger),
		JobUC:     jobUC,
		SearchUC:  usecase.NewJobSearchUsecase(jobRepo, redisCache, logger),
		ProfileUC: usecase.NewProfileUsecase(studentProfiles, companyProfiles),
		ResumeUC:  usecase.NewResumeAnalysisUsecase(jobUC, analyzer, logger),
	}, nil
}

func runMigrations(ctx context.Context, cfg config.Config, db database.DB) error {
	var fsys fs.FS = migrations.FS
	if dir := cfg.Database.MigrationsDir; dir != "" {
		fsys = os.DirFS(dir)
	}
	return migration.Runner{FS: fsys}.Run(ctx, db.SQLDB())
}

func (c *Container) Close() error {
	if c == nil {
		return nil
	}
	if c.Cache != nil {
		_ = c.Cache.Close()
	}
	if c.DB == nil {
		return nil
	}
	return c.DB.Close()
}
