package main

import (
	"context"
	"errors"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/DLT-Africa-Hub/Recruita/internal/config"
	appHTTP "github.com/DLT-Africa-Hub/Recruita/internal/handler/http"
	"github.com/DLT-Africa-Hub/Recruita/internal/pkg/ai"
	"github.com/DLT-Africa-Hub/Recruita/internal/pkg/cache"
	"github.com/DLT-Africa-Hub/Recruita/internal/pkg/cron"
	"github.com/DLT-Africa-Hub/Recruita/internal/pkg/database"
	"github.com/DLT-Africa-Hub/Recruita/internal/pkg/email"
	"github.com/DLT-Africa-Hub/Recruita/internal/pkg/jwt"
	"github.com/DLT-Africa-Hub/Recruita/internal/pkg/sse"
	"github.com/DLT-Africa-Hub/Recruita/internal/repository/postgresql"
	adminService "github.com/DLT-Africa-Hub/Recruita/internal/service/admin"
	applicationService "github.com/DLT-Africa-Hub/Recruita/internal/service/application"
	authService "github.com/DLT-Africa-Hub/Recruita/internal/service/auth"
	companyService "github.com/DLT-Africa-Hub/Recruita/internal/service/company"
	graduateService "github.com/DLT-Africa-Hub/Recruita/internal/service/graduate"
	interviewService "github.com/DLT-Africa-Hub/Recruita/internal/service/interview"
	jobService "github.com/DLT-Africa-Hub/Recruita/internal/service/job"
	notificationService "github.com/DLT-Africa-Hub/Recruita/internal/service/notification"
	offerService "github.com/DLT-Africa-Hub/Recruita/internal/service/offer"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		fmt.Println("Error loading config:", err)
		return
	}

	ctx := context.Background()

	db, err := database.NewPostgreSQLDB(ctx, cfg.DatabaseURL())
	if err != nil {
		log.Fatal("Failed to connect to database: ", err)
	}
	defer db.Close()

	redisCache, err := cache.NewRedisCache(ctx, cfg.Redis.URL)
	if err != nil {
		log.Fatal("Failed to connect to redis: ", err)
	}
	defer redisCache.Close()

	userRepo := postgresql.NewUserRepository(db)
	graduateRepo := postgresql.NewGraduateRepository(db)
	companyRepo := postgresql.NewCompanyRepository(db)
	jobRepo := postgresql.NewJobRepository(db)
	applicationRepo := postgresql.NewApplicationRepository(db)
	offerRepo := postgresql.NewOfferRepository(db)
	interviewRepo := postgresql.NewInterviewRepository(db)
	matchRepo := postgresql.NewMatchRepository(db)
	notificationRepo := postgresql.NewNotificationRepository(db)

	jwtService := jwt.NewJWTService(cfg.JWT.Secret, cfg.JWT.AccessExpiration, cfg.JWT.RefreshExpiration)
	aiClient := ai.NewClient(cfg.AI.BaseURL, cfg.AI.Timeout)
	emailService, err := email.NewEmailService(cfg.SMTP)
	if err != nil {
		log.Fatal("Failed to initialize email service: ", err)
	}

	sseHub := sse.NewHub()
	notificationSvc := notificationService.NewNotificationService(
		notificationRepo,
		userRepo,
		sseHub,
		emailService,
		notificationService.Config{
			BatchSize:     cfg.Notification.BatchSize,
			FlushInterval: cfg.Notification.FlushInterval,
			WorkerCount:   cfg.Notification.WorkerCount,
			QueueSize:     cfg.Notification.QueueSize,
		},
	)
	defer notificationSvc.Stop()

	authSvc := authService.NewAuthService(userRepo, jwtService)
	graduateSvc := graduateService.NewGraduateService(graduateRepo, jobRepo, matchRepo, aiClient, redisCache)
	companySvc := companyService.NewCompanyService(companyRepo)
	jobSvc := jobService.NewJobService(jobRepo, companyRepo, matchRepo, aiClient)
	offerSvc := offerService.NewOfferService(
		offerRepo,
		applicationRepo,
		graduateRepo,
		userRepo,
		notificationSvc,
		emailService,
		cfg.App.FrontendURL,
	)
	applicationSvc := applicationService.NewApplicationService(
		db,
		applicationRepo,
		jobRepo,
		companyRepo,
		graduateRepo,
		offerRepo,
		offerSvc,
		notificationSvc,
	)
	interviewSvc := interviewService.NewInterviewService(
		interviewRepo,
		applicationRepo,
		jobRepo,
		notificationSvc,
		cfg.App.FrontendURL,
	)
	adminSvc := adminService.NewAdminService(userRepo, graduateRepo, companyRepo, jobRepo, applicationRepo, matchRepo, notificationSvc)

	router := appHTTP.NewRouter(cfg, jwtService, appHTTP.Handlers{
		Auth:         appHTTP.NewAuthHandler(authSvc, jwtService),
		Graduate:     appHTTP.NewGraduateHandler(graduateSvc, applicationSvc, offerSvc, interviewSvc),
		Company:      appHTTP.NewCompanyHandler(companySvc, jobSvc, applicationSvc, companyRepo),
		Job:          appHTTP.NewJobHandler(jobSvc),
		Admin:        appHTTP.NewAdminHandler(adminSvc, applicationSvc, companySvc, jobSvc, offerSvc),
		Interview:    appHTTP.NewInterviewHandler(interviewSvc),
		Notification: appHTTP.NewNotificationHandler(notificationSvc, jwtService),
	})

	scheduler := cron.NewScheduler()
	cron.NewInterviewJobs(interviewSvc).RegisterJobs(scheduler)
	scheduler.Start()
	defer scheduler.Stop()

	server := &http.Server{
		Addr:              fmt.Sprintf(":%d", cfg.App.Port),
		Handler:           router,
		ReadHeaderTimeout: 10 * time.Second,
	}

	go func() {
		fmt.Printf("Server running at http://localhost%s\n", server.Addr)
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatal("Server error: ", err)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	fmt.Println("Shutting down...")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 15*time.Second)
	defer cancel()
	if err := server.Shutdown(shutdownCtx); err != nil {
		fmt.Println("Forced shutdown:", err)
	}
}
