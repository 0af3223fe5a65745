package main

import (
	"fmt"
	"log"
	"net/http"

	"github.com/oilchem-hr/attendance-backend-go/internal/config"
	appHTTP "github.com/oilchem-hr/attendance-backend-go/internal/handler/http"
	"github.com/oilchem-hr/attendance-backend-go/internal/pkg/cron"
	"github.com/oilchem-hr/attendance-backend-go/internal/pkg/database"
	"github.com/oilchem-hr/attendance-backend-go/internal/pkg/email"
	"github.com/oilchem-hr/attendance-backend-go/internal/pkg/jwt"
	"github.com/oilchem-hr/attendance-backend-go/internal/pkg/pdf"
	"github.com/oilchem-hr/attendance-backend-go/internal/repository/postgresql"
	authService "github.com/oilchem-hr/attendance-backend-go/internal/service/auth"
	dashboardService "github.com/oilchem-hr/attendance-backend-go/internal/service/dashboard"
	exportService "github.com/oilchem-hr/attendance-backend-go/internal/service/export"
	notificationService "github.com/oilchem-hr/attendance-backend-go/internal/service/notification"
	reportService "github.com/oilchem-hr/attendance-backend-go/internal/service/report"
	settingsService "github.com/oilchem-hr/attendance-backend-go/internal/service/settings"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		fmt.Println("Error loading config:", err)
		return
	}

	// The attendance source is another system's database; the portal
	// only reads it. Portal-owned state lives in the app store.
	sourceDB, err := database.NewPostgreSQLDB(cfg.DatabaseURL())
	if err != nil {
		fmt.Println("Error connecting to attendance source:", err)
		return
	}

	appDB, err := database.NewPostgreSQLDB(cfg.AppStoreURL())
	if err != nil {
		fmt.Println("Error connecting to app store:", err)
		return
	}

	punchRepo := postgresql.NewPunchRepository(sourceDB)
	employeeRepo := postgresql.NewEmployeeRepository(sourceDB)
	shiftConfigRepo := postgresql.NewShiftConfigRepository(appDB)
	notificationLogRepo := postgresql.NewNotificationLogRepository(appDB)
	userRepo := postgresql.NewUserRepository(appDB)
	dashboardRepo := postgresql.NewDashboardRepository(appDB)

	jwtService := jwt.NewJWTService(cfg.JWT.Secret, cfg.JWT.AccessExpiration, cfg.JWT.RefreshExpiration)
	emailService, err := email.NewEmailService(cfg.SMTP, cfg.Notification.SendTimeout)
	if err != nil {
		log.Fatal("Failed to initialize email service:", err)
	}

	cutoffHours := cfg.Report.ShiftOutCutoffHours

	authSvc := authService.NewAuthService(userRepo, jwtService)
	reportSvc := reportService.NewReportService(punchRepo, employeeRepo, cutoffHours)
	exportSvc := exportService.NewExportService(reportSvc, pdf.NewRenderer())
	settingsSvc := settingsService.NewSettingsService(employeeRepo, shiftConfigRepo)
	notificationSvc := notificationService.NewNotificationService(
		punchRepo,
		employeeRepo,
		shiftConfigRepo,
		notificationLogRepo,
		emailService,
		cutoffHours,
		cfg.Notification.DefaultCC,
	)
	dashboardSvc := dashboardService.NewDashboardService(dashboardRepo, punchRepo, cutoffHours)

	authHandler := appHTTP.NewAuthHandler(authSvc)
	reportHandler := appHTTP.NewReportHandler(reportSvc)
	exportHandler := appHTTP.NewExportHandler(exportSvc)
	settingsHandler := appHTTP.NewSettingsHandler(settingsSvc)
	notificationHandler := appHTTP.NewNotificationHandler(notificationSvc)
	employeeHandler := appHTTP.NewEmployeeHandler(employeeRepo)
	dashboardHandler := appHTTP.NewDashboardHandler(dashboardSvc)

	scheduler := cron.NewScheduler()
	cron.NewNotificationJobs(notificationSvc).RegisterJobs(scheduler)
	scheduler.Start()
	defer scheduler.Stop()

	router := appHTTP.NewRouter(
		appHTTP.RouterConfig{
			Env:         cfg.App.Env,
			FrontendURL: cfg.App.FrontendURL,
		},
		jwtService,
		authHandler,
		reportHandler,
		exportHandler,
		settingsHandler,
		notificationHandler,
		employeeHandler,
		dashboardHandler,
	)

	port := fmt.Sprintf(":%d", cfg.App.Port)
	fmt.Printf("Server running at http://localhost%s\n", port)
	if err := http.ListenAndServe(port, router); err != nil {
		fmt.Println("Server error:", err)
	}
}
