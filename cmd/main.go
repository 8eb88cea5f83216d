package main

import (
	"context"
	"net/http"
	"os"
	"strconv"
	"time"

	"attendra/api/handler"
	apiMiddleware "attendra/api/middleware"
	"attendra/api/routes"
	"attendra/config"
	"attendra/internal/geo"
	"attendra/internal/repository"
	"attendra/internal/service"
	"attendra/internal/utils"

	"github.com/go-playground/validator/v10"
	"github.com/labstack/echo/v4"
	echoMiddleware "github.com/labstack/echo/v4/middleware"
	"github.com/sirupsen/logrus"
)

func main() {
	db := config.ConnectionDb()
	validate := validator.New()

	logger := logrus.New()
	logger.SetFormatter(&logrus.JSONFormatter{})
	logger.SetOutput(os.Stdout)

	accessSecret := []byte(os.Getenv("JWT_SECRET"))
	if len(accessSecret) == 0 {
		logger.Fatal("JWT_SECRET is required")
	}
	accessManager := utils.JWTManager{
		Secret:         accessSecret,
		Issuer:         os.Getenv("JWT_ISSUER"),
		AccessTokenTTL: time.Hour,
	}

	userRepo := repository.NewUserRepository(db)
	sessionRepo := repository.NewSessionRepository(db)
	attendanceRepo := repository.NewAttendanceRepository(db)
	reminderRepo := repository.NewReminderRepository(db)
	scheduleRepo := repository.NewScheduleRepository(db)

	clock := service.RealClock{}

	notifier := service.NewReminderNotifier(reminderRepo, clock)
	notifier.EnableEmail(os.Getenv("RESEND_API_KEY"), os.Getenv("NOTIFY_FROM_EMAIL"))

	scheduler := service.NewTimerScheduler(clock, logger)

	attendanceService := service.NewAttendanceService(
		sessionRepo,
		attendanceRepo,
		userRepo,
		service.QRTokenEncoder{Size: 400},
		notifier,
		scheduler,
		clock,
		logger,
		service.AttendanceConfig{
			SessionTTL: 10 * time.Minute,
			ReferencePoint: geo.Point{
				Latitude:  envFloat("CHECKIN_REF_LAT", 15.0416),
				Longitude: envFloat("CHECKIN_REF_LON", 120.6832),
			},
			MaxDistanceKm: envFloat("CHECKIN_MAX_KM", 0.2),
		},
	)
	scheduler.SetExpireFunc(attendanceService.ExpireSession)

	// Re-arm expiry timers for sessions that were still active when the
	// previous process stopped.
	recoverCtx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	if err := attendanceService.RecoverPendingExpiries(recoverCtx); err != nil {
		logger.WithError(err).Fatal("failed to recover pending expirations")
	}
	cancel()

	authService := service.NewAuthService(
		userRepo,
		service.BcryptPasswordHasher{},
		service.JWTAccessIssuer{Manager: &accessManager},
	)
	reminderService := service.NewReminderService(reminderRepo)
	scheduleService := service.NewScheduleService(scheduleRepo, userRepo)

	attendanceHandler := handler.NewAttendanceHandler(attendanceService, validate)
	authHandler := handler.NewAuthHandler(authService, validate)
	reminderHandler := handler.NewReminderHandler(reminderService, validate)
	scheduleHandler := handler.NewScheduleHandler(scheduleService)

	app := echo.New()
	app.HideBanner = true
	app.HidePort = true
	app.Use(echoMiddleware.Recover())
	app.Use(echoMiddleware.RequestLoggerWithConfig(echoMiddleware.RequestLoggerConfig{
		LogStatus:   true,
		LogMethod:   true,
		LogURI:      true,
		LogRemoteIP: true,
		LogError:    true,
		HandleError: true,
		LogValuesFunc: func(c echo.Context, v echoMiddleware.RequestLoggerValues) error {
			entry := logger.WithFields(logrus.Fields{
				"status": v.Status,
				"method": v.Method,
				"uri":    v.URI,
				"ip":     v.RemoteIP,
			})
			if v.Error != nil {
				entry.WithError(v.Error).Error("request")
				return nil
			}
			entry.Info("request")
			return nil
		},
	}))

	authMiddleware := apiMiddleware.AuthMiddleware{JWT: &accessManager}
	router := routes.NewRouter(app, attendanceHandler, authHandler, reminderHandler, scheduleHandler, authMiddleware)
	router.RegisterRoutes()

	addr := os.Getenv("HTTP_ADDR")
	if addr == "" {
		addr = ":8080"
	}
	server := &http.Server{
		Addr:              addr,
		ReadHeaderTimeout: 5 * time.Second,
	}

	logger.WithField("addr", addr).Info("server started")
	if err := app.StartServer(server); err != nil {
		scheduler.Stop()
		attendanceService.Wait()
		logger.WithError(err).Fatal("server stopped")
	}
}

func envFloat(key string, fallback float64) float64 {
	raw := os.Getenv(key)
	if raw == "" {
		return fallback
	}
	value, err := strconv.ParseFloat(raw, 64)
	if err != nil {
		return fallback
	}
	return value
}
