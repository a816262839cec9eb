package api

import (
	"net/http"
	"time"

	"resqconnect/internal/api/handler"
	"resqconnect/internal/app/service"
	"resqconnect/internal/common/security"
	"resqconnect/internal/platform/config"

	"github.com/go-chi/chi/v5"
	chiMiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"github.com/go-chi/jwtauth/v5"
)

func NewRouter(
	authService *service.AuthService,
	alertService *service.AlertService,
	eventService *service.EventService,
	notificationService *service.NotificationService,
	registrationService *service.RegistrationService,
	userService *service.UserService,
) http.Handler {
	r := chi.NewRouter()

	r.Use(chiMiddleware.RequestID)
	r.Use(chiMiddleware.RealIP)
	r.Use(chiMiddleware.Logger)
	r.Use(chiMiddleware.Recoverer)
	r.Use(chiMiddleware.Timeout(60 * time.Second))

	r.Use(cors.Handler(cors.Options{
		AllowedOrigins:   []string{config.AppConfig.ClientOrigin},
		AllowedMethods:   []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"Accept", "Authorization", "Content-Type"},
		AllowCredentials: true,
	}))

	// Verifier only decodes the bearer token into the request context;
	// middleware.Authenticator decides per route group whether it is required.
	r.Use(jwtauth.Verifier(security.TokenAuth))

	r.Get("/health", func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte("OK"))
	})

	r.Route("/api", func(api chi.Router) {
		authHandler := handler.NewAuthHandler(authService)
		api.Route("/auth", authHandler.RegisterRoutes)

		alertHandler := handler.NewAlertHandler(alertService)
		api.Route("/alerts", alertHandler.RegisterRoutes)

		eventHandler := handler.NewEventHandler(eventService)
		api.Route("/events", eventHandler.RegisterRoutes)

		notificationHandler := handler.NewNotificationHandler(notificationService)
		api.Route("/notifications", notificationHandler.RegisterRoutes)

		registrationHandler := handler.NewRegistrationHandler(registrationService)
		api.Route("/registrations", registrationHandler.RegisterRoutes)

		userHandler := handler.NewUserHandler(userService)
		api.Route("/users", userHandler.RegisterRoutes)
	})

	return r
}
