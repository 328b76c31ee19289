package http

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	chimiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"golang.org/x/time/rate"

	"github.com/CcubeNetvix/medTracker/internal/application/auth"
	"github.com/CcubeNetvix/medTracker/internal/application/notify"
	"github.com/CcubeNetvix/medTracker/internal/application/otp"
	"github.com/CcubeNetvix/medTracker/internal/config"
	jwtinfra "github.com/CcubeNetvix/medTracker/internal/infrastructure/jwt"
	"github.com/CcubeNetvix/medTracker/internal/infrastructure/smtp"
	"github.com/CcubeNetvix/medTracker/internal/infrastructure/sns"
	"github.com/CcubeNetvix/medTracker/internal/transport/http/handler"
	appmiddleware "github.com/CcubeNetvix/medTracker/internal/transport/http/middleware"
)

// Deps holds all infrastructure dependencies for the router. SMSSender and
// Mailer may be nil; the channel layer reports those as "not configured"
// delivery results instead of failing at startup.
type Deps struct {
	UserRepo    UserRepository
	Mailer      smtp.Mailer
	SMSSender   sns.SMSSender
	JWTProvider *jwtinfra.Provider
}

// NewRouter builds and returns the application router.
func NewRouter(cfg *config.Config, deps *Deps) http.Handler {
	r := chi.NewRouter()
	r.Use(chimiddleware.Logger)
	r.Use(chimiddleware.Recoverer)
	r.Use(chimiddleware.RequestID)
	r.Use(cors.Handler(cors.Options{
		AllowedOrigins:   cfg.AllowedOrigins,
		AllowedMethods:   []string{"GET", "POST", "OPTIONS"},
		AllowedHeaders:   []string{"Accept", "Authorization", "Content-Type"},
		AllowCredentials: false,
		MaxAge:           300,
	}))

	// 5 requests/second with a burst of 10 on sensitive public endpoints.
	sensitiveRL := appmiddleware.NewRateLimiter(rate.Limit(5), 10)

	senders := notify.NewSenders(deps.SMSSender, deps.Mailer)
	otpSvc := otp.NewService(senders)
	notifySvc := notify.NewService(senders)
	authSvc := auth.NewService(auth.ServiceDeps{
		UserRepo: deps.UserRepo,
		Signer:   deps.JWTProvider,
		OTP:      otpSvc,
	})

	healthH := handler.NewHealthHandler()
	authH := handler.NewAuthHandler(authSvc)
	notifH := handler.NewNotificationHandler(notifySvc)

	r.Route("/v1", func(r chi.Router) {
		// ── Public routes (no auth) ──────────────────────────────────────────
		r.Get("/health-check/{action}", healthH.Ping)
		r.Post("/health-check/{action}", healthH.Ping)
		r.With(sensitiveRL.Limit).Post("/auth/register", authH.Register)
		r.With(sensitiveRL.Limit).Post("/auth/login", authH.Login)

		// ── Authenticated routes ─────────────────────────────────────────────
		r.Group(func(r chi.Router) {
			r.Use(appmiddleware.Auth(deps.JWTProvider))

			r.With(sensitiveRL.Limit).Post("/notifications", notifH.Dispatch)
		})
	})

	return r
}
