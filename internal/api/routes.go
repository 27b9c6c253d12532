package api

import (
	"net/http"
	"os"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"

	"github.com/lumina/creatorhub/internal/auth"
)

// SetupRoutes configures all routes. Returns the top-level mux and the /api
// sub-router so late-registered groups can inherit its middleware.
func SetupRoutes(h *Handlers, authManager *auth.Manager) (*chi.Mux, chi.Router) {
	r := chi.NewRouter()

	r.Use(middleware.Logger)
	r.Use(middleware.Recoverer)
	r.Use(middleware.RealIP)
	r.Use(middleware.RequestID)

	// CORS - allow credentials for auth cookies
	r.Use(cors.Handler(cors.Options{
		AllowedOrigins:   []string{"https://app.creatorhub.io", "http://localhost:5173", "http://localhost:8080"},
		AllowedMethods:   []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"Accept", "Authorization", "Content-Type"},
		ExposedHeaders:   []string{"Link"},
		AllowCredentials: true,
		MaxAge:           300,
	}))

	// Health check (no auth required)
	r.Get("/health", h.HealthCheck)

	// Auth routes (no auth required)
	if authManager != nil {
		r.Get("/auth/login", authManager.HandleLogin)
		r.Get("/auth/callback", authManager.HandleCallback)
		r.Get("/auth/logout", authManager.HandleLogout)
		r.Get("/auth/user", authManager.HandleUserInfo)
	}

	// Billing webhooks authenticate with the provider, not a session
	if h.billingRecv != nil {
		r.Post("/webhooks/billing", h.billingRecv.HandleWebhook)
	}

	var apiRouter chi.Router
	devMode := os.Getenv("DEV_MODE") == "true" || os.Getenv("ENVIRONMENT") == "development"

	r.Route("/api", func(r chi.Router) {
		apiRouter = r
		if authManager != nil && !devMode {
			r.Use(authManager.RequireSession)
		} else {
			// Without a session everything runs as the demo user
			r.Use(func(next http.Handler) http.Handler {
				return http.HandlerFunc(func(w http.ResponseWriter, req *http.Request) {
					next.ServeHTTP(w, req.WithContext(auth.WithUserID(req.Context(), auth.DemoUserID)))
				})
			})
		}

		// Dashboard - all data in one call
		r.Get("/dashboard", h.GetDashboard)

		// Estimation engine
		r.Route("/rates", func(r chi.Router) {
			r.Post("/estimate", h.EstimateRate)
			r.Get("/breakdown", h.RateBreakdown)
			r.Post("/history", h.SaveRateEstimate)
			r.Get("/history", h.RateHistory)
		})
		r.Post("/engagement/analyze", h.AnalyzeEngagement)
		r.Get("/besttime", h.BestTimes)
		r.Post("/pitch", h.ComposePitch)
		r.Get("/niches", h.Niches)

		// Profile
		r.Route("/profile", func(r chi.Router) {
			r.Get("/", h.GetProfile)
			r.Put("/", h.UpsertProfile)
			r.Post("/mediakit", h.UploadMediaKit)
			r.Get("/mediakit/url", h.MediaKitURL)
		})

		// Deal pipeline
		r.Route("/deals", func(r chi.Router) {
			r.Get("/", h.ListDeals)
			r.Post("/", h.CreateDeal)
			r.Get("/summary", h.DealSummary)
			r.Get("/{id}", h.GetDeal)
			r.Put("/{id}", h.UpdateDeal)
			r.Post("/{id}/transition", h.TransitionDeal)
			r.Delete("/{id}", h.DeleteDeal)
		})

		// Content calendar
		r.Route("/calendar", func(r chi.Router) {
			r.Get("/", h.ListPosts)
			r.Post("/", h.CreatePost)
			r.Get("/suggest", h.SuggestSlot)
			r.Get("/inspiration", h.Inspiration)
			r.Put("/{id}", h.UpdatePost)
			r.Delete("/{id}", h.DeletePost)
		})

		// AI content tools
		r.Route("/ai", func(r chi.Router) {
			r.Post("/virality", h.ScoreVirality)
			r.Post("/captions", h.ImproveCaptions)
		})

		// Demo workspace
		r.Post("/demo/reset", h.ResetDemo)
	})

	return r, apiRouter
}
