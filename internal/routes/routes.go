package routes

import (
	"github.com/go-chi/chi/v5"

	"github.com/Ashish-04-codes/Portfolio/internal/auth"
	"github.com/Ashish-04-codes/Portfolio/internal/handlers"
	"github.com/Ashish-04-codes/Portfolio/internal/middleware"
)

// Handlers bundles every HTTP handler the router mounts.
type Handlers struct {
	Auth       *handlers.AuthHandler
	Session    *handlers.SessionHandler
	MFA        *handlers.MFAHandler
	Projects   *handlers.ProjectHandler
	Posts      *handlers.BlogPostHandler
	Profile    *handlers.ProfileHandler
	Skills     *handlers.SkillHandler
	SiteConfig *handlers.SiteConfigHandler
	Activity   *handlers.ActivityHandler
	Contact    *handlers.ContactHandler
	Media      *handlers.MediaHandler
	Visits     *handlers.VisitHandler
}

// RegisterRoutes registers all application routes
func RegisterRoutes(
	router chi.Router,
	h Handlers,
	tokenManager *auth.TokenManager,
	guard auth.SessionGuard,
	recorder auth.InteractionRecorder,
) {
	loginLimit := middleware.DefaultLoginRateLimit()
	publicLimit := middleware.DefaultPublicRateLimit()

	// Public routes - no authentication required
	router.Group(func(r chi.Router) {
		r.Use(middleware.RateLimitByIP(publicLimit))

		r.Get("/projects", h.Projects.ListPublished)
		r.Get("/projects/featured", h.Projects.ListFeatured)
		r.Get("/projects/{id}", h.Projects.Get)
		r.Get("/posts", h.Posts.ListPublished)
		r.Get("/posts/{id}", h.Posts.Get)
		r.Get("/profile", h.Profile.Get)
		r.Get("/skills", h.Skills.List)
		r.Get("/config", h.SiteConfig.Get)
		r.Post("/contact", h.Contact.Submit)
		r.Post("/visits", h.Visits.Record)
	})

	router.With(middleware.RateLimitByIP(loginLimit)).Post("/auth/login", h.Auth.Login)

	// Admin routes - session token required, every request counts as
	// activity against the idle timeout
	router.Route("/admin", func(r chi.Router) {
		r.Use(auth.Middleware(tokenManager, guard, recorder))

		r.Post("/auth/logout", h.Auth.Logout)

		r.Get("/session", h.Session.Status)
		r.Post("/session/extend", h.Session.Extend)

		r.Get("/mfa", h.MFA.Status)
		r.Post("/mfa/setup", h.MFA.Setup)
		r.Get("/mfa/qr", h.MFA.QR)

		r.Get("/projects", h.Projects.ListAll)
		r.Post("/projects", h.Projects.Create)
		r.Put("/projects/reorder", h.Projects.Reorder)
		r.Get("/projects/{id}", h.Projects.GetAny)
		r.Put("/projects/{id}", h.Projects.Update)
		r.Delete("/projects/{id}", h.Projects.Delete)
		r.Put("/projects/{id}/publish", h.Projects.SetPublished)

		r.Get("/posts", h.Posts.ListAll)
		r.Post("/posts", h.Posts.Create)
		r.Get("/posts/{id}", h.Posts.GetAny)
		r.Put("/posts/{id}", h.Posts.Update)
		r.Delete("/posts/{id}", h.Posts.Delete)
		r.Put("/posts/{id}/publish", h.Posts.SetPublished)

		r.Put("/profile", h.Profile.Save)

		r.Post("/skills", h.Skills.Create)
		r.Put("/skills/reorder", h.Skills.Reorder)
		r.Put("/skills/{id}", h.Skills.Update)
		r.Delete("/skills/{id}", h.Skills.Delete)

		r.Put("/config", h.SiteConfig.Save)

		r.Get("/activity", h.Activity.List)
		r.Get("/activity/stats", h.Activity.Stats)
		r.Get("/activity/failed-logins", h.Activity.FailedLogins)
		r.Get("/activity/export", h.Activity.Export)
		r.Delete("/activity", h.Activity.Clear)

		r.Post("/media", h.Media.Upload)

		r.Get("/visits", h.Visits.Recent)
	})
}
