package main

import (
	"expvar"
	"net/http"

	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"

	"github.com/ayuu-te/studio-look/internal/config"
	"github.com/ayuu-te/studio-look/internal/domain/auth"
	"github.com/ayuu-te/studio-look/internal/domain/comment"
	"github.com/ayuu-te/studio-look/internal/domain/gallery"
	"github.com/ayuu-te/studio-look/internal/domain/project"
	"github.com/ayuu-te/studio-look/internal/domain/selection"
	"github.com/ayuu-te/studio-look/internal/middleware"
	"github.com/ayuu-te/studio-look/internal/pkg/jwt"
	pkgresponse "github.com/ayuu-te/studio-look/internal/pkg/response"
	"github.com/ayuu-te/studio-look/internal/realtime"
	"github.com/ayuu-te/studio-look/internal/store"
)

type routerDeps struct {
	cfg      *config.Config
	store    *store.Store
	jwt      *jwt.Service
	denylist auth.Denylist
	hub      *realtime.Hub
}

func newRouter(d routerDeps) chi.Router {
	// A nil *Hub must not reach the services as a non-nil interface
	var (
		publisher realtime.Publisher
		stream    gallery.Streamer
	)
	if d.hub != nil {
		publisher = d.hub
		stream = d.hub
	}

	// ---------- Services ----------
	selectionSvc := selection.NewService(selection.NewRepository(d.store), publisher)
	commentSvc := comment.NewService(comment.NewRepository(d.store), publisher)
	gallerySvc := gallery.NewService(gallery.NewRepository(d.store), publisher)
	projectSvc := project.NewService(project.NewRepository(d.store))
	authSvc := auth.NewService(auth.NewUserRepository(d.store), d.jwt, d.denylist)

	// ---------- Handlers ----------
	galleryHandler := gallery.NewHandler(gallerySvc, selectionSvc, stream)
	commentHandler := comment.NewHandler(commentSvc)
	projectHandler := project.NewHandler(projectSvc)
	authHandler := auth.NewHandler(authSvc)

	authMiddleware := middleware.Auth(d.jwt, d.denylist)
	optionalAuth := middleware.OptionalAuth(d.jwt, d.denylist)

	// ---------- Router ----------
	r := chi.NewRouter()

	r.Use(chimw.RealIP)
	r.Use(middleware.RequestID)
	r.Use(middleware.Logger)
	r.Use(middleware.Recover)
	r.Use(middleware.CORSHandler(d.cfg.AllowedOrigins))

	r.Get("/health", func(w http.ResponseWriter, r *http.Request) {
		pkgresponse.OK(w, map[string]string{
			"status":  "ok",
			"version": version,
		})
	})
	r.Handle("/debug/vars", expvar.Handler())

	r.Route("/api", func(r chi.Router) {
		// Gallery carries the websocket route, so it stays out of Compress
		r.Mount("/gallery", galleryHandler.Routes(optionalAuth))

		r.Group(func(r chi.Router) {
			r.Use(chimw.Compress(5))
			r.Mount("/auth", authHandler.Routes(authMiddleware))
			r.Mount("/comments", commentHandler.Routes(optionalAuth))
			r.Mount("/projects", projectHandler.Routes(authMiddleware, middleware.RequirePhotographer()))
		})
	})

	return r
}
