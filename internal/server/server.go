package server

import (
	"context"
	"database/sql"
	"fmt"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"github.com/sirupsen/logrus"
	"github.com/zengarden/apiserver/config"
	"github.com/zengarden/apiserver/internal/auth"
	"github.com/zengarden/apiserver/internal/db"
	"github.com/zengarden/apiserver/internal/handlers"
	"github.com/zengarden/apiserver/internal/services"
	"github.com/zengarden/apiserver/internal/store"
)

// Server wraps the HTTP server and router.
type Server struct {
	httpServer *http.Server
	router     *chi.Mux
	db         *sql.DB
	log        *logrus.Logger
}

// New constructs a Server with its database, routes, and middleware.
func New(ctx context.Context, cfg config.Config, log *logrus.Logger) (*Server, error) {
	if log == nil {
		log = logrus.New()
	}

	dbConn, err := db.Open(ctx, cfg)
	if err != nil {
		return nil, err
	}
	log.WithField("path", cfg.Database.Path).Info("database ready")

	authenticator, err := auth.New(cfg.Auth)
	if err != nil {
		_ = dbConn.Close()
		return nil, err
	}

	userRepo := store.NewUserRepository(dbConn)
	flowerRepo := store.NewFlowerRepository(dbConn)

	userService := services.NewUserService(userRepo)
	flowerService := services.NewFlowerService(flowerRepo)

	authMiddleware := handlers.RequireAuth(userService, authenticator)

	router := chi.NewRouter()
	router.Use(
		middleware.RequestID,
		middleware.RealIP,
		middleware.Recoverer,
		middleware.Logger,
		middleware.Timeout(60*time.Second),
		cors.Handler(cors.Options{
			AllowedOrigins:   []string{"*"},
			AllowedMethods:   []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
			AllowedHeaders:   []string{"*"},
			AllowCredentials: false,
		}),
	)
	prefix := cfg.APIPrefix
	if prefix == "" {
		prefix = "/"
	}

	router.Get("/healthz", handlers.Healthz(cfg.ProjectName, cfg.Version))
	router.Route(prefix, func(r chi.Router) {
		r.Route("/auth", func(r chi.Router) {
			handlers.AuthRouter(r, userService, authenticator)
		})
		r.Route("/flowers", func(r chi.Router) {
			handlers.FlowerRouter(r, flowerService, authMiddleware)
		})
	})

	port := cfg.ServerPort
	if port == 0 {
		port = 8080
	}

	httpServer := &http.Server{
		Addr:         fmt.Sprintf(":%d", port),
		Handler:      router,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 15 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	return &Server{
		httpServer: httpServer,
		router:     router,
		db:         dbConn,
		log:        log,
	}, nil
}

// Router exposes the chi router for route registration.
func (s *Server) Router() *chi.Mux {
	return s.router
}

// Start runs the HTTP server.
func (s *Server) Start() error {
	s.log.WithField("addr", s.httpServer.Addr).Info("server listening")
	return s.httpServer.ListenAndServe()
}

// Shutdown attempts a graceful shutdown.
func (s *Server) Shutdown() error {
	s.log.Info("server shutting down")
	if s.db != nil {
		_ = s.db.Close()
	}
	return s.httpServer.Close()
}
