package server

import (
	"context"
	"encoding/json"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/go-playground/validator/v10"

	"github.com/venkateshgajul/SkillmapAI/internal/analysis"
	"github.com/venkateshgajul/SkillmapAI/internal/config"
	"github.com/venkateshgajul/SkillmapAI/internal/db"
	"github.com/venkateshgajul/SkillmapAI/internal/llm"
	"github.com/venkateshgajul/SkillmapAI/internal/resume"
	"github.com/venkateshgajul/SkillmapAI/internal/server/middleware"
)

// Server represents the HTTP server.
type Server struct {
	httpServer  *http.Server
	database    Database
	dbConn      *db.DB
	store       *resume.Store
	analyzer    *analysis.Analyzer
	llmClient   llm.Client
	jwtService  *JWTService
	userService *UserService
	authHandler *AuthHandler
	validator   *validator.Validate
}

// Config holds server configuration.
type Config struct {
	Port         int
	DatabaseURL  string
	GeminiAPIKey string
	StagingTTL   time.Duration
}

// New creates a new server instance. An empty GeminiAPIKey disables the
// remote analysis paths; everything then runs on the deterministic pipeline.
func New(cfg Config) (*Server, error) {
	ctx := context.Background()

	database, err := db.Connect(ctx, cfg.DatabaseURL)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}
	if err := database.EnsureSchema(ctx); err != nil {
		database.Close()
		return nil, err
	}

	s := &Server{
		database:  database,
		dbConn:    database,
		store:     resume.NewStore(cfg.StagingTTL, nil),
		validator: validator.New(),
	}

	var remote analysis.RemoteProvider
	if cfg.GeminiAPIKey != "" {
		client, err := llm.NewGeminiClient(ctx, cfg.GeminiAPIKey)
		if err != nil {
			database.Close()
			return nil, fmt.Errorf("failed to create LLM client: %w", err)
		}
		s.llmClient = client
		remote = llm.NewProvider(client)
	} else {
		log.Println("No Gemini API key configured; remote analysis disabled, using local pipeline")
	}
	s.analyzer = analysis.New(remote)

	passwordConfig, err := config.NewPasswordConfig()
	if err != nil {
		database.Close()
		return nil, fmt.Errorf("failed to create password config: %w", err)
	}
	s.userService = NewUserService(database, passwordConfig)

	jwtConfig, err := config.NewJWTConfig()
	if err != nil {
		database.Close()
		return nil, fmt.Errorf("failed to create JWT config: %w", err)
	}
	s.jwtService = NewJWTService(jwtConfig)
	s.authHandler = NewAuthHandler(s.userService, s.jwtService)

	s.httpServer = &http.Server{
		Addr:         fmt.Sprintf(":%d", cfg.Port),
		Handler:      s.withLogging(s.withCORS(s.routes())),
		ReadTimeout:  30 * time.Second,
		WriteTimeout: 60 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	return s, nil
}

// routes builds the router. Split out so tests can exercise the handler
// chain without a listening socket.
func (s *Server) routes() http.Handler {
	mux := http.NewServeMux()

	requireAuth := middleware.RequireAuth(s.jwtService.AsTokenValidator())
	optionalAuth := middleware.OptionalAuth(s.jwtService.AsTokenValidator())

	mux.HandleFunc("GET /health", s.handleHealth)

	// Auth
	mux.HandleFunc("POST /api/auth/register", s.authHandler.Register)
	mux.HandleFunc("POST /api/auth/login", s.authHandler.Login)
	mux.Handle("GET /api/auth/me", requireAuth(http.HandlerFunc(s.authHandler.Me)))

	// Resumes: upload serves anonymous users too
	mux.Handle("POST /api/resume/upload", optionalAuth(http.HandlerFunc(s.handleUploadResume)))
	mux.Handle("GET /api/resume", requireAuth(http.HandlerFunc(s.handleListResumes)))
	mux.Handle("GET /api/resume/{id}", requireAuth(http.HandlerFunc(s.handleGetResume)))

	// Analysis
	mux.HandleFunc("GET /api/analysis/jobs", s.handleJobList)
	mux.Handle("POST /api/analysis/analyze", optionalAuth(http.HandlerFunc(s.handleAnalyze)))
	mux.Handle("GET /api/analysis/history", requireAuth(http.HandlerFunc(s.handleHistory)))
	mux.Handle("GET /api/analysis/progress", requireAuth(http.HandlerFunc(s.handleProgress)))

	// Admin
	mux.Handle("GET /api/admin/analytics", requireAuth(s.requireAdmin(s.handleAnalytics)))

	// Profile
	mux.Handle("GET /api/profile", requireAuth(http.HandlerFunc(s.handleProfile)))
	mux.Handle("POST /api/profile/courses/complete", requireAuth(http.HandlerFunc(s.handleCompleteCourse)))
	mux.Handle("POST /api/profile/courses/remove", requireAuth(http.HandlerFunc(s.handleRemoveCourse)))

	return mux
}

// Start begins listening for requests and blocks until shutdown.
func (s *Server) Start() error {
	stop := make(chan os.Signal, 1)
	signal.Notify(stop, os.Interrupt, syscall.SIGTERM)

	go func() {
		log.Printf("Server starting on %s", s.httpServer.Addr)
		if err := s.httpServer.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatalf("Server error: %v", err)
		}
	}()

	<-stop
	log.Println("Shutting down server...")

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := s.httpServer.Shutdown(ctx); err != nil {
		return fmt.Errorf("server shutdown failed: %w", err)
	}

	s.store.Stop()
	if s.llmClient != nil {
		_ = s.llmClient.Close()
	}
	if s.dbConn != nil {
		s.dbConn.Close()
	}
	log.Println("Server stopped")
	return nil
}

// withCORS adds CORS headers.
func (s *Server) withCORS(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Access-Control-Allow-Origin", "*")
		w.Header().Set("Access-Control-Allow-Methods", "GET, POST, OPTIONS")
		w.Header().Set("Access-Control-Allow-Headers", "Content-Type, Authorization")

		if r.Method == "OPTIONS" {
			w.WriteHeader(http.StatusOK)
			return
		}

		next.ServeHTTP(w, r)
	})
}

// withLogging adds request logging.
func (s *Server) withLogging(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		log.Printf("[%s] %s %s", r.Method, r.URL.Path, r.RemoteAddr)
		next.ServeHTTP(w, r)
		log.Printf("[%s] %s completed in %v", r.Method, r.URL.Path, time.Since(start))
	})
}

// handleHealth returns server health status.
func (s *Server) handleHealth(w http.ResponseWriter, _ *http.Request) {
	jsonResponse(w, http.StatusOK, map[string]string{"status": "ok"})
}

// jsonResponse writes a JSON response.
func jsonResponse(w http.ResponseWriter, status int, data any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(data); err != nil {
		log.Printf("Error encoding JSON response: %v", err)
	}
}

// errorResponse writes an error JSON response.
func errorResponse(w http.ResponseWriter, status int, message string) {
	jsonResponse(w, status, map[string]string{"error": message})
}
