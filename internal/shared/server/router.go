package server

import (
	"context"
	"log"
	"net/http"

	"github.com/gin-gonic/gin"

	"resume-checker/internal/analysis"
	"resume-checker/internal/llm"
	"resume-checker/internal/llm/gemini"
	"resume-checker/internal/shared/config"
	"resume-checker/internal/shared/metrics"
	"resume-checker/internal/shared/server/middleware"
	"resume-checker/internal/shared/server/respond"
	"resume-checker/internal/shared/storage/db"
	localstore "resume-checker/internal/shared/storage/object/local"
)

// NewRouter constructs the Gin engine with middleware and routes registered.
func NewRouter(cfg config.Config) *gin.Engine {
	gin.SetMode(gin.ReleaseMode)
	r := gin.New()

	r.Use(
		middleware.RequestID(),
		middleware.Logging(),
		middleware.Recovery(),
		middleware.CORS(cfg.CORSAllowOrigin),
	)

	ctx := context.Background()

	var repo analysis.Repo
	if cfg.DatabaseURL != "" {
		dbConn, err := db.Connect(ctx, cfg.DatabaseURL, db.OptionsFromEnv(db.DefaultServerOptions()))
		if err != nil {
			log.Printf("failed to connect database, falling back to memory: %v", err)
		} else if err := db.RunMigrations(ctx, dbConn); err != nil {
			log.Printf("failed to run migrations, falling back to memory: %v", err)
			dbConn.Close()
		} else {
			repo = &analysis.PGRepo{DB: dbConn}
		}
	}
	if repo == nil {
		repo = analysis.NewMemoryRepo()
	}

	var llmClient llm.Client
	if cfg.GeminiAPIKey != "" {
		client, err := gemini.NewClient(ctx, cfg.GeminiAPIKey, cfg.GeminiModel)
		if err != nil {
			log.Printf("failed to initialize gemini client, using fallback analysis: %v", err)
		} else {
			llmClient = client
		}
	} else {
		log.Printf("GEMINI_API_KEY not set; analyses will use the fixed fallback result")
	}

	svc := &analysis.Service{
		Cache:      analysis.NewMemoryCache(),
		Repo:       repo,
		Classifier: &analysis.LLMClassifier{LLM: llmClient, Timeout: cfg.LLMTimeout},
		Analyzer:   &analysis.Analyzer{LLM: llmClient, Timeout: cfg.LLMTimeout},
		Archive:    localstore.New(cfg.LocalStoreDir),
	}
	handler := analysis.NewHandler(svc)

	api := r.Group("/api")
	api.GET("/resume/health", func(c *gin.Context) {
		respond.JSON(c, http.StatusOK, gin.H{"ok": true})
	})
	handler.RegisterRoutes(api)

	r.GET("/metrics", metrics.Handler())

	return r
}

// Addr normalizes the listen address.
func Addr(port string) string {
	if port == "" {
		return ":8080"
	}
	if port[0] == ':' {
		return port
	}
	return ":" + port
}
