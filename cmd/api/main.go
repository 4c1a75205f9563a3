package main

import (
	"context"
	"log"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"

	"github.com/DeyYed/DeyFinder/internal/analyzer"
	"github.com/DeyYed/DeyFinder/internal/config"
	"github.com/DeyYed/DeyFinder/internal/handlers"
	"github.com/DeyYed/DeyFinder/internal/llm"
	"github.com/DeyYed/DeyFinder/internal/synth"
)

func main() {
	// 1. Load Environment Variables
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, reading process environment directly")
	}
	cfg := config.Load()

	// 2. Initialize the AI Client (optional: job search degrades without it)
	var ai llm.TextGenerator
	if cfg.AIConfigured() {
		client, err := llm.NewGeminiClient(context.Background(), cfg.APIKey, cfg.Model)
		if err != nil {
			log.Printf("⚠️  Gemini client unavailable: %v (job search will use the fallback catalogue)", err)
		} else {
			log.Printf("✅ Gemini client ready (model=%s)", cfg.Model)
			ai = client
		}
	} else {
		log.Println("⚠️  No Gemini API key configured; job search will use the fallback catalogue")
	}

	// 3. Initialize Core Services (Dependencies)
	resumeAnalyzer := analyzer.New(ai)
	jobEngine := synth.NewEngine(ai)

	// 4. Initialize Handlers
	resumeHandler := handlers.NewResumeHandler(resumeAnalyzer)
	jobHandler := handlers.NewJobHandler(jobEngine)

	// 5. Setup Router & CORS
	r := gin.Default()
	corsCfg := cors.DefaultConfig()
	if len(cfg.AllowedOrigins) == 0 {
		corsCfg.AllowAllOrigins = true
	} else {
		corsCfg.AllowOrigins = cfg.AllowedOrigins
	}
	corsCfg.AllowHeaders = []string{"Origin", "Content-Length", "Content-Type", "Authorization"}
	r.Use(cors.New(corsCfg))

	// 6. Define Routes
	api := r.Group("/api/v1")
	{
		api.GET("/health", handlers.HealthCheck(ai != nil))

		api.POST("/resume/analyze", resumeHandler.AnalyzeResume)
		api.POST("/jobs/search", jobHandler.SearchJobs)
	}

	log.Printf("🚀 Server starting on port %s...", cfg.Port)
	if err := r.Run(":" + cfg.Port); err != nil {
		log.Fatal("Server failed to start:", err)
	}
}
