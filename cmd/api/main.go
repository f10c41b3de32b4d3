package main

import (
	"fmt"
	"log"
	"os"
	"time"

	"capex-forecast/internal/api/handlers"
	"capex-forecast/internal/api/middleware"
	"capex-forecast/internal/capex"
	"capex-forecast/internal/sensitivity"
	"capex-forecast/internal/store"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
)

func main() {
	// Optional .env for local development; missing file is fine.
	_ = godotenv.Load()

	port := os.Getenv("API_PORT")
	if port == "" {
		port = "8080"
	}

	if os.Getenv("API_ENV") == "production" {
		gin.SetMode(gin.ReleaseMode)
	}
	router := gin.New()

	router.Use(middleware.CORS())
	router.Use(middleware.Logger())
	router.Use(middleware.ErrorHandler())

	// Run store: Redis when REDIS_ADDR is set and reachable, in-memory otherwise.
	runs := buildRunStore()

	calc := capex.New()
	analyzer := sensitivity.New(calc)

	analyzeHandler := handlers.NewAnalyzeHandler(calc, analyzer, runs)
	sensitivityHandler := handlers.NewSensitivityHandler(analyzer)
	financeHandler := handlers.NewFinanceHandler(calc)
	scenarioHandler := handlers.NewScenarioHandler()
	runHandler := handlers.NewRunHandler(runs)

	router.GET("/health", func(c *gin.Context) {
		c.JSON(200, gin.H{"status": "ok"})
	})

	api := router.Group("/api/v1")
	{
		api.POST("/analyze", analyzeHandler.Analyze)

		api.POST("/sensitivity", sensitivityHandler.Sensitivity)
		api.POST("/sensitivity/impact", sensitivityHandler.Impact)
		api.POST("/tornado", sensitivityHandler.Tornado)
		api.POST("/montecarlo", sensitivityHandler.MonteCarlo)
		api.POST("/breakeven", sensitivityHandler.BreakEven)

		api.POST("/lcoe", financeHandler.LCOE)
		api.POST("/finance/cashflow", financeHandler.CashFlow)
		api.POST("/finance/debt-service", financeHandler.DebtService)
		api.POST("/finance/depreciation", financeHandler.Depreciation)
		api.POST("/finance/metrics", financeHandler.Metrics)

		api.GET("/scenarios", scenarioHandler.ListScenarios)
		api.GET("/parameters", scenarioHandler.ListParameters)

		api.GET("/runs/:id", runHandler.GetRun)
		api.GET("/runs/:id/export", runHandler.ExportRun)
	}

	addr := fmt.Sprintf(":%s", port)
	log.Printf("Starting API server on %s", addr)
	if err := router.Run(addr); err != nil {
		log.Fatalf("Failed to start server: %v", err)
	}
}

func buildRunStore() store.RunStore {
	ttl := time.Hour
	if v := os.Getenv("RUN_TTL_MINUTES"); v != "" {
		var minutes int
		if _, err := fmt.Sscanf(v, "%d", &minutes); err == nil && minutes > 0 {
			ttl = time.Duration(minutes) * time.Minute
		}
	}

	if addr := os.Getenv("REDIS_ADDR"); addr != "" {
		rs := store.NewRedisStore(addr, ttl)
		if err := rs.Ping(); err != nil {
			log.Printf("Redis at %s unreachable (%v), falling back to in-memory run store", addr, err)
		} else {
			log.Printf("Using Redis run store at %s", addr)
			return rs
		}
	}
	return store.NewMemoryStore(ttl)
}
