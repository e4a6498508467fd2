package main

import (
	"log"
	"net/http"

	"interviewcoach/internal/completion"
	"interviewcoach/internal/config"
	"interviewcoach/internal/httputil"
	"interviewcoach/internal/interview"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
)

func main() {
	if err := config.Load(); err != nil {
		log.Println("no .env loaded:", err)
	}

	cfg := config.CompletionFromEnv()
	if cfg.APIKey == "" {
		log.Printf("warning: API key for provider %q not set; /api/interview will return backend errors", cfg.Provider)
	}
	client, err := completion.New(cfg)
	if err != nil {
		log.Fatal(err)
	}

	r := newRouter(cfg, client)
	addr := config.Addr()
	log.Printf("listening on %s (provider=%s model=%s prompt=%s)", addr, cfg.Provider, cfg.Model, interview.PromptVersion)
	if err := r.Run(addr); err != nil {
		log.Fatal(err)
	}
}

func newRouter(cfg config.Completion, client completion.Client) *gin.Engine {
	r := gin.Default()
	r.Use(cors.Default())
	r.Use(httputil.RequestID())

	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})
	r.GET("/ready", func(c *gin.Context) {
		if cfg.APIKey == "" {
			c.JSON(http.StatusServiceUnavailable, gin.H{"status": "error", "error": "completion api key not set"})
			return
		}
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	r.POST("/api/interview", interview.Handler(client))
	return r
}
