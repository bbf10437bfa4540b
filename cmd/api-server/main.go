package main

import (
	"context"
	"errors"
	"log"
	"net/http"
	"os"
	"os/signal"
	"sync"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"

	"bloghub/internal/auth"
	"bloghub/internal/comments"
	"bloghub/internal/feedback"
	"bloghub/internal/livereload"
	"bloghub/internal/posts"
	"bloghub/internal/progress"
	"bloghub/internal/reading"
	"bloghub/internal/series"
	"bloghub/pkg/database"
	"bloghub/pkg/utils"
)

func main() {
	siteCfg, err := utils.LoadSiteConfig("site.yaml")
	if err != nil {
		log.Fatalf("site config: %v", err)
	}

	cfg := database.DefaultConfig()
	db := database.MustOpen(cfg)
	defer db.Close()

	if err := database.Migrate(db); err != nil {
		log.Fatalf("db migrate failed: %v", err)
	}

	router := gin.Default()

	// Optional: avoid “trusted all proxies” warning
	_ = router.SetTrustedProxies([]string{"127.0.0.1"})

	// Start TCP live-reload first (so you notice binding errors early)
	hub := livereload.NewHub()
	router.GET("/ws", livereload.WSHandler(hub))
	tcpSrv := livereload.NewServer(siteCfg.TCPAddr, hub)

	router.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok", "db": cfg.Path})
	})

	router.GET("/ready", func(c *gin.Context) {
		stats := hub.Stats()
		ctx, cancel := context.WithTimeout(c.Request.Context(), 2*time.Second)
		defer cancel()

		if err := db.PingContext(ctx); err != nil {
			c.JSON(http.StatusServiceUnavailable, gin.H{
				"status":      "not_ready",
				"db_error":    err.Error(),
				"tcp_clients": stats.TCPClients,
				"ws_clients":  stats.WSClients,
			})
			return
		}

		c.JSON(http.StatusOK, gin.H{
			"status":      "ready",
			"db":          "ok",
			"tcp_clients": stats.TCPClients,
			"ws_clients":  stats.WSClients,
		})
	})

	router.GET("/debug", func(c *gin.Context) {
		stats := hub.Stats()
		c.JSON(http.StatusOK, gin.H{
			"db":          cfg.Path,
			"tcp_clients": stats.TCPClients,
			"ws_clients":  stats.WSClients,
		})
	})

	// Posts (public)
	postsRepo := posts.NewRepo(db)
	postsHandler := posts.NewHandler(postsRepo)
	postsGroup := router.Group("/posts")
	postsHandler.RegisterRoutes(postsGroup)

	// Series index over the published posts
	seriesHandler := series.NewHandler(postsRepo)
	if err := seriesHandler.Reindex(context.Background()); err != nil {
		log.Printf("initial reindex failed: %v", err)
	}
	seriesHandler.RegisterRoutes(router.Group("/series"))
	seriesHandler.RegisterNavRoute(postsGroup)

	// Feedback (public read)
	feedbackRepo := feedback.NewRepo(db)
	feedbackHandler := feedback.NewHandler(feedbackRepo)
	feedbackHandler.RegisterPublicRoutes(&router.RouterGroup)

	// Live comments per post
	commentsHub := comments.NewHub(0)
	router.GET("/comments/ws", comments.WSHandler(commentsHub))
	router.GET("/comments", comments.HistoryHandler(commentsHub))

	// Auth
	authCfg := utils.LoadAuthConfig()
	tokenSvc := auth.TokenService{
		Secret:   []byte(authCfg.JWTSecret),
		Issuer:   authCfg.JWTIssuer,
		Duration: authCfg.JWTDuration,
	}
	authRepo := auth.NewRepo(db)
	authHandler := auth.NewHandler(authRepo, tokenSvc)
	authHandler.RegisterRoutes(router.Group("/auth"))

	// Protected routes
	protected := router.Group("/users")
	protected.Use(auth.AuthMiddleware(tokenSvc, authRepo))

	protected.GET("/me", func(c *gin.Context) {
		claims := auth.MustGetClaims(c)
		c.JSON(http.StatusOK, gin.H{
			"id":       claims.UserID,
			"username": claims.Username,
			"email":    claims.Email,
		})
	})

	postsHandler.RegisterProtectedRoutes(protected)
	seriesHandler.RegisterAdminRoutes(protected)
	feedbackHandler.RegisterProtectedRoutes(protected)

	readingRepo := reading.NewRepo(db)
	readingHandler := reading.NewHandler(readingRepo, hub, seriesHandler)
	readingHandler.RegisterRoutes(protected)

	progressRepo := progress.NewRepo(db)
	progressHandler := progress.NewHandler(progressRepo)
	progressHandler.RegisterRoutes(protected)

	httpSrv := &http.Server{
		Addr:    siteCfg.HTTPAddr,
		Handler: router,
	}

	errCh := make(chan error, 2)
	var wg sync.WaitGroup

	wg.Add(1)
	go func() {
		defer wg.Done()
		if err := tcpSrv.Run(); err != nil {
			errCh <- err
		}
	}()

	wg.Add(1)
	go func() {
		defer wg.Done()
		log.Printf("HTTP API server listening on %s", siteCfg.HTTPAddr)
		if err := httpSrv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
	}()

	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)

	select {
	case sig := <-sigCh:
		log.Printf("shutdown signal received: %s", sig)
	case err := <-errCh:
		log.Printf("server error: %v", err)
	}

	log.Println("shutting down servers")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := httpSrv.Shutdown(shutdownCtx); err != nil {
		log.Printf("http shutdown error: %v", err)
	}
	if err := tcpSrv.Close(); err != nil {
		log.Printf("tcp shutdown error: %v", err)
	}

	wg.Wait()
	log.Println("servers stopped")
}
