package entrypoint

import (
	"context"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/robfig/cron/v3"

	"github.com/jeonck/tutoria/internal/ai"
	"github.com/jeonck/tutoria/internal/config"
	"github.com/jeonck/tutoria/internal/database"
	"github.com/jeonck/tutoria/internal/database/collections"
	"github.com/jeonck/tutoria/internal/database/sharedfiles"
	"github.com/jeonck/tutoria/internal/database/trash"
	"github.com/jeonck/tutoria/internal/database/tutorials"
	http_controllers "github.com/jeonck/tutoria/internal/http"
)

// ShutdownFunc is called during graceful shutdown to clean up resources.
type ShutdownFunc func(ctx context.Context)

func Serve(router *gin.Engine, cfg *config.Config, onShutdown ShutdownFunc) {
	timeout := time.Duration(cfg.Global.ShutdownTimeoutInSeconds) * time.Second

	srv := &http.Server{
		Addr:    fmt.Sprintf("%s:%d", cfg.HTTP.Host, cfg.HTTP.Port),
		Handler: router,
	}

	go func() {
		log.Printf("Starting server at %s:%d\n", cfg.HTTP.Host, cfg.HTTP.Port)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatalf("listen: %s\n", err)
		}
	}()

	// Wait for interrupt signal to gracefully shut down the server.
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	log.Printf("Shutdown Server, waiting %v before killing\n", timeout)

	ctx, cancel := context.WithTimeout(context.Background(), timeout)
	defer cancel()

	if onShutdown != nil {
		onShutdown(ctx)
	}

	if err := srv.Shutdown(ctx); err != nil {
		log.Fatal("Server Shutdown:", err)
	}

	log.Println("Server exiting")
}

func Run(cfg *config.Config, version string) {
	log.Printf("Starting Tutoria v%s", version)

	store, err := database.Open(cfg.Database.DataDir)
	if err != nil {
		log.Fatalf("Failed to open data directory %s: %v", cfg.Database.DataDir, err)
	}
	defer func() {
		if err := store.Close(); err != nil {
			log.Printf("Error closing store: %v", err)
		}
	}()

	// A schema failure must not take the API down; the server keeps
	// answering reads with empty payloads until the store is rebuilt.
	if err := database.EnsureSchema(store); err != nil {
		log.Printf("WARNING: Failed to initialize schema, serving in degraded mode: %v", err)
		store.MarkUnavailable()
	}

	tutorialStore := tutorials.NewRepository(store)
	collectionStore := collections.NewRepository(store)
	trashStore := trash.NewRepository(store)
	sharedFileStore := sharedfiles.NewRepository(store)

	generator := ai.NewClient(cfg.AI.BaseURL, cfg.AI.APIKey, cfg.AI.Model)
	if generator == nil {
		log.Printf("WARNING: AI API key is not set. Tutorial generation endpoint will be disabled. Set 'AI_API_KEY' environment variable to enable.")
	}

	// Periodic trash purge
	var purgeCron *cron.Cron
	if cfg.TrashPurge.Enabled {
		retention := cfg.TrashPurge.Retention
		if retention <= 0 {
			log.Fatalf("Invalid trash retention %v", retention)
		}

		purgeCron = cron.New()
		_, err = purgeCron.AddFunc(cfg.TrashPurge.Schedule, func() {
			dropped, err := trashStore.PurgeOlderThan(retention)
			if err != nil {
				log.Printf("Trash purge failed: %v", err)
				return
			}
			if dropped > 0 {
				log.Printf("Trash purge removed %d item(s) older than %s", dropped, retention)
			}
		})
		if err != nil {
			log.Fatalf("Invalid trash purge schedule %q: %v", cfg.TrashPurge.Schedule, err)
		}
		purgeCron.Start()
		log.Printf("Trash purge scheduled (%s, retention %v)", cfg.TrashPurge.Schedule, cfg.TrashPurge.Retention)
	}

	routerCfg := http_controllers.RouterConfig{
		Tutorials:   tutorialStore,
		Collections: collectionStore,
		Trash:       trashStore,
		SharedFiles: sharedFileStore,
		Health:      store,
		PageSize:    cfg.Database.PageSize,
		Version:     version,
	}
	if generator != nil {
		routerCfg.Generator = generator
	}

	router := http_controllers.NewRouter(routerCfg)

	onShutdown := func(ctx context.Context) {
		if purgeCron != nil {
			stopCtx := purgeCron.Stop()
			select {
			case <-stopCtx.Done():
			case <-ctx.Done():
			}
		}
	}

	Serve(router, cfg, onShutdown)
}
