package main

import (
	"context"
	"fmt"
	"log"
	"os"
	"os/signal"
	"sync"
	"syscall"
	"time"

	webctx "smartdo/internal/api/web/context"
	"smartdo/internal/api/web/router"
	"smartdo/internal/breakdown"
	"smartdo/internal/config"
	"smartdo/internal/identity"
	"smartdo/internal/kv"
	kvpostgres "smartdo/internal/kv/postgres"
	"smartdo/internal/logger"
	"smartdo/internal/model"
	"smartdo/internal/server"
	"smartdo/internal/service"
	"smartdo/internal/store"
	"smartdo/internal/token"
)

var (
	buildVersion = "N/A" // set by ldflags
	buildDate    = "N/A" // set by ldflags
	buildCommit  = "N/A" // set by ldflags
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM, syscall.SIGQUIT, os.Interrupt)
	defer stop()

	cfg, err := config.NewConfig()
	if err != nil {
		log.Fatalf("failed to parse config: %v", err)
	}
	logger := logger.New(cfg.LogLevel)

	var kvStore model.KV
	switch cfg.Storage.Driver {
	case "memory":
		kvStore = kv.NewMemory()
	case "postgres":
		db, err := kvpostgres.NewConnection(ctx, cfg.Storage.DSN)
		if err != nil {
			logger.Fatal("failed to initialize storage", "error", err)
		}
		defer db.Close()
		kvStore = kvpostgres.NewStore(db)
	case "file":
		fileStore, err := kv.NewFile(cfg.Storage.Dir)
		if err != nil {
			logger.Fatal("failed to initialize storage", "error", err)
		}
		kvStore = fileStore
	default:
		logger.Fatal("unknown storage driver", "driver", cfg.Storage.Driver)
	}

	sessionStore := store.NewSession(kvStore, logger)
	taskStore := store.NewTask(kvStore, logger)

	decoder := token.NewDecoder(cfg.Auth.ClientID)

	var provider model.IdentityProvider = identity.Noop{}
	if cfg.Auth.ClientID != "" && cfg.Auth.ClientSecret != "" {
		provider = identity.NewGoogle(identity.Config{
			ClientID:     cfg.Auth.ClientID,
			ClientSecret: cfg.Auth.ClientSecret,
			CallbackPort: cfg.Auth.CallbackPort,
			TokenFile:    cfg.Auth.TokenFile,
		}, logger)
	}

	breakdownClient, err := breakdown.NewClient(ctx, cfg.Gemini.APIKey, cfg.Gemini.Model, logger)
	if err != nil {
		logger.Fatal("failed to create breakdown client", "error", err)
	}

	authService := service.NewAuth(sessionStore, decoder, provider, logger)
	taskService := service.NewTaskList(taskStore, sessionStore, breakdownClient, logger)
	ctxMgr := webctx.NewManager()

	r := router.New(authService, taskService, sessionStore, ctxMgr, logger)
	httpServer := server.NewHTTPServer(r.Register(), fmt.Sprintf(":%s", cfg.HTTP.Port))

	var sl model.SecurityLayer

	if cfg.HTTP.EnableHTTPS {
		sl = server.NewTLSListener(cfg.HTTP.CertFileName, cfg.HTTP.PrivateKeyFileName)
	} else {
		sl = server.NewPlainListener()
	}

	var wg sync.WaitGroup
	wg.Add(1)
	go func(s model.Server) {
		defer wg.Done()
		logger.Info("Starting server on", "address", s.Address())
		err := s.Start(sl)
		if err != nil {
			logger.Error("failed to start server", "error", err)
		}
	}(httpServer)

	logAppVersion()

	<-ctx.Done()
	logger.Info("received interruption signal, shutting down")

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer shutdownCancel()

	if err := httpServer.Stop(shutdownCtx); err != nil {
		logger.Error("error during server shutdown", "error", err, "address", httpServer.Address())
	}

	wg.Wait()
	logger.Info("shutdown complete")
}

func logAppVersion() {
	tmpl := `
Build version: %s
Build date: %s
Build commit: %s
`

	fmt.Printf(tmpl, buildVersion, buildDate, buildCommit)
}
