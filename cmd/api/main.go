package main

import (
	"context"
	"log"
	"os"
	"os/signal"
	"syscall"

	"github.com/cockroachdb/errors"
	"github.com/urfave/cli/v2"
	"github.com/valyala/fasthttp"

	"recordstore-api/internal/config"
	"recordstore-api/internal/handlers"
	"recordstore-api/internal/middleware"
	"recordstore-api/internal/repository"
	"recordstore-api/internal/services"
	"recordstore-api/internal/utils"
)

func main() {
	config.LoadDotEnv(".env")

	app := &cli.App{
		Name:  "recordstore-api",
		Usage: "in-memory item and user CRUD service",
		Flags: config.Flags(),
		Action: func(c *cli.Context) error {
			return run(config.FromContext(c))
		},
	}

	if err := app.Run(os.Args); err != nil {
		log.Fatalf("Server failed: %v", err)
	}
}

func buildHandler(cfg config.Config) (fasthttp.RequestHandler, error) {
	authService, err := services.NewAuthService(services.AuthConfig{
		Username:      cfg.LoginUsername,
		Password:      cfg.LoginPassword,
		StaticToken:   cfg.LoginToken,
		Mode:          services.TokenMode(cfg.TokenMode),
		JWTSecret:     cfg.JWTSecret,
		JWTExpiration: cfg.JWTTTL,
	})
	if err != nil {
		return nil, err
	}

	itemService := services.NewItemService(repository.NewItemRepository())
	userService := services.NewUserService(repository.NewUserRepository())

	var guard handlers.Middleware
	if cfg.RequireAuth {
		guard = middleware.NewAuthMiddleware(authService).RequireToken
	}

	r := handlers.NewRouter(handlers.Handlers{
		Root:  handlers.NewRootHandler(cfg.WelcomeMessage, cfg.DefaultGreetName, itemService, userService),
		Items: handlers.NewItemHandler(itemService),
		Users: handlers.NewUserHandler(userService),
		Auth:  handlers.NewAuthHandler(authService),
	}, guard)

	return middleware.RequestLogger(r.Handler), nil
}

func run(cfg config.Config) error {
	utils.SetDebug(cfg.DebugLog)

	handler, err := buildHandler(cfg)
	if err != nil {
		return errors.Wrap(err, "building handlers")
	}

	server := &fasthttp.Server{
		Handler: handler,
		Name:    "recordstore-api",
	}

	serveErr := make(chan error, 1)
	go func() {
		utils.LogInfo("Server", "Server starting on %s", cfg.Addr)
		serveErr <- server.ListenAndServe(cfg.Addr)
	}()

	shutdownChannel := make(chan os.Signal, 1)
	signal.Notify(shutdownChannel, syscall.SIGINT, syscall.SIGTERM)

	select {
	case err := <-serveErr:
		return errors.Wrap(err, "listening")
	case <-shutdownChannel:
	}

	utils.LogInfo("Server", "Shutting down server...")
	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), cfg.ShutdownTimeout)
	defer shutdownCancel()
	if err := server.ShutdownWithContext(shutdownCtx); err != nil {
		utils.LogError("Server", "Server forced to shutdown", err)
		return err
	}
	utils.LogSuccess("Server", "Server stopped")
	return nil
}
