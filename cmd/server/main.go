package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"runtime/debug"
	"syscall"
	"time"

	"github.com/common-nighthawk/go-figure"
	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog/log"

	adminredis "github.com/bloglane/admin-auth-server/admins/redisrepo"
	adminfake "github.com/bloglane/admin-auth-server/admins/repofake"
	"github.com/bloglane/admin-auth-server/auth"
	"github.com/bloglane/admin-auth-server/internal/config"
	"github.com/bloglane/admin-auth-server/server"
	sessionredis "github.com/bloglane/admin-auth-server/sessions/redisrepo"
	sessionfake "github.com/bloglane/admin-auth-server/sessions/repofake"
	"github.com/bloglane/admin-auth-server/token"
)

func main() {
	if err := run(); err != nil {
		log.Fatal().Err(err).Msg("server exited")
	}
	log.Info().Msg("server stopped")
}

func run() (returnError error) {
	defer func() {
		if r := recover(); r != nil {
			log.Error().Interface("panic", r).Msg("recovered from panic")
			debug.PrintStack()
			returnError = errors.New("panic recovered")
		}
	}()

	c := config.New()
	displayAppname(c.GetAppName())

	if c.GetJWTSecret() == "" || c.GetRefreshSecret() == "" {
		return errors.New("JWT_SECRET and REFRESH_SECRET must be set")
	}

	repos, err := buildRepos(c)
	if err != nil {
		return fmt.Errorf("buildRepos: %w", err)
	}

	tokens := token.NewManager(
		token.NewHMACSigner(c.GetJWTSecret()),
		token.NewHMACSigner(c.GetRefreshSecret()),
	)

	srv, err := server.New(c, repos, tokens)
	if err != nil {
		return fmt.Errorf("server.New: %w", err)
	}

	httpServer := &http.Server{Addr: c.GetPort(), Handler: srv}
	go listenAndServe(httpServer)
	waitForStopSignal()
	return shutdown(httpServer)
}

// buildRepos selects the store backends: Redis when REDIS_ADDR is set,
// in-memory otherwise. An unreachable Redis at boot is fatal rather than
// a degraded start.
func buildRepos(c config.Config) (auth.Repos, error) {
	addr := c.GetRedisAddr()
	if addr == "" {
		log.Warn().Msg("REDIS_ADDR not set, using in-memory stores")
		return auth.Repos{
			Admins:   adminfake.NewFakeAdminRepo(),
			Sessions: sessionfake.NewFakeSessionRepo(),
		}, nil
	}

	client := redis.NewClient(&redis.Options{
		Addr:     addr,
		Password: c.GetRedisPassword(),
	})

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := client.Ping(ctx).Err(); err != nil {
		return auth.Repos{}, fmt.Errorf("redis ping %s: %w", addr, err)
	}

	log.Info().Str("addr", addr).Msg("using Redis stores")
	return auth.Repos{
		Admins:   adminredis.New(client),
		Sessions: sessionredis.New(client, c.GetMaxSessionAge()),
	}, nil
}

func listenAndServe(server *http.Server) {
	log.Info().Str("addr", server.Addr).Msg("server listening")
	if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
		log.Fatal().Err(err).Msg("server.ListenAndServe")
	}
}

func waitForStopSignal() {
	stop := make(chan os.Signal, 1)
	signal.Notify(stop, os.Interrupt, syscall.SIGTERM)
	<-stop
}

func shutdown(server *http.Server) error {
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := server.Shutdown(ctx); err != nil {
		return fmt.Errorf("server.Shutdown: %w", err)
	}
	return nil
}

func displayAppname(appname string) {
	myFigure := figure.NewFigure(appname, "cybermedium", true)
	myFigure.Print()
	fmt.Println()
}
