// Package config resolves service settings from flags, the environment and an optional .env file.
package config

import (
	"os"
	"time"

	"github.com/joho/godotenv"
	"github.com/urfave/cli/v2"

	"recordstore-api/internal/utils"
)

type Config struct {
	Addr             string
	WelcomeMessage   string
	DefaultGreetName string

	LoginUsername string
	LoginPassword string
	LoginToken    string
	TokenMode     string
	JWTSecret     string
	JWTTTL        time.Duration
	RequireAuth   bool

	DebugLog        bool
	ShutdownTimeout time.Duration
}

// LoadDotEnv loads path into the process environment without overriding variables that are already set.
// A missing file is not an error.
func LoadDotEnv(path string) {
	if err := godotenv.Load(path); err != nil {
		if os.IsNotExist(err) {
			utils.LogInfo("Config", "No %s file, using environment variables", path)
			return
		}
		utils.LogWarning("Config", "Could not read %s: %v", path, err)
	}
}

func Flags() []cli.Flag {
	return []cli.Flag{
		&cli.StringFlag{
			Name:    "addr",
			Value:   ":8080",
			Usage:   "listen address",
			EnvVars: []string{"ADDR"},
		},
		&cli.StringFlag{
			Name:    "welcome-message",
			Value:   "Welcome to Full CRUD API Example",
			Usage:   "message returned by GET /",
			EnvVars: []string{"WELCOME_MESSAGE"},
		},
		&cli.StringFlag{
			Name:    "default-greet-name",
			Value:   "Tanish",
			Usage:   "name used by POST /greet when none is given",
			EnvVars: []string{"DEFAULT_GREET_NAME"},
		},
		&cli.StringFlag{
			Name:    "login-username",
			Value:   "tanish",
			EnvVars: []string{"LOGIN_USERNAME"},
		},
		&cli.StringFlag{
			Name:    "login-password",
			Value:   "12345",
			EnvVars: []string{"LOGIN_PASSWORD"},
		},
		&cli.StringFlag{
			Name:    "login-token",
			Value:   "abc123xyz",
			Usage:   "token returned on login in static mode",
			EnvVars: []string{"LOGIN_TOKEN"},
		},
		&cli.StringFlag{
			Name:    "token-mode",
			Value:   "static",
			Usage:   "static or jwt",
			EnvVars: []string{"TOKEN_MODE"},
		},
		&cli.StringFlag{
			Name:    "jwt-secret",
			Usage:   "HS256 signing key, required in jwt mode",
			EnvVars: []string{"JWT_SECRET"},
		},
		&cli.DurationFlag{
			Name:    "jwt-ttl",
			Value:   24 * time.Hour,
			EnvVars: []string{"JWT_TTL"},
		},
		&cli.BoolFlag{
			Name:    "require-auth",
			Usage:   "require a bearer token on POST, PUT and DELETE",
			EnvVars: []string{"REQUIRE_AUTH"},
		},
		&cli.BoolFlag{
			Name:    "debug-log",
			Value:   true,
			EnvVars: []string{"DEBUG_LOG"},
		},
		&cli.DurationFlag{
			Name:    "shutdown-timeout",
			Value:   10 * time.Second,
			EnvVars: []string{"SHUTDOWN_TIMEOUT"},
		},
	}
}

func FromContext(c *cli.Context) Config {
	return Config{
		Addr:             c.String("addr"),
		WelcomeMessage:   c.String("welcome-message"),
		DefaultGreetName: c.String("default-greet-name"),
		LoginUsername:    c.String("login-username"),
		LoginPassword:    c.String("login-password"),
		LoginToken:       c.String("login-token"),
		TokenMode:        c.String("token-mode"),
		JWTSecret:        c.String("jwt-secret"),
		JWTTTL:           c.Duration("jwt-ttl"),
		RequireAuth:      c.Bool("require-auth"),
		DebugLog:         c.Bool("debug-log"),
		ShutdownTimeout:  c.Duration("shutdown-timeout"),
	}
}
