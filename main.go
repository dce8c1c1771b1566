package main

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"

	"pressroom/app/audit"
	"pressroom/app/auth"
	"pressroom/app/config"
	"pressroom/app/repositories"
	"pressroom/app/routes"

	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"
)

const cliVersion = "1.0.0"

func main() {
	if len(os.Args) < 2 {
		printHelp()
		os.Exit(1)
	}

	cmd := strings.ToLower(os.Args[1])
	switch cmd {
	case "help":
		printHelp()
	case "version":
		fmt.Printf("pressroom version %s\n", cliVersion)
	case "serve":
		serve()
	case "init":
		initContent()
	case "hash":
		hashPassword(os.Args[2:])
	case "token":
		mintToken()
	default:
		fmt.Printf("Unknown command: %s\n\n", os.Args[1])
		printHelp()
		os.Exit(1)
	}
}

func printHelp() {
	helpText := `Usage: pressroom <command> [options]
Commands:
  help                 Display this help message.
  version              Show version information.
  serve                Run the content API server.
  init                 Provision the content directories and an empty jobs file.
  hash <password>      Print the bcrypt hash of a password for ADMIN_PASSWORD_HASH.
  token                Mint an admin bearer token using the configured secret.
`
	fmt.Println(helpText)
}

// serve runs the HTTP server until SIGINT/SIGTERM, then shuts down
// gracefully.
func serve() {
	logger, err := zap.NewProduction()
	if err != nil {
		fmt.Fprintf(os.Stderr, "failed to create logger: %v\n", err)
		os.Exit(1)
	}
	defer logger.Sync()

	cfg, err := config.Load()
	if err != nil {
		logger.Fatal("invalid configuration", zap.Error(err))
	}

	auditLog, err := audit.Open(cfg.AuditPath)
	if err != nil {
		logger.Fatal("failed to open audit log", zap.Error(err))
	}
	defer auditLog.Close()

	postRepo := repositories.NewFilePostRepository(cfg.PostsDir, logger)
	jobRepo := repositories.NewFileJobRepository(cfg.JobsFile, logger)
	gateway := auth.NewGateway(cfg.JWTSecret, cfg.TokenTTL)

	router := routes.Setup(cfg, logger, postRepo, jobRepo, gateway, auditLog)

	srv := &http.Server{
		Addr:         cfg.Addr,
		Handler:      router,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 15 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	go func() {
		logger.Info("listening", zap.String("addr", cfg.Addr))
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Fatal("server error", zap.Error(err))
		}
	}()

	stop := make(chan os.Signal, 1)
	signal.Notify(stop, syscall.SIGINT, syscall.SIGTERM)
	<-stop

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		logger.Error("shutdown error", zap.Error(err))
	}
}

// initContent provisions the content locations so a fresh checkout can
// serve immediately. Existing files are left alone.
func initContent() {
	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "invalid configuration: %v\n", err)
		os.Exit(1)
	}
	if err := os.MkdirAll(cfg.PostsDir, 0o755); err != nil {
		fmt.Fprintf(os.Stderr, "failed to create %s: %v\n", cfg.PostsDir, err)
		os.Exit(1)
	}
	if _, err := os.Stat(cfg.JobsFile); os.IsNotExist(err) {
		if err := os.WriteFile(cfg.JobsFile, []byte("[]\n"), 0o644); err != nil {
			fmt.Fprintf(os.Stderr, "failed to create %s: %v\n", cfg.JobsFile, err)
			os.Exit(1)
		}
	}
	fmt.Printf("initialized posts dir %s and jobs file %s\n", cfg.PostsDir, cfg.JobsFile)
}

// hashPassword prints a bcrypt hash suitable for ADMIN_PASSWORD_HASH.
func hashPassword(args []string) {
	if len(args) < 1 || args[0] == "" {
		fmt.Fprintln(os.Stderr, "Error: password required for hash command")
		os.Exit(1)
	}
	hash, err := bcrypt.GenerateFromPassword([]byte(args[0]), bcrypt.DefaultCost)
	if err != nil {
		fmt.Fprintf(os.Stderr, "failed to hash password: %v\n", err)
		os.Exit(1)
	}
	fmt.Println(string(hash))
}

// mintToken issues a bearer token for the configured admin user, for use
// with curl and scripts.
func mintToken() {
	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "invalid configuration: %v\n", err)
		os.Exit(1)
	}
	gateway := auth.NewGateway(cfg.JWTSecret, cfg.TokenTTL)
	token, expiresAt, err := gateway.Issue(cfg.AdminUsername)
	if err != nil {
		fmt.Fprintf(os.Stderr, "failed to issue token: %v\n", err)
		os.Exit(1)
	}
	fmt.Printf("%s\n(expires %s)\n", token, expiresAt.UTC().Format(time.RFC3339))
}
