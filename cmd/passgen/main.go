// passgen generates PINs and random passwords, interactively in the terminal
// or over a small HTTP API.
package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"
	"golang.org/x/term"

	"github.com/vaultpass/passgen/internal/clipboard"
	"github.com/vaultpass/passgen/internal/config"
	"github.com/vaultpass/passgen/internal/logging"
	"github.com/vaultpass/passgen/internal/model"
	"github.com/vaultpass/passgen/internal/password"
	"github.com/vaultpass/passgen/internal/server"
	"github.com/vaultpass/passgen/internal/service"
	"github.com/vaultpass/passgen/internal/token"
	"github.com/vaultpass/passgen/internal/tui"
	"github.com/vaultpass/passgen/internal/version"
)

const (
	exitSuccess = 0
	exitFailure = 1
	exitUsage   = 2
)

const usage = `Usage:
  passgen [-config path] [command] [options]

Commands:
  tui       Interactive generator (default)
  print     Print passwords without the interactive screen
  serve     Serve the HTTP API
  token     Issue an API bearer token (requires JWT_SECRET)
  version   Show version information

Run "passgen <command> -h" for command options.
`

func main() {
	os.Exit(run(os.Args[1:], os.Stdout, os.Stderr))
}

func run(args []string, stdout, stderr io.Writer) int {
	fs := flag.NewFlagSet("passgen", flag.ContinueOnError)
	fs.SetOutput(stderr)
	configPath := fs.String("config", config.DefaultPath(), "Path to the YAML configuration file")
	fs.Usage = func() {
		fmt.Fprint(stderr, usage)
		fmt.Fprintln(stderr, "\nGlobal options:")
		fs.PrintDefaults()
	}
	if err := fs.Parse(args); err != nil {
		return exitUsage
	}

	envErr := godotenv.Load()

	cfg, err := config.Load(*configPath)
	if err != nil {
		fmt.Fprintf(stderr, "passgen: %v\n", err)
		return exitFailure
	}

	cmd, rest := "tui", fs.Args()
	if len(rest) > 0 {
		cmd, rest = rest[0], rest[1:]
	}

	switch cmd {
	case "tui":
		return runTUI(cfg, envErr, stdout, stderr)
	case "print":
		return runPrint(cfg, rest, stdout, stderr)
	case "serve":
		return runServe(cfg, envErr, rest, stdout, stderr)
	case "token":
		return runToken(cfg, rest, stdout, stderr)
	case "version":
		fmt.Fprintf(stdout, "passgen %s (commit %s, built %s)\n", version.Version, version.Commit, version.Date)
		return exitSuccess
	default:
		fmt.Fprintf(stderr, "passgen: unknown command %q\n\n", cmd)
		fs.Usage()
		return exitUsage
	}
}

func runTUI(cfg config.Config, envErr error, stdout, stderr io.Writer) int {
	if terminalWriter(stdout) == nil {
		// Not a terminal: behave like `passgen print`.
		return runPrint(cfg, nil, stdout, stderr)
	}

	logger, closeLog, err := tuiLogger(cfg)
	if err != nil {
		fmt.Fprintf(stderr, "passgen: %v\n", err)
		return exitFailure
	}
	defer closeLog()

	if envErr != nil {
		logger.Debug("no .env file found, using environment variables")
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	m := tui.New(tui.Options{
		Categories: password.NewCategories(cfg.Numbers, cfg.Symbols),
		Length:     cfg.Length,
		Rand:       password.NewSource(),
		Clipboard:  clipboard.New(terminalWriter(stderr), cfg.ClipboardTmux),
		Logger:     logger,
	})

	logger.Info("tui starting", "version", version.Version, "length", cfg.Length)
	if err := tui.Run(ctx, m); err != nil {
		logger.Error("tui failed", "error", err)
		fmt.Fprintf(stderr, "passgen: %v\n", err)
		return exitFailure
	}
	return exitSuccess
}

// terminalWriter returns w when it is a terminal and nil otherwise, so escape
// sequences never end up in a redirected file.
func terminalWriter(w io.Writer) io.Writer {
	f, ok := w.(*os.File)
	if !ok || !term.IsTerminal(int(f.Fd())) {
		return nil
	}
	return f
}

// tuiLogger logs to the configured file; the terminal belongs to the UI.
func tuiLogger(cfg config.Config) (*slog.Logger, func(), error) {
	if cfg.LogFile == "" {
		return logging.Discard(), func() {}, nil
	}

	level, err := logging.ParseLevel(cfg.LogLevel)
	if err != nil {
		return nil, nil, err
	}
	f, err := logging.OpenFile(cfg.LogFile)
	if err != nil {
		return nil, nil, err
	}
	return logging.New(f, level), func() { f.Close() }, nil
}

func runPrint(cfg config.Config, args []string, stdout, stderr io.Writer) int {
	fs := flag.NewFlagSet("print", flag.ContinueOnError)
	fs.SetOutput(stderr)
	category := fs.String("category", "random", "Password category: pin or random")
	length := fs.Int("length", 0, "Password length (default: configured length clamped to the category)")
	numbers := fs.Bool("numbers", cfg.Numbers, "Include digits (random only)")
	symbols := fs.Bool("symbols", cfg.Symbols, "Include symbols (random only)")
	count := fs.Int("count", 1, "Number of passwords to print")
	if err := fs.Parse(args); err != nil {
		return exitUsage
	}

	svc := service.NewGeneratorService(service.Defaults{
		Length:  cfg.Length,
		Numbers: cfg.Numbers,
		Symbols: cfg.Symbols,
	})
	req := model.GenerateRequest{
		Category: *category,
		Numbers:  numbers,
		Symbols:  symbols,
	}
	fs.Visit(func(f *flag.Flag) {
		if f.Name == "length" {
			req.Length = length
		}
	})

	for i := 0; i < *count; i++ {
		resp, err := svc.Generate(req)
		if err != nil {
			fmt.Fprintf(stderr, "passgen: %v\n", err)
			return exitFailure
		}
		fmt.Fprintln(stdout, resp.Password)
	}
	return exitSuccess
}

func runServe(cfg config.Config, envErr error, args []string, stdout, stderr io.Writer) int {
	fs := flag.NewFlagSet("serve", flag.ContinueOnError)
	fs.SetOutput(stderr)
	port := fs.String("port", cfg.Port, "Port to listen on")
	if err := fs.Parse(args); err != nil {
		return exitUsage
	}

	level, err := logging.ParseLevel(cfg.LogLevel)
	if err != nil {
		fmt.Fprintf(stderr, "passgen: %v\n", err)
		return exitFailure
	}
	logger := logging.New(stdout, level)

	if envErr != nil {
		logger.Warn("no .env file found, using environment variables")
	}
	if !cfg.AuthEnabled() {
		logger.Warn("JWT_SECRET not set, API is open to anyone who can reach it")
	}

	svc := service.NewGeneratorService(service.Defaults{
		Length:  cfg.Length,
		Numbers: cfg.Numbers,
		Symbols: cfg.Symbols,
	})

	srv := &http.Server{
		Addr:              ":" + *port,
		Handler:           server.NewRouter(cfg, logger, svc),
		ReadHeaderTimeout: 5 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		logger.Info("server starting", "port", *port, "env", cfg.Env, "auth", cfg.AuthEnabled())
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
		close(errCh)
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	defer signal.Stop(quit)

	select {
	case err := <-errCh:
		if err != nil {
			logger.Error("server error", "error", err)
			return exitFailure
		}
		return exitSuccess
	case <-quit:
	}

	logger.Info("shutting down server")
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		logger.Error("server forced shutdown", "error", err)
		return exitFailure
	}

	logger.Info("server stopped")
	return exitSuccess
}

func runToken(cfg config.Config, args []string, stdout, stderr io.Writer) int {
	fs := flag.NewFlagSet("token", flag.ContinueOnError)
	fs.SetOutput(stderr)
	client := fs.String("client", "", "Name of the API client the token is issued to")
	expiry := fs.Duration("expiry", cfg.JWTExpiry, "Token lifetime")
	if err := fs.Parse(args); err != nil {
		return exitUsage
	}

	if !cfg.AuthEnabled() {
		fmt.Fprintln(stderr, "passgen: JWT_SECRET must be set to issue tokens")
		return exitFailure
	}

	tok, err := token.Issue(*client, cfg.JWTSecret, *expiry)
	if err != nil {
		fmt.Fprintf(stderr, "passgen: %v\n", err)
		return exitFailure
	}

	fmt.Fprintln(stdout, tok)
	return exitSuccess
}
