// Dishboard — a terminal recipe browser.
//
// Usage:
//
//	dishboard [-verbose] [-quiet] [-api URL] [-demo] [-serve] [-recipes FILE]
package main

import (
	"flag"
	"fmt"
	"io"
	stdlog "log"
	"net"
	"net/http"
	"os"
	"path/filepath"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/joho/godotenv"

	"github.com/khmoussa/dishboard/internal/api"
	"github.com/khmoussa/dishboard/internal/display"
	"github.com/khmoussa/dishboard/internal/domain"
	"github.com/khmoussa/dishboard/internal/logger"
	"github.com/khmoussa/dishboard/internal/recipe"
	"github.com/khmoussa/dishboard/internal/server"
)

func main() {
	_ = godotenv.Load()

	verbose := flag.Bool("verbose", false, "enable verbose/debug logging")
	quiet := flag.Bool("quiet", false, "disable all logging")
	logFile := flag.String("log-file", ".dishboard/dishboard.log", "file to write logs to (use \"stderr\" to log to console)")
	apiBase := flag.String("api", "", "recipes endpoint URL (overrides "+api.EnvAPIBase+")")
	timeout := flag.Duration("timeout", 15*time.Second, "HTTP client timeout")
	demo := flag.Bool("demo", false, "serve the built-in catalog on loopback and browse it")
	serve := flag.Bool("serve", false, "run only the demo recipes server (no TUI)")
	addr := flag.String("addr", ":8080", "listen address for -serve")
	recipesFile := flag.String("recipes", "", "extra YAML recipe catalog for demo/serve modes")
	flag.Parse()

	// Configure logger.
	logLevel := logger.LevelNormal
	if *verbose {
		logLevel = logger.LevelVerbose
	}
	if *quiet {
		logLevel = logger.LevelOff
	}

	// Direct logs to a file by default so the TUI stays clean.
	var logOut io.Writer = os.Stderr
	if *logFile != "" && *logFile != "stderr" && !*serve {
		dir := filepath.Dir(*logFile)
		if dir != "" && dir != "." {
			os.MkdirAll(dir, 0o755)
		}
		f, err := os.OpenFile(*logFile, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
		if err != nil {
			fmt.Fprintf(os.Stderr, "warning: could not open log file %s: %v (falling back to stderr)\n", *logFile, err)
		} else {
			logOut = f
			defer f.Close()
		}
	}

	// Redirect Go's default log package to the same output so stray
	// library logging doesn't garble the terminal.
	stdlog.SetOutput(logOut)
	stdlog.SetFlags(stdlog.Ltime)

	log := logger.New(logLevel, logOut)

	if *serve {
		if err := runServer(*addr, *recipesFile, log); err != nil {
			fmt.Fprintf(os.Stderr, "error: %v\n", err)
			os.Exit(1)
		}
		return
	}

	// Resolve the recipe source: a loopback demo server, or the remote
	// endpoint from -api / env / default.
	var src domain.RecipeSource
	if *demo {
		base, err := startDemoServer(*recipesFile, log)
		if err != nil {
			fmt.Fprintf(os.Stderr, "error: %v\n", err)
			os.Exit(1)
		}
		log.Info("demo server on %s", base)
		src = api.New(base, log, api.WithTimeout(*timeout))
	} else {
		base := *apiBase
		if base == "" {
			base = os.Getenv(api.EnvAPIBase)
		}
		if base == "" {
			base = api.DefaultBase
		}
		log.Info("recipes endpoint: %s", base)
		src = api.New(base, log, api.WithTimeout(*timeout))
	}

	m := display.New(src, log)
	if _, err := tea.NewProgram(m, tea.WithAltScreen()).Run(); err != nil {
		log.Error("display: %v", err)
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}
}

// runServer runs the demo recipes server in the foreground.
func runServer(addr, recipesFile string, log *logger.Logger) error {
	src, err := newLocalSource(recipesFile, log)
	if err != nil {
		return err
	}

	fmt.Println(display.RenderBanner())
	fmt.Printf("serving recipes on %s (GET /api/recipes)\n", addr)
	return http.ListenAndServe(addr, server.New(src, log))
}

// startDemoServer starts the demo server on an ephemeral loopback port and
// returns the endpoint URL for the client.
func startDemoServer(recipesFile string, log *logger.Logger) (string, error) {
	src, err := newLocalSource(recipesFile, log)
	if err != nil {
		return "", err
	}

	ln, err := net.Listen("tcp", "127.0.0.1:0")
	if err != nil {
		return "", fmt.Errorf("demo listener: %w", err)
	}

	go func() {
		if err := http.Serve(ln, server.New(src, log)); err != nil {
			log.Error("demo server: %v", err)
		}
	}()

	return fmt.Sprintf("http://%s/api/recipes", ln.Addr()), nil
}

func newLocalSource(recipesFile string, log *logger.Logger) (*recipe.LocalSource, error) {
	src, err := recipe.NewLocalSource(log)
	if err != nil {
		return nil, err
	}
	if recipesFile != "" {
		if err := src.LoadFile(recipesFile); err != nil {
			return nil, err
		}
	}
	return src, nil
}
