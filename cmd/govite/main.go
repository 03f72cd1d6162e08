// main.go - demo HTTP server rendering a page through the vite_* helpers
package main

import (
	"context"
	"log"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/spf13/pflag"

	"github.com/bryan1001/govite/internal"
	"github.com/bryan1001/govite/web"
)

const (
	defaultShutdownTimeout = 30 * time.Second
)

func main() {
	viteConfigFile := pflag.String("vite-config", "", "YAML file of named Vite configurations")
	port := pflag.String("port", "", "HTTP port override")
	dev := pflag.Bool("dev", false, "resolve assets against the Vite dev server")
	pflag.Parse()

	// Flags funnel through the same environment bindings the config
	// loader reads, so flag and env configuration cannot diverge.
	if *viteConfigFile != "" {
		os.Setenv("GOVITE_VITE_CONFIG_FILE", *viteConfigFile)
	}
	if *port != "" {
		os.Setenv("GOVITE_APP_PORT", *port)
	}
	if *dev {
		os.Setenv("GOVITE_VITE_DEV_MODE", "true")
	}

	// Initialize application with embedded assets
	app, err := internal.NewApp(internal.WithDistFS(web.Dist()))
	if err != nil {
		log.Fatalf("Failed to create app: %v", err)
	}

	// Start the application
	log.Println("Starting application...")
	if err := app.StartAsync(); err != nil {
		log.Fatalf("Failed to start application: %v", err)
	}
	log.Println("Application started successfully")

	// Wait for termination signal
	waitForShutdownSignal(app)
}

// waitForShutdownSignal sets up signal handling and performs graceful shutdown
func waitForShutdownSignal(app *internal.Application) {
	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, syscall.SIGINT, syscall.SIGTERM, syscall.SIGHUP)

	sig := <-sigChan
	log.Printf("Received signal: %v", sig)

	ctx, cancel := context.WithTimeout(context.Background(), defaultShutdownTimeout)
	defer cancel()

	log.Println("Initiating graceful shutdown...")
	if err := app.Shutdown(ctx); err != nil {
		log.Printf("Error during shutdown: %v", err)
		os.Exit(1)
	}
	log.Println("Server shutdown complete")
}
