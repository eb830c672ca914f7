package main

import (
	"context"
	"fmt"
	"log"
	"os"
	"os/signal"
	"strings"
	"syscall"

	"github.com/Kush-Singh-26/isoserve/internal/config"
	"github.com/Kush-Singh-26/isoserve/internal/server"
	"github.com/Kush-Singh-26/isoserve/internal/version"
)

func main() {
	// Bare invocation serves with defaults; a leading dash means serve
	// flags without the explicit subcommand.
	command := "serve"
	args := os.Args[1:]
	if len(args) > 0 && !strings.HasPrefix(args[0], "-") {
		command = args[0]
		args = args[1:]
	}

	switch command {
	case "serve":
		runServe(args)
	case "version":
		version.Print()
	case "help":
		printUsage()
	default:
		fmt.Printf("Unknown command: %s\n", command)
		printUsage()
		os.Exit(1)
	}
}

func runServe(args []string) {
	cfg, err := config.Load(args)
	if err != nil {
		log.Fatal(err)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	srv := server.New(cfg)
	if err := srv.Start(ctx); err != nil {
		log.Fatal(err)
	}

	fmt.Println("\n👋 Server stopped")
}

func printUsage() {
	fmt.Println("Usage: isoserve [command] [flags]")
	fmt.Println("\nCommands:")
	fmt.Println("  serve          Start the dev server (default)")
	fmt.Println("  version        Show version information")
	fmt.Println("  help           Show this help message")
	fmt.Println("\nFlags for serve:")
	fmt.Println("  -host          The host/IP to bind to (default: all interfaces)")
	fmt.Println("  -port          The port to listen on (default: 8080)")
	fmt.Println("  -root          Directory to serve (default: dist if present, else .)")
	fmt.Println("  -config        Path to the config file (default: isoserve.yaml)")
	fmt.Println("  -no-reload     Disable live reload")
}
