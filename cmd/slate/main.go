// Package main is the entry point for the slate interpreter CLI.
package main

import (
	"bufio"
	"fmt"
	"log"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/slatelang/slate/pkg/diag"
	"github.com/slatelang/slate/pkg/runtime"
	"github.com/slatelang/slate/pkg/store"
	"github.com/slatelang/slate/web"
)

// Set via -ldflags at build time.
var (
	version = "dev"
	commit  = "unknown"
	date    = "unknown"
)

var rootCmd = &cobra.Command{
	Use:   "slate [script]",
	Short: "The Slate scripting language",
	Long:  "Slate is a small scripting language. Run a script file, or start an interactive session with no arguments.",
	Args:  cobra.MaximumNArgs(1),
	RunE:  run,
}

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start the Slate playground server",
	RunE:  serve,
}

func init() {
	rootCmd.Version = version + " (commit=" + commit + ", built=" + date + ")"
	rootCmd.SetVersionTemplate("slate version {{.Version}}\n")
	rootCmd.SilenceUsage = true

	serveCmd.Flags().Int("port", 0, "HTTP server port (default 8791, env PORT)")
	serveCmd.Flags().String("host", "", "Bind address (default 0.0.0.0, env HOST)")
	rootCmd.AddCommand(serveCmd)
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func run(cmd *cobra.Command, args []string) error {
	if len(args) == 1 {
		return runFile(args[0])
	}
	return runPrompt()
}

// runFile executes a script. Exit code 65 signals static errors, 70 a
// runtime error, matching conventional sysexits.
func runFile(path string) error {
	source, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("cannot read %s: %w", path, err)
	}

	rep := diag.NewConsole(os.Stderr)
	eng := runtime.NewEngine(os.Stdout, rep)
	eng.Run(string(source))

	if rep.HadError() {
		os.Exit(65)
	}
	if rep.HadRuntimeError() {
		os.Exit(70)
	}
	return nil
}

// runPrompt starts the interactive loop. Variables persist across entries;
// error flags reset per line so one bad entry does not end the session.
func runPrompt() error {
	rep := diag.NewConsole(os.Stderr)
	eng := runtime.NewEngine(os.Stdout, rep)

	fmt.Printf("slate %s (interactive)\n", version)
	in := bufio.NewScanner(os.Stdin)
	for {
		fmt.Print("> ")
		if !in.Scan() {
			fmt.Println()
			return in.Err()
		}
		eng.Run(in.Text())
		eng.Reset()
	}
}

func serve(cmd *cobra.Command, args []string) error {
	port := envOrDefault("PORT", "8791")
	if v, _ := cmd.Flags().GetInt("port"); v != 0 {
		port = fmt.Sprintf("%d", v)
	}

	host := envOrDefault("HOST", "0.0.0.0")
	if v, _ := cmd.Flags().GetString("host"); v != "" {
		host = v
	}

	addr := fmt.Sprintf("%s:%s", host, port)

	s := store.New()
	app := web.NewApp()
	web.New(s, version).Register(app)

	// Graceful shutdown
	go func() {
		sigCh := make(chan os.Signal, 1)
		signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)
		<-sigCh
		log.Println("Shutting down playground...")
		if err := app.Shutdown(); err != nil {
			log.Printf("Error during shutdown: %v", err)
		}
	}()

	log.Printf("Slate playground listening on %s", addr)
	return app.Listen(addr)
}

func envOrDefault(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}
