// Package main is the entry point for the golox interpreter: it runs a
// script, starts a REPL, or serves the playground.
package main

import (
	"bufio"
	"fmt"
	"log"
	"os"
	"os/signal"
	"strings"
	"syscall"

	"github.com/gofiber/fiber/v2"
	"github.com/lemonberrylabs/golox/pkg/ast"
	"github.com/lemonberrylabs/golox/pkg/config"
	"github.com/lemonberrylabs/golox/pkg/lox"
	"github.com/lemonberrylabs/golox/pkg/parser"
	"github.com/lemonberrylabs/golox/pkg/runtime"
	"github.com/lemonberrylabs/golox/pkg/scanner"
	"github.com/lemonberrylabs/golox/web"
	"github.com/spf13/cobra"
)

// Set via -ldflags at build time.
var (
	version = "dev"
	commit  = "unknown"
	date    = "unknown"
)

// sysexits-style codes, matching the classic interpreter convention.
const (
	exitUsage        = 64 // EX_USAGE
	exitSyntaxError  = 65 // EX_DATAERR
	exitNoInput      = 66 // EX_NOINPUT
	exitRuntimeError = 70 // EX_SOFTWARE
)

var rootCmd = &cobra.Command{
	Use:   "golox [script]",
	Short: "Lox tree-walking interpreter",
	Long: "golox runs a Lox script, or starts an interactive prompt when no " +
		"script is given.",
	Args: cobra.ArbitraryArgs,
	RunE: run,
}

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Serve the Lox playground over HTTP",
	RunE:  serve,
}

func init() {
	rootCmd.Version = version + " (commit=" + commit + ", built=" + date + ")"
	rootCmd.SetVersionTemplate("golox version {{.Version}}\n")

	rootCmd.PersistentFlags().String("config", "", "Path to a golox.yaml config file")
	rootCmd.Flags().Bool("ast", false, "Print the parsed AST instead of executing")

	serveCmd.Flags().Int("port", 0, "HTTP server port (default 8787, env PORT)")
	serveCmd.Flags().String("host", "", "Bind address (default 0.0.0.0, env HOST)")

	rootCmd.AddCommand(serveCmd)
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func run(cmd *cobra.Command, args []string) error {
	if len(args) > 1 {
		fmt.Fprintln(os.Stderr, "Usage: golox [script]")
		os.Exit(exitUsage)
	}

	cfg, err := loadConfig(cmd)
	if err != nil {
		return err
	}

	printAST, _ := cmd.Flags().GetBool("ast")
	if printAST {
		if len(args) != 1 {
			fmt.Fprintln(os.Stderr, "Usage: golox --ast script")
			os.Exit(exitUsage)
		}
		printProgramAST(args[0])
		return nil
	}

	if len(args) == 1 {
		runFile(args[0], cfg)
		return nil
	}
	runPrompt(cfg)
	return nil
}

// runFile executes a script and exits with a status reflecting the error
// class, if any.
func runFile(path string, cfg config.Config) {
	source, err := os.ReadFile(path)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: could not read %s: %v\n", path, err)
		os.Exit(exitNoInput)
	}

	runner := lox.NewRunner(os.Stdout, os.Stderr, runtime.WithMaxCallDepth(cfg.MaxCallDepth))
	switch runner.Run(string(source)) {
	case lox.StatusSyntaxError:
		os.Exit(exitSyntaxError)
	case lox.StatusRuntimeError:
		os.Exit(exitRuntimeError)
	}
}

// runPrompt runs an interactive prompt. Globals persist across lines; error
// state resets per line so one mistake doesn't end the session.
func runPrompt(cfg config.Config) {
	runner := lox.NewRunner(os.Stdout, os.Stderr, runtime.WithMaxCallDepth(cfg.MaxCallDepth))
	in := bufio.NewScanner(os.Stdin)

	for {
		fmt.Print(cfg.Prompt)
		if !in.Scan() {
			fmt.Println()
			return
		}
		line := strings.TrimSpace(in.Text())
		if line == "" {
			continue
		}
		runner.Run(line)
	}
}

// printProgramAST parses a script and prints its prefix-notation AST.
// Syntax errors are reported the same way execution would report them.
func printProgramAST(path string) {
	source, err := os.ReadFile(path)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: could not read %s: %v\n", path, err)
		os.Exit(exitNoInput)
	}

	tokens, scanErrs := scanner.New(string(source)).Scan()
	statements, parseErrs := parser.New(tokens).Parse()
	if len(scanErrs) > 0 || len(parseErrs) > 0 {
		for _, e := range scanErrs {
			fmt.Fprintln(os.Stderr, e.Error())
		}
		for _, e := range parseErrs {
			fmt.Fprintln(os.Stderr, e.Error())
		}
		os.Exit(exitSyntaxError)
	}

	fmt.Println(ast.Printer{}.PrintProgram(statements))
}

func serve(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig(cmd)
	if err != nil {
		return err
	}

	if v, _ := cmd.Flags().GetInt("port"); v != 0 {
		cfg.Serve.Port = v
	}
	if v, _ := cmd.Flags().GetString("host"); v != "" {
		cfg.Serve.Host = v
	}

	addr := fmt.Sprintf("%s:%d", cfg.Serve.Host, cfg.Serve.Port)

	app := fiber.New()
	web.New(cfg.MaxCallDepth).Register(app)

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

	log.Printf("Lox playground listening on %s", addr)
	return app.Listen(addr)
}

func loadConfig(cmd *cobra.Command) (config.Config, error) {
	path, _ := cmd.Flags().GetString("config")
	if path == "" {
		path = os.Getenv("GOLOX_CONFIG")
	}
	return config.Load(path)
}
