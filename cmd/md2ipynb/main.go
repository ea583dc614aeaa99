package main

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"strings"

	"github.com/alecthomas/kong"
	"github.com/joho/godotenv"

	mdnotebook "github.com/riverfjs/mdnotebook-go"
)

var version = "dev"

// CLI is the md2ipynb command line.
type CLI struct {
	Markdown string           `arg:"" help:"Path to the input Markdown file (.md)"`
	Output   string           `short:"o" help:"Notebook path (defaults to the input path with an .ipynb extension)"`
	Config   string           `short:"c" help:"YAML configuration file"`
	Kernel   string           `help:"Kernel name written to metadata.kernelspec"`
	Title    string           `help:"Title written to metadata.title"`
	Verbose  bool             `short:"v" help:"Enable verbose logging"`
	Version  kong.VersionFlag `name:"version" help:"Show version and exit"`
}

// AfterApply runs after flag parsing; setup logging once.
func (c *CLI) AfterApply() error {
	// warnings reach the user through run; slog only carries failures unless -v
	level := slog.LevelError
	if c.Verbose {
		level = slog.LevelDebug
	}
	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level}))
	slog.SetDefault(logger)
	mdnotebook.SetLogger(logger)
	return nil
}

func main() {
	var cli CLI
	kong.Parse(&cli,
		kong.Name("md2ipynb"),
		kong.Description("Convert a Markdown file with Python code blocks to a Jupyter notebook."),
		kong.Vars{"version": version},
	)

	if err := run(context.Background(), &cli); err != nil {
		os.Exit(1)
	}
}

func run(ctx context.Context, cli *CLI) error {
	loadEnvFiles()

	cfg, err := resolveConfig(cli)
	if err != nil {
		fmt.Printf("Error: %v\n", err)
		return err
	}

	if !strings.HasSuffix(strings.ToLower(cli.Markdown), ".md") {
		fmt.Println("Warning: Input file does not have a .md extension.")
	}

	out := cli.Output
	if out == "" {
		out = mdnotebook.OutputPath(cli.Markdown)
	}
	fmt.Printf("Converting '%s' to '%s'...\n", cli.Markdown, out)

	_, res, err := mdnotebook.ConvertFileWithResult(ctx, cli.Markdown,
		mdnotebook.WithConfig(cfg),
		mdnotebook.WithOutputPath(out),
	)
	if err != nil {
		switch {
		case errors.Is(err, mdnotebook.ErrSourceNotFound):
			fmt.Printf("Error: File not found at %s\n", cli.Markdown)
		case errors.Is(err, mdnotebook.ErrRead):
			fmt.Printf("Error reading file %s: %v\n", cli.Markdown, err)
		case errors.Is(err, mdnotebook.ErrWrite):
			fmt.Printf("Error writing notebook file %s: %v\n", out, err)
		default:
			fmt.Printf("Error: %v\n", err)
		}
		return err
	}

	for _, w := range res.Warnings {
		fmt.Printf("Warning: %s\n", w.Message)
	}
	fmt.Printf("Successfully saved notebook to '%s' (%d markdown, %d code cells)\n",
		out, res.Stats.MarkdownCells, res.Stats.CodeCells)
	return nil
}

// resolveConfig loads --config if given and applies flag overrides on a copy
// of the defaults.
func resolveConfig(cli *CLI) (*mdnotebook.Config, error) {
	var cfg *mdnotebook.Config
	if cli.Config != "" {
		loaded, err := mdnotebook.LoadConfig(cli.Config)
		if err != nil {
			return nil, err
		}
		cfg = loaded
	} else {
		copied := *mdnotebook.DefaultConfig()
		cfg = &copied
	}

	if cli.Kernel != "" {
		cfg.Kernel.Name = cli.Kernel
	}
	if cli.Title != "" {
		cfg.Title = cli.Title
	}
	return cfg, mdnotebook.ValidateConfig(cfg)
}

// loadEnvFiles loads .env and .env.local when present so ${VAR} references in
// the config file resolve.
func loadEnvFiles() {
	for _, name := range []string{".env", ".env.local"} {
		if _, err := os.Stat(name); err != nil {
			continue
		}
		if err := godotenv.Load(name); err != nil {
			slog.Warn("Failed to load env file", "file", name, "error", err)
			continue
		}
		slog.Debug("Loaded environment variables", "file", name)
	}
}
