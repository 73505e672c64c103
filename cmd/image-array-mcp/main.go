package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"path/filepath"

	"github.com/rs/zerolog"

	"github.com/ironsheep/image-array-mcp/internal/config"
	"github.com/ironsheep/image-array-mcp/internal/display"
	"github.com/ironsheep/image-array-mcp/internal/imaging"
	"github.com/ironsheep/image-array-mcp/internal/logging"
	"github.com/ironsheep/image-array-mcp/internal/server"
)

// Version information - set by ldflags during build
var (
	Version   = "dev"
	BuildTime = "unknown"
	GitCommit = "unknown"
)

func main() {
	if len(os.Args) > 1 {
		switch os.Args[1] {
		case "--version", "-v", "version":
			fmt.Printf("image-array-mcp %s\n", Version)
			fmt.Printf("  Build time: %s\n", BuildTime)
			fmt.Printf("  Git commit: %s\n", GitCommit)
			return
		case "--help", "-h", "help":
			printHelp()
			return
		}
	}

	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "configuration error: %v\n", err)
		os.Exit(2)
	}

	// Logs go to stderr; stdout is for MCP protocol or inline images
	logger := logging.NewConsole(os.Stderr, cfg.LogLevel)

	if len(os.Args) > 1 && os.Args[1] == "show" {
		if err := runShow(cfg, logger, os.Args[2:]); err != nil {
			logger.Error().Err(err).Msg("show failed")
			os.Exit(1)
		}
		return
	}

	logger.Debug().
		Str("version", Version).
		Str("built", BuildTime).
		Str("commit", GitCommit).
		Msg("Image array MCP server starting")

	srv := server.New(cfg, logger)
	if err := srv.Run(); err != nil {
		logger.Fatal().Err(err).Msg("server error")
	}
}

// runShow loads, resizes and converts one image and displays it either
// inline in the terminal or in the OS image viewer.
func runShow(cfg *config.Config, logger zerolog.Logger, args []string) error {
	fs := flag.NewFlagSet("show", flag.ContinueOnError)
	scale := fs.Float64("scale", cfg.DefaultScale, "resize factor")
	gray := fs.Bool("gray", false, "convert to grayscale")
	viewer := fs.Bool("viewer", false, "open in the system image viewer instead of inline")
	if err := fs.Parse(args); err != nil {
		return err
	}
	if fs.NArg() != 1 {
		return fmt.Errorf("usage: image-array-mcp show [-scale f] [-gray] [-viewer] <image>")
	}

	var d imaging.Displayer = display.Inline{Renderer: &display.TerminalRenderer{Out: os.Stdout}}
	if *viewer {
		d = display.External{Viewer: display.NewSystemViewer(cfg.ViewerCommand...)}
	}

	path := fs.Arg(0)
	conv := imaging.NewConverter(logger, d)
	_, err := conv.LoadResizeConvert(context.Background(), filepath.Base(path), filepath.Dir(path), imaging.ConvertOptions{
		Scale:     *scale,
		Grayscale: *gray,
	})
	return err
}

func printHelp() {
	fmt.Println("image-array-mcp - MCP server for image/array conversion")
	fmt.Println()
	fmt.Println("Usage:")
	fmt.Println("  image-array-mcp                  Serve MCP over stdin/stdout")
	fmt.Println("  image-array-mcp show [flags] IMG Convert IMG and display it")
	fmt.Println()
	fmt.Println("Options:")
	fmt.Println("  --version, -v    Print version information")
	fmt.Println("  --help, -h       Print this help message")
	fmt.Println()
	fmt.Println("Show flags:")
	fmt.Println("  -scale f         Resize factor (default 0.25)")
	fmt.Println("  -gray            Convert to grayscale")
	fmt.Println("  -viewer          Open in the system image viewer")
	fmt.Println()
	fmt.Println("Environment variables:")
	fmt.Println("  IMAGE_ARRAY_LOG_LEVEL=debug        Log level (debug, info, warn, error)")
	fmt.Println("  IMAGE_ARRAY_DEFAULT_SCALE=0.25     Default resize factor")
	fmt.Println("  IMAGE_ARRAY_VIEWER=feh             System viewer command")
	fmt.Println()
	fmt.Println("Configure the server in your MCP client.")
}
