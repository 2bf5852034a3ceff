package main

import (
	"fmt"
	"log"
	"os"

	"github.com/ironsheep/simdtag-go/internal/server"
)

// Version information - set by ldflags during build
var (
	Version   = "dev"
	BuildTime = "unknown"
	GitCommit = "unknown"
)

func main() {
	// Handle --version and -v flags
	if len(os.Args) > 1 {
		switch os.Args[1] {
		case "--version", "-v", "version":
			fmt.Printf("simdtag-mcp %s\n", Version)
			fmt.Printf("  Build time: %s\n", BuildTime)
			fmt.Printf("  Git commit: %s\n", GitCommit)
			return
		case "--help", "-h", "help":
			fmt.Println("simdtag-mcp - MCP server for fiducial-tag pipeline introspection")
			fmt.Println()
			fmt.Println("Usage: simdtag-mcp [options]")
			fmt.Println()
			fmt.Println("Options:")
			fmt.Println("  --version, -v    Print version information")
			fmt.Println("  --help, -h       Print this help message")
			fmt.Println()
			fmt.Println("Environment variables:")
			fmt.Println("  SIMDTAG_LOG_LEVEL=debug       Enable debug logging")
			fmt.Println("  SIMDTAG_THRESHOLD_TILE_SIZE, SIMDTAG_THRESHOLD_MIN_DIFF,")
			fmt.Println("  SIMDTAG_MIN_CLUSTER_PIXELS, SIMDTAG_MAX_CLUSTER_MULTIPLIER")
			fmt.Println("    Override the default pipeline configuration")
			fmt.Println()
			fmt.Println("This server communicates via MCP protocol over stdin/stdout.")
			fmt.Println("Configure it in your MCP client (e.g., Claude Desktop).")
			return
		}
	}

	// Configure logging to stderr (stdout is for MCP protocol)
	log.SetOutput(os.Stderr)
	log.SetFlags(log.Ldate | log.Ltime | log.Lshortfile)

	logLevel := os.Getenv("SIMDTAG_LOG_LEVEL")
	if logLevel == "debug" {
		log.Printf("simdtag MCP server v%s (built %s, commit %s)", Version, BuildTime, GitCommit)
	}

	srv := server.New()
	defer srv.Close()
	if err := srv.Run(); err != nil {
		log.Fatalf("Server error: %v", err)
	}
}
