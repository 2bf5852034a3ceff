package server

import (
	"bufio"
	"encoding/json"
	"fmt"
	"log"
	"os"
	"runtime"

	"github.com/ironsheep/simdtag-go/internal/pipeline"
)

// Server handles MCP protocol communication
type Server struct {
	cache  *ImageCache
	cfg    pipeline.Config
	runner *pipeline.Runner
}

// MCPRequest represents an incoming JSON-RPC request
type MCPRequest struct {
	JSONRPC string          `json:"jsonrpc"`
	ID      interface{}     `json:"id"`
	Method  string          `json:"method"`
	Params  json.RawMessage `json:"params,omitempty"`
}

// MCPResponse represents an outgoing JSON-RPC response
type MCPResponse struct {
	JSONRPC string      `json:"jsonrpc"`
	ID      interface{} `json:"id"`
	Result  interface{} `json:"result,omitempty"`
	Error   *MCPError   `json:"error,omitempty"`
}

// MCPError represents a JSON-RPC error
type MCPError struct {
	Code    int         `json:"code"`
	Message string      `json:"message"`
	Data    interface{} `json:"data,omitempty"`
}

// MCPNotification represents an outgoing notification (no ID)
type MCPNotification struct {
	JSONRPC string      `json:"jsonrpc"`
	Method  string      `json:"method"`
	Params  interface{} `json:"params,omitempty"`
}

// New creates a new MCP server instance using the default pipeline
// configuration, backed by a pipeline.Runner worker pool sized to the
// host's CPU count so pipeline.run requests don't pay per-call
// Pipeline setup cost.
func New() *Server {
	cfg, err := pipeline.ApplyEnvOverrides(pipeline.DefaultConfig())
	if err == nil {
		err = cfg.Validate()
	}
	if err != nil {
		log.Printf("ignoring invalid SIMDTAG_* override: %v", err)
		cfg = pipeline.DefaultConfig()
	}
	runner, err := pipeline.NewRunner(cfg, runtime.NumCPU())
	if err != nil {
		// cfg was already validated above (DefaultConfig or a
		// successfully-overridden config), so this only fires if
		// NewRunner's own validation is stricter than expected.
		log.Fatalf("server: building pipeline runner: %v", err)
	}
	return &Server{
		cache:  NewImageCache(),
		cfg:    cfg,
		runner: runner,
	}
}

// Close stops accepting new pipeline.run work and waits for any
// in-flight frame to finish.
func (s *Server) Close() {
	s.runner.Close()
}

// Run starts the MCP server, reading from stdin and writing to stdout
func (s *Server) Run() error {
	scanner := bufio.NewScanner(os.Stdin)
	// Increase buffer size for large requests
	buf := make([]byte, 0, 64*1024)
	scanner.Buffer(buf, 1024*1024)

	encoder := json.NewEncoder(os.Stdout)

	for scanner.Scan() {
		line := scanner.Bytes()
		if len(line) == 0 {
			continue
		}

		var req MCPRequest
		if err := json.Unmarshal(line, &req); err != nil {
			log.Printf("Failed to parse request: %v", err)
			continue
		}

		resp := s.handleRequest(&req)
		if resp != nil {
			if err := encoder.Encode(resp); err != nil {
				log.Printf("Failed to encode response: %v", err)
			}
		}
	}

	if err := scanner.Err(); err != nil {
		return fmt.Errorf("scanner error: %w", err)
	}

	return nil
}

// handleRequest routes requests to appropriate handlers
func (s *Server) handleRequest(req *MCPRequest) *MCPResponse {
	switch req.Method {
	case "initialize":
		return s.handleInitialize(req)
	case "notifications/initialized":
		// Client acknowledgment, no response needed
		return nil
	case "tools/list":
		return s.handleToolsList(req)
	case "tools/call":
		return s.handleToolsCall(req)
	case "ping":
		return &MCPResponse{
			JSONRPC: "2.0",
			ID:      req.ID,
			Result:  map[string]interface{}{},
		}
	default:
		return &MCPResponse{
			JSONRPC: "2.0",
			ID:      req.ID,
			Error: &MCPError{
				Code:    -32601,
				Message: fmt.Sprintf("Method not found: %s", req.Method),
			},
		}
	}
}

// handleInitialize responds to the initialize request
func (s *Server) handleInitialize(req *MCPRequest) *MCPResponse {
	return &MCPResponse{
		JSONRPC: "2.0",
		ID:      req.ID,
		Result: map[string]interface{}{
			"protocolVersion": "2024-11-05",
			"capabilities": map[string]interface{}{
				"tools": map[string]interface{}{},
			},
			"serverInfo": map[string]interface{}{
				"name":    "simdtag-mcp",
				"version": "0.1.0",
			},
		},
	}
}
