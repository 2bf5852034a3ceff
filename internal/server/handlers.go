package server

import (
	"bytes"
	"context"
	"encoding/base64"
	"encoding/json"
	"fmt"
	"image"
	"image/png"

	"github.com/ironsheep/simdtag-go/internal/visualize"
)

// ToolCallParams represents the parameters for a tools/call MCP request.
type ToolCallParams struct {
	// Name is the tool to invoke (e.g., "pipeline.load", "pipeline.run").
	Name string `json:"name"`

	// Arguments contains the tool-specific parameters as JSON.
	Arguments json.RawMessage `json:"arguments"`
}

// handleToolsCall processes a tools/call request and executes the specified tool.
//
// The response wraps the tool result in MCP's content format:
//
//	{
//	  "content": [{"type": "text", "text": "<JSON result>"}]
//	}
//
// Tool execution errors return a JSON-RPC error response with code -32000.
func (s *Server) handleToolsCall(req *MCPRequest) *MCPResponse {
	var params ToolCallParams
	if err := json.Unmarshal(req.Params, &params); err != nil {
		return s.errorResponse(req.ID, -32602, "Invalid params", err.Error())
	}

	result, err := s.executeTool(params.Name, params.Arguments)
	if err != nil {
		return s.errorResponse(req.ID, -32000, "Tool execution failed", err.Error())
	}

	return &MCPResponse{
		JSONRPC: "2.0",
		ID:      req.ID,
		Result: map[string]interface{}{
			"content": []map[string]interface{}{
				{
					"type": "text",
					"text": mustMarshalJSON(result),
				},
			},
		},
	}
}

// executeTool dispatches tool execution to the appropriate handler function.
func (s *Server) executeTool(name string, args json.RawMessage) (interface{}, error) {
	switch name {
	case "pipeline.load":
		return s.handlePipelineLoad(args)
	case "pipeline.run":
		return s.handlePipelineRun(args)
	case "pipeline.debug_image":
		return s.handlePipelineDebugImage(args)
	default:
		return nil, fmt.Errorf("unknown tool: %s", name)
	}
}

// errorResponse creates a JSON-RPC error response with the given details.
func (s *Server) errorResponse(id interface{}, code int, message, data string) *MCPResponse {
	return &MCPResponse{
		JSONRPC: "2.0",
		ID:      id,
		Error: &MCPError{
			Code:    code,
			Message: message,
			Data:    data,
		},
	}
}

// mustMarshalJSON converts a value to pretty-printed JSON string.
// Panics are suppressed; on marshal failure, returns an empty string.
func mustMarshalJSON(v interface{}) string {
	b, _ := json.MarshalIndent(v, "", "  ")
	return string(b)
}

// === pipeline.load ===

type pipelineLoadArgs struct {
	Path string `json:"path"`
}

// pipelineLoadResult is pipeline.load's response: the cached image's
// dimensions.
type pipelineLoadResult struct {
	Width  int `json:"width"`
	Height int `json:"height"`
}

func (s *Server) handlePipelineLoad(args json.RawMessage) (interface{}, error) {
	var a pipelineLoadArgs
	if err := json.Unmarshal(args, &a); err != nil {
		return nil, err
	}
	gray, err := s.cache.Load(a.Path)
	if err != nil {
		return nil, err
	}
	return pipelineLoadResult{Width: gray.Width, Height: gray.Height}, nil
}

// === pipeline.run ===

type pipelineRunArgs struct {
	Path string `json:"path"`
}

// pipelineRunResult is pipeline.run's response: per-stage counts
// without the raw intermediate buffers.
type pipelineRunResult struct {
	LabelCount   int `json:"label_count"`
	ClusterCount int `json:"cluster_count"`
	QuadCount    int `json:"quad_count"`
}

func (s *Server) handlePipelineRun(args json.RawMessage) (interface{}, error) {
	var a pipelineRunArgs
	if err := json.Unmarshal(args, &a); err != nil {
		return nil, err
	}
	gray, ok := s.cache.Get(a.Path)
	if !ok {
		return nil, fmt.Errorf("server: %s was not loaded via pipeline.load", a.Path)
	}

	res, err := s.runner.Submit(context.Background(), gray)
	if err != nil {
		return nil, err
	}
	s.cache.StoreResult(a.Path, res)

	return pipelineRunResult{
		LabelCount:   len(res.Labeling.Counts) - 1,
		ClusterCount: len(res.Buckets),
		QuadCount:    len(res.Quads),
	}, nil
}

// === pipeline.debug_image ===

type pipelineDebugImageArgs struct {
	Path  string `json:"path"`
	Stage string `json:"stage"`
}

// pipelineDebugImageResult is pipeline.debug_image's response: a
// base64-encoded PNG (without a "data:" URI prefix; the MIME type is
// reported separately) for the requested stage.
type pipelineDebugImageResult struct {
	Width       int    `json:"width"`
	Height      int    `json:"height"`
	ImageBase64 string `json:"image_base64"`
	MimeType    string `json:"mime_type"`
}

func (s *Server) handlePipelineDebugImage(args json.RawMessage) (interface{}, error) {
	var a pipelineDebugImageArgs
	if err := json.Unmarshal(args, &a); err != nil {
		return nil, err
	}

	gray, ok := s.cache.Get(a.Path)
	if !ok {
		return nil, fmt.Errorf("server: %s was not loaded via pipeline.load", a.Path)
	}
	res, ok := s.cache.GetResult(a.Path)
	if !ok {
		return nil, fmt.Errorf("server: %s has no pipeline.run result yet", a.Path)
	}

	var img image.Image
	switch a.Stage {
	case "threshold":
		img = visualize.ThresholdOverlay(gray, res.White, res.Black)
	case "labels":
		img = visualize.LabelOverlay(gray, res.Labeling)
	case "clusters":
		img = visualize.ClusterOverlay(gray, res.Buckets)
	default:
		return nil, fmt.Errorf("server: unknown debug stage %q", a.Stage)
	}

	var buf bytes.Buffer
	if err := png.Encode(&buf, img); err != nil {
		return nil, fmt.Errorf("server: encoding debug image: %w", err)
	}
	return pipelineDebugImageResult{
		Width:       gray.Width,
		Height:      gray.Height,
		ImageBase64: base64.StdEncoding.EncodeToString(buf.Bytes()),
		MimeType:    "image/png",
	}, nil
}
