package server

// Tool represents an MCP tool definition
type Tool struct {
	Name        string                 `json:"name"`
	Description string                 `json:"description"`
	InputSchema map[string]interface{} `json:"inputSchema"`
}

// GetToolDefinitions returns all available tools
func GetToolDefinitions() []Tool {
	return []Tool{
		{
			Name:        "pipeline.load",
			Description: "Load an image file, convert it to 8-bit grayscale, and cache it under its path for subsequent pipeline.run / pipeline.debug_image calls. Returns its dimensions.",
			InputSchema: map[string]interface{}{
				"type": "object",
				"properties": map[string]interface{}{
					"path": map[string]interface{}{
						"type":        "string",
						"description": "Absolute path to the image file (PNG or JPEG)",
					},
				},
				"required": []string{"path"},
			},
		},
		{
			Name:        "pipeline.run",
			Description: "Run the full detection pipeline (adaptive threshold, dual BMRS labeling, gradient clusters, fit-quads) against a cached image and return per-stage statistics.",
			InputSchema: map[string]interface{}{
				"type": "object",
				"properties": map[string]interface{}{
					"path": map[string]interface{}{
						"type":        "string",
						"description": "Path previously passed to pipeline.load",
					},
				},
				"required": []string{"path"},
			},
		},
		{
			Name:        "pipeline.debug_image",
			Description: "Render one stage of the most recent pipeline.run against a cached image as a base64-encoded PNG, for visual inspection.",
			InputSchema: map[string]interface{}{
				"type": "object",
				"properties": map[string]interface{}{
					"path": map[string]interface{}{
						"type":        "string",
						"description": "Path previously passed to pipeline.load and pipeline.run",
					},
					"stage": map[string]interface{}{
						"type":        "string",
						"enum":        []string{"threshold", "labels", "clusters"},
						"description": "Which intermediate result to render",
					},
				},
				"required": []string{"path", "stage"},
			},
		},
	}
}

// handleToolsList returns the list of available tools
func (s *Server) handleToolsList(req *MCPRequest) *MCPResponse {
	return &MCPResponse{
		JSONRPC: "2.0",
		ID:      req.ID,
		Result: map[string]interface{}{
			"tools": GetToolDefinitions(),
		},
	}
}
