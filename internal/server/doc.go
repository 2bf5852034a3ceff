// Package server implements the MCP (Model Context Protocol) server for
// fiducial-detection pipeline introspection.
//
// This package provides a JSON-RPC 2.0 server that exposes the
// threshold/labeling/cluster/quadfit pipeline through the MCP protocol,
// so an MCP-compatible client can load an image, run the pipeline
// against it, and render any intermediate stage for inspection.
//
// # Protocol
//
// The server communicates over stdio using JSON-RPC 2.0:
//   - Input: JSON-RPC requests on stdin (one per line)
//   - Output: JSON-RPC responses on stdout
//
// Supported MCP methods:
//   - initialize: Protocol handshake
//   - tools/list: Enumerate available tools
//   - tools/call: Execute a tool with arguments
//   - ping: Health check
//
// # Available Tools
//
//   - pipeline.load: Decode an image to grayscale and cache it by path
//   - pipeline.run: Run the full pipeline against a cached image and
//     return per-stage counts (labels, clusters, quads)
//   - pipeline.debug_image: Render the threshold, label or cluster stage
//     of the most recent pipeline.run as a base64 PNG
//
// # Image Caching
//
// The server maintains an in-memory cache, keyed by path, of decoded
// grayscale images and the most recent pipeline.Result computed for
// them. The cache persists for the lifetime of the server process.
//
// # Error Handling
//
// Tool execution errors are returned as JSON-RPC error responses with:
//   - code: -32000 (tool execution failure) or standard JSON-RPC codes
//   - message: Human-readable error description
//   - data: Additional error details (typically the Go error string)
//
// # Usage
//
//	srv := server.New()
//	if err := srv.Run(); err != nil {
//	    log.Fatal(err)
//	}
package server
