// Package server implements the MCP (Model Context Protocol) server for the
// image/array conversion tools.
//
// This package provides a JSON-RPC 2.0 server that exposes the imaging
// package through the MCP protocol, so MCP-compatible clients can turn image
// files into numeric arrays and arrays back into images.
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
// Basic Image Information:
//   - image_load: Load image and get metadata
//   - image_dimensions: Get width and height
//
// Array Conversion:
//   - image_to_array: Image to (height, width, channels) array
//   - array_to_image: Array to PNG
//   - image_grayscale: BT.601 luma preview
//   - image_sample_pixel: Values and color at one pixel
//
// Resizing:
//   - image_resize: Fit within bounds or stretch to exact size
//
// Composite:
//   - image_load_resize_convert: Load, resize, convert, truncate and render
//
// Tools that produce an image attach it to the response as MCP image content
// in addition to the JSON text result, which is how the inline display port is
// served over MCP.
//
// # Error Handling
//
// Tool execution errors are returned as JSON-RPC error responses with:
//   - code: -32000 (tool execution failure) or standard JSON-RPC codes
//   - message: Human-readable error description
//   - data: Additional error details (typically the Go error string)
//
// Nothing is cached between calls; every tool reads its image from disk.
//
// # Usage
//
//	srv := server.New(cfg, logger)
//	if err := srv.Run(); err != nil {
//	    logger.Fatal().Err(err).Msg("server error")
//	}
package server
