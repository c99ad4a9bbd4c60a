// Package mcp provides an MCP (Model Context Protocol) server adapter for shellit.
// It lets AI assistants evaluate expressions and read calculation history.
package mcp

import "errors"

// ErrMissingCalculator is returned when the calculator is not provided.
var ErrMissingCalculator = errors.New("mcp: calculator is required")

// ErrRateLimited is returned when a tool call could not get a rate limit token
// before its context ended.
var ErrRateLimited = errors.New("mcp: rate limited")
