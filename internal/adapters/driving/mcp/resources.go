package mcp

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/modelcontextprotocol/go-sdk/mcp"
)

const (
	uriScheme = "shellit://"

	historyResourceLimit = 100
)

// registerResources registers all resource handlers with the MCP server.
func (s *Server) registerResources() {
	s.server.AddResource(&mcp.Resource{
		URI:         uriScheme + "history",
		Name:        "history",
		Description: "Recent calculations, newest first",
		MIMEType:    "application/json",
	}, s.handleHistoryResource)

	s.server.AddResource(&mcp.Resource{
		URI:         uriScheme + "settings",
		Name:        "settings",
		Description: "Calculator precision, angle unit and echo settings",
		MIMEType:    "application/json",
	}, s.handleSettingsResource)
}

// handleHistoryResource returns recent evaluations as JSON.
func (s *Server) handleHistoryResource(
	ctx context.Context,
	req *mcp.ReadResourceRequest,
) (*mcp.ReadResourceResult, error) {
	evals, err := s.recent(ctx, historyResourceLimit)
	if err != nil {
		return nil, err
	}
	return jsonResource(req.Params.URI, toEvaluationOutputs(evals))
}

// handleSettingsResource returns the calculator's current settings.
func (s *Server) handleSettingsResource(
	_ context.Context,
	req *mcp.ReadResourceRequest,
) (*mcp.ReadResourceResult, error) {
	settings := s.ports.Calculator.Settings()

	type settingsInfo struct {
		Precision    int    `json:"precision"`
		AngleUnit    string `json:"angle_unit"`
		EchoInput    bool   `json:"echo_input"`
		HistoryLimit int    `json:"history_limit"`
	}

	return jsonResource(req.Params.URI, settingsInfo{
		Precision:    settings.Precision,
		AngleUnit:    settings.AngleUnit.String(),
		EchoInput:    settings.EchoInput,
		HistoryLimit: settings.HistoryLimit,
	})
}

func jsonResource(uri string, v any) (*mcp.ReadResourceResult, error) {
	data, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("marshalling %s: %w", uri, err)
	}

	return &mcp.ReadResourceResult{
		Contents: []*mcp.ResourceContents{{
			URI:      uri,
			MIMEType: "application/json",
			Text:     string(data),
		}},
	}, nil
}
