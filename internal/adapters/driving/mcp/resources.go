package mcp

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/modelcontextprotocol/go-sdk/mcp"
)

const (
	// URIScheme is the custom URI scheme for Bindery resources.
	uriScheme = "bindery://"
)

// registerResources registers all resource handlers with the MCP server.
func (s *Server) registerResources() {
	// Static resource for listing supported formats.
	s.server.AddResource(&mcp.Resource{
		URI:         uriScheme + "formats",
		Name:        "formats",
		Description: "List of all supported export formats",
		MIMEType:    "application/json",
	}, s.handleFormatsResource)
}

// handleFormatsResource returns the catalogue of supported formats.
func (s *Server) handleFormatsResource(
	ctx context.Context,
	req *mcp.ReadResourceRequest,
) (*mcp.ReadResourceResult, error) {
	formats := s.ports.Export.Formats()

	// Build simplified format list.
	type formatInfo struct {
		ID          string `json:"id"`
		DisplayName string `json:"displayName"`
		Extension   string `json:"extension"`
		TextBearing bool   `json:"textBearing"`
	}

	infos := make([]formatInfo, len(formats))
	for i, f := range formats {
		infos[i] = formatInfo{
			ID:          string(f.Format),
			DisplayName: f.DisplayName,
			Extension:   f.Extension,
			TextBearing: f.TextBearing,
		}
	}

	data, err := json.MarshalIndent(infos, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("marshalling formats: %w", err)
	}

	return &mcp.ReadResourceResult{
		Contents: []*mcp.ResourceContents{{
			URI:      req.Params.URI,
			MIMEType: "application/json",
			Text:     string(data),
		}},
	}, nil
}
