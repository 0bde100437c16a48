package mcp

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"

	"github.com/modelcontextprotocol/go-sdk/mcp"

	"github.com/custodia-labs/titanic-cli/internal/core/domain"
)

const (
	// uriScheme is the custom URI scheme for dashboard resources.
	uriScheme = "titanic://"
)

// registerResources registers all resource handlers with the MCP server.
func (s *Server) registerResources() {
	// Static resource for listing sections.
	s.server.AddResource(&mcp.Resource{
		URI:         uriScheme + "sections",
		Name:        "sections",
		Description: "Dashboard sections and the loaded dataset",
		MIMEType:    "application/json",
	}, s.handleSectionsResource)

	// Template for a rendered section.
	s.server.AddResourceTemplate(&mcp.ResourceTemplate{
		URITemplate: uriScheme + "sections/{slug}",
		Name:        "section",
		Description: "Plain-text rendering of one dashboard section",
		MIMEType:    "text/plain",
	}, s.handleSectionResource)
}

// sectionURI returns the resource URI for a section.
func sectionURI(section domain.Section) string {
	return uriScheme + "sections/" + section.Slug()
}

// handleSectionsResource returns the section list and dataset summary.
func (s *Server) handleSectionsResource(
	ctx context.Context,
	req *mcp.ReadResourceRequest,
) (*mcp.ReadResourceResult, error) {
	_, output, err := s.handleListSections(ctx, nil, ListSectionsInput{})
	if err != nil {
		return nil, err
	}

	data, err := json.MarshalIndent(output, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("marshalling sections: %w", err)
	}

	return &mcp.ReadResourceResult{
		Contents: []*mcp.ResourceContents{{
			URI:      req.Params.URI,
			MIMEType: "application/json",
			Text:     string(data),
		}},
	}, nil
}

// handleSectionResource renders one section as plain text.
func (s *Server) handleSectionResource(
	ctx context.Context,
	req *mcp.ReadResourceRequest,
) (*mcp.ReadResourceResult, error) {
	slug := extractSectionSlug(req.Params.URI)
	if slug == "" {
		return nil, mcp.ResourceNotFoundError(req.Params.URI)
	}

	section, err := domain.ParseSection(slug)
	if err != nil {
		return nil, mcp.ResourceNotFoundError(req.Params.URI)
	}

	result, err := s.ports.Dashboard.Render(ctx, section)
	if err != nil {
		return nil, fmt.Errorf("rendering %s: %w", section, err)
	}

	return &mcp.ReadResourceResult{
		Contents: []*mcp.ResourceContents{{
			URI:      req.Params.URI,
			MIMEType: "text/plain",
			Text:     s.renderer.Section(result, false),
		}},
	}, nil
}

// extractSectionSlug extracts the slug from a URI like titanic://sections/{slug}.
func extractSectionSlug(uri string) string {
	const prefix = uriScheme + "sections/"

	if !strings.HasPrefix(uri, prefix) {
		return ""
	}

	slug := strings.TrimPrefix(uri, prefix)
	if strings.Contains(slug, "/") {
		return ""
	}
	return slug
}
