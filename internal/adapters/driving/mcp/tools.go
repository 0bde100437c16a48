package mcp

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"

	"github.com/modelcontextprotocol/go-sdk/mcp"

	"github.com/custodia-labs/titanic-cli/internal/core/domain"
)

// Output formats accepted by render_section.
const (
	FormatText = "text"
	FormatJSON = "json"
)

// ListSectionsInput is the input schema for the list_sections tool.
type ListSectionsInput struct{}

// ListSectionsOutput is the output schema for the list_sections tool.
type ListSectionsOutput struct {
	Sections []SectionOutput `json:"sections"`
	Dataset  DatasetOutput   `json:"dataset"`
}

// SectionOutput identifies one navigable section.
type SectionOutput struct {
	Label string `json:"label"`
	Slug  string `json:"slug"`
	URI   string `json:"uri"`
}

// DatasetOutput describes the loaded dataset.
type DatasetOutput struct {
	Location string `json:"location"`
	Format   string `json:"format"`
	Rows     int    `json:"rows"`
	Columns  int    `json:"columns"`
}

// RenderSectionInput is the input schema for the render_section tool.
type RenderSectionInput struct {
	Section string `json:"section" jsonschema:"section label (e.g. Survival Analysis) or slug (e.g. survival)"`
	Format  string `json:"format,omitempty" jsonschema:"text (default) for the rendered view, json for the computed result"`
	Code    bool   `json:"code,omitempty" jsonschema:"append the Go snippet that computes the section (text format only)"`
}

// RenderSectionOutput is the output schema for the render_section tool.
type RenderSectionOutput struct {
	Section string `json:"section"`
	Slug    string `json:"slug"`
	PassID  string `json:"pass_id"`
	Format  string `json:"format"`
	Content string `json:"content"`
}

// registerTools registers all tool handlers with the MCP server.
func (s *Server) registerTools() {
	mcp.AddTool(s.server, &mcp.Tool{
		Name:        "list_sections",
		Description: "List the Titanic dashboard sections and the loaded dataset",
	}, s.handleListSections)

	mcp.AddTool(s.server, &mcp.Tool{
		Name:        "render_section",
		Description: "Render one Titanic dashboard section over the loaded dataset",
	}, s.handleRenderSection)
}

// handleListSections handles the list_sections tool invocation.
func (s *Server) handleListSections(
	_ context.Context,
	_ *mcp.CallToolRequest,
	_ ListSectionsInput,
) (*mcp.CallToolResult, ListSectionsOutput, error) {
	sections := s.ports.Dashboard.Sections()
	info := s.ports.Dashboard.Dataset()

	output := ListSectionsOutput{
		Sections: make([]SectionOutput, len(sections)),
		Dataset: DatasetOutput{
			Location: info.Location,
			Format:   info.Format,
			Rows:     info.Rows,
			Columns:  info.Columns,
		},
	}
	for i, sec := range sections {
		output.Sections[i] = SectionOutput{
			Label: sec.String(),
			Slug:  sec.Slug(),
			URI:   sectionURI(sec),
		}
	}

	return nil, output, nil
}

// handleRenderSection handles the render_section tool invocation.
func (s *Server) handleRenderSection(
	ctx context.Context,
	_ *mcp.CallToolRequest,
	input RenderSectionInput,
) (*mcp.CallToolResult, RenderSectionOutput, error) {
	section, err := domain.ParseSection(input.Section)
	if err != nil {
		return nil, RenderSectionOutput{}, err
	}

	format := strings.ToLower(strings.TrimSpace(input.Format))
	if format == "" {
		format = FormatText
	}
	if format != FormatText && format != FormatJSON {
		return nil, RenderSectionOutput{}, fmt.Errorf("%w: format must be %q or %q", domain.ErrInvalidInput, FormatText, FormatJSON)
	}

	result, err := s.ports.Dashboard.Render(ctx, section)
	if err != nil {
		return nil, RenderSectionOutput{}, fmt.Errorf("rendering %s: %w", section, err)
	}

	output := RenderSectionOutput{
		Section: section.String(),
		Slug:    section.Slug(),
		PassID:  result.PassID,
		Format:  format,
	}

	if format == FormatJSON {
		data, err := json.MarshalIndent(result, "", "  ")
		if err != nil {
			return nil, RenderSectionOutput{}, fmt.Errorf("marshalling result: %w", err)
		}
		output.Content = string(data)
		return nil, output, nil
	}

	output.Content = s.renderer.Section(result, input.Code)
	return nil, output, nil
}
