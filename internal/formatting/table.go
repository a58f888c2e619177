// Package formatting renders tool and resource catalogs for terminal output.
package formatting

import (
	"fmt"
	"strings"

	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/jedib0t/go-pretty/v6/text"

	"atoms-mcp/internal/api"
)

// maxDescriptionWidth caps the description column so tables stay readable in
// narrow terminals.
const maxDescriptionWidth = 70

// RenderToolTable renders the tool catalog as a table.
func RenderToolTable(tools []api.ToolMetadata) string {
	if len(tools) == 0 {
		return text.FgYellow.Sprint("No tools available") + "\n"
	}

	t := newTable()
	t.AppendHeader(table.Row{
		text.FgHiCyan.Sprint("TOOL"),
		text.FgHiCyan.Sprint("PARAMETERS"),
		text.FgHiCyan.Sprint("DESCRIPTION"),
	})
	for _, tool := range tools {
		t.AppendRow(table.Row{
			tool.Name,
			formatParameters(tool.Parameters),
			truncate(tool.Description, maxDescriptionWidth),
		})
	}
	return t.Render() + "\n"
}

// RenderResourceTable renders the resource catalog as a table.
func RenderResourceTable(resources []api.ResourceMetadata) string {
	if len(resources) == 0 {
		return text.FgYellow.Sprint("No resources available") + "\n"
	}

	t := newTable()
	t.AppendHeader(table.Row{
		text.FgHiCyan.Sprint("RESOURCE"),
		text.FgHiCyan.Sprint("URI"),
		text.FgHiCyan.Sprint("DESCRIPTION"),
	})
	for _, resource := range resources {
		t.AppendRow(table.Row{
			resource.Name,
			resource.URI,
			truncate(resource.Description, maxDescriptionWidth),
		})
	}
	return t.Render() + "\n"
}

func newTable() table.Writer {
	t := table.NewWriter()
	t.SetStyle(table.StyleRounded)
	return t
}

// formatParameters summarizes a tool's parameters, marking required ones
// with an asterisk.
func formatParameters(params []api.ParameterMetadata) string {
	if len(params) == 0 {
		return "-"
	}
	names := make([]string, 0, len(params))
	for _, param := range params {
		name := param.Name
		if param.Required {
			name += "*"
		}
		names = append(names, name)
	}
	return strings.Join(names, ", ")
}

func truncate(s string, max int) string {
	if len(s) <= max {
		return s
	}
	return fmt.Sprintf("%s...", s[:max-3])
}
