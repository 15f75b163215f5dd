package main

import (
	"fmt"
	"io"
	"strings"

	"github.com/charmbracelet/lipgloss"
	lgtable "github.com/charmbracelet/lipgloss/table"
	"github.com/dustin/go-humanize"
	"github.com/gomlx/onnxschema"
	"github.com/gomlx/onnxschema/checker"
	"github.com/gomlx/onnxschema/schema"
	"github.com/gomlx/onnxschema/types"
)

var (
	headerRowStyle = lipgloss.NewStyle().Reverse(true).
			Padding(0, 2, 0, 2).Align(lipgloss.Center)

	oddRowStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("#FFF")).
			PaddingLeft(1).PaddingRight(1)
	evenRowStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("#999")).
			PaddingLeft(1).PaddingRight(1)

	titleStyle = lipgloss.NewStyle().Bold(true).Padding(1, 4, 1, 4)
	docStyle   = lipgloss.NewStyle().PaddingLeft(2)
)

func newPlainTable(headers ...string) *lgtable.Table {
	return lgtable.New().
		Headers(headers...).
		Border(lipgloss.NormalBorder()).
		BorderStyle(lipgloss.NewStyle().Foreground(lipgloss.Color("99"))).
		StyleFunc(func(row, col int) (s lipgloss.Style) {
			if row == lgtable.HeaderRow {
				return headerRowStyle
			}
			if row%2 == 0 {
				s = evenRowStyle
			} else {
				s = oddRowStyle
			}
			if col == 0 {
				s = s.Align(lipgloss.Right)
			} else {
				s = s.Align(lipgloss.Left)
			}
			return
		})
}

func listSchemas(w io.Writer, registry *onnxschema.Registry) {
	fmt.Fprintln(w, titleStyle.Render(fmt.Sprintf("Operator schemas (%d)", registry.Len())))
	table := newPlainTable("Domain", "Name", "Since", "Attributes", "Inputs", "Outputs")
	for _, s := range registry.Schemas() {
		domain := s.Domain()
		if domain == "" {
			domain = "ai.onnx"
		}
		var attrs []string
		for _, attr := range s.Attributes() {
			attrs = append(attrs, attr.Name)
		}
		table.Row(domain, s.Name(), fmt.Sprint(s.SinceVersion()), strings.Join(attrs, ", "),
			parametersSummary(s.Inputs()), parametersSummary(s.Outputs()))
	}
	fmt.Fprintln(w, table.Render())
}

func parametersSummary(params []schema.FormalParameter) string {
	parts := make([]string, len(params))
	for ii, param := range params {
		parts[ii] = param.Name + ": " + param.TypeStr
	}
	return strings.Join(parts, ", ")
}

func printSchema(w io.Writer, s *schema.OpSchema, versions []int) {
	fmt.Fprintln(w, titleStyle.Render(s.String()))
	if len(versions) > 1 {
		parts := make([]string, len(versions))
		for ii, v := range versions {
			parts[ii] = fmt.Sprint(v)
		}
		fmt.Fprintln(w, docStyle.Render("Versions: "+strings.Join(parts, ", ")))
	}
	fmt.Fprintln(w, docStyle.Render(strings.TrimSpace(s.Doc())))

	if attrs := s.Attributes(); len(attrs) > 0 {
		fmt.Fprintln(w, titleStyle.Render("Attributes"))
		table := newPlainTable("Name", "Type", "Required", "Default", "Description")
		for _, attr := range attrs {
			var defaultValue string
			if attr.HasDefault() {
				defaultValue = strings.TrimPrefix(attr.Default.String(), attr.Name+"=")
			}
			table.Row(attr.Name, attr.Type.String(), fmt.Sprint(attr.Required), defaultValue, attr.Description)
		}
		fmt.Fprintln(w, table.Render())
	}

	for _, group := range []struct {
		title  string
		params []schema.FormalParameter
	}{{"Inputs", s.Inputs()}, {"Outputs", s.Outputs()}} {
		fmt.Fprintln(w, titleStyle.Render(group.title))
		table := newPlainTable("#", "Name", "Type", "Description")
		for ii, param := range group.params {
			table.Row(fmt.Sprint(ii), param.Name, param.TypeStr, param.Description)
		}
		fmt.Fprintln(w, table.Render())
	}

	if constraints := s.TypeConstraints(); len(constraints) > 0 {
		fmt.Fprintln(w, titleStyle.Render("Type constraints"))
		table := newPlainTable("Name", "Allowed types", "Description")
		for _, c := range constraints {
			table.Row(c.Name, strings.Join(c.AllowedTypeStrings(), ", "), c.Description)
		}
		fmt.Fprintln(w, table.Render())
	}
}

func printValues(w io.Writer, g *checker.Graph, values map[string]types.Type) {
	title := g.Name
	if title == "" {
		title = "Graph"
	}
	fmt.Fprintln(w, titleStyle.Render(fmt.Sprintf("%s: %d nodes checked", title, len(g.Nodes))))
	table := newPlainTable("Value", "Producer", "Type", "Elements")
	addRow := func(name, producer string) {
		t := values[name]
		table.Row(name, producer, t.String(), elementsCount(t))
	}
	for _, input := range g.Inputs {
		addRow(input.Name, "<input>")
	}
	for ii := range g.Nodes {
		node := &g.Nodes[ii]
		for _, output := range node.Outputs {
			if output != "" {
				addRow(output, node.String())
			}
		}
	}
	fmt.Fprintln(w, table.Render())
}

// elementsCount returns the number of elements of a tensor with static shape, or "?".
func elementsCount(t types.Type) string {
	if !t.IsTensor() || !t.HasShape {
		return "?"
	}
	size := t.Shape().Size()
	if size < 0 {
		return "?"
	}
	return humanize.Comma(int64(size))
}
