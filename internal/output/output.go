// Copyright © 2025 Steve Taranto staranto@gmail.com
// SPDX-License-Identifier: MIT

package output

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"reflect"
	"strconv"

	"github.com/apex/log"
	"github.com/charmbracelet/lipgloss/v2"
	"github.com/charmbracelet/lipgloss/v2/table"
	yaml "gopkg.in/yaml.v2"

	"github.com/staranto/galaxydex/internal/config"
)

// Column maps a row key onto an output column. Title doubles as the column
// header when titles are on.
type Column struct {
	Key   string
	Title string
}

// Emitter renders result sets in the configured format. One Emitter is built
// per run from command flags and reused for every section.
type Emitter struct {
	Format string // text, json or yaml
	Color  bool
	Titles bool
	W      io.Writer
}

// Section emits one titled result set. text renders a lipgloss table; json
// and yaml marshal the rows under the section name.
func (e *Emitter) Section(title string, cols []Column, rows []map[string]interface{}) {
	w := e.W
	if w == nil {
		w = os.Stdout
	}

	switch e.Format {
	case "json":
		doc := map[string]interface{}{"section": title, "items": rows}
		jsonOutput, err := json.Marshal(doc)
		if err != nil {
			log.WithError(err).Error("failed to marshal section")
			return
		}
		fmt.Fprintln(w, string(jsonOutput))
	case "yaml":
		doc := map[string]interface{}{"section": title, "items": rows}
		yamlOutput, err := yaml.Marshal(doc)
		if err != nil {
			log.WithError(err).Error("failed to marshal section")
			return
		}
		_, _ = w.Write(yamlOutput)
	default:
		fmt.Fprintln(w, title)
		e.tableWriter(cols, rows, w)
	}
}

// Line emits a single free-form line in text mode and is silent otherwise,
// so json/yaml output stays machine-readable.
func (e *Emitter) Line(format string, a ...any) {
	if e.Format == "json" || e.Format == "yaml" {
		return
	}
	w := e.W
	if w == nil {
		w = os.Stdout
	}
	fmt.Fprintf(w, format+"\n", a...)
}

// tableWriter renders the result set in a tabular form honoring color,
// titles and padding options.
func (e *Emitter) tableWriter(cols []Column, rows []map[string]interface{}, w io.Writer) {
	if len(rows) == 0 {
		return
	}

	var (
		headerStyle  = lipgloss.NewStyle().Align(lipgloss.Left)
		cellStyle    = lipgloss.NewStyle().Padding(0, 0).Align(lipgloss.Left)
		evenRowStyle = cellStyle
		oddRowStyle  = cellStyle
	)

	if e.Color {
		headerColor, evenColor, oddColor := getColors("colors")

		headerStyle = headerStyle.Foreground(lipgloss.Color(headerColor))
		evenRowStyle = evenRowStyle.Foreground(lipgloss.Color(evenColor))
		oddRowStyle = oddRowStyle.Foreground(lipgloss.Color(oddColor))
	}

	var cells [][]string
	for _, row := range rows {
		cell := make([]string, 0, len(cols))
		for _, col := range cols {
			cell = append(cell, InterfaceToString(row[col.Key], "-"))
		}
		cells = append(cells, cell)
	}

	t := table.New().
		BorderBottom(false).
		BorderTop(false).
		BorderLeft(false).
		BorderRight(false).
		Border(lipgloss.HiddenBorder()).
		StyleFunc(func(row, col int) lipgloss.Style {
			pad, _ := config.GetInt("padding", 2)

			var style lipgloss.Style
			switch {
			case row == table.HeaderRow:
				style = headerStyle
			case row%2 == 0:
				style = evenRowStyle
			default:
				style = oddRowStyle
			}

			if col > 0 {
				style = style.PaddingLeft(pad)
			}

			return style
		}).
		Headers().
		Rows(cells...)

	if e.Titles {
		headers := make([]string, 0, len(cols))
		for _, col := range cols {
			headers = append(headers, col.Title)
		}

		// https://github.com/charmbracelet/lipgloss/issues/261
		t = t.Headers(headers...).BorderHeader(false)
	}
	fmt.Fprintln(w, t)
}

// getColors returns configured color values for table rendering.
func getColors(key string) (header string, even string, odd string) {
	header, _ = config.GetString(fmt.Sprintf("%s.title", key), "#f6be00")
	even, _ = config.GetString(fmt.Sprintf("%s.even", key), "#ffffff")
	odd, _ = config.GetString(fmt.Sprintf("%s.odd", key), "#00c8f0")
	return
}

// InterfaceToString converts supported primitive or composite values to a
// string. A custom empty value may be provided.
func InterfaceToString(value interface{}, emptyValue ...string) string {
	if len(emptyValue) == 0 {
		emptyValue = []string{""}
	}

	if value == nil || reflect.ValueOf(value).IsZero() {
		return emptyValue[0]
	}

	switch value := value.(type) {
	case string:
		return value
	case int:
		return strconv.Itoa(value)
	case int64:
		return strconv.FormatInt(value, 10)
	case float64:
		// Our current use cases have no use for an actual float, so we're just
		// going to return an integer.
		return fmt.Sprintf("%.0f", value)
	case bool:
		return strconv.FormatBool(value)
	default:
		jsonBytes, err := json.Marshal(value)
		if err != nil {
			return fmt.Sprintf("%v", value)
		}
		return string(jsonBytes)
	}
}
