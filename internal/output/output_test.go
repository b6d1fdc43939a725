// Copyright (c) 2025 Steve Taranto <staranto@gmail.com>.
// SPDX-License-Identifier: Apache-2.0
// no-cloc

package output

import (
	"bytes"
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	yaml "gopkg.in/yaml.v2"
)

func TestInterfaceToString(t *testing.T) {
	tests := []struct {
		name     string
		value    interface{}
		emptyVal string
		want     string
	}{
		{
			name:  "string",
			value: "hello",
			want:  "hello",
		},
		{
			name:  "int",
			value: 42,
			want:  "42",
		},
		{
			name:  "int64",
			value: int64(36),
			want:  "36",
		},
		{
			name:  "float64",
			value: 42.5,
			want:  "42",
		},
		{
			name:  "bool true",
			value: true,
			want:  "true",
		},
		{
			name:  "bool false is zero value",
			value: false,
			want:  "",
		},
		{
			name:  "nil default",
			value: nil,
			want:  "",
		},
		{
			name:     "nil custom",
			value:    nil,
			emptyVal: "-",
			want:     "-",
		},
		{
			name:  "slice",
			value: []string{"a", "b"},
			want:  `["a","b"]`,
		},
		{
			name:  "map",
			value: map[string]int{"x": 1},
			want:  `{"x":1}`,
		},
		{
			name:     "zero value with custom empty",
			value:    0,
			emptyVal: "N/A",
			want:     "N/A",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var got string
			if tt.emptyVal != "" {
				got = InterfaceToString(tt.value, tt.emptyVal)
			} else {
				got = InterfaceToString(tt.value)
			}
			assert.Equal(t, tt.want, got)
		})
	}
}

var testCols = []Column{
	{Key: "name", Title: "Name"},
	{Key: "films", Title: "Films"},
}

var testRows = []map[string]interface{}{
	{"name": "Luke Skywalker", "films": 4},
	{"name": "Leia Organa", "films": 5},
}

func TestEmitter_Text(t *testing.T) {
	var buf bytes.Buffer
	e := &Emitter{Format: "text", Titles: true, W: &buf}

	e.Section("Characters", testCols, testRows)

	out := buf.String()
	assert.Contains(t, out, "Characters")
	assert.Contains(t, out, "Name")
	assert.Contains(t, out, "Luke Skywalker")
	assert.Contains(t, out, "Leia Organa")
}

func TestEmitter_TextSkipsEmptySets(t *testing.T) {
	var buf bytes.Buffer
	e := &Emitter{Format: "text", W: &buf}

	e.Section("Nothing", testCols, nil)

	// Just the section title, no table.
	assert.Equal(t, "Nothing\n", buf.String())
}

func TestEmitter_JSON(t *testing.T) {
	var buf bytes.Buffer
	e := &Emitter{Format: "json", W: &buf}

	e.Section("Characters", testCols, testRows)

	var doc map[string]interface{}
	require.NoError(t, json.Unmarshal(buf.Bytes(), &doc))
	assert.Equal(t, "Characters", doc["section"])
	assert.Len(t, doc["items"], 2)
}

func TestEmitter_YAML(t *testing.T) {
	var buf bytes.Buffer
	e := &Emitter{Format: "yaml", W: &buf}

	e.Section("Characters", testCols, testRows)

	var doc map[string]interface{}
	require.NoError(t, yaml.Unmarshal(buf.Bytes(), &doc))
	assert.Equal(t, "Characters", doc["section"])
}

func TestEmitter_LineSilentInStructuredFormats(t *testing.T) {
	for _, format := range []string{"json", "yaml"} {
		var buf bytes.Buffer
		e := &Emitter{Format: format, W: &buf}
		e.Line("The archive holds %d starships.", 36)
		assert.Empty(t, buf.String(), format)
	}

	var buf bytes.Buffer
	e := &Emitter{Format: "text", W: &buf}
	e.Line("The archive holds %d starships.", 36)
	assert.Equal(t, "The archive holds 36 starships.\n", buf.String())
}
