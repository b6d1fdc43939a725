// Copyright © 2025 Steve Taranto staranto@gmail.com
// SPDX-License-Identifier: MIT
// no-cloc

package command

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestOutputValidator(t *testing.T) {
	tests := []struct {
		name    string
		value   string
		wantErr bool
	}{
		{name: "text", value: "text"},
		{name: "json", value: "json"},
		{name: "yaml", value: "yaml"},
		{name: "raw rejected", value: "raw", wantErr: true},
		{name: "empty rejected", value: "", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := OutputValidator(tt.value)
			if tt.wantErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestJammedFlagValidator(t *testing.T) {
	assert.NoError(t, JammedFlagValidator("https://swapi.dev/api/"))
	assert.Error(t, JammedFlagValidator("--timeout"))
}

func TestFlagValidators_StopsOnFirstError(t *testing.T) {
	calls := 0
	failing := func(any) error { calls++; return assert.AnError }
	counting := func(any) error { calls++; return nil }

	err := FlagValidators("x", counting, failing, counting)
	assert.Error(t, err)
	assert.Equal(t, 2, calls)
}

func TestInitApp(t *testing.T) {
	app, err := InitApp(context.Background(), []string{"galaxydex", "show"})
	require.NoError(t, err)
	require.NotNil(t, app)

	names := make(map[string]bool)
	for _, cmd := range app.Commands {
		names[cmd.Name] = true
	}
	assert.True(t, names["show"])
	assert.True(t, names["serve"])
}
