// Copyright © 2025 Steve Taranto staranto@gmail.com
// SPDX-License-Identifier: MIT

package showcase

import (
	"context"
	"fmt"

	"github.com/apex/log"

	"github.com/staranto/galaxydex/internal/output"
)

// showVehicle spotlights one vehicle per run, walking IDs 1 through
// maxVehicleID and then going quiet. The cursor is independent of the
// character cursor.
func (s *Showcase) showVehicle(ctx context.Context) error {
	if s.nextVehicle > maxVehicleID {
		log.Debug("vehicle spotlight retired")
		return nil
	}

	id := s.nextVehicle
	endpoint := fmt.Sprintf("vehicles/%d", id)
	res, err := s.fetch(ctx, endpoint, "show vehicle")
	if err != nil {
		return err
	}
	s.nextVehicle++

	cols := []output.Column{
		{Key: "name", Title: "Name"},
		{Key: "model", Title: "Model"},
		{Key: "vehicle_class", Title: "Class"},
		{Key: "manufacturer", Title: "Manufacturer"},
		{Key: "cost_in_credits", Title: "Cost"},
	}

	rows := []map[string]interface{}{{
		"name":            res.Get("name").String(),
		"model":           res.Get("model").String(),
		"vehicle_class":   res.Get("vehicle_class").String(),
		"manufacturer":    res.Get("manufacturer").String(),
		"cost_in_credits": res.Get("cost_in_credits").String(),
	}}

	s.emit.Section("Vehicle", cols, rows)
	return nil
}
