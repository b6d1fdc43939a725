// Copyright © 2025 Steve Taranto staranto@gmail.com
// SPDX-License-Identifier: MIT

package showcase

import (
	"context"

	"github.com/staranto/galaxydex/internal/output"
)

// showStarships fetches page one of the starship registry, reports the
// archive-wide count and details the first few entries.
func (s *Showcase) showStarships(ctx context.Context) error {
	res, err := s.fetch(ctx, "starships/?page=1", "show starships")
	if err != nil {
		return err
	}

	results := res.Get("results").Array()

	limit := starshipDetailLimit
	if len(results) < limit {
		limit = len(results)
	}

	s.emit.Line("The archive holds %d starships.", res.Get("count").Int())

	cols := []output.Column{
		{Key: "name", Title: "Name"},
		{Key: "model", Title: "Model"},
		{Key: "manufacturer", Title: "Manufacturer"},
		{Key: "starship_class", Title: "Class"},
		{Key: "cost_in_credits", Title: "Cost"},
		{Key: "crew", Title: "Crew"},
		{Key: "passengers", Title: "Passengers"},
	}

	rows := make([]map[string]interface{}, 0, limit)
	for _, ship := range results[:limit] {
		rows = append(rows, map[string]interface{}{
			"name":            ship.Get("name").String(),
			"model":           ship.Get("model").String(),
			"manufacturer":    ship.Get("manufacturer").String(),
			"starship_class":  ship.Get("starship_class").String(),
			"cost_in_credits": ship.Get("cost_in_credits").String(),
			"crew":            ship.Get("crew").String(),
			"passengers":      ship.Get("passengers").String(),
		})
	}

	s.emit.Section("Starships", cols, rows)
	return nil
}
