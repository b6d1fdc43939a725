// Copyright © 2025 Steve Taranto staranto@gmail.com
// SPDX-License-Identifier: MIT

package showcase

import (
	"context"
	"strconv"

	"github.com/dustin/go-humanize"
	"github.com/tidwall/gjson"

	"github.com/staranto/galaxydex/internal/output"
)

const (
	// largePopulation and largeDiameter are the thresholds a planet has to
	// clear on both axes to make the big-worlds list.
	largePopulation = 1_000_000_000
	largeDiameter   = 10_000
)

// showPlanets fetches page one of the planet registry and prints the worlds
// that are both heavily populated and physically large.
func (s *Showcase) showPlanets(ctx context.Context) error {
	res, err := s.fetch(ctx, "planets/?page=1", "show planets")
	if err != nil {
		return err
	}

	worlds := largeWorlds(res.Get("results").Array())

	cols := []output.Column{
		{Key: "name", Title: "Name"},
		{Key: "population", Title: "Population"},
		{Key: "diameter", Title: "Diameter"},
		{Key: "climate", Title: "Climate"},
	}

	rows := make([]map[string]interface{}, 0, len(worlds))
	for _, planet := range worlds {
		pop, _ := strconv.ParseInt(planet.Get("population").String(), 10, 64)
		rows = append(rows, map[string]interface{}{
			"name":       planet.Get("name").String(),
			"population": humanize.Comma(pop),
			"diameter":   planet.Get("diameter").String(),
			"climate":    planet.Get("climate").String(),
		})
	}

	s.emit.Section("Large worlds", cols, rows)
	return nil
}

// largeWorlds filters planets to those whose population and diameter both
// clear the thresholds. The archive reports both fields as strings, often
// the literal "unknown"; a non-numeric value simply fails the filter, it is
// never an error.
func largeWorlds(planets []gjson.Result) []gjson.Result {
	var out []gjson.Result
	for _, planet := range planets {
		pop, err := strconv.ParseFloat(planet.Get("population").String(), 64)
		if err != nil {
			continue
		}
		diameter, err := strconv.ParseFloat(planet.Get("diameter").String(), 64)
		if err != nil {
			continue
		}
		if pop > largePopulation && diameter > largeDiameter {
			out = append(out, planet)
		}
	}
	return out
}
