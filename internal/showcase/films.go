// Copyright © 2025 Steve Taranto staranto@gmail.com
// SPDX-License-Identifier: MIT

package showcase

import (
	"context"
	"sort"

	"github.com/tidwall/gjson"

	"github.com/staranto/galaxydex/internal/output"
)

// showFilms fetches the full film list and prints it in release order.
func (s *Showcase) showFilms(ctx context.Context) error {
	res, err := s.fetch(ctx, "films/", "show films")
	if err != nil {
		return err
	}

	films := res.Get("results").Array()
	sortByRelease(films)

	cols := []output.Column{
		{Key: "title", Title: "Title"},
		{Key: "release_date", Title: "Released"},
		{Key: "director", Title: "Director"},
		{Key: "producer", Title: "Producer"},
		{Key: "characters", Title: "Characters"},
		{Key: "planets", Title: "Planets"},
	}

	rows := make([]map[string]interface{}, 0, len(films))
	for _, film := range films {
		rows = append(rows, map[string]interface{}{
			"title":        film.Get("title").String(),
			"release_date": film.Get("release_date").String(),
			"director":     film.Get("director").String(),
			"producer":     film.Get("producer").String(),
			"characters":   len(film.Get("characters").Array()),
			"planets":      len(film.Get("planets").Array()),
		})
	}

	s.emit.Section("Films", cols, rows)
	return nil
}

// sortByRelease orders films ascending by release date. The archive dates
// are ISO yyyy-mm-dd, so the lexicographic comparison is the chronological
// one.
func sortByRelease(films []gjson.Result) {
	sort.SliceStable(films, func(i, j int) bool {
		return films[i].Get("release_date").String() < films[j].Get("release_date").String()
	})
}
