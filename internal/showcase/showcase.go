// Copyright © 2025 Steve Taranto staranto@gmail.com
// SPDX-License-Identifier: MIT

// Package showcase drives the demo pass over the archive: five display
// routines, run sequentially, each fetching one endpoint and rendering a
// summary.
package showcase

import (
	"context"
	"sync"

	"github.com/apex/log"
	"github.com/tidwall/gjson"

	"github.com/staranto/galaxydex/internal/archive"
	"github.com/staranto/galaxydex/internal/output"
)

const (
	// starshipDetailLimit bounds how many starships from page one get the
	// full detail treatment.
	starshipDetailLimit = 3

	// maxVehicleID is the last vehicle the rotating vehicle spotlight shows.
	maxVehicleID = 4
)

// Showcase runs the demo routines. Runs are serialized: a trigger that
// arrives while a run is in progress waits for the mutex rather than
// interleaving fetches against the shared cache and counters.
type Showcase struct {
	client *archive.Client
	stats  *archive.Stats
	emit   *output.Emitter

	mu sync.Mutex
	// nextCharacter rotates the spotlighted character, one per run.
	nextCharacter int64
	// nextVehicle rotates the vehicle spotlight independently and retires
	// after maxVehicleID.
	nextVehicle int64
}

func New(client *archive.Client, stats *archive.Stats, emit *output.Emitter) *Showcase {
	return &Showcase{
		client:        client,
		stats:         stats,
		emit:          emit,
		nextCharacter: 1,
		nextVehicle:   1,
	}
}

// Run performs one full pass: character, starships, planets, films, vehicle.
// The first routine to fail aborts the rest of the pass. Errors have already
// been counted by the fetch layer; Run only adds context.
func (s *Showcase) Run(ctx context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	steps := []func(context.Context) error{
		s.showCharacter,
		s.showStarships,
		s.showPlanets,
		s.showFilms,
		s.showVehicle,
	}

	for _, step := range steps {
		if err := step(ctx); err != nil {
			log.WithError(err).Error("showcase run aborted")
			return err
		}
	}

	return nil
}

// fetch wraps the client call with operation context and books the payload
// size against the data counter, cache hit or not.
func (s *Showcase) fetch(ctx context.Context, endpoint string, operation string) (gjson.Result, error) {
	res, err := s.client.Fetch(ctx, endpoint)
	if err != nil {
		return res, archive.Friendly(err, archive.ErrorContext{
			Endpoint:  endpoint,
			Operation: operation,
		})
	}
	s.stats.AddDataSize(len(res.Raw))
	return res, nil
}
