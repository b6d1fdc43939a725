// Copyright © 2025 Steve Taranto staranto@gmail.com
// SPDX-License-Identifier: MIT

package showcase

import (
	"context"
	"fmt"

	"github.com/apex/log"

	"github.com/staranto/galaxydex/internal/output"
)

// showCharacter fetches the character the rotating cursor points at and
// prints their vitals. The cursor moves every run so repeated runs walk the
// roster.
func (s *Showcase) showCharacter(ctx context.Context) error {
	id := s.nextCharacter
	s.nextCharacter++

	endpoint := fmt.Sprintf("people/%d", id)
	res, err := s.fetch(ctx, endpoint, "show character")
	if err != nil {
		return err
	}
	log.Debugf("character %d: %s", id, res.Get("name").String())

	cols := []output.Column{
		{Key: "name", Title: "Name"},
		{Key: "height", Title: "Height"},
		{Key: "mass", Title: "Mass"},
		{Key: "birth_year", Title: "Born"},
		{Key: "films", Title: "Films"},
	}

	rows := []map[string]interface{}{{
		"name":       res.Get("name").String(),
		"height":     res.Get("height").String(),
		"mass":       res.Get("mass").String(),
		"birth_year": res.Get("birth_year").String(),
		"films":      len(res.Get("films").Array()),
	}}

	s.emit.Section("Character", cols, rows)
	return nil
}
