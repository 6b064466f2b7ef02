// Package config reads, validates and writes league files.
//
// A league file is YAML:
//
//	name: Default league
//	teams: [DFC, TFC, AFC, LFC, FFC, OFC, CFC]
//	rounds: 14
//	capacity: 3
//	home_conflicts:
//	  - teams: [TFC, OFC]
//	forbidden_rounds:
//	  - home: DFC
//	    away: CFC
//	    rounds: [1, 14]
//
// Field-level rules are expressed as validator tags; rules that relate two
// fields (teams known to the roster, rounds within 1..rounds) are checked by
// Build and reported as league.ErrMalformedConstraint.
package config

import (
	"errors"
	"fmt"

	"github.com/go-playground/validator/v10"

	"github.com/katalvlaran/roundplan/league"
)

// ErrInvalidConfig wraps every field-level validation failure.
var ErrInvalidConfig = errors.New("config: invalid league file")

var validate = validator.New()

// LeagueConfig is the on-disk form of a league.
type LeagueConfig struct {
	Name            string           `yaml:"name,omitempty"`
	Teams           []string         `yaml:"teams" validate:"required,min=2,unique,dive,required"`
	Rounds          int              `yaml:"rounds" validate:"required,gt=0"`
	Capacity        int              `yaml:"capacity" validate:"required,gt=0"`
	HomeConflicts   []HomeConflict   `yaml:"home_conflicts,omitempty" validate:"dive"`
	ForbiddenRounds []ForbiddenEntry `yaml:"forbidden_rounds,omitempty" validate:"dive"`
}

// HomeConflict names two teams that may not host in the same round.
type HomeConflict struct {
	Teams []string `yaml:"teams,flow" validate:"len=2,unique,dive,required"`
}

// ForbiddenEntry forbids the fixture between Home and Away, in either
// orientation, from the listed rounds.
type ForbiddenEntry struct {
	Home   string `yaml:"home" validate:"required"`
	Away   string `yaml:"away" validate:"required,nefield=Home"`
	Rounds []int  `yaml:"rounds,flow" validate:"required,min=1,dive,gt=0"`
}

// League is a validated league ready for graph building and solving.
type League struct {
	Name      string
	Roster    *league.Roster
	Homes     *league.HomeConflicts
	Forbidden *league.ForbiddenRounds
	Rounds    int
	Capacity  int
}

// Validate runs the field-level rules.
func (c *LeagueConfig) Validate() error {
	if err := validate.Struct(c); err != nil {
		return fmt.Errorf("%w: %v", ErrInvalidConfig, err)
	}

	return nil
}

// Build validates c and converts it into domain tables.
func (c *LeagueConfig) Build() (*League, error) {
	if err := c.Validate(); err != nil {
		return nil, err
	}

	teams := make([]league.Team, len(c.Teams))
	for i, t := range c.Teams {
		teams[i] = league.Team(t)
	}
	roster, err := league.NewRoster(teams...)
	if err != nil {
		return nil, fmt.Errorf("config.Build: %w", err)
	}

	homes := league.NewHomeConflicts()
	for _, hc := range c.HomeConflicts {
		if err = homes.Add(league.Team(hc.Teams[0]), league.Team(hc.Teams[1])); err != nil {
			return nil, fmt.Errorf("config.Build: home conflict %v: %w", hc.Teams, err)
		}
	}
	if err = homes.Validate(roster); err != nil {
		return nil, fmt.Errorf("config.Build: %w", err)
	}

	forbidden := league.NewForbiddenRounds()
	for _, fe := range c.ForbiddenRounds {
		f := league.Fixture{Home: league.Team(fe.Home), Away: league.Team(fe.Away)}
		if err = forbidden.Add(f, fe.Rounds...); err != nil {
			return nil, fmt.Errorf("config.Build: %w", err)
		}
	}
	if err = forbidden.Validate(roster, c.Rounds); err != nil {
		return nil, fmt.Errorf("config.Build: %w", err)
	}

	return &League{
		Name:      c.Name,
		Roster:    roster,
		Homes:     homes,
		Forbidden: forbidden,
		Rounds:    c.Rounds,
		Capacity:  c.Capacity,
	}, nil
}
