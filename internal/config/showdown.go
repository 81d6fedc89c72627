package config

import (
	"fmt"

	"github.com/hashicorp/hcl/v2"
	"github.com/hashicorp/hcl/v2/gohcl"
	"github.com/hashicorp/hcl/v2/hclparse"

	"github.com/lox/pokereval/poker"
	"github.com/lox/pokereval/pot"
)

// ShowdownFile describes one hand at showdown:
//
//	board = "As Ks Qs 2d 3c"
//
//	player "alice" {
//	  hole        = "Js Ts"
//	  contributed = 50
//	}
//
//	player "bob" {
//	  hole        = "7h 8h"
//	  contributed = 100
//	  folded      = true
//	}
//
// Players are listed in seat order, which decides who receives odd chips.
type ShowdownFile struct {
	Board   string        `hcl:"board"`
	Players []PlayerBlock `hcl:"player,block"`
}

// PlayerBlock is one seat in a ShowdownFile.
type PlayerBlock struct {
	Name        string `hcl:"name,label"`
	Hole        string `hcl:"hole,optional"`
	Contributed int    `hcl:"contributed,optional"`
	Folded      bool   `hcl:"folded,optional"`
}

// LoadShowdown reads a showdown description from an HCL file.
func LoadShowdown(filename string) (*ShowdownFile, error) {
	parser := hclparse.NewParser()
	file, diags := parser.ParseHCLFile(filename)
	return decodeShowdown(file, diags)
}

// ParseShowdown decodes a showdown description from HCL source.
func ParseShowdown(src []byte, filename string) (*ShowdownFile, error) {
	parser := hclparse.NewParser()
	file, diags := parser.ParseHCL(src, filename)
	return decodeShowdown(file, diags)
}

func decodeShowdown(file *hcl.File, diags hcl.Diagnostics) (*ShowdownFile, error) {
	if diags.HasErrors() {
		return nil, fmt.Errorf("failed to parse HCL file: %s", diags.Error())
	}

	var sf ShowdownFile
	diags = gohcl.DecodeBody(file.Body, nil, &sf)
	if diags.HasErrors() {
		return nil, fmt.Errorf("failed to decode HCL: %s", diags.Error())
	}

	if err := sf.Validate(); err != nil {
		return nil, err
	}
	return &sf, nil
}

// Validate checks that the hand is playable.
func (s *ShowdownFile) Validate() error {
	if len(s.Players) == 0 {
		return fmt.Errorf("showdown needs at least one player")
	}
	seen := make(map[string]bool, len(s.Players))
	for _, p := range s.Players {
		if seen[p.Name] {
			return fmt.Errorf("player %q: %w", p.Name, pot.ErrDuplicatePlayer)
		}
		seen[p.Name] = true
		if p.Contributed < 0 {
			return fmt.Errorf("player %q: %w", p.Name, pot.ErrNegativeContribution)
		}
		if !p.Folded && p.Hole == "" {
			return fmt.Errorf("player %q: hole cards required unless folded", p.Name)
		}
	}
	return nil
}

// BoardCards parses the community cards.
func (s *ShowdownFile) BoardCards() ([]poker.Card, error) {
	board, err := poker.ParseCards(s.Board)
	if err != nil {
		return nil, fmt.Errorf("board: %w", err)
	}
	return board, nil
}

// Entrants converts the player blocks into showdown entrants.
func (s *ShowdownFile) Entrants() ([]pot.Entrant, error) {
	entrants := make([]pot.Entrant, 0, len(s.Players))
	for _, p := range s.Players {
		hole, err := poker.ParseCards(p.Hole)
		if err != nil {
			return nil, fmt.Errorf("player %q: %w", p.Name, err)
		}
		entrants = append(entrants, pot.Entrant{
			Player: p.Name,
			Hole:   hole,
			Folded: p.Folded,
		})
	}
	return entrants, nil
}

// Ledger records every player's contribution in seat order.
func (s *ShowdownFile) Ledger() (*pot.Ledger, error) {
	ledger := pot.NewLedger()
	for _, p := range s.Players {
		if err := ledger.Add(p.Name, p.Contributed); err != nil {
			return nil, err
		}
	}
	return ledger, nil
}
