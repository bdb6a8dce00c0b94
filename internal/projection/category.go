package projection

import (
	"fmt"
	"strings"
)

// Category is a single projected stat.
type Category uint8

const (
	PTS Category = iota
	REB
	AST

	numCategories = 3
)

// Categories lists every single-stat category in projection order.
var Categories = [numCategories]Category{PTS, REB, AST}

var categoryCodes = [numCategories]string{"PTS", "REB", "AST"}

// String returns the short code used in DvP column names ("PTS", "REB", "AST").
func (c Category) String() string {
	if int(c) < len(categoryCodes) {
		return categoryCodes[c]
	}
	return fmt.Sprintf("Category(%d)", uint8(c))
}

// MarshalText encodes the category as its short code.
func (c Category) MarshalText() ([]byte, error) {
	if int(c) >= len(categoryCodes) {
		return nil, fmt.Errorf("unknown category %d", uint8(c))
	}
	return []byte(c.String()), nil
}

// UnmarshalText decodes a short category code, ignoring case.
func (c *Category) UnmarshalText(text []byte) error {
	for i, code := range categoryCodes {
		if strings.EqualFold(string(text), code) {
			*c = Category(i)
			return nil
		}
	}
	return fmt.Errorf("unknown category %q", text)
}

// Selector picks a single category or a sum of categories.
type Selector uint8

const (
	Points Selector = iota
	Rebounds
	Assists
	PR
	PA
	RA
	PRA

	numSelectors = 7
)

// Selectors lists every selector in display order.
var Selectors = [numSelectors]Selector{Points, Rebounds, Assists, PR, PA, RA, PRA}

var selectorNames = [numSelectors]string{"Points", "Rebounds", "Assists", "PR", "PA", "RA", "PRA"}

var selectorComponents = [numSelectors][]Category{
	Points:   {PTS},
	Rebounds: {REB},
	Assists:  {AST},
	PR:       {PTS, REB},
	PA:       {PTS, AST},
	RA:       {REB, AST},
	PRA:      {PTS, REB, AST},
}

// ParseSelector accepts a selector name case-insensitively. The short category
// codes PTS, REB and AST are accepted as aliases for the single-stat selectors.
func ParseSelector(raw string) (Selector, error) {
	val := strings.TrimSpace(raw)
	for i, name := range selectorNames {
		if strings.EqualFold(val, name) {
			return Selector(i), nil
		}
	}
	for i, code := range categoryCodes {
		if strings.EqualFold(val, code) {
			return Selector(i), nil
		}
	}
	return 0, fmt.Errorf("unknown stat %q (expected one of %s)", raw, strings.Join(selectorNames[:], ", "))
}

// String returns the display name of the selector.
func (s Selector) String() string {
	if int(s) < len(selectorNames) {
		return selectorNames[s]
	}
	return fmt.Sprintf("Selector(%d)", uint8(s))
}

// MarshalText encodes the selector as its display name.
func (s Selector) MarshalText() ([]byte, error) {
	if int(s) >= len(selectorNames) {
		return nil, fmt.Errorf("unknown selector %d", uint8(s))
	}
	return []byte(s.String()), nil
}

// UnmarshalText decodes a selector name.
func (s *Selector) UnmarshalText(text []byte) error {
	parsed, err := ParseSelector(string(text))
	if err != nil {
		return err
	}
	*s = parsed
	return nil
}

// Components returns the categories summed by the selector.
func (s Selector) Components() []Category {
	if int(s) >= len(selectorComponents) {
		return nil
	}
	out := make([]Category, len(selectorComponents[s]))
	copy(out, selectorComponents[s])
	return out
}

// Single returns the category when the selector names exactly one stat.
func (s Selector) Single() (Category, bool) {
	comps := s.Components()
	if len(comps) != 1 {
		return 0, false
	}
	return comps[0], true
}
