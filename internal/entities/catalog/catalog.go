// Package catalog is the closed set of story themes with their races, jobs,
// race base stats and skills.
package catalog

import (
	_ "embed"
	"encoding/json"
	"sync"

	"github.com/KirkDiggler/rpg-tale/internal/entities"
	"github.com/KirkDiggler/rpg-tale/internal/errors"
)

//go:embed themes.json
var defaultThemes []byte

// Race is a playable race within a theme.
type Race struct {
	Name   string         `json:"name"`
	Base   entities.Stats `json:"base"`
	Skills []string       `json:"skills"`
}

// Job is a playable job within a theme.
type Job struct {
	Name   string   `json:"name"`
	Skills []string `json:"skills"`
}

// Theme is a story genre. When FixedRace is set the race is not rolled.
type Theme struct {
	ID        string `json:"id"`
	Name      string `json:"name"`
	FixedRace string `json:"fixed_race,omitempty"`
	Races     []Race `json:"races"`
	Jobs      []Job  `json:"jobs"`
}

// RaceNames lists the theme's races in catalog order.
func (t *Theme) RaceNames() []string {
	names := make([]string, len(t.Races))
	for i, r := range t.Races {
		names[i] = r.Name
	}
	return names
}

// JobNames lists the theme's jobs in catalog order.
func (t *Theme) JobNames() []string {
	names := make([]string, len(t.Jobs))
	for i, j := range t.Jobs {
		names[i] = j.Name
	}
	return names
}

func (t *Theme) race(name string) *Race {
	for i := range t.Races {
		if t.Races[i].Name == name {
			return &t.Races[i]
		}
	}
	return nil
}

func (t *Theme) job(name string) *Job {
	for i := range t.Jobs {
		if t.Jobs[i].Name == name {
			return &t.Jobs[i]
		}
	}
	return nil
}

// Catalog is an immutable, validated set of themes.
type Catalog struct {
	themes []Theme
	byID   map[string]*Theme
}

// New validates themes and builds a catalog from them.
func New(themes []Theme) (*Catalog, error) {
	c := &Catalog{
		themes: append([]Theme(nil), themes...),
		byID:   make(map[string]*Theme, len(themes)),
	}

	vb := errors.NewValidationBuilder()
	for i := range c.themes {
		t := &c.themes[i]
		if t.ID == "" {
			vb.Fieldf("themes", "theme %d has no id", i)
			continue
		}
		if _, dup := c.byID[t.ID]; dup {
			vb.Fieldf("themes", "duplicate theme %q", t.ID)
			continue
		}
		if t.FixedRace != "" && t.race(t.FixedRace) == nil {
			vb.Fieldf("themes", "theme %q fixes race %q which it does not define", t.ID, t.FixedRace)
		}
		c.byID[t.ID] = t
	}
	if err := vb.Build(); err != nil {
		return nil, err
	}

	return c, nil
}

// Parse decodes a JSON catalog of the form {"themes": [...]}.
func Parse(data []byte) (*Catalog, error) {
	var doc struct {
		Themes []Theme `json:"themes"`
	}
	if err := json.Unmarshal(data, &doc); err != nil {
		return nil, errors.WrapWithCode(err, errors.CodeInvalidArgument, "failed to decode theme catalog")
	}
	return New(doc.Themes)
}

var (
	defaultOnce    sync.Once
	defaultCatalog *Catalog
)

// Default returns the built-in catalog.
func Default() *Catalog {
	defaultOnce.Do(func() {
		c, err := Parse(defaultThemes)
		if err != nil {
			panic("catalog: embedded themes are invalid: " + err.Error())
		}
		defaultCatalog = c
	})
	return defaultCatalog
}

// Themes returns every theme in catalog order.
func (c *Catalog) Themes() []Theme {
	return append([]Theme(nil), c.themes...)
}

// Theme looks up a theme by ID.
func (c *Catalog) Theme(id string) (*Theme, error) {
	t, ok := c.byID[id]
	if !ok {
		return nil, errors.Validationf(errors.ReasonUnknownTheme, "unknown theme %q", id).
			WithMeta("theme", id)
	}
	return t, nil
}

// FixedRace returns the race a theme imposes, if it imposes one.
func (c *Catalog) FixedRace(themeID string) (string, bool) {
	t, ok := c.byID[themeID]
	if !ok || t.FixedRace == "" {
		return "", false
	}
	return t.FixedRace, true
}

// RaceBase returns the base stats added to the stat dice for a race.
func (c *Catalog) RaceBase(themeID, race string) (entities.Stats, error) {
	t, err := c.Theme(themeID)
	if err != nil {
		return entities.Stats{}, err
	}
	r := t.race(race)
	if r == nil {
		return entities.Stats{}, errors.NotFoundf("race %q is not part of theme %q", race, themeID)
	}
	return r.Base, nil
}

// RaceSkills returns the skills granted by a race; empty when unknown.
func (c *Catalog) RaceSkills(themeID, race string) []string {
	t, ok := c.byID[themeID]
	if !ok {
		return nil
	}
	if r := t.race(race); r != nil {
		return append([]string(nil), r.Skills...)
	}
	return nil
}

// JobSkills returns the skills granted by a job; empty when unknown.
func (c *Catalog) JobSkills(themeID, job string) []string {
	t, ok := c.byID[themeID]
	if !ok {
		return nil
	}
	if j := t.job(job); j != nil {
		return append([]string(nil), j.Skills...)
	}
	return nil
}
