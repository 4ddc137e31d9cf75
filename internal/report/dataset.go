package report

import (
	"errors"
	"fmt"
	"sort"
)

// ErrNotFound is returned when a slug or comparison key does not exist.
var ErrNotFound = errors.New("not found")

// DefaultComparison is the comparison shown at /compare.
const DefaultComparison = "elevate"

// legacySlugs maps retired entity slugs to their current slug.
var legacySlugs = map[string]string{
	"delegate-iq": "delegate-digital",
}

// Dataset is the full set of report data. It is immutable after Load.
type Dataset struct {
	Entities    []Entity
	Metrics     EcosystemMetrics
	Financials  Financials
	Flywheel    Flywheel
	Goals       []Goal
	Investors   Investors
	Team        Team
	Comparisons map[string]Comparison
}

// Validate checks the cross-file invariants of the dataset.
func (d *Dataset) Validate() error {
	var errs []error

	seen := make(map[string]bool, len(d.Entities))
	for _, e := range d.Entities {
		if e.Slug == "" {
			errs = append(errs, errors.New("entity with empty slug"))
			continue
		}
		if seen[e.Slug] {
			errs = append(errs, fmt.Errorf("duplicate entity slug %q", e.Slug))
		}
		seen[e.Slug] = true
		if e.Name == "" {
			errs = append(errs, fmt.Errorf("entity %q has no name", e.Slug))
		}
		if e.Color == "" {
			errs = append(errs, fmt.Errorf("entity %q has no color", e.Slug))
		}
		if e.RevenueY1Floor > e.RevenueY1Ceiling {
			errs = append(errs, fmt.Errorf("entity %q: Y1 floor exceeds ceiling", e.Slug))
		}
		if e.RevenueY5Floor > e.RevenueY5Ceiling {
			errs = append(errs, fmt.Errorf("entity %q: Y5 floor exceeds ceiling", e.Slug))
		}
	}

	for _, b := range d.Financials.EntityBreakdown {
		if b.RevenueY1Floor > b.RevenueY1Ceiling || b.RevenueY5Floor > b.RevenueY5Ceiling {
			errs = append(errs, fmt.Errorf("breakdown %q: floor exceeds ceiling", b.Slug))
		}
	}

	nodes := make(map[string]bool, len(d.Flywheel.Nodes))
	for _, n := range d.Flywheel.Nodes {
		nodes[n.ID] = true
	}
	for i, c := range d.Flywheel.Connections {
		if !nodes[c.From] || !nodes[c.To] {
			errs = append(errs, fmt.Errorf("flywheel connection %d (%s -> %s) references unknown node", i, c.From, c.To))
		}
	}

	if len(errs) > 0 {
		return fmt.Errorf("invalid dataset: %w", errors.Join(errs...))
	}
	return nil
}

// CanonicalSlug resolves a retired slug to its replacement. The boolean is
// true when slug was an alias.
func CanonicalSlug(slug string) (string, bool) {
	if to, ok := legacySlugs[slug]; ok {
		return to, true
	}
	return slug, false
}

// LegacySlugs returns a copy of the retired slug table.
func LegacySlugs() map[string]string {
	out := make(map[string]string, len(legacySlugs))
	for k, v := range legacySlugs {
		out[k] = v
	}
	return out
}

// Entity returns the entity with the given slug.
func (d *Dataset) Entity(slug string) (Entity, error) {
	for _, e := range d.Entities {
		if e.Slug == slug {
			return e, nil
		}
	}
	return Entity{}, fmt.Errorf("entity %q: %w", slug, ErrNotFound)
}

// EntityColor returns the color for slug, or fallback when unknown.
func (d *Dataset) EntityColor(slug, fallback string) string {
	for _, e := range d.Entities {
		if e.Slug == slug && e.Color != "" {
			return e.Color
		}
	}
	return fallback
}

// Comparison returns the comparison stored under key.
func (d *Dataset) Comparison(key string) (Comparison, error) {
	c, ok := d.Comparisons[key]
	if !ok {
		return Comparison{}, fmt.Errorf("comparison %q: %w", key, ErrNotFound)
	}
	return c, nil
}

// ComparisonKeys returns the comparison keys with the default first and the
// rest in lexical order.
func (d *Dataset) ComparisonKeys() []string {
	keys := make([]string, 0, len(d.Comparisons))
	for k := range d.Comparisons {
		if k != DefaultComparison {
			keys = append(keys, k)
		}
	}
	sort.Strings(keys)
	if _, ok := d.Comparisons[DefaultComparison]; ok {
		keys = append([]string{DefaultComparison}, keys...)
	}
	return keys
}

// Related returns up to limit other entities, those in the same category
// first, then by descending Y1 floor.
func (d *Dataset) Related(slug string, limit int) []Entity {
	self, err := d.Entity(slug)
	if err != nil {
		return nil
	}
	others := make([]Entity, 0, len(d.Entities))
	for _, e := range d.Entities {
		if e.Slug != slug {
			others = append(others, e)
		}
	}
	sort.SliceStable(others, func(i, j int) bool {
		si, sj := others[i].Category == self.Category, others[j].Category == self.Category
		if si != sj {
			return si
		}
		return others[i].RevenueY1Floor > others[j].RevenueY1Floor
	})
	if len(others) > limit {
		others = others[:limit]
	}
	return others
}

// EntitiesByCategory groups entities by category, preserving dataset order.
func (d *Dataset) EntitiesByCategory() map[string][]Entity {
	out := make(map[string][]Entity)
	for _, e := range d.Entities {
		out[e.Category] = append(out[e.Category], e)
	}
	return out
}
