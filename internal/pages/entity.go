package pages

import (
	"fmt"

	"github.com/blackhillsconsortium/annualreport/internal/format"
	"github.com/blackhillsconsortium/annualreport/internal/report"
)

const (
	minStreamWidth  = 5
	projectionYears = 5
	relatedLimit    = 3
)

// StreamBar is one revenue stream drawn as a bar sized against the entity total.
type StreamBar struct {
	report.RevenueStream
	Amount string
	Width  float64
}

// ProjectionPoint is one year of the linear revenue projection.
type ProjectionPoint struct {
	Year    string  `json:"year"`
	Floor   float64 `json:"floor"`
	Ceiling float64 `json:"ceiling"`
}

// EntityPage is the detail page of one entity.
type EntityPage struct {
	Meta        Meta
	Entity      report.Entity
	StatusLabel string
	StatusClass string
	Y1          format.Display
	Y5          format.Display
	Streams     []StreamBar
	Metrics     []Counter
	Projection  []ProjectionPoint
	Related     []EntityCard
}

// Entity builds the detail page for slug. Unknown slugs return
// report.ErrNotFound.
func (b *Builder) Entity(slug string) (EntityPage, error) {
	e, err := b.ds.Entity(slug)
	if err != nil {
		return EntityPage{}, err
	}

	p := EntityPage{
		Meta:        b.pageMeta(e.Name, fmt.Sprintf("%s: %s", e.Name, e.Tagline)),
		Entity:      e,
		StatusLabel: e.Status.Label(),
		StatusClass: statusClass(e.Status),
		Y1:          format.CountUp(e.RevenueY1Floor, 1),
		Y5:          format.CountUp(e.RevenueY5Floor, 1),
		Streams:     StreamBars(e),
		Projection:  Projection(e),
	}

	for _, m := range e.Metrics {
		d := format.Display{End: m.Value, Prefix: m.Prefix, Suffix: m.Suffix}
		p.Metrics = append(p.Metrics, Counter{Display: d, Label: m.Label, Text: m.Prefix + format.Number(m.Value) + m.Suffix})
	}
	for _, r := range b.ds.Related(slug, relatedLimit) {
		p.Related = append(p.Related, entityCard(r))
	}
	return p, nil
}

func statusClass(s report.Status) string {
	switch s {
	case report.StatusOperational, report.StatusPreLaunch:
		return string(s)
	default:
		return string(report.StatusPlanning)
	}
}

// StreamBars sizes each revenue stream against the entity's total Y1
// estimate. The total falls back to the Y1 floor when the streams sum to
// zero, and no bar is narrower than 5%.
func StreamBars(e report.Entity) []StreamBar {
	var total float64
	for _, s := range e.RevenueStreams {
		total += s.EstimatedY1
	}
	if total == 0 {
		total = e.RevenueY1Floor
	}

	bars := make([]StreamBar, 0, len(e.RevenueStreams))
	for _, s := range e.RevenueStreams {
		width := float64(minStreamWidth)
		if total != 0 {
			width = max(s.EstimatedY1/total*100, minStreamWidth)
		}
		bars = append(bars, StreamBar{RevenueStream: s, Amount: format.Currency(s.EstimatedY1), Width: width})
	}
	return bars
}

// Projection interpolates floor and ceiling revenue linearly from year 1 to
// year 5.
func Projection(e report.Entity) []ProjectionPoint {
	points := make([]ProjectionPoint, projectionYears)
	for i := range points {
		t := float64(i) / float64(projectionYears-1)
		points[i] = ProjectionPoint{
			Year:    fmt.Sprintf("Year %d", i+1),
			Floor:   e.RevenueY1Floor + (e.RevenueY5Floor-e.RevenueY1Floor)*t,
			Ceiling: e.RevenueY1Ceiling + (e.RevenueY5Ceiling-e.RevenueY1Ceiling)*t,
		}
	}
	return points
}
