package shows

import (
	"aiss/internal/formatting"
	"aiss/internal/render"
)

// Programme is the shared shape of scheduled studio programmes, which are
// described by network and cadence rather than seasons.
type Programme struct {
	Core
	Network            string   `json:"network"`
	PremiereYear       int      `json:"premiere_year"`
	BroadcastSchedule  string   `json:"broadcast_schedule"`
	RuntimeMinutes     int      `json:"runtime_minutes"`
	Tone               string   `json:"tone"`
	ExecutiveProducers []string `json:"executive_producers"`
}

func (p *Programme) scheduleFacts() []render.Fact {
	return []render.Fact{
		{Label: "Network", Value: render.Text(p.Network)},
		{Label: "Premiered", Value: formatting.Year(p.PremiereYear)},
		{Label: "Schedule", Value: render.Text(p.BroadcastSchedule)},
		{Label: "Runtime", Value: formatting.RuntimeMinutes(p.RuntimeMinutes)},
	}
}

func (p *Programme) producersPanel() render.Panel {
	return render.Panel{Title: "Executive Producers", Body: render.Bullets(p.ExecutiveProducers)}
}
