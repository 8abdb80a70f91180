// Package report builds the four top-N harm rankings from storm records.
package report

import (
	"fmt"
	"time"

	"github.com/couchcryptid/storm-harm-report/internal/domain"
)

// billionUSD is the display rescale applied to damage totals at the
// reporting boundary. Aggregation itself always works in raw dollars.
const billionUSD = 1e9

// RankedList is one answered question: the top-N categories for a single
// harm field, with the unit the values are expressed in.
type RankedList struct {
	Field   domain.HarmField  `json:"field"`
	Unit    string            `json:"unit"`
	Entries domain.TopNReport `json:"entries"`
}

// Report answers both questions of the analysis: which event types harm
// people the most (fatalities, injuries) and which cost the most
// (property and crop damage, in USD billions).
type Report struct {
	GeneratedAt    time.Time  `json:"generated_at"`
	TopN           int        `json:"top_n"`
	Fatalities     RankedList `json:"fatalities"`
	Injuries       RankedList `json:"injuries"`
	PropertyDamage RankedList `json:"property_damage"`
	CropDamage     RankedList `json:"crop_damage"`
}

// List returns the ranked list for a harm field.
func (r *Report) List(field domain.HarmField) (RankedList, bool) {
	switch field {
	case domain.FieldFatalities:
		return r.Fatalities, true
	case domain.FieldInjuries:
		return r.Injuries, true
	case domain.FieldPropertyDamage:
		return r.PropertyDamage, true
	case domain.FieldCropDamage:
		return r.CropDamage, true
	default:
		return RankedList{}, false
	}
}

// Lists returns all four ranked lists in report order.
func (r *Report) Lists() []RankedList {
	return []RankedList{r.Fatalities, r.Injuries, r.PropertyDamage, r.CropDamage}
}

// Build normalizes the records once, then aggregates and ranks each of
// the four harm fields independently. Damage totals are rescaled to USD
// billions here; counts stay as counts.
func Build(records []domain.StormRecord, topN int) (*Report, error) {
	if topN <= 0 {
		return nil, fmt.Errorf("top-n must be positive, got %d", topN)
	}

	normalized := domain.NormalizeRecords(records)

	rank := func(field domain.HarmField) domain.TopNReport {
		return domain.TopN(domain.Aggregate(normalized, field), topN)
	}

	return &Report{
		GeneratedAt: domain.Now(),
		TopN:        topN,
		Fatalities: RankedList{
			Field:   domain.FieldFatalities,
			Unit:    "deaths",
			Entries: rank(domain.FieldFatalities),
		},
		Injuries: RankedList{
			Field:   domain.FieldInjuries,
			Unit:    "injuries",
			Entries: rank(domain.FieldInjuries),
		},
		PropertyDamage: RankedList{
			Field:   domain.FieldPropertyDamage,
			Unit:    "USD billions",
			Entries: toBillions(rank(domain.FieldPropertyDamage)),
		},
		CropDamage: RankedList{
			Field:   domain.FieldCropDamage,
			Unit:    "USD billions",
			Entries: toBillions(rank(domain.FieldCropDamage)),
		},
	}, nil
}

func toBillions(entries domain.TopNReport) domain.TopNReport {
	out := make(domain.TopNReport, len(entries))
	for i, e := range entries {
		out[i] = domain.RankedEntry{Category: e.Category, Value: e.Value / billionUSD}
	}
	return out
}
