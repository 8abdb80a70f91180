package domain

// StormRecord is one observed event from the storm events CSV. Damage
// figures are the raw base values until [NormalizeRecord] resolves the
// magnitude codes.
type StormRecord struct {
	EventType      string  `json:"event_type"`
	Fatalities     float64 `json:"fatalities"`
	Injuries       float64 `json:"injuries"`
	PropertyDamage float64 `json:"property_damage"`
	PropertyExp    string  `json:"property_exp,omitempty"`
	CropDamage     float64 `json:"crop_damage"`
	CropExp        string  `json:"crop_exp,omitempty"`
}

// HarmField selects which numeric field of a record is being aggregated.
type HarmField string

const (
	FieldFatalities     HarmField = "fatalities"
	FieldInjuries       HarmField = "injuries"
	FieldPropertyDamage HarmField = "property_damage"
	FieldCropDamage     HarmField = "crop_damage"
)

// HarmFields lists all fields in report order: human harm first, then
// economic harm.
var HarmFields = []HarmField{
	FieldFatalities,
	FieldInjuries,
	FieldPropertyDamage,
	FieldCropDamage,
}

// Valid reports whether f is one of the four known harm fields.
func (f HarmField) Valid() bool {
	switch f {
	case FieldFatalities, FieldInjuries, FieldPropertyDamage, FieldCropDamage:
		return true
	default:
		return false
	}
}

// Select returns the record's value for the field. Fatality and injury
// counts are carried as float64 alongside the damage sums so one selector
// covers all four fields; float64 is exact for counts at this scale.
func (f HarmField) Select(r StormRecord) float64 {
	switch f {
	case FieldFatalities:
		return r.Fatalities
	case FieldInjuries:
		return r.Injuries
	case FieldPropertyDamage:
		return r.PropertyDamage
	case FieldCropDamage:
		return r.CropDamage
	default:
		return 0
	}
}
