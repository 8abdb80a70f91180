package domain

import "strings"

// damageMultipliers maps an uppercased magnitude code to its scale factor.
// Lookup misses fall back to ×1, which covers blank and stray codes.
var damageMultipliers = map[string]float64{
	"K": 1e3,
	"M": 1e6,
	"B": 1e9,
}

// Multiplier resolves a magnitude code to its numeric scale factor.
// Codes are matched case-insensitively; unrecognized or empty codes
// resolve to 1.
func Multiplier(code string) float64 {
	if m, ok := damageMultipliers[strings.ToUpper(strings.TrimSpace(code))]; ok {
		return m
	}
	return 1
}

// NormalizeRecord uppercases the event-type label, rescales both damage
// figures by their resolved multipliers, and blanks the consumed codes.
// Pure and total: it never fails, and re-normalizing a normalized record
// is a no-op because a blank code resolves to ×1.
func NormalizeRecord(r StormRecord) StormRecord {
	r.EventType = strings.ToUpper(r.EventType)
	r.PropertyDamage *= Multiplier(r.PropertyExp)
	r.PropertyExp = ""
	r.CropDamage *= Multiplier(r.CropExp)
	r.CropExp = ""
	return r
}

// NormalizeRecords returns a new slice with every record normalized.
// The input is left untouched.
func NormalizeRecords(records []StormRecord) []StormRecord {
	out := make([]StormRecord, len(records))
	for i, r := range records {
		out[i] = NormalizeRecord(r)
	}
	return out
}
