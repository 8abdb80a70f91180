// Package domain models NOAA Storm Events Database records and the pure
// transformations used to report on them.
//
// # Data Source
//
// Records come from the NOAA National Climatic Data Center storm events
// CSV (1950 onward), one row per observed event. The columns consumed
// here are EVTYPE (event-type label), FATALITIES, INJURIES, PROPDMG,
// PROPDMGEXP, CROPDMG, and CROPDMGEXP.
//
// # NOAA Data Conventions
//
// Event-type labels:
//
//	EVTYPE is free text entered by hand over decades, so the same event
//	type appears under multiple casings ("Tornado", "TORNADO", "tornado").
//	Uppercasing the label is the dataset's only deduplication rule; no
//	other cleanup (trimming, alias folding) is applied.
//
// Damage magnitude codes:
//
//	PROPDMG/CROPDMG hold a base dollar figure and PROPDMGEXP/CROPDMGEXP a
//	single-character scale code:
//
//	  "K" → ×1e3    "M" → ×1e6    "B" → ×1e9
//
//	Codes are case-insensitive ("m" and "M" both mean millions). Old rows
//	carry stray codes ("+", "?", "0"–"8", "H") or none at all; all of
//	those resolve to ×1 — a deliberate lenient policy, not an omission.
//
// # Normalization
//
// [NormalizeRecord] is pure, total, and idempotent: it uppercases the
// label, rescales both damage figures by their resolved multipliers, and
// blanks the consumed codes. A blank code resolves to ×1, so normalizing
// an already-normalized record is a no-op.
package domain
