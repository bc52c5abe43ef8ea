package models

// AmountKind classifies how an award amount was expressed.
type AmountKind string

const (
	AmountFixed    AmountKind = "fixed"
	AmountRange    AmountKind = "range"
	AmountFullRide AmountKind = "full-ride"
	AmountUnknown  AmountKind = "unknown"
)

// ParsedAmount is the structured form of a free-text award amount.
//
// Fixed amounts have Min == Max. Full-ride and unknown amounts have both
// bounds nil.
type ParsedAmount struct {
	Min  *int64     `json:"min"`
	Max  *int64     `json:"max"`
	Kind AmountKind `json:"kind"`
}
