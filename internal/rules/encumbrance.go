package rules

// Encumbrance statuses under the variant carrying rule.
const (
	EncumbranceNone   = "unencumbered"
	EncumbranceLight  = "encumbered"
	EncumbranceHeavy  = "heavily_encumbered"
	encumberedPenalty = 10
	heavyPenalty      = 20
)

// Encumbrance is the computed carrying state for a character with a
// known Strength score.
type Encumbrance struct {
	CurrentWeight       float64
	Status              string
	SpeedPenalty        int
	Disadvantage        bool
	ThresholdEncumbered int
	ThresholdHeavy      int
}

// ComputeEncumbrance applies the variant encumbrance rule: carrying
// more than STR*5 costs 10 ft of speed, more than STR*10 costs 20 ft
// and imposes disadvantage on STR/DEX/CON rolls.
func ComputeEncumbrance(strength int, currentWeight float64) Encumbrance {
	e := Encumbrance{
		CurrentWeight:       currentWeight,
		Status:              EncumbranceNone,
		ThresholdEncumbered: strength * 5,
		ThresholdHeavy:      strength * 10,
	}
	switch {
	case currentWeight > float64(e.ThresholdHeavy):
		e.Status = EncumbranceHeavy
		e.SpeedPenalty = heavyPenalty
		e.Disadvantage = true
	case currentWeight > float64(e.ThresholdEncumbered):
		e.Status = EncumbranceLight
		e.SpeedPenalty = encumberedPenalty
	}
	return e
}
