package simulator

// PartnershipPolicy is the profit-sharing deal: a guaranteed floor and a
// graduated ceiling where the partner takes CapShare of anything above
// CapThreshold.
type PartnershipPolicy struct {
	Floor        float64
	CapThreshold float64
	CapShare     float64
}

// Apply adjusts a raw monthly profit. Both comparisons are strict, so a raw
// profit equal to Floor or CapThreshold passes through unchanged.
func (p PartnershipPolicy) Apply(raw float64) float64 {
	switch {
	case raw < p.Floor:
		return p.Floor
	case raw > p.CapThreshold:
		return p.CapShare*p.CapThreshold + (1-p.CapShare)*raw
	default:
		return raw
	}
}
