package pricing

// StepKind tells a chart how to draw a waterfall bar.
type StepKind string

const (
	StepAbsolute StepKind = "absolute"
	StepRelative StepKind = "relative"
	StepTotal    StepKind = "total"
)

// Step is one bar of the cost waterfall. Amount is signed: discounts are negative.
type Step struct {
	Label  string
	Kind   StepKind
	Amount float64
}

// Waterfall lays out b as base fee, distance, surge, discount and final total.
// With reconciled set and the floor active, a "Minimum Fare" step is added
// before the total so the relative steps sum to FinalTotal.
func Waterfall(b Breakdown, reconciled bool) []Step {
	steps := []Step{
		{Label: "Base Fee", Kind: StepAbsolute, Amount: b.BaseFee},
		{Label: "Distance", Kind: StepRelative, Amount: b.DistanceCost},
		{Label: "Surge", Kind: StepRelative, Amount: b.SurgeAmount},
		{Label: "Discount", Kind: StepRelative, Amount: -b.DiscountAmount},
	}
	if reconciled && b.FloorApplied {
		steps = append(steps, Step{Label: "Minimum Fare", Kind: StepRelative, Amount: b.FloorAdjustment})
	}
	return append(steps, Step{Label: "Final Total", Kind: StepTotal, Amount: b.FinalTotal})
}
