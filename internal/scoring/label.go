package scoring

// Qualitative score buckets
const (
	LabelExcellent = "Excellent"
	LabelGood      = "Bon"
	LabelModerate  = "Modéré"
	LabelWeak      = "Faible"
)

// SearchLabel buckets a general search score
func SearchLabel(score int) string {
	switch {
	case score >= 80:
		return LabelExcellent
	case score >= 50:
		return LabelGood
	default:
		return LabelWeak
	}
}

// PVLabel buckets a photovoltaic suitability score. It has an extra
// "Modéré" tier compared to SearchLabel.
func PVLabel(score int) string {
	switch {
	case score >= 80:
		return LabelExcellent
	case score >= 50:
		return LabelGood
	case score >= 30:
		return LabelModerate
	default:
		return LabelWeak
	}
}
