// ABOUTME: Named streak tiers for display.
// ABOUTME: Purely cosmetic; no effect on streak computation.
package streak

// Tier is a display label for a streak length.
type Tier struct {
	Days  int
	Label string
	Color string // hex, for UIs that render color
}

// Tiers in descending day order. TierFor picks the first tier the
// streak reaches, so the zero tier always matches.
var Tiers = []Tier{
	{Days: 1825, Label: "GIGA CHAD PRO MAX", Color: "#10b981"},
	{Days: 1095, Label: "TITÃ", Color: "#ec4899"},
	{Days: 730, Label: "IMORTAL", Color: "#06b6d4"},
	{Days: 365, Label: "LENDÁRIO", Color: "#fbbf24"},
	{Days: 180, Label: "SUPERNOVA", Color: "#3b82f6"},
	{Days: 90, Label: "INFERNAL", Color: "#8b5cf6"},
	{Days: 30, Label: "INCÊNDIO", Color: "#ef4444"},
	{Days: 7, Label: "EM CHAMAS", Color: "#f97316"},
	{Days: 0, Label: "FAGULHA", Color: "#a1a1aa"},
}

// TierFor returns the tier for a streak length.
func TierFor(days int) Tier {
	for _, t := range Tiers {
		if days >= t.Days {
			return t
		}
	}
	return Tiers[len(Tiers)-1]
}
