package model

// PlanItem is the shared view of one game inside a plan: either a
// persisted session entry or a position in the ephemeral cart. Printing
// and duration aggregation work on this shape so the pre-checkout preview
// and the saved session go through the same code.
type PlanItem struct {
	Game       *Game
	Position   int
	Multiplier float64
	Notes      string
}

// PlanFromEntries builds plan items from persisted session entries. The
// caller supplies the entries ordered by position.
func PlanFromEntries(entries []SessionEntry) []PlanItem {
	items := make([]PlanItem, 0, len(entries))
	for i := range entries {
		items = append(items, PlanItem{
			Game:       entries[i].Game,
			Position:   entries[i].Position,
			Multiplier: entries[i].Multiplier,
			Notes:      entries[i].Notes,
		})
	}
	return items
}

// PlanFromGames builds plan items from cart games in cart order, with
// positions 1..n and the default multiplier.
func PlanFromGames(games []*Game) []PlanItem {
	items := make([]PlanItem, 0, len(games))
	for i, g := range games {
		items = append(items, PlanItem{
			Game:       g,
			Position:   i + 1,
			Multiplier: 1.0,
		})
	}
	return items
}

// PlanTotalMinutes sums duration × multiplier over all items. An empty
// plan totals 0.
func PlanTotalMinutes(items []PlanItem) float64 {
	var total float64
	for _, item := range items {
		if item.Game == nil {
			continue
		}
		total += float64(item.Game.BaseMinutes()) * item.Multiplier
	}
	return total
}
