package game

import "github.com/shopspring/decimal"

// Affordability is the outcome of comparing the wishlist total to a budget.
type Affordability int

const (
	// Affordable means the whole wishlist fits in a positive budget.
	Affordable Affordability = iota
	// NotAffordable means the wishlist exceeds a positive budget.
	NotAffordable
	// NoBudget means the budget is zero or negative.
	NoBudget
)

// Message returns the user-facing sentence for the outcome.
func (a Affordability) Message() string {
	switch a {
	case Affordable:
		return "Good news! You can afford all wishlist games within your budget."
	case NotAffordable:
		return "You cannot afford all wishlist games yet."
	default:
		return "Budget is zero or negative, so you cannot buy any games right now."
	}
}

// TotalCost sums the price of every game, or only of owned games when
// ownedOnly is true. An empty list totals zero.
func TotalCost(games []Game, ownedOnly bool) decimal.Decimal {
	total := decimal.Zero
	for _, g := range games {
		if ownedOnly && !g.Owned {
			continue
		}
		total = total.Add(g.Price)
	}
	return total
}

// WishlistTotal sums the price of games not yet owned.
func WishlistTotal(games []Game) decimal.Decimal {
	total := decimal.Zero
	for _, g := range games {
		if !g.Owned {
			total = total.Add(g.Price)
		}
	}
	return total
}

// Classify compares a wishlist total against a budget.
func Classify(wishlist, budget decimal.Decimal) Affordability {
	if !budget.IsPositive() {
		return NoBudget
	}
	if wishlist.LessThanOrEqual(budget) {
		return Affordable
	}
	return NotAffordable
}
