package game

import (
	"strings"

	"github.com/shopspring/decimal"
)

// Library is the ordered set of games for the current session. Order is
// insertion order and only matters for display numbering.
type Library struct {
	games []Game
}

// NewLibrary returns a Library holding a copy of games.
func NewLibrary(games []Game) *Library {
	l := &Library{games: make([]Game, len(games))}
	copy(l.games, games)
	return l
}

// Len returns the number of games.
func (l *Library) Len() int { return len(l.games) }

// At returns the game at position i.
func (l *Library) At(i int) Game { return l.games[i] }

// Games returns a copy of the games in order. The copy is safe to mutate.
func (l *Library) Games() []Game {
	out := make([]Game, len(l.games))
	copy(out, l.games)
	return out
}

// Add appends g to the end of the list.
func (l *Library) Add(g Game) {
	l.games = append(l.games, g)
}

// Find returns the position of the first game whose title matches title,
// ignoring case.
func (l *Library) Find(title string) (int, bool) {
	return FindIndex(l.games, title)
}

// Remove deletes the first game matching title and returns it. The order of
// the remaining games is preserved. A miss leaves the list unchanged.
func (l *Library) Remove(title string) (Game, bool) {
	i, ok := l.Find(title)
	if !ok {
		return Game{}, false
	}
	removed := l.games[i]
	l.games = append(l.games[:i], l.games[i+1:]...)
	return removed, true
}

// SetPrice replaces the price of the game at i. Negative prices are rejected
// with ErrNegativePrice and the old price is kept.
func (l *Library) SetPrice(i int, price decimal.Decimal) error {
	if price.IsNegative() {
		return ErrNegativePrice
	}
	l.games[i].Price = price
	return nil
}

// SetOwned sets the ownership flag of the game at i.
func (l *Library) SetOwned(i int, owned bool) {
	l.games[i].Owned = owned
}

// FindIndex returns the position of the first game in games whose title
// equals title case-insensitively.
func FindIndex(games []Game, title string) (int, bool) {
	for i, g := range games {
		if strings.EqualFold(g.Title, title) {
			return i, true
		}
	}
	return -1, false
}
