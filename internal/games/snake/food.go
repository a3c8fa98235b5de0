package snake

import (
	"image/color"
	"math/rand"
	"time"

	"github.com/vovakirdan/sneaky/internal/config"
	"github.com/vovakirdan/sneaky/internal/core"
)

// FoodKind identifies one of the three food items.
type FoodKind int

const (
	FoodRegular FoodKind = iota
	FoodBonus
	FoodPoison
)

func (k FoodKind) String() string {
	switch k {
	case FoodRegular:
		return "regular"
	case FoodBonus:
		return "bonus"
	case FoodPoison:
		return "poison"
	default:
		return "unknown"
	}
}

// Color returns the fill color used when the item is drawn.
func (k FoodKind) Color() color.RGBA {
	switch k {
	case FoodBonus:
		return core.ColorBlue
	case FoodPoison:
		return core.ColorPurple
	default:
		return core.ColorRed
	}
}

// Food is a single food item on the grid.
// Regular food is always active; specials sit off-grid while inactive.
type Food struct {
	Kind        FoodKind
	Pos         core.Point
	Active      bool
	ActivatedAt time.Time
	Rule        config.FoodRule
}

func newFood(kind FoodKind, rule config.FoodRule, cell int) Food {
	f := Food{Kind: kind, Rule: rule}
	f.deactivate(cell)
	return f
}

// place moves the item to a uniformly random grid-aligned cell.
// The snake body is not excluded. A canvas smaller than one cell has a
// single cell at the origin.
func (f *Food) place(rng *rand.Rand, w, h, cell int) {
	f.Pos = core.Point{
		X: rng.Intn(max(w/cell, 1)) * cell,
		Y: rng.Intn(max(h/cell, 1)) * cell,
	}
}

// activate places the item and starts its lifetime.
func (f *Food) activate(rng *rand.Rand, w, h, cell int, now time.Time) {
	f.place(rng, w, h, cell)
	f.Active = true
	f.ActivatedAt = now
}

// deactivate hides the item at (-cell, -cell).
func (f *Food) deactivate(cell int) {
	f.Active = false
	f.Pos = core.Point{X: -cell, Y: -cell}
}

// expired reports whether the item's lifetime has elapsed at now.
func (f *Food) expired(now time.Time) bool {
	ttl := f.Rule.TTL()
	return f.Active && ttl > 0 && now.Sub(f.ActivatedAt) >= ttl
}

// due reports whether eating the n-th regular food should activate this item.
func (f *Food) due(n int) bool {
	return f.Rule.Every > 0 && n%f.Rule.Every == 0 && !f.Active
}
