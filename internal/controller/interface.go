package controller

//go:generate mockgen -package=mocks -destination=mocks/mock_controller.go github.com/KirkDiggler/cribbage/internal/controller Controller

import (
	"github.com/KirkDiggler/cribbage/internal/cards"
)

// Controller chooses which card a player gives up, for discards, cuts and plays
type Controller interface {
	// GetCardIndex returns an index into available, or false when there is
	// no further choice to make
	GetCardIndex(available []cards.Card) (int, bool)
}
