package display

import "github.com/KirkDiggler/cribbage/internal/services/game"

// NoOp discards every event
type NoOp struct{}

func (NoOp) Render(*game.Event) {}
