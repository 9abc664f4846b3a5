package uuid

import (
	"fmt"

	"github.com/google/uuid"
)

//go:generate mockgen -package=mocks -destination=mocks/mock_uuid.go github.com/KirkDiggler/cribbage/internal/common/uuid UUID

// UUID generates match and score record IDs
type UUID interface {
	NewUUID() string
}

// DefaultUUID implements the UUID interface using the uuid package
type DefaultUUID struct{}

func New() *DefaultUUID {
	return &DefaultUUID{}
}

// NewUUID returns a new random UUID
func (d *DefaultUUID) NewUUID() string {
	return uuid.New().String()
}

// Sequential hands out name-based UUIDs derived from a seed and a counter,
// so a seeded match always gets the same IDs
type Sequential struct {
	seed string
	next int
}

func NewSequential(seed string) *Sequential {
	return &Sequential{seed: seed}
}

func (s *Sequential) NewUUID() string {
	s.next++
	return uuid.NewSHA1(uuid.NameSpaceOID, []byte(fmt.Sprintf("%s/%d", s.seed, s.next))).String()
}
