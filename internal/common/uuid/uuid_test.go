package uuid

import (
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/suite"
)

type UUIDTestSuite struct {
	suite.Suite
}

func TestUUIDTestSuite(t *testing.T) {
	suite.Run(t, new(UUIDTestSuite))
}

func (s *UUIDTestSuite) TestDefaultUUIDIsValidAndUnique() {
	gen := New()

	a := gen.NewUUID()
	b := gen.NewUUID()

	_, err := uuid.Parse(a)
	s.NoError(err)
	s.NotEqual(a, b)
}

func (s *UUIDTestSuite) TestSequentialIsReproducible() {
	first := NewSequential("seed-42")
	second := NewSequential("seed-42")

	a1, a2 := first.NewUUID(), first.NewUUID()
	b1, b2 := second.NewUUID(), second.NewUUID()

	s.Equal(a1, b1)
	s.Equal(a2, b2)
	s.NotEqual(a1, a2)

	_, err := uuid.Parse(a1)
	s.NoError(err)

	other := NewSequential("seed-43")
	s.NotEqual(a1, other.NewUUID())
}
