package rng

import (
	"testing"

	"github.com/stretchr/testify/suite"
)

type RollerTestSuite struct {
	suite.Suite
}

func TestRollerTestSuite(t *testing.T) {
	suite.Run(t, new(RollerTestSuite))
}

func (s *RollerTestSuite) TestRollStaysInRange() {
	roller := New(&Config{Seed: 99})
	for i := 0; i < 500; i++ {
		roll := roller.Roll(6)
		s.GreaterOrEqual(roll, 1)
		s.LessOrEqual(roll, 6)
	}
	s.Equal(1, roller.Roll(0))
}

func (s *RollerTestSuite) TestSameSeedSameSequence() {
	a := New(&Config{Seed: 42})
	b := New(&Config{Seed: 42})
	for i := 0; i < 20; i++ {
		s.Equal(a.Roll(52), b.Roll(52))
	}
}

func (s *RollerTestSuite) TestShuffleIsPermutation() {
	roller := New(&Config{Seed: 3})
	values := []int{0, 1, 2, 3, 4, 5, 6, 7}
	roller.Shuffle(len(values), func(i, j int) {
		values[i], values[j] = values[j], values[i]
	})
	s.ElementsMatch([]int{0, 1, 2, 3, 4, 5, 6, 7}, values)
}

func (s *RollerTestSuite) TestNilConfigUsesClockSeed() {
	roller := New(nil)
	s.NotNil(roller)
	roll := roller.Roll(10)
	s.GreaterOrEqual(roll, 1)
	s.LessOrEqual(roll, 10)
}
