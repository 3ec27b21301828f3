package random_test

import (
	"testing"

	"github.com/KirkDiggler/rpg-toolkit/dice"
	"github.com/stretchr/testify/suite"

	"github.com/KirkDiggler/npc-generator/internal/pkg/random"
)

type RandomTestSuite struct {
	suite.Suite
}

func TestRandomSuite(t *testing.T) {
	suite.Run(t, new(RandomTestSuite))
}

func (s *RandomTestSuite) TestSeededRollerIsDeterministic() {
	a := random.NewSeededRoller(42)
	b := random.NewSeededRoller(42)

	for i := 0; i < 50; i++ {
		va, err := a.Roll(100)
		s.Require().NoError(err)
		vb, err := b.Roll(100)
		s.Require().NoError(err)
		s.Equal(va, vb)
	}
}

func (s *RandomTestSuite) TestRollRange() {
	r := random.NewSeededRoller(7)

	seen := make(map[int]bool)
	for i := 0; i < 2000; i++ {
		v, err := r.Roll(6)
		s.Require().NoError(err)
		s.GreaterOrEqual(v, 1)
		s.LessOrEqual(v, 6)
		seen[v] = true
	}
	s.Len(seen, 6)
}

func (s *RandomTestSuite) TestRollInvalidSize() {
	r := random.NewSeededRoller(1)

	_, err := r.Roll(0)
	s.Error(err)

	_, err = r.RollN(2, -1)
	s.Error(err)

	_, err = r.RollN(-1, 6)
	s.Error(err)
}

func (s *RandomTestSuite) TestRollN() {
	r := random.NewSeededRoller(3)

	values, err := r.RollN(4, 6)
	s.Require().NoError(err)
	s.Len(values, 4)
	for _, v := range values {
		s.GreaterOrEqual(v, 1)
		s.LessOrEqual(v, 6)
	}
}

func (s *RandomTestSuite) TestNewRoller() {
	s.Equal(dice.DefaultRoller, random.NewRoller(0))
	s.IsType(&random.SeededRoller{}, random.NewRoller(9))
}

func (s *RandomTestSuite) TestNewSeed() {
	seed, err := random.NewSeed()
	s.NoError(err)

	other, err := random.NewSeed()
	s.NoError(err)
	s.NotEqual(seed, other)
}
