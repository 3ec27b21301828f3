package engine

import (
	"testing"

	dicemock "github.com/KirkDiggler/rpg-toolkit/dice/mock"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"

	"github.com/KirkDiggler/npc-generator/internal/errors"
	"github.com/KirkDiggler/npc-generator/internal/settings"
)

type PlanTestSuite struct {
	suite.Suite
	ctrl       *gomock.Controller
	mockRoller *dicemock.MockRoller
}

func TestPlanSuite(t *testing.T) {
	suite.Run(t, new(PlanTestSuite))
}

func (s *PlanTestSuite) SetupTest() {
	s.ctrl = gomock.NewController(s.T())
	s.mockRoller = dicemock.NewMockRoller(s.ctrl)
}

func (s *PlanTestSuite) TearDownTest() {
	s.ctrl.Finish()
}

func groupsOf(p *plan) []string {
	out := make([]string, 0, len(p.records))
	for _, rec := range p.records {
		out = append(out, rec.group)
	}
	return out
}

func (s *PlanTestSuite) TestNewPlanAppendsUnknownForcedGroups() {
	p := newPlan([]string{"Sex", "Race"}, []GroupValues{
		{Group: "Title", Values: []string{"Sir"}},
		{Group: "Race", Values: []string{"Elf(r)", "Elf", "Orc"}},
	})

	s.Equal([]string{"Sex", "Race", "Title"}, groupsOf(p))
	s.Equal(1, p.records[p.index["Sex"]].slots)

	race := p.records[p.index["Race"]]
	s.Equal([]string{"Elf", "Orc"}, race.forced)
	s.Equal(2, race.slots)
}

func (s *PlanTestSuite) TestWithOptional() {
	p := newPlan([]string{"Sex", "Fear", "Scar"}, nil)

	gomock.InOrder(
		s.mockRoller.EXPECT().Roll(100).Return(51, nil),
		s.mockRoller.EXPECT().Roll(100).Return(50, nil),
	)

	next, err := p.withOptional([]settings.Optional{
		{Group: "Fear", Weight: 50},
		{Group: "Scar", Weight: 50},
		{Group: "Missing", Weight: 10},
	}, s.mockRoller)

	s.Require().NoError(err)
	s.Equal([]string{"Sex", "Scar"}, groupsOf(next))
	s.Equal(1, next.index["Scar"])
	s.Equal([]string{"Sex", "Fear", "Scar"}, groupsOf(p))
}

func (s *PlanTestSuite) TestWithOptionalNeverDropsForcedGroups() {
	p := newPlan([]string{"Fear"}, []GroupValues{{Group: "Fear", Values: []string{"Spiders"}}})

	next, err := p.withOptional([]settings.Optional{{Group: "Fear", Weight: 0}}, s.mockRoller)

	s.Require().NoError(err)
	s.Equal([]string{"Fear"}, groupsOf(next))
}

func (s *PlanTestSuite) TestWithOptionalRollerError() {
	p := newPlan([]string{"Fear"}, nil)
	s.mockRoller.EXPECT().Roll(100).Return(0, errors.Internal("dice jammed"))

	_, err := p.withOptional([]settings.Optional{{Group: "Fear", Weight: 50}}, s.mockRoller)

	s.Error(err)
	s.True(errors.IsInternal(err))
}

func (s *PlanTestSuite) TestWithMultiple() {
	testCases := []struct {
		name      string
		multiple  settings.Multiple
		rolls     []int
		wantSlots int
	}{
		{
			name:      "stops at first failed roll",
			multiple:  settings.Multiple{Group: "Race", Weight: 60, Min: 1, Max: 3},
			rolls:     []int{10, 70},
			wantSlots: 2,
		},
		{
			name:      "capped at max",
			multiple:  settings.Multiple{Group: "Race", Weight: 100, Min: 1, Max: 3},
			rolls:     []int{100, 100},
			wantSlots: 3,
		},
		{
			name:      "min equals max never rolls",
			multiple:  settings.Multiple{Group: "Race", Weight: 50, Min: 2, Max: 2},
			wantSlots: 2,
		},
		{
			name:      "zero weight stays at min",
			multiple:  settings.Multiple{Group: "Race", Weight: 0, Min: 0, Max: 4},
			rolls:     []int{1},
			wantSlots: 0,
		},
	}

	for _, tc := range testCases {
		s.Run(tc.name, func() {
			ctrl := gomock.NewController(s.T())
			defer ctrl.Finish()
			roller := dicemock.NewMockRoller(ctrl)

			calls := make([]any, 0, len(tc.rolls))
			for _, r := range tc.rolls {
				calls = append(calls, roller.EXPECT().Roll(100).Return(r, nil))
			}
			gomock.InOrder(calls...)

			p := newPlan([]string{"Race"}, nil)
			next, err := p.withMultiple([]settings.Multiple{tc.multiple}, roller)

			s.Require().NoError(err)
			s.Equal(tc.wantSlots, next.records[0].slots)
			s.Equal(1, p.records[0].slots)
		})
	}
}

func (s *PlanTestSuite) TestWithMultipleCapsSlots() {
	testCases := []struct {
		name     string
		multiple settings.Multiple
		rolls    int
	}{
		{
			name:     "huge max",
			multiple: settings.Multiple{Group: "Race", Weight: 100, Min: 1, Max: 100000000000},
			rolls:    settings.MaxSlots - 1,
		},
		{
			name:     "huge min",
			multiple: settings.Multiple{Group: "Race", Weight: 0, Min: 99999999999999, Max: 99999999999999},
		},
	}

	for _, tc := range testCases {
		s.Run(tc.name, func() {
			ctrl := gomock.NewController(s.T())
			defer ctrl.Finish()
			roller := dicemock.NewMockRoller(ctrl)
			if tc.rolls > 0 {
				roller.EXPECT().Roll(100).Return(1, nil).Times(tc.rolls)
			}

			p := newPlan([]string{"Race"}, nil)
			next, err := p.withMultiple([]settings.Multiple{tc.multiple}, roller)

			s.Require().NoError(err)
			s.Equal(settings.MaxSlots, next.records[0].slots)
		})
	}
}

func (s *PlanTestSuite) TestWithMultipleKeepsForcedCount() {
	p := newPlan([]string{"Race"}, []GroupValues{{Group: "Race", Values: []string{"Elf", "Orc", "Human"}}})
	s.mockRoller.EXPECT().Roll(100).Return(90, nil)

	next, err := p.withMultiple([]settings.Multiple{{Group: "Race", Weight: 50, Min: 1, Max: 2}}, s.mockRoller)

	s.Require().NoError(err)
	s.Equal(3, next.records[0].slots)
}

func (s *PlanTestSuite) TestWithDeferred() {
	p := newPlan([]string{"Sex", "Race", "Name", "Title"}, nil)

	next := p.withDeferred([]settings.Conditioned{
		{Group: "Title", DependsOn: []string{"Sex"}},
		{Group: "Missing", DependsOn: []string{"Sex"}},
		{Group: "Name", DependsOn: []string{"Sex", "Race"}},
		{Group: "Name", DependsOn: []string{"Race"}},
	})

	s.Require().Len(next.queue, 2)
	s.Equal("Title", next.queue[0].Group)
	s.Equal("Name", next.queue[1].Group)
	s.Equal([]string{"Sex", "Race"}, next.queue[1].DependsOn)
	s.True(next.records[next.index["Name"]].deferred)
	s.False(next.records[next.index["Sex"]].deferred)

	s.Empty(p.queue)
	s.False(p.records[p.index["Name"]].deferred)
}
