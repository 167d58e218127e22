package game_test

import (
	"testing"

	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"

	"github.com/lixenwraith/not-rogue/components"
	"github.com/lixenwraith/not-rogue/constants"
	"github.com/lixenwraith/not-rogue/core"
	mockcore "github.com/lixenwraith/not-rogue/core/mock"
	"github.com/lixenwraith/not-rogue/game"
	"github.com/lixenwraith/not-rogue/input"
)

type SurfaceTestSuite struct {
	suite.Suite
	ctrl    *gomock.Controller
	surface *mockcore.MockSurface
	game    *game.Game
}

func (s *SurfaceTestSuite) SetupTest() {
	s.ctrl = gomock.NewController(s.T())
	s.surface = mockcore.NewMockSurface(s.ctrl)

	g, err := game.New(&game.Config{Surface: s.surface})
	s.Require().NoError(err)
	s.game = g
}

func (s *SurfaceTestSuite) TearDownTest() {
	s.ctrl.Finish()
}

func (s *SurfaceTestSuite) TestResetClearsScreen() {
	s.surface.EXPECT().ClearScreen().Times(1)
	s.game.Key(input.Char(constants.KeyReset))
}

func (s *SurfaceTestSuite) TestQuitClearsScreen() {
	s.surface.EXPECT().ClearScreen().Times(2)
	s.game.Key(input.Char(constants.KeyReset))
	s.game.Key(input.Char(constants.KeyQuit))
}

func (s *SurfaceTestSuite) TestMoveClearsPreviousCell() {
	s.surface.EXPECT().ClearScreen()
	s.game.Key(input.Char(constants.KeyReset))

	p := s.game.Player()
	s.surface.EXPECT().Clear(p.X, p.Y).Times(1)
	s.game.Key(input.Char('s'))
}

func (s *SurfaceTestSuite) TestBlockedMoveTouchesNothing() {
	s.surface.EXPECT().ClearScreen()
	s.game.Key(input.Char(constants.KeyReset))
	p := s.game.Player()
	s.game.Walls().Add(p.Y, p.X+1)

	// No further expectations: any surface call fails the test
	s.game.Key(input.Char('d'))
	s.Equal(p, s.game.Player())
}

func (s *SurfaceTestSuite) TestKillClearsEnemyCell() {
	s.surface.EXPECT().ClearScreen()
	s.game.Key(input.Char(constants.KeyReset))

	p := s.game.Player()
	slot, _ := s.game.Enemies().Insert(components.GenerateStats(components.ArchetypeSkeleton, p.X, p.Y-1))
	s.game.Enemies().Get(slot).CurrentHealth = 1

	s.surface.EXPECT().Clear(p.X, p.Y-1).Times(1)
	s.game.Key(input.Raw(input.RawUp))
	s.Nil(s.game.Enemies().Get(slot))
}

func (s *SurfaceTestSuite) TestTitleTickPlotsOnly() {
	s.surface.EXPECT().
		Plot(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any(), core.ColorBlack).
		MinTimes(len(constants.TitleText))
	s.game.Tick()
}

func TestSurfaceTestSuite(t *testing.T) {
	suite.Run(t, new(SurfaceTestSuite))
}
