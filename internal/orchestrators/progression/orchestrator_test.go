package progression_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/suite"

	"github.com/dfox288/ledger-of-heroes-backend-sub002/internal/catalog/srd"
	"github.com/dfox288/ledger-of-heroes-backend-sub002/internal/entities"
	"github.com/dfox288/ledger-of-heroes-backend-sub002/internal/errors"
	"github.com/dfox288/ledger-of-heroes-backend-sub002/internal/orchestrators/progression"
	"github.com/dfox288/ledger-of-heroes-backend-sub002/internal/pkg/charlock"
	characterrepo "github.com/dfox288/ledger-of-heroes-backend-sub002/internal/repositories/character"
	"github.com/dfox288/ledger-of-heroes-backend-sub002/internal/testutils"
)

type ProgressionTestSuite struct {
	suite.Suite
	ctx     context.Context
	repo    characterrepo.Repository
	service progression.Service
	cleanup func()
}

func TestProgressionSuite(t *testing.T) {
	suite.Run(t, new(ProgressionTestSuite))
}

func (s *ProgressionTestSuite) SetupTest() {
	client, cleanup := testutils.CreateTestRedisClient(s.T())
	s.cleanup = cleanup
	s.ctx = context.Background()

	repo, err := characterrepo.NewRedis(&characterrepo.RedisConfig{Client: client})
	s.Require().NoError(err)
	s.repo = repo

	service, err := progression.NewOrchestrator(&progression.Config{
		CharacterRepo: repo,
		Catalog:       srd.New(),
		Locker:        charlock.New(),
	})
	s.Require().NoError(err)
	s.service = service
}

func (s *ProgressionTestSuite) TearDownTest() {
	s.cleanup()
}

func (s *ProgressionTestSuite) createCharacter(char *entities.Character) {
	_, err := s.repo.Create(s.ctx, characterrepo.CreateInput{Character: char})
	s.Require().NoError(err)
}

func (s *ProgressionTestSuite) TestLevelUp_FighterHPGain() {
	s.createCharacter(testutils.Fighter("char_1", "player_1", 1))

	out, err := s.service.LevelUp(s.ctx, &progression.LevelUpInput{CharacterID: "char_1"})
	s.Require().NoError(err)

	s.Equal(1, out.PreviousLevel)
	s.Equal(2, out.NewLevel)
	// d10 with CON 17 (16 + human +1): floor(10/2)+1+3 = 9.
	s.Equal(9, out.HPIncrease)
	s.Equal(22, out.NewMaxHP)
	s.Equal(22, out.Character.CurrentHP)
}

func (s *ProgressionTestSuite) TestLevelUp_GrantsFeatures() {
	s.createCharacter(testutils.Fighter("char_1", "player_1", 1))

	out, err := s.service.LevelUp(s.ctx, &progression.LevelUpInput{CharacterID: "char_1"})
	s.Require().NoError(err)

	s.Require().Len(out.FeaturesGained, 1)
	s.Equal("action-surge", out.FeaturesGained[0].Slug)

	grant := out.Character.Feature("action-surge")
	s.Require().NotNil(grant)
	s.Require().NotNil(grant.MaxUses)
	s.Equal(1, *grant.MaxUses)
	s.Equal(1, grant.UsesRemaining)
	s.Equal("short_rest", grant.ResetsOn)
}

func (s *ProgressionTestSuite) TestLevelUp_ASIPending() {
	s.createCharacter(testutils.Fighter("char_1", "player_1", 3))

	out, err := s.service.LevelUp(s.ctx, &progression.LevelUpInput{CharacterID: "char_1"})
	s.Require().NoError(err)

	s.Equal(4, out.NewLevel)
	s.True(out.ASIPending)
	s.Equal(1, out.Character.AsiChoicesRemaining)

	// Level 5 is not on the fighter schedule.
	out, err = s.service.LevelUp(s.ctx, &progression.LevelUpInput{CharacterID: "char_1"})
	s.Require().NoError(err)
	s.False(out.ASIPending)
	s.Equal(1, out.Character.AsiChoicesRemaining)
}

func (s *ProgressionTestSuite) TestLevelUp_WizardSlots() {
	s.createCharacter(testutils.Wizard("char_1", "player_1", 2))

	out, err := s.service.LevelUp(s.ctx, &progression.LevelUpInput{CharacterID: "char_1"})
	s.Require().NoError(err)

	// Wizard 3: 4 first-level, 2 second-level.
	s.Require().Len(out.SpellSlots, 2)
	s.Equal(4, out.SpellSlots[0].Total)
	s.Equal(2, out.SpellSlots[1].Total)
}

func (s *ProgressionTestSuite) TestLevelUp_PreservesSpentSlots() {
	char := testutils.Wizard("char_1", "player_1", 2)
	char.Slots[0].Used = 2
	s.createCharacter(char)

	out, err := s.service.LevelUp(s.ctx, &progression.LevelUpInput{CharacterID: "char_1"})
	s.Require().NoError(err)

	s.Equal(2, out.SpellSlots[0].Spent)
	s.Equal(2, out.SpellSlots[0].Available)
}

func (s *ProgressionTestSuite) TestLevelUp_Multiclass() {
	s.createCharacter(testutils.Fighter("char_1", "player_1", 3))

	out, err := s.service.LevelUp(s.ctx, &progression.LevelUpInput{
		CharacterID: "char_1",
		ClassSlug:   "wizard",
	})
	s.Require().NoError(err)

	s.Equal("wizard", out.ClassSlug)
	s.Equal(0, out.PreviousLevel)
	s.Equal(1, out.NewLevel)
	s.Equal(4, out.Character.TotalLevel())
	// A new wizard level brings the shared slot table online.
	s.Require().Len(out.SpellSlots, 1)
	s.Equal(2, out.SpellSlots[0].Total)
	// d6 average, not full die, since this is not the first character level.
	s.Equal(7, out.HPIncrease)
}

func (s *ProgressionTestSuite) TestLevelUp_UnknownClass() {
	s.createCharacter(testutils.Fighter("char_1", "player_1", 3))

	_, err := s.service.LevelUp(s.ctx, &progression.LevelUpInput{
		CharacterID: "char_1",
		ClassSlug:   "jester",
	})
	s.True(errors.IsNotFound(err))
}

func (s *ProgressionTestSuite) TestLevelUp_MaxLevel() {
	s.createCharacter(testutils.Fighter("char_1", "player_1", 20))

	_, err := s.service.LevelUp(s.ctx, &progression.LevelUpInput{CharacterID: "char_1"})
	s.Require().Error(err)
	s.True(errors.IsFailedPrecondition(err))
	s.Equal(progression.MsgMaxLevel, errors.GetMessage(err))
}

func (s *ProgressionTestSuite) TestLevelUp_IncompleteCharacter() {
	char := testutils.Fighter("char_1", "player_1", 1)
	char.AbilityScores.Wisdom = nil
	s.createCharacter(char)

	_, err := s.service.LevelUp(s.ctx, &progression.LevelUpInput{CharacterID: "char_1"})
	s.Require().Error(err)
	s.True(errors.IsFailedPrecondition(err))
	s.Equal(progression.MsgIncomplete, errors.GetMessage(err))
}

func (s *ProgressionTestSuite) TestLevelUp_NotFound() {
	_, err := s.service.LevelUp(s.ctx, &progression.LevelUpInput{CharacterID: "char_missing"})
	s.True(errors.IsNotFound(err))
}

func (s *ProgressionTestSuite) TestAddXP_Progress() {
	s.createCharacter(testutils.Fighter("char_1", "player_1", 1))

	out, err := s.service.AddXP(s.ctx, &progression.AddXPInput{
		CharacterID: "char_1",
		Amount:      150,
	})
	s.Require().NoError(err)

	s.Equal(150, out.ExperiencePoints)
	s.Equal(1, out.XPLevel)
	s.Equal(300, out.NextLevelXP)
	s.Equal(150, out.XPToNextLevel)
	s.Equal(50, out.XPProgressPercent)
	s.False(out.LeveledUp)
}

func (s *ProgressionTestSuite) TestAddXP_ZeroIsProgressQuery() {
	char := testutils.Fighter("char_1", "player_1", 1)
	char.ExperiencePoints = 450
	s.createCharacter(char)

	out, err := s.service.AddXP(s.ctx, &progression.AddXPInput{CharacterID: "char_1"})
	s.Require().NoError(err)
	s.Equal(450, out.ExperiencePoints)
	s.Equal(2, out.XPLevel)
}

func (s *ProgressionTestSuite) TestAddXP_NegativeRejected() {
	s.createCharacter(testutils.Fighter("char_1", "player_1", 1))

	_, err := s.service.AddXP(s.ctx, &progression.AddXPInput{
		CharacterID: "char_1",
		Amount:      -50,
	})
	s.True(errors.IsInvalidArgument(err))
}

func (s *ProgressionTestSuite) TestAddXP_AutoLevel() {
	s.createCharacter(testutils.Fighter("char_1", "player_1", 1))

	// 900 XP entitles a character to level 3.
	out, err := s.service.AddXP(s.ctx, &progression.AddXPInput{
		CharacterID: "char_1",
		Amount:      900,
		AutoLevel:   true,
	})
	s.Require().NoError(err)

	s.True(out.LeveledUp)
	s.Equal(3, out.XPLevel)
	s.Equal(3, out.Character.TotalLevel())
}

func (s *ProgressionTestSuite) TestAddXP_MilestoneNeverAutoLevels() {
	char := testutils.Fighter("char_1", "player_1", 1)
	char.LevelingMode = entities.LevelingMilestone
	s.createCharacter(char)

	out, err := s.service.AddXP(s.ctx, &progression.AddXPInput{
		CharacterID: "char_1",
		Amount:      900,
		AutoLevel:   true,
	})
	s.Require().NoError(err)

	s.False(out.LeveledUp)
	s.Equal(1, out.Character.TotalLevel())
	s.Equal(3, out.XPLevel)
}

func (s *ProgressionTestSuite) TestAddXP_NoAutoLevelWithoutFlag() {
	s.createCharacter(testutils.Fighter("char_1", "player_1", 1))

	out, err := s.service.AddXP(s.ctx, &progression.AddXPInput{
		CharacterID: "char_1",
		Amount:      900,
	})
	s.Require().NoError(err)
	s.False(out.LeveledUp)
	s.Equal(1, out.Character.TotalLevel())
}

func (s *ProgressionTestSuite) TestLevelUp_NeverExceedsTwenty() {
	s.createCharacter(testutils.Fighter("char_1", "player_1", 19))

	out, err := s.service.LevelUp(s.ctx, &progression.LevelUpInput{CharacterID: "char_1"})
	s.Require().NoError(err)
	s.Equal(20, out.NewLevel)

	_, err = s.service.LevelUp(s.ctx, &progression.LevelUpInput{CharacterID: "char_1"})
	s.True(errors.IsFailedPrecondition(err))
}
