package character_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/suite"

	"github.com/dfox288/ledger-of-heroes-backend-sub002/internal/catalog/srd"
	"github.com/dfox288/ledger-of-heroes-backend-sub002/internal/entities"
	"github.com/dfox288/ledger-of-heroes-backend-sub002/internal/errors"
	"github.com/dfox288/ledger-of-heroes-backend-sub002/internal/orchestrators/character"
	"github.com/dfox288/ledger-of-heroes-backend-sub002/internal/pkg/charlock"
	"github.com/dfox288/ledger-of-heroes-backend-sub002/internal/pkg/idgen"
	characterrepo "github.com/dfox288/ledger-of-heroes-backend-sub002/internal/repositories/character"
	"github.com/dfox288/ledger-of-heroes-backend-sub002/internal/testutils"
)

type CharacterTestSuite struct {
	suite.Suite
	ctx     context.Context
	repo    characterrepo.Repository
	service character.Service
	cleanup func()
}

func TestCharacterSuite(t *testing.T) {
	suite.Run(t, new(CharacterTestSuite))
}

func (s *CharacterTestSuite) SetupTest() {
	client, cleanup := testutils.CreateTestRedisClient(s.T())
	s.cleanup = cleanup
	s.ctx = context.Background()

	repo, err := characterrepo.NewRedis(&characterrepo.RedisConfig{Client: client})
	s.Require().NoError(err)
	s.repo = repo

	service, err := character.NewOrchestrator(&character.Config{
		CharacterRepo: repo,
		Catalog:       srd.New(),
		Locker:        charlock.New(),
		IDGenerator:   idgen.NewSequential("char"),
	})
	s.Require().NoError(err)
	s.service = service
}

func (s *CharacterTestSuite) TearDownTest() {
	s.cleanup()
}

func (s *CharacterTestSuite) createCharacter(char *entities.Character) {
	_, err := s.repo.Create(s.ctx, characterrepo.CreateInput{Character: char})
	s.Require().NoError(err)
}

func (s *CharacterTestSuite) TestCreate_CalculatedHP() {
	out, err := s.service.Create(s.ctx, &character.CreateInput{
		PlayerID:  "player_1",
		Name:      "Bruenor",
		RaceSlug:  "hill-dwarf",
		ClassSlug: "fighter",
		AbilityScores: entities.AbilityScores{
			Strength:     testutils.IntPtr(16),
			Dexterity:    testutils.IntPtr(12),
			Constitution: testutils.IntPtr(14),
			Intelligence: testutils.IntPtr(10),
			Wisdom:       testutils.IntPtr(13),
			Charisma:     testutils.IntPtr(8),
		},
	})
	s.Require().NoError(err)

	char := out.Character
	s.NotEmpty(char.ID)
	s.Equal(entities.HPModeCalculated, char.HPMode)
	s.Equal(entities.LevelingXP, char.LevelingMode)
	// d10 + CON mod 3 (14 base, +2 hill dwarf) + 1 dwarven toughness.
	s.Equal(14, char.MaxHP)
	s.Equal(14, char.CurrentHP)
	s.Equal(1, char.TotalLevel())
}

func (s *CharacterTestSuite) TestCreate_MissingName() {
	_, err := s.service.Create(s.ctx, &character.CreateInput{PlayerID: "player_1"})
	s.True(errors.IsInvalidArgument(err))
}

func (s *CharacterTestSuite) TestCreate_UnknownRace() {
	_, err := s.service.Create(s.ctx, &character.CreateInput{
		PlayerID: "player_1",
		Name:     "Nobody",
		RaceSlug: "warforged",
	})
	s.True(errors.IsNotFound(err))
}

func (s *CharacterTestSuite) TestGetStats() {
	s.createCharacter(testutils.Wizard("char_1", "player_1", 3))

	out, err := s.service.GetStats(s.ctx, &character.GetStatsInput{CharacterID: "char_1"})
	s.Require().NoError(err)

	s.Equal(3, out.Stats.TotalLevel)
	s.Equal(2, out.Stats.ProficiencyBonus)
	// Wizard 3 with INT 16 prepares level + 3 spells.
	s.Require().NotNil(out.Stats.PreparationLimit)
	s.Equal(6, *out.Stats.PreparationLimit)
}

func (s *CharacterTestSuite) TestUpdateHitPoints_Damage() {
	s.createCharacter(testutils.Fighter("char_1", "player_1", 3))

	out, err := s.service.UpdateHitPoints(s.ctx, &character.UpdateHitPointsInput{
		CharacterID: "char_1",
		CurrentHP:   testutils.IntPtr(10),
	})
	s.Require().NoError(err)
	s.Equal(10, out.Character.CurrentHP)
}

func (s *CharacterTestSuite) TestUpdateHitPoints_ClampsToMax() {
	s.createCharacter(testutils.Fighter("char_1", "player_1", 1))

	out, err := s.service.UpdateHitPoints(s.ctx, &character.UpdateHitPointsInput{
		CharacterID: "char_1",
		CurrentHP:   testutils.IntPtr(999),
	})
	s.Require().NoError(err)
	s.Equal(out.Character.MaxHP, out.Character.CurrentHP)
}

func (s *CharacterTestSuite) TestUpdateHitPoints_MaxHPGuard() {
	s.createCharacter(testutils.Fighter("char_1", "player_1", 1))

	_, err := s.service.UpdateHitPoints(s.ctx, &character.UpdateHitPointsInput{
		CharacterID: "char_1",
		MaxHP:       testutils.IntPtr(30),
	})
	s.True(errors.IsInvalidArgument(err))
}

func (s *CharacterTestSuite) TestUpdateHitPoints_MaxHPWithModeSwitch() {
	s.createCharacter(testutils.Fighter("char_1", "player_1", 1))

	mode := entities.HPModeManual
	out, err := s.service.UpdateHitPoints(s.ctx, &character.UpdateHitPointsInput{
		CharacterID: "char_1",
		MaxHP:       testutils.IntPtr(30),
		HPMode:      &mode,
	})
	s.Require().NoError(err)
	s.Equal(30, out.Character.MaxHP)
	s.Equal(entities.HPModeManual, out.Character.HPMode)
}

func (s *CharacterTestSuite) TestUpdateHitPoints_HealingClearsDeathSaves() {
	char := testutils.Fighter("char_1", "player_1", 3)
	char.CurrentHP = 0
	char.DeathSaves = entities.DeathSaves{Successes: 1, Failures: 2}
	s.createCharacter(char)

	out, err := s.service.UpdateHitPoints(s.ctx, &character.UpdateHitPointsInput{
		CharacterID: "char_1",
		CurrentHP:   testutils.IntPtr(5),
	})
	s.Require().NoError(err)
	s.Equal(entities.DeathSaves{}, out.Character.DeathSaves)
}

func (s *CharacterTestSuite) TestRecordDeathSave_ThreeFailuresDead() {
	char := testutils.Fighter("char_1", "player_1", 3)
	char.CurrentHP = 0
	char.DeathSaves = entities.DeathSaves{Failures: 2}
	s.createCharacter(char)

	out, err := s.service.RecordDeathSave(s.ctx, &character.RecordDeathSaveInput{
		CharacterID: "char_1",
		Result:      character.DeathSaveFailure,
	})
	s.Require().NoError(err)
	s.True(out.Dead)
	s.Equal(3, out.Failures)

	_, err = s.service.RecordDeathSave(s.ctx, &character.RecordDeathSaveInput{
		CharacterID: "char_1",
		Result:      character.DeathSaveSuccess,
	})
	s.True(errors.IsFailedPrecondition(err))
}

func (s *CharacterTestSuite) TestRecordDeathSave_ThreeSuccessesStabilize() {
	char := testutils.Fighter("char_1", "player_1", 3)
	char.CurrentHP = 0
	char.DeathSaves = entities.DeathSaves{Successes: 2, Failures: 1}
	s.createCharacter(char)

	out, err := s.service.RecordDeathSave(s.ctx, &character.RecordDeathSaveInput{
		CharacterID: "char_1",
		Result:      character.DeathSaveSuccess,
	})
	s.Require().NoError(err)
	s.True(out.Stabilized)
	s.False(out.Dead)
	s.Equal(entities.DeathSaves{}, out.Character.DeathSaves)
}

func (s *CharacterTestSuite) TestRecordDeathSave_NotDown() {
	s.createCharacter(testutils.Fighter("char_1", "player_1", 3))

	_, err := s.service.RecordDeathSave(s.ctx, &character.RecordDeathSaveInput{
		CharacterID: "char_1",
		Result:      character.DeathSaveFailure,
	})
	s.True(errors.IsFailedPrecondition(err))
}

func (s *CharacterTestSuite) TestRevive_Defaults() {
	char := testutils.Fighter("char_1", "player_1", 3)
	char.CurrentHP = 0
	char.Exhaustion = 2
	char.DeathSaves = entities.DeathSaves{Successes: 1, Failures: 2}
	s.createCharacter(char)

	out, err := s.service.Revive(s.ctx, &character.ReviveInput{CharacterID: "char_1"})
	s.Require().NoError(err)

	s.Equal(1, out.Character.CurrentHP)
	s.Equal(0, out.Character.Exhaustion)
	s.Equal(entities.DeathSaves{}, out.Character.DeathSaves)
}

func (s *CharacterTestSuite) TestRevive_KeepExhaustion() {
	char := testutils.Fighter("char_1", "player_1", 3)
	char.CurrentHP = 0
	char.Exhaustion = 2
	s.createCharacter(char)

	keep := false
	out, err := s.service.Revive(s.ctx, &character.ReviveInput{
		CharacterID:     "char_1",
		HitPoints:       12,
		ClearExhaustion: &keep,
	})
	s.Require().NoError(err)
	s.Equal(12, out.Character.CurrentHP)
	s.Equal(2, out.Character.Exhaustion)
}

func (s *CharacterTestSuite) TestRevive_ClampedToMax() {
	char := testutils.Fighter("char_1", "player_1", 1)
	char.CurrentHP = 0
	s.createCharacter(char)

	out, err := s.service.Revive(s.ctx, &character.ReviveInput{
		CharacterID: "char_1",
		HitPoints:   999,
	})
	s.Require().NoError(err)
	s.Equal(out.Character.MaxHP, out.Character.CurrentHP)
}

func (s *CharacterTestSuite) TestRevive_NotDown() {
	s.createCharacter(testutils.Fighter("char_1", "player_1", 3))

	_, err := s.service.Revive(s.ctx, &character.ReviveInput{CharacterID: "char_1"})
	s.True(errors.IsFailedPrecondition(err))
}

func (s *CharacterTestSuite) TestDeleteAndList() {
	s.createCharacter(testutils.Fighter("char_1", "player_1", 1))
	s.createCharacter(testutils.Wizard("char_2", "player_1", 1))

	_, err := s.service.Delete(s.ctx, &character.DeleteInput{CharacterID: "char_1"})
	s.Require().NoError(err)

	out, err := s.service.List(s.ctx, &character.ListInput{PlayerID: "player_1"})
	s.Require().NoError(err)
	s.Require().Len(out.Characters, 1)
	s.Equal("char_2", out.Characters[0].ID)
}
