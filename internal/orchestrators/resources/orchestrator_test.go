package resources_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/suite"

	"github.com/dfox288/ledger-of-heroes-backend-sub002/internal/catalog/srd"
	"github.com/dfox288/ledger-of-heroes-backend-sub002/internal/entities"
	"github.com/dfox288/ledger-of-heroes-backend-sub002/internal/errors"
	"github.com/dfox288/ledger-of-heroes-backend-sub002/internal/orchestrators/resources"
	"github.com/dfox288/ledger-of-heroes-backend-sub002/internal/pkg/charlock"
	characterrepo "github.com/dfox288/ledger-of-heroes-backend-sub002/internal/repositories/character"
	"github.com/dfox288/ledger-of-heroes-backend-sub002/internal/testutils"
)

type ResourcesTestSuite struct {
	suite.Suite
	ctx     context.Context
	repo    characterrepo.Repository
	service resources.Service
	cleanup func()
}

func TestResourcesSuite(t *testing.T) {
	suite.Run(t, new(ResourcesTestSuite))
}

func (s *ResourcesTestSuite) SetupTest() {
	client, cleanup := testutils.CreateTestRedisClient(s.T())
	s.cleanup = cleanup
	s.ctx = context.Background()

	repo, err := characterrepo.NewRedis(&characterrepo.RedisConfig{Client: client})
	s.Require().NoError(err)
	s.repo = repo

	service, err := resources.NewOrchestrator(&resources.Config{
		CharacterRepo: repo,
		Catalog:       srd.New(),
		Locker:        charlock.New(),
	})
	s.Require().NoError(err)
	s.service = service
}

func (s *ResourcesTestSuite) TearDownTest() {
	s.cleanup()
}

func (s *ResourcesTestSuite) createCharacter(char *entities.Character) {
	_, err := s.repo.Create(s.ctx, characterrepo.CreateInput{Character: char})
	s.Require().NoError(err)
}

func (s *ResourcesTestSuite) TestSpendHitDice() {
	s.createCharacter(testutils.Fighter("char_1", "player_1", 5))

	out, err := s.service.SpendHitDice(s.ctx, &resources.SpendHitDiceInput{
		CharacterID: "char_1",
		DieType:     "d10",
		Quantity:    2,
	})
	s.Require().NoError(err)

	s.Equal("d10", out.Pool.DieType)
	s.Equal(5, out.Pool.Max)
	s.Equal(2, out.Pool.Spent)
	s.Equal(3, out.Pool.Available)
}

func (s *ResourcesTestSuite) TestSpendHitDice_Insufficient() {
	char := testutils.Fighter("char_1", "player_1", 3)
	char.Classes[0].HitDiceSpent = 2
	s.createCharacter(char)

	_, err := s.service.SpendHitDice(s.ctx, &resources.SpendHitDiceInput{
		CharacterID: "char_1",
		DieType:     "d10",
		Quantity:    2,
	})
	s.Require().Error(err)
	s.True(errors.IsResourceExhausted(err))
	s.Equal("insufficient d10 hit dice: have 1, need 2", errors.GetMessage(err))

	// State untouched after the failed spend.
	stored, err := s.repo.Get(s.ctx, characterrepo.GetInput{ID: "char_1"})
	s.Require().NoError(err)
	s.Equal(2, stored.Character.Classes[0].HitDiceSpent)
}

func (s *ResourcesTestSuite) TestSpendHitDice_WrongDie() {
	s.createCharacter(testutils.Fighter("char_1", "player_1", 3))

	_, err := s.service.SpendHitDice(s.ctx, &resources.SpendHitDiceInput{
		CharacterID: "char_1",
		DieType:     "d6",
		Quantity:    1,
	})
	s.True(errors.IsInvalidArgument(err))
}

func (s *ResourcesTestSuite) TestRecoverHitDice_DefaultHalf() {
	char := testutils.Fighter("char_1", "player_1", 8)
	char.Classes[0].HitDiceSpent = 8
	s.createCharacter(char)

	out, err := s.service.RecoverHitDice(s.ctx, &resources.RecoverHitDiceInput{
		CharacterID: "char_1",
	})
	s.Require().NoError(err)

	s.Equal(4, out.Recovered)
	s.Equal(4, out.Pools[0].Spent)
	s.Equal(4, out.Pools[0].Available)
}

func (s *ResourcesTestSuite) TestRecoverHitDice_CappedBySpent() {
	char := testutils.Fighter("char_1", "player_1", 8)
	char.Classes[0].HitDiceSpent = 1
	s.createCharacter(char)

	out, err := s.service.RecoverHitDice(s.ctx, &resources.RecoverHitDiceInput{
		CharacterID: "char_1",
		Quantity:    3,
	})
	s.Require().NoError(err)
	s.Equal(1, out.Recovered)
	s.Equal(0, out.Pools[0].Spent)
}

func (s *ResourcesTestSuite) TestRecoverHitDice_MinimumOne() {
	char := testutils.Fighter("char_1", "player_1", 1)
	char.Classes[0].HitDiceSpent = 1
	s.createCharacter(char)

	out, err := s.service.RecoverHitDice(s.ctx, &resources.RecoverHitDiceInput{
		CharacterID: "char_1",
	})
	s.Require().NoError(err)
	s.Equal(1, out.Recovered)
}

func (s *ResourcesTestSuite) TestUseSpellSlot() {
	s.createCharacter(testutils.Wizard("char_1", "player_1", 3))

	out, err := s.service.UseSpellSlot(s.ctx, &resources.UseSpellSlotInput{
		CharacterID: "char_1",
		SpellLevel:  1,
	})
	s.Require().NoError(err)

	s.Equal(1, out.Slot.Spent)
	s.Equal(3, out.Slot.Available)
}

func (s *ResourcesTestSuite) TestUseSpellSlot_Exhausted() {
	char := testutils.Wizard("char_1", "player_1", 1)
	char.Slots[0].Used = char.Slots[0].Max
	s.createCharacter(char)

	_, err := s.service.UseSpellSlot(s.ctx, &resources.UseSpellSlotInput{
		CharacterID: "char_1",
		SpellLevel:  1,
	})
	s.Require().Error(err)
	s.True(errors.IsResourceExhausted(err))
	s.Equal("spell", errors.GetMeta(err)["slot_type"])
	s.Equal(1, errors.GetMeta(err)["spell_level"])

	stored, err := s.repo.Get(s.ctx, characterrepo.GetInput{ID: "char_1"})
	s.Require().NoError(err)
	s.Equal(char.Slots[0].Max, stored.Character.Slots[0].Used)
}

func (s *ResourcesTestSuite) TestUseSpellSlot_NoSuchPool() {
	s.createCharacter(testutils.Wizard("char_1", "player_1", 1))

	_, err := s.service.UseSpellSlot(s.ctx, &resources.UseSpellSlotInput{
		CharacterID: "char_1",
		SpellLevel:  3,
	})
	s.True(errors.IsNotFound(err))
}

func (s *ResourcesTestSuite) TestUseFeature() {
	s.createCharacter(testutils.Fighter("char_1", "player_1", 2))

	out, err := s.service.UseFeature(s.ctx, &resources.UseFeatureInput{
		CharacterID: "char_1",
		FeatureSlug: "second-wind",
	})
	s.Require().NoError(err)
	s.Equal(0, out.Feature.UsesRemaining)

	_, err = s.service.UseFeature(s.ctx, &resources.UseFeatureInput{
		CharacterID: "char_1",
		FeatureSlug: "second-wind",
	})
	s.True(errors.IsResourceExhausted(err))
}

func (s *ResourcesTestSuite) TestUseFeature_Unknown() {
	s.createCharacter(testutils.Fighter("char_1", "player_1", 2))

	_, err := s.service.UseFeature(s.ctx, &resources.UseFeatureInput{
		CharacterID: "char_1",
		FeatureSlug: "rage",
	})
	s.True(errors.IsNotFound(err))
}

func (s *ResourcesTestSuite) TestResetFeature() {
	char := testutils.Fighter("char_1", "player_1", 2)
	for _, grant := range char.Features {
		grant.UsesRemaining = 0
	}
	s.createCharacter(char)

	out, err := s.service.ResetFeature(s.ctx, &resources.ResetFeatureInput{
		CharacterID: "char_1",
		FeatureSlug: "second-wind",
	})
	s.Require().NoError(err)
	s.Equal(1, out.Feature.UsesRemaining)
}

func (s *ResourcesTestSuite) TestShortRest() {
	char := testutils.Warlock("char_1", "player_1", 3)
	char.Slots[0].Used = 2
	s.createCharacter(char)

	out, err := s.service.ShortRest(s.ctx, &resources.ShortRestInput{CharacterID: "char_1"})
	s.Require().NoError(err)

	s.True(out.PactMagicReset)
	s.Equal(0, out.Character.Slots[0].Used)
}

func (s *ResourcesTestSuite) TestShortRest_FeatureReset() {
	char := testutils.Fighter("char_1", "player_1", 2)
	for _, grant := range char.Features {
		grant.UsesRemaining = 0
	}
	s.createCharacter(char)

	out, err := s.service.ShortRest(s.ctx, &resources.ShortRestInput{CharacterID: "char_1"})
	s.Require().NoError(err)

	s.Equal([]string{"action-surge", "second-wind"}, out.FeaturesReset)
	s.False(out.PactMagicReset)
}

func (s *ResourcesTestSuite) TestShortRest_DoesNotTouchSpellSlots() {
	char := testutils.Wizard("char_1", "player_1", 3)
	char.Slots[0].Used = 2
	s.createCharacter(char)

	out, err := s.service.ShortRest(s.ctx, &resources.ShortRestInput{CharacterID: "char_1"})
	s.Require().NoError(err)
	s.Equal(2, out.Character.Slots[0].Used)
}

func (s *ResourcesTestSuite) TestLongRest() {
	char := testutils.Wizard("char_1", "player_1", 8)
	char.CurrentHP = 10
	char.Slots[0].Used = 3
	char.Slots[1].Used = 1
	char.Classes[0].HitDiceSpent = 8
	char.DeathSaves = entities.DeathSaves{Successes: 1, Failures: 2}
	s.createCharacter(char)

	out, err := s.service.LongRest(s.ctx, &resources.LongRestInput{CharacterID: "char_1"})
	s.Require().NoError(err)

	s.Equal(char.MaxHP-10, out.HPRestored)
	s.Equal(char.MaxHP, out.Character.CurrentHP)
	s.Equal(4, out.HitDiceRecovered)
	s.Equal(2, out.SpellSlotsReset)
	s.True(out.DeathSavesCleared)
	s.Equal(entities.DeathSaves{}, out.Character.DeathSaves)
	for _, pool := range out.Character.Slots {
		s.Equal(0, pool.Used)
	}
}

func (s *ResourcesTestSuite) TestLongRest_Idempotent() {
	char := testutils.Wizard("char_1", "player_1", 4)
	char.CurrentHP = 5
	char.Slots[0].Used = 1
	s.createCharacter(char)

	_, err := s.service.LongRest(s.ctx, &resources.LongRestInput{CharacterID: "char_1"})
	s.Require().NoError(err)

	out, err := s.service.LongRest(s.ctx, &resources.LongRestInput{CharacterID: "char_1"})
	s.Require().NoError(err)

	s.Equal(0, out.HPRestored)
	s.Equal(0, out.HitDiceRecovered)
	s.Equal(0, out.SpellSlotsReset)
	s.False(out.DeathSavesCleared)
	s.Empty(out.FeaturesReset)
}

func (s *ResourcesTestSuite) TestListHitDice_Multiclass() {
	char := testutils.Fighter("char_1", "player_1", 5)
	char.Classes = append(char.Classes, &entities.ClassLevel{
		ClassSlug: "wizard", Level: 3, Order: 1, HitDiceSpent: 1,
	})
	s.createCharacter(char)

	out, err := s.service.ListHitDice(s.ctx, &resources.ListHitDiceInput{CharacterID: "char_1"})
	s.Require().NoError(err)

	s.Require().Len(out.Pools, 2)
	s.Equal("d10", out.Pools[0].DieType)
	s.Equal(5, out.Pools[0].Max)
	s.Equal("d6", out.Pools[1].DieType)
	s.Equal(3, out.Pools[1].Max)
	s.Equal(2, out.Pools[1].Available)
}
