package character_test

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/suite"

	"github.com/dfox288/ledger-of-heroes-backend-sub002/internal/entities"
	"github.com/dfox288/ledger-of-heroes-backend-sub002/internal/errors"
	"github.com/dfox288/ledger-of-heroes-backend-sub002/internal/pkg/clock"
	"github.com/dfox288/ledger-of-heroes-backend-sub002/internal/repositories/character"
	"github.com/dfox288/ledger-of-heroes-backend-sub002/internal/testutils"
)

const (
	testCharID   = "char_123"
	testPlayerID = "player_456"
)

type RedisRepositoryTestSuite struct {
	suite.Suite
	repo    character.Repository
	cleanup func()
	ctx     context.Context
	now     time.Time
}

func TestRedisRepositorySuite(t *testing.T) {
	suite.Run(t, new(RedisRepositoryTestSuite))
}

func (s *RedisRepositoryTestSuite) SetupTest() {
	client, cleanup := testutils.CreateTestRedisClient(s.T())
	s.cleanup = cleanup
	s.now = time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)

	repo, err := character.NewRedis(&character.RedisConfig{
		Client: client,
		Clock:  clock.NewFixed(s.now),
	})
	s.Require().NoError(err)
	s.repo = repo
	s.ctx = context.Background()
}

func (s *RedisRepositoryTestSuite) TearDownTest() {
	s.cleanup()
}

func (s *RedisRepositoryTestSuite) TestCreateAndGet() {
	char := testutils.Fighter(testCharID, testPlayerID, 2)

	created, err := s.repo.Create(s.ctx, character.CreateInput{Character: char})
	s.Require().NoError(err)
	s.Equal(s.now.Unix(), created.Character.CreatedAt)
	s.Equal(s.now.Unix(), created.Character.UpdatedAt)

	got, err := s.repo.Get(s.ctx, character.GetInput{ID: testCharID})
	s.Require().NoError(err)
	s.Equal(testCharID, got.Character.ID)
	s.Equal(testPlayerID, got.Character.PlayerID)
	s.Equal(2, got.Character.TotalLevel())
	s.Require().NotNil(got.Character.AbilityScores.Constitution)
	s.Equal(16, *got.Character.AbilityScores.Constitution)
	s.Len(got.Character.Features, 2)
}

func (s *RedisRepositoryTestSuite) TestCreateDuplicate() {
	char := testutils.Fighter(testCharID, testPlayerID, 1)

	_, err := s.repo.Create(s.ctx, character.CreateInput{Character: char})
	s.Require().NoError(err)

	_, err = s.repo.Create(s.ctx, character.CreateInput{Character: char})
	s.Require().Error(err)
	s.True(errors.IsAlreadyExists(err))
}

func (s *RedisRepositoryTestSuite) TestCreateValidation() {
	_, err := s.repo.Create(s.ctx, character.CreateInput{})
	s.True(errors.IsInvalidArgument(err))

	_, err = s.repo.Create(s.ctx, character.CreateInput{Character: &entities.Character{}})
	s.True(errors.IsInvalidArgument(err))
}

func (s *RedisRepositoryTestSuite) TestGetNotFound() {
	_, err := s.repo.Get(s.ctx, character.GetInput{ID: "char_missing"})
	s.Require().Error(err)
	s.True(errors.IsNotFound(err))
}

func (s *RedisRepositoryTestSuite) TestUpdate() {
	char := testutils.Fighter(testCharID, testPlayerID, 1)
	_, err := s.repo.Create(s.ctx, character.CreateInput{Character: char})
	s.Require().NoError(err)

	char.CurrentHP = 5
	char.Classes[0].HitDiceSpent = 1
	updated, err := s.repo.Update(s.ctx, character.UpdateInput{Character: char})
	s.Require().NoError(err)
	s.Equal(5, updated.Character.CurrentHP)

	got, err := s.repo.Get(s.ctx, character.GetInput{ID: testCharID})
	s.Require().NoError(err)
	s.Equal(5, got.Character.CurrentHP)
	s.Equal(1, got.Character.Classes[0].HitDiceSpent)
}

func (s *RedisRepositoryTestSuite) TestUpdateNotFound() {
	char := testutils.Fighter("char_ghost", testPlayerID, 1)
	_, err := s.repo.Update(s.ctx, character.UpdateInput{Character: char})
	s.Require().Error(err)
	s.True(errors.IsNotFound(err))
}

func (s *RedisRepositoryTestSuite) TestUpdateMovesPlayerIndex() {
	char := testutils.Fighter(testCharID, testPlayerID, 1)
	_, err := s.repo.Create(s.ctx, character.CreateInput{Character: char})
	s.Require().NoError(err)

	char.PlayerID = "player_other"
	_, err = s.repo.Update(s.ctx, character.UpdateInput{Character: char})
	s.Require().NoError(err)

	old, err := s.repo.ListByPlayerID(s.ctx, character.ListByPlayerIDInput{PlayerID: testPlayerID})
	s.Require().NoError(err)
	s.Empty(old.Characters)

	moved, err := s.repo.ListByPlayerID(s.ctx, character.ListByPlayerIDInput{PlayerID: "player_other"})
	s.Require().NoError(err)
	s.Len(moved.Characters, 1)
}

func (s *RedisRepositoryTestSuite) TestDelete() {
	char := testutils.Fighter(testCharID, testPlayerID, 1)
	_, err := s.repo.Create(s.ctx, character.CreateInput{Character: char})
	s.Require().NoError(err)

	_, err = s.repo.Delete(s.ctx, character.DeleteInput{ID: testCharID})
	s.Require().NoError(err)

	_, err = s.repo.Get(s.ctx, character.GetInput{ID: testCharID})
	s.True(errors.IsNotFound(err))

	listed, err := s.repo.ListByPlayerID(s.ctx, character.ListByPlayerIDInput{PlayerID: testPlayerID})
	s.Require().NoError(err)
	s.Empty(listed.Characters)
}

func (s *RedisRepositoryTestSuite) TestDeleteNotFound() {
	_, err := s.repo.Delete(s.ctx, character.DeleteInput{ID: "char_missing"})
	s.True(errors.IsNotFound(err))
}

func (s *RedisRepositoryTestSuite) TestListByPlayerID() {
	for _, id := range []string{"char_a", "char_b"} {
		char := testutils.Wizard(id, testPlayerID, 3)
		_, err := s.repo.Create(s.ctx, character.CreateInput{Character: char})
		s.Require().NoError(err)
	}
	other := testutils.Wizard("char_c", "player_other", 3)
	_, err := s.repo.Create(s.ctx, character.CreateInput{Character: other})
	s.Require().NoError(err)

	listed, err := s.repo.ListByPlayerID(s.ctx, character.ListByPlayerIDInput{PlayerID: testPlayerID})
	s.Require().NoError(err)
	s.Len(listed.Characters, 2)
}

func (s *RedisRepositoryTestSuite) TestListByPlayerIDValidation() {
	_, err := s.repo.ListByPlayerID(s.ctx, character.ListByPlayerIDInput{})
	s.True(errors.IsInvalidArgument(err))
}

func (s *RedisRepositoryTestSuite) TestGetClampsOverspentPools() {
	char := testutils.Wizard(testCharID, testPlayerID, 3)
	char.Slots[0].Used = 99
	_, err := s.repo.Create(s.ctx, character.CreateInput{Character: char})
	s.Require().NoError(err)

	got, err := s.repo.Get(s.ctx, character.GetInput{ID: testCharID})
	s.Require().NoError(err)
	s.Equal(got.Character.Slots[0].Max, got.Character.Slots[0].Used)
}
