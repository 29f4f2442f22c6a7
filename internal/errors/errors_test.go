package errors_test

import (
	stderrors "errors"
	"fmt"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dfox288/ledger-of-heroes-backend-sub002/internal/errors"
)

func TestErrorString(t *testing.T) {
	err := errors.NotFound("character chr_123 not found")
	assert.Equal(t, "NOT_FOUND: character chr_123 not found", err.Error())

	wrapped := errors.Wrap(fmt.Errorf("dial tcp: refused"), "failed to load character")
	assert.Equal(t, errors.CodeInternal, wrapped.Code)
	assert.Contains(t, wrapped.Error(), "dial tcp: refused")
}

func TestWrapPreservesCode(t *testing.T) {
	inner := errors.ResourceExhausted("no level 3 slots remaining").
		WithMeta("spell_level", 3)

	outer := errors.Wrap(inner, "use spell slot")
	assert.Equal(t, errors.CodeResourceExhausted, outer.Code)
	assert.Equal(t, 3, outer.Meta["spell_level"])
	assert.True(t, errors.IsResourceExhausted(outer))
}

func TestIsMatchesByCode(t *testing.T) {
	err := errors.FailedPrecondition("character is already at maximum level")
	assert.True(t, stderrors.Is(err, errors.FailedPrecondition("anything")))
	assert.False(t, stderrors.Is(err, errors.NotFound("anything")))
}

func TestGetCode(t *testing.T) {
	assert.Equal(t, errors.CodeOK, errors.GetCode(nil))
	assert.Equal(t, errors.CodeInternal, errors.GetCode(fmt.Errorf("plain")))
	assert.Equal(t, errors.CodeAlreadyExists, errors.GetCode(errors.AlreadyExists("taken")))
}

func TestHTTPStatusMapping(t *testing.T) {
	cases := map[errors.Code]int{
		errors.CodeNotFound:           http.StatusNotFound,
		errors.CodeInvalidArgument:    http.StatusUnprocessableEntity,
		errors.CodeFailedPrecondition: http.StatusUnprocessableEntity,
		errors.CodeAlreadyExists:      http.StatusConflict,
		errors.CodeResourceExhausted:  http.StatusConflict,
		errors.CodeInternal:           http.StatusInternalServerError,
	}
	for code, want := range cases {
		assert.Equal(t, want, code.HTTPStatus(), "code %s", code)
	}
}

func TestValidationBuilder(t *testing.T) {
	vb := errors.NewValidationBuilder()
	errors.ValidateRequired("die_type", "", vb)
	errors.ValidatePositive("quantity", 0, vb)

	err := vb.Build()
	require.Error(t, err)
	assert.True(t, errors.IsInvalidArgument(err))

	meta := errors.GetMeta(err)
	fields, ok := meta["validation_errors"].(map[string][]string)
	require.True(t, ok)
	assert.Contains(t, fields, "die_type")
	assert.Contains(t, fields, "quantity")
}

func TestValidationBuilderEmpty(t *testing.T) {
	assert.NoError(t, errors.NewValidationBuilder().Build())
}

func TestValidateEnum(t *testing.T) {
	vb := errors.NewValidationBuilder()
	errors.ValidateEnum("slot_type", "ritual", []string{"standard", "pact_magic"}, vb)
	err := vb.Build()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "must be one of: standard, pact_magic")
}
