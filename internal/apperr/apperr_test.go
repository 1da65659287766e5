package apperr

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestKindOf(t *testing.T) {
	assert.Equal(t, KindValidation, KindOf(Validation("bad %s", "input")))
	assert.Equal(t, KindNotFound, KindOf(NotFound("book %d not found", 3)))
	assert.Equal(t, KindInsufficientStock, KindOf(InsufficientStock("only %d left", 1)))
	assert.Equal(t, KindUnauthorized, KindOf(Unauthorized("invalid credentials")))
	assert.Equal(t, KindStorage, KindOf(Storage(errors.New("disk gone"))))

	// Errors from outside the service layer default to storage.
	assert.Equal(t, KindStorage, KindOf(errors.New("plain")))
	assert.Equal(t, KindStorage, KindOf(nil))
}

func TestKindOfWrapped(t *testing.T) {
	err := fmt.Errorf("creating sale: %w", InsufficientStock("only 1 left"))
	assert.Equal(t, KindInsufficientStock, KindOf(err))
}

func TestStorageKeepsCause(t *testing.T) {
	cause := errors.New("connection refused")
	err := Storage(cause)

	assert.ErrorIs(t, err, cause)
	assert.Equal(t, "storage failure", err.Error())
}

func TestIsMatchesByKind(t *testing.T) {
	assert.ErrorIs(t, NotFound("book 1 not found"), NotFound("book 2 not found"))
	assert.NotErrorIs(t, NotFound("book 1 not found"), Validation("bad input"))
}

func TestErrorMessage(t *testing.T) {
	assert.Equal(t, "bad input", Validation("bad input").Error())

	e := &Error{Kind: KindStorage, Err: errors.New("disk gone")}
	assert.Equal(t, "disk gone", e.Error())

	assert.Equal(t, "unauthorized", (&Error{Kind: KindUnauthorized}).Error())
}
