package model

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestIsDeclined(t *testing.T) {
	assert.True(t, IsDeclined(ErrInsufficientFunds))
	assert.True(t, IsDeclined(fmt.Errorf("account 1: %w", ErrOverdraftLimit)))
	assert.True(t, IsDeclined(fmt.Errorf("wrapped: %w", ErrSavingsOverdrawn)))
	assert.False(t, IsDeclined(errors.New("disk full")))
	assert.False(t, IsDeclined(nil))
}
