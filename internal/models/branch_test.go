package models

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestBranchStatus_String(t *testing.T) {
	assert.Equal(t, "active", StatusActive.String())
	assert.Equal(t, "gone", StatusDeleted.String())
	assert.Equal(t, "unknown", BranchStatus(42).String())
}

func TestBranchLine_IsGone(t *testing.T) {
	assert.True(t, BranchLine{Status: StatusDeleted}.IsGone())
	assert.False(t, BranchLine{Status: StatusActive}.IsGone())
	assert.False(t, BranchLine{}.IsGone())
}
