package auth

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestTranslatePasswordEmptyIsEmpty(t *testing.T) {
	assert.Equal(t, "", TranslatePassword("alice", ""))
	assert.Equal(t, "", TranslatePassword("", ""))
}

func TestTranslatePasswordPinnedVector(t *testing.T) {
	got := TranslatePassword("alice", "hunter2")
	assert.Equal(t, "kiPxLGHDJfqoWLjiXji6lUulXa8=", got)
}

func TestTranslatePasswordNoSeparator(t *testing.T) {
	// "alice"+"bob123" and "al"+"icebob123" hash the same bytes, which is
	// the point: there is no separator between name and password.
	assert.Equal(t, TranslatePassword("alice", "bob123"), TranslatePassword("al", "icebob123"))
}
