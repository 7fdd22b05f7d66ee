package main

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestLegendListsEveryKeyPair(t *testing.T) {
	l := legend()

	assert.Contains(t, l, "@ player")
	assert.Contains(t, l, "a/A key/lock 1")
	assert.Contains(t, l, "b/B key/lock 2")
}
