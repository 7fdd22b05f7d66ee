package main

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/vovakirdan/tui-boulder/internal/games/boulder/core"
	"github.com/vovakirdan/tui-boulder/internal/games/boulder/levels"
)

func TestMergeLevelsOverridesByID(t *testing.T) {
	base := []levels.Level{{ID: "01", Name: "One"}, {ID: "02", Name: "Two"}}
	extra := []levels.Level{{ID: "02", Name: "Custom Two"}, {ID: "09", Name: "Nine"}}

	got := mergeLevels(base, extra)

	names := make([]string, len(got))
	for i, l := range got {
		names[i] = l.Name
	}
	assert.Equal(t, []string{"One", "Custom Two", "Nine"}, names)
	assert.Equal(t, "Two", base[1].Name, "base slice must not be modified")
}

func TestPort(t *testing.T) {
	assert.Equal(t, "23234", port(":23234"))
	assert.Equal(t, "2222", port("0.0.0.0:2222"))
	assert.Equal(t, "2222", port("[::1]:2222"))
	assert.Equal(t, "nohost", port("nohost"))
}

func TestLevelError(t *testing.T) {
	corrupt := levelError(fmt.Errorf("cell (1,1): %w", core.ErrUnknownTileCode))
	assert.ErrorIs(t, corrupt, core.ErrUnknownTileCode)
	assert.Contains(t, corrupt.Error(), "corrupt level data")

	missing := levelError(errors.New("unknown level \"x\""))
	assert.Contains(t, missing.Error(), "could not load level")
}

func TestExpandHome(t *testing.T) {
	t.Setenv("HOME", "/home/tester")

	assert.Equal(t, "/home/tester/levels", expandHome("~/levels"))
	assert.Equal(t, "./levels", expandHome("./levels"))
	assert.Equal(t, "", expandHome(""))
}
