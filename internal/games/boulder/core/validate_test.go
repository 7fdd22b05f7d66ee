package core

import (
	"errors"
	"testing"
)

func TestValidate(t *testing.T) {
	tests := []struct {
		name string
		rows [][]RawTile
		code string
	}{
		{"playable", [][]RawTile{{2, 3, 2}}, ""},
		{"no player", [][]RawTile{{2, 0, 2}}, "NO_PLAYER"},
		{"two players", [][]RawTile{{3, 0, 3}}, "MULTIPLE_PLAYERS"},
		{"empty", nil, "EMPTY_GRID"},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			err := Validate(MustDecode(tc.rows))
			if tc.code == "" {
				if err != nil {
					t.Fatalf("Validate() = %v, expected nil", err)
				}
				return
			}

			var verr ValidationError
			if !errors.As(err, &verr) {
				t.Fatalf("Validate() = %v, expected ValidationError", err)
			}
			if verr.Code != tc.code {
				t.Errorf("Code = %s, expected %s", verr.Code, tc.code)
			}
		})
	}
}

func TestLint(t *testing.T) {
	g := MustDecode([][]RawTile{{3, 8, 9, 10, 0, 11}})
	if issues := Lint(g); len(issues) != 0 {
		t.Errorf("Lint() = %v, expected no issues", issues)
	}

	g = MustDecode([][]RawTile{{3, 8, 11, 11}})
	issues := Lint(g)
	if len(issues) != 2 {
		t.Fatalf("Lint() returned %d issues, expected 2: %v", len(issues), issues)
	}
	if issues[0].Code != "KEY_WITHOUT_LOCK" || issues[1].Code != "LOCK_WITHOUT_KEY" {
		t.Errorf("unexpected issues: %v", issues)
	}
}
