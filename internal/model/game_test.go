package model

import "testing"

func TestDurationMinutes(t *testing.T) {
	cases := []struct {
		label string
		want  int
	}{
		{"5min", 5},
		{"10min", 10},
		{"15min", 15},
		{"120min", 120},
		{"10+min", 10},
		{"30+min", 30},
		{"", 0},
		{"bogus", 0},
	}

	for _, tc := range cases {
		if got := DurationMinutes(tc.label); got != tc.want {
			t.Errorf("DurationMinutes(%q) = %d, want %d", tc.label, got, tc.want)
		}
	}
}

func TestDurationChoices_AllMapToMinutes(t *testing.T) {
	for _, label := range DurationChoices {
		if DurationMinutes(label) <= 0 {
			t.Errorf("choice %q must map to a positive minute value", label)
		}
	}
}

func TestIsValidDuration(t *testing.T) {
	if !IsValidDuration("10+min") {
		t.Error("10+min should be a valid duration")
	}
	if IsValidDuration("7min") {
		t.Error("7min is not a catalog duration")
	}
}

func TestIsValidPlayerCount(t *testing.T) {
	if !IsValidPlayerCount("any") {
		t.Error("any should be a valid player count")
	}
	if IsValidPlayerCount("100") {
		t.Error("100 is not a catalog player count")
	}
}

func TestGame_IsPubliclyVisible(t *testing.T) {
	cases := []struct {
		name string
		game Game
		want bool
	}{
		{"active regular game", Game{IsActive: true}, true},
		{"inactive game", Game{IsActive: false}, false},
		{"pending suggestion", Game{IsActive: true, IsSuggestion: true, Approved: false}, false},
		{"approved suggestion", Game{IsActive: true, IsSuggestion: false, Approved: true}, true},
		{"inactive approved game", Game{IsActive: false, Approved: true}, false},
	}

	for _, tc := range cases {
		if got := tc.game.IsPubliclyVisible(); got != tc.want {
			t.Errorf("%s: IsPubliclyVisible() = %v, want %v", tc.name, got, tc.want)
		}
	}
}
