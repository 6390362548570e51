package permission

import (
	"testing"
)

func TestLevelOf(t *testing.T) {
	tests := []struct {
		name  string
		label string
		want  Level
	}{
		{name: "general", label: "一般", want: LevelGeneral},
		{name: "general affairs", label: "総務", want: LevelGeneralAffairs},
		{name: "executive", label: "役職", want: LevelExecutive},
		{name: "unknown label defaults to general", label: "部長", want: LevelGeneral},
		{name: "empty label defaults to general", label: "", want: LevelGeneral},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := LevelOf(tt.label); got != tt.want {
				t.Errorf("LevelOf(%q) = %d, want %d", tt.label, got, tt.want)
			}
		})
	}
}

func TestIsVisible(t *testing.T) {
	tests := []struct {
		name     string
		user     Level
		required Level
		want     bool
	}{
		{name: "equal levels", user: LevelGeneral, required: LevelGeneral, want: true},
		{name: "higher user level", user: LevelExecutive, required: LevelGeneral, want: true},
		{name: "lower user level", user: LevelGeneral, required: LevelExecutive, want: false},
		{name: "middle vs top", user: LevelGeneralAffairs, required: LevelExecutive, want: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := IsVisible(tt.user, tt.required); got != tt.want {
				t.Errorf("IsVisible(%d, %d) = %v, want %v", tt.user, tt.required, got, tt.want)
			}
		})
	}
}

// Visibility must be monotone in the user level: anything a lower level can
// see, every higher level can see too.
func TestVisibilityMonotonic(t *testing.T) {
	levels := []Level{LevelGeneral, LevelGeneralAffairs, LevelExecutive}
	for _, required := range levels {
		for i := 0; i < len(levels)-1; i++ {
			lower, higher := levels[i], levels[i+1]
			if IsVisible(lower, required) && !IsVisible(higher, required) {
				t.Errorf("visibility not monotonic: required=%d visible at %d but not %d", required, lower, higher)
			}
		}
	}
}
