package validation

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestResolveRole(t *testing.T) {
	tests := []struct {
		name      string
		dayIndex  int
		totalDays int
		want      DayRole
	}{
		{"first day is arrival", 0, 5, RoleArrival},
		{"last day is departure", 4, 5, RoleDeparture},
		{"interior day is middle", 2, 5, RoleMiddle},
		{"single-day trip is arrival only", 0, 1, RoleArrival},
		{"two-day trip has no middle", 1, 2, RoleDeparture},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, ResolveRole(tt.dayIndex, tt.totalDays))
		})
	}
}

func TestConstraintsFor(t *testing.T) {
	tests := []struct {
		name string
		role DayRole
		pace int
		want CountConstraint
	}{
		{"arrival ignores pace", RoleArrival, 4, CountConstraint{Min: 0, Max: 2, Target: 1}},
		{"departure ignores pace", RoleDeparture, 3, CountConstraint{Min: 0, Max: 1, Target: 0}},
		{"relaxed middle keeps at least one", RoleMiddle, 1, CountConstraint{Min: 1, Max: 2, Target: 1}},
		{"default middle pace", RoleMiddle, 2, CountConstraint{Min: 1, Max: 3, Target: 2}},
		{"packed middle pace", RoleMiddle, 4, CountConstraint{Min: 3, Max: 5, Target: 4}},
		{"pace clamped above max", RoleMiddle, 9, CountConstraint{Min: 3, Max: 5, Target: 4}},
		{"pace clamped below min", RoleMiddle, 0, CountConstraint{Min: 1, Max: 2, Target: 1}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, ConstraintsFor(tt.role, tt.pace))
		})
	}
}
