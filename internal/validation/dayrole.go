package validation

// DayRole drives which activity-count constraints apply to a day.
type DayRole int

const (
	RoleArrival DayRole = iota
	RoleMiddle
	RoleDeparture
)

func (r DayRole) String() string {
	switch r {
	case RoleMiddle:
		return "middle"
	case RoleDeparture:
		return "departure"
	default:
		return "arrival"
	}
}

// Activity pace preference bounds (1 = very relaxed, 4 = packed).
const (
	MinPace = 1
	MaxPace = 4
)

// ResolveRole maps a zero-based day index to its role. Day 0 is always
// the arrival day; the last day is the departure day. A one-day trip is
// arrival only; a two-day trip has no middle days.
func ResolveRole(dayIndex, totalDays int) DayRole {
	if dayIndex <= 0 || totalDays <= 1 {
		return RoleArrival
	}
	if dayIndex >= totalDays-1 {
		return RoleDeparture
	}
	return RoleMiddle
}

// CountConstraint bounds the number of attraction entries a day may hold.
type CountConstraint struct {
	Min    int
	Max    int
	Target int
}

// ConstraintsFor returns the allowed activity-count window for a day
// role and pace preference. Arrival and departure windows ignore pace:
// those days are dominated by travel logistics. The max side is kept
// wide because the fixer only ever removes excess entries; it cannot
// invent attractions to fill a shortfall.
func ConstraintsFor(role DayRole, pace int) CountConstraint {
	pace = clampPace(pace)
	switch role {
	case RoleArrival:
		return CountConstraint{Min: 0, Max: 2, Target: 1}
	case RoleDeparture:
		return CountConstraint{Min: 0, Max: 1, Target: 0}
	default:
		min := pace - 1
		if min < 1 {
			min = 1
		}
		return CountConstraint{Min: min, Max: pace + 1, Target: pace}
	}
}

func clampPace(pace int) int {
	if pace < MinPace {
		return MinPace
	}
	if pace > MaxPace {
		return MaxPace
	}
	return pace
}
