package domain

import "math"

// AgeGroup is a right-closed age bucket.
type AgeGroup int

// Age groups in display order.
const (
	AgeGroupChild AgeGroup = iota
	AgeGroupTeenager
	AgeGroupAdult
	AgeGroupMiddleAged
	AgeGroupElderly
)

// ageGroupUpper holds the inclusive upper edge of each group. The lower
// edge of Child is inclusive so that age 0 falls inside it.
var ageGroupUpper = [...]float64{12, 18, 35, 60, 100}

var ageGroupLabels = [...]string{"Child", "Teenager", "Adult", "Middle Aged", "Elderly"}

// AgeGroups returns all groups in display order.
func AgeGroups() []AgeGroup {
	return []AgeGroup{
		AgeGroupChild,
		AgeGroupTeenager,
		AgeGroupAdult,
		AgeGroupMiddleAged,
		AgeGroupElderly,
	}
}

// AgeGroupFor returns the group containing age. Ages below 0, above 100
// and NaN have no group.
func AgeGroupFor(age float64) (AgeGroup, bool) {
	if math.IsNaN(age) || age < 0 || age > ageGroupUpper[len(ageGroupUpper)-1] {
		return 0, false
	}
	for i, upper := range ageGroupUpper {
		if age <= upper {
			return AgeGroup(i), true
		}
	}
	return 0, false
}

// String returns the display label.
func (g AgeGroup) String() string {
	if g < AgeGroupChild || g > AgeGroupElderly {
		return "Unknown"
	}
	return ageGroupLabels[g]
}

// Bounds returns the lower (exclusive, except for Child) and upper
// (inclusive) edges of the group.
func (g AgeGroup) Bounds() (lower, upper float64) {
	if g < AgeGroupChild || g > AgeGroupElderly {
		return math.NaN(), math.NaN()
	}
	if g > AgeGroupChild {
		lower = ageGroupUpper[g-1]
	}
	return lower, ageGroupUpper[g]
}
