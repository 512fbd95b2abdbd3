// ABOUTME: Progress entry model: the latest measurement per exercise name.
// ABOUTME: Run, Cycle and Row are measured in kilometres, everything else in kilograms.
package models

// ProgressEntry holds the current value for one exercise name.
type ProgressEntry struct {
	Exercise string `json:"exercise" yaml:"exercise"`
	Value    int64  `json:"value" yaml:"value"`
}

// DistanceExercises are measured in kilometres. Matching is exact.
var DistanceExercises = []string{"Run", "Cycle", "Row"}

const (
	UnitKilometres = "km"
	UnitKilograms  = "kg"
)

// IsDistanceExercise reports whether exercise is recorded as a distance.
func IsDistanceExercise(exercise string) bool {
	for _, d := range DistanceExercises {
		if d == exercise {
			return true
		}
	}
	return false
}

// UnitFor returns the unit a progress value for exercise is recorded in.
func UnitFor(exercise string) string {
	if IsDistanceExercise(exercise) {
		return UnitKilometres
	}
	return UnitKilograms
}

// NewProgressEntry builds a ProgressEntry, rejecting an empty exercise name.
func NewProgressEntry(exercise string, value int64) (*ProgressEntry, error) {
	if err := requireText("exercise", exercise); err != nil {
		return nil, err
	}
	return &ProgressEntry{Exercise: exercise, Value: value}, nil
}

// Unit is the unit this entry's value is recorded in.
func (p *ProgressEntry) Unit() string {
	return UnitFor(p.Exercise)
}
