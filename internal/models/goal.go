// ABOUTME: Goal kinds, typed goal targets, and progress-to-goal evaluation.
// ABOUTME: Three fixed templates: 10kg weight loss, 25km cardio, 100kg bench press.
package models

import (
	"fmt"
	"strconv"
	"strings"
)

// GoalKind identifies one of the fixed goal templates. It is also the storage key.
type GoalKind int

const (
	GoalWeightLoss     GoalKind = 1
	GoalCardioDistance GoalKind = 2
	GoalBenchPress     GoalKind = 3
)

// AllGoalKinds lists the goal templates in menu order.
var AllGoalKinds = []GoalKind{GoalWeightLoss, GoalCardioDistance, GoalBenchPress}

// Thresholds a measurement must reach for each kind to count as met.
const (
	WeightLossThresholdKg = 10
	CardioThresholdKm     = 25
	BenchPressThresholdKg = 100
)

const (
	InProgressMessage = "Well done! You are on your way to your goal!"

	weightLossMetMessage = "Congratulations! You have met your goal to lose 10KG!"
	cardioMetMessage     = "Congratulations! You have met your goal to Run/Row/Cycle for 25KM!"
	benchPressMetMessage = "Congratulations! You have met your goal to bench press 100KG!"
)

// Valid reports whether k is one of the fixed templates.
func (k GoalKind) Valid() bool {
	return k >= GoalWeightLoss && k <= GoalBenchPress
}

// String returns the menu label for the kind.
func (k GoalKind) String() string {
	switch k {
	case GoalWeightLoss:
		return "Lose weight"
	case GoalCardioDistance:
		return "Run/Row/Cycle for 25 km"
	case GoalBenchPress:
		return "Bench press 100kg"
	default:
		return fmt.Sprintf("unknown goal %d", int(k))
	}
}

// ParseGoalKind coerces raw input into a valid GoalKind.
func ParseGoalKind(raw string) (GoalKind, error) {
	n, err := ParseInt("goal kind", raw)
	if err != nil {
		return 0, err
	}
	k := GoalKind(n)
	if !k.Valid() {
		return 0, fmt.Errorf("%w: goal kind must be 1, 2 or 3, got %d", ErrValidation, n)
	}
	return k, nil
}

// GoalTarget is the kind-specific payload of a goal. The set of
// implementations is closed: WeightLossTarget, CardioTarget, BenchPressTarget.
type GoalTarget interface {
	Kind() GoalKind
	// Value renders the payload as it is stored in the goal table.
	Value() string
	isGoalTarget()
}

// WeightLossTarget is how many kilograms the user wants to lose.
type WeightLossTarget struct {
	Kg int64
}

func (WeightLossTarget) Kind() GoalKind { return GoalWeightLoss }
func (t WeightLossTarget) Value() string { return strconv.FormatInt(t.Kg, 10) }
func (WeightLossTarget) isGoalTarget() {}

// CardioTarget names the distance exercise (Run, Row, Cycle) the goal is for.
type CardioTarget struct {
	Exercise string
}

func (CardioTarget) Kind() GoalKind { return GoalCardioDistance }
func (t CardioTarget) Value() string { return t.Exercise }
func (CardioTarget) isGoalTarget() {}

// BenchPressTarget is the rep count the user wants at 100kg.
type BenchPressTarget struct {
	Reps int64
}

func (BenchPressTarget) Kind() GoalKind { return GoalBenchPress }
func (t BenchPressTarget) Value() string { return strconv.FormatInt(t.Reps, 10) }
func (BenchPressTarget) isGoalTarget() {}

// Goal is a stored goal: one row per kind.
type Goal struct {
	Kind   GoalKind
	Target GoalTarget
}

// ParseGoal coerces raw input into the typed payload for kind.
// Kinds 1 and 3 take an integer; kind 2 takes free text.
func ParseGoal(kind GoalKind, raw string) (*Goal, error) {
	var target GoalTarget
	switch kind {
	case GoalWeightLoss:
		kg, err := ParseInt("weight to lose", raw)
		if err != nil {
			return nil, err
		}
		target = WeightLossTarget{Kg: kg}
	case GoalCardioDistance:
		exercise := strings.TrimSpace(raw)
		if err := requireText("goal exercise", exercise); err != nil {
			return nil, err
		}
		target = CardioTarget{Exercise: exercise}
	case GoalBenchPress:
		reps, err := ParseInt("rep count", raw)
		if err != nil {
			return nil, err
		}
		target = BenchPressTarget{Reps: reps}
	default:
		return nil, fmt.Errorf("%w: goal kind must be 1, 2 or 3, got %d", ErrValidation, int(kind))
	}
	return &Goal{Kind: kind, Target: target}, nil
}

// Evaluation is the outcome of comparing a measurement against a goal template.
type Evaluation struct {
	Kind        GoalKind `json:"kind"`
	Measurement int64    `json:"measurement"`
	Met         bool     `json:"met"`
	Message     string   `json:"message"`
}

// Evaluate compares measurement against the fixed threshold for kind.
// It never touches storage. Unknown kinds get the in-progress message.
func Evaluate(kind GoalKind, measurement int64) Evaluation {
	e := Evaluation{Kind: kind, Measurement: measurement, Message: InProgressMessage}
	switch kind {
	case GoalWeightLoss:
		if measurement >= WeightLossThresholdKg {
			e.Met, e.Message = true, weightLossMetMessage
		}
	case GoalCardioDistance:
		if measurement >= CardioThresholdKm {
			e.Met, e.Message = true, cardioMetMessage
		}
	case GoalBenchPress:
		// Unmet falls through to the in-progress message like the other kinds.
		if measurement >= BenchPressThresholdKg {
			e.Met, e.Message = true, benchPressMetMessage
		}
	}
	return e
}

// MeasurementPrompt is the question asked before evaluating kind.
func MeasurementPrompt(kind GoalKind) string {
	switch kind {
	case GoalWeightLoss:
		return "How much weight have you currently lost?: "
	case GoalCardioDistance:
		return "Please enter how far you have travelled in kilometres: "
	case GoalBenchPress:
		return "How much were you able to bench press in your latest session?: "
	default:
		return "Please enter your latest measurement: "
	}
}
