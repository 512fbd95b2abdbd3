// ABOUTME: Exercise catalog entry and routine models.
// ABOUTME: Routines group exercise entries through a workout ID foreign key.
package models

// Exercise is a catalog entry keyed by a user-supplied ID.
type Exercise struct {
	ID       int64  `json:"id" yaml:"id"`
	Name     string `json:"name" yaml:"name"`
	Category string `json:"category" yaml:"category"`
}

// NewExercise builds an Exercise, rejecting a missing name or category.
func NewExercise(id int64, name, category string) (*Exercise, error) {
	if err := requireText("exercise name", name); err != nil {
		return nil, err
	}
	if err := requireText("category", category); err != nil {
		return nil, err
	}
	return &Exercise{ID: id, Name: name, Category: category}, nil
}

// Routine is a named workout grouping.
type Routine struct {
	WorkoutID int64  `json:"workout_id" yaml:"workout_id"`
	Name      string `json:"name" yaml:"name"`
}

// NewRoutine builds a Routine, rejecting an empty name.
func NewRoutine(workoutID int64, name string) (*Routine, error) {
	if err := requireText("routine name", name); err != nil {
		return nil, err
	}
	return &Routine{WorkoutID: workoutID, Name: name}, nil
}

// RoutineExercise attaches one exercise to a routine.
type RoutineExercise struct {
	EntryID      int64  `json:"entry_id" yaml:"entry_id"`
	ExerciseName string `json:"exercise_name" yaml:"exercise_name"`
	WorkoutID    int64  `json:"workout_id" yaml:"workout_id"`
}

// NewRoutineExercise builds a RoutineExercise, rejecting an empty exercise name.
func NewRoutineExercise(entryID int64, exerciseName string, workoutID int64) (*RoutineExercise, error) {
	if err := requireText("exercise name", exerciseName); err != nil {
		return nil, err
	}
	return &RoutineExercise{EntryID: entryID, ExerciseName: exerciseName, WorkoutID: workoutID}, nil
}

// RoutineRow is one line of the routine view: a routine joined with one entry.
type RoutineRow struct {
	WorkoutID    int64  `json:"workout_id"`
	RoutineName  string `json:"routine_name"`
	EntryID      int64  `json:"entry_id"`
	ExerciseName string `json:"exercise_name"`
}
