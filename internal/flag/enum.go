package flag

type TargetKind string

const (
	TargetKindExerciseCard TargetKind = "EXERCISE_CARD"
	TargetKindSimulation   TargetKind = "SIMULATION"
)

func (k TargetKind) Valid() bool {
	return k == TargetKindExerciseCard || k == TargetKindSimulation
}
