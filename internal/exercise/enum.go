package exercise

type Difficulty int

const (
	DifficultyBasic Difficulty = iota + 1
	DifficultyMedium
	DifficultyAdvanced
)

func (d Difficulty) Valid() bool {
	return d >= DifficultyBasic && d <= DifficultyAdvanced
}
