package exercise

import "gorm.io/datatypes"

type CreateCardDTO struct {
	Description string     `json:"description" binding:"required"`
	Difficulty  Difficulty `json:"difficulty" binding:"required"`
}

type CreateExerciseDTO struct {
	Question datatypes.JSON `json:"question" binding:"required"`
	Solution datatypes.JSON `json:"solution"`
	Position *int           `json:"position"`
}
