package topic

type CreateTopicDTO struct {
	Name        string `json:"name" binding:"required"`
	Description string `json:"description"`
	Position    *int   `json:"position"`
}

type UpdateTopicDTO struct {
	Name        *string `json:"name"`
	Description *string `json:"description"`
	Position    *int    `json:"position"`
}

type CreateSubtopicDTO struct {
	Name     string `json:"name" binding:"required"`
	Position *int   `json:"position"`
	Theory   string `json:"theory"`
}

type UpdateSubtopicDTO struct {
	Name     *string `json:"name"`
	Position *int    `json:"position"`
}
