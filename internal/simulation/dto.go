package simulation

type CreateCardDTO struct {
	Year    int    `json:"year" binding:"required"`
	Subject string `json:"subject" binding:"required"`
}

type CreateSimulationDTO struct {
	Title       string `json:"title" binding:"required"`
	Description string `json:"description"`
	DocumentURL string `json:"document_url"`
	TimeMinutes int    `json:"time_minutes"`
	IsComplete  bool   `json:"is_complete"`
}
