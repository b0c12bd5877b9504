package models

// PreparationBook represents a recommended preparation book
type PreparationBook struct {
	ID       string `json:"id"`
	Title    string `json:"title"`
	Author   string `json:"author"`
	URL      string `json:"url"`
	ImageURL string `json:"imageUrl"`
	Category string `json:"category"`
}

// PreparationCourse represents a recommended preparation course
type PreparationCourse struct {
	ID       string `json:"id"`
	Platform string `json:"platform"`
	Title    string `json:"title"`
	URL      string `json:"url"`
}
