package dto

// BookRequest is the payload for creating or updating a preparation book
type BookRequest struct {
	ID       string `json:"id,omitempty"`
	Title    string `json:"title"`
	Author   string `json:"author"`
	URL      string `json:"url"`
	ImageURL string `json:"imageUrl"`
	Category string `json:"category"`
}

// CourseRequest is the payload for creating or updating a preparation course
type CourseRequest struct {
	ID       string `json:"id,omitempty"`
	Platform string `json:"platform"`
	Title    string `json:"title"`
	URL      string `json:"url"`
}

// DeleteRequest carries the id of a preparation item to delete
type DeleteRequest struct {
	ID string `json:"id"`
}
