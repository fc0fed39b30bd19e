package dto

// ActorResponse identifies the staff member behind an action.
type ActorResponse struct {
	ID    uint   `json:"id"`
	Name  string `json:"name"`
	Email string `json:"email"`
}
