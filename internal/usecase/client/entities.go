package client

import "time"

type CreateInput struct {
	Name    string `json:"name"`
	Email   string `json:"email"`
	Phone   string `json:"phone"`
	Company string `json:"company"`
}

// UpdateContactInput carries the only mutable fields once a client is
// referenced by a proposal or project.
type UpdateContactInput struct {
	Email string `json:"email"`
	Phone string `json:"phone"`
}

type ClientDTO struct {
	ClientID  string    `json:"client_id"`
	Name      string    `json:"name"`
	Email     string    `json:"email"`
	Phone     string    `json:"phone"`
	Company   string    `json:"company"`
	CreatedAt time.Time `json:"created_at"`
}
