package model

import "portfolio-go-backend/ent"

// User is the model entity for the administrator account.
type User = ent.User

// CreateUserInput represents a mutation input for creating users.
type CreateUserInput struct {
	Name     string `json:"name"`
	Email    string `json:"email"`
	Password string `json:"password"`
}
