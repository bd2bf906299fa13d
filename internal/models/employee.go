package models

import (
	"time"

	"github.com/google/uuid"
)

// Employee is a person whose attendance is recorded
type Employee struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	Email     string    `json:"email"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// NewEmployee creates a new Employee with a generated UUID
func NewEmployee(name, email string) *Employee {
	now := time.Now()
	return &Employee{
		ID:        uuid.New().String(),
		Name:      name,
		Email:     email,
		CreatedAt: now,
		UpdatedAt: now,
	}
}
