package domain

import "time"

// DefaultMembership is assigned to every newly registered user.
const DefaultMembership = "Gold Member"

type User struct {
	UserID         string    `json:"id" dynamodbav:"user_id"`
	Name           string    `json:"name" dynamodbav:"name"`
	Email          string    `json:"email" dynamodbav:"email"`
	Phone          string    `json:"phone" dynamodbav:"phone"`
	PasswordHash   string    `json:"-" dynamodbav:"password_hash"`
	Age            *int      `json:"age,omitempty" dynamodbav:"age"`
	Gender         string    `json:"gender,omitempty" dynamodbav:"gender"`
	Height         string    `json:"height,omitempty" dynamodbav:"height"`
	Weight         string    `json:"weight,omitempty" dynamodbav:"weight"`
	MembershipType string    `json:"membership_type" dynamodbav:"membership_type"`
	CreatedAt      time.Time `json:"created" dynamodbav:"created_at"`
	UpdatedAt      time.Time `json:"updated" dynamodbav:"updated_at"`
}

type RegisterRequest struct {
	Name     string `json:"name" validate:"required"`
	Email    string `json:"email" validate:"required,email"`
	Phone    string `json:"phone" validate:"required"`
	Password string `json:"password" validate:"required,max=72"`
	Age      *int   `json:"age"`
	Gender   string `json:"gender"`
	Height   string `json:"height"`
	Weight   string `json:"weight"`
}

type LoginRequest struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
}
