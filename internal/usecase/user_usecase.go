// Package usecase contains the application-specific business rules.
// It orchestrates the domain layer to perform tasks.
package usecase

import (
	"context"

	"taskman/internal/domain/entity"
)

// --- Input DTOs ---

// SignUpInput defines the data required to register a new account.
type SignUpInput struct {
	Email    string
	Password string
}

// LoginInput defines the data required for a user to log in.
type LoginInput struct {
	Email    string
	Password string
}

// --- Output DTOs ---

// SignUpOutput returns the newly created account's basic information.
type SignUpOutput struct {
	User *entity.User
}

// LoginOutput returns the issued bearer token after a successful login.
type LoginOutput struct {
	Token string
	User  *entity.User
}

// UserUsecase defines the interface for account-related business operations.
// This is the contract that the delivery layer (e.g., API handlers) will depend on.
type UserUsecase interface {
	// SignUp creates a new credential, hashing the password before it is
	// persisted. A taken email fails with the DuplicateEmail domain error.
	SignUp(ctx context.Context, input *SignUpInput) (*SignUpOutput, error)

	// Login verifies the supplied credentials and issues a bearer token.
	// Unknown email and wrong password both surface as the same
	// invalid-credentials error to the caller.
	Login(ctx context.Context, input *LoginInput) (*LoginOutput, error)
}
