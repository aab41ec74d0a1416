package usecase

import (
	"context"

	"github.com/google/uuid"
)

// RegisterInput is the request body for creating an account.
type RegisterInput struct {
	Username string `json:"username" validate:"required,min=1,max=30"`
	Password string `json:"password" validate:"required,min=8"`
}

// LoginInput is the request body for logging in.
type LoginInput struct {
	Username string `json:"username" validate:"required"`
	Password string `json:"password" validate:"required"`
}

// AuthOutput carries the session tokens issued on register/login.
type AuthOutput struct {
	UserID       uuid.UUID `json:"user_id"`
	Username     string    `json:"username"`
	AccessToken  string    `json:"access_token"`
	RefreshToken string    `json:"refresh_token"`
}

// InventoryItem is one line of the profile's inventory listing.
type InventoryItem struct {
	ItemID      int    `json:"item_id"`
	Name        string `json:"name"`
	Description string `json:"description"`
	Quantity    int    `json:"quantity"`
}

// ProfileOutput is the authenticated user's own profile view.
type ProfileOutput struct {
	UserID      uuid.UUID        `json:"user_id"`
	Username    string           `json:"username"`
	Karma       int              `json:"karma"`
	FenceActive bool             `json:"fence_active"`
	Inventory   []*InventoryItem `json:"inventory"`
}

// UserUsecase covers account management and user-level settings.
type UserUsecase interface {
	// Register creates an account, grants the starter items, and signs
	// the new user in.
	Register(ctx context.Context, input *RegisterInput) (*AuthOutput, error)

	// Login verifies credentials and issues session tokens.
	Login(ctx context.Context, input *LoginInput) (*AuthOutput, error)

	// GetProfile returns the user's profile and inventory.
	GetProfile(ctx context.Context, userID uuid.UUID) (*ProfileOutput, error)

	// SetFence raises or lowers the user's fence. Raising it requires
	// owning a fence item.
	SetFence(ctx context.Context, userID uuid.UUID, active bool) error
}
