package impl

import (
	"context"

	"botany/internal/domain/catalog"
	"botany/internal/domain/entity"
	domainerrors "botany/internal/domain/errors"
	"botany/internal/domain/repository"
	"botany/internal/domain/service"
	"botany/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
)

type userService struct {
	userRepo      repository.UserRepository
	inventoryRepo repository.InventoryRepository
	items         *catalog.Items
	hasher        service.PasswordHasher
	tokens        service.TokenService
	clock         service.Clock
}

// NewUserService creates the use case service for accounts and settings.
func NewUserService(
	userRepo repository.UserRepository,
	inventoryRepo repository.InventoryRepository,
	items *catalog.Items,
	hasher service.PasswordHasher,
	tokens service.TokenService,
	clock service.Clock,
) usecase.UserUsecase {
	return &userService{
		userRepo:      userRepo,
		inventoryRepo: inventoryRepo,
		items:         items,
		hasher:        hasher,
		tokens:        tokens,
		clock:         clock,
	}
}

// Register creates an account, grants the starter items (a paper clip and
// one bottle of fertilizer), and signs the new user in.
func (s *userService) Register(ctx context.Context, input *usecase.RegisterInput) (*usecase.AuthOutput, error) {
	if _, err := s.userRepo.FindByUsername(ctx, input.Username); err == nil {
		return nil, domainerrors.ErrUserAlreadyExists
	} else if !errors.Is(err, repository.ErrUserNotFound) {
		return nil, errors.Wrap(err, "failed to check username")
	}

	hash, err := s.hasher.Hash(input.Password)
	if err != nil {
		return nil, domainerrors.ErrPasswordHashFailed.WrapMessage("failed to hash password")
	}

	now := s.clock.Now()
	user := &entity.User{
		ID:           uuid.New(),
		Username:     input.Username,
		PasswordHash: hash,
		CreatedAt:    now,
		UpdatedAt:    now,
	}
	if err := s.userRepo.Create(ctx, user); err != nil {
		return nil, errors.Wrap(err, "failed to create user")
	}

	if err := s.inventoryRepo.AddItem(ctx, user.ID, s.items.Paperclip.ID, 1); err != nil {
		return nil, errors.Wrap(err, "failed to grant starter paperclip")
	}
	if err := s.inventoryRepo.AddItem(ctx, user.ID, s.items.Fertilizer.ID, 1); err != nil {
		return nil, errors.Wrap(err, "failed to grant starter fertilizer")
	}

	return s.issueTokens(user)
}

// Login verifies credentials and issues session tokens.
func (s *userService) Login(ctx context.Context, input *usecase.LoginInput) (*usecase.AuthOutput, error) {
	user, err := s.userRepo.FindByUsername(ctx, input.Username)
	if errors.Is(err, repository.ErrUserNotFound) {
		return nil, domainerrors.ErrInvalidCredentials
	}
	if err != nil {
		return nil, errors.Wrap(err, "failed to load user")
	}

	if !s.hasher.Check(input.Password, user.PasswordHash) {
		return nil, domainerrors.ErrInvalidCredentials
	}

	return s.issueTokens(user)
}

// GetProfile returns the user's profile and inventory.
func (s *userService) GetProfile(ctx context.Context, userID uuid.UUID) (*usecase.ProfileOutput, error) {
	user, err := s.userRepo.FindByID(ctx, userID)
	if errors.Is(err, repository.ErrUserNotFound) {
		return nil, domainerrors.ErrUserNotFound
	}
	if err != nil {
		return nil, errors.Wrap(err, "failed to load user")
	}

	slots, err := s.inventoryRepo.ListByUser(ctx, userID)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list inventory")
	}

	inventory := make([]*usecase.InventoryItem, 0, len(slots))
	for _, slot := range slots {
		item, ok := s.items.Lookup(slot.ItemID)
		if !ok {
			return nil, errors.Errorf("inventory slot references unknown item %d", slot.ItemID)
		}
		inventory = append(inventory, &usecase.InventoryItem{
			ItemID:      item.ID,
			Name:        item.Name,
			Description: item.Description,
			Quantity:    slot.Quantity,
		})
	}

	return &usecase.ProfileOutput{
		UserID:      user.ID,
		Username:    user.Username,
		Karma:       user.Karma,
		FenceActive: user.FenceActive,
		Inventory:   inventory,
	}, nil
}

// SetFence raises or lowers the user's fence. Raising requires owning a
// fence item; the item is not consumed, owning it is enough.
func (s *userService) SetFence(ctx context.Context, userID uuid.UUID, active bool) error {
	user, err := s.userRepo.FindByID(ctx, userID)
	if errors.Is(err, repository.ErrUserNotFound) {
		return domainerrors.ErrUserNotFound
	}
	if err != nil {
		return errors.Wrap(err, "failed to load user")
	}

	if active {
		if user.FenceActive {
			return nil
		}
		quantity, err := s.inventoryRepo.GetQuantity(ctx, userID, s.items.Fence.ID)
		if err != nil {
			return errors.Wrap(err, "failed to check fence item")
		}
		if quantity == 0 {
			return domainerrors.ErrFenceUnavailable
		}
	} else if !user.FenceActive {
		return domainerrors.ErrFenceNotActive
	}

	user.FenceActive = active
	if err := s.userRepo.Update(ctx, user); err != nil {
		return errors.Wrap(err, "failed to update fence")
	}

	return nil
}

func (s *userService) issueTokens(user *entity.User) (*usecase.AuthOutput, error) {
	access, refresh, err := s.tokens.GenerateTokens(user.ID)
	if err != nil {
		return nil, errors.Wrap(err, "failed to generate tokens")
	}

	return &usecase.AuthOutput{
		UserID:       user.ID,
		Username:     user.Username,
		AccessToken:  access,
		RefreshToken: refresh,
	}, nil
}
