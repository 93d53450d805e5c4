package services

import (
	"context"
	"fmt"
	"strings"

	"github.com/destegai/scan-server/models"
	"github.com/destegai/scan-server/repositories"
	"github.com/destegai/scan-server/storage"
	"github.com/destegai/scan-server/userctx"
)

// AccountService owns the user directory side of sign-in and profile
// management. Credentials live with the identity provider; this service
// only mirrors the directory entry and writes the audit hooks.
type AccountService interface {
	SignIn(ctx context.Context, uid, name, email string) (*models.User, error)
	SignOut(ctx context.Context, email string)
	GetProfile(ctx context.Context, uid string) (*models.User, error)
	UpdateProfileName(ctx context.Context, identity userctx.Identity, form *models.ProfileForm) error
	UpdateAvatar(ctx context.Context, identity userctx.Identity, filename string, data []byte) (string, error)
	RecordEmailChange(ctx context.Context, identity userctx.Identity, newEmail string)
}

// accountService implements AccountService interface
type accountService struct {
	userRepo repositories.UserRepository
	activity ActivityService
	blobs    storage.BlobStore
}

// NewAccountService creates a new account service
func NewAccountService(userRepo repositories.UserRepository, activity ActivityService, blobs storage.BlobStore) AccountService {
	return &accountService{
		userRepo: userRepo,
		activity: activity,
		blobs:    blobs,
	}
}

// SignIn upserts the directory entry for a verified identity and writes
// the sign-in audit hook. First sign-in doubles as account creation.
func (s *accountService) SignIn(ctx context.Context, uid, name, email string) (*models.User, error) {
	if uid == "" || email == "" {
		return nil, fmt.Errorf("%w: identity missing subject or email", ErrInvalidInput)
	}

	_, lookupErr := s.userRepo.GetByID(ctx, uid)
	isNew := lookupErr != nil

	user := &models.User{
		ID:    uid,
		Name:  name,
		Email: email,
	}
	if err := s.userRepo.Upsert(ctx, user); err != nil {
		return nil, fmt.Errorf("failed to store user: %w", err)
	}

	stored, err := s.userRepo.GetByID(ctx, uid)
	if err != nil {
		return nil, fmt.Errorf("failed to load user after sign-in: %w", err)
	}

	if isNew {
		s.activity.Append(ctx, email, fmt.Sprintf("New user created named %s (%s)", stored.Name, email))
	} else {
		s.activity.Append(ctx, email, fmt.Sprintf("%s logged in", email))
	}

	return stored, nil
}

// SignOut writes the sign-out audit hook
func (s *accountService) SignOut(ctx context.Context, email string) {
	if email == "" {
		return
	}
	s.activity.Append(ctx, email, fmt.Sprintf("%s logged out", email))
}

// GetProfile retrieves the acting user's directory entry
func (s *accountService) GetProfile(ctx context.Context, uid string) (*models.User, error) {
	return s.userRepo.GetByID(ctx, uid)
}

// UpdateProfileName changes the display name and records the edit
func (s *accountService) UpdateProfileName(ctx context.Context, identity userctx.Identity, form *models.ProfileForm) error {
	if errs := form.Validate(); len(errs) > 0 {
		return fmt.Errorf("%w: %s", ErrInvalidInput, strings.Join(errs, ", "))
	}

	if err := s.userRepo.UpdateName(ctx, identity.UID, form.Name); err != nil {
		return fmt.Errorf("failed to update profile name: %w", err)
	}

	s.activity.Append(ctx, identity.Email, fmt.Sprintf("Updated profile name to %s", form.Name))
	return nil
}

// UpdateAvatar stores the avatar image in the blob store and points the
// directory entry at it
func (s *accountService) UpdateAvatar(ctx context.Context, identity userctx.Identity, filename string, data []byte) (string, error) {
	if len(data) == 0 {
		return "", fmt.Errorf("%w: empty avatar upload", ErrInvalidInput)
	}

	ref, err := s.blobs.Put(ctx, fmt.Sprintf("avatars/%s%s", identity.UID, extOf(filename)), data)
	if err != nil {
		return "", fmt.Errorf("failed to store avatar: %w", err)
	}

	if err := s.userRepo.UpdateAvatarRef(ctx, identity.UID, ref); err != nil {
		return "", fmt.Errorf("failed to update avatar reference: %w", err)
	}

	s.activity.Append(ctx, identity.Email, "Updated profile avatar")
	return ref, nil
}

// RecordEmailChange audits an email change request. The change itself
// happens at the identity provider after re-authentication; historical
// records keep the old address on purpose.
func (s *accountService) RecordEmailChange(ctx context.Context, identity userctx.Identity, newEmail string) {
	s.activity.Append(ctx, identity.Email, fmt.Sprintf("Requested email change to %s", newEmail))
}

func extOf(filename string) string {
	if idx := strings.LastIndex(filename, "."); idx >= 0 {
		return strings.ToLower(filename[idx:])
	}
	return ""
}
