package profile

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"

	"github.com/iudanet/drfriend/internal/models"
	"github.com/iudanet/drfriend/internal/storage"
	"github.com/iudanet/drfriend/internal/validation"
)

//go:generate moq -out store_mock.go . Service

// Service defines the profile operations used by the CLI and the HTTP API
type Service interface {
	Load(ctx context.Context) (models.Profile, error)
	Save(ctx context.Context, p models.Profile) error
	Clear(ctx context.Context) error
}

// Store keeps the user profile under storage.KeyProfile.
// The profile is independent of records and trash.
type Store struct {
	kv     storage.KV
	logger *slog.Logger
}

var _ Service = (*Store)(nil)

// NewStore creates a new profile store on top of kv
func NewStore(kv storage.KV, logger *slog.Logger) *Store {
	return &Store{
		kv:     kv,
		logger: logger,
	}
}

// Load returns the saved profile.
// Missing or malformed data yields an empty profile.
func (s *Store) Load(ctx context.Context) (models.Profile, error) {
	raw, ok, err := storage.Read(ctx, s.kv, storage.KeyProfile)
	if err != nil {
		return models.Profile{}, fmt.Errorf("failed to load profile: %w", err)
	}
	if !ok {
		return models.Profile{}, nil
	}

	var p models.Profile
	if err := json.Unmarshal(raw, &p); err != nil {
		s.logger.Warn("profile document is malformed, using empty profile", "error", err)
		return models.Profile{}, nil
	}
	return p, nil
}

// Save validates and persists p, overwriting the previous profile
func (s *Store) Save(ctx context.Context, p models.Profile) error {
	if err := validation.ValidateProfile(p); err != nil {
		return fmt.Errorf("%w: %w", ErrInvalidProfile, err)
	}

	data, err := json.Marshal(p)
	if err != nil {
		return fmt.Errorf("failed to marshal profile: %w", err)
	}

	if err := storage.Write(ctx, s.kv, storage.KeyProfile, data); err != nil {
		return fmt.Errorf("failed to save profile: %w", err)
	}

	s.logger.Info("profile saved", "name", p.Name)
	return nil
}

// Clear removes the profile. Records and trash are not touched
func (s *Store) Clear(ctx context.Context) error {
	if err := storage.Remove(ctx, s.kv, storage.KeyProfile); err != nil {
		return fmt.Errorf("failed to clear profile: %w", err)
	}

	s.logger.Info("profile cleared")
	return nil
}
