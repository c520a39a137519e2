package services

import (
	"context"
	"errors"
	"fmt"

	"github.com/easyapt/easyapt-go/internal/client/api"
	"github.com/easyapt/easyapt-go/internal/client/models"
)

var ErrProfileIncomplete = errors.New("full name and phone are required")

// ProfileService manages the patient profile of the logged-in user.
type ProfileService interface {
	// Get returns the profile, or nil when none has been created yet.
	Get(ctx context.Context) (*models.Profile, error)

	// Save creates or replaces the profile.
	Save(ctx context.Context, update models.ProfileUpdate) (*models.Profile, error)
}

type profileService struct {
	client api.Client
}

func NewProfileService(client api.Client) ProfileService {
	return &profileService{client: client}
}

func (p *profileService) Get(ctx context.Context) (*models.Profile, error) {
	return p.client.GetProfile(ctx)
}

func (p *profileService) Save(ctx context.Context, update models.ProfileUpdate) (*models.Profile, error) {
	if update.FullName == "" || update.Phone == "" {
		return nil, ErrProfileIncomplete
	}
	profile, err := p.client.SaveProfile(ctx, update)
	if err != nil {
		return nil, fmt.Errorf("save profile: %w", err)
	}
	return profile, nil
}
