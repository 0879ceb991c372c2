package services

import (
	"context"
	"strings"

	"github.com/sbilibin2017/jobboard/internal/models"
)

//go:generate mockgen -source=profile.go -destination=profile_mock.go -package=services

// ProfileStore reads and saves seeker profiles.
type ProfileStore interface {
	GetSeekerProfile(ctx context.Context, userID int64) (*models.SeekerProfileDB, error)
	SaveSeekerProfile(ctx context.Context, userID int64, name string, location, education *string) (*models.SeekerProfileDB, error)
}

type ProfileService struct {
	profiles ProfileStore
}

func NewProfileService(profiles ProfileStore) *ProfileService {
	return &ProfileService{profiles: profiles}
}

// SaveSeekerProfile creates or replaces the caller's profile.
func (s *ProfileService) SaveSeekerProfile(ctx context.Context, user *models.User, req models.SeekerProfileRequest) (*models.SeekerProfileDB, error) {
	if err := requireRole(user, models.RoleJobSeeker, ErrJobSeekerOnly); err != nil {
		return nil, err
	}

	name := strings.TrimSpace(req.Name)
	if name == "" {
		return nil, ErrNameRequired
	}

	profile, err := s.profiles.SaveSeekerProfile(ctx, user.ID, name, req.Location, req.Education)
	if err != nil {
		return nil, internal("failed to save profile", err)
	}
	return profile, nil
}

// GetSeekerProfile returns the caller's profile.
func (s *ProfileService) GetSeekerProfile(ctx context.Context, user *models.User) (*models.SeekerProfileDB, error) {
	if err := requireRole(user, models.RoleJobSeeker, ErrJobSeekerOnly); err != nil {
		return nil, err
	}

	profile, err := s.profiles.GetSeekerProfile(ctx, user.ID)
	if err != nil {
		return nil, internal("failed to get profile", err)
	}
	if profile == nil {
		return nil, ErrProfileNotFound
	}
	return profile, nil
}
