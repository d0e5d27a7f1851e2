package profileService

import (
	"context"
	"errors"

	profiles "PortfolioGolang/internal/api/profile"
	"PortfolioGolang/internal/entity"
	contextPkg "PortfolioGolang/pkg/context"
	"PortfolioGolang/pkg/media"

	"github.com/sirupsen/logrus"
)

func (s *profileService) GetProfile(ctx context.Context) (*entity.Profile, error) {
	requestID := contextPkg.GetRequestID(ctx)

	repo, err := s.profileRepo.NewClient(false)
	if err != nil {
		s.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("Failed to create repository client")
		return nil, err
	}

	profile, err := repo.Profiles.GetProfile(ctx)
	if err != nil {
		s.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("Failed to get profile")
		return nil, err
	}

	return profile, nil
}

func (s *profileService) GetExperiences(ctx context.Context) ([]entity.Experience, error) {
	requestID := contextPkg.GetRequestID(ctx)

	repo, err := s.profileRepo.NewClient(false)
	if err != nil {
		s.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("Failed to create repository client")
		return nil, err
	}

	experiences, err := repo.Experiences.GetAllExperiences(ctx)
	if err != nil {
		s.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("Failed to get experiences")
		return nil, err
	}

	return experiences, nil
}

// OpenResume streams the profile's resume from media storage. A missing profile,
// an empty resume key and a missing object are all ErrResumeNotFound.
func (s *profileService) OpenResume(ctx context.Context, profile *entity.Profile) (*profiles.Resume, error) {
	requestID := contextPkg.GetRequestID(ctx)

	if profile == nil || profile.Resume == "" || s.media == nil {
		s.log.WithFields(logrus.Fields{
			"request_id": requestID,
		}).Warn("No resume configured")
		return nil, profiles.ErrResumeNotFound
	}

	body, size, err := s.media.Open(ctx, profile.Resume)
	if err != nil {
		if errors.Is(err, media.ErrNotFound) {
			s.log.WithFields(logrus.Fields{
				"request_id": requestID,
				"key":        profile.Resume,
			}).Warn("Resume file missing from media storage")
			return nil, profiles.ErrResumeNotFound
		}
		s.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"key":        profile.Resume,
			"error":      err.Error(),
		}).Error("Failed to open resume")
		return nil, err
	}

	return &profiles.Resume{
		Filename: profile.ResumeFilename(),
		Body:     body,
		Size:     size,
	}, nil
}
