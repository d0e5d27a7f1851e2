package profileService

import (
	"context"

	profiles "PortfolioGolang/internal/api/profile"
	profileRepository "PortfolioGolang/internal/api/profile/repository"
	"PortfolioGolang/internal/entity"
	"PortfolioGolang/pkg/media"

	"github.com/sirupsen/logrus"
)

type IProfileService interface {
	GetProfile(ctx context.Context) (*entity.Profile, error)
	GetExperiences(ctx context.Context) ([]entity.Experience, error)
	GetSkillCategories(ctx context.Context) ([]entity.SkillCategory, error)
	GetServices(ctx context.Context) (*profiles.ServicesResponse, error)
	GetFeaturedServices(ctx context.Context) ([]entity.Service, error)
	GetFeaturedTestimonials(ctx context.Context) ([]entity.Testimonial, error)
	OpenResume(ctx context.Context, profile *entity.Profile) (*profiles.Resume, error)
}

type profileService struct {
	log         *logrus.Logger
	profileRepo profileRepository.Repository
	media       media.Storage
}

func NewProfileService(
	log *logrus.Logger,
	profileRepo profileRepository.Repository,
	media media.Storage,
) IProfileService {
	return &profileService{
		log:         log,
		profileRepo: profileRepo,
		media:       media,
	}
}
