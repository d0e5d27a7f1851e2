package profileService

import (
	"context"

	profiles "PortfolioGolang/internal/api/profile"
	"PortfolioGolang/internal/entity"
	contextPkg "PortfolioGolang/pkg/context"

	"github.com/sirupsen/logrus"
)

func (s *profileService) GetServices(ctx context.Context) (*profiles.ServicesResponse, error) {
	requestID := contextPkg.GetRequestID(ctx)

	repo, err := s.profileRepo.NewClient(false)
	if err != nil {
		s.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("Failed to create repository client")
		return nil, err
	}

	services, err := repo.Services.GetAllServices(ctx)
	if err != nil {
		s.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("Failed to get services")
		return nil, err
	}

	res := &profiles.ServicesResponse{
		Featured: []entity.Service{},
		Regular:  []entity.Service{},
	}
	for _, service := range services {
		if service.IsFeatured {
			res.Featured = append(res.Featured, service)
		} else {
			res.Regular = append(res.Regular, service)
		}
	}

	return res, nil
}

func (s *profileService) GetFeaturedServices(ctx context.Context) ([]entity.Service, error) {
	requestID := contextPkg.GetRequestID(ctx)

	repo, err := s.profileRepo.NewClient(false)
	if err != nil {
		s.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("Failed to create repository client")
		return nil, err
	}

	services, err := repo.Services.GetFeaturedServices(ctx, profiles.FeaturedServicesLimit)
	if err != nil {
		s.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("Failed to get featured services")
		return nil, err
	}

	return services, nil
}

func (s *profileService) GetFeaturedTestimonials(ctx context.Context) ([]entity.Testimonial, error) {
	requestID := contextPkg.GetRequestID(ctx)

	repo, err := s.profileRepo.NewClient(false)
	if err != nil {
		s.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("Failed to create repository client")
		return nil, err
	}

	testimonials, err := repo.Testimonials.GetFeaturedTestimonials(ctx, profiles.FeaturedTestimonialsLimit)
	if err != nil {
		s.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("Failed to get featured testimonials")
		return nil, err
	}

	return testimonials, nil
}
