package services

import (
	"strings"

	"github.com/google/uuid"
	"github.com/gosimple/slug"
	"gorm.io/datatypes"

	"github.com/kitaezov/FeedbackDeliveryService-sub003/entity"
	"github.com/kitaezov/FeedbackDeliveryService-sub003/pkg/apperr"
	"github.com/kitaezov/FeedbackDeliveryService-sub003/repository"
)

type RestaurantService struct {
	Repo *repository.RestaurantRepository
}

func NewRestaurantService(repo *repository.RestaurantRepository) *RestaurantService {
	return &RestaurantService{Repo: repo}
}

type RestaurantInput struct {
	Name         string
	Category     string
	PriceRange   string
	MinPrice     int64
	DeliveryTime int
	Criteria     datatypes.JSON
}

// makeSlug transliterates the name deterministically; on collision a
// random suffix keeps the unique index satisfied.
func (s *RestaurantService) makeSlug(name string) (string, error) {
	base := slug.Make(name)
	if base == "" {
		base = "restaurant"
	}

	count, err := s.Repo.CountBySlug(base)
	if err != nil {
		return "", err
	}
	if count == 0 {
		return base, nil
	}
	return base + "-" + uuid.NewString()[:8], nil
}

func (s *RestaurantService) Create(in RestaurantInput) (*entity.Restaurant, error) {
	name := strings.TrimSpace(in.Name)
	if name == "" {
		return nil, apperr.Validation("name is required")
	}

	sl, err := s.makeSlug(name)
	if err != nil {
		return nil, apperr.Internal(err)
	}

	rest := &entity.Restaurant{
		Name:         name,
		Slug:         sl,
		Category:     in.Category,
		PriceRange:   in.PriceRange,
		MinPrice:     in.MinPrice,
		DeliveryTime: in.DeliveryTime,
		Criteria:     in.Criteria,
		IsActive:     true,
	}
	if err := s.Repo.Create(rest); err != nil {
		return nil, apperr.Internal(err)
	}
	return rest, nil
}

func (s *RestaurantService) Update(id uint, updates map[string]any) (*entity.Restaurant, error) {
	if _, err := s.Repo.FindByID(id); err != nil {
		return nil, apperr.NotFound("restaurant not found")
	}
	if err := s.Repo.Update(id, updates); err != nil {
		return nil, apperr.Internal(err)
	}
	rest, err := s.Repo.FindByID(id)
	if err != nil {
		return nil, apperr.Internal(err)
	}
	return rest, nil
}

func (s *RestaurantService) Delete(id uint) error {
	if _, err := s.Repo.FindByID(id); err != nil {
		return apperr.NotFound("restaurant not found")
	}
	if err := s.Repo.Delete(id); err != nil {
		return apperr.Internal(err)
	}
	return nil
}

func (s *RestaurantService) Get(id uint) (*entity.Restaurant, error) {
	rest, err := s.Repo.FindByID(id)
	if err != nil {
		return nil, apperr.NotFound("restaurant not found")
	}
	return rest, nil
}

func (s *RestaurantService) GetBySlug(sl string) (*entity.Restaurant, error) {
	rest, err := s.Repo.FindBySlug(sl)
	if err != nil {
		return nil, apperr.NotFound("restaurant not found")
	}
	return rest, nil
}

type RestaurantPage struct {
	Items []entity.Restaurant `json:"items"`
	Limit int                 `json:"limit"`
	Total int64               `json:"total"`
}

func (s *RestaurantService) List(limit, offset int) (*RestaurantPage, error) {
	limit, offset = clampPaging(limit, offset)

	items, total, err := s.Repo.ListActive(limit, offset)
	if err != nil {
		return nil, apperr.Internal(err)
	}
	return &RestaurantPage{Items: items, Limit: limit, Total: total}, nil
}
