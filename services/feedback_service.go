package services

import (
	"errors"

	"crumella-backend/entity"
	"crumella-backend/repository"
)

type FeedbackService struct {
	repo *repository.FeedbackRepository
}

func NewFeedbackService(repo *repository.FeedbackRepository) *FeedbackService {
	return &FeedbackService{repo: repo}
}

type RatingIn struct {
	Taste      int `json:"taste" binding:"min=0,max=5"`
	Texture    int `json:"texture" binding:"min=0,max=5"`
	Smell      int `json:"smell" binding:"min=0,max=5"`
	Aftertaste int `json:"aftertaste" binding:"min=0,max=5"`
}

type FeedbackReq struct {
	FullName      string              `json:"fullName" binding:"required"`
	FacebookName  string              `json:"facebookName"`
	Email         string              `json:"email" binding:"required,email"`
	FavoriteItem  string              `json:"favoriteItem"`
	FinalThoughts string              `json:"finalThoughts"`
	Ratings       map[string]RatingIn `json:"ratings"` // keyed by product name
}

var ErrNoRatings = errors.New("rate at least one cookie")

func (s *FeedbackService) Create(req *FeedbackReq) (*entity.Feedback, error) {
	if len(req.Ratings) == 0 {
		return nil, ErrNoRatings
	}

	fb := &entity.Feedback{
		FullName:      req.FullName,
		FacebookName:  req.FacebookName,
		Email:         req.Email,
		FavoriteItem:  req.FavoriteItem,
		FinalThoughts: req.FinalThoughts,
	}
	for product, r := range req.Ratings {
		fb.Ratings = append(fb.Ratings, entity.FeedbackRating{
			Product:    product,
			Taste:      r.Taste,
			Texture:    r.Texture,
			Smell:      r.Smell,
			Aftertaste: r.Aftertaste,
		})
	}

	if err := s.repo.Create(fb); err != nil {
		return nil, err
	}
	return fb, nil
}

func (s *FeedbackService) FindAll(out *[]entity.Feedback) error {
	return s.repo.FindAll(out)
}
