package controllers

import (
	"errors"

	"crumella-backend/entity"
	"crumella-backend/pkg/resp"
	"crumella-backend/services"

	"github.com/gin-gonic/gin"
)

type FeedbackController struct {
	svc *services.FeedbackService
}

func NewFeedbackController(svc *services.FeedbackService) *FeedbackController {
	return &FeedbackController{svc: svc}
}

// POST /feedbacks
func (fc *FeedbackController) Create(c *gin.Context) {
	var req services.FeedbackReq
	if err := c.ShouldBindJSON(&req); err != nil {
		resp.BadRequest(c, err.Error()); return
	}

	fb, err := fc.svc.Create(&req)
	if err != nil {
		if errors.Is(err, services.ErrNoRatings) {
			resp.BadRequest(c, err.Error()); return
		}
		resp.ServerError(c, err); return
	}

	resp.Created(c, gin.H{"id": fb.ID})
}

// GET /admin/feedbacks
func (fc *FeedbackController) List(c *gin.Context) {
	var out []entity.Feedback
	if err := fc.svc.FindAll(&out); err != nil {
		resp.ServerError(c, err); return
	}
	resp.OK(c, out)
}
