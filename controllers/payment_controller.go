package controllers

import (
	"errors"
	"strconv"

	"crumella-backend/pkg/resp"
	"crumella-backend/services"

	"github.com/gin-gonic/gin"
)

type PaymentController struct {
	svc *services.OrderService
}

func NewPaymentController(svc *services.OrderService) *PaymentController {
	return &PaymentController{svc: svc}
}

// POST /orders/:id/payment: checkout step 2, confirms the draft
func (pc *PaymentController) Confirm(c *gin.Context) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil || id <= 0 {
		resp.BadRequest(c, "invalid order id"); return
	}

	var req services.ConfirmPaymentReq
	if err := c.ShouldBindJSON(&req); err != nil {
		resp.BadRequest(c, err.Error()); return
	}

	order, err := pc.svc.ConfirmPayment(uint(id), &req)
	if err != nil {
		var expired *services.VoucherExpiredError
		var minSpend *services.MinSpendError
		switch {
		case errors.Is(err, services.ErrOrderNotFound):
			resp.NotFound(c, "order not found")
		case errors.Is(err, services.ErrOrderNotDraft):
			resp.Conflict(c, err.Error())
		case errors.Is(err, services.ErrProofRequired),
			errors.Is(err, services.ErrVoucherInvalid),
			errors.Is(err, services.ErrVoucherExhausted),
			errors.As(err, &expired),
			errors.As(err, &minSpend):
			resp.BadRequest(c, err.Error())
		default:
			resp.ServerError(c, err)
		}
		return
	}

	resp.OK(c, order)
}
