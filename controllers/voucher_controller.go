package controllers

import (
	"errors"

	"crumella-backend/pkg/resp"
	"crumella-backend/services"

	"github.com/gin-gonic/gin"
)

type VoucherController struct {
	svc *services.VoucherService
}

func NewVoucherController(svc *services.VoucherService) *VoucherController {
	return &VoucherController{svc: svc}
}

type validateVoucherReq struct {
	Code     string `json:"code" binding:"required"`
	Subtotal int64  `json:"subtotal" binding:"required,min=1"`
}

// POST /vouchers/validate: discount preview, no usage consumed
func (vc *VoucherController) Validate(c *gin.Context) {
	var req validateVoucherReq
	if err := c.ShouldBindJSON(&req); err != nil {
		resp.BadRequest(c, err.Error()); return
	}

	discount, v, err := vc.svc.Preview(req.Code, req.Subtotal)
	if err != nil {
		var expired *services.VoucherExpiredError
		var minSpend *services.MinSpendError
		switch {
		case errors.Is(err, services.ErrVoucherInvalid),
			errors.Is(err, services.ErrVoucherExhausted),
			errors.As(err, &expired),
			errors.As(err, &minSpend):
			resp.BadRequest(c, err.Error())
		default:
			resp.ServerError(c, err)
		}
		return
	}

	resp.OK(c, gin.H{"code": v.Code, "discount": discount})
}
