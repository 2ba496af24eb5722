package controllers

import (
	"errors"
	"net/http"
	"strconv"

	"crumella-backend/pkg/resp"
	"crumella-backend/services"

	"github.com/gin-gonic/gin"
)

type AdminController struct {
	orders   *services.OrderService
	vouchers *services.VoucherService
}

func NewAdminController(orders *services.OrderService, vouchers *services.VoucherService) *AdminController {
	return &AdminController{orders: orders, vouchers: vouchers}
}

func orderID(c *gin.Context) (uint, bool) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil || id <= 0 {
		resp.BadRequest(c, "invalid order id")
		return 0, false
	}
	return uint(id), true
}

// GET /admin/orders?status=
func (ac *AdminController) Orders(c *gin.Context) {
	out, err := ac.orders.ListForAdmin(c.Query("status"))
	if err != nil {
		resp.ServerError(c, err); return
	}
	resp.OK(c, out)
}

// PATCH /admin/orders/:id/status
func (ac *AdminController) UpdateStatus(c *gin.Context) {
	id, ok := orderID(c)
	if !ok {
		return
	}

	var req struct {
		Status string `json:"status" binding:"required"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		resp.BadRequest(c, err.Error()); return
	}

	if err := ac.orders.UpdateStatus(id, req.Status); err != nil {
		ac.writeOrderErr(c, err)
		return
	}
	resp.OK(c, gin.H{"status": req.Status})
}

// PATCH /admin/orders/:id/date
func (ac *AdminController) UpdateDate(c *gin.Context) {
	id, ok := orderID(c)
	if !ok {
		return
	}

	var req struct {
		Date string `json:"date" binding:"required"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		resp.BadRequest(c, err.Error()); return
	}

	if err := ac.orders.UpdateFulfillDate(id, req.Date); err != nil {
		ac.writeOrderErr(c, err)
		return
	}
	resp.OK(c, gin.H{"date": req.Date})
}

// PATCH /admin/orders/:id/payment-method
func (ac *AdminController) UpdatePaymentMethod(c *gin.Context) {
	id, ok := orderID(c)
	if !ok {
		return
	}

	var req struct {
		PaymentMethod string `json:"paymentMethod" binding:"required,oneof=Cash GCash 'Bank Transfer'"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		resp.BadRequest(c, err.Error()); return
	}

	if err := ac.orders.UpdatePaymentMethod(id, req.PaymentMethod); err != nil {
		ac.writeOrderErr(c, err)
		return
	}
	resp.OK(c, gin.H{"paymentMethod": req.PaymentMethod})
}

// PATCH /admin/orders/:id/total: operator price override
func (ac *AdminController) UpdateTotal(c *gin.Context) {
	id, ok := orderID(c)
	if !ok {
		return
	}

	var req struct {
		Total int64 `json:"total" binding:"required,min=0"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		resp.BadRequest(c, err.Error()); return
	}

	if err := ac.orders.OverrideTotal(id, req.Total); err != nil {
		ac.writeOrderErr(c, err)
		return
	}
	resp.OK(c, gin.H{"total": req.Total})
}

// DELETE /admin/orders/:id
func (ac *AdminController) DeleteOrder(c *gin.Context) {
	id, ok := orderID(c)
	if !ok {
		return
	}

	if err := ac.orders.Delete(id); err != nil {
		ac.writeOrderErr(c, err)
		return
	}
	resp.OK(c, gin.H{"deleted": id})
}

// GET /admin/orders/:id/ticket: printable slip
func (ac *AdminController) Ticket(c *gin.Context) {
	id, ok := orderID(c)
	if !ok {
		return
	}

	html, err := ac.orders.Ticket(id)
	if err != nil {
		ac.writeOrderErr(c, err)
		return
	}
	c.Data(http.StatusOK, "text/html; charset=utf-8", []byte(html))
}

// GET /admin/stats
func (ac *AdminController) Stats(c *gin.Context) {
	stats, err := ac.orders.Stats()
	if err != nil {
		resp.ServerError(c, err); return
	}
	resp.OK(c, stats)
}

// GET /admin/vouchers
func (ac *AdminController) Vouchers(c *gin.Context) {
	out, err := ac.vouchers.List()
	if err != nil {
		resp.ServerError(c, err); return
	}
	resp.OK(c, out)
}

// PATCH /admin/vouchers/:id/reset: zero the usage count
func (ac *AdminController) ResetVoucher(c *gin.Context) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil || id <= 0 {
		resp.BadRequest(c, "invalid voucher id"); return
	}

	if err := ac.vouchers.ResetUsage(uint(id)); err != nil {
		resp.NotFound(c, "voucher not found"); return
	}
	resp.OK(c, gin.H{"reset": id})
}

func (ac *AdminController) writeOrderErr(c *gin.Context, err error) {
	switch {
	case errors.Is(err, services.ErrOrderNotFound):
		resp.NotFound(c, "order not found")
	case errors.Is(err, services.ErrUnknownStatus), errors.Is(err, services.ErrBadDate):
		resp.BadRequest(c, err.Error())
	default:
		resp.ServerError(c, err)
	}
}
