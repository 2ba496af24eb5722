package controllers

import (
	"errors"
	"time"

	"crumella-backend/pkg/resp"
	"crumella-backend/services"

	"github.com/gin-gonic/gin"
)

type OrderController struct {
	svc *services.OrderService
}

func NewOrderController(svc *services.OrderService) *OrderController {
	return &OrderController{svc: svc}
}

// POST /orders: checkout step 1, creates the draft order
func (oc *OrderController) Checkout(c *gin.Context) {
	var req services.CheckoutReq
	if err := c.ShouldBindJSON(&req); err != nil {
		resp.BadRequest(c, err.Error()); return
	}

	out, err := oc.svc.Checkout(&req)
	if err != nil {
		switch {
		case errors.Is(err, services.ErrUnknownItem),
			errors.Is(err, services.ErrAddressRequired),
			errors.Is(err, services.ErrSiteRequired),
			errors.Is(err, services.ErrDateUnavailable):
			resp.BadRequest(c, err.Error())
		default:
			resp.ServerError(c, err)
		}
		return
	}

	resp.Created(c, out)
}

// GET /availability?orderType=&pickupLocation=
func (oc *OrderController) Availability(c *gin.Context) {
	orderType := c.Query("orderType")
	site := c.Query("pickupLocation")
	if orderType != services.OrderTypeDelivery && orderType != services.OrderTypePickup {
		resp.BadRequest(c, "orderType must be delivery or pickup"); return
	}

	dates := services.AvailableDates(orderType, site, time.Now())
	out := make([]string, 0, len(dates))
	for _, d := range dates {
		out = append(out, d.Format("2006-01-02"))
	}
	resp.OK(c, gin.H{"dates": out})
}

// GET /orders/track/:trackingNumber
func (oc *OrderController) Track(c *gin.Context) {
	view, err := oc.svc.Track(c.Param("trackingNumber"))
	if err != nil {
		if errors.Is(err, services.ErrOrderNotFound) {
			resp.NotFound(c, "order not found"); return
		}
		resp.ServerError(c, err); return
	}
	resp.OK(c, view)
}
