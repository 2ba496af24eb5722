package services

import (
	"errors"
	"html/template"
	"strings"

	"crumella-backend/entity"

	"gorm.io/gorm"
)

// self-contained 80mm receipt; opens the print dialog on load
var ticketTmpl = template.Must(template.New("ticket").Parse(`<!DOCTYPE html>
<html>
<head>
<title>Order {{.TrackingNumber}}</title>
<style>
  body { font-family: 'Courier New', monospace; padding: 20px; max-width: 320px; margin: 0 auto; color: #000; }
  .header { text-align: center; margin-bottom: 20px; border-bottom: 2px dashed #000; padding-bottom: 15px; }
  h1 { font-size: 24px; margin: 0 0 5px 0; font-weight: 900; }
  .meta { font-size: 12px; margin-bottom: 5px; }
  .tag { display: inline-block; background: #000; color: #fff; padding: 2px 6px; font-weight: bold; text-transform: uppercase; margin-top: 5px; }
  .section { margin-bottom: 15px; border-bottom: 1px dashed #ccc; padding-bottom: 15px; }
  .label { font-size: 10px; text-transform: uppercase; color: #666; margin-bottom: 2px; }
  .value { font-size: 14px; font-weight: bold; }
  .items { margin: 15px 0; }
  .item { display: flex; align-items: flex-start; margin-bottom: 8px; font-size: 14px; }
  .qty { font-weight: 900; width: 30px; font-size: 16px; }
  .name { flex: 1; }
  .notes { background: #f0f0f0; padding: 10px; font-style: italic; font-size: 12px; margin-top: 10px; }
  @media print { body { -webkit-print-color-adjust: exact; } }
</style>
</head>
<body>
  <div class="header">
    <h1>CRUMELLA</h1>
    <div class="meta">{{.TrackingNumber}} &middot; {{.CreatedAt.Format "Jan 2, 2006"}}</div>
    <span class="tag">{{.OrderType}}</span>
  </div>
  <div class="section">
    <div class="label">Customer</div>
    <div class="value">{{.CustomerName}}</div>
    <div class="value">{{.Phone}}</div>
  </div>
  <div class="section">
    <div class="label">{{if .IsDelivery}}Deliver{{else}}Pickup{{end}} on</div>
    <div class="value">{{.FulfillDate}} &middot; {{.TimeWindow}}</div>
    <div class="label">{{if .IsDelivery}}Address{{else}}Location{{end}}</div>
    <div class="value">{{.Place}}</div>
  </div>
  <div class="items">
    {{range .Items}}<div class="item"><span class="qty">{{.Qty}}x</span><span class="name">{{.Name}}</span></div>
    {{end}}
  </div>
  {{if .Notes}}<div class="notes">{{.Notes}}</div>{{end}}
  <script>window.onload = () => { window.print(); setTimeout(() => window.close(), 500); };</script>
</body>
</html>
`))

type ticketData struct {
	*entity.Order
	IsDelivery bool
	Place      string
}

// Ticket renders the printable kitchen/dispatch slip for one order.
func (s *OrderService) Ticket(orderID uint) (string, error) {
	o, err := s.Repo.GetOrderWithItems(orderID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return "", ErrOrderNotFound
		}
		return "", err
	}

	isDelivery := o.OrderType == OrderTypeDelivery
	place := o.PickupSite
	if isDelivery {
		place = o.Address
	}

	var b strings.Builder
	if err := ticketTmpl.Execute(&b, ticketData{Order: o, IsDelivery: isDelivery, Place: place}); err != nil {
		return "", err
	}
	return b.String(), nil
}
