package model

import "time"

type OrderStatus string

const (
	OrderPending        OrderStatus = "pending" // upstream alias for freshly placed orders
	OrderProcessing     OrderStatus = "Processing"
	OrderReceived       OrderStatus = "Received"
	OrderProcessed      OrderStatus = "Processed"
	OrderShipped        OrderStatus = "Shipped"
	OrderOutForDelivery OrderStatus = "OutForDelivery"
	OrderDelivered      OrderStatus = "Delivered"
	OrderCancelled      OrderStatus = "Cancelled"
	OrderReturnInit     OrderStatus = "ReturnInitiated"
	OrderReturned       OrderStatus = "Returned"
)

type RefundStatus string

const (
	RefundPending       RefundStatus = "pending"
	RefundProcessed     RefundStatus = "processed"
	RefundFailed        RefundStatus = "failed"
	RefundNotApplicable RefundStatus = "not_applicable"
)

const (
	PaymentCOD    = "cod"
	PaymentOnline = "online"
)

// orderTransitions lists the admin-permitted moves out of each status.
// Cancelled is terminal: once an order is cancelled no further admin
// transition is allowed.
var orderTransitions = map[OrderStatus][]OrderStatus{
	OrderPending:        {OrderProcessing, OrderShipped, OrderCancelled},
	OrderProcessing:     {OrderShipped, OrderCancelled},
	OrderReceived:       {OrderProcessed, OrderCancelled},
	OrderProcessed:      {OrderShipped, OrderCancelled},
	OrderShipped:        {OrderOutForDelivery},
	OrderOutForDelivery: {OrderDelivered},
	OrderDelivered:      {OrderReturnInit},
	OrderReturnInit:     {OrderReturned},
}

func (s OrderStatus) CanTransitionTo(to OrderStatus) bool {
	for _, t := range orderTransitions[s] {
		if t == to {
			return true
		}
	}
	return false
}

// Cancellable reports whether an admin may still cancel an order in this
// status. Only pre-shipment statuses qualify.
func (s OrderStatus) Cancellable() bool {
	switch s {
	case OrderPending, OrderProcessing, OrderReceived, OrderProcessed:
		return true
	}
	return false
}

type Order struct {
	Meta
	Items           []OrderItem   `json:"items"`
	CustomerName    string        `json:"customer_name"`
	CustomerEmail   string        `json:"customer_email"`
	ShippingAddress Address       `json:"shipping_address"`
	PaymentMethod   string        `json:"payment_method"`
	Status          OrderStatus   `json:"status"`
	CouponCode      string        `json:"coupon_code,omitempty"`
	Discount        float64       `json:"discount,omitempty"`
	Total           float64       `json:"total"`
	Shipment        *Shipment     `json:"shipment,omitempty"`
	Cancellation    *Cancellation `json:"cancellation,omitempty"`
}

type OrderItem struct {
	ProductID   string  `json:"product_id"`
	ProductName string  `json:"product_name"`
	Quantity    int     `json:"quantity"`
	UnitPrice   float64 `json:"unit_price"`
}

type Address struct {
	Line1   string `json:"line1"`
	Line2   string `json:"line2,omitempty"`
	City    string `json:"city"`
	State   string `json:"state"`
	Pincode string `json:"pincode"`
}

// Shipment holds courier tracking once an order is handed over.
type Shipment struct {
	AWBCode string `json:"awb_code"`
	Courier string `json:"courier"`
}

type Cancellation struct {
	Reason       string       `json:"reason"`
	RefundStatus RefundStatus `json:"refund_status"`
	CancelledAt  time.Time    `json:"cancelled_at"`
}
