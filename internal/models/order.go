package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// DeliveryType says whether the order is brought to the customer or picked up.
type DeliveryType string

const (
	DeliveryTypeDelivery DeliveryType = "delivery"
	DeliveryTypePickup   DeliveryType = "pickup"
)

// Valid reports whether t is one of the two supported delivery types.
func (t DeliveryType) Valid() bool {
	return t == DeliveryTypeDelivery || t == DeliveryTypePickup
}

// PaymentMethod is the closed set of accepted payment options.
type PaymentMethod string

const (
	PaymentCash       PaymentMethod = "cash"
	PaymentCreditCard PaymentMethod = "credit_card"
	PaymentDebitCard  PaymentMethod = "debit_card"
	PaymentPix        PaymentMethod = "pix"
)

func (m PaymentMethod) Valid() bool {
	switch m {
	case PaymentCash, PaymentCreditCard, PaymentDebitCard, PaymentPix:
		return true
	}
	return false
}

// OrderStatus is the closed set of states an order moves through.
// The linear progression is pending -> confirmed -> preparing ->
// out_for_delivery -> delivered; cancelled is a terminal state reachable
// from any of them and never part of the progression.
type OrderStatus string

const (
	StatusPending        OrderStatus = "pending"
	StatusConfirmed      OrderStatus = "confirmed"
	StatusPreparing      OrderStatus = "preparing"
	StatusOutForDelivery OrderStatus = "out_for_delivery"
	StatusDelivered      OrderStatus = "delivered"
	StatusCancelled      OrderStatus = "cancelled"
)

// Valid reports whether s belongs to the closed status set, cancelled included.
func (s OrderStatus) Valid() bool {
	switch s {
	case StatusPending, StatusConfirmed, StatusPreparing, StatusOutForDelivery, StatusDelivered, StatusCancelled:
		return true
	}
	return false
}

// Order is a persisted purchase aggregate. It is created atomically with its
// lines at checkout and mutated afterwards only by the staff fulfillment
// process advancing Status. Orders are never deleted.
type Order struct {
	ID              string        `gorm:"primaryKey" json:"id"`
	UserID          string        `gorm:"column:usuario_id;index;not null" json:"user_id"`
	DeliveryType    DeliveryType  `gorm:"column:tipo_entrega;not null" json:"delivery_type"`
	DeliveryAddress *string       `gorm:"column:endereco_entrega" json:"delivery_address,omitempty"`
	TotalValue      float64       `gorm:"column:valor_total" json:"total_value"`
	PaymentMethod   PaymentMethod `gorm:"column:forma_pagamento" json:"payment_method"`
	Notes           string        `gorm:"column:observacoes" json:"notes"`
	Status          OrderStatus   `gorm:"column:status;default:'pending'" json:"status"`
	Lines           []OrderLine   `gorm:"foreignKey:OrderID" json:"lines,omitempty"`
	CreatedAt       time.Time     `json:"created_at"`
	UpdatedAt       time.Time     `json:"-"`
}

func (Order) TableName() string {
	return "pedidos"
}

func (o *Order) BeforeCreate(tx *gorm.DB) error {
	if o.ID == "" {
		o.ID = uuid.New().String()
	}
	return nil
}

// OrderLine is one pizza of an order. The unit price is captured at order
// time and stays fixed regardless of later catalog changes.
type OrderLine struct {
	ID        string    `gorm:"primaryKey" json:"id"`
	OrderID   string    `gorm:"column:pedido_id;index;not null" json:"order_id"`
	PizzaID   string    `gorm:"column:pizza_id;not null" json:"pizza_id"`
	Size      PizzaSize `gorm:"column:tamanho" json:"size"`
	Quantity  int       `gorm:"column:quantidade" json:"quantity"`
	UnitPrice float64   `gorm:"column:preco_unitario" json:"unit_price"`
	Notes     string    `gorm:"column:observacoes" json:"notes"`
	Pizza     *Pizza    `gorm:"foreignKey:PizzaID" json:"pizza,omitempty"`
	CreatedAt time.Time `json:"-"`
}

func (OrderLine) TableName() string {
	return "itens_pedido"
}

func (l *OrderLine) BeforeCreate(tx *gorm.DB) error {
	if l.ID == "" {
		l.ID = uuid.New().String()
	}
	return nil
}
