package services

import (
	"errors"
	"fmt"
	"strings"

	log "github.com/sirupsen/logrus"
	"gorm.io/gorm"

	"github.com/Lizandro-reis/pizzaria-iedita-app/internal/models"
)

var (
	ErrCartEmpty           = errors.New("cart is empty")
	ErrAddressRequired     = errors.New("delivery address is required for delivery orders")
	ErrInvalidDeliveryType = errors.New("invalid delivery type")
	ErrInvalidPayment      = errors.New("invalid payment method")
	ErrOrderNotFound       = errors.New("order not found")
	ErrInvalidOrderStatus  = errors.New("invalid order status")
)

// CheckoutInput carries the delivery and payment choices of a checkout
// submission. The items come from the user's cart, never from the request.
type CheckoutInput struct {
	DeliveryType    models.DeliveryType
	DeliveryAddress string
	PaymentMethod   models.PaymentMethod
	Notes           string
}

// OrderService turns carts into persisted orders and serves order history.
type OrderService interface {
	// Checkout validates the input and the cart, then creates the order and
	// all of its lines in one transaction. The cart is cleared only after
	// the transaction commits. Returns the persisted order.
	Checkout(userID string, input CheckoutInput) (*models.Order, error)
	// GetOrdersByUser lists the user's orders, newest first, without lines.
	GetOrdersByUser(userID string) ([]models.Order, error)
	// GetOrderForUser fetches one order with its lines, scoped to the owner.
	GetOrderForUser(userID, orderID string) (*models.Order, error)
	// UpdateStatus advances an order's status; used by the staff process.
	UpdateStatus(orderID string, status models.OrderStatus) error
}

type orderService struct {
	db    *gorm.DB
	carts CartService
}

// NewOrderService creates a new instance of OrderService
func NewOrderService(db *gorm.DB, carts CartService) OrderService {
	return &orderService{db: db, carts: carts}
}

func (s *orderService) Checkout(userID string, input CheckoutInput) (*models.Order, error) {
	// All validation happens before anything touches the store.
	if !input.DeliveryType.Valid() {
		return nil, ErrInvalidDeliveryType
	}
	if !input.PaymentMethod.Valid() {
		return nil, ErrInvalidPayment
	}

	address := strings.TrimSpace(input.DeliveryAddress)
	if input.DeliveryType == models.DeliveryTypeDelivery && address == "" {
		return nil, ErrAddressRequired
	}

	cart, err := s.carts.Get(userID)
	if err != nil {
		return nil, fmt.Errorf("failed to load cart: %w", err)
	}
	if len(cart.Items) == 0 {
		return nil, ErrCartEmpty
	}

	order := &models.Order{
		UserID:        userID,
		DeliveryType:  input.DeliveryType,
		TotalValue:    cart.Total(),
		PaymentMethod: input.PaymentMethod,
		Notes:         input.Notes,
		Status:        models.StatusPending,
	}
	if input.DeliveryType == models.DeliveryTypeDelivery {
		order.DeliveryAddress = &address
	}

	// Order and lines commit together; a failed line insert rolls the
	// whole order back instead of stranding a partial one.
	err = s.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(order).Error; err != nil {
			return err
		}
		for _, item := range cart.Items {
			line := models.OrderLine{
				OrderID:   order.ID,
				PizzaID:   item.PizzaID,
				Size:      item.Size,
				Quantity:  item.Quantity,
				UnitPrice: item.UnitPrice,
				Notes:     item.Notes,
			}
			if err := tx.Create(&line).Error; err != nil {
				return err
			}
			order.Lines = append(order.Lines, line)
		}
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create order: %w", err)
	}

	// Cart clearing is best effort once the order exists; a stale cart is
	// recoverable, a lost order is not.
	if err := s.carts.Clear(userID); err != nil {
		log.WithFields(log.Fields{"user_id": userID, "order_id": order.ID, "error": err.Error()}).
			Warn("Order created but cart could not be cleared")
	}

	return order, nil
}

func (s *orderService) GetOrdersByUser(userID string) ([]models.Order, error) {
	var orders []models.Order
	err := s.db.
		Where("usuario_id = ?", userID).
		Order("created_at desc").
		Find(&orders).Error
	if err != nil {
		return nil, err
	}
	return orders, nil
}

func (s *orderService) GetOrderForUser(userID, orderID string) (*models.Order, error) {
	var order models.Order
	err := s.db.
		Preload("Lines.Pizza").
		First(&order, "id = ? AND usuario_id = ?", orderID, userID).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrOrderNotFound
		}
		return nil, err
	}
	return &order, nil
}

func (s *orderService) UpdateStatus(orderID string, status models.OrderStatus) error {
	if !status.Valid() {
		return ErrInvalidOrderStatus
	}

	result := s.db.Model(&models.Order{}).Where("id = ?", orderID).Update("status", status)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return ErrOrderNotFound
	}
	return nil
}
