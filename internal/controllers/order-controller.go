package controllers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/Lizandro-reis/pizzaria-iedita-app/internal/models"
	"github.com/Lizandro-reis/pizzaria-iedita-app/internal/services"
)

// OrderController handles checkout, order history and the staff status
// endpoint.
type OrderController struct {
	orders services.OrderService
}

func NewOrderController(orders services.OrderService) *OrderController {
	return &OrderController{orders: orders}
}

type checkoutRequest struct {
	DeliveryType    string `json:"delivery_type" binding:"required"`
	DeliveryAddress string `json:"delivery_address"`
	PaymentMethod   string `json:"payment_method" binding:"required"`
	Notes           string `json:"notes"`
}

type statusUpdateRequest struct {
	Status string `json:"status" binding:"required"`
}

// Checkout godoc
// @Summary Submit the cart as an order
// @Description Creates the order and all of its lines atomically, then clears the cart
// @Tags orders
// @Accept json
// @Produce json
// @Param checkout body checkoutRequest true "Delivery and payment choices"
// @Success 201 {object} models.Order
// @Failure 400 {object} models.APIError
// @Failure 422 {object} models.APIError
// @Failure 500 {object} models.APIError
// @Security BearerAuth
// @Router /api/v1/checkout [post]
func (oc *OrderController) Checkout(ctx *gin.Context) {
	userID := ctx.GetString("userID")

	var req checkoutRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, models.NewAPIError(models.ErrBadRequest, "Invalid request body"))
		return
	}

	order, err := oc.orders.Checkout(userID, services.CheckoutInput{
		DeliveryType:    models.DeliveryType(req.DeliveryType),
		DeliveryAddress: req.DeliveryAddress,
		PaymentMethod:   models.PaymentMethod(req.PaymentMethod),
		Notes:           req.Notes,
	})
	if err != nil {
		switch {
		case errors.Is(err, services.ErrCartEmpty):
			ctx.JSON(http.StatusUnprocessableEntity, models.NewAPIError(models.ErrCartEmpty, "Cart is empty"))
		case errors.Is(err, services.ErrAddressRequired),
			errors.Is(err, services.ErrInvalidDeliveryType),
			errors.Is(err, services.ErrInvalidPayment):
			ctx.JSON(http.StatusBadRequest, models.NewAPIError(models.ErrValidationFailed, err.Error()))
		default:
			ctx.JSON(http.StatusInternalServerError, models.NewAPIError(models.ErrInternalServer, err.Error()))
		}
		return
	}

	ctx.JSON(http.StatusCreated, order)
}

// ListOrders godoc
// @Summary List the authenticated user's orders
// @Tags orders
// @Produce json
// @Success 200 {array} models.Order
// @Failure 500 {object} models.APIError
// @Security BearerAuth
// @Router /api/v1/orders [get]
func (oc *OrderController) ListOrders(ctx *gin.Context) {
	userID := ctx.GetString("userID")

	orders, err := oc.orders.GetOrdersByUser(userID)
	if err != nil {
		ctx.JSON(http.StatusInternalServerError, models.NewAPIError(models.ErrInternalServer, "Failed to retrieve orders"))
		return
	}
	ctx.JSON(http.StatusOK, orders)
}

// GetOrder godoc
// @Summary Get one order with its lines and status timeline
// @Description Cancelled orders carry a terminal cancelled flag instead of a timeline
// @Tags orders
// @Produce json
// @Param id path string true "Order ID"
// @Success 200 {object} map[string]interface{}
// @Failure 404 {object} models.APIError
// @Security BearerAuth
// @Router /api/v1/orders/{id} [get]
func (oc *OrderController) GetOrder(ctx *gin.Context) {
	userID := ctx.GetString("userID")
	orderID := ctx.Param("id")

	order, err := oc.orders.GetOrderForUser(userID, orderID)
	if err != nil {
		if errors.Is(err, services.ErrOrderNotFound) {
			ctx.JSON(http.StatusNotFound, models.NewAPIError(models.ErrOrderNotFound, "Order not found"))
			return
		}
		ctx.JSON(http.StatusInternalServerError, models.NewAPIError(models.ErrInternalServer, "Failed to retrieve order"))
		return
	}

	body := gin.H{"order": order}
	if order.Status == models.StatusCancelled {
		// Display fork: no progression is rendered for a cancelled order.
		body["cancelled"] = true
	} else {
		body["timeline"] = models.StatusTimeline(order.Status, order.DeliveryType)
	}
	ctx.JSON(http.StatusOK, body)
}

// UpdateOrderStatus godoc
// @Summary Advance an order's status
// @Description Staff-only endpoint used by the fulfillment process
// @Tags staff
// @Accept json
// @Produce json
// @Param id path string true "Order ID"
// @Param status body statusUpdateRequest true "New status"
// @Success 200 {object} map[string]string
// @Failure 400 {object} models.APIError
// @Failure 404 {object} models.APIError
// @Security BearerAuth
// @Router /api/v1/staff/orders/{id}/status [patch]
func (oc *OrderController) UpdateOrderStatus(ctx *gin.Context) {
	orderID := ctx.Param("id")

	var req statusUpdateRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, models.NewAPIError(models.ErrBadRequest, "Invalid request body"))
		return
	}

	err := oc.orders.UpdateStatus(orderID, models.OrderStatus(req.Status))
	if err != nil {
		switch {
		case errors.Is(err, services.ErrInvalidOrderStatus):
			ctx.JSON(http.StatusBadRequest, models.NewAPIError(models.ErrInvalidStatus, "Unknown order status"))
		case errors.Is(err, services.ErrOrderNotFound):
			ctx.JSON(http.StatusNotFound, models.NewAPIError(models.ErrOrderNotFound, "Order not found"))
		default:
			ctx.JSON(http.StatusInternalServerError, models.NewAPIError(models.ErrInternalServer, "Failed to update order"))
		}
		return
	}

	ctx.JSON(http.StatusOK, gin.H{"id": orderID, "status": req.Status})
}
