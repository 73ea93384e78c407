package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/quentinhasdavovo/quentinhas-api/internal/application/dto"
	apporder "github.com/quentinhasdavovo/quentinhas-api/internal/application/order"
	"github.com/quentinhasdavovo/quentinhas-api/internal/domain/entity"
	"github.com/quentinhasdavovo/quentinhas-api/internal/domain/repository"
)

// OrderHandler trata as requisições HTTP de pedidos.
type OrderHandler struct {
	placeUC  *apporder.PlaceOrderUseCase
	statusUC *apporder.UpdateStatusUseCase
	orders   repository.OrderRepository
}

// NewOrderHandler constrói o handler.
func NewOrderHandler(
	placeUC *apporder.PlaceOrderUseCase,
	statusUC *apporder.UpdateStatusUseCase,
	orders repository.OrderRepository,
) *OrderHandler {
	return &OrderHandler{placeUC: placeUC, statusUC: statusUC, orders: orders}
}

// Create godoc
// @Summary      Fazer pedido (reserva estoque na mesma transação)
// @Tags         orders
// @Accept       json
// @Produce      json
// @Param        body  body  dto.CreateOrderRequest  true  "Dados do pedido"
// @Success      201   {object}  dto.PlaceOrderResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      409   {object}  dto.ErrorResponse  "INSUFFICIENT_STOCK"
// @Router       /api/orders [post]
func (h *OrderHandler) Create(c *fiber.Ctx) error {
	var in dto.CreateOrderRequest
	if err := parseAndValidate(c, &in); err != nil {
		return err
	}
	ord, remaining, err := h.placeUC.Place(c.Context(), Actor(c), in)
	if err != nil {
		return respondError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(dto.PlaceOrderResponse{
		Order:        toOrderResponse(ord, "", ""),
		RemainingQty: remaining,
	})
}

// UpdateStatus godoc
// @Summary      Transicionar status do pedido
// @Tags         orders
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        id    path  string  true  "ID do pedido"
// @Param        body  body  dto.UpdateOrderStatusRequest  true  "Novo status"
// @Success      200   {object}  dto.OrderResponse
// @Failure      409   {object}  dto.ErrorResponse  "INVALID_TRANSITION"
// @Router       /api/orders/{id}/status [patch]
func (h *OrderHandler) UpdateStatus(c *fiber.Ctx) error {
	id := c.Params("id")
	if id == "" {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "MISSING_ID", Message: "id é obrigatório"})
	}
	var in dto.UpdateOrderStatusRequest
	if err := parseAndValidate(c, &in); err != nil {
		return err
	}
	ord, err := h.statusUC.UpdateStatus(c.Context(), Actor(c), id, in.Status)
	if err != nil {
		return respondError(c, err)
	}
	out := toOrderResponse(ord, "", "")
	return c.JSON(out)
}

// GetByID obtém um pedido.
func (h *OrderHandler) GetByID(c *fiber.Ctx) error {
	id := c.Params("id")
	if id == "" {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "MISSING_ID", Message: "id é obrigatório"})
	}
	ord, err := h.orders.GetByID(id)
	if err != nil {
		return respondError(c, err)
	}
	if ord == nil {
		return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Code: "NOT_FOUND", Message: "pedido não encontrado"})
	}
	out := toOrderResponse(ord, "", "")
	return c.JSON(out)
}

// List lista pedidos com filtros opcionais. Cliente vê só os próprios pedidos;
// staff pode filtrar por cliente, ponto de venda e status.
func (h *OrderHandler) List(c *fiber.Ctx) error {
	var page dto.PageRequest
	_ = c.QueryParser(&page)
	page.DefaultPage()

	f := repository.OrderFilter{
		CustomerID:    c.Query("customer_id"),
		PointOfSaleID: c.Query("point_of_sale_id"),
		Status:        c.Query("status"),
	}
	if GetRole(c) == entity.RoleCliente {
		f.CustomerID = GetUserID(c)
	}

	items, err := h.orders.List(f, page.Limit, page.Offset)
	if err != nil {
		return respondError(c, err)
	}
	out := dto.OrderListResponse{
		Items: make([]dto.OrderResponse, 0, len(items)),
		Page:  dto.PageResponse{Limit: page.Limit, Offset: page.Offset},
	}
	for _, s := range items {
		out.Items = append(out.Items, toOrderResponse(&s.Order, s.CustomerName, s.MealName))
	}
	return c.JSON(out)
}

func toOrderResponse(o *entity.Order, customerName, mealName string) dto.OrderResponse {
	return dto.OrderResponse{
		ID:            o.ID,
		CustomerID:    o.CustomerID,
		CustomerName:  customerName,
		MealID:        o.MealID,
		MealName:      mealName,
		Quantity:      o.Quantity,
		Total:         o.Total,
		Status:        o.Status,
		Portions:      o.Portions,
		PointOfSaleID: o.PointOfSaleID,
		PlacedAt:      o.PlacedAt,
	}
}
