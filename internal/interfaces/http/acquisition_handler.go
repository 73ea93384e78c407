package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/quentinhasdavovo/quentinhas-api/internal/application/dto"
	"github.com/quentinhasdavovo/quentinhas-api/internal/application/usecase"
	"github.com/quentinhasdavovo/quentinhas-api/internal/domain/entity"
)

// AcquisitionHandler trata as requisições HTTP de aquisições de créditos.
type AcquisitionHandler struct {
	uc *usecase.AcquisitionUseCase
}

// NewAcquisitionHandler constrói o handler.
func NewAcquisitionHandler(uc *usecase.AcquisitionUseCase) *AcquisitionHandler {
	return &AcquisitionHandler{uc: uc}
}

// Create registra uma compra de créditos (staff) e credita o saldo do cliente.
func (h *AcquisitionHandler) Create(c *fiber.Ctx) error {
	var in dto.CreateAcquisitionRequest
	if err := parseAndValidate(c, &in); err != nil {
		return err
	}
	out, err := h.uc.Create(c.Context(), in)
	if err != nil {
		return respondError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(out)
}

// GetByID obtém uma aquisição.
func (h *AcquisitionHandler) GetByID(c *fiber.Ctx) error {
	id := c.Params("id")
	if id == "" {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "MISSING_ID", Message: "id é obrigatório"})
	}
	out, err := h.uc.GetByID(id)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(out)
}

// ListByCustomer lista as aquisições de um cliente. Cliente só vê as próprias.
func (h *AcquisitionHandler) ListByCustomer(c *fiber.Ctx) error {
	customerID := c.Params("customerId")
	if customerID == "" {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "MISSING_ID", Message: "customerId é obrigatório"})
	}
	if GetRole(c) == entity.RoleCliente && customerID != GetUserID(c) {
		return c.Status(fiber.StatusForbidden).JSON(dto.ErrorResponse{Code: "FORBIDDEN", Message: "acesso negado"})
	}
	var page dto.PageRequest
	_ = c.QueryParser(&page)
	page.DefaultPage()
	out, err := h.uc.ListByCustomer(customerID, page.Limit, page.Offset)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(out)
}
