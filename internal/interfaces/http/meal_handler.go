package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/quentinhasdavovo/quentinhas-api/internal/application/dto"
	"github.com/quentinhasdavovo/quentinhas-api/internal/application/usecase"
)

// MealHandler trata as requisições HTTP do cardápio.
type MealHandler struct {
	uc *usecase.MealUseCase
}

// NewMealHandler constrói o handler.
func NewMealHandler(uc *usecase.MealUseCase) *MealHandler {
	return &MealHandler{uc: uc}
}

// Create godoc
// @Summary      Cadastrar prato
// @Tags         meals
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        body  body  dto.CreateMealRequest  true  "Dados do prato"
// @Success      201   {object}  dto.MealResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Router       /api/meals [post]
func (h *MealHandler) Create(c *fiber.Ctx) error {
	var in dto.CreateMealRequest
	if err := parseAndValidate(c, &in); err != nil {
		return err
	}
	out, err := h.uc.Create(in)
	if err != nil {
		return respondError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(out)
}

// GetByID godoc
// @Summary      Obter prato por ID
// @Tags         meals
// @Produce      json
// @Param        id   path  string  true  "ID do prato"
// @Success      200  {object}  dto.MealResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/meals/{id} [get]
func (h *MealHandler) GetByID(c *fiber.Ctx) error {
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

// List godoc
// @Summary      Listar cardápio
// @Tags         meals
// @Produce      json
// @Param        limit   query  int  false  "Limite"  default(20)
// @Param        offset  query  int  false  "Offset"  default(0)
// @Success      200     {object}  dto.MealListResponse
// @Router       /api/meals [get]
func (h *MealHandler) List(c *fiber.Ctx) error {
	var page dto.PageRequest
	_ = c.QueryParser(&page)
	page.DefaultPage()
	out, err := h.uc.List(page.Limit, page.Offset)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(out)
}

// Update godoc
// @Summary      Atualizar prato
// @Tags         meals
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        id    path  string  true  "ID do prato"
// @Param        body  body  dto.UpdateMealRequest  true  "Dados a atualizar"
// @Success      200   {object}  dto.MealResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Router       /api/meals/{id} [put]
func (h *MealHandler) Update(c *fiber.Ctx) error {
	id := c.Params("id")
	if id == "" {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "MISSING_ID", Message: "id é obrigatório"})
	}
	var in dto.UpdateMealRequest
	if err := parseAndValidate(c, &in); err != nil {
		return err
	}
	out, err := h.uc.Update(id, in)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(out)
}

// Delete godoc
// @Summary      Remover prato
// @Tags         meals
// @Security     Bearer
// @Param        id  path  string  true  "ID do prato"
// @Success      204
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/meals/{id} [delete]
func (h *MealHandler) Delete(c *fiber.Ctx) error {
	id := c.Params("id")
	if id == "" {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "MISSING_ID", Message: "id é obrigatório"})
	}
	if err := h.uc.Delete(id); err != nil {
		return respondError(c, err)
	}
	return c.SendStatus(fiber.StatusNoContent)
}

// SetStock define o estoque de um prato em um ponto de venda.
func (h *MealHandler) SetStock(c *fiber.Ctx) error {
	var in dto.UpsertStockRequest
	if err := parseAndValidate(c, &in); err != nil {
		return err
	}
	out, err := h.uc.SetStock(c.Context(), in)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(out)
}

// ListStock lista o estoque de um ponto de venda.
func (h *MealHandler) ListStock(c *fiber.Ctx) error {
	posID := c.Params("posId")
	if posID == "" {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "MISSING_ID", Message: "posId é obrigatório"})
	}
	out, err := h.uc.ListStock(posID)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(out)
}
