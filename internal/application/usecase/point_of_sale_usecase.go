package usecase

import (
	"time"

	"github.com/google/uuid"

	"github.com/quentinhasdavovo/quentinhas-api/internal/application/dto"
	"github.com/quentinhasdavovo/quentinhas-api/internal/domain"
	"github.com/quentinhasdavovo/quentinhas-api/internal/domain/entity"
	"github.com/quentinhasdavovo/quentinhas-api/internal/domain/repository"
)

// PointOfSaleUseCase CRUD de pontos de venda.
type PointOfSaleUseCase struct {
	posRepo repository.PointOfSaleRepository
}

// NewPointOfSaleUseCase constrói o caso de uso.
func NewPointOfSaleUseCase(posRepo repository.PointOfSaleRepository) *PointOfSaleUseCase {
	return &PointOfSaleUseCase{posRepo: posRepo}
}

// Create cadastra um ponto de venda.
func (uc *PointOfSaleUseCase) Create(in dto.CreatePointOfSaleRequest) (*dto.PointOfSaleResponse, error) {
	if in.Name == "" || in.Address == "" {
		return nil, domain.ErrInvalidInput
	}
	now := time.Now()
	pos := &entity.PointOfSale{
		ID:          uuid.New().String(),
		Name:        in.Name,
		Address:     in.Address,
		Responsible: in.Responsible,
		Phone:       in.Phone,
		Active:      in.Active,
		CreatedAt:   now,
		UpdatedAt:   now,
	}
	if err := uc.posRepo.Create(pos); err != nil {
		return nil, err
	}
	return toPointOfSaleResponse(pos), nil
}

// GetByID obtém um ponto de venda.
func (uc *PointOfSaleUseCase) GetByID(id string) (*dto.PointOfSaleResponse, error) {
	pos, err := uc.posRepo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if pos == nil {
		return nil, domain.ErrNotFound
	}
	return toPointOfSaleResponse(pos), nil
}

// List lista pontos de venda com paginação.
func (uc *PointOfSaleUseCase) List(limit, offset int) (*dto.PointOfSaleListResponse, error) {
	items, err := uc.posRepo.List(limit, offset)
	if err != nil {
		return nil, err
	}
	out := &dto.PointOfSaleListResponse{
		Items: make([]dto.PointOfSaleResponse, 0, len(items)),
		Page:  dto.PageResponse{Limit: limit, Offset: offset},
	}
	for _, p := range items {
		out.Items = append(out.Items, *toPointOfSaleResponse(p))
	}
	return out, nil
}

// Update atualiza um ponto de venda.
func (uc *PointOfSaleUseCase) Update(id string, in dto.UpdatePointOfSaleRequest) (*dto.PointOfSaleResponse, error) {
	if in.Name == "" || in.Address == "" {
		return nil, domain.ErrInvalidInput
	}
	pos, err := uc.posRepo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if pos == nil {
		return nil, domain.ErrNotFound
	}
	pos.Name = in.Name
	pos.Address = in.Address
	pos.Responsible = in.Responsible
	pos.Phone = in.Phone
	pos.Active = in.Active
	pos.UpdatedAt = time.Now()
	if err := uc.posRepo.Update(pos); err != nil {
		return nil, err
	}
	return toPointOfSaleResponse(pos), nil
}

// Delete remove um ponto de venda.
func (uc *PointOfSaleUseCase) Delete(id string) error {
	pos, err := uc.posRepo.GetByID(id)
	if err != nil {
		return err
	}
	if pos == nil {
		return domain.ErrNotFound
	}
	return uc.posRepo.Delete(id)
}

func toPointOfSaleResponse(p *entity.PointOfSale) *dto.PointOfSaleResponse {
	return &dto.PointOfSaleResponse{
		ID:          p.ID,
		Name:        p.Name,
		Address:     p.Address,
		Responsible: p.Responsible,
		Phone:       p.Phone,
		Active:      p.Active,
		CreatedAt:   p.CreatedAt,
		UpdatedAt:   p.UpdatedAt,
	}
}
