package usecase

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/quentinhasdavovo/quentinhas-api/internal/application/dto"
	"github.com/quentinhasdavovo/quentinhas-api/internal/domain"
	"github.com/quentinhasdavovo/quentinhas-api/internal/domain/entity"
	"github.com/quentinhasdavovo/quentinhas-api/internal/domain/repository"
)

// CreditTxRunner executa uma função dentro de uma transação de banco com
// repositórios de aquisição e usuário atados à tx. Garante que a aquisição e o
// incremento de saldo entrem juntos ou não entrem.
type CreditTxRunner interface {
	RunCredits(ctx context.Context, fn func(
		acqRepo repository.AcquisitionRepository,
		userRepo repository.UserRepository,
	) error) error
}

// AcquisitionUseCase compra de créditos de refeição.
type AcquisitionUseCase struct {
	txRunner CreditTxRunner
	acqRepo  repository.AcquisitionRepository
	userRepo repository.UserRepository
}

// NewAcquisitionUseCase constrói o caso de uso.
func NewAcquisitionUseCase(
	txRunner CreditTxRunner,
	acqRepo repository.AcquisitionRepository,
	userRepo repository.UserRepository,
) *AcquisitionUseCase {
	return &AcquisitionUseCase{txRunner: txRunner, acqRepo: acqRepo, userRepo: userRepo}
}

// Create registra a aquisição e incrementa o saldo do cliente na mesma transação.
func (uc *AcquisitionUseCase) Create(ctx context.Context, in dto.CreateAcquisitionRequest) (*dto.AcquisitionResponse, error) {
	if in.CustomerID == "" || in.Credits < 1 || in.Amount.LessThan(decimal.Zero) {
		return nil, domain.ErrInvalidInput
	}
	customer, err := uc.userRepo.GetByID(in.CustomerID)
	if err != nil {
		return nil, err
	}
	if customer == nil {
		return nil, domain.ErrUserNotFound
	}

	acq := &entity.Acquisition{
		ID:            uuid.New().String(),
		CustomerID:    in.CustomerID,
		Credits:       in.Credits,
		Amount:        in.Amount,
		PointOfSaleID: in.PointOfSaleID,
		CreatedAt:     time.Now(),
	}
	err = uc.txRunner.RunCredits(ctx, func(
		acqRepo repository.AcquisitionRepository,
		userRepo repository.UserRepository,
	) error {
		if err := acqRepo.Create(acq); err != nil {
			return err
		}
		return userRepo.AddCredits(in.CustomerID, in.Credits)
	})
	if err != nil {
		return nil, err
	}
	return toAcquisitionResponse(acq, customer.CreditBalance+in.Credits), nil
}

// GetByID obtém uma aquisição.
func (uc *AcquisitionUseCase) GetByID(id string) (*dto.AcquisitionResponse, error) {
	acq, err := uc.acqRepo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if acq == nil {
		return nil, domain.ErrNotFound
	}
	return toAcquisitionResponse(acq, 0), nil
}

// ListByCustomer lista as aquisições de um cliente.
func (uc *AcquisitionUseCase) ListByCustomer(customerID string, limit, offset int) (*dto.AcquisitionListResponse, error) {
	items, err := uc.acqRepo.ListByCustomer(customerID, limit, offset)
	if err != nil {
		return nil, err
	}
	out := &dto.AcquisitionListResponse{
		Items: make([]dto.AcquisitionResponse, 0, len(items)),
		Page:  dto.PageResponse{Limit: limit, Offset: offset},
	}
	for _, a := range items {
		out.Items = append(out.Items, *toAcquisitionResponse(a, 0))
	}
	return out, nil
}

func toAcquisitionResponse(a *entity.Acquisition, newBalance int) *dto.AcquisitionResponse {
	return &dto.AcquisitionResponse{
		ID:            a.ID,
		CustomerID:    a.CustomerID,
		Credits:       a.Credits,
		Amount:        a.Amount,
		PointOfSaleID: a.PointOfSaleID,
		CreatedAt:     a.CreatedAt,
		NewBalance:    newBalance,
	}
}
