package service

import (
	"context"
	"fmt"

	"github.com/fsdevblog/anticrisis/internal/domain"
	"github.com/fsdevblog/anticrisis/internal/repository/repoargs"
	"github.com/fsdevblog/anticrisis/pkg/uow"
	"github.com/shopspring/decimal"
)

type DiscountService struct {
	uow          uow.UOW
	counters     *CounterSynchronizer
	discountRepo DiscountRepository
}

func NewDiscountService(u uow.UOW, counters *CounterSynchronizer) (*DiscountService, error) {
	discountRepo, err := poolRepository[DiscountRepository](u, repoargs.DiscountRepoName)
	if err != nil {
		return nil, err
	}
	return &DiscountService{
		uow:          u,
		counters:     counters,
		discountRepo: discountRepo,
	}, nil
}

type IssueDiscountArgs struct {
	IssuerID    int64
	RecipientID int64
	Percentage  decimal.Decimal
	RedeemLimit decimal.Decimal
}

// Issue выдает скидку. Ошибки валидации (*domain.ValidationError) возвращаются до обращения к хранилищу.
// Строка скидки и +1 к discounts_received_count получателя фиксируются одной транзакцией.
func (s *DiscountService) Issue(ctx context.Context, args IssueDiscountArgs) (*domain.DiscountView, error) {
	createArgs := repoargs.DiscountCreate{
		IssuerID:    args.IssuerID,
		RecipientID: args.RecipientID,
		Percentage:  args.Percentage,
		RedeemLimit: args.RedeemLimit,
	}
	if err := createArgs.Validate(); err != nil {
		return nil, fmt.Errorf("issuing discount: %w", err)
	}

	var view *domain.DiscountView
	txErr := s.uow.Do(ctx, func(c context.Context, tx uow.TX) error {
		profileRepo, repoErr := txRepository[ProfileRepository](tx, repoargs.ProfileRepoName)
		if repoErr != nil {
			return repoErr
		}
		discountRepo, repoErr := txRepository[DiscountRepository](tx, repoargs.DiscountRepoName)
		if repoErr != nil {
			return repoErr
		}

		if _, err := profileRepo.FindByUserID(c, args.RecipientID); err != nil {
			return fmt.Errorf("finding recipient: %w", err)
		}
		discount, createErr := discountRepo.Create(c, createArgs)
		if createErr != nil {
			return createErr //nolint:wrapcheck
		}
		if err := s.counters.DiscountIssued(c, tx, discount.RecipientID); err != nil {
			return err
		}

		var getErr error
		view, getErr = discountRepo.GetByID(c, discount.ID)
		return getErr //nolint:wrapcheck
	})
	if txErr != nil {
		return nil, fmt.Errorf("issuing discount: %w", txErr)
	}
	return view, nil
}

// Get возвращает скидку, если viewerID ее эмитент или получатель. Для остальных скидка не существует.
func (s *DiscountService) Get(ctx context.Context, viewerID, discountID int64) (*domain.DiscountView, error) {
	view, err := s.discountRepo.GetByID(ctx, discountID)
	if err != nil {
		return nil, fmt.Errorf("getting discount: %w", err)
	}
	if view.IssuerID != viewerID && view.RecipientID != viewerID {
		return nil, fmt.Errorf("getting discount %d: %w", discountID, domain.ErrRecordNotFound)
	}
	return view, nil
}

type ListDiscountsArgs struct {
	UserID     int64
	Direction  domain.DiscountDirection
	Query      string
	Pagination repoargs.Pagination
}

func (s *DiscountService) List(ctx context.Context, args ListDiscountsArgs) ([]domain.DiscountView, error) {
	if !args.Direction.Valid() {
		return nil, fmt.Errorf("listing discounts: %w",
			domain.NewValidationError("type", "must be issued or received"))
	}
	views, err := s.discountRepo.List(ctx, repoargs.DiscountFilter{
		UserID:    args.UserID,
		Direction: args.Direction,
		Query:     args.Query,
	}, args.Pagination)
	if err != nil {
		return nil, fmt.Errorf("listing discounts: %w", err)
	}
	return views, nil
}

type RedeemDiscountArgs struct {
	ActorID    int64
	DiscountID int64
	Amount     decimal.Decimal
}

// Redeem фиксирует погашение amount по скидке. Погашение записывает только эмитент скидки. Если лимит будет
// превышен, возвращает domain.ErrLimitExceeded и redeem_used не меняется. discounts_used_count эмитента
// пересчитывается в той же транзакции.
func (s *DiscountService) Redeem(ctx context.Context, args RedeemDiscountArgs) (*domain.DiscountView, error) {
	if err := repoargs.ValidateAmount("amount", args.Amount, false); err != nil {
		return nil, fmt.Errorf("redeeming discount: %w", err)
	}

	var view *domain.DiscountView
	txErr := s.uow.Do(ctx, func(c context.Context, tx uow.TX) error {
		discountRepo, repoErr := txRepository[DiscountRepository](tx, repoargs.DiscountRepoName)
		if repoErr != nil {
			return repoErr
		}

		current, getErr := discountRepo.GetByID(c, args.DiscountID)
		if getErr != nil {
			return getErr //nolint:wrapcheck
		}
		if current.IssuerID != args.ActorID {
			return fmt.Errorf("discount %d: %w", args.DiscountID, domain.ErrRecordNotFound)
		}

		if _, err := discountRepo.IncrementUsed(c, args.DiscountID, args.Amount); err != nil {
			return err //nolint:wrapcheck
		}
		if err := s.counters.RecountDiscountsUsed(c, tx, current.IssuerID); err != nil {
			return err
		}

		view, getErr = discountRepo.GetByID(c, args.DiscountID)
		return getErr //nolint:wrapcheck
	})
	if txErr != nil {
		return nil, fmt.Errorf("redeeming discount %d: %w", args.DiscountID, txErr)
	}
	return view, nil
}
