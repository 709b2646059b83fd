package usecase

import (
	"context"
	"log"
	"strings"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"aventura_tours/internal/domain/entities"
	"aventura_tours/internal/domain/finance"
	"aventura_tours/internal/usecase/interfaces"
)

// RefundQuote is the outcome of a refund calculation against one policy.
type RefundQuote struct {
	Policy        entities.CancellationPolicy
	Eligible      bool
	RefundAmount  decimal.Decimal
	DaysRemaining int
}

// ICancellationPolicyUseCase exposes cancellation policy operations: CRUD at
// the boundary plus the recommendation and refund math from the finance core.
type ICancellationPolicyUseCase interface {
	Create(ctx context.Context, p entities.CancellationPolicy) (entities.CancellationPolicy, error)
	GetByID(ctx context.Context, id string) (entities.CancellationPolicy, error)
	List(ctx context.Context) ([]entities.CancellationPolicy, error)
	Recommend(ctx context.Context, daysBeforeTrip int) (entities.CancellationPolicy, error)
	Refund(ctx context.Context, policyID string, totalAmount decimal.Decimal, daysRemaining int) (RefundQuote, error)
}

type CancellationPolicyUseCase struct {
	repo interfaces.ICancellationPolicyRepository
}

var _ ICancellationPolicyUseCase = (*CancellationPolicyUseCase)(nil)

func NewCancellationPolicyUseCase(repo interfaces.ICancellationPolicyRepository) *CancellationPolicyUseCase {
	return &CancellationPolicyUseCase{repo: repo}
}

func (u *CancellationPolicyUseCase) Create(ctx context.Context, p entities.CancellationPolicy) (entities.CancellationPolicy, error) {
	p.Name = strings.TrimSpace(p.Name)
	if violations := finance.ValidatePolicyForCreation(&p); len(violations) > 0 {
		log.Printf("[policy][usecase] create rejected name=%q violations=%d", p.Name, len(violations))
		return entities.CancellationPolicy{}, newValidationError(violations)
	}

	// Name is unique across policies.
	if existing, err := u.repo.GetByName(ctx, p.Name); err != nil {
		return entities.CancellationPolicy{}, err
	} else if existing.ID != "" {
		return entities.CancellationPolicy{}, ErrPolicyAlreadyExists
	}

	p.ID = uuid.NewString()
	created, err := u.repo.Create(ctx, p)
	if err != nil {
		log.Printf("[policy][usecase] create failed name=%q err=%v", p.Name, err)
		return entities.CancellationPolicy{}, err
	}
	log.Printf("[policy][usecase] create success id=%s name=%q refund=%d%% notice=%dd", created.ID, created.Name, created.RefundPercentage, created.DaysBeforeTour)
	return created, nil
}

func (u *CancellationPolicyUseCase) GetByID(ctx context.Context, id string) (entities.CancellationPolicy, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return entities.CancellationPolicy{}, ErrInvalidPolicyID
	}

	p, err := u.repo.GetByID(ctx, id)
	if err != nil {
		return entities.CancellationPolicy{}, err
	}
	if p.ID == "" {
		return entities.CancellationPolicy{}, ErrPolicyNotFound
	}
	return p, nil
}

func (u *CancellationPolicyUseCase) List(ctx context.Context) ([]entities.CancellationPolicy, error) {
	return u.repo.List(ctx)
}

func (u *CancellationPolicyUseCase) Recommend(ctx context.Context, daysBeforeTrip int) (entities.CancellationPolicy, error) {
	policies, err := u.repo.List(ctx)
	if err != nil {
		return entities.CancellationPolicy{}, err
	}
	best, err := finance.RecommendedPolicy(policies, daysBeforeTrip)
	if err != nil {
		log.Printf("[policy][usecase] no recommendation days_before_trip=%d policies=%d", daysBeforeTrip, len(policies))
		return entities.CancellationPolicy{}, err
	}
	log.Printf("[policy][usecase] recommended id=%s refund=%d%% days_before_trip=%d", best.ID, best.RefundPercentage, daysBeforeTrip)
	return best, nil
}

func (u *CancellationPolicyUseCase) Refund(ctx context.Context, policyID string, totalAmount decimal.Decimal, daysRemaining int) (RefundQuote, error) {
	p, err := u.GetByID(ctx, policyID)
	if err != nil {
		return RefundQuote{}, err
	}

	quote := RefundQuote{
		Policy:        p,
		Eligible:      finance.IsEligibleForRefund(p, daysRemaining),
		RefundAmount:  finance.RefundAmount(p, totalAmount, daysRemaining),
		DaysRemaining: daysRemaining,
	}
	log.Printf("[policy][usecase] refund quote policy_id=%s eligible=%v amount=%s", p.ID, quote.Eligible, quote.RefundAmount)
	return quote, nil
}
