package billing

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
	"github.com/sinaliza/sinaliza-api/internal/config"
	"github.com/sirupsen/logrus"
)

var (
	ErrPlanNotFound = errors.New("plan not found")
	ErrInvalidID    = errors.New("invalid id format")
)

type CreatePlanDTO struct {
	Name         string `json:"name" binding:"required"`
	Description  string `json:"description"`
	PriceCents   int    `json:"price_cents" binding:"required"`
	DurationDays int    `json:"duration_days" binding:"required"`
}

type GrantSubscriptionDTO struct {
	UserID string `json:"user_id" binding:"required"`
	PlanID string `json:"plan_id" binding:"required"`
}

type BillingService interface {
	ListPlans(ctx context.Context) ([]Plan, error)
	CreatePlan(ctx context.Context, dto CreatePlanDTO) (*Plan, error)

	// GrantSubscription cria a transação de assinatura com janela derivada
	// da duração do plano. A reconciliação com o gateway de pagamento fica
	// fora da API; este é o ponto de entrada administrativo.
	GrantSubscription(ctx context.Context, dto GrantSubscriptionDTO) (*Transaction, error)

	MostRecentTransaction(ctx context.Context, userID uuid.UUID) (*Transaction, error)
}

type billingService struct {
	repo BillingRepository
}

func NewService(repo BillingRepository) BillingService {
	return &billingService{repo: repo}
}

func (s *billingService) ListPlans(ctx context.Context) ([]Plan, error) {
	return s.repo.ListActivePlans()
}

func (s *billingService) CreatePlan(ctx context.Context, dto CreatePlanDTO) (*Plan, error) {
	log := config.WithContext(ctx)

	p := Plan{
		ID:           uuid.New(),
		Name:         dto.Name,
		Description:  dto.Description,
		PriceCents:   dto.PriceCents,
		DurationDays: dto.DurationDays,
		Active:       true,
	}
	if err := s.repo.CreatePlan(&p); err != nil {
		log.WithError(err).Error("Failed to create plan")
		return nil, err
	}
	return &p, nil
}

func (s *billingService) GrantSubscription(ctx context.Context, dto GrantSubscriptionDTO) (*Transaction, error) {
	log := config.WithContext(ctx)

	userID, err := uuid.Parse(dto.UserID)
	if err != nil {
		return nil, ErrInvalidID
	}
	planID, err := uuid.Parse(dto.PlanID)
	if err != nil {
		return nil, ErrInvalidID
	}

	plan, err := s.repo.FindPlanByID(planID)
	if err != nil {
		return nil, err
	}
	if plan == nil {
		return nil, ErrPlanNotFound
	}

	now := time.Now()
	t := Transaction{
		ID:        uuid.New(),
		UserID:    userID,
		PlanID:    plan.ID,
		Status:    TransactionPaid,
		StartDate: now,
		EndDate:   now.AddDate(0, 0, plan.DurationDays),
	}
	if err := s.repo.CreateTransaction(&t); err != nil {
		log.WithError(err).Error("Failed to create transaction")
		return nil, err
	}

	log.WithFields(logrus.Fields{
		"user_id": userID.String(),
		"plan_id": plan.ID.String(),
	}).Info("Assinatura concedida")
	return &t, nil
}

func (s *billingService) MostRecentTransaction(ctx context.Context, userID uuid.UUID) (*Transaction, error) {
	return s.repo.MostRecentPaidByUser(userID)
}
