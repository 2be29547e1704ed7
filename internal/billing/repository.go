package billing

import (
	"errors"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type BillingRepository interface {
	ListActivePlans() ([]Plan, error)
	FindPlanByID(id uuid.UUID) (*Plan, error)
	CreatePlan(p *Plan) error

	CreateTransaction(t *Transaction) error

	// MostRecentPaidByUser devolve a transação paga mais recente do usuário,
	// ou nil se não houver nenhuma. Apenas essa transação determina a janela
	// de assinatura.
	MostRecentPaidByUser(userID uuid.UUID) (*Transaction, error)
}

type billingRepository struct {
	db *gorm.DB
}

func NewRepository(db *gorm.DB) BillingRepository {
	return &billingRepository{db: db}
}

func (r *billingRepository) ListActivePlans() ([]Plan, error) {
	var plans []Plan
	if err := r.db.
		Where("active").
		Order("price_cents ASC").
		Find(&plans).Error; err != nil {
		return nil, err
	}
	return plans, nil
}

func (r *billingRepository) FindPlanByID(id uuid.UUID) (*Plan, error) {
	var p Plan
	if err := r.db.First(&p, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &p, nil
}

func (r *billingRepository) CreatePlan(p *Plan) error {
	return r.db.Create(p).Error
}

func (r *billingRepository) CreateTransaction(t *Transaction) error {
	return r.db.Create(t).Error
}

func (r *billingRepository) MostRecentPaidByUser(userID uuid.UUID) (*Transaction, error) {
	var t Transaction
	if err := r.db.
		Where("user_id = ? AND status = ?", userID, TransactionPaid).
		Order("created_at DESC").
		First(&t).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &t, nil
}
