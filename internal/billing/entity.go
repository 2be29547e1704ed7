package billing

import (
	"time"

	"github.com/google/uuid"
	"github.com/sinaliza/sinaliza-api/internal/user"
)

type TransactionStatus string

const (
	TransactionPaid     TransactionStatus = "PAID"
	TransactionPending  TransactionStatus = "PENDING"
	TransactionRefunded TransactionStatus = "REFUNDED"
)

type Plan struct {
	ID           uuid.UUID `gorm:"type:uuid;default:uuid_generate_v4();primaryKey" json:"id"`
	Name         string    `gorm:"not null" json:"name"`
	Description  string    `gorm:"type:text" json:"description,omitempty"`
	PriceCents   int       `gorm:"not null" json:"price_cents"`
	DurationDays int       `gorm:"not null" json:"duration_days"`
	Active       bool      `gorm:"not null;default:true" json:"active"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`
}

// Transaction representa uma compra de assinatura já reconciliada pelo
// gateway. A janela [StartDate, EndDate] da transação mais recente define o
// acesso de assinante.
type Transaction struct {
	ID        uuid.UUID         `gorm:"type:uuid;default:uuid_generate_v4();primaryKey" json:"id"`
	UserID    uuid.UUID         `gorm:"type:uuid;not null;index" json:"user_id"`
	User      user.User         `gorm:"foreignKey:UserID;constraint:OnDelete:CASCADE" json:"-"`
	PlanID    uuid.UUID         `gorm:"type:uuid;not null" json:"plan_id"`
	Plan      Plan              `gorm:"foreignKey:PlanID" json:"-"`
	Status    TransactionStatus `gorm:"type:varchar(20);not null;default:'PAID'" json:"status"`
	StartDate time.Time         `gorm:"not null" json:"start_date"`
	EndDate   time.Time         `gorm:"not null" json:"end_date"`
	CreatedAt time.Time         `gorm:"autoCreateTime" json:"created_at"`
}
