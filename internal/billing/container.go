package billing

import "gorm.io/gorm"

type BillingContainer struct {
	Repo    BillingRepository
	Service BillingService
	Handler *Handler
}

func NewBillingContainer(db *gorm.DB) *BillingContainer {
	repo := NewRepository(db)
	service := NewService(repo)
	handler := NewHandler(service)

	return &BillingContainer{
		Repo:    repo,
		Service: service,
		Handler: handler,
	}
}
