package contactrepository

import (
	"portfolio-go-backend/ent"
	ur "portfolio-go-backend/pkg/usecase/repository"
)

type contactRepository struct {
	client *ent.Client
}

func NewContactRepository(client *ent.Client) ur.Contact {
	return &contactRepository{client}
}
