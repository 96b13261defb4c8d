package repositories

import (
	"context"

	"stockwatch/internal/models"
)

type CompanyRepository interface {
	Create(ctx context.Context, company *models.Company) error
	GetByID(ctx context.Context, id int64) (*models.Company, error)
}

type companyRepo struct {
	db Database
}

func NewCompanyRepository(db Database) CompanyRepository {
	return &companyRepo{db: db}
}

func (r *companyRepo) Create(ctx context.Context, company *models.Company) error {
	query := `
		INSERT INTO company (name, email, created_at)
		VALUES ($1, $2, NOW())
		RETURNING company_id
	`
	return r.db.QueryRow(ctx, query, company.Name, company.Email).Scan(&company.ID)
}

func (r *companyRepo) GetByID(ctx context.Context, id int64) (*models.Company, error) {
	company := &models.Company{}
	query := `
		SELECT company_id, name, email, created_at
		FROM company
		WHERE company_id = $1
	`
	err := r.db.QueryRow(ctx, query, id).Scan(&company.ID, &company.Name, &company.Email, &company.CreatedAt)
	if err != nil {
		return nil, err
	}
	return company, nil
}
