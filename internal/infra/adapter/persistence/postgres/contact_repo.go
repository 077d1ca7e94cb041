package postgres

import (
	"context"
	"database/sql"
	"fmt"

	"pressroom/internal/domain/entity"
	"pressroom/internal/repository"
)

type ContactRepo struct {
	db *sql.DB
}

func NewContactRepo(db *sql.DB) repository.ContactRepository {
	return &ContactRepo{db: db}
}

func (repo *ContactRepo) Create(ctx context.Context, contact *entity.Contact) error {
	const query = `
INSERT INTO contacts
       (first_name, last_name, company, email, opt_out, created_at)
VALUES ($1, $2, $3, $4, $5, $6)
RETURNING id`
	err := repo.db.QueryRowContext(ctx, query,
		contact.FirstName, contact.LastName, contact.Company,
		contact.Email, contact.OptOut, contact.CreatedAt,
	).Scan(&contact.ID)
	if err != nil {
		return fmt.Errorf("Create: %w", err)
	}
	return nil
}

func (repo *ContactRepo) ListActive(ctx context.Context) ([]*entity.Contact, error) {
	const query = `
SELECT id, first_name, last_name, company, email, opt_out, created_at
FROM contacts
WHERE opt_out = FALSE
ORDER BY created_at DESC`
	rows, err := repo.db.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("ListActive: %w", err)
	}
	defer func() { _ = rows.Close() }()

	contacts := make([]*entity.Contact, 0, 50)
	for rows.Next() {
		var c entity.Contact
		if err := rows.Scan(&c.ID, &c.FirstName, &c.LastName,
			&c.Company, &c.Email, &c.OptOut, &c.CreatedAt); err != nil {
			return nil, fmt.Errorf("ListActive: Scan: %w", err)
		}
		contacts = append(contacts, &c)
	}
	return contacts, rows.Err()
}
