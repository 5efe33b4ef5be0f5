package postgresql

import (
	"context"

	"github.com/amanaz3/staff-hub-suite-sub001/internal/domain/document"
	"github.com/amanaz3/staff-hub-suite-sub001/internal/pkg/database"
)

type documentRepositoryImpl struct {
	db *database.DB
}

func NewDocumentRepository(db *database.DB) document.Repository {
	return &documentRepositoryImpl{db: db}
}

const documentColumns = `
	id, employee_id, uploaded_by, category, file_name, file_path,
	content_type, size_bytes, note, created_at, deleted_at
`

func scanDocument(row interface{ Scan(...interface{}) error }) (*document.Document, error) {
	var d document.Document
	err := row.Scan(
		&d.ID,
		&d.EmployeeID,
		&d.UploadedBy,
		&d.Category,
		&d.FileName,
		&d.FilePath,
		&d.ContentType,
		&d.SizeBytes,
		&d.Note,
		&d.CreatedAt,
		&d.DeletedAt,
	)
	if err != nil {
		return nil, err
	}
	return &d, nil
}

func (r *documentRepositoryImpl) Create(ctx context.Context, doc *document.Document) error {
	q := GetQuerier(ctx, r.db)

	query := `
		INSERT INTO documents (
			employee_id, uploaded_by, category, file_name, file_path,
			content_type, size_bytes, note
		)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
		RETURNING id, created_at
	`

	return q.QueryRow(ctx, query,
		doc.EmployeeID,
		doc.UploadedBy,
		doc.Category,
		doc.FileName,
		doc.FilePath,
		doc.ContentType,
		doc.SizeBytes,
		doc.Note,
	).Scan(&doc.ID, &doc.CreatedAt)
}

func (r *documentRepositoryImpl) GetByID(ctx context.Context, id string) (*document.Document, error) {
	q := GetQuerier(ctx, r.db)

	query := `SELECT ` + documentColumns + ` FROM documents WHERE id = $1 AND deleted_at IS NULL`
	return scanDocument(q.QueryRow(ctx, query, id))
}

func (r *documentRepositoryImpl) ListByEmployee(ctx context.Context, employeeID string) ([]document.Document, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT ` + documentColumns + `
		FROM documents
		WHERE employee_id = $1 AND deleted_at IS NULL
		ORDER BY created_at DESC
	`

	rows, err := q.Query(ctx, query, employeeID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var documents []document.Document
	for rows.Next() {
		d, err := scanDocument(rows)
		if err != nil {
			return nil, err
		}
		documents = append(documents, *d)
	}
	return documents, rows.Err()
}

func (r *documentRepositoryImpl) SoftDelete(ctx context.Context, id string) error {
	q := GetQuerier(ctx, r.db)

	_, err := q.Exec(ctx,
		`UPDATE documents SET deleted_at = NOW() WHERE id = $1 AND deleted_at IS NULL`,
		id,
	)
	return err
}
