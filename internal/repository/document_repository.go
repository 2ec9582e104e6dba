package repository

import (
	"context"

	"quikchek/internal/models"

	"github.com/Masterminds/squirrel"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"
	"go.uber.org/zap"
)

type DocumentRepository struct {
	db     *pgxpool.Pool
	logger *zap.Logger
}

func NewDocumentRepository(db *pgxpool.Pool, logger *zap.Logger) *DocumentRepository {
	return &DocumentRepository{
		db:     db,
		logger: logger,
	}
}

var documentColumns = []string{
	"id", "user_id", "doc_timestamp", "name", "description", "ocr_text",
	"image_url", "amount_spent", "company", "has_warranty", "warranty_months",
	"created_at", "updated_at",
}

func (r *DocumentRepository) Create(ctx context.Context, doc *models.Document) error {
	query := squirrel.Insert("documents").
		Columns(documentColumns...).
		Values(
			doc.ID, doc.UserID, doc.Timestamp, doc.Name, doc.Description, doc.OCRText,
			doc.ImageURL, doc.AmountSpent, doc.Company, doc.HasWarranty, doc.WarrantyMonths,
			doc.CreatedAt, doc.UpdatedAt,
		).
		PlaceholderFormat(squirrel.Dollar)

	sql, args, err := query.ToSql()
	if err != nil {
		return err
	}

	_, err = r.db.Exec(ctx, sql, args...)
	return err
}

func (r *DocumentRepository) Update(ctx context.Context, doc *models.Document) error {
	query := squirrel.Update("documents").
		Set("doc_timestamp", doc.Timestamp).
		Set("name", doc.Name).
		Set("description", doc.Description).
		Set("ocr_text", doc.OCRText).
		Set("image_url", doc.ImageURL).
		Set("amount_spent", doc.AmountSpent).
		Set("company", doc.Company).
		Set("has_warranty", doc.HasWarranty).
		Set("warranty_months", doc.WarrantyMonths).
		Set("updated_at", squirrel.Expr("NOW()")).
		Where(squirrel.Eq{"id": doc.ID}).
		PlaceholderFormat(squirrel.Dollar)

	sql, args, err := query.ToSql()
	if err != nil {
		return err
	}

	_, err = r.db.Exec(ctx, sql, args...)
	return err
}

func (r *DocumentRepository) GetByID(ctx context.Context, id uuid.UUID) (*models.Document, error) {
	query := squirrel.Select(documentColumns...).
		From("documents").
		Where(squirrel.Eq{"id": id}).
		PlaceholderFormat(squirrel.Dollar)

	sql, args, err := query.ToSql()
	if err != nil {
		return nil, err
	}

	var doc models.Document
	err = r.db.QueryRow(ctx, sql, args...).Scan(
		&doc.ID, &doc.UserID, &doc.Timestamp, &doc.Name, &doc.Description, &doc.OCRText,
		&doc.ImageURL, &doc.AmountSpent, &doc.Company, &doc.HasWarranty, &doc.WarrantyMonths,
		&doc.CreatedAt, &doc.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}

	if err := r.attachCategories(ctx, []*models.Document{&doc}); err != nil {
		return nil, err
	}

	return &doc, nil
}

func (r *DocumentRepository) ListByUserID(ctx context.Context, userID uuid.UUID) ([]*models.Document, error) {
	query := squirrel.Select(documentColumns...).
		From("documents").
		Where(squirrel.Eq{"user_id": userID}).
		OrderBy("doc_timestamp DESC").
		PlaceholderFormat(squirrel.Dollar)

	sql, args, err := query.ToSql()
	if err != nil {
		return nil, err
	}

	rows, err := r.db.Query(ctx, sql, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var documents []*models.Document
	for rows.Next() {
		var doc models.Document
		if err := rows.Scan(
			&doc.ID, &doc.UserID, &doc.Timestamp, &doc.Name, &doc.Description, &doc.OCRText,
			&doc.ImageURL, &doc.AmountSpent, &doc.Company, &doc.HasWarranty, &doc.WarrantyMonths,
			&doc.CreatedAt, &doc.UpdatedAt,
		); err != nil {
			return nil, err
		}
		documents = append(documents, &doc)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}

	if err := r.attachCategories(ctx, documents); err != nil {
		return nil, err
	}

	return documents, nil
}

// SetCategories replaces the document's category set with the given IDs.
func (r *DocumentRepository) SetCategories(ctx context.Context, documentID uuid.UUID, categoryIDs []uuid.UUID) error {
	deleteQuery := squirrel.Delete("document_categories").
		Where(squirrel.Eq{"document_id": documentID}).
		PlaceholderFormat(squirrel.Dollar)

	sql, args, err := deleteQuery.ToSql()
	if err != nil {
		return err
	}
	if _, err := r.db.Exec(ctx, sql, args...); err != nil {
		return err
	}

	if len(categoryIDs) == 0 {
		return nil
	}

	builder := squirrel.Insert("document_categories").
		Columns("document_id", "category_id").
		PlaceholderFormat(squirrel.Dollar)
	for _, categoryID := range categoryIDs {
		builder = builder.Values(documentID, categoryID)
	}

	sql, args, err = builder.ToSql()
	if err != nil {
		return err
	}

	_, err = r.db.Exec(ctx, sql, args...)
	return err
}

func (r *DocumentRepository) Delete(ctx context.Context, id uuid.UUID) error {
	query := squirrel.Delete("documents").
		Where(squirrel.Eq{"id": id}).
		PlaceholderFormat(squirrel.Dollar)

	sql, args, err := query.ToSql()
	if err != nil {
		return err
	}

	_, err = r.db.Exec(ctx, sql, args...)
	return err
}

// ListImageURLs returns every stored image URL; the upload janitor uses this
// to find orphaned files.
func (r *DocumentRepository) ListImageURLs(ctx context.Context) ([]string, error) {
	query := squirrel.Select("image_url").
		From("documents").
		Where(squirrel.NotEq{"image_url": ""}).
		PlaceholderFormat(squirrel.Dollar)

	sql, args, err := query.ToSql()
	if err != nil {
		return nil, err
	}

	rows, err := r.db.Query(ctx, sql, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var urls []string
	for rows.Next() {
		var url string
		if err := rows.Scan(&url); err != nil {
			return nil, err
		}
		urls = append(urls, url)
	}

	return urls, rows.Err()
}

// ListByCategoryID returns the documents attached to one category.
func (r *DocumentRepository) ListByCategoryID(ctx context.Context, categoryID uuid.UUID) ([]*models.Document, error) {
	query := squirrel.Select(prefixColumns("d", documentColumns)...).
		From("documents d").
		Join("document_categories dc ON dc.document_id = d.id").
		Where(squirrel.Eq{"dc.category_id": categoryID}).
		OrderBy("d.doc_timestamp DESC").
		PlaceholderFormat(squirrel.Dollar)

	sql, args, err := query.ToSql()
	if err != nil {
		return nil, err
	}

	rows, err := r.db.Query(ctx, sql, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var documents []*models.Document
	for rows.Next() {
		var doc models.Document
		if err := rows.Scan(
			&doc.ID, &doc.UserID, &doc.Timestamp, &doc.Name, &doc.Description, &doc.OCRText,
			&doc.ImageURL, &doc.AmountSpent, &doc.Company, &doc.HasWarranty, &doc.WarrantyMonths,
			&doc.CreatedAt, &doc.UpdatedAt,
		); err != nil {
			return nil, err
		}
		documents = append(documents, &doc)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}

	if err := r.attachCategories(ctx, documents); err != nil {
		return nil, err
	}

	return documents, nil
}

// attachCategories populates Categories for a batch of documents with one
// join query.
func (r *DocumentRepository) attachCategories(ctx context.Context, documents []*models.Document) error {
	if len(documents) == 0 {
		return nil
	}

	ids := make([]uuid.UUID, len(documents))
	byID := make(map[uuid.UUID]*models.Document, len(documents))
	for i, doc := range documents {
		ids[i] = doc.ID
		byID[doc.ID] = doc
		doc.Categories = nil
	}

	query := squirrel.Select("dc.document_id", "sc.id", "sc.user_id", "sc.name", "sc.created_at", "sc.updated_at").
		From("document_categories dc").
		Join("spending_categories sc ON sc.id = dc.category_id").
		Where(squirrel.Eq{"dc.document_id": ids}).
		OrderBy("sc.created_at ASC").
		PlaceholderFormat(squirrel.Dollar)

	sql, args, err := query.ToSql()
	if err != nil {
		return err
	}

	rows, err := r.db.Query(ctx, sql, args...)
	if err != nil {
		return err
	}
	defer rows.Close()

	for rows.Next() {
		var documentID uuid.UUID
		var category models.SpendingCategory
		if err := rows.Scan(
			&documentID, &category.ID, &category.UserID, &category.Name,
			&category.CreatedAt, &category.UpdatedAt,
		); err != nil {
			return err
		}
		if doc, ok := byID[documentID]; ok {
			doc.Categories = append(doc.Categories, &category)
		}
	}

	return rows.Err()
}

func prefixColumns(alias string, columns []string) []string {
	prefixed := make([]string, len(columns))
	for i, col := range columns {
		prefixed[i] = alias + "." + col
	}
	return prefixed
}
