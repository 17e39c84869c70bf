package catalog

import (
	"context"
	"database/sql"
	"fmt"
	"strings"
)

type repo struct {
	db *sql.DB
}

func NewRepo(db *sql.DB) Repo {
	return &repo{db: db}
}

const productColumns = `id, name, description, category, image_url,
	price, battery_hours, ram_gb, storage_gb, rating`

func (r *repo) FindByID(ctx context.Context, id int64) (*Product, error) {
	row := r.db.QueryRowContext(ctx, `
		SELECT `+productColumns+`
		FROM chatbotproducts
		WHERE id = $1
	`, id)
	return scanProduct(row)
}

func (r *repo) FindByName(ctx context.Context, name string) (*Product, error) {
	row := r.db.QueryRowContext(ctx, `
		SELECT `+productColumns+`
		FROM chatbotproducts
		WHERE name ILIKE $1
		LIMIT 1
	`, name)
	return scanProduct(row)
}

func (r *repo) SearchNameSubstring(ctx context.Context, q string) (*Product, error) {
	row := r.db.QueryRowContext(ctx, `
		SELECT `+productColumns+`
		FROM chatbotproducts
		WHERE name ILIKE '%' || $1 || '%'
		ORDER BY id
		LIMIT 1
	`, q)
	return scanProduct(row)
}

func (r *repo) SearchNameAllTokens(ctx context.Context, tokens []string) ([]Product, error) {
	if len(tokens) == 0 {
		return []Product{}, nil
	}

	conds := make([]string, 0, len(tokens))
	args := make([]any, 0, len(tokens))
	for i, tk := range tokens {
		conds = append(conds, fmt.Sprintf("name ILIKE '%%' || $%d || '%%'", i+1))
		args = append(args, tk)
	}

	rows, err := r.db.QueryContext(ctx, `
		SELECT `+productColumns+`
		FROM chatbotproducts
		WHERE `+strings.Join(conds, " AND ")+`
		ORDER BY id
		LIMIT 10
	`, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	return scanProducts(rows)
}

func (r *repo) SearchNameOrDescription(ctx context.Context, q string) ([]Product, error) {
	rows, err := r.db.QueryContext(ctx, `
		SELECT `+productColumns+`
		FROM chatbotproducts
		WHERE name ILIKE '%' || $1 || '%'
		   OR description ILIKE '%' || $1 || '%'
		ORDER BY id
		LIMIT 10
	`, q)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	return scanProducts(rows)
}

func (r *repo) List(ctx context.Context, page, limit int) ([]Product, int, error) {
	var total int
	if err := r.db.QueryRowContext(ctx,
		`SELECT count(*) FROM chatbotproducts`,
	).Scan(&total); err != nil {
		return nil, 0, err
	}

	rows, err := r.db.QueryContext(ctx, `
		SELECT `+productColumns+`
		FROM chatbotproducts
		ORDER BY id
		LIMIT $1 OFFSET $2
	`, limit, (page-1)*limit)
	if err != nil {
		return nil, 0, err
	}
	defer rows.Close()

	products, err := scanProducts(rows)
	if err != nil {
		return nil, 0, err
	}
	return products, total, nil
}

func (r *repo) Insert(ctx context.Context, p *Product) error {
	_, err := r.db.ExecContext(ctx, `
		INSERT INTO chatbotproducts
			(name, description, category, image_url,
			 price, battery_hours, ram_gb, storage_gb, rating)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)
	`,
		p.Name,
		p.Description,
		p.Category,
		p.ImageURL,
		nullFloat(p.Price),
		nullFloat(p.BatteryHours),
		nullFloat(p.RAMGB),
		nullFloat(p.StorageGB),
		nullFloat(p.Rating),
	)
	return err
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanProduct(row rowScanner) (*Product, error) {
	var (
		p           Product
		description sql.NullString
		category    sql.NullString
		imageURL    sql.NullString
		price       sql.NullFloat64
		battery     sql.NullFloat64
		ram         sql.NullFloat64
		storage     sql.NullFloat64
		rating      sql.NullFloat64
	)

	err := row.Scan(
		&p.ID, &p.Name, &description, &category, &imageURL,
		&price, &battery, &ram, &storage, &rating,
	)
	if err == sql.ErrNoRows {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, err
	}

	p.Description = description.String
	p.Category = category.String
	p.ImageURL = imageURL.String
	p.Price = floatPtr(price)
	p.BatteryHours = floatPtr(battery)
	p.RAMGB = floatPtr(ram)
	p.StorageGB = floatPtr(storage)
	p.Rating = floatPtr(rating)

	return &p, nil
}

func scanProducts(rows *sql.Rows) ([]Product, error) {
	out := []Product{}
	for rows.Next() {
		p, err := scanProduct(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, *p)
	}
	return out, rows.Err()
}

func floatPtr(v sql.NullFloat64) *float64 {
	if !v.Valid {
		return nil
	}
	f := v.Float64
	return &f
}

func nullFloat(v *float64) sql.NullFloat64 {
	if v == nil {
		return sql.NullFloat64{}
	}
	return sql.NullFloat64{Float64: *v, Valid: true}
}
