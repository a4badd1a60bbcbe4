package order

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"
)

type PostgresRepository struct {
	db *pgxpool.Pool
}

func NewPostgresRepository(db *pgxpool.Pool) *PostgresRepository {
	return &PostgresRepository{db: db}
}

// --------------------------------------------------
// Save a generated order
// --------------------------------------------------
func (r *PostgresRepository) Save(ctx context.Context, rec *Record) error {
	if rec.ID == "" {
		rec.ID = uuid.New().String()
	}
	if rec.CreatedAt.IsZero() {
		rec.CreatedAt = time.Now().UTC()
	}

	_, err := r.db.Exec(ctx, `
		INSERT INTO generated_orders (
			id,
			mode,
			list_menu,
			current_orders,
			generated_message,
			created_at
		)
		VALUES ($1, $2, $3, $4, $5, $6)
	`,
		rec.ID,
		string(rec.Mode),
		rec.ListMenu,
		rec.CurrentOrders,
		rec.GeneratedMessage,
		rec.CreatedAt,
	)
	return err
}

// --------------------------------------------------
// Most recent generations, newest first
// --------------------------------------------------
func (r *PostgresRepository) ListRecent(ctx context.Context, limit int) ([]Record, error) {
	rows, err := r.db.Query(ctx, `
		SELECT
			id,
			mode,
			list_menu,
			current_orders,
			generated_message,
			created_at
		FROM generated_orders
		ORDER BY created_at DESC
		LIMIT $1
	`, limit)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	records := []Record{}
	for rows.Next() {
		var rec Record
		var mode string
		if err := rows.Scan(
			&rec.ID,
			&mode,
			&rec.ListMenu,
			&rec.CurrentOrders,
			&rec.GeneratedMessage,
			&rec.CreatedAt,
		); err != nil {
			return nil, err
		}
		rec.Mode = Mode(mode)
		records = append(records, rec)
	}

	return records, rows.Err()
}
