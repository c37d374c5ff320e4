package repo

import (
	"context"
	"database/sql"
	"time"
)

// EvaluationRecord is one saved airship evaluation for a user's history.
type EvaluationRecord struct {
	ID           int       `json:"id"`
	LengthM      float64   `json:"length_m"`
	DiameterM    float64   `json:"diameter_m"`
	AltitudeM    float64   `json:"altitude_m"`
	Option       string    `json:"option"`
	NetPayloadKg float64   `json:"net_payload_kg"`
	CreatedAt    time.Time `json:"created_at"`
}

type Repository interface {
	CreateUser(ctx context.Context, login, email, password string) (int, error)
	GetByLogin(ctx context.Context, login string) (int, string, error)
	SaveEvaluation(ctx context.Context, userID int, rec EvaluationRecord) error
	ListEvaluations(ctx context.Context, userID int, limit int) ([]EvaluationRecord, error)
}

type PostgresRepository struct {
	db *sql.DB
}

func NewPostgresDB(db *sql.DB) *PostgresRepository {
	return &PostgresRepository{db: db}
}

func (r *PostgresRepository) CreateUser(ctx context.Context, login, email, password string) (int, error) {
	var id int
	query := "INSERT INTO users (login, email, password) VALUES ($1, $2, $3) RETURNING id"
	err := r.db.QueryRowContext(ctx, query, login, email, password).Scan(&id)
	return id, err
}

func (r *PostgresRepository) GetByLogin(ctx context.Context, login string) (int, string, error) {
	var id int
	var hash string

	query := "SELECT id, password FROM users WHERE login=$1"

	err := r.db.QueryRowContext(ctx, query, login).Scan(&id, &hash)
	if err != nil {
		if err == sql.ErrNoRows {
			return 0, "", nil
		}
		return 0, "", err
	}
	return id, hash, nil
}

func (r *PostgresRepository) SaveEvaluation(ctx context.Context, userID int, rec EvaluationRecord) error {
	query := `INSERT INTO evaluations (user_id, length_m, diameter_m, altitude_m, option, net_payload_kg)
		VALUES ($1, $2, $3, $4, $5, $6)`
	_, err := r.db.ExecContext(ctx, query, userID, rec.LengthM, rec.DiameterM, rec.AltitudeM, rec.Option, rec.NetPayloadKg)
	return err
}

func (r *PostgresRepository) ListEvaluations(ctx context.Context, userID int, limit int) ([]EvaluationRecord, error) {
	if limit <= 0 {
		limit = 50
	}
	query := `SELECT id, length_m, diameter_m, altitude_m, option, net_payload_kg, created_at
		FROM evaluations WHERE user_id=$1 ORDER BY created_at DESC LIMIT $2`
	rows, err := r.db.QueryContext(ctx, query, userID, limit)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []EvaluationRecord
	for rows.Next() {
		var rec EvaluationRecord
		if err := rows.Scan(&rec.ID, &rec.LengthM, &rec.DiameterM, &rec.AltitudeM, &rec.Option, &rec.NetPayloadKg, &rec.CreatedAt); err != nil {
			return nil, err
		}
		out = append(out, rec)
	}
	return out, rows.Err()
}
