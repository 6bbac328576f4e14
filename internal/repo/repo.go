package repo

import (
	"context"
	"database/sql"
	"time"

	egg "Ovoid/internal/calc/egg"
)

type Profile struct {
	ID          int    `json:"id"`
	Login       string `json:"login"`
	Email       string `json:"email"`
	Description string `json:"description"`
}

// Design is a named, saved set of shape parameters belonging to a user.
type Design struct {
	ID        int       `json:"id"`
	Name      string    `json:"name"`
	Egg       egg.Input `json:"egg"`
	CreatedAt time.Time `json:"created_at"`
}

type Repository interface {
	CreateUser(ctx context.Context, login, email, password string) (int, error)
	GetByLogin(ctx context.Context, login string) (int, string, error)
	GetProfileByID(ctx context.Context, id int) (Profile, error)
	UpdateProfile(ctx context.Context, id int, login, description string) error

	SaveDesign(ctx context.Context, userID int, name string, in egg.Input) (int, error)
	ListDesigns(ctx context.Context, userID int) ([]Design, error)
	GetDesign(ctx context.Context, userID, id int) (Design, error)
	DeleteDesign(ctx context.Context, userID, id int) error
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

func (r *PostgresRepository) GetProfileByID(ctx context.Context, id int) (Profile, error) {
	var p Profile
	query := "SELECT id, login, email, COALESCE(description, '') FROM users WHERE id=$1"
	err := r.db.QueryRowContext(ctx, query, id).Scan(&p.ID, &p.Login, &p.Email, &p.Description)
	return p, err
}

func (r *PostgresRepository) UpdateProfile(ctx context.Context, id int, login, description string) error {
	query := "UPDATE users SET login=$2, description=$3 WHERE id=$1"
	_, err := r.db.ExecContext(ctx, query, id, login, description)
	return err
}

func (r *PostgresRepository) SaveDesign(ctx context.Context, userID int, name string, in egg.Input) (int, error) {
	var id int
	query := `INSERT INTO designs (user_id, name, length_mm, width_mm, d_l4_mm, shape_n)
		VALUES ($1, $2, $3, $4, $5, $6) RETURNING id`
	err := r.db.QueryRowContext(ctx, query, userID, name,
		in.LengthMM, in.WidthMM, in.DiameterL4MM, in.ShapeN).Scan(&id)
	return id, err
}

func (r *PostgresRepository) ListDesigns(ctx context.Context, userID int) ([]Design, error) {
	query := `SELECT id, name, length_mm, width_mm, d_l4_mm, shape_n, created_at
		FROM designs WHERE user_id=$1 ORDER BY created_at DESC`
	rows, err := r.db.QueryContext(ctx, query, userID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []Design
	for rows.Next() {
		var d Design
		if err := rows.Scan(&d.ID, &d.Name, &d.Egg.LengthMM, &d.Egg.WidthMM,
			&d.Egg.DiameterL4MM, &d.Egg.ShapeN, &d.CreatedAt); err != nil {
			return nil, err
		}
		out = append(out, d)
	}
	return out, rows.Err()
}

func (r *PostgresRepository) GetDesign(ctx context.Context, userID, id int) (Design, error) {
	var d Design
	query := `SELECT id, name, length_mm, width_mm, d_l4_mm, shape_n, created_at
		FROM designs WHERE user_id=$1 AND id=$2`
	err := r.db.QueryRowContext(ctx, query, userID, id).Scan(&d.ID, &d.Name,
		&d.Egg.LengthMM, &d.Egg.WidthMM, &d.Egg.DiameterL4MM, &d.Egg.ShapeN, &d.CreatedAt)
	return d, err
}

func (r *PostgresRepository) DeleteDesign(ctx context.Context, userID, id int) error {
	_, err := r.db.ExecContext(ctx, "DELETE FROM designs WHERE user_id=$1 AND id=$2", userID, id)
	return err
}
