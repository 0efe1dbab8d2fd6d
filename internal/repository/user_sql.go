package repository

import (
	"fmt"

	"github.com/jmoiron/sqlx"

	"github.com/clinicapires/backend/internal/model"
)

// sqlUserRepository keeps the whole-document contract on top of a SQL
// database: Load selects every row, Save replaces the full table inside
// one transaction. Service logic stays identical across backends.
type sqlUserRepository struct {
	db *sqlx.DB
}

func NewSQLUserRepository(db *sqlx.DB) UserRepository {
	return &sqlUserRepository{db: db}
}

type userRow struct {
	Email         string  `db:"email"`
	PasswordHash  string  `db:"password_hash"`
	RecoveryToken *string `db:"recovery_token"`
	SessionToken  *string `db:"session_token"`
}

func (r *sqlUserRepository) Load() (map[string]*model.User, error) {
	rows := []userRow{}
	err := r.db.Select(&rows, `SELECT email, password_hash, recovery_token, session_token FROM users`)
	if err != nil {
		return nil, fmt.Errorf("failed to load users: %w", err)
	}

	users := make(map[string]*model.User, len(rows))
	for _, row := range rows {
		users[row.Email] = &model.User{
			PasswordHash:  row.PasswordHash,
			RecoveryToken: row.RecoveryToken,
			SessionToken:  row.SessionToken,
		}
	}
	return users, nil
}

func (r *sqlUserRepository) Save(users map[string]*model.User) error {
	tx, err := r.db.Beginx()
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback() //nolint:errcheck // no-op after commit

	_, err = tx.Exec(`DELETE FROM users`)
	if err != nil {
		return fmt.Errorf("failed to clear users: %w", err)
	}

	for email, user := range users {
		_, err = tx.Exec(
			`INSERT INTO users (email, password_hash, recovery_token, session_token) VALUES ($1, $2, $3, $4)`,
			email, user.PasswordHash, user.RecoveryToken, user.SessionToken,
		)
		if err != nil {
			return fmt.Errorf("failed to insert user: %w", err)
		}
	}

	return tx.Commit()
}
