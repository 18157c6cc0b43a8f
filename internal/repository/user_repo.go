package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	sq "github.com/Masterminds/squirrel"
	"github.com/best-life-api/internal/database"
	"github.com/best-life-api/internal/models"
)

// userRepo is the concrete implementation of UserRepository
type userRepo struct {
	db *database.DB
}

// NewUserRepo creates a new user repository
func NewUserRepo(db *database.DB) UserRepository {
	return &userRepo{db: db}
}

// GetByID retrieves a user joined with its role, nil when absent
func (r *userRepo) GetByID(ctx context.Context, id int64) (*models.User, error) {
	row, err := queryRow(ctx, r.db, psql.
		Select("u.user_id", "u.user_name", "u.user_country", "r.role_name").
		From("app_user u").
		Join("user_role r ON u.role_id = r.role_id").
		Where(sq.Eq{"u.user_id": id}))
	if err != nil {
		return nil, err
	}

	var user models.User
	var country sql.NullString
	err = row.Scan(&user.ID, &user.Name, &country, &user.RoleName)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("get user %d: %w", id, err)
	}
	if country.Valid {
		user.Country = &country.String
	}

	return &user, nil
}

// GetRoleIDByName resolves a role name, nil when absent
func (r *userRepo) GetRoleIDByName(ctx context.Context, roleName string) (*int64, error) {
	row, err := queryRow(ctx, r.db, psql.
		Select("role_id").
		From("user_role").
		Where(sq.Eq{"role_name": roleName}))
	if err != nil {
		return nil, err
	}
	return scanID(row, "role "+roleName)
}

// ListNamesByRoleID lists user names holding a role, ordered by user id
func (r *userRepo) ListNamesByRoleID(ctx context.Context, roleID int64) ([]string, error) {
	rows, err := queryRows(ctx, r.db, psql.
		Select("user_name").
		From("app_user").
		Where(sq.Eq{"role_id": roleID}).
		OrderBy("user_id"))
	if err != nil {
		return nil, fmt.Errorf("list users for role %d: %w", roleID, err)
	}
	defer rows.Close()

	names := make([]string, 0)
	for rows.Next() {
		var name string
		if err := rows.Scan(&name); err != nil {
			return nil, err
		}
		names = append(names, name)
	}
	return names, rows.Err()
}

// GetIDByName returns the first user id with the given name, nil when absent
func (r *userRepo) GetIDByName(ctx context.Context, userName string) (*int64, error) {
	row, err := queryRow(ctx, r.db, psql.
		Select("user_id").
		From("app_user").
		Where(sq.Eq{"user_name": userName}).
		OrderBy("user_id").
		Limit(1))
	if err != nil {
		return nil, err
	}
	return scanID(row, "user "+userName)
}

// Delete removes a user and reports whether a row was affected
func (r *userRepo) Delete(ctx context.Context, id int64) (bool, error) {
	result, err := r.db.ExecContext(ctx, `DELETE FROM app_user WHERE user_id = $1`, id)
	if err != nil {
		return false, fmt.Errorf("delete user %d: %w", id, err)
	}
	affected, err := result.RowsAffected()
	if err != nil {
		return false, err
	}
	return affected > 0, nil
}

// UpdateName renames a user without checking that it exists
func (r *userRepo) UpdateName(ctx context.Context, id int64, name string) error {
	_, err := r.db.ExecContext(ctx, `UPDATE app_user SET user_name = $1 WHERE user_id = $2`, name, id)
	if err != nil {
		return fmt.Errorf("update user %d name: %w", id, err)
	}
	return nil
}

func scanID(row *sql.Row, what string) (*int64, error) {
	var id int64
	err := row.Scan(&id)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("lookup %s: %w", what, err)
	}
	return &id, nil
}
