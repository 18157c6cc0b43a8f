package repository

import (
	"context"
	"database/sql"
	"fmt"

	sq "github.com/Masterminds/squirrel"
	"github.com/best-life-api/internal/database"
	"github.com/best-life-api/internal/models"
)

// lookupRepo is the concrete implementation of LookupRepository
type lookupRepo struct {
	db *database.DB
}

// NewLookupRepo creates a new lookup repository
func NewLookupRepo(db *database.DB) LookupRepository {
	return &lookupRepo{db: db}
}

// CountryNames returns raw country names in storage order, duplicates kept
func (r *lookupRepo) CountryNames(ctx context.Context) ([]string, error) {
	rows, err := queryRows(ctx, r.db, psql.Select("country_name").From("country"))
	if err != nil {
		return nil, fmt.Errorf("list country names: %w", err)
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

// Countries returns (name, id) pairs
func (r *lookupRepo) Countries(ctx context.Context) ([]models.Country, error) {
	rows, err := queryRows(ctx, r.db, psql.Select("country_id", "country_name").From("country"))
	if err != nil {
		return nil, fmt.Errorf("list countries: %w", err)
	}
	defer rows.Close()

	countries := make([]models.Country, 0)
	for rows.Next() {
		var c models.Country
		if err := rows.Scan(&c.ID, &c.Name); err != nil {
			return nil, err
		}
		countries = append(countries, c)
	}
	return countries, rows.Err()
}

// Factors returns (name, id) pairs
func (r *lookupRepo) Factors(ctx context.Context) ([]models.Factor, error) {
	rows, err := queryRows(ctx, r.db, psql.Select("factor_id", "factor_name").From("factor"))
	if err != nil {
		return nil, fmt.Errorf("list factors: %w", err)
	}
	defer rows.Close()

	factors := make([]models.Factor, 0)
	for rows.Next() {
		var f models.Factor
		if err := rows.Scan(&f.ID, &f.Name); err != nil {
			return nil, err
		}
		factors = append(factors, f)
	}
	return factors, rows.Err()
}

// Organizations returns organizations matching both country and factor
func (r *lookupRepo) Organizations(ctx context.Context, countryID, factorID int64) ([]models.Organization, error) {
	rows, err := queryRows(ctx, r.db, psql.
		Select("org_id", "org_name", "org_country", "org_factor", "org_website").
		From("organization").
		Where(sq.Eq{"org_country": countryID}).
		Where(sq.Eq{"org_factor": factorID}))
	if err != nil {
		return nil, fmt.Errorf("list organizations: %w", err)
	}
	defer rows.Close()

	orgs := make([]models.Organization, 0)
	for rows.Next() {
		var o models.Organization
		var website sql.NullString
		if err := rows.Scan(&o.ID, &o.Name, &o.CountryID, &o.FactorID, &website); err != nil {
			return nil, err
		}
		if website.Valid {
			o.Website = &website.String
		}
		orgs = append(orgs, o)
	}
	return orgs, rows.Err()
}

// Universities returns the universities of a country
func (r *lookupRepo) Universities(ctx context.Context, countryID int64) ([]models.University, error) {
	rows, err := queryRows(ctx, r.db, psql.
		Select("university_id", "university_name", "country_id", "university_rank").
		From("university").
		Where(sq.Eq{"country_id": countryID}))
	if err != nil {
		return nil, fmt.Errorf("list universities for country %d: %w", countryID, err)
	}
	defer rows.Close()

	unis := make([]models.University, 0)
	for rows.Next() {
		var u models.University
		var rank sql.NullInt64
		if err := rows.Scan(&u.ID, &u.Name, &u.CountryID, &rank); err != nil {
			return nil, err
		}
		if rank.Valid {
			u.Rank = &rank.Int64
		}
		unis = append(unis, u)
	}
	return unis, rows.Err()
}
