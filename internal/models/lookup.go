package models

// Country is a (name, id) pair
type Country struct {
	Name string `json:"country_name" db:"country_name"`
	ID   int64  `json:"country_ID" db:"country_id"`
}

// Factor is a (name, id) pair
type Factor struct {
	Name string `json:"factor_name" db:"factor_name"`
	ID   int64  `json:"factor_ID" db:"factor_id"`
}

// Organization works on one factor in one country
type Organization struct {
	ID        int64   `json:"org_ID" db:"org_id"`
	Name      string  `json:"org_name" db:"org_name"`
	CountryID int64   `json:"org_country" db:"org_country"`
	FactorID  int64   `json:"org_factor" db:"org_factor"`
	Website   *string `json:"org_website" db:"org_website"`
}

// University belongs to a country
type University struct {
	ID        int64  `json:"university_ID" db:"university_id"`
	Name      string `json:"university_name" db:"university_name"`
	CountryID int64  `json:"country_ID" db:"country_id"`
	Rank      *int64 `json:"university_rank" db:"university_rank"`
}
