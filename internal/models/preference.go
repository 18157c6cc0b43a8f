package models

import (
	"encoding/json"
	"fmt"
	"strconv"

	"github.com/shopspring/decimal"
)

// PreferenceRequest is the 11-field body of POST /preference.
// Absent keys stay nil and are stored as NULL.
type PreferenceRequest struct {
	UserID     *int64              `json:"user_ID"`
	PrefDate   *string             `json:"pref_date"`
	TopCountry *string             `json:"top_country"`
	FactorID1  *int64              `json:"factorID_1"`
	Weight1    decimal.NullDecimal `json:"weight1"`
	FactorID2  *int64              `json:"factorID_2"`
	Weight2    decimal.NullDecimal `json:"weight2"`
	FactorID3  *int64              `json:"factorID_3"`
	Weight3    decimal.NullDecimal `json:"weight3"`
	FactorID4  *int64              `json:"factorID_4"`
	Weight4    decimal.NullDecimal `json:"weight4"`
}

// UnmarshalJSON binds the id fields from either a JSON number or a numeric string
func (p *PreferenceRequest) UnmarshalJSON(data []byte) error {
	type plain PreferenceRequest
	aux := struct {
		*plain
		UserID    looseID `json:"user_ID"`
		FactorID1 looseID `json:"factorID_1"`
		FactorID2 looseID `json:"factorID_2"`
		FactorID3 looseID `json:"factorID_3"`
		FactorID4 looseID `json:"factorID_4"`
	}{plain: (*plain)(p)}
	if err := json.Unmarshal(data, &aux); err != nil {
		return err
	}
	p.UserID = aux.UserID.value
	p.FactorID1 = aux.FactorID1.value
	p.FactorID2 = aux.FactorID2.value
	p.FactorID3 = aux.FactorID3.value
	p.FactorID4 = aux.FactorID4.value
	return nil
}

// looseID accepts 7 and "7" alike
type looseID struct {
	value *int64
}

func (l *looseID) UnmarshalJSON(data []byte) error {
	if string(data) == "null" {
		l.value = nil
		return nil
	}
	raw := string(data)
	if len(data) > 0 && data[0] == '"' {
		if err := json.Unmarshal(data, &raw); err != nil {
			return err
		}
	}
	n, err := strconv.ParseInt(raw, 10, 64)
	if err != nil {
		return fmt.Errorf("invalid id %s: %w", data, err)
	}
	l.value = &n
	return nil
}

// Values returns the insert arguments in column order
func (p *PreferenceRequest) Values() []interface{} {
	return []interface{}{
		p.UserID, p.PrefDate, p.TopCountry,
		p.FactorID1, p.Weight1,
		p.FactorID2, p.Weight2,
		p.FactorID3, p.Weight3,
		p.FactorID4, p.Weight4,
	}
}

// PreferenceColumns is the fixed insert column order matching Values
var PreferenceColumns = []string{
	"user_id", "pref_date", "top_country",
	"factor_id_1", "weight1",
	"factor_id_2", "weight2",
	"factor_id_3", "weight3",
	"factor_id_4", "weight4",
}

// PreferenceSummary is the projection returned by GET /preference/:user_id
type PreferenceSummary struct {
	ID         int64   `json:"pref_ID" db:"pref_id"`
	TopCountry *string `json:"top_country" db:"top_country"`
}
