package mocks

import (
	"context"
	"sort"
	"sync"

	"github.com/best-life-api/internal/models"
	"github.com/best-life-api/internal/repository"
	"github.com/shopspring/decimal"
)

// Verify interface compliance
var (
	_ repository.UserRepository       = (*MockUserRepository)(nil)
	_ repository.ScoreRepository      = (*MockScoreRepository)(nil)
	_ repository.PreferenceRepository = (*MockPreferenceRepository)(nil)
	_ repository.LookupRepository     = (*MockLookupRepository)(nil)
)

// MockUserRepository is an in-memory UserRepository
type MockUserRepository struct {
	mu        sync.Mutex
	Roles     map[string]int64
	Users     []*models.User
	UserRoles map[int64]int64
	// Err, when set, is returned by every method
	Err error
}

func NewMockUserRepository() *MockUserRepository {
	return &MockUserRepository{
		Roles:     make(map[string]int64),
		UserRoles: make(map[int64]int64),
	}
}

// AddRole registers a role name
func (m *MockUserRepository) AddRole(id int64, name string) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.Roles[name] = id
}

// AddUser registers a user under an existing role name
func (m *MockUserRepository) AddUser(id int64, name, country, role string) {
	m.mu.Lock()
	defer m.mu.Unlock()
	c := country
	m.Users = append(m.Users, &models.User{ID: id, Name: name, Country: &c, RoleName: role})
	m.UserRoles[id] = m.Roles[role]
}

func (m *MockUserRepository) GetByID(ctx context.Context, id int64) (*models.User, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.Err != nil {
		return nil, m.Err
	}
	for _, u := range m.Users {
		if u.ID == id {
			copied := *u
			return &copied, nil
		}
	}
	return nil, nil
}

func (m *MockUserRepository) GetRoleIDByName(ctx context.Context, roleName string) (*int64, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.Err != nil {
		return nil, m.Err
	}
	id, ok := m.Roles[roleName]
	if !ok {
		return nil, nil
	}
	return &id, nil
}

func (m *MockUserRepository) ListNamesByRoleID(ctx context.Context, roleID int64) ([]string, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.Err != nil {
		return nil, m.Err
	}
	names := make([]string, 0)
	for _, u := range m.Users {
		if m.UserRoles[u.ID] == roleID {
			names = append(names, u.Name)
		}
	}
	return names, nil
}

func (m *MockUserRepository) GetIDByName(ctx context.Context, userName string) (*int64, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.Err != nil {
		return nil, m.Err
	}
	for _, u := range m.Users {
		if u.Name == userName {
			id := u.ID
			return &id, nil
		}
	}
	return nil, nil
}

func (m *MockUserRepository) Delete(ctx context.Context, id int64) (bool, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.Err != nil {
		return false, m.Err
	}
	for i, u := range m.Users {
		if u.ID == id {
			m.Users = append(m.Users[:i], m.Users[i+1:]...)
			delete(m.UserRoles, id)
			return true, nil
		}
	}
	return false, nil
}

func (m *MockUserRepository) UpdateName(ctx context.Context, id int64, name string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.Err != nil {
		return m.Err
	}
	for _, u := range m.Users {
		if u.ID == id {
			u.Name = name
		}
	}
	return nil
}

// MockScoreRepository is an in-memory ScoreRepository
type MockScoreRepository struct {
	Predicted []models.PredictedScore
	MLScores  map[int][]models.MLScore
	Err       error
}

func NewMockScoreRepository() *MockScoreRepository {
	return &MockScoreRepository{MLScores: make(map[int][]models.MLScore)}
}

func (m *MockScoreRepository) ListPredicted(ctx context.Context, filter models.ScoreFilter) ([]models.PredictedScore, error) {
	if m.Err != nil {
		return nil, m.Err
	}
	out := make([]models.PredictedScore, 0)
	for _, s := range m.Predicted {
		if filter.CountryID != "" && filter.CountryID != formatID(s.CountryID) {
			continue
		}
		if filter.FactorID != "" && filter.FactorID != formatID(s.FactorID) {
			continue
		}
		if filter.PredScore != "" {
			want, err := decimal.NewFromString(filter.PredScore)
			if err != nil || !want.Equal(s.Score) {
				continue
			}
		}
		out = append(out, s)
	}
	return out, nil
}

func (m *MockScoreRepository) ListPredictedByCountry(ctx context.Context, countryID int64) ([]models.CountryScore, error) {
	if m.Err != nil {
		return nil, m.Err
	}
	out := make([]models.CountryScore, 0)
	for _, s := range m.Predicted {
		if s.CountryID == countryID {
			out = append(out, models.CountryScore{FactorID: s.FactorID, Score: s.Score})
		}
	}
	return out, nil
}

func (m *MockScoreRepository) ListMLScores(ctx context.Context, year int) ([]models.MLScore, error) {
	if m.Err != nil {
		return nil, m.Err
	}
	out := make([]models.MLScore, 0, len(m.MLScores[year]))
	return append(out, m.MLScores[year]...), nil
}

// StoredPreference is a preference row held by MockPreferenceRepository
type StoredPreference struct {
	ID      int64
	Request models.PreferenceRequest
}

// MockPreferenceRepository is an in-memory PreferenceRepository
type MockPreferenceRepository struct {
	mu     sync.Mutex
	Rows   []StoredPreference
	Err    error
	nextID int64
}

func NewMockPreferenceRepository() *MockPreferenceRepository {
	return &MockPreferenceRepository{nextID: 1}
}

func (m *MockPreferenceRepository) Create(ctx context.Context, pref *models.PreferenceRequest) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.Err != nil {
		return m.Err
	}
	m.Rows = append(m.Rows, StoredPreference{ID: m.nextID, Request: *pref})
	m.nextID++
	return nil
}

// ListRecent orders by pref_date then id, newest first; ISO dates sort as strings
func (m *MockPreferenceRepository) ListRecent(ctx context.Context, userID int64, limit uint64) ([]models.PreferenceSummary, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.Err != nil {
		return nil, m.Err
	}
	var matched []StoredPreference
	for _, row := range m.Rows {
		if row.Request.UserID != nil && *row.Request.UserID == userID {
			matched = append(matched, row)
		}
	}
	sort.SliceStable(matched, func(i, j int) bool {
		di, dj := deref(matched[i].Request.PrefDate), deref(matched[j].Request.PrefDate)
		if di != dj {
			return di > dj
		}
		return matched[i].ID > matched[j].ID
	})

	out := make([]models.PreferenceSummary, 0, limit)
	for _, row := range matched {
		if uint64(len(out)) == limit {
			break
		}
		out = append(out, models.PreferenceSummary{ID: row.ID, TopCountry: row.Request.TopCountry})
	}
	return out, nil
}

// MockLookupRepository is an in-memory LookupRepository
type MockLookupRepository struct {
	CountryRows    []models.Country
	FactorRows     []models.Factor
	Orgs           []models.Organization
	UniversityRows []models.University
	Err            error
}

func NewMockLookupRepository() *MockLookupRepository {
	return &MockLookupRepository{}
}

func (m *MockLookupRepository) CountryNames(ctx context.Context) ([]string, error) {
	if m.Err != nil {
		return nil, m.Err
	}
	names := make([]string, 0, len(m.CountryRows))
	for _, c := range m.CountryRows {
		names = append(names, c.Name)
	}
	return names, nil
}

func (m *MockLookupRepository) Countries(ctx context.Context) ([]models.Country, error) {
	if m.Err != nil {
		return nil, m.Err
	}
	return append(make([]models.Country, 0, len(m.CountryRows)), m.CountryRows...), nil
}

func (m *MockLookupRepository) Factors(ctx context.Context) ([]models.Factor, error) {
	if m.Err != nil {
		return nil, m.Err
	}
	return append(make([]models.Factor, 0, len(m.FactorRows)), m.FactorRows...), nil
}

func (m *MockLookupRepository) Organizations(ctx context.Context, countryID, factorID int64) ([]models.Organization, error) {
	if m.Err != nil {
		return nil, m.Err
	}
	out := make([]models.Organization, 0)
	for _, o := range m.Orgs {
		if o.CountryID == countryID && o.FactorID == factorID {
			out = append(out, o)
		}
	}
	return out, nil
}

func (m *MockLookupRepository) Universities(ctx context.Context, countryID int64) ([]models.University, error) {
	if m.Err != nil {
		return nil, m.Err
	}
	out := make([]models.University, 0)
	for _, u := range m.UniversityRows {
		if u.CountryID == countryID {
			out = append(out, u)
		}
	}
	return out, nil
}

// NewMockRepositories bundles fresh in-memory repositories
func NewMockRepositories() (*repository.Repositories, *MockUserRepository, *MockScoreRepository, *MockPreferenceRepository, *MockLookupRepository) {
	users := NewMockUserRepository()
	scores := NewMockScoreRepository()
	prefs := NewMockPreferenceRepository()
	lookups := NewMockLookupRepository()
	return &repository.Repositories{
		User:       users,
		Score:      scores,
		Preference: prefs,
		Lookup:     lookups,
	}, users, scores, prefs, lookups
}
