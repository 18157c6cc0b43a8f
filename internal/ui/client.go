package ui

import (
	"context"
	"net/http"
	"strconv"

	"github.com/best-life-api/internal/config"
	"github.com/best-life-api/internal/models"
	"github.com/go-resty/resty/v2"
	"github.com/rs/zerolog"
)

var _ DataSource = (*APIClient)(nil)

// APIClient calls the data API. Every method degrades to an empty result on
// failure and logs why; nothing is surfaced to the user.
type APIClient struct {
	http *resty.Client
	log  zerolog.Logger
}

// NewAPIClient creates a client for the API at cfg.APIBaseURL
func NewAPIClient(cfg config.UIConfig, log zerolog.Logger) *APIClient {
	client := resty.New().
		SetBaseURL(cfg.APIBaseURL).
		SetTimeout(cfg.APITimeout).
		SetHeader("Accept", "application/json")

	return &APIClient{
		http: client,
		log:  log.With().Str("component", "api_client").Logger(),
	}
}

// Close releases idle connections
func (c *APIClient) Close() {
	c.http.GetClient().CloseIdleConnections()
}

// get decodes a 200 JSON response into out and reports success
func (c *APIClient) get(ctx context.Context, path string, params map[string]string, out interface{}) bool {
	resp, err := c.http.R().
		SetContext(ctx).
		SetPathParams(params).
		SetResult(out).
		Get(path)
	if err != nil {
		c.log.Error().Err(err).Str("path", path).Interface("params", params).Msg("API request failed")
		return false
	}
	if resp.StatusCode() != http.StatusOK {
		c.log.Error().Int("status", resp.StatusCode()).Str("path", path).Interface("params", params).Msg("API returned non-200")
		return false
	}
	return true
}

// Usernames resolves role name to role id, then lists that role's users
func (c *APIClient) Usernames(ctx context.Context, roleName string) []string {
	var roleID int64
	if !c.get(ctx, "/users/role/{role}", map[string]string{"role": roleName}, &roleID) {
		return []string{}
	}
	if roleID == 0 {
		c.log.Error().Str("role", roleName).Msg("No role id found")
		return []string{}
	}

	var names []string
	if !c.get(ctx, "/users/role/{role}", map[string]string{"role": strconv.FormatInt(roleID, 10)}, &names) {
		return []string{}
	}
	if names == nil {
		return []string{}
	}
	return names
}

// UserID resolves a user name, nil when it cannot
func (c *APIClient) UserID(ctx context.Context, userName string) *int64 {
	var body struct {
		UserID *int64 `json:"user_id"`
	}
	if !c.get(ctx, "/users/getID/{name}", map[string]string{"name": userName}, &body) {
		return nil
	}
	if body.UserID == nil {
		c.log.Error().Str("user_name", userName).Msg("No user id in response")
	}
	return body.UserID
}

// RecentPreferences lists a user's newest preferences
func (c *APIClient) RecentPreferences(ctx context.Context, userID int64) []models.PreferenceSummary {
	prefs := make([]models.PreferenceSummary, 0)
	if !c.get(ctx, "/preference/{id}", map[string]string{"id": strconv.FormatInt(userID, 10)}, &prefs) {
		return []models.PreferenceSummary{}
	}
	return prefs
}

// Scores lists the ML scores for the API's configured year
func (c *APIClient) Scores(ctx context.Context) []models.MLScore {
	scores := make([]models.MLScore, 0)
	if !c.get(ctx, "/scores", nil, &scores) {
		return []models.MLScore{}
	}
	return scores
}

// Countries lists countries with their ids
func (c *APIClient) Countries(ctx context.Context) []models.Country {
	countries := make([]models.Country, 0)
	if !c.get(ctx, "/country", nil, &countries) {
		return []models.Country{}
	}
	return countries
}

// Factors lists factors with their ids
func (c *APIClient) Factors(ctx context.Context) []models.Factor {
	factors := make([]models.Factor, 0)
	if !c.get(ctx, "/factor", nil, &factors) {
		return []models.Factor{}
	}
	return factors
}
