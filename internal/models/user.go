package models

// User is a user row joined with its role name
type User struct {
	ID       int64   `json:"user_ID" db:"user_id"`
	Name     string  `json:"user_name" db:"user_name"`
	Country  *string `json:"user_country" db:"user_country"`
	RoleName string  `json:"role_name" db:"role_name"`
}

// UpdateUserNameRequest is the body of PUT /users/name.
// Both keys are required; nothing else is checked.
type UpdateUserNameRequest struct {
	UserID   *int64  `json:"user_id"`
	UserName *string `json:"user_name"`
}
