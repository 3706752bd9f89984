package api

// User is the authenticated player's account profile as returned by the
// Horizon API. Fields beyond these exist server-side; the front-end only
// reads what it renders.
type User struct {
	ID        int64  `json:"id"`
	Username  string `json:"username"`
	Email     string `json:"email"`
	Validated bool   `json:"validated"`
	CreatedAt string `json:"createdAt"`
}

// Credentials carries a login attempt. UsernameOrEmail matches the single
// identifier field the login endpoint accepts.
type Credentials struct {
	UsernameOrEmail string `json:"usernameOrEmail"`
	Password        string `json:"password"`
}

// Registration carries a new-account request.
type Registration struct {
	Username        string `json:"username"`
	Email           string `json:"email"`
	Password        string `json:"password"`
	ConfirmPassword string `json:"confirmPassword"`
}

// tokenResponse is the shape shared by the login and refresh endpoints.
type tokenResponse struct {
	AccessToken string `json:"accessToken"`
}

// errorResponse is the error body shape used across the Horizon API:
// Message is a human/code string, Errors an optional per-field map
// (populated on 412 validation rejections).
type errorResponse struct {
	Message string            `json:"message"`
	Errors  map[string]string `json:"errors"`
}

// Account-state message codes the login endpoint returns with a 401.
// The auth form maps these to localized copy.
const (
	AccountCreated  = "Created account"
	AccountBanned   = "Banned account"
	AccountDisabled = "Disabled account"
)
