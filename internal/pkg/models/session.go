package models

// Session is the persisted authentication state for one user: the issued
// access token, a cached snapshot of the identity, and the screen history
// the client navigated through.
type Session struct {
	AccessToken string   `json:"access_token"`
	User        *User    `json:"user"`
	Screens     []string `json:"screens"`
}

// PushScreenRequest represents a request to push a screen onto the
// navigation history
type PushScreenRequest struct {
	Screen string `json:"screen" validate:"required"`
}

// NavigationResponse carries the navigation stack after a mutation
type NavigationResponse struct {
	Screens []string `json:"screens"`
	Current string   `json:"current"`
}
