package dto

// LoginRequest entrada de POST /api/auth/login.
type LoginRequest struct {
	Name string `json:"name"`
	PIN  string `json:"pin"`
}

// UserResponse usuario del directorio sin su PIN.
type UserResponse struct {
	Name string `json:"name"`
	Role string `json:"role"`
}

// LoginResponse token de sesión + usuario autenticado.
type LoginResponse struct {
	Token string       `json:"token"`
	User  UserResponse `json:"user"`
}

// SessionResponse estado de la sesión actual.
type SessionResponse struct {
	User           UserResponse `json:"user"`
	ViewMode       string       `json:"view_mode"`
	EditingOrderID string       `json:"editing_order_id,omitempty"`
}

// ViewModeRequest entrada de PUT /api/session/view.
type ViewModeRequest struct {
	Mode string `json:"mode"`
}
