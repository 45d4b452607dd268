package request_models

type RegisterRequest struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required,min=6"`
}

type LoginRequest struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required"`
}

type GoogleAuthRequest struct {
	IDToken string `json:"idToken" binding:"required"`
}

type AppleAuthRequest struct {
	IdentityToken string `json:"identityToken" binding:"required"`
	FullName      string `json:"fullName"` // only present on first sign-in
}
