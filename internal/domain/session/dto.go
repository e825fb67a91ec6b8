package session

import "github.com/cmlabs-hris/career-gateway-go/internal/pkg/validator"

type LoginRequest struct {
	Role     Role   `json:"-"`
	Email    string `json:"email"`
	Password string `json:"password"`
}

func (r *LoginRequest) Validate() error {
	var errs validator.ValidationErrors

	if !r.Role.Valid() || r.Role == RoleAdmin {
		errs.Add("role", "role must be seeker or employer")
	}
	if validator.IsEmpty(r.Email) {
		errs.Add("email", "email is required")
	} else if !validator.IsValidEmail(r.Email) {
		errs.Add("email", "email must be a valid email address")
	}
	if validator.IsEmpty(r.Password) {
		errs.Add("password", "password is required")
	}

	return errs.Err()
}

type TokenResponse struct {
	AccessToken string `json:"access_token"`
	TokenType   string `json:"token_type"`
	ExpiresAt   int64  `json:"expires_at"`
	Role        Role   `json:"role"`
	SubjectID   string `json:"subject_id"`
}

type MeResponse struct {
	SessionID string `json:"session_id"`
	Role      Role   `json:"role"`
	SubjectID string `json:"subject_id"`
	Name      string `json:"name,omitempty"`
	Email     string `json:"email,omitempty"`
	ExpiresAt int64  `json:"expires_at"`
}

type SetPrimaryResumeRequest struct {
	ResumeID string `json:"resume_id"`
}

func (r *SetPrimaryResumeRequest) Validate() error {
	var errs validator.ValidationErrors

	if validator.IsEmpty(r.ResumeID) {
		errs.Add("resume_id", "resume_id is required")
	}

	return errs.Err()
}

type PrimaryResumeResponse struct {
	ResumeID  string `json:"resume_id"`
	UpdatedAt string `json:"updated_at"`
}

type SSETokenResponse struct {
	Token     string `json:"token"`
	ExpiresIn int    `json:"expires_in"`
}
