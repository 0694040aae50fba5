package http

import (
	"errors"
	"net/http"
	"time"

	validation "github.com/go-ozzo/ozzo-validation"

	"github.com/edukita/accounts/internal/accounts/domain"
	"github.com/edukita/accounts/pkg/httpx"
)

// UserView is the wire shape of an account. It never carries the password hash.
type UserView struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	Email     string    `json:"email"`
	Role      string    `json:"role"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

func newUserView(u domain.User) UserView {
	return UserView{
		ID:        u.ID,
		Name:      u.Name,
		Email:     u.Email,
		Role:      string(u.Role),
		CreatedAt: u.CreatedAt,
		UpdatedAt: u.UpdatedAt,
	}
}

func newUserViews(users []domain.User) []UserView {
	views := make([]UserView, 0, len(users))
	for _, u := range users {
		views = append(views, newUserView(u))
	}
	return views
}

// LoginView carries the identity plus the one-time plaintext token.
type LoginView struct {
	User  UserView `json:"user"`
	Token string   `json:"token"`
}

// PageView wraps a user page with its pagination metadata.
type PageView struct {
	Users   []UserView `json:"users"`
	Total   int        `json:"total"`
	Page    int        `json:"page"`
	PerPage int        `json:"per_page"`
}

// MuridProfileView is the wire shape of a student profile.
type MuridProfileView struct {
	UserID    string    `json:"user_id"`
	NIM       string    `json:"nim"`
	Jurusan   string    `json:"jurusan"`
	Angkatan  int       `json:"angkatan"`
	Alamat    string    `json:"alamat"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// PengajarProfileView is the wire shape of an instructor profile.
type PengajarProfileView struct {
	UserID    string    `json:"user_id"`
	NIP       string    `json:"nip"`
	Bidang    string    `json:"bidang"`
	Alamat    string    `json:"alamat"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

func newProfileView(p domain.Profile) any {
	switch v := p.(type) {
	case domain.MuridProfile:
		return MuridProfileView{
			UserID:    v.UserID,
			NIM:       v.NIM,
			Jurusan:   v.Jurusan,
			Angkatan:  v.Angkatan,
			Alamat:    v.Alamat,
			CreatedAt: v.CreatedAt,
			UpdatedAt: v.UpdatedAt,
		}
	case domain.PengajarProfile:
		return PengajarProfileView{
			UserID:    v.UserID,
			NIP:       v.NIP,
			Bidang:    v.Bidang,
			Alamat:    v.Alamat,
			CreatedAt: v.CreatedAt,
			UpdatedAt: v.UpdatedAt,
		}
	default:
		return nil
	}
}

// writeValidationFailure renders a 422 envelope. ozzo's validation.Errors
// marshals straight into the field -> reason map the envelope expects.
func writeValidationFailure(w http.ResponseWriter, err error) {
	var errs validation.Errors
	if errors.As(err, &errs) {
		httpx.WriteValidationError(w, "validation failed", errs)
		return
	}
	httpx.WriteValidationError(w, err.Error(), nil)
}

// writeEmailTaken renders the duplicate-email failure in the same shape as a
// field validation error.
func writeEmailTaken(w http.ResponseWriter) {
	httpx.WriteValidationError(w, "validation failed", map[string]string{
		"email": "email is already taken",
	})
}
