package http

import (
	"encoding/json"
	"net/http"

	validation "github.com/go-ozzo/ozzo-validation"
	"github.com/go-ozzo/ozzo-validation/is"

	"github.com/edukita/accounts/pkg/httpx"
)

// decodeJSON parses the request body into dst. Unknown fields are ignored,
// so clients may submit extra keys (a register payload carrying "role" still
// creates a murid account). On malformed JSON it writes a 400 envelope and
// reports false; handlers return immediately in that case.
func decodeJSON(w http.ResponseWriter, r *http.Request, dst any) bool {
	dec := json.NewDecoder(r.Body)
	if err := dec.Decode(dst); err != nil {
		httpx.WriteError(w, http.StatusBadRequest, "invalid request body")
		return false
	}
	return true
}

type RegisterRequest struct {
	Name     string `json:"name"`
	Email    string `json:"email"`
	Password string `json:"password"`
}

func (r RegisterRequest) Validate() error {
	return validation.ValidateStruct(&r,
		validation.Field(&r.Name, validation.Required, validation.Length(1, 255)),
		validation.Field(&r.Email, validation.Required, is.Email, validation.Length(1, 255)),
		validation.Field(&r.Password, validation.Required, validation.Length(8, 72)),
	)
}

type LoginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
	Device   string `json:"device"` // optional label for the session token
}

func (r LoginRequest) Validate() error {
	return validation.ValidateStruct(&r,
		validation.Field(&r.Email, validation.Required, is.Email),
		validation.Field(&r.Password, validation.Required),
	)
}

// UpdateMeRequest carries a partial self-update. Pointer fields distinguish
// "absent" from "set to empty".
type UpdateMeRequest struct {
	Name  *string `json:"name"`
	Email *string `json:"email"`
}

func (r UpdateMeRequest) Validate() error {
	return validation.ValidateStruct(&r,
		validation.Field(&r.Name, validation.NilOrNotEmpty, validation.Length(1, 255)),
		validation.Field(&r.Email, validation.NilOrNotEmpty, is.Email, validation.Length(1, 255)),
	)
}

type ChangePasswordRequest struct {
	OldPassword string `json:"old_password"`
	NewPassword string `json:"new_password"`
}

func (r ChangePasswordRequest) Validate() error {
	return validation.ValidateStruct(&r,
		validation.Field(&r.OldPassword, validation.Required),
		validation.Field(&r.NewPassword, validation.Required, validation.Length(8, 72)),
	)
}

type ForgotPasswordRequest struct {
	Email string `json:"email"`
}

func (r ForgotPasswordRequest) Validate() error {
	return validation.ValidateStruct(&r,
		validation.Field(&r.Email, validation.Required, is.Email),
	)
}

type ResetPasswordRequest struct {
	Email    string `json:"email"`
	Token    string `json:"token"`
	Password string `json:"password"`
}

func (r ResetPasswordRequest) Validate() error {
	return validation.ValidateStruct(&r,
		validation.Field(&r.Email, validation.Required, is.Email),
		validation.Field(&r.Token, validation.Required),
		validation.Field(&r.Password, validation.Required, validation.Length(8, 72)),
	)
}

type CreateUserRequest struct {
	Name     string `json:"name"`
	Email    string `json:"email"`
	Password string `json:"password"`
	Role     string `json:"role"`
}

func (r CreateUserRequest) Validate() error {
	return validation.ValidateStruct(&r,
		validation.Field(&r.Name, validation.Required, validation.Length(1, 255)),
		validation.Field(&r.Email, validation.Required, is.Email, validation.Length(1, 255)),
		validation.Field(&r.Password, validation.Required, validation.Length(8, 72)),
		validation.Field(&r.Role, validation.Required, validation.In("admin", "pengajar", "murid")),
	)
}

type UpdateUserRequest struct {
	Name  *string `json:"name"`
	Email *string `json:"email"`
	Role  *string `json:"role"`
}

func (r UpdateUserRequest) Validate() error {
	return validation.ValidateStruct(&r,
		validation.Field(&r.Name, validation.NilOrNotEmpty, validation.Length(1, 255)),
		validation.Field(&r.Email, validation.NilOrNotEmpty, is.Email, validation.Length(1, 255)),
		validation.Field(&r.Role, validation.NilOrNotEmpty, validation.In("admin", "pengajar", "murid")),
	)
}

// AdminResetPasswordRequest force-sets a password. An empty body or empty
// password asks the service to generate one.
type AdminResetPasswordRequest struct {
	Password string `json:"password"`
}

func (r AdminResetPasswordRequest) Validate() error {
	return validation.ValidateStruct(&r,
		validation.Field(&r.Password, validation.Length(8, 72)),
	)
}

// UpdateProfileRequest covers both profile variants; the handler reads only
// the fields matching the caller's role.
type UpdateProfileRequest struct {
	// murid fields
	NIM      string `json:"nim"`
	Jurusan  string `json:"jurusan"`
	Angkatan int    `json:"angkatan"`

	// pengajar fields
	NIP    string `json:"nip"`
	Bidang string `json:"bidang"`

	// shared
	Alamat string `json:"alamat"`
}

func (r UpdateProfileRequest) validateMurid() error {
	return validation.ValidateStruct(&r,
		validation.Field(&r.NIM, validation.Required, validation.Length(1, 64)),
		validation.Field(&r.Jurusan, validation.Length(0, 255)),
		validation.Field(&r.Angkatan, validation.Min(2000), validation.Max(2100)),
		validation.Field(&r.Alamat, validation.Length(0, 500)),
	)
}

func (r UpdateProfileRequest) validatePengajar() error {
	return validation.ValidateStruct(&r,
		validation.Field(&r.NIP, validation.Required, validation.Length(1, 64)),
		validation.Field(&r.Bidang, validation.Length(0, 255)),
		validation.Field(&r.Alamat, validation.Length(0, 500)),
	)
}
