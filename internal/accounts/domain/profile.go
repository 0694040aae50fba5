package domain

import "time"

// Profile is the role-specific profile attached to a user. The concrete type
// is selected once from the user's role; admins have none.
type Profile interface {
	// ProfileRole names the role this profile variant belongs to.
	ProfileRole() Role
}

// MuridProfile is the student profile (one row per murid user).
type MuridProfile struct {
	UserID    string
	NIM       string // student number, required
	Jurusan   string // study programme
	Angkatan  int    // enrolment year, 0 when unset
	Alamat    string // address
	CreatedAt time.Time
	UpdatedAt time.Time
}

func (MuridProfile) ProfileRole() Role { return RoleMurid }

// PengajarProfile is the instructor profile (one row per pengajar user).
type PengajarProfile struct {
	UserID    string
	NIP       string // employee number, required
	Bidang    string // field of expertise
	Alamat    string // address
	CreatedAt time.Time
	UpdatedAt time.Time
}

func (PengajarProfile) ProfileRole() Role { return RolePengajar }
