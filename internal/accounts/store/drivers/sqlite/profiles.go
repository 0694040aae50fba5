package sqlite

import (
	"context"
	"time"

	"github.com/edukita/accounts/internal/accounts/domain"
)

type muridProfilesRepo struct {
	db dbtx
}

func (r *muridProfilesRepo) GetMuridProfile(
	ctx context.Context,
	userID string,
) (domain.MuridProfile, error) {
	var p domain.MuridProfile
	err := r.db.QueryRowContext(ctx,
		`SELECT user_id, nim, jurusan, angkatan, alamat, created_at, updated_at
		 FROM murid_profiles WHERE user_id = ?`, userID).
		Scan(&p.UserID, &p.NIM, &p.Jurusan, &p.Angkatan, &p.Alamat, &p.CreatedAt, &p.UpdatedAt)
	if err != nil {
		return domain.MuridProfile{}, mapNotFound(err)
	}
	return p, nil
}

func (r *muridProfilesRepo) UpsertMuridProfile(ctx context.Context, p domain.MuridProfile) error {
	now := time.Now().UTC()
	_, err := r.db.ExecContext(ctx,
		`INSERT INTO murid_profiles (user_id, nim, jurusan, angkatan, alamat, created_at, updated_at)
		 VALUES (?, ?, ?, ?, ?, ?, ?)
		 ON CONFLICT (user_id) DO UPDATE SET nim = excluded.nim,
		                                     jurusan = excluded.jurusan,
		                                     angkatan = excluded.angkatan,
		                                     alamat = excluded.alamat,
		                                     updated_at = excluded.updated_at`,
		p.UserID, p.NIM, p.Jurusan, p.Angkatan, p.Alamat, now, now)
	return err
}

type pengajarProfilesRepo struct {
	db dbtx
}

func (r *pengajarProfilesRepo) GetPengajarProfile(
	ctx context.Context,
	userID string,
) (domain.PengajarProfile, error) {
	var p domain.PengajarProfile
	err := r.db.QueryRowContext(ctx,
		`SELECT user_id, nip, bidang, alamat, created_at, updated_at
		 FROM pengajar_profiles WHERE user_id = ?`, userID).
		Scan(&p.UserID, &p.NIP, &p.Bidang, &p.Alamat, &p.CreatedAt, &p.UpdatedAt)
	if err != nil {
		return domain.PengajarProfile{}, mapNotFound(err)
	}
	return p, nil
}

func (r *pengajarProfilesRepo) UpsertPengajarProfile(
	ctx context.Context,
	p domain.PengajarProfile,
) error {
	now := time.Now().UTC()
	_, err := r.db.ExecContext(ctx,
		`INSERT INTO pengajar_profiles (user_id, nip, bidang, alamat, created_at, updated_at)
		 VALUES (?, ?, ?, ?, ?, ?)
		 ON CONFLICT (user_id) DO UPDATE SET nip = excluded.nip,
		                                     bidang = excluded.bidang,
		                                     alamat = excluded.alamat,
		                                     updated_at = excluded.updated_at`,
		p.UserID, p.NIP, p.Bidang, p.Alamat, now, now)
	return err
}
