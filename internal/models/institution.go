package models

import "time"

// InstitutionSettings is the singleton school profile (pengaturan instansi).
type InstitutionSettings struct {
	ID            int64      `db:"id" json:"id"`
	Name          string     `db:"nama_instansi" json:"nama_instansi"`
	Address       string     `db:"alamat" json:"alamat"`
	PrincipalName string     `db:"nama_kepala_sekolah" json:"nama_kepala_sekolah"`
	Website       *string    `db:"website" json:"website"`
	Email         *string    `db:"email" json:"email"`
	Logo          *string    `db:"logo_sekolah" json:"logo_sekolah"`
	CreatedAt     time.Time  `db:"created_at" json:"created_at"`
	UpdatedAt     *time.Time `db:"updated_at" json:"updated_at"`
}

// Default institution values used when the row is first created.
const (
	DefaultInstitutionName      = "Default Institution"
	DefaultInstitutionAddress   = "Default Address"
	DefaultInstitutionPrincipal = "Default Principal"
)

// DefaultInstitutionSettings returns the placeholder profile.
func DefaultInstitutionSettings() InstitutionSettings {
	return InstitutionSettings{
		Name:          DefaultInstitutionName,
		Address:       DefaultInstitutionAddress,
		PrincipalName: DefaultInstitutionPrincipal,
	}
}
