package constants

import "fmt"

// Dua role yang dikenal sistem:
// - HIGH: admin pusat, memproses persetujuan koperasi
// - LOW : operator daerah, pemilik maksimal satu koperasi
const (
	RoleHigh = "HIGH"
	RoleLow  = "LOW"
)

// Template pesan error role
const (
	ErrOnlyAdminCanAccess    = "❌ Hanya admin pusat yang boleh mengakses fitur %s."
	ErrOnlyOperatorCanAccess = "❌ Hanya operator daerah yang boleh mengakses fitur %s."
)

func RoleErrorAdmin(feature string) string {
	return fmt.Sprintf(ErrOnlyAdminCanAccess, feature)
}

func RoleErrorOperator(feature string) string {
	return fmt.Sprintf(ErrOnlyOperatorCanAccess, feature)
}

// ==========================
// ✅ Grouped Role Slices
// ==========================
var (
	AllRoles = []string{
		RoleHigh,
		RoleLow,
	}

	AdminOnly = []string{
		RoleHigh,
	}

	OperatorOnly = []string{
		RoleLow,
	}
)
