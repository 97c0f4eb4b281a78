package models

// GradeBand is the year level a class belongs to.
type GradeBand string

const (
	GradeBand7 GradeBand = "7"
	GradeBand8 GradeBand = "8"
	GradeBand9 GradeBand = "9"
)

// Valid reports whether g is one of the three grade bands.
func (g GradeBand) Valid() bool {
	switch g {
	case GradeBand7, GradeBand8, GradeBand9:
		return true
	}
	return false
}

// Category groups violation types.
type Category string

const (
	CategoryConduct   Category = "Kelakuan"
	CategoryDiligence Category = "Kerajinan & Pembiasaan"
	CategoryTidiness  Category = "Kerapian"
)

// Categories lists every category in display order.
func Categories() []Category {
	return []Category{CategoryConduct, CategoryDiligence, CategoryTidiness}
}

// Valid reports whether c is a known category.
func (c Category) Valid() bool {
	switch c {
	case CategoryConduct, CategoryDiligence, CategoryTidiness:
		return true
	}
	return false
}

// UserRole represents the available roles for the RBAC system.
type UserRole string

const (
	RoleAdministrator UserRole = "administrator"
	RoleTeacher       UserRole = "guru"
)

// Valid reports whether r is a known role.
func (r UserRole) Valid() bool {
	return r == RoleAdministrator || r == RoleTeacher
}
