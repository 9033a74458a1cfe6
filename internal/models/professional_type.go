package models

// ProfessionalType is the closed category of a marketplace participant.
// It is fixed at profile creation and decides which attribute bags are
// meaningful and which editor schema applies.
type ProfessionalType string

const (
	TypeModel           ProfessionalType = "model"
	TypePhotographer    ProfessionalType = "photographer"
	TypeFashionDesigner ProfessionalType = "fashion-designer"
	TypeStylist         ProfessionalType = "stylist"
	TypeMakeupArtist    ProfessionalType = "makeup-artist"
	TypeBrand           ProfessionalType = "brand"
	TypeAgency          ProfessionalType = "agency"
)

// AllProfessionalTypes lists every known type, in display order.
var AllProfessionalTypes = []ProfessionalType{
	TypeModel,
	TypePhotographer,
	TypeFashionDesigner,
	TypeStylist,
	TypeMakeupArtist,
	TypeBrand,
	TypeAgency,
}

// ParseProfessionalType resolves a raw string. The second return value is
// false for unknown or missing values; callers decide the fallback and are
// expected to log it as a data-quality signal rather than substitute
// silently.
func ParseProfessionalType(raw string) (ProfessionalType, bool) {
	t := ProfessionalType(raw)
	for _, known := range AllProfessionalTypes {
		if t == known {
			return t, true
		}
	}
	return "", false
}

// IsCompany reports whether the type represents an organization rather
// than an individual.
func (t ProfessionalType) IsCompany() bool {
	return t == TypeBrand || t == TypeAgency
}
