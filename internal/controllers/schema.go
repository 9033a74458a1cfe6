package controllers

import (
	"fmt"
	"strconv"

	"zanara/internal/models"
)

// FieldKind tells the renderer which input widget a field needs.
type FieldKind int

const (
	FieldText FieldKind = iota
	FieldMultiline
	// FieldList renders as comma-separated text and parses into a slice of
	// trimmed, non-empty strings on every change.
	FieldList
	FieldNumber
)

// Field is one editable profile attribute. Get/Set close over the concrete
// Profile field, so nested edits (rates.hourly, socialMedia.instagram)
// touch exactly one value and never clobber siblings.
type Field struct {
	Name  string
	Label string
	Kind  FieldKind
	Get   func(p *models.Profile) string
	Set   func(p *models.Profile, raw string) error
}

// Section groups fields for display. EmptyHint is the prompt shown when no
// field in the section has a value yet ("not yet provided", never an error).
type Section struct {
	ID        string
	Title     string
	EmptyHint string
	Fields    []Field
}

// Empty reports whether the section has no values to display.
func (s Section) Empty(p *models.Profile) bool {
	for _, f := range s.Fields {
		if f.Get(p) != "" {
			return false
		}
	}
	return true
}

// Schema is the per-professional-type editor configuration. One generic
// controller parameterized by a Schema replaces the seven near-identical
// per-type editors.
type Schema struct {
	Type     models.ProfessionalType
	Sections []Section
}

// Field finds a field by name across all sections.
func (s Schema) Field(name string) (Field, bool) {
	for _, sec := range s.Sections {
		for _, f := range sec.Fields {
			if f.Name == name {
				return f, true
			}
		}
	}
	return Field{}, false
}

// ============================================
// Field constructors
//
// Accessors take an alloc flag: Get passes false so a pure read never
// attaches an empty attribute bag to the profile, Set passes true so a
// nested edit works against a profile where the bag was never provided.
// ============================================

func textField(name, label string, get func(p *models.Profile, alloc bool) *string) Field {
	return Field{
		Name:  name,
		Label: label,
		Kind:  FieldText,
		Get:   func(p *models.Profile) string { return *get(p, false) },
		Set: func(p *models.Profile, raw string) error {
			*get(p, true) = raw
			return nil
		},
	}
}

func multilineField(name, label string, get func(p *models.Profile, alloc bool) *string) Field {
	f := textField(name, label, get)
	f.Kind = FieldMultiline
	return f
}

func listField(name, label string, get func(p *models.Profile, alloc bool) *[]string) Field {
	return Field{
		Name:  name,
		Label: label,
		Kind:  FieldList,
		Get:   func(p *models.Profile) string { return models.JoinList(*get(p, false)) },
		Set: func(p *models.Profile, raw string) error {
			*get(p, true) = models.ParseList(raw)
			return nil
		},
	}
}

func intField(name, label string, get func(p *models.Profile, alloc bool) *int) Field {
	return Field{
		Name:  name,
		Label: label,
		Kind:  FieldNumber,
		Get: func(p *models.Profile) string {
			if v := *get(p, false); v != 0 {
				return strconv.Itoa(v)
			}
			return ""
		},
		Set: func(p *models.Profile, raw string) error {
			if raw == "" {
				*get(p, true) = 0
				return nil
			}
			v, err := strconv.Atoi(raw)
			if err != nil {
				return fmt.Errorf("%s: not a whole number", label)
			}
			*get(p, true) = v
			return nil
		},
	}
}

func floatField(name, label string, get func(p *models.Profile, alloc bool) *float64) Field {
	return Field{
		Name:  name,
		Label: label,
		Kind:  FieldNumber,
		Get: func(p *models.Profile) string {
			if v := *get(p, false); v != 0 {
				return strconv.FormatFloat(v, 'f', -1, 64)
			}
			return ""
		},
		Set: func(p *models.Profile, raw string) error {
			if raw == "" {
				*get(p, true) = 0
				return nil
			}
			v, err := strconv.ParseFloat(raw, 64)
			if err != nil {
				return fmt.Errorf("%s: not a number", label)
			}
			*get(p, true) = v
			return nil
		},
	}
}

func socialField(platform, label string) Field {
	name := "socialMedia." + platform
	return Field{
		Name:  name,
		Label: label,
		Kind:  FieldText,
		Get: func(p *models.Profile) string {
			return p.SocialMedia[platform]
		},
		Set: func(p *models.Profile, raw string) error {
			if p.SocialMedia == nil {
				p.SocialMedia = map[string]string{}
			}
			if raw == "" {
				delete(p.SocialMedia, platform)
				return nil
			}
			p.SocialMedia[platform] = raw
			return nil
		},
	}
}

// ============================================
// Attribute bag accessors
//
// A missing bag is attached only when alloc is set. Reads against an
// absent bag go through a detached zero value, so rendering a profile
// never mutates it.
// ============================================

func measurements(p *models.Profile, alloc bool) *models.Measurements {
	if p.Measurements == nil {
		if !alloc {
			return &models.Measurements{}
		}
		p.Measurements = &models.Measurements{}
	}
	return p.Measurements
}

func equipment(p *models.Profile, alloc bool) *models.Equipment {
	if p.Equipment == nil {
		if !alloc {
			return &models.Equipment{}
		}
		p.Equipment = &models.Equipment{}
	}
	return p.Equipment
}

func design(p *models.Profile, alloc bool) *models.DesignDetails {
	if p.Design == nil {
		if !alloc {
			return &models.DesignDetails{}
		}
		p.Design = &models.DesignDetails{}
	}
	return p.Design
}

func rates(p *models.Profile, alloc bool) *models.ServiceRates {
	if p.Rates == nil {
		if !alloc {
			return &models.ServiceRates{}
		}
		p.Rates = &models.ServiceRates{}
	}
	return p.Rates
}

func company(p *models.Profile, alloc bool) *models.CompanyDetails {
	if p.Company == nil {
		if !alloc {
			return &models.CompanyDetails{}
		}
		p.Company = &models.CompanyDetails{}
	}
	return p.Company
}

// ============================================
// Shared sections
// ============================================

func basicsSection() Section {
	return Section{
		ID:        "basics",
		Title:     "About",
		EmptyHint: "Introduce yourself so people know who they are connecting with",
		Fields: []Field{
			textField("fullName", "Full name", func(p *models.Profile, _ bool) *string { return &p.FullName }),
			textField("headline", "Headline", func(p *models.Profile, _ bool) *string { return &p.Headline }),
			textField("location", "Location", func(p *models.Profile, _ bool) *string { return &p.Location }),
			multilineField("bio", "Bio", func(p *models.Profile, _ bool) *string { return &p.Bio }),
			textField("experienceLevel", "Experience level", func(p *models.Profile, _ bool) *string { return &p.ExperienceLevel }),
			textField("availability", "Availability", func(p *models.Profile, _ bool) *string { return &p.Availability }),
		},
	}
}

func skillsSection() Section {
	return Section{
		ID:        "skills",
		Title:     "Skills",
		EmptyHint: "List your skills to show up in more searches",
		Fields: []Field{
			listField("skills", "Skills", func(p *models.Profile, _ bool) *[]string { return &p.Skills }),
		},
	}
}

func socialSection() Section {
	return Section{
		ID:        "social",
		Title:     "Social media",
		EmptyHint: "Add your social links",
		Fields: []Field{
			socialField("instagram", "Instagram"),
			socialField("tiktok", "TikTok"),
			socialField("youtube", "YouTube"),
			socialField("website", "Website"),
		},
	}
}

// ============================================
// Per-type sections
// ============================================

func measurementsSection() Section {
	return Section{
		ID:        "measurements",
		Title:     "Measurements",
		EmptyHint: "Add your measurements so casting teams can match you",
		Fields: []Field{
			textField("measurements.gender", "Gender", func(p *models.Profile, a bool) *string { return &measurements(p, a).Gender }),
			intField("measurements.age", "Age", func(p *models.Profile, a bool) *int { return &measurements(p, a).Age }),
			intField("measurements.height", "Height (cm)", func(p *models.Profile, a bool) *int { return &measurements(p, a).HeightCM }),
			intField("measurements.bust", "Bust (cm)", func(p *models.Profile, a bool) *int { return &measurements(p, a).BustCM }),
			intField("measurements.waist", "Waist (cm)", func(p *models.Profile, a bool) *int { return &measurements(p, a).WaistCM }),
			intField("measurements.hips", "Hips (cm)", func(p *models.Profile, a bool) *int { return &measurements(p, a).HipsCM }),
			textField("measurements.shoeSize", "Shoe size", func(p *models.Profile, a bool) *string { return &measurements(p, a).ShoeSize }),
			textField("measurements.dressSize", "Dress size", func(p *models.Profile, a bool) *string { return &measurements(p, a).DressSize }),
			textField("measurements.hairColor", "Hair color", func(p *models.Profile, a bool) *string { return &measurements(p, a).HairColor }),
			textField("measurements.eyeColor", "Eye color", func(p *models.Profile, a bool) *string { return &measurements(p, a).EyeColor }),
			textField("measurements.bodyType", "Body type", func(p *models.Profile, a bool) *string { return &measurements(p, a).BodyType }),
		},
	}
}

func equipmentSection() Section {
	return Section{
		ID:        "equipment",
		Title:     "Equipment & specializations",
		EmptyHint: "Tell clients what gear you shoot with and what you specialize in",
		Fields: []Field{
			listField("equipment.cameras", "Cameras", func(p *models.Profile, a bool) *[]string { return &equipment(p, a).Cameras }),
			listField("equipment.lenses", "Lenses", func(p *models.Profile, a bool) *[]string { return &equipment(p, a).Lenses }),
			listField("equipment.specializations", "Specializations", func(p *models.Profile, a bool) *[]string { return &equipment(p, a).Specializations }),
		},
	}
}

func designSection() Section {
	return Section{
		ID:        "design",
		Title:     "Design practice",
		EmptyHint: "Describe the materials and techniques you work with",
		Fields: []Field{
			listField("design.materials", "Materials", func(p *models.Profile, a bool) *[]string { return &design(p, a).Materials }),
			listField("design.techniques", "Techniques", func(p *models.Profile, a bool) *[]string { return &design(p, a).Techniques }),
			textField("design.techPackUrl", "Tech pack URL", func(p *models.Profile, a bool) *string { return &design(p, a).TechPackURL }),
		},
	}
}

func ratesSection() Section {
	return Section{
		ID:        "rates",
		Title:     "Services & rates",
		EmptyHint: "List your services and rates so clients can book you",
		Fields: []Field{
			listField("rates.services", "Services", func(p *models.Profile, a bool) *[]string { return &rates(p, a).Services }),
			floatField("rates.hourly", "Hourly rate", func(p *models.Profile, a bool) *float64 { return &rates(p, a).Hourly }),
			floatField("rates.daily", "Day rate", func(p *models.Profile, a bool) *float64 { return &rates(p, a).Daily }),
			textField("rates.currency", "Currency", func(p *models.Profile, a bool) *string { return &rates(p, a).Currency }),
		},
	}
}

func companySection() Section {
	return Section{
		ID:        "company",
		Title:     "Company",
		EmptyHint: "Add your company details",
		Fields: []Field{
			textField("company.name", "Company name", func(p *models.Profile, a bool) *string { return &company(p, a).CompanyName }),
			textField("company.industry", "Industry", func(p *models.Profile, a bool) *string { return &company(p, a).Industry }),
			intField("company.teamSize", "Team size", func(p *models.Profile, a bool) *int { return &company(p, a).TeamSize }),
			textField("company.website", "Website", func(p *models.Profile, a bool) *string { return &company(p, a).Website }),
			intField("company.founded", "Founded", func(p *models.Profile, a bool) *int { return &company(p, a).FoundedYear }),
		},
	}
}

// ============================================
// Schema registry
// ============================================

func buildSchema(t models.ProfessionalType, extra ...Section) Schema {
	sections := []Section{basicsSection()}
	sections = append(sections, extra...)
	sections = append(sections, skillsSection(), socialSection())
	return Schema{Type: t, Sections: sections}
}

var schemas = map[models.ProfessionalType]Schema{
	models.TypeModel:           buildSchema(models.TypeModel, measurementsSection()),
	models.TypePhotographer:    buildSchema(models.TypePhotographer, equipmentSection(), ratesSection()),
	models.TypeFashionDesigner: buildSchema(models.TypeFashionDesigner, designSection()),
	models.TypeStylist:         buildSchema(models.TypeStylist, ratesSection()),
	models.TypeMakeupArtist:    buildSchema(models.TypeMakeupArtist, ratesSection()),
	models.TypeBrand:           buildSchema(models.TypeBrand, companySection()),
	models.TypeAgency:          buildSchema(models.TypeAgency, companySection()),
}
