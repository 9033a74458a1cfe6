package controllers

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"zanara/internal/models"
)

func sectionIDs(s Schema) []string {
	ids := make([]string, 0, len(s.Sections))
	for _, sec := range s.Sections {
		ids = append(ids, sec.ID)
	}
	return ids
}

func TestSchemaPerType(t *testing.T) {
	cases := []struct {
		profType models.ProfessionalType
		want     string
		absent   string
	}{
		{models.TypeModel, "measurements", "equipment"},
		{models.TypePhotographer, "equipment", "measurements"},
		{models.TypeFashionDesigner, "design", "rates"},
		{models.TypeStylist, "rates", "company"},
		{models.TypeMakeupArtist, "rates", "measurements"},
		{models.TypeBrand, "company", "measurements"},
		{models.TypeAgency, "company", "rates"},
	}
	for _, tc := range cases {
		t.Run(string(tc.profType), func(t *testing.T) {
			s := SchemaForType(string(tc.profType))
			assert.Equal(t, tc.profType, s.Type)
			assert.Contains(t, sectionIDs(s), tc.want)
			assert.NotContains(t, sectionIDs(s), tc.absent)

			// Shared sections frame every type's view.
			ids := sectionIDs(s)
			assert.Equal(t, "basics", ids[0])
			assert.Contains(t, ids, "skills")
			assert.Contains(t, ids, "social")
		})
	}
}

func TestSchemaUnknownTypeFallsBackToModelView(t *testing.T) {
	s := SchemaForType("influencer")
	assert.Equal(t, models.TypeModel, s.Type)
	assert.Contains(t, sectionIDs(s), "measurements")

	s = SchemaForType("")
	assert.Equal(t, models.TypeModel, s.Type)

	assert.Equal(t, models.TypeModel, SchemaForProfile(nil).Type)
}

func TestFieldAccessorsAllocateBagsOnWrite(t *testing.T) {
	s := SchemaForType("photographer")
	p := &models.Profile{ProfessionalType: models.TypePhotographer}

	f, ok := s.Field("equipment.cameras")
	assert.True(t, ok)
	assert.NoError(t, f.Set(p, "Canon R5, Sony A7"))
	if assert.NotNil(t, p.Equipment) {
		assert.Equal(t, []string{"Canon R5", "Sony A7"}, p.Equipment.Cameras)
	}
	assert.Equal(t, "Canon R5, Sony A7", f.Get(p))

	// Number fields reject garbage and clear on empty input.
	rate, ok := s.Field("rates.hourly")
	assert.True(t, ok)
	assert.Error(t, rate.Set(p, "eighty"))
	assert.NoError(t, rate.Set(p, "80.5"))
	assert.Equal(t, "80.5", rate.Get(p))
	assert.NoError(t, rate.Set(p, ""))
	assert.Equal(t, "", rate.Get(p))
}

func TestFieldReadsLeaveMissingBagsNil(t *testing.T) {
	s := SchemaForType("photographer")
	p := &models.Profile{ProfessionalType: models.TypePhotographer, FullName: "Pat Photo"}

	// Reading every field, including the section empty check, must not
	// attach empty bags to the record being rendered.
	for _, sec := range s.Sections {
		sec.Empty(p)
		for _, f := range sec.Fields {
			f.Get(p)
		}
	}
	assert.Nil(t, p.Equipment)
	assert.Nil(t, p.Rates)

	m := SchemaForType("model")
	mp := &models.Profile{ProfessionalType: models.TypeModel}
	if f, ok := m.Field("measurements.age"); assert.True(t, ok) {
		assert.Equal(t, "", f.Get(mp))
		assert.Nil(t, mp.Measurements)

		assert.NoError(t, f.Set(mp, "24"))
		if assert.NotNil(t, mp.Measurements) {
			assert.Equal(t, 24, mp.Measurements.Age)
		}
	}
}

func TestSocialFieldsEditSingleKeys(t *testing.T) {
	s := SchemaForType("model")
	p := &models.Profile{SocialMedia: map[string]string{"tiktok": "@keep"}}

	f, ok := s.Field("socialMedia.instagram")
	assert.True(t, ok)
	assert.NoError(t, f.Set(p, "@aliya"))
	assert.Equal(t, "@aliya", p.SocialMedia["instagram"])
	assert.Equal(t, "@keep", p.SocialMedia["tiktok"], "sibling keys untouched")

	// Clearing removes the key instead of storing an empty string.
	assert.NoError(t, f.Set(p, ""))
	_, exists := p.SocialMedia["instagram"]
	assert.False(t, exists)
}
