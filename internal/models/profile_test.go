package models

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCloneIsDeep(t *testing.T) {
	original := &Profile{
		ID:       "p1",
		FullName: "Aliya",
		Photos:   []MediaRef{{ID: "m1", Path: "/files/a.jpg"}},
		Skills:   []string{"runway"},
		SocialMedia: map[string]string{
			"instagram": "@aliya",
		},
		Measurements: &Measurements{HeightCM: 178},
		Equipment:    &Equipment{Cameras: []string{"R5"}},
	}

	clone := original.Clone()
	clone.FullName = "Changed"
	clone.Photos[0].Path = "/files/b.jpg"
	clone.Photos = append(clone.Photos, MediaRef{ID: "m2"})
	clone.Skills[0] = "editorial"
	clone.SocialMedia["instagram"] = "@other"
	clone.Measurements.HeightCM = 150
	clone.Equipment.Cameras[0] = "A7"

	assert.Equal(t, "Aliya", original.FullName)
	assert.Equal(t, "/files/a.jpg", original.Photos[0].Path)
	assert.Len(t, original.Photos, 1)
	assert.Equal(t, "runway", original.Skills[0])
	assert.Equal(t, "@aliya", original.SocialMedia["instagram"])
	assert.Equal(t, 178, original.Measurements.HeightCM)
	assert.Equal(t, "R5", original.Equipment.Cameras[0])
}

func TestCloneNil(t *testing.T) {
	var p *Profile
	assert.Nil(t, p.Clone())

	// Nil bags stay nil rather than becoming empty values.
	clone := (&Profile{ID: "p2"}).Clone()
	assert.Nil(t, clone.Measurements)
	assert.Nil(t, clone.SocialMedia)
}

func TestParseList(t *testing.T) {
	assert.Equal(t, []string{"Runway", "Editorial", "Print"}, ParseList("Runway,  Editorial ,,Print"))
	assert.Equal(t, []string{"solo"}, ParseList("  solo  "))
	assert.Empty(t, ParseList(""))
	assert.Empty(t, ParseList(" , ,, "))

	// Round-trip through JoinList is stable.
	first := ParseList("runway, editorial ,  commercial")
	assert.Equal(t, first, ParseList(JoinList(first)))
}

func TestOwnsProfileComparesEveryIDPair(t *testing.T) {
	profile := &Profile{ID: "prof-1", UserID: "user-1"}

	cases := []struct {
		name string
		user AccountUser
		want bool
	}{
		{"account id matches user id", AccountUser{ID: "user-1"}, true},
		{"account id matches profile id", AccountUser{ID: "prof-1"}, true},
		{"profile id matches profile id", AccountUser{ProfileID: "prof-1"}, true},
		{"profile id matches user id", AccountUser{ProfileID: "user-1"}, true},
		{"no overlap", AccountUser{ID: "other", ProfileID: "other-prof"}, false},
		{"empty ids never match", AccountUser{}, false},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, tc.user.OwnsProfile(profile))
		})
	}

	// Empty identifiers on the profile must not pair with empty account ids.
	empty := &Profile{}
	u := AccountUser{}
	assert.False(t, u.OwnsProfile(empty))
	assert.False(t, (*AccountUser)(nil).OwnsProfile(profile))
}

func TestConnectionStatusGuards(t *testing.T) {
	assert.True(t, ConnectionNone.CanRequest())
	assert.True(t, ConnectionStatus("").CanRequest())
	assert.False(t, ConnectionPending.CanRequest())
	assert.False(t, ConnectionAccepted.CanRequest())

	assert.Equal(t, ConnectionNone, ParseConnectionStatus("garbage"))
	assert.Equal(t, ConnectionPending, ParseConnectionStatus("pending"))
}

func TestParseProfessionalType(t *testing.T) {
	got, ok := ParseProfessionalType("makeup-artist")
	assert.True(t, ok)
	assert.Equal(t, TypeMakeupArtist, got)

	_, ok = ParseProfessionalType("influencer")
	assert.False(t, ok)
	_, ok = ParseProfessionalType("")
	assert.False(t, ok)

	assert.True(t, TypeBrand.IsCompany())
	assert.True(t, TypeAgency.IsCompany())
	assert.False(t, TypeModel.IsCompany())
}
