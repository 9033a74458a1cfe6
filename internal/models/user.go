package models

import "time"

// AccountUser is the authenticated account record returned by the auth
// endpoints. Identity fields vary across API call sites (some return the
// account id, some the profile id), so ownership checks must compare every
// available pair; see Profile ownership logic in the controllers package.
type AccountUser struct {
	ID               string           `json:"id"`
	ProfileID        string           `json:"profile_id,omitempty"`
	Email            string           `json:"email"`
	FullName         string           `json:"full_name,omitempty"`
	UserType         string           `json:"user_type,omitempty"`
	ProfessionalType ProfessionalType `json:"professional_type,omitempty"`
	CreatedAt        time.Time        `json:"created_at"`
}

// OwnsProfile compares the account against a profile by every identifier
// pair, since call sites disagree on which ids they populate.
func (u *AccountUser) OwnsProfile(p *Profile) bool {
	if u == nil || p == nil {
		return false
	}
	if u.ID != "" && (u.ID == p.UserID || u.ID == p.ID) {
		return true
	}
	if u.ProfileID != "" && (u.ProfileID == p.ID || u.ProfileID == p.UserID) {
		return true
	}
	return false
}
