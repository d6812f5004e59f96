package auth

import "strings"

// Profile represents a normalized external authentication profile
// returned by an OAuth provider. It contains facts only, no decisions.
type Profile struct {
	Provider    string  // e.g. "google"
	Subject     string  // provider-scoped unique user identifier (sub)
	Email       string  // verified email returned by provider, lowercased
	DisplayName string  // full display name, may be assembled from parts
	AvatarURL   *string // profile picture, nil when the provider has none
}

// NormalizeProfile lowercases the email and assembles a display name from
// given/family parts when the provider returned no composite name.
func NormalizeProfile(p Profile, givenName, familyName string) Profile {
	p.Email = strings.ToLower(strings.TrimSpace(p.Email))

	if p.DisplayName == "" {
		p.DisplayName = strings.TrimSpace(givenName + " " + familyName)
	}

	return p
}
