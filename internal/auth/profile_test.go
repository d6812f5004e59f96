package auth

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNormalizeProfile(t *testing.T) {
	t.Run("lowercases email", func(t *testing.T) {
		p := NormalizeProfile(Profile{Email: " Ada@X.COM ", DisplayName: "Ada"}, "", "")
		assert.Equal(t, "ada@x.com", p.Email)
	})

	t.Run("keeps provider display name when present", func(t *testing.T) {
		p := NormalizeProfile(Profile{DisplayName: "Ada Lovelace"}, "Other", "Name")
		assert.Equal(t, "Ada Lovelace", p.DisplayName)
	})

	t.Run("assembles name from parts", func(t *testing.T) {
		p := NormalizeProfile(Profile{}, "Ada", "Lovelace")
		assert.Equal(t, "Ada Lovelace", p.DisplayName)
	})

	t.Run("single part has no trailing space", func(t *testing.T) {
		p := NormalizeProfile(Profile{}, "Ada", "")
		assert.Equal(t, "Ada", p.DisplayName)
	})
}
