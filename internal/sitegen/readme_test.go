package sitegen

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestGenerateReadme(t *testing.T) {
	u := minimalUser()
	u.Email = "ada@example.com"
	u.Linkedin = strPtr("linkedin.com/in/ada")

	readme := GenerateReadme(u, "site")

	assert.Contains(t, readme, "# Ada Lovelace - Portfolio Website")
	assert.Contains(t, readme, "https://adal.github.io/site")
	assert.Contains(t, readme, "mailto:ada@example.com")
	assert.Contains(t, readme, "https://linkedin.com/in/ada")
	assert.Contains(t, readme, "https://github.com/adal")
}

func TestGenerateReadme_MinimalProfile(t *testing.T) {
	readme := GenerateReadme(minimalUser(), "site")

	assert.NotContains(t, readme, "- Email:")
	assert.NotContains(t, readme, "- LinkedIn:")
	assert.NotContains(t, readme, "- CV/Resume:")
	assert.Contains(t, readme, "- GitHub: [Profile](https://github.com/adal)")
}
