package siteconfig_test

import (
	"os"
	"path/filepath"
	"testing"

	"portfolio-site/internal/domain"
	"portfolio-site/pkg/siteconfig"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefault(t *testing.T) {
	content, err := siteconfig.Default()
	require.NoError(t, err)

	assert.Equal(t, "Xivn", content.Profile.Name)
	require.NotEmpty(t, content.SocialLinks)
	for _, link := range content.SocialLinks {
		assert.NotEqual(t, domain.IconNone, link.Icon, link.Name)
	}
	assert.NotEmpty(t, content.Services)
	assert.NotEmpty(t, content.PastProjects)
}

func TestParse(t *testing.T) {
	t.Run("Should resolve unknown icons to none", func(t *testing.T) {
		content, err := siteconfig.Parse([]byte(`
profile:
  name: Xivn
socialLinks:
  - name: Mastodon
    url: https://mastodon.social/@xivn
    icon: FaMastodon
  - name: Twitch
    url: https://twitch.tv/xivn
    icon: FaTwitch
`))
		require.NoError(t, err)
		require.Len(t, content.SocialLinks, 2)
		assert.Equal(t, domain.IconNone, content.SocialLinks[0].Icon)
		assert.Equal(t, domain.IconTwitch, content.SocialLinks[1].Icon)
	})

	t.Run("Should accept site-relative media paths", func(t *testing.T) {
		_, err := siteconfig.Parse([]byte(`
profile:
  name: Xivn
  avatar: /static/img/head.png
`))
		assert.NoError(t, err)
	})

	t.Run("Should report missing required fields", func(t *testing.T) {
		_, err := siteconfig.Parse([]byte(`
profile:
  name: Xivn
services:
  - description: no title
`))
		require.Error(t, err)
		assert.Contains(t, err.Error(), "Title (Services[0].Title): is required")
	})

	t.Run("Should report malformed URLs", func(t *testing.T) {
		_, err := siteconfig.Parse([]byte(`
profile:
  name: Xivn
pastProjects:
  - name: Armory
    gallery: ["ftp://nope"]
`))
		require.Error(t, err)
		assert.Contains(t, err.Error(), "invalid URL")
	})

	t.Run("Should reject invalid YAML", func(t *testing.T) {
		_, err := siteconfig.Parse([]byte("profile: ["))
		assert.Error(t, err)
	})
}

func TestLoad(t *testing.T) {
	t.Run("Should fall back to the embedded config", func(t *testing.T) {
		content, err := siteconfig.Load(filepath.Join(t.TempDir(), "missing.yml"))
		require.NoError(t, err)
		assert.Equal(t, "Xivn", content.Profile.Name)
	})

	t.Run("Should read the given file", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "config.yml")
		require.NoError(t, os.WriteFile(path, []byte("profile:\n  name: Someone\n"), 0o600))

		content, err := siteconfig.Load(path)
		require.NoError(t, err)
		assert.Equal(t, "Someone", content.Profile.Name)
	})
}
