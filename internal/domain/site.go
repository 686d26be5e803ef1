package domain

import (
	"context"
	"path"
	"strings"
)

// Icon is a social platform icon identifier.
type Icon int

const (
	IconNone Icon = iota
	IconDiscord
	IconTwitter
	IconTiktok
	IconYoutube
	IconTwitch
	IconInstagram
)

var iconNames = map[string]Icon{
	"FaDiscord":   IconDiscord,
	"FaTwitter":   IconTwitter,
	"FaTiktok":    IconTiktok,
	"FaYoutube":   IconYoutube,
	"FaTwitch":    IconTwitch,
	"FaInstagram": IconInstagram,
}

// ParseIcon resolves an icon identifier from the site config.
// Unknown identifiers resolve to IconNone, which renders nothing.
func ParseIcon(name string) Icon {
	if icon, ok := iconNames[name]; ok {
		return icon
	}
	return IconNone
}

func (i Icon) String() string {
	for name, icon := range iconNames {
		if icon == i {
			return name
		}
	}
	return ""
}

// Slug is the lowercase platform name used for the icon asset and CSS class.
func (i Icon) Slug() string {
	return strings.ToLower(strings.TrimPrefix(i.String(), "Fa"))
}

// MarshalText keeps the original identifier in JSON output.
func (i Icon) MarshalText() ([]byte, error) {
	return []byte(i.String()), nil
}

// UnmarshalText never fails: unknown identifiers become IconNone.
func (i *Icon) UnmarshalText(text []byte) error {
	*i = ParseIcon(string(text))
	return nil
}

// MediaKind tells the page how to render a media URL.
type MediaKind string

const (
	MediaImage MediaKind = "image"
	MediaVideo MediaKind = "video"
)

// MediaKindOf returns MediaVideo for .mp4 and .gif files, MediaImage otherwise.
func MediaKindOf(url string) MediaKind {
	switch strings.ToLower(strings.TrimPrefix(path.Ext(url), ".")) {
	case "mp4", "gif":
		return MediaVideo
	default:
		return MediaImage
	}
}

type Profile struct {
	Name        string `json:"name" yaml:"name" validate:"required"`
	Role        string `json:"role" yaml:"role"`
	Avatar      string `json:"avatar" yaml:"avatar" validate:"media_url"`
	About       string `json:"about" yaml:"about"`
	Copyright   string `json:"copyright" yaml:"copyright"`
	DonationURL string `json:"donation_url,omitempty" yaml:"donationUrl" validate:"media_url"`
}

type SocialLink struct {
	Name     string `json:"name" yaml:"name" validate:"required"`
	URL      string `json:"url" yaml:"url" validate:"required,url"`
	Icon     Icon   `json:"icon" yaml:"-"`
	IconName string `json:"-" yaml:"icon"`
	Username string `json:"username" yaml:"username"`
}

type Service struct {
	Icon            string   `json:"icon" yaml:"icon"`
	Title           string   `json:"title" yaml:"title" validate:"required"`
	Description     string   `json:"description" yaml:"description"`
	LongDescription string   `json:"long_description" yaml:"longDescription"`
	Images          []string `json:"images" yaml:"images" validate:"dive,media_url"`
}

type Client struct {
	Name string `json:"name" yaml:"name" validate:"required"`
	Logo string `json:"logo" yaml:"logo" validate:"media_url"`
	Link string `json:"link" yaml:"link" validate:"media_url"`
}

type Project struct {
	Name            string   `json:"name" yaml:"name" validate:"required"`
	Description     string   `json:"description" yaml:"description"`
	Image           string   `json:"image" yaml:"image" validate:"media_url"`
	LongDescription string   `json:"long_description" yaml:"longDescription"`
	Gallery         []string `json:"gallery" yaml:"gallery" validate:"dive,media_url"`
}

// SiteContent is the read-only content shown on the portfolio page.
type SiteContent struct {
	Profile      Profile      `json:"profile" yaml:"profile"`
	SocialLinks  []SocialLink `json:"social_links" yaml:"socialLinks" validate:"dive"`
	Services     []Service    `json:"services" yaml:"services" validate:"dive"`
	Clients      []Client     `json:"clients" yaml:"clients" validate:"dive"`
	PastProjects []Project    `json:"past_projects" yaml:"pastProjects" validate:"dive"`
}

// SiteUsecase serves the loaded site content.
type SiteUsecase interface {
	GetContent(ctx context.Context) *SiteContent
}
