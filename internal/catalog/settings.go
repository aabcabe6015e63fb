package catalog

import "strings"

// Setting keys the front ends read.
const (
	KeySiteName        = "site_name"
	KeySiteTagline     = "site_tagline"
	KeySiteDescription = "site_description"
	KeyStatsUsers      = "stats_users"
	KeyStatsBooks      = "stats_books"
)

// Fallback text used while settings are missing or blank.
const (
	DefaultSiteName          = "BookShelf Hub"
	DefaultSiteTagline       = "Your Trusted Digital Library"
	DefaultHeroDescription   = "Discover thousands of books with two convenient options: purchase through Amazon or get free downloads through simple offers."
	DefaultFooterDescription = "Your trusted source for digital books with flexible access options."
	DefaultStatsUsers        = "50,000+"
	DefaultStatsBooks        = "10,000+"
)

// Settings is the flattened site configuration.
type Settings map[string]string

// Value returns the setting for key, or fallback when it is unset or blank.
func (s Settings) Value(key, fallback string) string {
	if v := strings.TrimSpace(s[key]); v != "" {
		return v
	}
	return fallback
}

func (s Settings) SiteName() string { return s.Value(KeySiteName, DefaultSiteName) }

func (s Settings) Tagline() string { return s.Value(KeySiteTagline, DefaultSiteTagline) }

// HeroDescription is the long pitch under the tagline.
func (s Settings) HeroDescription() string {
	return s.Value(KeySiteDescription, DefaultHeroDescription)
}

// FooterDescription shares the site_description key but has a shorter fallback.
func (s Settings) FooterDescription() string {
	return s.Value(KeySiteDescription, DefaultFooterDescription)
}

func (s Settings) StatsUsers() string { return s.Value(KeyStatsUsers, DefaultStatsUsers) }

func (s Settings) StatsBooks() string { return s.Value(KeyStatsBooks, DefaultStatsBooks) }

// Clone returns an independent copy.
func (s Settings) Clone() Settings {
	if s == nil {
		return nil
	}
	dup := make(Settings, len(s))
	for k, v := range s {
		dup[k] = v
	}
	return dup
}
