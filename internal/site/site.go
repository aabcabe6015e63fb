// Package site holds the fixed marketing copy shown around the catalog by
// both the terminal UI and the web front end. Values that come from the
// settings endpoint are resolved through catalog.Settings; everything here
// is static.
package site

import (
	"fmt"

	"github.com/five82/shelf/internal/catalog"
)

// Link is a labelled in-page anchor.
type Link struct {
	Label  string
	Anchor string
}

// Nav is the header navigation, in display order.
var Nav = []Link{
	{Label: "Home", Anchor: "home"},
	{Label: "Browse Books", Anchor: "books"},
	{Label: "How It Works", Anchor: "how-it-works"},
	{Label: "About", Anchor: "about"},
	{Label: "FAQ", Anchor: "faq"},
	{Label: "Contact", Anchor: "contact"},
}

// QuickLinks and LegalLinks are the footer link columns.
var (
	QuickLinks = []Link{
		{Label: "Home", Anchor: "home"},
		{Label: "Browse Books", Anchor: "books"},
		{Label: "How It Works", Anchor: "how-it-works"},
		{Label: "FAQ", Anchor: "faq"},
	}
	LegalLinks = []Link{
		{Label: "Privacy Policy", Anchor: "privacy"},
		{Label: "Terms of Service", Anchor: "terms"},
		{Label: "Affiliate Disclosure", Anchor: "affiliate"},
		{Label: "Contact Us", Anchor: "contact"},
	}
)

// Hero call-to-action labels. Both jump to the book collection.
const (
	CTAFreeBooks = "Get Free Books"
	CTABrowse    = "Browse Collection"
)

const (
	BooksHeading    = "Featured Books"
	BooksSubheading = "Discover our curated collection of books across various genres"
	SearchHint      = "Search books or authors..."
	HowItWorksIntro = "Choose your preferred way to access books - purchase through Amazon or get them free through simple offers."
	FAQIntro        = "Get answers to common questions about our service"
	Disclosure      = "As an Amazon Associate, we earn from qualifying purchases. Free downloads are provided through our content locker system with partner offers."
	AffiliateNotice = "As an Amazon Associate, we earn from qualifying purchases."
	DownloadLabel   = "Get Free Download"
	PurchaseLabel   = "Buy on Amazon"
)

const copyrightYear = 2024

// Stat is one trust indicator under the hero.
type Stat struct {
	Value string
	Label string
}

// Stats returns the trust indicators with settings applied.
func Stats(s catalog.Settings) []Stat {
	return []Stat{
		{Value: s.StatsUsers(), Label: "Happy Readers"},
		{Value: s.StatsBooks(), Label: "Books Available"},
		{Value: "100%", Label: "Secure & Trusted"},
	}
}

// Step is a single numbered instruction in an access option.
type Step struct {
	Title string
	Body  string
}

// Option is one way of getting a book.
type Option struct {
	Title    string
	Subtitle string
	Steps    []Step
}

// Options lists the two access paths: purchase, then free download.
var Options = []Option{
	{
		Title:    "Option 1: Amazon Purchase",
		Subtitle: "Quick and direct access through Amazon",
		Steps: []Step{
			{Title: "Browse our collection", Body: "Find books you're interested in"},
			{Title: `Click "Buy on Amazon"`, Body: "Redirected to Amazon for secure purchase"},
			{Title: "Instant access", Body: "Download immediately after purchase"},
		},
	},
	{
		Title:    "Option 2: Free Download",
		Subtitle: "Get books free by completing simple offers",
		Steps: []Step{
			{Title: "Choose a book", Body: "Select from our free download collection"},
			{Title: "Complete a simple offer", Body: "Quick surveys or sign-ups (takes 2-3 minutes)"},
			{Title: "Download your book", Body: "Get instant access to your free book"},
		},
	},
}

// QA is a frequently asked question.
type QA struct {
	Question string
	Answer   string
}

// FAQ entries, in display order.
var FAQ = []QA{
	{
		Question: "Is this service legitimate and safe?",
		Answer:   "Yes, absolutely. We are a legitimate service that partners with Amazon's affiliate program and trusted offer providers. All our free downloads are provided through verified content locker systems with legitimate partner offers.",
	},
	{
		Question: "What kind of offers do I need to complete for free downloads?",
		Answer:   "Our offers are simple and quick, typically including surveys, newsletter sign-ups, or trial registrations. Most offers take 2-3 minutes to complete and are from reputable companies.",
	},
	{
		Question: "How do Amazon purchases work?",
		Answer:   `When you click "Buy on Amazon," you'll be redirected to Amazon's website where you can purchase the book securely. As an Amazon Associate, we earn a small commission from qualifying purchases at no extra cost to you.`,
	},
	{
		Question: "Are the free books the same quality as paid ones?",
		Answer:   "Yes, the books available for free download are the same high-quality titles available for purchase. The only difference is the access method - either through Amazon purchase or completing partner offers.",
	},
	{
		Question: "Do you store my personal information?",
		Answer:   "We respect your privacy and only collect minimal information necessary to provide our service. Please review our privacy policy for detailed information about data handling and protection.",
	},
}

// TrustBadges returns the footer badges; the last one carries the user count.
func TrustBadges(s catalog.Settings) []string {
	return []string{"SSL Secured", "GDPR Compliant", s.StatsUsers() + " Users"}
}

// Copyright is the footer line, including the affiliate notice.
func Copyright(s catalog.Settings) string {
	return fmt.Sprintf("© %d %s. All rights reserved. | %s", copyrightYear, s.SiteName(), AffiliateNotice)
}
