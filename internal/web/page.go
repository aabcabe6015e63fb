package web

import (
	"net/http"
	"net/url"
	"strconv"

	"github.com/dustin/go-humanize"
	"github.com/gin-gonic/gin"

	"github.com/five82/shelf/internal/catalog"
	"github.com/five82/shelf/internal/metrics"
	"github.com/five82/shelf/internal/site"
	"github.com/five82/shelf/internal/state"
)

type genreChip struct {
	Name     string
	Href     string
	Selected bool
}

type bookCard struct {
	Title       string
	Author      string
	Genre       string
	Rating      string
	Reviews     string
	Description string
	Cover       string
	DownloadURL string
	PurchaseURL string
}

type pageData struct {
	SiteName          string
	Tagline           string
	HeroDescription   string
	FooterDescription string
	Nav               []site.Link
	QuickLinks        []site.Link
	LegalLinks        []site.Link
	Stats             []site.Stat
	Options           []site.Option
	FAQ               []site.QA
	TrustBadges       []string
	Copyright         string

	CTAFreeBooks    string
	CTABrowse       string
	HowItWorksIntro string
	Disclosure      string
	BooksHeading    string
	BooksSubheading string
	SearchHint      string
	FAQIntro        string
	DownloadLabel   string
	PurchaseLabel   string
	BrokenCover     string

	Query   string
	Genre   string
	Genres  []genreChip
	Phase   string
	Message string
	Books   []bookCard
}

// index loads the catalog for this request and renders the full page.
// Each request owns its store, so concurrent page loads share nothing.
func (s *Server) index(c *gin.Context) {
	query := catalog.Query{Search: c.Query("q"), Genre: c.Query("genre")}
	if !catalog.KnownGenre(query.Genre) {
		query.Genre = catalog.AllGenres
	}

	store := &state.Store{}
	res := state.Load(c.Request.Context(), s.catalog, store)
	metrics.RecordFetch(res.Errors)

	snap := store.Snapshot()
	visible := catalog.Filter(snap.Books, query)
	phase := snap.Phase(visible)

	data := newPageData(snap.Settings)
	data.Query = query.Search
	data.Genre = query.SelectedGenre()
	data.Genres = genreChips(query)
	data.Phase = phase.String()
	if phase != state.PhasePopulated {
		data.Message = snap.PhaseMessage(phase)
	} else {
		data.Books = s.bookCards(visible)
	}

	c.HTML(http.StatusOK, "index.html.tmpl", data)
}

func newPageData(settings catalog.Settings) pageData {
	return pageData{
		SiteName:          settings.SiteName(),
		Tagline:           settings.Tagline(),
		HeroDescription:   settings.HeroDescription(),
		FooterDescription: settings.FooterDescription(),
		Nav:               site.Nav,
		QuickLinks:        site.QuickLinks,
		LegalLinks:        site.LegalLinks,
		Stats:             site.Stats(settings),
		Options:           site.Options,
		FAQ:               site.FAQ,
		TrustBadges:       site.TrustBadges(settings),
		Copyright:         site.Copyright(settings),

		CTAFreeBooks:    site.CTAFreeBooks,
		CTABrowse:       site.CTABrowse,
		HowItWorksIntro: site.HowItWorksIntro,
		Disclosure:      site.Disclosure,
		BooksHeading:    site.BooksHeading,
		BooksSubheading: site.BooksSubheading,
		SearchHint:      site.SearchHint,
		FAQIntro:        site.FAQIntro,
		DownloadLabel:   site.DownloadLabel,
		PurchaseLabel:   site.PurchaseLabel,
		BrokenCover:     catalog.BrokenCover,
	}
}

func genreChips(q catalog.Query) []genreChip {
	selected := q.SelectedGenre()
	chips := make([]genreChip, 0, len(catalog.Genres))
	for _, g := range catalog.Genres {
		v := url.Values{}
		if q.Search != "" {
			v.Set("q", q.Search)
		}
		if g != catalog.AllGenres {
			v.Set("genre", g)
		}
		href := "/"
		if enc := v.Encode(); enc != "" {
			href += "?" + enc
		}
		chips = append(chips, genreChip{Name: g, Href: href + "#books", Selected: g == selected})
	}
	return chips
}

func (s *Server) bookCards(books []catalog.Book) []bookCard {
	cards := make([]bookCard, 0, len(books))
	for _, b := range books {
		card := bookCard{
			Title:       b.Title,
			Author:      b.Author,
			Genre:       b.Genre,
			Rating:      strconv.FormatFloat(b.Rating, 'f', -1, 64),
			Reviews:     humanize.Comma(int64(b.Reviews)),
			Description: b.PlainDescription(),
			Cover:       s.catalog.CoverURL(b),
		}
		if b.HasDownload() {
			card.DownloadURL = b.ContentLockerLink
		}
		if b.HasPurchase() {
			card.PurchaseURL = b.AmazonLink
		}
		cards = append(cards, card)
	}
	return cards
}
