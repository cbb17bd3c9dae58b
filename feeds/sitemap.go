package feeds

import (
	"encoding/xml"
	"time"
)

// staticPages are the fixed site routes listed ahead of the articles.
var staticPages = []string{
	"",
	"/noticias",
	"/en-vivo",
	"/sobre-nosotros",
	"/contacto",
}

type urlset struct {
	XMLName xml.Name     `xml:"urlset"`
	NS      string       `xml:"xmlns,attr"`
	URLs    []sitemapURL `xml:"url"`
}

type sitemapURL struct {
	Loc        string `xml:"loc"`
	LastMod    string `xml:"lastmod"`
	ChangeFreq string `xml:"changefreq"`
	Priority   string `xml:"priority"`
}

// BuildSitemap renders the static pages plus one entry per article
// slug. An empty slug list still yields a valid sitemap with just the
// static pages.
func BuildSitemap(slugs []string, baseURL string, now time.Time) ([]byte, error) {
	lastMod := now.UTC().Format(time.RFC3339)

	set := urlset{NS: "http://www.sitemaps.org/schemas/sitemap/0.9"}

	for _, page := range staticPages {
		u := sitemapURL{
			Loc:        baseURL + page,
			LastMod:    lastMod,
			ChangeFreq: "weekly",
			Priority:   "0.8",
		}
		if page == "" {
			u.ChangeFreq = "daily"
			u.Priority = "1.0"
		}
		set.URLs = append(set.URLs, u)
	}

	for _, slug := range slugs {
		set.URLs = append(set.URLs, sitemapURL{
			Loc:        baseURL + "/noticias/" + slug,
			LastMod:    lastMod,
			ChangeFreq: "weekly",
			Priority:   "0.9",
		})
	}

	out, err := xml.MarshalIndent(set, "", "  ")
	if err != nil {
		return nil, err
	}
	return append([]byte(xml.Header), out...), nil
}
