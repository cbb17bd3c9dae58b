package feeds

import (
	"encoding/xml"
	"net/http"
	"time"

	"tvgt-news/wordpress"
)

// Site carries the feed-level metadata shared by the RSS and sitemap
// builders.
type Site struct {
	BaseURL     string
	Name        string
	Description string
	Language    string
	TTLMinutes  int
}

type rssDoc struct {
	XMLName xml.Name   `xml:"rss"`
	Version string     `xml:"version,attr"`
	AtomNS  string     `xml:"xmlns:atom,attr"`
	Channel rssChannel `xml:"channel"`
}

type rssChannel struct {
	Title         string    `xml:"title"`
	Description   string    `xml:"description"`
	Link          string    `xml:"link"`
	AtomLink      atomLink  `xml:"atom:link"`
	Language      string    `xml:"language"`
	LastBuildDate string    `xml:"lastBuildDate"`
	PubDate       string    `xml:"pubDate"`
	TTL           int       `xml:"ttl"`
	Image         *rssImage `xml:"image"`
	Items         []rssItem `xml:"item"`
}

type atomLink struct {
	Href string `xml:"href,attr"`
	Rel  string `xml:"rel,attr"`
	Type string `xml:"type,attr"`
}

type rssImage struct {
	URL    string `xml:"url"`
	Title  string `xml:"title"`
	Link   string `xml:"link"`
	Width  int    `xml:"width"`
	Height int    `xml:"height"`
}

type rssItem struct {
	Title       cdata         `xml:"title"`
	Description cdata         `xml:"description"`
	Link        string        `xml:"link"`
	GUID        rssGUID       `xml:"guid"`
	PubDate     string        `xml:"pubDate"`
	Author      string        `xml:"author"`
	Category    string        `xml:"category"`
	Enclosure   *rssEnclosure `xml:"enclosure"`
}

type cdata struct {
	Text string `xml:",cdata"`
}

type rssGUID struct {
	IsPermaLink bool   `xml:"isPermaLink,attr"`
	Value       string `xml:",chardata"`
}

type rssEnclosure struct {
	URL  string `xml:"url,attr"`
	Type string `xml:"type,attr"`
}

// BuildRSS renders the latest posts as an RSS 2.0 document. The item
// link and guid both point at the article page; posts without a
// featured image get no enclosure.
func BuildRSS(posts []wordpress.Post, site Site, now time.Time) ([]byte, error) {
	buildDate := now.UTC().Format(http.TimeFormat)

	channel := rssChannel{
		Title:       site.Name + " - Noticias para la Comunidad Hispana",
		Description: site.Description,
		Link:        site.BaseURL,
		AtomLink: atomLink{
			Href: site.BaseURL + "/rss.xml",
			Rel:  "self",
			Type: "application/rss+xml",
		},
		Language:      site.Language,
		LastBuildDate: buildDate,
		PubDate:       buildDate,
		TTL:           site.TTLMinutes,
		Image: &rssImage{
			URL:    site.BaseURL + "/og-image.jpg",
			Title:  site.Name,
			Link:   site.BaseURL,
			Width:  144,
			Height: 144,
		},
	}

	for _, post := range posts {
		link := site.BaseURL + "/noticias/" + post.Slug

		pubDate := buildDate
		if t, err := wordpress.ParseDate(post.Date); err == nil {
			pubDate = t.UTC().Format(http.TimeFormat)
		}

		item := rssItem{
			Title:       cdata{Text: post.Title},
			Description: cdata{Text: wordpress.CleanExcerpt(post.Excerpt, 200)},
			Link:        link,
			GUID:        rssGUID{IsPermaLink: true, Value: link},
			PubDate:     pubDate,
			Author:      post.Author.Node.Name,
			Category:    post.PrimaryCategory("Noticias"),
		}
		if post.FeaturedImage != nil && post.FeaturedImage.Node.SourceURL != "" {
			item.Enclosure = &rssEnclosure{
				URL:  post.FeaturedImage.Node.SourceURL,
				Type: "image/jpeg",
			}
		}
		channel.Items = append(channel.Items, item)
	}

	doc := rssDoc{
		Version: "2.0",
		AtomNS:  "http://www.w3.org/2005/Atom",
		Channel: channel,
	}

	out, err := xml.MarshalIndent(doc, "", "  ")
	if err != nil {
		return nil, err
	}
	return append([]byte(xml.Header), out...), nil
}
