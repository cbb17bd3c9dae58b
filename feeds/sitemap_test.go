package feeds_test

import (
	"encoding/xml"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"tvgt-news/feeds"
)

type sitemapDoc struct {
	URLs []struct {
		Loc        string `xml:"loc"`
		ChangeFreq string `xml:"changefreq"`
		Priority   string `xml:"priority"`
	} `xml:"url"`
}

func TestBuildSitemap(t *testing.T) {
	out, err := feeds.BuildSitemap([]string{"uno", "dos"}, "https://tvgtusa.com", time.Now())
	require.NoError(t, err)

	var doc sitemapDoc
	require.NoError(t, xml.Unmarshal(out, &doc))

	// 5 static pages + 2 articles
	require.Len(t, doc.URLs, 7)
	assert.Equal(t, "https://tvgtusa.com", doc.URLs[0].Loc)
	assert.Equal(t, "daily", doc.URLs[0].ChangeFreq)
	assert.Equal(t, "1.0", doc.URLs[0].Priority)
	assert.Equal(t, "https://tvgtusa.com/noticias/uno", doc.URLs[5].Loc)
	assert.Equal(t, "0.9", doc.URLs[5].Priority)
}

func TestBuildSitemapWithoutSlugs(t *testing.T) {
	out, err := feeds.BuildSitemap(nil, "https://tvgtusa.com", time.Now())
	require.NoError(t, err)

	var doc sitemapDoc
	require.NoError(t, xml.Unmarshal(out, &doc))
	assert.Len(t, doc.URLs, 5)
}
