package wordpress_test

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"

	"tvgt-news/wordpress"
)

func TestCleanExcerptStripsMarkup(t *testing.T) {
	got := wordpress.CleanExcerpt("<p>Hola <strong>mundo</strong> &amp; amigos</p>\n", 150)

	assert.Equal(t, "Hola mundo  amigos", got)
	assert.NotContains(t, got, "<")
	assert.NotContains(t, got, ">")
	assert.NotContains(t, got, "&amp;")
}

func TestCleanExcerptTruncates(t *testing.T) {
	long := strings.Repeat("palabra ", 50)

	got := wordpress.CleanExcerpt(long, 100)

	assert.True(t, strings.HasSuffix(got, "..."))
	assert.LessOrEqual(t, len([]rune(got)), 103)
}

func TestCleanExcerptNoEllipsisWhenShort(t *testing.T) {
	got := wordpress.CleanExcerpt("<p>Hola</p>", 150)

	assert.Equal(t, "Hola", got)
}

func TestCleanExcerptLengthBound(t *testing.T) {
	inputs := []string{
		"",
		"<p>Hola</p>",
		strings.Repeat("<b>x</b>y", 200),
		"&aacute;guila &ntilde;and&uacute; " + strings.Repeat("z", 300),
	}
	for _, in := range inputs {
		for _, max := range []int{0, 1, 10, 150} {
			got := wordpress.CleanExcerpt(in, max)
			assert.LessOrEqual(t, len([]rune(got)), max+3, "input=%q max=%d", in, max)
		}
	}
}

func TestCleanExcerptIdempotent(t *testing.T) {
	inputs := []string{
		"<p>Una noticia breve sobre la comunidad.</p>",
		"Texto plano sin etiquetas",
		"<div><p>Hola &amp; adi&oacute;s</p></div>",
	}
	for _, in := range inputs {
		first := wordpress.CleanExcerpt(in, 150)
		second := wordpress.CleanExcerpt(first, 150)
		assert.Equal(t, first, second, "input=%q", in)
	}
}

func TestFormatDate(t *testing.T) {
	cases := []struct {
		in   string
		want string
	}{
		{"2024-01-02T15:04:05", "2 de enero de 2024"},
		{"2024-09-15T08:30:00Z", "15 de septiembre de 2024"},
		{"2023-12-25", "25 de diciembre de 2023"},
		{"2024-07-04T12:00:00-05:00", "4 de julio de 2024"},
	}
	for _, c := range cases {
		assert.Equal(t, c.want, wordpress.FormatDate(c.in))
	}
}

func TestFormatDateUnparseable(t *testing.T) {
	assert.Equal(t, "no-es-una-fecha", wordpress.FormatDate("no-es-una-fecha"))
}

func TestFirstImageURL(t *testing.T) {
	fragment := `<p>Texto</p><figure><img src="https://cdn.example.com/a.jpg" alt=""/></figure><img src="https://cdn.example.com/b.jpg"/>`

	assert.Equal(t, "https://cdn.example.com/a.jpg", wordpress.FirstImageURL(fragment))
	assert.Equal(t, "", wordpress.FirstImageURL("<p>sin imagen</p>"))
}
