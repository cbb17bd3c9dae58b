package notifier

import (
	"strings"

	"tvgt-news/wordpress"
)

const hashtags = "#TVGTUSA #Noticias #ComunidadHispana #EstadosUnidos"

// twitterLimit is the platform's hard character cap.
const twitterLimit = 280

// Captions holds the ready-to-post caption variants for one payload.
type Captions struct {
	Twitter   string
	Facebook  string
	Instagram string
}

// FormatSocialCaptions derives the three caption variants from a
// payload. Pure and deterministic: same payload, same captions. Only
// the Twitter variant is length-capped.
func FormatSocialCaptions(p Payload) Captions {
	shortExcerpt := truncate(p.Excerpt, 200) + "..."

	twitter := strings.Join([]string{
		p.Title,
		shortExcerpt,
		hashtags,
		p.URL,
	}, "\n\n")

	facebook := strings.Join([]string{
		p.Title,
		p.Excerpt,
		"📰 " + p.Category + " | 👤 " + p.Author,
		hashtags,
		"🔗 Lee la noticia completa: " + p.URL,
	}, "\n\n")

	instagram := strings.Join([]string{
		p.Title,
		p.Excerpt,
		"📰 " + p.Category + "\n👤 " + p.Author + "\n📅 " + wordpress.FormatDate(p.Date),
		hashtags,
		"🔗 Link en bio: " + p.URL,
	}, "\n\n")

	return Captions{
		Twitter:   truncate(twitter, twitterLimit),
		Facebook:  facebook,
		Instagram: instagram,
	}
}

// truncate returns s truncated to max runes.
func truncate(s string, max int) string {
	rs := []rune(s)
	if len(rs) <= max {
		return s
	}
	return string(rs[:max])
}
