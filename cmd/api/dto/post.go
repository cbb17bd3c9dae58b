package dto

// PostDTO is the public projection of a WordPress post. Excerpts are
// already sanitized and the display date is pre-formatted for the
// es-US audience, so renderers never touch raw CMS markup.
type PostDTO struct {
	ID          string   `json:"id"`
	Slug        string   `json:"slug"`
	Title       string   `json:"title"`
	Date        string   `json:"date"`
	DisplayDate string   `json:"display_date"`
	Excerpt     string   `json:"excerpt"`
	Content     string   `json:"content,omitempty"`
	ImageURL    string   `json:"image_url,omitempty"`
	ImageAlt    string   `json:"image_alt,omitempty"`
	Author      string   `json:"author"`
	Categories  []string `json:"categories"`
	Tags        []string `json:"tags,omitempty"`
}

type PageInfoDTO struct {
	HasNextPage     bool   `json:"has_next_page"`
	HasPreviousPage bool   `json:"has_previous_page"`
	StartCursor     string `json:"start_cursor"`
	EndCursor       string `json:"end_cursor"`
}

// PostListDTO is one listing page plus its pagination cursors.
type PostListDTO struct {
	Posts    []PostDTO   `json:"posts"`
	PageInfo PageInfoDTO `json:"page_info"`
}

type CategoryDTO struct {
	ID          string `json:"id"`
	Name        string `json:"name"`
	Slug        string `json:"slug"`
	Description string `json:"description,omitempty"`
	Count       int    `json:"count"`
}
