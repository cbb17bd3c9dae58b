package wordpress

// Types mirroring the WPGraphQL response shapes. The node wrappers
// (author.node, categories.nodes, ...) follow the wire format exactly
// so the responses decode without custom mapping.

type Post struct {
	ID            string         `json:"id"`
	Slug          string         `json:"slug"`
	Title         string         `json:"title"`
	Date          string         `json:"date"`
	Excerpt       string         `json:"excerpt"`
	Content       string         `json:"content"`
	FeaturedImage *FeaturedImage `json:"featuredImage"`
	Author        AuthorNode     `json:"author"`
	Categories    CategoryList   `json:"categories"`
	Tags          *TagList       `json:"tags"`
}

// PrimaryCategory returns the name of the first category, or fallback
// when the post has none.
func (p Post) PrimaryCategory(fallback string) string {
	if len(p.Categories.Nodes) > 0 {
		return p.Categories.Nodes[0].Name
	}
	return fallback
}

type FeaturedImage struct {
	Node ImageNode `json:"node"`
}

type ImageNode struct {
	SourceURL    string       `json:"sourceUrl"`
	AltText      string       `json:"altText"`
	MediaDetails MediaDetails `json:"mediaDetails"`
}

type MediaDetails struct {
	Width  int `json:"width"`
	Height int `json:"height"`
}

type AuthorNode struct {
	Node Author `json:"node"`
}

type Author struct {
	Name string `json:"name"`
	Slug string `json:"slug"`
}

type CategoryList struct {
	Nodes []Category `json:"nodes"`
}

type Category struct {
	ID          string `json:"id"`
	Name        string `json:"name"`
	Slug        string `json:"slug"`
	Description string `json:"description,omitempty"`
	Count       int    `json:"count,omitempty"`
}

type TagList struct {
	Nodes []Tag `json:"nodes"`
}

type Tag struct {
	ID   string `json:"id"`
	Name string `json:"name"`
	Slug string `json:"slug"`
}

// PageInfo is the cursor pair describing one page of a listing.
type PageInfo struct {
	HasNextPage     bool   `json:"hasNextPage"`
	HasPreviousPage bool   `json:"hasPreviousPage"`
	StartCursor     string `json:"startCursor"`
	EndCursor       string `json:"endCursor"`
}

// PostsPage is one page of posts plus its pagination cursors.
type PostsPage struct {
	Nodes    []Post   `json:"nodes"`
	PageInfo PageInfo `json:"pageInfo"`
}
