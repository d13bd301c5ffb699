package domain

// Document is a workspace document made of pages.
type Document struct {
	Creator   *User   `json:"creator,omitempty"`
	CreatedAt *int64  `json:"date_created,omitempty"`
	UpdatedAt *int64  `json:"date_updated,omitempty"`
	ID        string  `json:"id"`
	Name      string  `json:"name"`
	URL       string  `json:"url,omitempty"`
	Pages     []Page  `json:"pages,omitempty"`
}

// Page is a single page of a document. Pages nest.
type Page struct {
	CreatedAt *int64 `json:"date_created,omitempty"`
	UpdatedAt *int64 `json:"date_updated,omitempty"`
	ID        string `json:"id"`
	Name      string `json:"name"`
	Content   string `json:"content,omitempty"`
	Children  []Page `json:"pages,omitempty"`
}

// Flatten returns the page and all descendants in reading order.
func (p Page) Flatten() []Page {
	out := []Page{p}
	for _, child := range p.Children {
		out = append(out, child.Flatten()...)
	}
	return out
}
