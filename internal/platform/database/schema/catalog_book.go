package schema

// RefBookTable represents the 'books' table
type RefBookTable struct {
	Table         string
	ID            string
	Title         string
	Description   string
	ISBN          string
	PublishedYear string
	Genre         string
	Pages         string
	AuthorID      string
	CreatedAt     string
	UpdatedAt     string
}

// RefBook is the schema definition for books
var RefBook = RefBookTable{
	Table:         "books",
	ID:            "id",
	Title:         "title",
	Description:   "description",
	ISBN:          "isbn",
	PublishedYear: "published_year",
	Genre:         "genre",
	Pages:         "pages",
	AuthorID:      "author_id",
	CreatedAt:     "created_at",
	UpdatedAt:     "updated_at",
}

func (t RefBookTable) Columns() []string {
	return []string{t.ID, t.Title, t.Description, t.ISBN, t.PublishedYear, t.Genre, t.Pages, t.AuthorID, t.CreatedAt, t.UpdatedAt}
}
