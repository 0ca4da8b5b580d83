package schema

// RefAuthorTable represents the 'authors' table
type RefAuthorTable struct {
	Table       string
	ID          string
	Name        string
	Email       string
	Bio         string
	Nationality string
	BirthYear   string
	CreatedAt   string
	UpdatedAt   string
}

// RefAuthor is the schema definition for authors
var RefAuthor = RefAuthorTable{
	Table:       "authors",
	ID:          "id",
	Name:        "name",
	Email:       "email",
	Bio:         "bio",
	Nationality: "nationality",
	BirthYear:   "birth_year",
	CreatedAt:   "created_at",
	UpdatedAt:   "updated_at",
}

func (t RefAuthorTable) Columns() []string {
	return []string{t.ID, t.Name, t.Email, t.Bio, t.Nationality, t.BirthYear, t.CreatedAt, t.UpdatedAt}
}
