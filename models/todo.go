package models

// Todo is a single to-do entry.
type Todo struct {
	ID    int64  `json:"id" db:"id"`
	Title string `json:"title" db:"title"`
}

// TableName returns the name of the database table
// associated with the Todo model.
func (t Todo) TableName() string {
	return "todos"
}
