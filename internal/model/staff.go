package model

// Staff is a directory entry from the external staff service.
type Staff struct {
	ID        int    `json:"id"`
	FirstName string `json:"first_name"`
	LastName  string `json:"last_name"`
	Email     string `json:"email"`
	Position  string `json:"position,omitempty"`
}

// FullName renders the staff member the way assignee filters expect.
func (s Staff) FullName() string {
	return s.FirstName + " " + s.LastName
}
