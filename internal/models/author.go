package models

// Author is one of the two fixed diary identities. The set is closed: any
// other value is rejected at the service layer before it reaches storage.
type Author string

const (
	AuthorSude  Author = "Sude"
	AuthorErtan Author = "Ertan"
)

// Authors returns the closed set of valid identities.
func Authors() []Author {
	return []Author{AuthorSude, AuthorErtan}
}

// Valid reports whether a is a member of the closed identity set.
func (a Author) Valid() bool {
	return a == AuthorSude || a == AuthorErtan
}
