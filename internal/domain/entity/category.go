// Package entity contains the core business objects of the project.
package entity

// Category is static reference data used to group and filter listings.
// Categories can be stored remotely; when none are stored, the built-in
// default set applies.
type Category struct {
	ID    string // Stable identifier, used as the listing's category tag.
	Name  string // Display name.
	Color string // Display color, as a hex string.
	Icon  string // Display icon name.
}

// DefaultCategories returns the built-in category set used when the remote
// store holds no custom categories.
func DefaultCategories() []*Category {
	return []*Category{
		{ID: "ristorante", Name: "Ristoranti", Color: "#E63946", Icon: "utensils"},
		{ID: "bar", Name: "Bar e Caffè", Color: "#F4A261", Icon: "coffee"},
		{ID: "alimentari", Name: "Alimentari", Color: "#2A9D8F", Icon: "shopping-basket"},
		{ID: "negozio", Name: "Negozi", Color: "#457B9D", Icon: "store"},
		{ID: "artigiano", Name: "Artigiani", Color: "#8D6A9F", Icon: "hammer"},
		{ID: "servizi", Name: "Servizi", Color: "#6C757D", Icon: "briefcase"},
	}
}
