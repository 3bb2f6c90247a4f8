package domain

// Product carries the display attributes the product service owns. It is
// read-only here: fetched fresh per render, never cached or written back.
type Product struct {
	Name     string
	Price    float64
	ImageURL string
}
