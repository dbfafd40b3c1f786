package model

// Listing is a rental property record owned by a landlord user.
type Listing struct {
	ID            int64   `json:"id"`
	Owner         User    `json:"owner"`
	Price         float64 `json:"price"`
	PropertyType  string  `json:"property_type"` // A, H, C, T (apartment, house, condo, townhouse)
	Bedrooms      int     `json:"bedrooms"`
	Bathrooms     int     `json:"bathrooms"`
	SqftArea      int     `json:"sqft_area,omitempty"`
	MoveInDate    string  `json:"move_in_date,omitempty"`
	Description   string  `json:"description,omitempty"`
	StreetAddress string  `json:"street_address"`
	City          string  `json:"city"`
	PostalCode    string  `json:"postal_code"`
}

// ListingSearch carries the /listings/viewAll filter parameters. Encoded
// with go-querystring; zero values are omitted from the query.
type ListingSearch struct {
	City         string  `url:"city,omitempty"`
	PriceMin     float64 `url:"price_min,omitempty"`
	PriceMax     float64 `url:"price_max,omitempty"`
	Bedrooms     int     `url:"bedrooms,omitempty"`
	Bathrooms    int     `url:"bathrooms,omitempty"`
	PropertyType string  `url:"property_type,omitempty"`
	Owner        int64   `url:"owner,omitempty"`
	Ordering     string  `url:"ordering,omitempty"`
	Page         int     `url:"page,omitempty"`
}
