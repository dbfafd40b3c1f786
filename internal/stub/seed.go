package stub

import "github.com/simplerentals/rentals-go/internal/model"

func f64(v float64) *float64 { return &v }

// Seed loads a small demo data set and returns the created users so the
// caller can mint tokens for them.
func (s *Store) Seed() []model.User {
	landlord := s.AddUser(model.User{
		Email:     "landlord@example.com",
		FirstName: "Lena",
		LastName:  "Hart",
		City:      "London",
	})
	listing := s.AddListing(model.Listing{
		Owner:         landlord,
		Price:         1500,
		PropertyType:  "A",
		Bedrooms:      3,
		Bathrooms:     2,
		StreetAddress: "12 Somerset Road",
		City:          "London",
		PostalCode:    "N1 7AA",
	})

	alice := s.AddUser(model.User{
		Email:        "alice@example.com",
		FirstName:    "Alice",
		LastName:     "Ngo",
		City:         "London",
		YearlyIncome: f64(60000),
	})
	aliceRm := s.AddRoommate(model.Roommate{
		User:          alice,
		Occupation:    "W",
		Budget:        900,
		MoveInDate:    "2026-10-01",
		StayLength:    12,
		OpenToMessage: true,
	})

	bob := s.AddUser(model.User{
		Email:        "bob@example.com",
		FirstName:    "Bob",
		LastName:     "Keller",
		City:         "London",
		YearlyIncome: f64(42000),
	})
	s.AddRoommate(model.Roommate{
		User:          bob,
		Occupation:    "S",
		Budget:        700,
		MoveInDate:    "2026-10-01",
		StayLength:    8,
		OpenToMessage: true,
	})

	s.AddGroup(model.Group{
		Name:        "Somerset Road flatshare",
		Description: "Looking for one more to split the three-bed.",
		MoveInDate:  "2026-10-01",
		Status:      model.StatusOpen,
		Listing:     listing.ID,
		Owner:       aliceRm,
	})

	return []model.User{landlord, alice, bob}
}
