package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/simplerentals/rentals-go/internal/model"
	"github.com/simplerentals/rentals-go/internal/score"
)

func listingsCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "listings",
		Short: "Search listings and check affordability",
	}
	cmd.AddCommand(listingsSearchCmd())
	cmd.AddCommand(listingsGetCmd())
	return cmd
}

func listingsSearchCmd() *cobra.Command {
	var search model.ListingSearch
	cmd := &cobra.Command{
		Use:   "search",
		Short: "Search listings, annotated with your affordability tier",
		RunE: func(cmd *cobra.Command, args []string) error {
			a, err := newApp(cmd.Context())
			if err != nil {
				return err
			}
			me, err := a.client.Me(cmd.Context())
			if err != nil {
				return err
			}
			listings, err := a.client.SearchListings(cmd.Context(), search)
			if err != nil {
				return err
			}
			for _, l := range listings {
				tier := score.Affordability(l.Price, me.YearlyIncome)
				fmt.Fprintf(cmd.OutOrStdout(), "%d: %s, %s — %.0f/mo, %dbd %dba [%s]\n",
					l.ID, l.StreetAddress, l.City, l.Price, l.Bedrooms, l.Bathrooms, tier)
			}
			return nil
		},
	}
	cmd.Flags().StringVar(&search.City, "city", "", "filter by city")
	cmd.Flags().Float64Var(&search.PriceMin, "price-min", 0, "minimum monthly price")
	cmd.Flags().Float64Var(&search.PriceMax, "price-max", 0, "maximum monthly price")
	cmd.Flags().IntVar(&search.Bedrooms, "bedrooms", 0, "minimum bedrooms")
	cmd.Flags().IntVar(&search.Bathrooms, "bathrooms", 0, "minimum bathrooms")
	cmd.Flags().StringVar(&search.PropertyType, "type", "", "property type (A, H, C, T)")
	return cmd
}

func roommatesCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "roommates",
		Short: "List browsable roommate profiles",
		RunE: func(cmd *cobra.Command, args []string) error {
			a, err := newApp(cmd.Context())
			if err != nil {
				return err
			}
			rms, err := a.client.ListRoommates(cmd.Context())
			if err != nil {
				return err
			}
			for _, rm := range rms {
				fmt.Fprintf(cmd.OutOrStdout(), "%d: %s %s, budget %.0f/mo\n",
					rm.ID, rm.User.FirstName, rm.User.LastName, rm.Budget)
			}
			return nil
		},
	}
}

func listingsGetCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "get <listing-id>",
		Short: "Show a listing with its groups and your budget fit",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			listingID, err := parseID(args[0])
			if err != nil {
				return err
			}
			a, err := newApp(cmd.Context())
			if err != nil {
				return err
			}
			listing, err := a.client.GetListing(cmd.Context(), listingID)
			if err != nil {
				return err
			}
			me, err := a.client.Me(cmd.Context())
			if err != nil {
				return err
			}

			fmt.Fprintf(cmd.OutOrStdout(), "Listing %d: %s, %s %s\n", listing.ID, listing.StreetAddress, listing.City, listing.PostalCode)
			fmt.Fprintf(cmd.OutOrStdout(), "  %.0f/mo, %d bed, %d bath\n", listing.Price, listing.Bedrooms, listing.Bathrooms)

			fit := score.Fit(listing.Price, me.YearlyIncome)
			if fit.Percent != nil {
				fmt.Fprintf(cmd.OutOrStdout(), "  Budget fit: %s (%.0f%% of monthly income)\n", fit.Tier, *fit.Percent)
			} else {
				fmt.Fprintf(cmd.OutOrStdout(), "  Budget fit: %s\n", fit.Tier)
			}

			groups, err := a.client.ListingGroups(cmd.Context(), listingID)
			if err != nil {
				return err
			}
			for _, g := range groups {
				fmt.Fprintf(cmd.OutOrStdout(), "  Group %d: %s [%s], %d member(s)\n", g.ID, g.Name, g.Status.Label(), len(g.Members))
			}
			return nil
		},
	}
}
