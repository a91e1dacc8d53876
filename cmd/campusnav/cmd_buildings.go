package main

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/campusnav/campusnav/internal/app/models"
	"github.com/campusnav/campusnav/internal/client/ui"
)

var buildingsSearch string

var buildingsCmd = &cobra.Command{
	Use:   "buildings",
	Short: "List the campus building catalog",
	RunE:  runBuildings,
}

func init() {
	buildingsCmd.Flags().StringVar(&buildingsSearch, "search", "", "filter by name or code substring")
}

func runBuildings(cmd *cobra.Command, args []string) error {
	cc, err := newClientContext()
	if err != nil {
		return err
	}

	buildings, err := cc.client.Buildings(cmd.Context())
	if err != nil {
		return err
	}

	if buildingsSearch != "" {
		buildings = filterBuildings(buildings, buildingsSearch)
	}

	if len(buildings) == 0 {
		fmt.Println(ui.MutedStyle.Render("No buildings found."))
		return nil
	}

	fmt.Println(ui.HeaderStyle.Render("Campus buildings"))
	for _, b := range buildings {
		line := fmt.Sprintf("%s  %s", ui.CodeStyle.Render(fmt.Sprintf("%-5s", b.Code)), b.Name)
		fmt.Println(line)
		fmt.Println(ui.MutedStyle.Render("      " + b.Address))
		coords := fmt.Sprintf("      %.4f, %.4f", b.Latitude, b.Longitude)
		if !b.HasValidCoordinates() {
			fmt.Println(ui.WarnStyle.Render(coords + "  (invalid coordinates)"))
		} else {
			fmt.Println(ui.MutedStyle.Render(coords))
		}
	}
	return nil
}

func filterBuildings(buildings []models.Building, query string) []models.Building {
	query = strings.ToLower(query)
	var out []models.Building
	for _, b := range buildings {
		if strings.Contains(strings.ToLower(b.Name), query) ||
			strings.Contains(strings.ToLower(b.Code), query) {
			out = append(out, b)
		}
	}
	return out
}
