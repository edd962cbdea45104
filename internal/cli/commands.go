package cli

import (
	"fmt"
	"time"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"
	"github.com/spf13/cobra"

	"askthem/internal/directory/importer"
	"askthem/internal/directory/models"
	id "askthem/pkg/domain"
)

func (c *CLI) importCmd() *cobra.Command {
	var adapter string
	cmd := &cobra.Command{
		Use:   "import <jurisdiction>",
		Short: "Load a jurisdiction's officeholders from the data source",
		Long:  `Import runs once per jurisdiction: a jurisdiction that already has people is left untouched.`,
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			app, err := c.directory(ctx)
			if err != nil {
				return err
			}
			start := time.Now()
			res, err := app.Service.LoadForJurisdiction(ctx, id.JurisdictionKey(args[0]), adapter)
			if err != nil {
				return err
			}
			if res.AlreadyLoaded {
				fmt.Fprintf(cmd.OutOrStdout(), "%s already loaded\n", res.Jurisdiction)
				return nil
			}
			c.logger.InfoContext(ctx, "import finished", "elapsed", time.Since(start).Round(time.Millisecond))
			fmt.Fprintf(cmd.OutOrStdout(), "imported %d people into %s\n", len(res.People), res.Jurisdiction)
			return nil
		},
	}
	cmd.Flags().StringVar(&adapter, "adapter", importer.AdapterOpenStates, "attribute adapter: openstates or identity")
	return cmd
}

func (c *CLI) featureCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "feature <person-id>",
		Short: "Make a person the only featured person",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			personID, err := id.ParsePersonID(args[0])
			if err != nil {
				return err
			}
			ctx := cmd.Context()
			app, err := c.directory(ctx)
			if err != nil {
				return err
			}
			p, err := app.Service.MarkFeatured(ctx, personID)
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "featured %s (%s)\n", p.FullName, p.ID)
			return nil
		},
	}
}

func (c *CLI) lookupCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "lookup <location>",
		Short: "List officeholders for coordinates, a district, a postal code or a jurisdiction",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			app, err := c.directory(ctx)
			if err != nil {
				return err
			}
			people, err := app.Service.OfficeholdersForLocation(ctx, args[0])
			if err != nil {
				return err
			}
			if len(people) == 0 {
				fmt.Fprintln(cmd.OutOrStdout(), "no officeholders found")
				return nil
			}
			return writePeople(cmd, people)
		},
	}
}

func (c *CLI) mostRecentCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "most-recent <person-id> <attribute>",
		Short: "Print a person's current or most recent value for an attribute",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			personID, err := id.ParsePersonID(args[0])
			if err != nil {
				return err
			}
			ctx := cmd.Context()
			app, err := c.directory(ctx)
			if err != nil {
				return err
			}
			value, ok, err := app.Service.MostRecent(ctx, personID, args[1])
			if err != nil {
				return err
			}
			if !ok {
				return fmt.Errorf("%s has no %s", personID, args[1])
			}
			fmt.Fprintln(cmd.OutOrStdout(), value)
			return nil
		},
	}
}

var (
	headerStyle = lipgloss.NewStyle().Bold(true).Padding(0, 1)
	cellStyle   = lipgloss.NewStyle().Padding(0, 1)
)

func writePeople(cmd *cobra.Command, people []*models.Person) error {
	rows := make([][]string, 0, len(people))
	for _, p := range people {
		rows = append(rows, []string{p.ID.String(), p.FullName, string(p.Type), p.Jurisdiction, p.Chamber, p.District})
	}
	t := table.New().
		Border(lipgloss.RoundedBorder()).
		Headers("ID", "Name", "Type", "Jurisdiction", "Chamber", "District").
		Rows(rows...).
		StyleFunc(func(row, _ int) lipgloss.Style {
			if row == -1 {
				return headerStyle
			}
			return cellStyle
		})
	_, err := fmt.Fprintln(cmd.OutOrStdout(), t.Render())
	return err
}
