package main

import (
	"fmt"
	"os"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/spiritatlas/entwine/internal/export"
)

func reportsCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "reports",
		Short: "Browse stored compatibility reports",
	}

	cmd.AddCommand(listReportsCmd())
	cmd.AddCommand(showReportCmd())

	return cmd
}

func listReportsCmd() *cobra.Command {
	var profileID string

	cmd := &cobra.Command{
		Use:   "list --profile <id>",
		Short: "List reports involving a profile, newest first",
		RunE: func(cmd *cobra.Command, _ []string) error {
			ctx := cmd.Context()

			if profileID == "" {
				return fmt.Errorf("--profile is required")
			}

			store, err := initStorage(ctx)
			if err != nil {
				return err
			}
			defer store.Close()

			reports, err := store.GetReportsByProfile(ctx, profileID)
			if err != nil {
				return fmt.Errorf("failed to list reports: %w", err)
			}

			if len(reports) == 0 {
				fmt.Println(export.InfoStyle.Render("No reports found for this profile. Use 'entwine analyze' to create one."))
				return nil
			}

			w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
			defer w.Flush()

			fmt.Fprintf(w, "%s\t%s\t%s\t%s\n",
				export.TableHeaderStyle.Render("ID"),
				export.TableHeaderStyle.Render("Couple"),
				export.TableHeaderStyle.Render("Overall"),
				export.TableHeaderStyle.Render("Generated"))

			for _, report := range reports {
				fmt.Fprintf(w, "%s\t%s + %s\t%.1f\t%s\n",
					report.ID,
					report.ProfileA.BestName(), report.ProfileB.BestName(),
					report.Scores.Overall(),
					report.GeneratedAt.Format("2006-01-02 15:04"))
			}

			return nil
		},
	}

	cmd.Flags().StringVar(&profileID, "profile", "", "profile id to list reports for")
	return cmd
}

func showReportCmd() *cobra.Command {
	var share bool

	cmd := &cobra.Command{
		Use:   "show <report-id>",
		Short: "Render a stored report",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()

			store, err := initStorage(ctx)
			if err != nil {
				return err
			}
			defer store.Close()

			report, err := store.GetReport(ctx, args[0])
			if err != nil {
				return fmt.Errorf("failed to load report: %w", err)
			}

			if share {
				fmt.Print(export.PlainText(report))
			} else {
				fmt.Print(export.Render(report))
			}
			return nil
		},
	}

	cmd.Flags().BoolVar(&share, "share", false, "print a plain-text shareable summary instead of the styled report")
	return cmd
}
