package cli

import (
	"encoding/json"
	"fmt"

	"plaiz_studio/internal/app"

	"github.com/spf13/cobra"
)

// ReconcileCmd replays the lifecycle rules over committed records.
func ReconcileCmd() *cobra.Command {
	var projectID string

	cmd := &cobra.Command{
		Use:   "reconcile",
		Short: "Advance projects whose follow-up status write was lost",
		Long: `Re-derive each open project's status from its agreements, payments, files and payout.
Safe to run multiple times (idempotent).`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return withContainer(cmd.Context(), func(c *app.Container) error {
				out := cmd.OutOrStdout()
				if projectID != "" {
					res, err := c.Reconcile.ReconcileProject(cmd.Context(), projectID)
					if err != nil {
						return fmt.Errorf("reconcile %s: %w", projectID, err)
					}
					fmt.Fprintf(out, "%s: %s (advanced=%t)\n", res.Project.ID, res.Project.Status, res.Advanced)
					return nil
				}

				report, err := c.Reconcile.ReconcileAll(cmd.Context())
				if err != nil {
					return fmt.Errorf("reconcile sweep: %w", err)
				}
				enc := json.NewEncoder(out)
				enc.SetIndent("", "  ")
				return enc.Encode(report)
			})
		},
	}

	cmd.Flags().StringVar(&projectID, "project", "", "Reconcile a single project")

	return cmd
}
