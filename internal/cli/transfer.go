package cli

import (
	"fmt"

	"plaiz_studio/internal/app"
	"plaiz_studio/internal/usecase"

	"github.com/spf13/cobra"
)

// TransferCmd sends a payout through the configured transfer provider.
func TransferCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "transfer PAYOUT_ID",
		Short: "Initiate the bank transfer for a payout",
		Long: `Send the worker share (and the platform share, when a platform recipient is configured)
through Paystack. The payout status is not changed; an admin still marks it sent.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return withContainer(cmd.Context(), func(c *app.Container) error {
				res, err := c.Payouts.InitiateTransfer(cmd.Context(), usecase.SystemSession, args[0])
				if err != nil {
					return fmt.Errorf("transfer %s: %w", args[0], err)
				}
				ref := ""
				if res.Payout != nil {
					ref = res.Payout.TransferReference
				}
				fmt.Fprintf(cmd.OutOrStdout(), "✓ transfer queued for payout %s (reference %s)\n", args[0], ref)
				return nil
			})
		},
	}
}
