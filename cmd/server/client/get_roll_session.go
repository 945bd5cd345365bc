package client

import (
	"context"
	"fmt"
	"time"

	"github.com/spf13/cobra"

	apiv1alpha1 "github.com/KirkDiggler/rpg-api-protos/gen/go/clients/api/v1alpha1"
)

var getRollSessionCmd = &cobra.Command{
	Use:   "get-roll-session [entity-id] [context]",
	Short: "Show the recorded rolls for an entity and context",
	Long: `Retrieve every recorded roll for an entity and context. Examples:

  get-roll-session sess_1 stats
  get-roll-session sess_1 check`,
	Args: cobra.ExactArgs(2),
	RunE: getRollSession,
}

func getRollSession(_ *cobra.Command, args []string) error {
	entityID := args[0]
	rollContext := args[1]

	client, cleanup, err := createDiceClient()
	if err != nil {
		return err
	}
	defer cleanup()

	ctx, cancel := context.WithTimeout(context.Background(), timeout)
	defer cancel()

	resp, err := client.GetRollSession(ctx, &apiv1alpha1.GetRollSessionRequest{
		EntityId: entityID,
		Context:  rollContext,
	})
	if err != nil {
		return fmt.Errorf("failed to get roll session: %w", err)
	}

	fmt.Printf("Roll record for %s (context: %s)\n", entityID, rollContext)
	fmt.Printf("Created: %s\n", time.Unix(resp.GetCreatedAt(), 0).Format(time.DateTime))
	fmt.Printf("Expires: %s\n", time.Unix(resp.GetExpiresAt(), 0).Format(time.DateTime))
	fmt.Printf("Total Rolls: %d\n", len(resp.GetRolls()))
	printRolls(resp.GetRolls())

	return nil
}
