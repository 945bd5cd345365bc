package client

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	apiv1alpha1 "github.com/KirkDiggler/rpg-api-protos/gen/go/clients/api/v1alpha1"
)

var rollDiceCmd = &cobra.Command{
	Use:   "roll-dice [notation] [entity-id] [context]",
	Short: "Roll dice using dice notation",
	Long: `Roll dice and record the faces under an entity and context. Examples:

  roll-dice 2d6 sess_1 race
  roll-dice 3d6 sess_1 stats
  roll-dice 1d6 sess_1 check`,
	Args: cobra.ExactArgs(3),
	RunE: rollDice,
}

func rollDice(_ *cobra.Command, args []string) error {
	notation := args[0]
	entityID := args[1]
	rollContext := args[2]

	client, cleanup, err := createDiceClient()
	if err != nil {
		return err
	}
	defer cleanup()

	ctx, cancel := context.WithTimeout(context.Background(), timeout)
	defer cancel()

	fmt.Printf("Rolling %s for %s (context: %s)...\n", notation, entityID, rollContext)

	resp, err := client.RollDice(ctx, &apiv1alpha1.RollDiceRequest{
		EntityId: entityID,
		Context:  rollContext,
		Notation: notation,
	})
	if err != nil {
		return fmt.Errorf("failed to roll dice: %w", err)
	}

	fmt.Printf("\nDice Roll Results\n")
	fmt.Printf("=================\n")
	printRolls(resp.GetRolls())

	fmt.Printf("\nRecord expires at: %d\n", resp.GetExpiresAt())
	return nil
}
