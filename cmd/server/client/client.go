// Package client provides commands for poking a running rpg-tale server
package client

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"
	"google.golang.org/grpc"
	"google.golang.org/grpc/credentials/insecure"

	apiv1alpha1 "github.com/KirkDiggler/rpg-api-protos/gen/go/clients/api/v1alpha1"
)

var (
	serverAddr string
	timeout    time.Duration
)

// ClientCmd is the root command for all client commands
var ClientCmd = &cobra.Command{
	Use:   "client",
	Short: "Client commands for the rpg-tale gRPC API",
	Long: `Client commands make real gRPC requests against the DiceService.

Session rolls are recorded with the session ID as the entity and one of
race, job, stats or check as the context.`,
}

func init() {
	ClientCmd.PersistentFlags().StringVar(&serverAddr, "server", "localhost:50051", "gRPC server address")
	ClientCmd.PersistentFlags().DurationVar(&timeout, "timeout", 30*time.Second, "Request timeout")

	ClientCmd.AddCommand(rollDiceCmd)
	ClientCmd.AddCommand(getRollSessionCmd)
	ClientCmd.AddCommand(clearRollSessionCmd)
}

// createConnection creates a gRPC connection to the server
func createConnection() (*grpc.ClientConn, error) {
	conn, err := grpc.NewClient(serverAddr,
		grpc.WithTransportCredentials(insecure.NewCredentials()),
	)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to server: %w", err)
	}

	return conn, nil
}

// createDiceClient creates a dice service client
func createDiceClient() (apiv1alpha1.DiceServiceClient, func(), error) {
	conn, err := createConnection()
	if err != nil {
		return nil, nil, err
	}

	cleanup := func() {
		_ = conn.Close()
	}

	return apiv1alpha1.NewDiceServiceClient(conn), cleanup, nil
}

func printRolls(rolls []*apiv1alpha1.DiceRoll) {
	for i, roll := range rolls {
		fmt.Printf("\nRoll %d:\n", i+1)
		fmt.Printf("  Roll ID: %s\n", roll.GetRollId())
		fmt.Printf("  Notation: %s\n", roll.GetNotation())
		fmt.Printf("  Faces: %v\n", roll.GetDice())
		fmt.Printf("  Total: %d\n", roll.GetTotal())
		if len(roll.GetDropped()) > 0 {
			fmt.Printf("  Dropped: %v\n", roll.GetDropped())
		}
		if roll.GetDescription() != "" {
			fmt.Printf("  Description: %s\n", roll.GetDescription())
		}
	}
}
