// Package v1alpha1 serves the DiceService gRPC API. Rendering clients use it
// to fetch the faces a tale session rolled so they can animate exactly those.
package v1alpha1

import (
	"context"

	apiv1alpha1 "github.com/KirkDiggler/rpg-api-protos/gen/go/clients/api/v1alpha1"

	"github.com/KirkDiggler/rpg-tale/internal/errors"
	"github.com/KirkDiggler/rpg-tale/internal/orchestrators/dice"
	dicesession "github.com/KirkDiggler/rpg-tale/internal/repositories/dice_session"
)

// DiceHandlerConfig holds dependencies for the dice handler
type DiceHandlerConfig struct {
	DiceService dice.Service
}

// Validate ensures all required dependencies are present
func (c *DiceHandlerConfig) Validate() error {
	vb := errors.NewValidationBuilder()
	if c.DiceService == nil {
		vb.RequiredField("DiceService")
	}
	return vb.Build()
}

// DiceHandler implements the DiceService gRPC server
type DiceHandler struct {
	apiv1alpha1.UnimplementedDiceServiceServer
	diceService dice.Service
}

var _ apiv1alpha1.DiceServiceServer = (*DiceHandler)(nil)

// NewDiceHandler creates a new dice handler with the given configuration
func NewDiceHandler(cfg *DiceHandlerConfig) (*DiceHandler, error) {
	if cfg == nil {
		return nil, errors.InvalidArgument("config is required")
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return &DiceHandler{
		diceService: cfg.DiceService,
	}, nil
}

func validateKey(entityID, context string) error {
	vb := errors.NewValidationBuilder()
	errors.ValidateRequired("entity_id", entityID, vb)
	errors.ValidateRequired("context", context, vb)
	return vb.Build()
}

// RollDice rolls free-form notation and returns every roll recorded under the
// same entity and context.
func (h *DiceHandler) RollDice(
	ctx context.Context,
	req *apiv1alpha1.RollDiceRequest,
) (*apiv1alpha1.RollDiceResponse, error) {
	if err := validateKey(req.GetEntityId(), req.GetContext()); err != nil {
		return nil, errors.ToGRPCError(err)
	}
	if req.GetNotation() == "" {
		return nil, errors.ToGRPCError(errors.InvalidArgument("notation is required"))
	}

	out, err := h.diceService.RollDice(ctx, &dice.RollDiceInput{
		EntityID:    req.GetEntityId(),
		Context:     req.GetContext(),
		Notation:    req.GetNotation(),
		Description: req.GetModifierDescription(),
	})
	if err != nil {
		return nil, errors.ToGRPCError(err)
	}

	return &apiv1alpha1.RollDiceResponse{
		Rolls:     convertRolls(out.Session.Rolls),
		ExpiresAt: out.Session.ExpiresAt.Unix(),
	}, nil
}

// GetRollSession returns the recorded rolls for an entity and context, e.g.
// the three stat dice of a tale session under "stats".
func (h *DiceHandler) GetRollSession(
	ctx context.Context,
	req *apiv1alpha1.GetRollSessionRequest,
) (*apiv1alpha1.GetRollSessionResponse, error) {
	if err := validateKey(req.GetEntityId(), req.GetContext()); err != nil {
		return nil, errors.ToGRPCError(err)
	}

	out, err := h.diceService.GetRollSession(ctx, &dice.GetRollSessionInput{
		EntityID: req.GetEntityId(),
		Context:  req.GetContext(),
	})
	if err != nil {
		return nil, errors.ToGRPCError(err)
	}

	return &apiv1alpha1.GetRollSessionResponse{
		Rolls:     convertRolls(out.Session.Rolls),
		ExpiresAt: out.Session.ExpiresAt.Unix(),
		CreatedAt: out.Session.CreatedAt.Unix(),
	}, nil
}

// ClearRollSession removes a dice roll session
func (h *DiceHandler) ClearRollSession(
	ctx context.Context,
	req *apiv1alpha1.ClearRollSessionRequest,
) (*apiv1alpha1.ClearRollSessionResponse, error) {
	if err := validateKey(req.GetEntityId(), req.GetContext()); err != nil {
		return nil, errors.ToGRPCError(err)
	}

	out, err := h.diceService.ClearRollSession(ctx, &dice.ClearRollSessionInput{
		EntityID: req.GetEntityId(),
		Context:  req.GetContext(),
	})
	if err != nil {
		return nil, errors.ToGRPCError(err)
	}

	return &apiv1alpha1.ClearRollSessionResponse{
		Message:      "Roll session cleared",
		RollsCleared: out.RollsDeleted,
	}, nil
}

func convertRolls(rolls []dicesession.DiceRoll) []*apiv1alpha1.DiceRoll {
	out := make([]*apiv1alpha1.DiceRoll, 0, len(rolls))
	for _, r := range rolls {
		out = append(out, &apiv1alpha1.DiceRoll{
			RollId:      r.RollID,
			Notation:    r.Notation,
			Dice:        r.Dice,
			Total:       r.Total,
			Dropped:     r.Dropped,
			Description: r.Description,
			DiceTotal:   r.DiceTotal,
			Modifier:    r.Modifier,
		})
	}
	return out
}
