package builders_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/KirkDiggler/rpg-tale/internal/entities"
	"github.com/KirkDiggler/rpg-tale/internal/testutils/builders"
)

func TestLoopSessionWithPendingCheck(t *testing.T) {
	sess := builders.LoopSession().
		WithNarration("The wall is slick.").
		WithPendingCheck(entities.StatDexterity, "climb").
		Build()

	assert.Equal(t, entities.LoopAwaitingStatCheck, sess.LoopState())
	assert.Equal(t, 1, sess.Narrative.UnresolvedPrompts())
	assert.Equal(t, "mage", sess.Sheet.Job)
}

func TestBuildReturnsCopies(t *testing.T) {
	b := builders.NewSessionBuilder().WithSuggestions("look around")
	first := b.Build()
	first.Narrative.Suggestions[0] = "changed"

	assert.Equal(t, "look around", b.Build().Narrative.Suggestions[0])
	assert.Equal(t, entities.PhaseNicknameEntry, b.Build().Phase)
}
