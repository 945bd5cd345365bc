package testutils

import (
	"fmt"
	"sync"

	"github.com/KirkDiggler/rpg-toolkit/dice"
)

// ScriptedRoller is a dice.Roller that returns preset faces in order.
type ScriptedRoller struct {
	mu    sync.Mutex
	faces []int
	sizes []int
}

var _ dice.Roller = (*ScriptedRoller)(nil)

// NewScriptedRoller returns a roller that yields faces in order.
func NewScriptedRoller(faces ...int) *ScriptedRoller {
	return &ScriptedRoller{faces: faces}
}

// Push queues more faces.
func (r *ScriptedRoller) Push(faces ...int) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.faces = append(r.faces, faces...)
}

// Remaining reports how many queued faces have not been used.
func (r *ScriptedRoller) Remaining() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return len(r.faces)
}

// Sizes returns the die sizes requested so far.
func (r *ScriptedRoller) Sizes() []int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return append([]int(nil), r.sizes...)
}

// Roll returns the next queued face.
func (r *ScriptedRoller) Roll(size int) (int, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.next(size)
}

// RollN returns the next count queued faces.
func (r *ScriptedRoller) RollN(count, size int) ([]int, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	out := make([]int, count)
	for i := range out {
		face, err := r.next(size)
		if err != nil {
			return nil, err
		}
		out[i] = face
	}
	return out, nil
}

func (r *ScriptedRoller) next(size int) (int, error) {
	if len(r.faces) == 0 {
		return 0, fmt.Errorf("scripted roller: no faces left for d%d", size)
	}
	face := r.faces[0]
	r.faces = r.faces[1:]
	r.sizes = append(r.sizes, size)
	return face, nil
}
