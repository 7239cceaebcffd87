package internal

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSnapshotEqual(t *testing.T) {
	t.Run("slot-wise comparison", func(t *testing.T) {
		assert.True(t, Snapshot{1, "a", true}.Equal(Snapshot{1, "a", true}))
		assert.False(t, Snapshot{1, "a", true}.Equal(Snapshot{1, "b", true}))
		assert.False(t, Snapshot{1}.Equal(Snapshot{2}))
	})

	t.Run("arity mismatch is a change", func(t *testing.T) {
		assert.False(t, Snapshot{1}.Equal(Snapshot{1, 2}))
		assert.False(t, Snapshot{1, 2}.Equal(Snapshot{1}))
	})

	t.Run("empty and nil", func(t *testing.T) {
		assert.True(t, Snapshot{}.Equal(nil))
		assert.True(t, Snapshot(nil).Equal(Snapshot{}))
	})

	t.Run("identity of the container is irrelevant", func(t *testing.T) {
		a := Snapshot{"x", 42}
		b := Snapshot{"x", 42}
		assert.True(t, a.Equal(b))
	})

	t.Run("pointer slots compare by identity", func(t *testing.T) {
		x, y := new(int), new(int)
		assert.True(t, Snapshot{x}.Equal(Snapshot{x}))
		assert.False(t, Snapshot{x}.Equal(Snapshot{y}))
	})
}
