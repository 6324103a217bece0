package records

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type chore struct {
	id   string
	name string
	done bool
}

func (c chore) RecordID() string { return c.id }

func (c chore) WithID(id string) chore {
	c.id = id
	return c
}

func (c chore) Toggle(field Field) (chore, bool) {
	if field != FieldCompleted {
		return c, false
	}
	c.done = !c.done
	return c, true
}

func sample() []chore {
	return []chore{
		{id: "1", name: "mow"},
		{id: "2", name: "dishes", done: true},
		{id: "3", name: "laundry"},
	}
}

func TestAddThenRemoveRestoresSequence(t *testing.T) {
	seq := sample()

	added := Add(seq, chore{name: "vacuum"}, "4")
	require.Len(t, added, 4)
	assert.Equal(t, "4", added[3].id)
	assert.Equal(t, "vacuum", added[3].name)
	assert.Len(t, seq, 3, "input must not grow")

	assert.Equal(t, seq, Remove(added, "4"))
}

func TestAddIgnoresDuplicateID(t *testing.T) {
	seq := sample()
	assert.Equal(t, seq, Add(seq, chore{name: "dup"}, "2"))
}

func TestEdit(t *testing.T) {
	seq := sample()
	edit := chore{id: "2", name: "dry dishes", done: true}

	once := Edit(seq, edit)
	twice := Edit(once, edit)

	assert.Equal(t, once, twice, "edit must be idempotent")
	assert.Equal(t, "dry dishes", once[1].name)
	assert.Equal(t, "dishes", seq[1].name, "input must not change")
	assert.Equal(t, []string{"1", "2", "3"}, ids(once))
}

func TestEdit_AbsentIsNoop(t *testing.T) {
	seq := sample()
	assert.Equal(t, seq, Edit(seq, chore{id: "nope", name: "x"}))
}

func TestRemove(t *testing.T) {
	seq := sample()

	assert.Equal(t, []string{"1", "3"}, ids(Remove(seq, "2")))
	assert.Equal(t, seq, Remove(seq, "missing"))
	assert.Equal(t, []string{"1", "2", "3"}, ids(seq))
}

func TestToggle(t *testing.T) {
	seq := sample()

	toggled := Toggle(seq, "1", FieldCompleted)
	assert.True(t, toggled[0].done)
	assert.False(t, seq[0].done)

	assert.Equal(t, seq, Toggle(toggled, "1", FieldCompleted))
	assert.Equal(t, seq, Toggle(seq, "missing", FieldCompleted))
	assert.Equal(t, seq, Toggle(seq, "1", FieldBought), "unsupported field is a no-op")
}

func TestUpdateKeepsID(t *testing.T) {
	seq := sample()

	out := Update(seq, "3", func(c chore) chore {
		c.name = "fold laundry"
		c.id = "hijacked"
		return c
	})

	assert.Equal(t, []string{"1", "2", "3"}, ids(out))
	assert.Equal(t, "fold laundry", out[2].name)
}

func TestUpdateWhere(t *testing.T) {
	out := UpdateWhere(sample(), func(c chore) bool { return !c.done }, func(c chore) chore {
		c.done = true
		return c
	})
	for _, c := range out {
		assert.True(t, c.done, c.id)
	}
}

func TestFind(t *testing.T) {
	got, err := Find(sample(), "2")
	require.NoError(t, err)
	assert.Equal(t, "dishes", got.name)

	_, err = Find(sample(), "9")
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestFreshIDSkipsUsedIDs(t *testing.T) {
	n := 0
	gen := func() string {
		n++
		return fmt.Sprint(n)
	}
	assert.Equal(t, "4", FreshID(sample(), gen))
}

func TestNewIDIsUnique(t *testing.T) {
	seen := map[string]bool{}
	for i := 0; i < 1000; i++ {
		id := NewID()
		require.False(t, seen[id], "duplicate id %s", id)
		seen[id] = true
	}
}

func ids(seq []chore) []string {
	out := make([]string, len(seq))
	for i, c := range seq {
		out[i] = c.id
	}
	return out
}
