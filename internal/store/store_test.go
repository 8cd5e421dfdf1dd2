package store

import (
	"context"
	"errors"
	"strconv"
	"testing"

	"github.com/go-playground/assert/v2"
)

type note struct {
	NoteID int64
	Title  string
}

func newNoteStore() *Store[note] {
	backend := NewMemoryBackend(func(n note, id int64) note {
		n.NoteID = id
		return n
	})
	schema := NewSchema[note]("Note").
		Int("NoteID", func(n note) int64 { return n.NoteID }).
		String("Title", func(n note) string { return n.Title })
	return New(backend, schema)
}

func TestAddThenGetOne(t *testing.T) {
	ctx := context.Background()
	s := newNoteStore()

	added, err := s.Add(ctx, note{Title: "first"})
	assert.Equal(t, nil, err)
	assert.NotEqual(t, int64(0), added.NoteID)

	got, err := s.GetOne(ctx, "NoteID", strconv.FormatInt(added.NoteID, 10))
	assert.Equal(t, nil, err)
	assert.Equal(t, "first", got.Title)
}

func TestGetOne_NotFound(t *testing.T) {
	ctx := context.Background()
	s := newNoteStore()

	_, err := s.GetOne(ctx, "Title", "missing")
	assert.Equal(t, true, errors.Is(err, ErrNotFound))
}

func TestDeleteThenGetOne_NotFound(t *testing.T) {
	ctx := context.Background()
	s := newNoteStore()

	added, _ := s.Add(ctx, note{Title: "doomed"})
	key := strconv.FormatInt(added.NoteID, 10)

	removed, err := s.Delete(ctx, key)
	assert.Equal(t, nil, err)
	assert.Equal(t, "doomed", removed.Title)

	_, err = s.GetOne(ctx, "NoteID", key)
	assert.Equal(t, true, errors.Is(err, ErrNotFound))
}

func TestGetMany_EmptyIsError(t *testing.T) {
	ctx := context.Background()
	s := newNoteStore()

	_, err := s.GetMany(ctx, "Title", "nothing")
	assert.Equal(t, true, errors.Is(err, ErrNoItemsAvailable))

	// An unfiltered read of an empty table is an error too.
	_, err = s.GetMany(ctx, "", "")
	assert.Equal(t, true, errors.Is(err, ErrNoItemsAvailable))
}

func TestGetMany_EmptyFilterReturnsEverything(t *testing.T) {
	ctx := context.Background()
	s := newNoteStore()

	s.Add(ctx, note{Title: "a"})
	s.Add(ctx, note{Title: "b"})

	all, err := s.GetMany(ctx, "", "")
	assert.Equal(t, nil, err)
	assert.Equal(t, 2, len(all))
}

func TestUpdate(t *testing.T) {
	ctx := context.Background()
	s := newNoteStore()

	added, _ := s.Add(ctx, note{Title: "before"})
	key := strconv.FormatInt(added.NoteID, 10)

	added.Title = "after"
	updated, err := s.Update(ctx, added, key)
	assert.Equal(t, nil, err)
	assert.Equal(t, "after", updated.Title)

	got, _ := s.GetOne(ctx, "NoteID", key)
	assert.Equal(t, "after", got.Title)
}

func TestUpdate_MissingRow(t *testing.T) {
	ctx := context.Background()
	s := newNoteStore()

	_, err := s.Update(ctx, note{Title: "x"}, "42")
	assert.Equal(t, true, errors.Is(err, ErrNotFound))
}

func TestUpdate_NonNumericKey(t *testing.T) {
	ctx := context.Background()
	s := newNoteStore()

	_, err := s.Update(ctx, note{}, "abc")
	assert.Equal(t, true, errors.Is(err, ErrInvalidArgument))

	_, err = s.Delete(ctx, "abc")
	assert.Equal(t, true, errors.Is(err, ErrInvalidArgument))
}
