package service

import (
	"context"
	"errors"
	"testing"

	"newsapp/internal/model"
	"newsapp/internal/repository"
	"newsapp/internal/store"

	"github.com/go-playground/assert/v2"
)

func newPreferenceService() *PreferenceService {
	prefs := store.New(store.NewMemoryBackend(func(p model.UserPreference, id int64) model.UserPreference {
		p.UserPreferenceID = id
		return p
	}), repository.UserPreferenceSchema())
	return NewPreferenceService(prefs)
}

func TestAddPreferences_ReplacesExistingSet(t *testing.T) {
	ctx := context.Background()
	s := newPreferenceService()

	_, err := s.AddPreferences(ctx, 3, map[int64]int{1: 5, 2: 1})
	assert.Equal(t, nil, err)

	saved, err := s.AddPreferences(ctx, 3, map[int64]int{4: 2})
	assert.Equal(t, nil, err)
	assert.Equal(t, 1, len(saved))

	got, err := s.UserPreferences(ctx, 3)
	assert.Equal(t, nil, err)
	assert.Equal(t, 1, len(got))
	assert.Equal(t, int64(4), got[0].CategoryID)
	assert.Equal(t, 2, got[0].Preference)
}

func TestAddPreferences_LeavesOtherUsersAlone(t *testing.T) {
	ctx := context.Background()
	s := newPreferenceService()

	s.AddPreferences(ctx, 3, map[int64]int{1: 5})
	s.AddPreferences(ctx, 4, map[int64]int{2: 1})

	got, err := s.UserPreferences(ctx, 3)
	assert.Equal(t, nil, err)
	assert.Equal(t, 1, len(got))
	assert.Equal(t, int64(1), got[0].CategoryID)
}

func TestUserPreferences_EmptyIsError(t *testing.T) {
	s := newPreferenceService()

	_, err := s.UserPreferences(context.Background(), 42)
	assert.Equal(t, true, errors.Is(err, store.ErrNoItemsAvailable))
}
