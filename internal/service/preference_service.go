package service

import (
	"context"
	"errors"
	"fmt"
	"strconv"

	"newsapp/internal/model"
	"newsapp/internal/store"
)

// PreferenceService manages per-user category preferences. AddPreferences
// replaces the user's whole set in one call, as the client submits the full
// picker state every time.
type PreferenceService struct {
	prefs *store.Store[model.UserPreference]
}

func NewPreferenceService(prefs *store.Store[model.UserPreference]) *PreferenceService {
	return &PreferenceService{prefs: prefs}
}

func (s *PreferenceService) AddPreferences(ctx context.Context, userID int64, weights map[int64]int) ([]model.UserPreference, error) {
	key := strconv.FormatInt(userID, 10)

	existing, err := s.prefs.GetMany(ctx, "UserID", key)
	if err != nil && !errors.Is(err, store.ErrNoItemsAvailable) {
		return nil, err
	}
	for _, pref := range existing {
		if _, err := s.prefs.Delete(ctx, strconv.FormatInt(pref.UserPreferenceID, 10)); err != nil {
			return nil, err
		}
	}

	saved := make([]model.UserPreference, 0, len(weights))
	for categoryID, weight := range weights {
		pref, err := s.prefs.Add(ctx, model.UserPreference{
			UserID:     userID,
			CategoryID: categoryID,
			Preference: weight,
		})
		if err != nil {
			return nil, fmt.Errorf("preference for category %d: %w: %w", categoryID, store.ErrUnableToAddItem, err)
		}
		saved = append(saved, pref)
	}
	return saved, nil
}

// UserPreferences returns a user's stored set; empty is ErrNoItemsAvailable.
func (s *PreferenceService) UserPreferences(ctx context.Context, userID int64) ([]model.UserPreference, error) {
	return s.prefs.GetMany(ctx, "UserID", strconv.FormatInt(userID, 10))
}
