package services

import (
	"context"
	"errors"
	"sync"

	"go.uber.org/zap"

	"matsal-partner-api/datasource"
	"matsal-partner-api/entity"
)

// ErrNotLoaded is returned when a profile mutation arrives before the
// singleton has been loaded.
var ErrNotLoaded = errors.New("restaurant profile not loaded")

// RestaurantPatch carries a partial profile update; nil fields stay
// untouched. Rating and review count are platform-owned and cannot be
// patched from the panel.
type RestaurantPatch struct {
	Name           *string                                `json:"name"`
	Description    *string                                `json:"description"`
	Address        *string                                `json:"address"`
	Phone          *string                                `json:"phone"`
	CoverImage     *string                                `json:"coverImage"`
	Logo           *string                                `json:"logo"`
	IsOpen         *bool                                  `json:"isOpen"`
	WorkingHours   *map[entity.WeekDay]entity.DaySchedule `json:"workingHours"`
	DeliveryTime   *string                                `json:"deliveryTime"`
	MinOrderAmount *int64                                 `json:"minOrderAmount"`
	CuisineTypes   *[]string                              `json:"cuisineTypes"`
}

// RestaurantStore owns the single profile record. Loading and saving are
// tracked separately so a caller can tell a fetch from a persist.
type RestaurantStore struct {
	source datasource.RestaurantSource
	log    *zap.Logger

	mu      sync.RWMutex
	profile *entity.RestaurantProfile
	loading bool
	saving  bool
}

func NewRestaurantStore(source datasource.RestaurantSource, log *zap.Logger) *RestaurantStore {
	return &RestaurantStore{source: source, log: log}
}

func (s *RestaurantStore) Load(ctx context.Context) error {
	s.setFlag(&s.loading, true)
	defer s.setFlag(&s.loading, false)

	profile, err := s.source.LoadRestaurant(ctx)
	if err != nil {
		return err
	}

	s.mu.Lock()
	s.profile = profile
	s.mu.Unlock()

	s.log.Info("restaurant profile loaded", zap.String("id", profile.ID), zap.String("name", profile.Name))
	return nil
}

func (s *RestaurantStore) setFlag(flag *bool, v bool) {
	s.mu.Lock()
	*flag = v
	s.mu.Unlock()
}

func (s *RestaurantStore) Loading() bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.loading
}

func (s *RestaurantStore) Saving() bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.saving
}

// Profile returns a copy of the current record, false if none loaded.
func (s *RestaurantStore) Profile() (entity.RestaurantProfile, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if s.profile == nil {
		return entity.RestaurantProfile{}, false
	}
	return cloneProfile(s.profile), true
}

// Update merges the patch, persists through the source, then commits to
// memory. The round-trip completes before the caller sees new state.
func (s *RestaurantStore) Update(ctx context.Context, patch RestaurantPatch) (entity.RestaurantProfile, error) {
	s.mu.RLock()
	if s.profile == nil {
		s.mu.RUnlock()
		return entity.RestaurantProfile{}, ErrNotLoaded
	}
	merged := cloneProfile(s.profile)
	s.mu.RUnlock()

	applyPatch(&merged, patch)

	s.setFlag(&s.saving, true)
	defer s.setFlag(&s.saving, false)

	if err := s.source.SaveRestaurant(ctx, &merged); err != nil {
		return entity.RestaurantProfile{}, err
	}

	s.mu.Lock()
	committed := cloneProfile(&merged)
	s.profile = &committed
	s.mu.Unlock()

	return merged, nil
}

// ToggleOpen flips the operational switch through Update.
func (s *RestaurantStore) ToggleOpen(ctx context.Context) (entity.RestaurantProfile, error) {
	s.mu.RLock()
	if s.profile == nil {
		s.mu.RUnlock()
		return entity.RestaurantProfile{}, ErrNotLoaded
	}
	next := !s.profile.IsOpen
	s.mu.RUnlock()

	return s.Update(ctx, RestaurantPatch{IsOpen: &next})
}

func applyPatch(p *entity.RestaurantProfile, patch RestaurantPatch) {
	if patch.Name != nil {
		p.Name = *patch.Name
	}
	if patch.Description != nil {
		p.Description = *patch.Description
	}
	if patch.Address != nil {
		p.Address = *patch.Address
	}
	if patch.Phone != nil {
		p.Phone = *patch.Phone
	}
	if patch.CoverImage != nil {
		p.CoverImage = *patch.CoverImage
	}
	if patch.Logo != nil {
		p.Logo = *patch.Logo
	}
	if patch.IsOpen != nil {
		p.IsOpen = *patch.IsOpen
	}
	if patch.WorkingHours != nil {
		p.WorkingHours = *patch.WorkingHours
	}
	if patch.DeliveryTime != nil {
		p.DeliveryTime = *patch.DeliveryTime
	}
	if patch.MinOrderAmount != nil {
		p.MinOrderAmount = *patch.MinOrderAmount
	}
	if patch.CuisineTypes != nil {
		p.CuisineTypes = *patch.CuisineTypes
	}
}

func cloneProfile(p *entity.RestaurantProfile) entity.RestaurantProfile {
	out := *p
	if p.WorkingHours != nil {
		out.WorkingHours = make(map[entity.WeekDay]entity.DaySchedule, len(p.WorkingHours))
		for k, v := range p.WorkingHours {
			out.WorkingHours[k] = v
		}
	}
	if p.CuisineTypes != nil {
		out.CuisineTypes = append([]string(nil), p.CuisineTypes...)
	}
	return out
}
