package appconfig

import (
	"context"
	"strings"

	"grocerylist/internal/buying"
)

// KeyUnknownZoneLabel overrides the name of the group holding ingredients
// without a zone.
const KeyUnknownZoneLabel = "unknown_zone_label"

type Service struct {
	repo Repository
}

func NewService(repo Repository) *Service {
	return &Service{repo: repo}
}

func (s *Service) List(ctx context.Context) ([]Entry, error) {
	return s.repo.List(ctx)
}

// Value returns the value stored under name, or fallback when the key is
// missing or blank.
func (s *Service) Value(ctx context.Context, name, fallback string) (string, error) {
	entries, err := s.repo.List(ctx)
	if err != nil {
		return fallback, err
	}
	for _, e := range entries {
		if e.Name == name && e.Value != "" {
			return e.Value, nil
		}
	}
	return fallback, nil
}

// UnknownZoneLabel resolves the label of the zone-less group: override when
// non-blank, then the app_config entry, then buying.DefaultUnknownZoneLabel.
// On a read error the default is returned along with the error.
func (s *Service) UnknownZoneLabel(ctx context.Context, override string) (string, error) {
	if label := strings.TrimSpace(override); label != "" {
		return label, nil
	}
	return s.Value(ctx, KeyUnknownZoneLabel, buying.DefaultUnknownZoneLabel)
}
