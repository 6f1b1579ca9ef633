package export

import (
	"context"

	"github.com/google/uuid"
)

type Service struct {
	repo Repository
}

func NewService(repo Repository) *Service {
	return &Service{repo: repo}
}

// Request enqueues a snapshot of the user's buying list.
func (s *Service) Request(ctx context.Context, userID string) (*Export, error) {
	e := &Export{UserID: userID, Status: StatusPending}
	if err := s.repo.Create(ctx, e); err != nil {
		return nil, err
	}
	return e, nil
}

// Get returns an export owned by userID. Exports of other users are
// reported as not found.
func (s *Service) Get(ctx context.Context, userID, id string) (*Export, error) {
	if _, err := uuid.Parse(id); err != nil {
		return nil, ErrNotFound
	}

	e, err := s.repo.Get(ctx, id)
	if err != nil {
		return nil, err
	}
	if e.UserID != userID {
		return nil, ErrNotFound
	}
	return e, nil
}
