package export

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log"
	"time"

	"grocerylist/internal/buying"
)

// BuyingLister builds the grouped buying list of a user.
type BuyingLister interface {
	BuyingList(ctx context.Context, userID string, includeOptional bool) ([]buying.Group, error)
}

type Storage interface {
	Upload(ctx context.Context, key string, body io.Reader, contentType string) (string, error)
}

type Worker struct {
	repo    Repository
	lists   BuyingLister
	storage Storage
	now     func() time.Time
}

func NewWorker(repo Repository, lists BuyingLister, storage Storage) *Worker {
	return &Worker{
		repo:    repo,
		lists:   lists,
		storage: storage,
		now:     time.Now,
	}
}

func ObjectKey(userID, exportID string) string {
	return fmt.Sprintf("exports/%s/%s.json", userID, exportID)
}

// ProcessOne claims and publishes a single pending export. It reports
// whether an export was claimed. A failed export stays FAILED.
func (w *Worker) ProcessOne(ctx context.Context) (bool, error) {
	e, err := w.repo.ClaimPending(ctx)
	if err != nil {
		return false, fmt.Errorf("claim pending export: %w", err)
	}
	if e == nil {
		return false, nil
	}

	url, err := w.publish(ctx, e)
	if err != nil {
		if markErr := w.repo.MarkFailed(ctx, e.ID, err.Error()); markErr != nil {
			log.Printf("[export.Worker] mark %s failed: %v", e.ID, markErr)
		}
		return true, fmt.Errorf("export %s: %w", e.ID, err)
	}

	if err := w.repo.MarkDone(ctx, e.ID, url); err != nil {
		return true, fmt.Errorf("mark export %s done: %w", e.ID, err)
	}

	log.Printf("[export.Worker] export %s published at %s", e.ID, url)
	return true, nil
}

func (w *Worker) publish(ctx context.Context, e *Export) (string, error) {
	groups, err := w.lists.BuyingList(ctx, e.UserID, true)
	if err != nil {
		return "", fmt.Errorf("build buying list: %w", err)
	}

	body, err := json.Marshal(Snapshot{
		ExportID:    e.ID,
		UserID:      e.UserID,
		GeneratedAt: w.now().UTC(),
		Groups:      groups,
	})
	if err != nil {
		return "", fmt.Errorf("encode snapshot: %w", err)
	}

	return w.storage.Upload(ctx, ObjectKey(e.UserID, e.ID), bytes.NewReader(body), "application/json")
}

// Run polls for pending exports every interval until ctx is cancelled.
func (w *Worker) Run(ctx context.Context, interval time.Duration) {
	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			log.Println("[export.Worker] stopping")
			return
		case <-ticker.C:
			if _, err := w.ProcessOne(ctx); err != nil {
				log.Printf("[export.Worker] %v", err)
			}
		}
	}
}
