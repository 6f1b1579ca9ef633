package appconfig

import "context"

type Repository interface {
	List(ctx context.Context) ([]Entry, error)
}
