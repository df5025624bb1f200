package trainingdays

import (
	"context"
	"errors"
)

var (
	ErrTrainingDayNotFound = errors.New("training day not found")
	ErrTrainingDayExists   = errors.New("training day already exists")
)

var _ Repo = (*PsqlRepo)(nil)
var _ Repo = (*repoMock)(nil)

// Repo is the training log store: one record per calendar date.
type Repo interface {
	Get(ctx context.Context, date Date) (*TrainingDay, error)
	// GetLatest returns the most recent record by date, completed or not.
	GetLatest(ctx context.Context) (*TrainingDay, error)
	// GetLatestCompleted returns the most recent record with completed = true.
	GetLatestCompleted(ctx context.Context) (*TrainingDay, error)
	Insert(ctx context.Context, day TrainingDay) (*TrainingDay, error)
	SetCompleted(ctx context.Context, date Date) error
	ListAll(ctx context.Context) ([]TrainingDay, error)
	// InTx runs fn against a repo view bound to a single transaction,
	// so that a backfill-and-resolve sequence is one atomic
	// read-modify-write against the store.
	InTx(ctx context.Context, fn func(r Repo) error) error
}
