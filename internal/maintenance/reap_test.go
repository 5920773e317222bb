package maintenance

import (
	"bytes"
	"context"
	"errors"
	"testing"

	"github.com/hitoshi/mireadm/internal/logger"
	"github.com/hitoshi/mireadm/internal/repository"
)

type mockReaper struct {
	reapOrphansFn func(ctx context.Context) (*repository.ReapResult, error)
}

func (m *mockReaper) ReapOrphans(ctx context.Context) (*repository.ReapResult, error) {
	return m.reapOrphansFn(ctx)
}

func TestReapJob_Run_ReturnsCounts(t *testing.T) {
	reaper := &mockReaper{
		reapOrphansFn: func(ctx context.Context) (*repository.ReapResult, error) {
			return &repository.ReapResult{Feeds: 2, Posts: 10, PostReads: 4}, nil
		},
	}
	job := NewReapJob(reaper, logger.Setup(&bytes.Buffer{}))

	result, err := job.Run(context.Background())
	if err != nil {
		t.Fatalf("Run() error = %v", err)
	}
	if result.Feeds != 2 || result.Posts != 10 || result.PostReads != 4 {
		t.Errorf("result = %+v, want 2/10/4", result)
	}
}

func TestReapJob_Run_PropagatesError(t *testing.T) {
	wantErr := errors.New("db is locked")
	reaper := &mockReaper{
		reapOrphansFn: func(ctx context.Context) (*repository.ReapResult, error) {
			return nil, wantErr
		},
	}
	job := NewReapJob(reaper, logger.Setup(&bytes.Buffer{}))

	if _, err := job.Run(context.Background()); !errors.Is(err, wantErr) {
		t.Errorf("error = %v, want wrapped %v", err, wantErr)
	}
}
