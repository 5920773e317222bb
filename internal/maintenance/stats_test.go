package maintenance

import (
	"bytes"
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/hitoshi/mireadm/internal/model"
)

type mockStatsFetcher struct {
	siteStatsFn func(ctx context.Context) (*model.SiteStats, error)
}

func (m *mockStatsFetcher) SiteStats(ctx context.Context) (*model.SiteStats, error) {
	return m.siteStatsFn(ctx)
}

func TestStatsReporter_Report(t *testing.T) {
	fetcher := &mockStatsFetcher{
		siteStatsFn: func(ctx context.Context) (*model.SiteStats, error) {
			return &model.SiteStats{
				TotalUsers:     12,
				NumUniqueFeeds: 345,
				NumPosts:       6789,
				NumReadPosts:   1000,
			}, nil
		},
	}
	reporter := NewStatsReporter(fetcher)

	var out bytes.Buffer
	if err := reporter.Report(context.Background(), &out); err != nil {
		t.Fatalf("Report() error = %v", err)
	}

	for _, want := range []string{"12", "345", "6789", "1000"} {
		if !strings.Contains(out.String(), want) {
			t.Errorf("output missing %q: %q", want, out.String())
		}
	}
}

func TestStatsReporter_Report_PropagatesError(t *testing.T) {
	wantErr := errors.New("db is locked")
	fetcher := &mockStatsFetcher{
		siteStatsFn: func(ctx context.Context) (*model.SiteStats, error) {
			return nil, wantErr
		},
	}
	reporter := NewStatsReporter(fetcher)

	var out bytes.Buffer
	if err := reporter.Report(context.Background(), &out); !errors.Is(err, wantErr) {
		t.Errorf("error = %v, want wrapped %v", err, wantErr)
	}
}
