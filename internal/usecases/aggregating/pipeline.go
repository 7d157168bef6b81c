package aggregating

import (
	"context"
	"sync"

	"github.com/sirupsen/logrus"

	"github.com/vfg2006/econ-pulse-api/internal/calc"
	"github.com/vfg2006/econ-pulse-api/internal/domain"
)

// Pipeline fetches a dashboard's series concurrently and filters them.
type Pipeline struct {
	sources map[Source]SeriesFetcher
}

func NewPipeline(fred, eia SeriesFetcher) *Pipeline {
	return &Pipeline{
		sources: map[Source]SeriesFetcher{
			SourceFRED: fred,
			SourceEIA:  eia,
		},
	}
}

// Snapshot holds the filtered series of one collection, newest first.
type Snapshot struct {
	series map[string][]domain.Point
	specs  map[string]SeriesSpec
}

// Series returns the points collected under key. Unknown keys are empty.
func (s Snapshot) Series(key string) []domain.Point {
	return s.series[key]
}

func (s Snapshot) Spec(key string) SeriesSpec {
	return s.specs[key]
}

// Collect issues every fetch at once and waits for all of them. A failed
// series is simply empty.
func (p *Pipeline) Collect(ctx context.Context, specs []SeriesSpec) Snapshot {
	results := make([][]domain.Point, len(specs))

	var wg sync.WaitGroup
	for i, spec := range specs {
		fetcher, ok := p.sources[spec.Source]
		if !ok || fetcher == nil {
			logrus.WithFields(logrus.Fields{
				"series_key": spec.Key,
				"source":     spec.Source,
			}).Warn("aggregating: no fetcher for source, series left empty")
			continue
		}

		wg.Add(1)
		go func(i int, spec SeriesSpec, fetcher SeriesFetcher) {
			defer wg.Done()
			defer func() {
				if r := recover(); r != nil {
					results[i] = nil
					logrus.WithFields(logrus.Fields{
						"series_key": spec.Key,
						"panic":      r,
					}).Error("aggregating: fetcher panicked, series left empty")
				}
			}()
			results[i] = calc.Filter(fetcher.FetchSeries(ctx, spec.ID, spec.Limit))
		}(i, spec, fetcher)
	}
	wg.Wait()

	snapshot := Snapshot{
		series: make(map[string][]domain.Point, len(specs)),
		specs:  make(map[string]SeriesSpec, len(specs)),
	}
	for i, spec := range specs {
		snapshot.series[spec.Key] = results[i]
		snapshot.specs[spec.Key] = spec
	}
	return snapshot
}
