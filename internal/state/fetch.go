package state

import (
	"context"
	"errors"
	"fmt"

	"github.com/sirupsen/logrus"

	"github.com/five82/liftoff/internal/launches"
)

// Source reads the full launch dataset. *spacex.Client implements it.
type Source interface {
	FetchLaunches(ctx context.Context) ([]launches.Launch, error)
}

// FetchFailure is the only error the view pipeline surfaces: the dataset
// could not be retrieved or decoded.
type FetchFailure struct {
	Err error
}

func (e *FetchFailure) Error() string {
	return fmt.Sprintf("fetch launches: %v", e.Err)
}

func (e *FetchFailure) Unwrap() error {
	return e.Err
}

// LoadResult is the outcome of the single dataset read.
type LoadResult struct {
	Records   []launches.Launch
	Err       error // *FetchFailure when non-nil
	Discarded bool  // the requester went away before the read finished
}

// Fetch performs the one outbound read. Failures are logged here and
// returned as a *FetchFailure; there is no retry.
func Fetch(ctx context.Context, src Source, log logrus.FieldLogger) LoadResult {
	if log == nil {
		log = logrus.StandardLogger()
	}
	if src == nil {
		err := &FetchFailure{Err: errors.New("no launch source configured")}
		log.WithError(err).Error("launch fetch failed")
		return LoadResult{Err: err}
	}

	records, err := src.FetchLaunches(ctx)
	if ctx.Err() != nil {
		log.WithError(ctx.Err()).Debug("launch fetch finished after shutdown; discarding")
		return LoadResult{Discarded: true}
	}
	if err != nil {
		failure := &FetchFailure{Err: err}
		log.WithError(failure).Error("launch fetch failed")
		return LoadResult{Err: failure}
	}
	log.WithField("count", len(records)).Info("launches loaded")
	return LoadResult{Records: records}
}
