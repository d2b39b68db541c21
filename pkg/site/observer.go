package site

import "time"

// Observer receives build events. Under StrategyParallel methods are
// called from several goroutines at once.
type Observer interface {
	PhaseStarted(group string, phase Phase)
	PhaseFinished(group string, phase Phase, d time.Duration, err error)
	PageRendered(group, path string, size int)
	FileExported(path string, size int)
	BuildFinished(d time.Duration, err error)
}

// NopObserver ignores every event.
type NopObserver struct{}

func (NopObserver) PhaseStarted(string, Phase)                       {}
func (NopObserver) PhaseFinished(string, Phase, time.Duration, error) {}
func (NopObserver) PageRendered(string, string, int)                  {}
func (NopObserver) FileExported(string, int)                          {}
func (NopObserver) BuildFinished(time.Duration, error)                {}
