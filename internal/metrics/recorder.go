// Package metrics records page render and asset serving observations.
package metrics

import "time"

// Recorder must be safe for concurrent use; NoopRecorder is used when
// metrics are disabled.
type Recorder interface {
	ObserveRender(d time.Duration, ok bool)
	IncAssetRequest(status int)
	IncExport(ok bool)
}

type NoopRecorder struct{}

func (NoopRecorder) ObserveRender(time.Duration, bool) {}
func (NoopRecorder) IncAssetRequest(int)               {}
func (NoopRecorder) IncExport(bool)                    {}
