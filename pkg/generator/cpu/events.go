package cpu

import (
	"github.com/Amr-9/vanityhunt/pkg/generator"
)

type eventKind int

const (
	progressEvent eventKind = iota // a batch finished without a match
	foundEvent                     // a worker matched and exited
	failedEvent                    // a worker's generator failed and it exited
)

// event is the only message workers send to the coordinator.
type event struct {
	kind      eventKind
	worker    int
	attempts  uint64 // attempts not yet reported by this worker
	local     uint64 // worker's own running total, set on found
	candidate generator.Candidate
	err       error
}
