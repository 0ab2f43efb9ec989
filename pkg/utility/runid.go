package utility

import (
	"sync"

	"github.com/google/uuid"
)

type RunID = uuid.UUID

var (
	runID     RunID
	runIDOnce sync.Once
)

// GetRunID returns the process-wide run identifier, created on first use.
func GetRunID() RunID {
	runIDOnce.Do(func() {
		runID = uuid.Must(uuid.NewV7())
	})
	return runID
}
