package repository

import (
	"time"

	"github.com/google/uuid"

	"mortgage-engine/domain"
)

type Snapshot struct {
	ID        string
	Request   domain.AffordabilityRequest
	Result    domain.EngineResult
	CreatedAt time.Time
}

// SnapshotRepositoryMemory is an in-memory implementation of
// SnapshotRepository.
type SnapshotRepositoryMemory struct {
	data []Snapshot
}

// NewSnapshotRepositoryMemory creates a new in-memory snapshot repository.
func NewSnapshotRepositoryMemory() *SnapshotRepositoryMemory {
	return &SnapshotRepositoryMemory{
		data: []Snapshot{},
	}
}

// Save stores the snapshot in memory.
func (r *SnapshotRepositoryMemory) Save(
	req domain.AffordabilityRequest,
	result domain.EngineResult,
) error {
	r.data = append(r.data, Snapshot{
		ID:        uuid.NewString(),
		Request:   req,
		Result:    result,
		CreatedAt: time.Now(),
	})
	return nil
}
