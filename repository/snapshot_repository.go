package repository

import "mortgage-engine/domain"

// SnapshotRepository stores whole request+result snapshots verbatim.
// The engine imposes no schema beyond JSON-serializability.
type SnapshotRepository interface {
	Save(req domain.AffordabilityRequest, result domain.EngineResult) error
}
