package contracts

import "context"

// SnapshotStorage archives immutable JSON snapshots of published
// questionnaire definitions.
type SnapshotStorage interface {
	ArchiveSnapshot(ctx context.Context, questionnaireID string, version int, payload []byte) (objectName string, err error)
}
