package uia

import "github.com/google/uuid"

// Registrar is the platform service that resolves a custom annotation type
// GUID to a numeric annotation type id. Registration is idempotent within
// the host OS session: any process may register first, and later callers
// receive the same id for the same GUID. The service only exists on
// sufficiently new host versions; on older hosts no Registrar is available
// and callers must treat every custom annotation type id as 0.
type Registrar interface {
	RegisterAnnotationType(guid uuid.UUID) (int, error)
}
