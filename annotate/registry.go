package annotate

import (
	"sync"

	"github.com/google/uuid"

	"github.com/tsawler/wordfields/internal/diag"
	"github.com/tsawler/wordfields/uia"
)

// UnsupportedTypeID is the sentinel id used for every custom annotation
// type on hosts that lack the registration capability.
const UnsupportedTypeID = 0

// Custom annotation type GUIDs shared between the UIA server application
// and this client. Both sides must register the same GUID to agree on a
// numeric id for the session.
var (
	TypeDraftComment    = uuid.MustParse("1e73ecb5-4c33-45ed-bc5b-23a3bd762f0f")
	TypeResolvedComment = uuid.MustParse("7e4a58e9-44e9-4a28-a453-0c0c792308b2")
	TypeBookmark        = uuid.MustParse("b33aee37-4aff-4e57-9c35-f23fd1f67b0a")
)

// TypeRegistry resolves custom annotation type GUIDs to numeric ids and
// caches the result for the lifetime of the process. Registration with the
// platform is idempotent and stable per session, so entries are never
// invalidated. On hosts without the capability every id resolves to the
// UnsupportedTypeID sentinel and the platform is never called.
type TypeRegistry struct {
	mu        sync.Mutex
	registrar uia.Registrar
	ids       map[uuid.UUID]int
}

// NewTypeRegistry creates a registry backed by the given platform service.
// A nil registrar marks the capability absent.
func NewTypeRegistry(registrar uia.Registrar) *TypeRegistry {
	return &TypeRegistry{
		registrar: registrar,
		ids:       make(map[uuid.UUID]int),
	}
}

// ID returns the annotation type id registered for guid, resolving and
// caching it on first use.
func (r *TypeRegistry) ID(guid uuid.UUID) int {
	r.mu.Lock()
	defer r.mu.Unlock()
	if id, ok := r.ids[guid]; ok {
		return id
	}
	id := UnsupportedTypeID
	if r.registrar != nil {
		registered, err := r.registrar.RegisterAnnotationType(guid)
		if err != nil {
			lg := diag.Logger()
			lg.Debug().Err(err).Str("guid", guid.String()).
				Msg("custom annotation type registration failed")
		} else {
			id = registered
		}
	}
	r.ids[guid] = id
	return id
}

// Process-wide registry, initialized on first use. The host glue installs
// the platform registrar once at startup; before that, or on hosts without
// the capability, lookups return the sentinel.
var (
	globalMu        sync.Mutex
	globalRegistrar uia.Registrar
	globalRegistry  *TypeRegistry
)

// SetRegistrar installs the platform registration service for the global
// registry. It must be called before the first Registry call to take
// effect; later calls are ignored.
func SetRegistrar(registrar uia.Registrar) {
	globalMu.Lock()
	defer globalMu.Unlock()
	if globalRegistry == nil {
		globalRegistrar = registrar
	}
}

// Registry returns the process-wide type registry.
func Registry() *TypeRegistry {
	globalMu.Lock()
	defer globalMu.Unlock()
	if globalRegistry == nil {
		globalRegistry = NewTypeRegistry(globalRegistrar)
	}
	return globalRegistry
}
