package rest

import (
	"net/http"

	"github.com/google/uuid"

	"github.com/xxxdendexxx/10x-cards/pkg/ctxutil"
)

// ownerID returns the authenticated user id. When it is missing the caller
// gets 401 and ok is false.
func ownerID(w http.ResponseWriter, r *http.Request) (uuid.UUID, bool) {
	id, ok := ctxutil.UserIDFromCtx(r.Context())
	if !ok {
		writeError(w, http.StatusUnauthorized, "Unauthorized")
		return uuid.Nil, false
	}
	return id, true
}
