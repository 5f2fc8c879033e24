package api

import (
	"net/http"
	"sort"

	"github.com/MikeSquared-Agency/reflectline/internal/journal"
)

// listJournals returns every reflection, most recent first.
func (s *Server) listJournals(w http.ResponseWriter, r *http.Request) {
	list, err := s.store.List(r.Context())
	if err != nil {
		s.logger.Error("failed to list reflections", "error", err)
		writeJSON(w, http.StatusInternalServerError, map[string]string{"error": "failed to list reflections"})
		return
	}

	if list == nil {
		list = []journal.Reflection{}
	}
	sort.SliceStable(list, func(i, j int) bool {
		return list[i].Timestamp.After(list[j].Timestamp)
	})

	writeJSON(w, http.StatusOK, list)
}
