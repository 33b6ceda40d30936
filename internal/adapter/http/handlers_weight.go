package adapthttp

import (
	"net/http"
	"strconv"
	"strings"
	"time"

	"weighttracker/internal/apperror"
	"weighttracker/internal/domain"
)

// dateLayout matches the calendar dates the stock client writes.
const dateLayout = "Jan 02, 2006"

type weightRequest struct {
	// Weight arrives as the raw text the user typed; parsing it is the
	// caller layer's job, not the core's.
	Weight string `json:"weight"`
	Date   string `json:"date"`
}

func parseWeight(raw string) (float64, error) {
	v, err := strconv.ParseFloat(strings.TrimSpace(raw), 64)
	if err != nil {
		return 0, apperror.NewValidation("please enter a valid weight")
	}
	return v, nil
}

func (s *Server) handleWeights(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	userID := userIDFrom(r)

	switch r.Method {
	case http.MethodGet:
		items, err := s.ledger.List(ctx, userID)
		if err != nil {
			writeError(w, err)
			return
		}
		writeJSON(w, http.StatusOK, map[string]any{"items": items})

	case http.MethodPost:
		var req weightRequest
		if err := parseJSON(r, &req); err != nil {
			writeError(w, err)
			return
		}
		value, err := parseWeight(req.Weight)
		if err != nil {
			writeError(w, err)
			return
		}
		date := req.Date
		if date == "" {
			date = time.Now().Format(dateLayout)
		}
		entry, attempt, err := s.ledger.Record(ctx, userID, value, date)
		if err != nil {
			writeError(w, err)
			return
		}
		writeJSON(w, http.StatusCreated, map[string]any{
			"entry":       entry,
			"goalReached": attempt != nil,
		})

	default:
		w.WriteHeader(http.StatusMethodNotAllowed)
	}
}

func (s *Server) handleWeightByID(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	idText := strings.TrimPrefix(r.URL.Path, "/weights/")
	entryID, err := strconv.ParseInt(idText, 10, 64)
	if err != nil {
		writeError(w, apperror.NewValidation("invalid entry id"))
		return
	}

	switch r.Method {
	case http.MethodPut:
		var req weightRequest
		if err := parseJSON(r, &req); err != nil {
			writeError(w, err)
			return
		}
		value, err := parseWeight(req.Weight)
		if err != nil {
			writeError(w, err)
			return
		}
		if err := s.ledger.Update(ctx, entryID, value, req.Date); err != nil {
			writeError(w, err)
			return
		}
		writeJSON(w, http.StatusOK, map[string]any{"ok": true})

	case http.MethodDelete:
		if err := s.ledger.Delete(ctx, entryID); err != nil {
			writeError(w, err)
			return
		}
		writeJSON(w, http.StatusOK, map[string]any{"ok": true})

	default:
		w.WriteHeader(http.StatusMethodNotAllowed)
	}
}

func (s *Server) handleGoal(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	userID := userIDFrom(r)

	switch r.Method {
	case http.MethodGet:
		goal, err := s.accounts.GetGoalWeight(ctx, userID)
		if err != nil {
			writeError(w, err)
			return
		}
		writeJSON(w, http.StatusOK, map[string]any{
			"goalWeight": goal,
			"set":        goal != domain.GoalWeightUnset,
		})

	case http.MethodPut:
		var req struct {
			GoalWeight string `json:"goalWeight"`
		}
		if err := parseJSON(r, &req); err != nil {
			writeError(w, err)
			return
		}
		value, err := parseWeight(req.GoalWeight)
		if err != nil {
			writeError(w, apperror.NewValidation("please enter a valid goal weight"))
			return
		}
		if err := s.accounts.SetGoalWeight(ctx, userID, value); err != nil {
			writeError(w, err)
			return
		}
		writeJSON(w, http.StatusOK, map[string]any{"goalWeight": value})

	default:
		w.WriteHeader(http.StatusMethodNotAllowed)
	}
}

// handleAccount implements the administrative account removal, cascading the
// user's ledger first.
func (s *Server) handleAccount(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodDelete {
		w.WriteHeader(http.StatusMethodNotAllowed)
		return
	}

	removed, err := s.accounts.DeleteAccount(r.Context(), userIDFrom(r))
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]any{"removedEntries": removed})
}
