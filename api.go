package main

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/rs/zerolog/hlog"
	"github.com/rs/zerolog/log"

	"pav-dashboard/ratings"
)

// ErrorResponse is the body of every failed API call.
type ErrorResponse struct {
	Error   string `json:"error"`
	Message string `json:"message"`
	Code    int    `json:"code"`
}

type playersResponse struct {
	Options  []string `json:"options"`
	Selected []string `json:"selected"`
}

// chartHandler returns the computed figure: labels plus one bar per player in
// sorted order. Unlike the page, no cascading is applied.
func (d *dashboard) chartHandler(w http.ResponseWriter, r *http.Request) {
	sel, _, err := readSelection(r.URL.Query())
	if err != nil {
		respondError(w, r, http.StatusBadRequest, "invalid metric", err)
		return
	}

	f, err := d.render(sel)
	if err != nil {
		if errors.Is(err, ratings.ErrInvalidColumn) {
			respondError(w, r, http.StatusBadRequest, "invalid metric", err)
			return
		}
		respondError(w, r, http.StatusInternalServerError, "could not build chart", err)
		return
	}
	respondJSON(w, http.StatusOK, f)
}

// playersHandler feeds the player dropdown: the options available for the
// selected teams and the selection the dropdown resets to.
func (d *dashboard) playersHandler(w http.ResponseWriter, r *http.Request) {
	teams := teamCodes(r.URL.Query()["team"])
	respondJSON(w, http.StatusOK, playersResponse{
		Options:  ratings.PlayerOptions(d.table, teams),
		Selected: ratings.CrossFilter(d.table, teams),
	})
}

func (d *dashboard) teamsHandler(w http.ResponseWriter, r *http.Request) {
	respondJSON(w, http.StatusOK, d.teams)
}

func respondJSON(w http.ResponseWriter, status int, data any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)

	if err := json.NewEncoder(w).Encode(data); err != nil {
		log.Error().Err(err).Msg("error encoding response")
	}
}

func respondError(w http.ResponseWriter, r *http.Request, status int, message string, err error) {
	resp := ErrorResponse{
		Error:   http.StatusText(status),
		Message: message,
		Code:    status,
	}
	if err != nil {
		hlog.FromRequest(r).Warn().Err(err).Int("status", status).Msg(message)
		resp.Message = message + ": " + err.Error()
	}
	respondJSON(w, status, resp)
}
