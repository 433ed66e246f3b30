package web

import (
	"encoding/json"
	"net/http"

	"github.com/google/uuid"

	"github.com/MCH-512/crewsphere-sub000/internal/ftl"
	"github.com/MCH-512/crewsphere-sub000/internal/render"
)

const maxBodyBytes = 16 << 10

type calculationResponse struct {
	CalculationID string `json:"calculation_id"`
	render.View
}

func (h *Handler) apiCalculate(w http.ResponseWriter, r *http.Request) {
	var req ftl.Request
	dec := json.NewDecoder(http.MaxBytesReader(w, r.Body, maxBodyBytes))
	dec.DisallowUnknownFields()
	if err := dec.Decode(&req); err != nil {
		h.metrics.ObserveCalculation("", ftl.DutyResult{}, err)
		writeError(w, http.StatusBadRequest, "invalid JSON body: "+err.Error())
		return
	}

	in, res, err := ftl.Calculate(req)
	h.metrics.ObserveCalculation(stateLabel(in, err), res, err)
	if err != nil {
		if ftl.IsInputError(err) {
			writeError(w, http.StatusBadRequest, err.Error())
			return
		}
		h.logger.Error().Err(err).Msg("calculation failed")
		writeError(w, http.StatusInternalServerError, "internal error")
		return
	}

	id := uuid.NewString()
	setCalcID(r.Context(), id)
	h.logger.Debug().
		Str("calculation_id", id).
		Str("acclimatisation", in.Acclimatisation.String()).
		Int("sectors", in.Sectors).
		Bool("wocl_infringed", res.WOCLInfringed).
		Int("final_fdp", int(res.FinalFDP)).
		Msg("duty limit calculated")

	writeJSON(w, http.StatusOK, calculationResponse{CalculationID: id, View: render.NewView(in, res)})
}

func (h *Handler) apiTables(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]any{"tables": render.TableViews()})
}

func (h *Handler) healthz(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{"status": "ok", "version": h.version})
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

func writeError(w http.ResponseWriter, status int, msg string) {
	writeJSON(w, status, map[string]string{"error": msg})
}
