package web

import (
	"fmt"
	"net/http"
	"net/url"
	"strconv"
	"strings"

	"github.com/MCH-512/crewsphere-sub000/internal/config"
	"github.com/MCH-512/crewsphere-sub000/internal/ftl"
	"github.com/MCH-512/crewsphere-sub000/internal/render"
)

// PageData feeds the form template. Field values are kept as typed so a
// failed submission re-renders exactly what the user entered.
type PageData struct {
	ReportTime      string
	Arrival         string
	Sectors         string
	Acclimatisation string

	MinSectors int
	MaxSectors int
	Version    string

	Error  string
	Result *render.View
	Tables []render.TableView

	// Meta description when Result is set (for link previews).
	ShareDescription string
}

func (h *Handler) newPageData() PageData {
	return PageData{
		MinSectors: ftl.MinSectors,
		MaxSectors: ftl.MaxSectors,
		Version:    h.version,
		Tables:     render.TableViews(),
	}
}

// page renders the form. With report/sectors in the query it also
// computes, so a shared URL shows the result.
func (h *Handler) page(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()
	data := h.newPageData()
	data.ReportTime = orDefault(q.Get("report"), h.defaults.ReportTime)
	data.Arrival = strings.TrimSpace(q.Get("arrival"))
	data.Sectors = orDefault(q.Get("sectors"), strconv.Itoa(h.defaults.Sectors))
	data.Acclimatisation = orDefault(q.Get("acclimatisation"), h.defaults.Acclimatisation)

	if len(q) > 0 {
		view, err := h.calculate(data)
		if err != nil {
			data.Error = err.Error()
		} else {
			data.Result = &view
			data.ShareDescription = render.ShareDescription(view)
		}
	}

	h.execute(w, http.StatusOK, data)
}

// calc validates a form post and redirects to the GET form of the same
// calculation so the URL can be shared.
func (h *Handler) calc(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseForm(); err != nil {
		http.Error(w, "bad form", http.StatusBadRequest)
		return
	}

	data := h.newPageData()
	data.ReportTime = strings.TrimSpace(r.FormValue("report"))
	data.Arrival = strings.TrimSpace(r.FormValue("arrival"))
	data.Sectors = strings.TrimSpace(r.FormValue("sectors"))
	data.Acclimatisation = strings.TrimSpace(r.FormValue("acclimatisation"))

	if data.ReportTime == "" {
		data.Error = "report time is required (HH:MM)"
		h.execute(w, http.StatusUnprocessableEntity, data)
		return
	}
	if data.Sectors == "" {
		data.Sectors = strconv.Itoa(h.defaults.Sectors)
	}
	if data.Acclimatisation == "" {
		data.Acclimatisation = h.defaults.Acclimatisation
	}

	if _, err := h.calculate(data); err != nil {
		data.Error = err.Error()
		h.execute(w, http.StatusUnprocessableEntity, data)
		return
	}

	http.Redirect(w, r, buildCalcURL(data, h.defaults), http.StatusFound)
}

func (h *Handler) calculate(data PageData) (render.View, error) {
	sectors, err := strconv.Atoi(data.Sectors)
	if err != nil {
		err = fmt.Errorf("%w: sectors %q is not a whole number", ftl.ErrInvalidInput, data.Sectors)
		h.metrics.ObserveCalculation("", ftl.DutyResult{}, err)
		return render.View{}, err
	}
	req := ftl.Request{
		ReportTime:          data.ReportTime,
		ProposedArrivalTime: data.Arrival,
		Sectors:             sectors,
		Acclimatisation:     data.Acclimatisation,
	}
	in, res, err := ftl.Calculate(req)
	h.metrics.ObserveCalculation(stateLabel(in, err), res, err)
	if err != nil {
		return render.View{}, err
	}
	return render.NewView(in, res), nil
}

func (h *Handler) execute(w http.ResponseWriter, status int, data PageData) {
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.WriteHeader(status)
	if err := h.tpl.Execute(w, data); err != nil {
		h.logger.Error().Err(err).Msg("render page")
	}
}

// buildCalcURL returns "/?report=..." and only adds other params when they
// differ from the defaults.
func buildCalcURL(data PageData, defaults config.FormDefault) string {
	v := url.Values{}
	v.Set("report", data.ReportTime)
	if data.Arrival != "" {
		v.Set("arrival", data.Arrival)
	}
	if data.Sectors != "" && data.Sectors != strconv.Itoa(defaults.Sectors) {
		v.Set("sectors", data.Sectors)
	}
	if data.Acclimatisation != "" && data.Acclimatisation != defaults.Acclimatisation {
		v.Set("acclimatisation", data.Acclimatisation)
	}
	return "/?" + v.Encode()
}

func orDefault(val, def string) string {
	if strings.TrimSpace(val) == "" {
		return def
	}
	return strings.TrimSpace(val)
}

// stateLabel names the acclimatisation state for metrics once parsing got that far.
func stateLabel(in ftl.DutyInput, err error) string {
	if err != nil {
		return ""
	}
	return in.Acclimatisation.String()
}
