package sessions

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/Rimuy-Amaya/Catkuro/internal/domain/nutrition"
	"github.com/Rimuy-Amaya/Catkuro/internal/domain/report"
)

// RegisterRoutes monta el módulo de sesiones. reportLimit es opcional
// (rate limit solo para la generación de imagen, que es el único trabajo
// no trivial del proceso).
func RegisterRoutes(r chi.Router, svc *Service, ren *report.Renderer, reportLimit func(http.Handler) http.Handler) {
	r.Route("/sessions", func(sr chi.Router) {
		sr.Post("/", openSessionHandler(svc))
		sr.Get("/{sessionID}", getSessionHandler(svc))
		sr.Delete("/{sessionID}", closeSessionHandler(svc))

		sr.Post("/{sessionID}/energy", computeEnergyHandler(svc))
		sr.Post("/{sessionID}/intake", analyzeIntakeHandler(svc))
		sr.Post("/{sessionID}/plan", planFeedingHandler(svc))

		reportH := downloadReportHandler(svc, ren)
		if reportLimit != nil {
			sr.With(reportLimit).Get("/{sessionID}/report", reportH)
		} else {
			sr.Get("/{sessionID}/report", reportH)
		}
	})
}

type energyRequest struct {
	WeightKg  float64 `json:"weight_kg"`
	AgeYears  int     `json:"age_years"`
	AgeMonths int     `json:"age_months"` // meses adicionales a los años, 0..11
	Neutered  bool    `json:"neutered"`
	BCS       int     `json:"bcs"`
	Pregnant  bool    `json:"pregnant"`
	Lactating bool    `json:"lactating"`
}

type intakeRequest struct {
	DryGrams        float64 `json:"dry_grams"`
	DryKcalPer1000g float64 `json:"dry_kcal_per_1000g"`
	WetGrams        float64 `json:"wet_grams"`
	WetKcalPer100g  float64 `json:"wet_kcal_per_100g"`
}

type planRequest struct {
	WetPercentage   int     `json:"wet_percentage"`
	DryKcalPer1000g float64 `json:"dry_kcal_per_1000g"` // opcional: 0 = usar la última ingesta
	WetKcalPer100g  float64 `json:"wet_kcal_per_100g"`  // opcional: idem
}

// intakeBlock agrega la clasificación al resultado numérico; el estado no
// forma parte del modelo de datos, se deriva siempre de la diferencia.
type intakeBlock struct {
	nutrition.IntakeResult
	Status nutrition.IntakeStatus `json:"status"`
}

type sessionResponse struct {
	ID        string                  `json:"id"`
	Profile   *nutrition.CatProfile   `json:"profile,omitempty"`
	Energy    *nutrition.EnergyResult `json:"energy,omitempty"`
	Intake    *intakeBlock            `json:"intake,omitempty"`
	Plan      *nutrition.FeedingPlan  `json:"plan,omitempty"`
	CreatedAt string                  `json:"created_at"`
	UpdatedAt string                  `json:"updated_at"`
}

func toSessionResponse(s Session) sessionResponse {
	resp := sessionResponse{
		ID:        s.ID,
		Profile:   s.Profile,
		Energy:    s.Energy,
		Plan:      s.Plan,
		CreatedAt: s.CreatedAt.UTC().Format("2006-01-02T15:04:05Z07:00"),
		UpdatedAt: s.UpdatedAt.UTC().Format("2006-01-02T15:04:05Z07:00"),
	}
	if s.Intake != nil {
		resp.Intake = &intakeBlock{
			IntakeResult: *s.Intake,
			Status:       nutrition.Classify(s.Intake.CalorieDifference),
		}
	}
	return resp
}

// openSessionHandler godoc
// @Summary  Abre una sesión de cálculo
// @Tags     sessions
// @Produce  json
// @Success  201 {object} object
// @Router   /sessions [post]
func openSessionHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		sess, err := svc.Open(r.Context())
		if err != nil {
			http.Error(w, "internal error", http.StatusInternalServerError)
			return
		}
		writeJSON(w, http.StatusCreated, toSessionResponse(sess))
	}
}

// getSessionHandler godoc
// @Summary  Resumen de todo lo calculado en la sesión
// @Tags     sessions
// @Produce  json
// @Param    sessionID path string true "session id"
// @Success  200 {object} object
// @Router   /sessions/{sessionID} [get]
func getSessionHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		sess, err := svc.Get(r.Context(), chi.URLParam(r, "sessionID"))
		if err != nil {
			writeError(w, err)
			return
		}
		writeJSON(w, http.StatusOK, toSessionResponse(sess))
	}
}

// closeSessionHandler godoc
// @Summary  Descarta una sesión
// @Tags     sessions
// @Param    sessionID path string true "session id"
// @Success  204 {string} string "No Content"
// @Failure  404 {string} string "session not found"
// @Router   /sessions/{sessionID} [delete]
func closeSessionHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if err := svc.Close(r.Context(), chi.URLParam(r, "sessionID")); err != nil {
			writeError(w, err)
			return
		}
		w.WriteHeader(http.StatusNoContent)
	}
}

// computeEnergyHandler godoc
// @Summary  Calcula RER, coeficiente de actividad y DER
// @Tags     sessions
// @Accept   json
// @Produce  json
// @Param    sessionID path string true "session id"
// @Success  200 {object} object
// @Failure  400 {string} string "invalid input"
// @Router   /sessions/{sessionID}/energy [post]
func computeEnergyHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req energyRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			http.Error(w, "invalid json", http.StatusBadRequest)
			return
		}

		sess, err := svc.ComputeEnergy(r.Context(), chi.URLParam(r, "sessionID"), ProfileInput{
			WeightKg:      req.WeightKg,
			AgeYears:      req.AgeYears,
			AgeMonthsPart: req.AgeMonths,
			Neutered:      req.Neutered,
			BCS:           req.BCS,
			Pregnant:      req.Pregnant,
			Lactating:     req.Lactating,
		})
		if err != nil {
			writeError(w, err)
			return
		}
		writeJSON(w, http.StatusOK, toSessionResponse(sess))
	}
}

// analyzeIntakeHandler godoc
// @Summary  Compara la ingesta reportada contra el DER
// @Tags     sessions
// @Accept   json
// @Produce  json
// @Param    sessionID path string true "session id"
// @Success  200 {object} object
// @Failure  409 {string} string "daily energy requirement not computed"
// @Router   /sessions/{sessionID}/intake [post]
func analyzeIntakeHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req intakeRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			http.Error(w, "invalid json", http.StatusBadRequest)
			return
		}

		sess, err := svc.AnalyzeIntake(r.Context(), chi.URLParam(r, "sessionID"), nutrition.FoodInput{
			DryGrams:        req.DryGrams,
			DryKcalPer1000g: req.DryKcalPer1000g,
			WetGrams:        req.WetGrams,
			WetKcalPer100g:  req.WetKcalPer100g,
		})
		if err != nil {
			writeError(w, err)
			return
		}
		writeJSON(w, http.StatusOK, toSessionResponse(sess).Intake)
	}
}

// planFeedingHandler godoc
// @Summary  Genera el plan de gramos secos/húmedos para cubrir el DER
// @Tags     sessions
// @Accept   json
// @Produce  json
// @Param    sessionID path string true "session id"
// @Success  200 {object} object
// @Failure  409 {string} string "daily energy requirement not computed"
// @Router   /sessions/{sessionID}/plan [post]
func planFeedingHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req planRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			http.Error(w, "invalid json", http.StatusBadRequest)
			return
		}

		sess, err := svc.PlanFeeding(r.Context(), chi.URLParam(r, "sessionID"),
			req.WetPercentage, req.DryKcalPer1000g, req.WetKcalPer100g)
		if err != nil {
			writeError(w, err)
			return
		}
		writeJSON(w, http.StatusOK, sess.Plan)
	}
}

// downloadReportHandler godoc
// @Summary  Descarga el reporte como imagen PNG de 800x800
// @Tags     sessions
// @Produce  png
// @Param    sessionID path string true "session id"
// @Success  200 {file} file
// @Failure  409 {string} string "daily energy requirement not computed"
// @Failure  503 {string} string "font asset missing"
// @Router   /sessions/{sessionID}/report [get]
func downloadReportHandler(svc *Service, ren *report.Renderer) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		data, err := svc.ReportData(r.Context(), chi.URLParam(r, "sessionID"))
		if err != nil {
			writeError(w, err)
			return
		}

		// Con la sesión ya resuelta (404/409 tienen prioridad), el asset
		// se verifica antes de rasterizar: contrato del renderer, el
		// caller corta primero.
		if err := ren.CheckAsset(); err != nil {
			writeError(w, err)
			return
		}

		img, err := ren.Render(data)
		if err != nil {
			writeError(w, err)
			return
		}

		filename := fmt.Sprintf("cat_diet_report_%s.png", data.GeneratedAt.Format("20060102"))
		w.Header().Set("Content-Type", "image/png")
		w.Header().Set("Content-Disposition", fmt.Sprintf("attachment; filename=%q", filename))
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write(img)
	}
}

// writeError mapea los sentinels de dominio a status HTTP.
func writeError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, ErrNotFound):
		http.Error(w, "session not found", http.StatusNotFound)
	case errors.Is(err, nutrition.ErrEnergyRequired):
		http.Error(w, "daily energy requirement not computed", http.StatusConflict)
	case errors.Is(err, nutrition.ErrInvalidInput), errors.Is(err, ErrInvalidInput):
		http.Error(w, "invalid input", http.StatusBadRequest)
	case errors.Is(err, report.ErrAssetMissing):
		http.Error(w, "report font asset missing", http.StatusServiceUnavailable)
	default:
		http.Error(w, "internal error", http.StatusInternalServerError)
	}
}

// writeJSON es helper local del módulo; si otro módulo lo repite recién
// ahí conviene extraerlo a un paquete común.
func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}
