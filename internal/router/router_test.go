package router_test

import (
	"bytes"
	"encoding/json"
	"io"
	"math"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"golang.org/x/image/font/gofont/goregular"

	"github.com/Rimuy-Amaya/Catkuro/internal/router"
)

func TestHTTP_EndToEnd_CalculationFlow(t *testing.T) {
	fontPath := filepath.Join(t.TempDir(), "font.ttf")
	if err := os.WriteFile(fontPath, goregular.TTF, 0o644); err != nil {
		t.Fatalf("writing test font: %v", err)
	}

	ts := httptest.NewServer(router.NewRouter(router.Options{FontPath: fontPath}))
	defer ts.Close()

	// 1) Abrir sesión
	sessionID := openSession(t, ts.URL)

	// 2) Ingesta antes de calcular energía => 409
	{
		st, _ := doReq(t, ts.URL, "POST", "/sessions/"+sessionID+"/intake", map[string]any{
			"dry_grams": 50, "dry_kcal_per_1000g": 3500,
		})
		if st != http.StatusConflict {
			t.Fatalf("expected 409 intake before energy, got %d", st)
		}
	}

	// 3) Reporte antes de calcular energía => 409
	{
		st, _ := doReq(t, ts.URL, "GET", "/sessions/"+sessionID+"/report", nil)
		if st != http.StatusConflict {
			t.Fatalf("expected 409 report before energy, got %d", st)
		}
	}

	// 4) Perfil inválido => 400
	{
		st, _ := doReq(t, ts.URL, "POST", "/sessions/"+sessionID+"/energy", map[string]any{
			"weight_kg": 0, "age_years": 2, "bcs": 5,
		})
		if st != http.StatusBadRequest {
			t.Fatalf("expected 400 for zero weight, got %d", st)
		}
	}

	// 5) Calcular energía
	{
		st, body := doReq(t, ts.URL, "POST", "/sessions/"+sessionID+"/energy", map[string]any{
			"weight_kg": 4, "age_years": 2, "age_months": 0, "neutered": true, "bcs": 5,
		})
		if st != http.StatusOK {
			t.Fatalf("expected 200 energy, got %d body=%s", st, string(body))
		}
		var resp struct {
			Energy struct {
				RER        float64 `json:"rer"`
				Multiplier float64 `json:"multiplier"`
				DER        float64 `json:"der"`
				Water      float64 `json:"water_intake_ml"`
			} `json:"energy"`
		}
		_ = json.Unmarshal(body, &resp)
		wantRER := 70 * math.Pow(4, 0.75)
		if math.Abs(resp.Energy.RER-wantRER) > 1e-9 {
			t.Fatalf("rer = %v, want %v", resp.Energy.RER, wantRER)
		}
		if resp.Energy.Multiplier != 1.2 {
			t.Fatalf("multiplier = %v, want 1.2", resp.Energy.Multiplier)
		}
		if resp.Energy.Water != resp.Energy.DER {
			t.Fatalf("water %v != der %v", resp.Energy.Water, resp.Energy.DER)
		}
	}

	// 6) Analizar ingesta
	{
		st, body := doReq(t, ts.URL, "POST", "/sessions/"+sessionID+"/intake", map[string]any{
			"dry_grams": 50, "dry_kcal_per_1000g": 3500,
			"wet_grams": 100, "wet_kcal_per_100g": 90,
		})
		if st != http.StatusOK {
			t.Fatalf("expected 200 intake, got %d body=%s", st, string(body))
		}
		var resp struct {
			TotalKcal float64 `json:"total_kcal"`
			Status    string  `json:"status"`
		}
		_ = json.Unmarshal(body, &resp)
		if math.Abs(resp.TotalKcal-265) > 1e-9 {
			t.Fatalf("total = %v, want 265", resp.TotalKcal)
		}
		if resp.Status != "over_target" {
			t.Fatalf("status = %q, want over_target", resp.Status)
		}
	}

	// 7) Generar plan (densidades explícitas)
	{
		st, body := doReq(t, ts.URL, "POST", "/sessions/"+sessionID+"/plan", map[string]any{
			"wet_percentage": 50, "dry_kcal_per_1000g": 4000, "wet_kcal_per_100g": 100,
		})
		if st != http.StatusOK {
			t.Fatalf("expected 200 plan, got %d body=%s", st, string(body))
		}
		var resp struct {
			Dry float64 `json:"required_dry_grams"`
			Wet float64 `json:"required_wet_grams"`
		}
		_ = json.Unmarshal(body, &resp)
		if resp.Dry == 0 || resp.Wet == 0 {
			t.Fatalf("plan grams missing: %s", string(body))
		}
	}

	// 8) Overview con todo presente
	{
		st, body := doReq(t, ts.URL, "GET", "/sessions/"+sessionID, nil)
		if st != http.StatusOK {
			t.Fatalf("expected 200 overview, got %d", st)
		}
		var resp map[string]json.RawMessage
		_ = json.Unmarshal(body, &resp)
		for _, k := range []string{"profile", "energy", "intake", "plan"} {
			if _, ok := resp[k]; !ok {
				t.Fatalf("overview missing %q: %s", k, string(body))
			}
		}
	}

	// 9) Descargar reporte PNG
	{
		res := rawGet(t, ts.URL+"/sessions/"+sessionID+"/report")
		defer res.Body.Close()
		if res.StatusCode != http.StatusOK {
			t.Fatalf("expected 200 report, got %d", res.StatusCode)
		}
		if ct := res.Header.Get("Content-Type"); ct != "image/png" {
			t.Fatalf("content-type = %q", ct)
		}
		cd := res.Header.Get("Content-Disposition")
		if !strings.Contains(cd, "cat_diet_report_") || !strings.Contains(cd, ".png") {
			t.Fatalf("content-disposition = %q", cd)
		}
		raw, _ := io.ReadAll(res.Body)
		// Firma PNG
		if len(raw) < 8 || string(raw[1:4]) != "PNG" {
			t.Fatalf("body is not a PNG (%d bytes)", len(raw))
		}
	}

	// 10) Recalcular energía invalida ingesta y plan
	{
		st, _ := doReq(t, ts.URL, "POST", "/sessions/"+sessionID+"/energy", map[string]any{
			"weight_kg": 5, "age_years": 3, "age_months": 2, "neutered": true, "bcs": 6,
		})
		if st != http.StatusOK {
			t.Fatalf("recompute: got %d", st)
		}

		st, body := doReq(t, ts.URL, "GET", "/sessions/"+sessionID, nil)
		if st != http.StatusOK {
			t.Fatalf("overview after recompute: got %d", st)
		}
		var resp map[string]json.RawMessage
		_ = json.Unmarshal(body, &resp)
		if _, ok := resp["intake"]; ok {
			t.Fatalf("stale intake visible after recompute: %s", string(body))
		}
		if _, ok := resp["plan"]; ok {
			t.Fatalf("stale plan visible after recompute: %s", string(body))
		}
	}

	// 11) Cerrar sesión
	{
		st, _ := doReq(t, ts.URL, "DELETE", "/sessions/"+sessionID, nil)
		if st != http.StatusNoContent {
			t.Fatalf("expected 204 delete, got %d", st)
		}
		st, _ = doReq(t, ts.URL, "GET", "/sessions/"+sessionID, nil)
		if st != http.StatusNotFound {
			t.Fatalf("expected 404 after delete, got %d", st)
		}
	}
}

func TestHTTP_ReportWithoutFontAsset(t *testing.T) {
	// Ruta inexistente a propósito.
	fontPath := filepath.Join(t.TempDir(), "missing.ttf")

	ts := httptest.NewServer(router.NewRouter(router.Options{FontPath: fontPath}))
	defer ts.Close()

	sessionID := openSession(t, ts.URL)
	st, _ := doReq(t, ts.URL, "POST", "/sessions/"+sessionID+"/energy", map[string]any{
		"weight_kg": 4, "age_years": 2, "bcs": 5,
	})
	if st != http.StatusOK {
		t.Fatalf("energy: got %d", st)
	}

	st, body := doReq(t, ts.URL, "GET", "/sessions/"+sessionID+"/report", nil)
	if st != http.StatusServiceUnavailable {
		t.Fatalf("expected 503 without font, got %d body=%s", st, string(body))
	}

	// La sesión inexistente gana: 404 aun con el asset ausente.
	st, _ = doReq(t, ts.URL, "GET", "/sessions/nope/report", nil)
	if st != http.StatusNotFound {
		t.Fatalf("expected 404 for unknown session without font, got %d", st)
	}
}

func TestHTTP_Health(t *testing.T) {
	ts := httptest.NewServer(router.NewRouter(router.Options{}))
	defer ts.Close()

	st, body := doReq(t, ts.URL, "GET", "/health", nil)
	if st != http.StatusOK || string(body) != "ok" {
		t.Fatalf("health: %d %q", st, string(body))
	}
}

func openSession(t *testing.T, baseURL string) string {
	t.Helper()

	st, body := doReq(t, baseURL, "POST", "/sessions", nil)
	if st != http.StatusCreated {
		t.Fatalf("expected 201 open session, got %d body=%s", st, string(body))
	}

	var resp struct {
		ID string `json:"id"`
	}
	_ = json.Unmarshal(body, &resp)
	if resp.ID == "" {
		t.Fatalf("open session: missing id body=%s", string(body))
	}
	return resp.ID
}

func doReq(t *testing.T, baseURL, method, path string, body any) (int, []byte) {
	t.Helper()

	var rdr io.Reader
	if body != nil {
		b, err := json.Marshal(body)
		if err != nil {
			t.Fatalf("json marshal: %v", err)
		}
		rdr = bytes.NewReader(b)
	}

	req, err := http.NewRequest(method, baseURL+path, rdr)
	if err != nil {
		t.Fatalf("new request: %v", err)
	}
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	res, err := http.DefaultClient.Do(req)
	if err != nil {
		t.Fatalf("do request: %v", err)
	}
	defer res.Body.Close()

	respBody, _ := io.ReadAll(res.Body)
	return res.StatusCode, respBody
}

func rawGet(t *testing.T, url string) *http.Response {
	t.Helper()
	res, err := http.Get(url)
	if err != nil {
		t.Fatalf("get %s: %v", url, err)
	}
	return res
}
