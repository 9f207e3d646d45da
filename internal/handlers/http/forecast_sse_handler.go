// internal/handlers/http/forecast_sse_handler.go
// Streaming forecast via SSE: titik-titik dikirim bertahap supaya FE bisa
// menggambar kurva sambil jalan.

package http

import (
	"encoding/json"
	"net/http"
	"os"
	"strconv"
	"strings"
	"time"

	"dca-oilgas/internal/config"
	"dca-oilgas/internal/decline"
	"dca-oilgas/internal/util"
	"dca-oilgas/internal/util/sse"
)

const streamChunk = 50 // titik per event

type streamReq struct {
	Qi     float64 `json:"qi"`
	D      float64 `json:"d"`
	B      float64 `json:"b"`
	Dlim   float64 `json:"dlim"`
	Years  float64 `json:"years"`
	Points int     `json:"points,omitempty"`
}

// ForecastStreamHandler: hitung kurva lalu dorong deret sebagai SSE.
func ForecastStreamHandler(w http.ResponseWriter, r *http.Request) {
	flusher := sse.PrepareSSE(w)
	if flusher == nil {
		http.Error(w, "stream unsupported", http.StatusInternalServerError)
		return
	}

	// Identitas server per request (untuk verifikasi biner/instance aktif)
	_ = sse.WriteEvent(w, flusher, "server_info", map[string]any{
		"build": config.BuildVersion,
		"pid":   os.Getpid(),
		"time":  time.Now().Format(time.RFC3339),
	})

	// 1) Ambil parameter (GET query atau POST body)
	var in streamReq
	q := r.URL.Query()
	readF := func(key string, dst *float64) {
		if v := strings.TrimSpace(q.Get(key)); v != "" {
			if f, err := strconv.ParseFloat(v, 64); err == nil {
				*dst = f
			}
		}
	}
	readF("qi", &in.Qi)
	readF("d", &in.D)
	readF("b", &in.B)
	readF("dlim", &in.Dlim)
	readF("years", &in.Years)
	if v := strings.TrimSpace(q.Get("points")); v != "" {
		in.Points, _ = strconv.Atoi(v)
	}
	if in.Qi == 0 && r.Method == http.MethodPost {
		_ = json.NewDecoder(r.Body).Decode(&in)
	}
	if in.Points < 2 {
		in.Points = 365
	}

	// 2) Konstruksi kurva; error parameter dikirim sebagai event SSE lalu selesai.
	c, err := decline.NewCurve(decline.Params{
		Qi: in.Qi, D: in.D, B: in.B, Dlim: in.Dlim, Years: in.Years,
	})
	if err != nil {
		app, _ := util.FromDecline(err)
		_ = sse.WriteEvent(w, flusher, "error", map[string]any{
			"error":   app.Code,
			"message": app.Message,
		})
		return
	}

	pts, err := c.Forecast(in.Points)
	if err != nil {
		app, _ := util.FromDecline(err)
		_ = sse.WriteEvent(w, flusher, "error", map[string]any{
			"error":   app.Code,
			"message": app.Message,
		})
		return
	}

	// 3) Dorong per-chunk; hormati disconnect klien.
	ctx := r.Context()
	for start := 0; start < len(pts); start += streamChunk {
		select {
		case <-ctx.Done():
			return
		default:
		}
		end := start + streamChunk
		if end > len(pts) {
			end = len(pts)
		}
		_ = sse.WriteEvent(w, flusher, "points", pts[start:end])
	}

	done := map[string]any{"count": len(pts)}
	if tlim, ok := c.TLim(); ok {
		done["t_lim"] = tlim
	}
	_ = sse.WriteEvent(w, flusher, "done", done)
}
