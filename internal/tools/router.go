// internal/tools/router.go
// Router tool kalkulasi: menerima {tool, payload} lalu mengeksekusi in-process.

package tools

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"log"
	"net/http"
	"strings"
	"time"

	"dca-oilgas/internal/util"
)

// Clock bisa diganti di test untuk durasi deterministik.
var Clock util.Clock = util.RealClock{}

// ====== Structured log payload ======

type toolLog struct {
	At         string `json:"@t,omitempty"`         // RFC3339 timestamp
	Level      string `json:"level,omitempty"`      // info|warn|error
	Event      string `json:"event,omitempty"`      // calc.route
	RequestID  string `json:"request_id,omitempty"` // X-Request-ID jika ada
	Tool       string `json:"tool,omitempty"`
	Status     int    `json:"status,omitempty"`
	DurationMS int64  `json:"duration_ms,omitempty"`
	Error      string `json:"error,omitempty"`
}

func logJSON(l toolLog) {
	l.At = Clock.Now().Format(time.RFC3339Nano)
	if l.Level == "" {
		l.Level = "info"
	}
	b, _ := json.Marshal(l)
	log.Println(string(b))
}

// ToolRequest: amplop request untuk /calc/route.
type ToolRequest struct {
	Tool    string          `json:"tool"`
	Payload json.RawMessage `json:"payload,omitempty"`
}

// ToolResult: amplop respons.
type ToolResult struct {
	RunID string      `json:"run_id"`
	Tool  string      `json:"tool"`
	Data  interface{} `json:"data,omitempty"`
	Error string      `json:"error,omitempty"`
}

// simple recorder untuk menangkap output handler per-tool
type respRecorder struct {
	status int
	hdr    http.Header
	buf    []byte
}

func newRecorder() *respRecorder { return &respRecorder{status: 200, hdr: http.Header{}} }

func (r *respRecorder) Header() http.Header  { return r.hdr }
func (r *respRecorder) WriteHeader(code int) { r.status = code }
func (r *respRecorder) Write(b []byte) (int, error) {
	r.buf = append(r.buf, b...)
	return len(b), nil
}

// RouterHandler mengeksekusi tool terdaftar berdasarkan nama.
// Payload diteruskan apa adanya sebagai body JSON ke handler target.
func RouterHandler(w http.ResponseWriter, r *http.Request) {
	start := Clock.Now()
	reqID := r.Header.Get("X-Request-ID")

	raw, err := io.ReadAll(r.Body)
	if err != nil {
		http.Error(w, "read body error", http.StatusBadRequest)
		logJSON(toolLog{Level: "error", Event: "calc.route", RequestID: reqID,
			Error: fmt.Sprintf("read body: %v", err)})
		return
	}
	defer r.Body.Close()

	var req ToolRequest
	if err := json.Unmarshal(raw, &req); err != nil {
		http.Error(w, "invalid json", http.StatusBadRequest)
		logJSON(toolLog{Level: "error", Event: "calc.route", RequestID: reqID,
			Error: fmt.Sprintf("unmarshal: %v", err)})
		return
	}
	if strings.TrimSpace(req.Tool) == "" {
		http.Error(w, "missing tool name", http.StatusBadRequest)
		return
	}

	h, ok := Get(req.Tool)
	if !ok {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusNotFound)
		_ = json.NewEncoder(w).Encode(ToolResult{Tool: req.Tool, Error: "tool not found"})
		logJSON(toolLog{Level: "warn", Event: "calc.route", RequestID: reqID,
			Tool: req.Tool, Status: http.StatusNotFound, Error: "tool not found"})
		return
	}

	body := []byte("{}")
	if len(req.Payload) > 0 && !isJSONNullOrEmpty(req.Payload) {
		body = req.Payload
	}

	inner, _ := http.NewRequestWithContext(r.Context(), http.MethodPost,
		"/calc/internal/"+req.Tool, bytes.NewReader(body))
	// Penting: biar handler mau decode JSON body
	inner.Header.Set("Content-Type", "application/json")
	inner.Header.Set("X-Request-ID", reqID)

	rr := newRecorder()
	h.ServeHTTP(rr, inner)

	res := ToolResult{RunID: util.NewID(), Tool: req.Tool}
	status := http.StatusOK

	if rr.status >= 200 && rr.status < 300 {
		var anyData interface{}
		if len(rr.buf) == 0 {
			res.Data = map[string]any{}
		} else if err := json.Unmarshal(rr.buf, &anyData); err != nil {
			// bukan JSON: kirim raw string biar gampang debug
			res.Data = string(rr.buf)
		} else {
			res.Data = anyData
		}
	} else {
		msg := strings.TrimSpace(string(rr.buf))
		if msg == "" {
			msg = fmt.Sprintf("status %d", rr.status)
		}
		res.Error = msg
		status = rr.status
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(res)

	logJSON(toolLog{
		Event:      "calc.route",
		RequestID:  reqID,
		Tool:       req.Tool,
		Status:     status,
		DurationMS: Clock.Now().Sub(start).Milliseconds(),
		Error:      res.Error,
	})
}

// Util: cek apakah Payload = null / {} / whitespace
func isJSONNullOrEmpty(raw json.RawMessage) bool {
	s := strings.TrimSpace(string(raw))
	return s == "" || s == "null" || s == "{}"
}
