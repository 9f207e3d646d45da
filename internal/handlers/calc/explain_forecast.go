// internal/handlers/calc/explain_forecast.go
// Tool: explain_forecast - ringkasan naratif sebuah forecast.
// Pakai LLM bila tersedia; fallback deterministik bila tidak.

package calc

import (
	"encoding/json"
	"fmt"
	"log"
	"net/http"

	"dca-oilgas/internal/llm"
)

// inject dari app (boleh nil: fallback deterministik)
var llmClient llm.Client

func SetLLMClient(c llm.Client) {
	llmClient = c
}

const explainSystemPrompt = `You are a petroleum engineering assistant.
- Summarize the supplied Arps decline forecast for a non-specialist reader.
- Call out the initial rate, the final rate, the estimated cumulative volume,
  and whether/when the curve switches to terminal exponential decline.
- Be concise; do not invent numbers that are not in the data.`

type explainReq struct {
	paramsReq
	Question string `json:"question,omitempty"`
}

type explainResp struct {
	Summary string       `json:"summary"`
	Source  string       `json:"source"` // "llm" | "fallback"
	Facts   explainFacts `json:"facts"`
}

type explainFacts struct {
	Qi       float64  `json:"qi"`
	RateEnd  float64  `json:"rate_end"`
	CumEnd   float64  `json:"cum_end"`
	Years    float64  `json:"years"`
	TLim     *float64 `json:"t_lim,omitempty"`
	RateTLim *float64 `json:"rate_t_lim,omitempty"`
}

func ExplainForecastHandler(w http.ResponseWriter, r *http.Request) {
	var in explainReq

	hasQuery := readParamsQuery(r, &in.paramsReq)
	if !hasQuery && r.Method == http.MethodPost {
		if err := json.NewDecoder(r.Body).Decode(&in); err != nil {
			http.Error(w, "invalid json", http.StatusBadRequest)
			return
		}
	}

	c, err := buildCurve(in.paramsReq)
	if err != nil {
		writeErr(w, err)
		return
	}

	facts := explainFacts{Qi: c.Params().Qi, Years: c.Years()}
	facts.RateEnd, _ = c.Rate(c.Years())
	facts.CumEnd, _ = c.Cumulative(c.Years())
	if tlim, ok := c.TLim(); ok && tlim < c.Years() {
		qlim, _ := c.Rate(tlim)
		facts.TLim = &tlim
		facts.RateTLim = &qlim
	}

	out := explainResp{Facts: facts, Source: "fallback", Summary: fallbackSummary(facts)}

	if llmClient != nil {
		fb, _ := json.Marshal(facts)
		prompt := fmt.Sprintf("Forecast data (JSON): %s", string(fb))
		if in.Question != "" {
			prompt += "\nUser question: " + in.Question
		}
		if text, err := llmClient.Narrate(r.Context(), explainSystemPrompt, prompt); err == nil && text != "" {
			out.Summary = text
			out.Source = "llm"
		} else if err != nil {
			log.Printf("[WARN] explain_forecast llm error, using fallback: %v", err)
		}
	}

	writeJSON(w, out)
}

func fallbackSummary(f explainFacts) string {
	s := fmt.Sprintf(
		"Production starts at %.0f per day and declines to %.1f per day after %.1f years; cumulative volume over the horizon is about %.3e.",
		f.Qi, f.RateEnd, f.Years, f.CumEnd)
	if f.TLim != nil {
		s += fmt.Sprintf(
			" The curve switches from hyperbolic to terminal exponential decline at %.2f years (rate %.1f per day).",
			*f.TLim, *f.RateTLim)
	} else {
		s += " No hyperbolic-to-exponential transition occurs within the horizon."
	}
	return s
}
