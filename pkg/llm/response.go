package llm

import (
	"encoding/json"
	"fmt"
	"math"
	"strings"

	"github.com/umputun/newsdigest/pkg/domain"
)

// curationResponse is the reply format the model is asked for
type curationResponse struct {
	DigestTitle string                      `json:"digest_title" jsonschema:"description=Masthead subtitle for this edition"`
	Articles    *[]selection `json:"articles" jsonschema:"description=Selected articles in editorial order"`
}

// selection is a reply entry. Numbers are decoded as floats, models write 3 and 3.0 alike.
type selection struct {
	Index      float64 `json:"index" jsonschema:"description=Position of the article in the candidate list"`
	Headline   string  `json:"headline"`
	Subtitle   string  `json:"subtitle"`
	Summary    string  `json:"summary"`
	Importance float64 `json:"importance" jsonschema:"description=1-10 with 10 for the lead story"`
	Category   string  `json:"category"`
}

// ParseCuration extracts the curation from a model reply. The reply may wrap the JSON object
// in prose or markdown fences, the first well-formed object with an "articles" array wins.
// Importance is rounded and clamped to 1..10. Indices are not range checked here, only
// whole non-negative numbers are kept, others become -1.
func ParseCuration(text string) (domain.Curation, error) {
	resp, ok := decodeResponse(text)
	if !ok {
		return domain.Curation{}, fmt.Errorf("%w: no json object with articles found in response", domain.ErrCurationMalformed)
	}

	res := domain.Curation{DigestTitle: strings.TrimSpace(resp.DigestTitle), Selections: make([]domain.CurationSelection, 0, len(*resp.Articles))}
	for _, sel := range *resp.Articles {
		res.Selections = append(res.Selections, domain.CurationSelection{
			Index:      selectionIndex(sel.Index),
			Headline:   strings.TrimSpace(sel.Headline),
			Subtitle:   strings.TrimSpace(sel.Subtitle),
			Summary:    strings.TrimSpace(sel.Summary),
			Importance: int(max(1, min(math.Round(sel.Importance), 10))),
			Category:   strings.TrimSpace(sel.Category),
		})
	}
	return res, nil
}

func decodeResponse(text string) (curationResponse, bool) {
	var resp curationResponse
	if err := json.Unmarshal([]byte(text), &resp); err == nil && resp.Articles != nil {
		return resp, true
	}

	// scan for an embedded object, each '{' is a possible start
	for i := strings.IndexByte(text, '{'); i >= 0 && i < len(text); {
		resp = curationResponse{}
		if err := json.NewDecoder(strings.NewReader(text[i:])).Decode(&resp); err == nil && resp.Articles != nil {
			return resp, true
		}
		next := strings.IndexByte(text[i+1:], '{')
		if next < 0 {
			break
		}
		i += next + 1
	}
	return curationResponse{}, false
}

// selectionIndex converts a whole number index, anything else becomes -1 and is skipped later
func selectionIndex(v float64) int {
	if v != math.Trunc(v) || v < 0 || v > math.MaxInt32 {
		return -1
	}
	return int(v)
}
