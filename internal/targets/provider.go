package targets

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"sync"

	"github.com/shapeupapp/backend/internal/telemetry/tracing"

	"github.com/coocood/freecache"
	log "github.com/sirupsen/logrus"
)

//go:generate mockgen -source=$GOFILE -destination=provider_mocks_test.go -package=targets_test

// example API call
// https://generativelanguage.googleapis.com/v1beta/models/gemini-1.5-flash:generateContent?key=TODO

const (
	DefaultGeminiBaseURL = "https://generativelanguage.googleapis.com/v1beta"
	defaultGeminiModel   = "models/gemini-1.5-flash"

	oneHour             = 60 * 60
	briefingCacheExpire = oneHour * 12 // one briefing per user per day, effectively
)

// BriefingContext is what the coaching prompt gets to know about the user.
type BriefingContext struct {
	UserID      int
	Day         string // YYYY-MM-DD
	Name        string
	Goal        string
	StepsSoFar  int
	CaloriesDef int // deterministic calorie target, given as an anchor
}

// FoodEstimate is a nutrient estimate for a described food, produced by the
// external service and clamped to plausible bounds before use.
type FoodEstimate struct {
	Name       string  `json:"name"`
	Calories   int     `json:"calories"`
	ProteinG   float64 `json:"proteinG"`
	CarbsG     float64 `json:"carbsG"`
	FatG       float64 `json:"fatG"`
	Confidence string  `json:"confidence"`
}

// Provider supplies optional, untrusted suggestions. Implementations own
// all network concerns; the reconciler never fetches anything itself.
type Provider interface {
	DailyTargets(ctx context.Context, bc BriefingContext) (*Suggestion, error)
	EstimateFood(ctx context.Context, description string) (*FoodEstimate, error)
}

// GeminiProvider calls the Gemini generateContent API and validates its
// output strictly. Responses are cached so a briefing is generated at most
// once per user per day.
type GeminiProvider struct {
	baseURL    string
	apiKey     string
	httpClient *http.Client
	cache      *freecache.Cache

	// model is resolved lazily against the models list, once
	resolveModelOnce sync.Once
	model            string
}

func NewGeminiProvider(baseURL, apiKey string, httpClient *http.Client) *GeminiProvider {
	megabyte := 1024 * 1024
	return &GeminiProvider{
		baseURL:    baseURL,
		apiKey:     apiKey,
		httpClient: httpClient,
		cache:      freecache.NewCache(10 * megabyte),
	}
}

type geminiModelList struct {
	Models []struct {
		Name string `json:"name"`
	} `json:"models"`
}

// resolveModel asks the API for its models list and picks the first flash
// model, then the first pro model. Any failure falls back to the pinned
// default; the choice is made once per provider.
func (p *GeminiProvider) resolveModel(ctx context.Context) string {
	p.resolveModelOnce.Do(func() {
		p.model = defaultGeminiModel

		url := fmt.Sprintf("%s/models?key=%s", p.baseURL, p.apiKey)
		req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
		if err != nil {
			return
		}
		resp, err := p.httpClient.Do(req)
		if err != nil {
			log.Warnf("list models, using %s: %s", defaultGeminiModel, err)
			return
		}
		defer resp.Body.Close()
		if resp.StatusCode != http.StatusOK {
			log.Warnf("list models status %d, using %s", resp.StatusCode, defaultGeminiModel)
			return
		}

		var list geminiModelList
		if err := json.NewDecoder(resp.Body).Decode(&list); err != nil {
			log.Warnf("decode models list, using %s: %s", defaultGeminiModel, err)
			return
		}

		var pro string
		for _, m := range list.Models {
			if strings.Contains(m.Name, "flash") {
				p.model = m.Name
				return
			}
			if pro == "" && strings.Contains(m.Name, "pro") {
				pro = m.Name
			}
		}
		if pro != "" {
			p.model = pro
		}
	})
	return p.model
}

func (p *GeminiProvider) DailyTargets(ctx context.Context, bc BriefingContext) (_ *Suggestion, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "suggestionProvider.dailyTargets")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()

	cacheKey := fmt.Sprintf("briefing::%d::%s", bc.UserID, bc.Day)
	if cached, err := p.cache.Get([]byte(cacheKey)); err == nil {
		log.Tracef("daily targets for user %d on %s served from cache", bc.UserID, bc.Day)
		return DecodeSuggestion(cached)
	}

	prompt := fmt.Sprintf(`ROLE: You are a fitness coach for %s.
CONTEXT:
- Goal: %s
- Today's activity so far: %d steps
- Deterministic calorie target: %d kcal

TASK: Suggest adjusted daily targets for today.
Return ONLY a JSON object, no prose:
{"targetCalories": number, "targetSteps": number, "macroSuggestion": "one short sentence"}`,
		bc.Name, bc.Goal, bc.StepsSoFar, bc.CaloriesDef)

	raw, err := p.generate(ctx, prompt)
	if err != nil {
		return nil, fmt.Errorf("generate daily targets: %w", err)
	}

	sug, err := DecodeSuggestion(raw)
	if err != nil {
		return nil, fmt.Errorf("daily targets: %w", err)
	}

	// cache only payloads that survived the strict decode
	if err := p.cache.Set([]byte(cacheKey), raw, briefingCacheExpire); err != nil {
		log.Errorf("failed to cache daily targets for user %d: %s", bc.UserID, err)
	}

	return sug, nil
}

func (p *GeminiProvider) EstimateFood(ctx context.Context, description string) (_ *FoodEstimate, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "suggestionProvider.estimateFood")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()

	prompt := fmt.Sprintf(`TASK: Estimate nutritional content for 1 serving of the described food.
FOOD: %s
Return ONLY a JSON object:
{"name": "Food Name", "calories": 0, "proteinG": 0, "carbsG": 0, "fatG": 0, "confidence": "High"}`, description)

	raw, err := p.generate(ctx, prompt)
	if err != nil {
		return nil, fmt.Errorf("generate food estimate: %w", err)
	}

	cleaned := stripMarkdownFences(raw)
	var estimate FoodEstimate
	if err := json.Unmarshal(cleaned, &estimate); err != nil {
		return nil, fmt.Errorf("decode food estimate: %w", err)
	}
	if estimate.Name == "" || estimate.Calories <= 0 {
		return nil, fmt.Errorf("food estimate unusable: name %q, calories %d", estimate.Name, estimate.Calories)
	}

	clampEstimate(&estimate)
	return &estimate, nil
}

// clampEstimate caps obviously insane per-serving values. Max calories for
// one serving is capped at 3000, macros at 300g each.
func clampEstimate(e *FoodEstimate) {
	if e.Calories > 3000 {
		log.Warnf("insane calorie estimate %d for %q, capping", e.Calories, e.Name)
		e.Calories = 3000
	}
	for _, g := range []*float64{&e.ProteinG, &e.CarbsG, &e.FatG} {
		if *g < 0 {
			*g = 0
		}
		if *g > 300 {
			*g = 300
		}
	}
}

// gemini request/response shapes, the parts we actually read
type geminiContent struct {
	Parts []struct {
		Text string `json:"text"`
	} `json:"parts"`
}

type geminiResponse struct {
	Candidates []struct {
		Content geminiContent `json:"content"`
	} `json:"candidates"`
}

func (p *GeminiProvider) generate(ctx context.Context, prompt string) ([]byte, error) {
	reqBody := map[string]any{
		"contents": []map[string]any{
			{"parts": []map[string]string{{"text": prompt}}},
		},
	}
	bodyBytes, err := json.Marshal(reqBody)
	if err != nil {
		return nil, fmt.Errorf("marshal request: %w", err)
	}

	url := fmt.Sprintf("%s/%s:generateContent?key=%s", p.baseURL, p.resolveModel(ctx), p.apiKey)
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewReader(bodyBytes))
	if err != nil {
		return nil, err
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := p.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("http client do: %w", err)
	}
	defer resp.Body.Close()

	respBytes, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("read response: %w", err)
	}
	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("suggestion api status %d: %s", resp.StatusCode, respBytes)
	}

	var gr geminiResponse
	if err := json.Unmarshal(respBytes, &gr); err != nil {
		return nil, fmt.Errorf("unmarshal response: %w", err)
	}
	if len(gr.Candidates) == 0 || len(gr.Candidates[0].Content.Parts) == 0 {
		return nil, fmt.Errorf("no candidates in response")
	}

	return []byte(gr.Candidates[0].Content.Parts[0].Text), nil
}

var _ Provider = (*GeminiProvider)(nil)
