package chat

import (
	"bytes"
	"context"
	"encoding/json"
	"log"
	"net/http"
	"strings"
	"time"

	"github.com/vivekevdt/FlexiBuy/internal/catalog"
)

// ToolClient reaches the catalog tools over HTTP. The tools are
// consumed as black-box collaborators even though they live in this
// repository; the base URL decides where they actually run.
type ToolClient struct {
	baseURL string
	client  *http.Client
}

func NewToolClient(baseURL string) *ToolClient {
	return &ToolClient{
		baseURL: strings.TrimSuffix(baseURL, "/"),
		client:  &http.Client{Timeout: 10 * time.Second},
	}
}

// Lookup invokes the getData tool and maps its response onto an outcome.
func (c *ToolClient) Lookup(ctx context.Context, query string) ToolOutcome {
	var resp struct {
		OK      bool              `json:"ok"`
		Error   string            `json:"error"`
		Product *catalog.Product  `json:"product"`
		Results []catalog.Product `json:"results"`
	}

	if _, err := c.post(ctx, "/api/tool/getData", map[string]any{"query": query}, &resp); err != nil {
		log.Println("[chat] getData call failed:", err)
		return ToolOutcome{Kind: OutcomeToolError, Err: err.Error()}
	}

	switch {
	case !resp.OK:
		return ToolOutcome{Kind: OutcomeToolError, Err: resp.Error}
	case resp.Product != nil:
		return ToolOutcome{Kind: OutcomeFound, Product: resp.Product}
	case len(resp.Results) == 0:
		return ToolOutcome{Kind: OutcomeNotFound}
	default:
		return ToolOutcome{Kind: OutcomeCandidates, Candidates: resp.Results}
	}
}

// Compare invokes the compare tool. A 404 means one side did not
// resolve; which side is immaterial, both are required.
func (c *ToolClient) Compare(ctx context.Context, left, right string) ToolOutcome {
	var resp struct {
		OK         bool             `json:"ok"`
		Error      string           `json:"error"`
		A          *catalog.Product `json:"a"`
		B          *catalog.Product `json:"b"`
		Comparison *struct {
			Diffs          []string `json:"diffs"`
			Recommendation string   `json:"recommendation"`
		} `json:"comparison"`
	}

	status, err := c.post(ctx, "/api/tool/compare",
		map[string]any{"aName": left, "bName": right}, &resp)
	if err != nil {
		log.Println("[chat] compare call failed:", err)
		return ToolOutcome{Kind: OutcomeToolError, Err: err.Error()}
	}

	switch {
	case status == http.StatusNotFound:
		return ToolOutcome{Kind: OutcomeNotFound}
	case !resp.OK || resp.A == nil || resp.B == nil || resp.Comparison == nil:
		return ToolOutcome{Kind: OutcomeToolError, Err: resp.Error}
	default:
		return ToolOutcome{
			Kind:           OutcomeFoundPair,
			A:              resp.A,
			B:              resp.B,
			Diffs:          resp.Comparison.Diffs,
			Recommendation: resp.Comparison.Recommendation,
		}
	}
}

func (c *ToolClient) post(ctx context.Context, path string, body, out any) (int, error) {
	b, err := json.Marshal(body)
	if err != nil {
		return 0, err
	}

	req, err := http.NewRequestWithContext(
		ctx,
		http.MethodPost,
		c.baseURL+path,
		bytes.NewReader(b),
	)
	if err != nil {
		return 0, err
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.client.Do(req)
	if err != nil {
		return 0, err
	}
	defer resp.Body.Close()

	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return resp.StatusCode, err
	}
	return resp.StatusCode, nil
}
