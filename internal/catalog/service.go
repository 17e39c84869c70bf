package catalog

import (
	"context"
	"errors"
	"log"
	"strings"
	"sync"
)

// Service runs the lookup and compare tools on top of the repo.
type Service struct {
	repo Repo
}

func NewService(repo Repo) *Service {
	return &Service{repo: repo}
}

// LookupResult — either a single resolved product or a candidate list.
// Both empty means nothing matched.
type LookupResult struct {
	Product *Product
	Results []Product
}

// Lookup resolves a free-text query in stages: a single substring match
// on name, then a token-AND search, then a broader name-or-description
// search capped at 10 rows. Each stage runs only if the previous one
// produced nothing. A storage error before the last stage is logged and
// swallowed so the broader stages still get their shot; only a failure
// on the final stage surfaces.
func (s *Service) Lookup(ctx context.Context, query string) (*LookupResult, error) {
	cleaned := CleanProductPhrase(query)
	if !Meaningful(cleaned) {
		return &LookupResult{Results: []Product{}}, nil
	}

	// Stage 1: single best substring match.
	p, err := s.repo.SearchNameSubstring(ctx, cleaned)
	if err == nil {
		return &LookupResult{Product: p}, nil
	}
	if !errors.Is(err, ErrNotFound) {
		log.Println("[catalog] substring match failed:", err)
	}

	// Stage 2: every token (length > 1) must appear in the name.
	tokens := queryTokens(cleaned)
	if len(tokens) > 0 {
		rows, err := s.repo.SearchNameAllTokens(ctx, tokens)
		switch {
		case err != nil:
			log.Println("[catalog] token search failed:", err)
		case len(rows) == 1:
			return &LookupResult{Product: &rows[0]}, nil
		case len(rows) > 1:
			return &LookupResult{Results: rows}, nil
		}
	}

	// Stage 3: broader OR search across name and description.
	rows, err := s.repo.SearchNameOrDescription(ctx, cleaned)
	if err != nil {
		return nil, err
	}
	return &LookupResult{Results: rows}, nil
}

// LookupByID fetches one product. ErrNotFound passes through.
func (s *Service) LookupByID(ctx context.Context, id int64) (*Product, error) {
	return s.repo.FindByID(ctx, id)
}

// Compare resolves both names and computes the diff and recommendation.
// The two sides are fetched concurrently; a comparison needs both, so
// either side missing is ErrNotFound.
func (s *Service) Compare(ctx context.Context, aName, bName string) (*Comparison, error) {
	return s.compare(ctx,
		func(ctx context.Context) (*Product, error) { return s.repo.FindByName(ctx, aName) },
		func(ctx context.Context) (*Product, error) { return s.repo.FindByName(ctx, bName) },
	)
}

// CompareByID is Compare keyed by ids instead of names.
func (s *Service) CompareByID(ctx context.Context, aID, bID int64) (*Comparison, error) {
	return s.compare(ctx,
		func(ctx context.Context) (*Product, error) { return s.repo.FindByID(ctx, aID) },
		func(ctx context.Context) (*Product, error) { return s.repo.FindByID(ctx, bID) },
	)
}

func (s *Service) compare(
	ctx context.Context,
	fetchA, fetchB func(context.Context) (*Product, error),
) (*Comparison, error) {
	var (
		a, b   *Product
		ea, eb error
		wg     sync.WaitGroup
	)

	wg.Add(2)
	go func() { defer wg.Done(); a, ea = fetchA(ctx) }()
	go func() { defer wg.Done(); b, eb = fetchB(ctx) }()
	wg.Wait()

	if errors.Is(ea, ErrNotFound) || errors.Is(eb, ErrNotFound) {
		return nil, ErrNotFound
	}
	if ea != nil {
		return nil, ea
	}
	if eb != nil {
		return nil, eb
	}

	return Compare(a, b), nil
}

// List pages through the catalog.
func (s *Service) List(ctx context.Context, page, limit int) ([]Product, int, error) {
	return s.repo.List(ctx, page, limit)
}

func queryTokens(cleaned string) []string {
	var tokens []string
	for _, tk := range strings.Fields(cleaned) {
		if len(tk) > 1 {
			tokens = append(tokens, tk)
		}
	}
	return tokens
}
