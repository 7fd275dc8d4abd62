package knowledge

import (
	"context"
	"fmt"
	"log"
	"strings"

	"github.com/blevesearch/bleve"
	"github.com/blevesearch/bleve/search/query"
)

// NoKnowledgeFound is returned when the index yields nothing usable. Callers
// inject it into prompts as-is; retrieval is best-effort context only.
const NoKnowledgeFound = "No relevant knowledge found in the database."

// Document is one knowledge snippet in the index.
type Document struct {
	ID       string `json:"id"`
	Text     string `json:"text"`
	Source   string `json:"source"`
	Category string `json:"category"`
}

// Retriever serves ranked knowledge excerpts for prompt injection.
type Retriever interface {
	RetrieveFormatted(ctx context.Context, q, domain string, n int) string
	Count() int
}

// categoryByDomain maps request domains to index categories. Domains without
// a category search the whole corpus.
var categoryByDomain = map[string]string{
	"legal":     "legal",
	"education": "education",
	"grants":    "grants",
	"schemes":   "schemes",
}

// Index is a bleve-backed in-memory retriever.
type Index struct {
	idx    bleve.Index
	count  int
	logger *log.Logger
}

// NewIndex builds an in-memory index over the given documents. Pass nil to
// use the built-in corpus.
func NewIndex(docs []Document) (*Index, error) {
	if docs == nil {
		docs = BuiltinCorpus()
	}
	mapping := bleve.NewIndexMapping()
	idx, err := bleve.NewMemOnly(mapping)
	if err != nil {
		return nil, fmt.Errorf("creating knowledge index: %w", err)
	}
	for _, d := range docs {
		if err := idx.Index(d.ID, d); err != nil {
			return nil, fmt.Errorf("indexing %s: %w", d.ID, err)
		}
	}
	return &Index{
		idx:    idx,
		count:  len(docs),
		logger: log.New(log.Writer(), "[KNOWLEDGE] ", log.LstdFlags),
	}, nil
}

// Count returns the number of indexed chunks, surfaced by /health.
func (i *Index) Count() int { return i.count }

// RetrieveFormatted searches the corpus and formats the top hits as a block
// for LLM context. Errors and empty results both degrade to NoKnowledgeFound;
// a run never fails because retrieval did.
func (i *Index) RetrieveFormatted(ctx context.Context, q, domain string, n int) string {
	if n <= 0 {
		n = 5
	}
	var searchQuery query.Query = bleve.NewMatchQuery(q)
	if cat, ok := categoryByDomain[domain]; ok {
		catQuery := bleve.NewMatchQuery(cat)
		catQuery.SetField("category")
		searchQuery = bleve.NewConjunctionQuery(searchQuery, catQuery)
	}
	req := bleve.NewSearchRequestOptions(searchQuery, n, 0, false)
	req.Fields = []string{"text", "source", "category"}

	res, err := i.idx.SearchInContext(ctx, req)
	if err != nil {
		i.logger.Printf("search failed: %v", err)
		return NoKnowledgeFound
	}
	if len(res.Hits) == 0 {
		return NoKnowledgeFound
	}

	parts := make([]string, 0, len(res.Hits))
	for idx, hit := range res.Hits {
		text, _ := hit.Fields["text"].(string)
		source, _ := hit.Fields["source"].(string)
		if source == "" {
			source = "unknown"
		}
		parts = append(parts, fmt.Sprintf("[Source %d: %s | Score: %.4f]\n%s", idx+1, source, hit.Score, text))
	}
	return strings.Join(parts, "\n\n---\n\n")
}
