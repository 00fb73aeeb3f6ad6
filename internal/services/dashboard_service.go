package services

import (
	"context"
	"regexp"
	"sort"
	"strings"
	"time"

	"go.uber.org/zap"

	"travelai/internal/models/response_models"
	"travelai/pkg/utils"
)

type DashboardServiceInterface interface {
	ListReviews(ctx context.Context) response_models.ReviewListResponse
	BuildSummary(ctx context.Context, topN int) response_models.ReviewSummary
}

// DashboardService condenses the backend's topics feed into review
// insights. The feed is best-effort: any fetch failure is treated as an
// empty dataset, never an error.
type DashboardService struct {
	backend utils.BackendClientInterface
	logger  *zap.SugaredLogger
}

func NewDashboardService(backend utils.BackendClientInterface, logger *zap.SugaredLogger) DashboardServiceInterface {
	return &DashboardService{
		backend: backend,
		logger:  logger,
	}
}

// Column names differ between feed exports; pick the first candidate
// that is present.
var (
	textColumns      = []string{"clean_tweet", "review_text", "vietnam_segment", "text", "content"}
	sentimentColumns = []string{"sentiment", "sentiment_label", "label"}
)

var wordPattern = regexp.MustCompile(`[a-zA-Z]{3,}`)

var stopwords = map[string]bool{}

func init() {
	for _, w := range strings.Fields(
		"the and for with that this you your are was were have has had but not from they them " +
			"what when where why how about into out over under just like very really more most less " +
			"its it's im i'm ive i've we our us me my mine their there here than then too also " +
			"in on at to of a an is it as be by or if so do did does can could should would " +
			"rt via amp https http co t vn vietnam") {
		stopwords[w] = true
	}
}

func (s *DashboardService) ListReviews(ctx context.Context) response_models.ReviewListResponse {
	rows := s.backend.FetchTopics(ctx)
	return response_models.ReviewListResponse{
		Total:   len(rows),
		Reviews: rows,
	}
}

func (s *DashboardService) BuildSummary(ctx context.Context, topN int) response_models.ReviewSummary {
	if topN <= 0 || topN > 100 {
		topN = 20
	}

	rows := s.backend.FetchTopics(ctx)
	if len(rows) == 0 {
		s.logger.Debugw("topics feed empty or unavailable")
	}

	sentiments := map[string]int{}
	var texts []string

	for _, row := range rows {
		sentiments[NormalizeSentiment(pickColumn(row, sentimentColumns))]++
		if t := pickColumn(row, textColumns); t != "" {
			texts = append(texts, t)
		}
	}

	return response_models.ReviewSummary{
		TotalReviews: len(rows),
		Sentiments:   sentiments,
		TopTerms:     TopTerms(texts, topN),
		FetchedAtUTC: utils.ExportTimestampUTC(time.Now()),
	}
}

func pickColumn(row map[string]interface{}, candidates []string) string {
	for _, c := range candidates {
		if v, ok := row[c]; ok {
			if str, ok := v.(string); ok {
				return str
			}
		}
	}
	return ""
}

// NormalizeSentiment folds the label spellings seen in the feed (including
// the recurring "positve" typo) into positive/neutral/negative/other.
func NormalizeSentiment(s string) string {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "pos", "positive", "positve":
		return "positive"
	case "neu", "neutral":
		return "neutral"
	case "neg", "negative":
		return "negative"
	default:
		return "other"
	}
}

// TopTerms tokenizes the review texts (ASCII words of three letters or
// more, lowercased, stopwords removed) and returns the n most frequent,
// ties broken alphabetically so the result is deterministic.
func TopTerms(texts []string, n int) []response_models.TermCount {
	counts := map[string]int{}
	for _, t := range texts {
		for _, w := range wordPattern.FindAllString(strings.ToLower(t), -1) {
			if stopwords[w] {
				continue
			}
			counts[w]++
		}
	}

	terms := make([]response_models.TermCount, 0, len(counts))
	for term, count := range counts {
		terms = append(terms, response_models.TermCount{Term: term, Count: count})
	}
	sort.Slice(terms, func(i, j int) bool {
		if terms[i].Count != terms[j].Count {
			return terms[i].Count > terms[j].Count
		}
		return terms[i].Term < terms[j].Term
	})

	if len(terms) > n {
		terms = terms[:n]
	}
	return terms
}
