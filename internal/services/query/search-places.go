package query

import (
	"context"
	"reflect"
	"sort"
	"strings"

	"github.com/kartevonmorgen/openfairdb/internal/adapters/bleve"
	"github.com/kartevonmorgen/openfairdb/pkg"
	"github.com/kartevonmorgen/openfairdb/pkg/constant"
	"github.com/kartevonmorgen/openfairdb/pkg/mmodel"
	"github.com/kartevonmorgen/openfairdb/pkg/mopentelemetry"
)

// The query bbox is inflated before candidate selection so that entries just
// outside the viewport can still be hinted at.
const (
	bboxLatExt = 0.02
	bboxLngExt = 0.04

	maxInvisibleResults = 5

	defaultSearchLimit = 100
	maxSearchLimit     = 2000
)

// SearchPlacesRequest filters the place search.
type SearchPlacesRequest struct {
	Bbox       mmodel.MapBbox
	Text       string
	Categories []string
	HashTags   []string
	IDs        []mmodel.ID
	Statuses   []mmodel.ReviewStatus
	Limit      int
}

// SearchPlacesResult splits the hits into those inside the requested bbox
// and up to five hints just outside of it. Both groups are ordered by their
// rating average, best first.
type SearchPlacesResult struct {
	Visible   []*bleve.IndexedPlace
	Invisible []*bleve.IndexedPlace
}

// SearchPlaces selects candidate places from the index. Hash tags embedded
// in the free text ("#organic") are promoted into tag filters.
func (uc *UseCase) SearchPlaces(ctx context.Context, request *SearchPlacesRequest) (*SearchPlacesResult, error) {
	logger := pkg.NewLoggerFromContext(ctx)
	tracer := pkg.NewTracerFromContext(ctx)

	ctx, span := tracer.Start(ctx, "query.search_places")
	defer span.End()

	if !request.Bbox.IsValid() {
		return nil, pkg.ValidateBusinessError(constant.ErrInvalidBbox, reflect.TypeOf(mmodel.Place{}).Name())
	}

	text, hashTags := SplitTextIntoWordsAndTags(request.Text)
	hashTags = append(hashTags, request.HashTags...)

	limit := request.Limit
	if limit <= 0 {
		limit = defaultSearchLimit
	}

	if limit > maxSearchLimit {
		limit = maxSearchLimit
	}

	indexQuery := &bleve.Query{
		Bbox:       ptrBbox(request.Bbox.Inflate(bboxLatExt, bboxLngExt)),
		Text:       text,
		HashTags:   hashTags,
		Categories: request.Categories,
		Statuses:   request.Statuses,
		IDs:        request.IDs,
	}

	// Reserve room for the invisible hints beyond the requested limit.
	docs, err := uc.PlaceIndex.QueryPlaces(ctx, indexQuery, limit+maxInvisibleResults)
	if err != nil {
		mopentelemetry.HandleSpanError(&span, "Failed to query place index", err)

		logger.Errorf("Error querying place index: %v", err)

		return nil, err
	}

	result := &SearchPlacesResult{
		Visible:   []*bleve.IndexedPlace{},
		Invisible: []*bleve.IndexedPlace{},
	}

	for _, doc := range docs {
		if request.Bbox.Contains(doc.MapPoint()) {
			if len(result.Visible) < limit {
				result.Visible = append(result.Visible, doc)
			}

			continue
		}

		if len(result.Invisible) < maxInvisibleResults {
			result.Invisible = append(result.Invisible, doc)
		}
	}

	sortByRating(result.Visible)
	sortByRating(result.Invisible)

	return result, nil
}

// SplitTextIntoWordsAndTags partitions a free-text query into plain words
// and hash tags.
func SplitTextIntoWordsAndTags(text string) (string, []string) {
	var (
		words    []string
		hashTags []string
	)

	for _, token := range strings.Fields(text) {
		if strings.HasPrefix(token, "#") {
			tag := strings.ToLower(strings.TrimPrefix(token, "#"))
			if tag != "" {
				hashTags = append(hashTags, tag)
			}

			continue
		}

		words = append(words, token)
	}

	return strings.Join(words, " "), hashTags
}

func sortByRating(docs []*bleve.IndexedPlace) {
	sort.SliceStable(docs, func(i, j int) bool {
		return docs[i].Total > docs[j].Total
	})
}

func ptrBbox(bbox mmodel.MapBbox) *mmodel.MapBbox {
	return &bbox
}
