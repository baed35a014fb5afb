package query

import (
	"context"
	"math"
	"sort"
	"strings"

	"github.com/agnivade/levenshtein"
	"github.com/kartevonmorgen/openfairdb/internal/adapters/bleve"
	"github.com/kartevonmorgen/openfairdb/pkg"
	"github.com/kartevonmorgen/openfairdb/pkg/mmodel"
	"github.com/kartevonmorgen/openfairdb/pkg/mopentelemetry"
)

// DuplicateKind tells which similarity test flagged a pair.
type DuplicateKind string

const (
	DuplicateSimilarChars DuplicateKind = "similarChars"
	DuplicateSimilarWords DuplicateKind = "similarWords"
)

// Duplicate flags two places as probable duplicates.
type Duplicate struct {
	ID          mmodel.ID     `json:"id"`
	DuplicateID mmodel.ID     `json:"duplicateId"`
	Kind        DuplicateKind `json:"kind"`
}

// duplicateRadiusMeters is the search radius around each place.
const duplicateRadiusMeters = 100.0

// metersPerLatDegree approximates one degree of latitude.
const metersPerLatDegree = 111_320.0

// FindDuplicates checks each given place against the index for nearby places
// with a similar title. When no ids are given, every visible place is
// checked. Self-pairs are skipped.
func (uc *UseCase) FindDuplicates(ctx context.Context, ids []mmodel.ID) ([]*Duplicate, error) {
	logger := pkg.NewLoggerFromContext(ctx)
	tracer := pkg.NewTracerFromContext(ctx)

	ctx, span := tracer.Start(ctx, "query.find_duplicates")
	defer span.End()

	var (
		places []*mmodel.PlaceWithStatus
		err    error
	)

	if len(ids) > 0 {
		places, err = uc.PlaceRepo.GetPlaces(ctx, ids)
	} else {
		places, err = uc.PlaceRepo.AllPlaces(ctx)
	}

	if err != nil {
		mopentelemetry.HandleSpanError(&span, "Failed to load places", err)

		logger.Errorf("Error loading places for duplicate check: %v", err)

		return nil, err
	}

	duplicates := []*Duplicate{}
	seen := make(map[string]struct{})

	for _, placeWithStatus := range places {
		place := placeWithStatus.Place

		if !place.Location.Pos.IsValid() {
			continue
		}

		bbox := bboxAround(place.Location.Pos, duplicateRadiusMeters)

		docs, err := uc.PlaceIndex.QueryPlaces(ctx, &bleve.Query{Bbox: &bbox}, defaultSearchLimit)
		if err != nil {
			mopentelemetry.HandleSpanError(&span, "Failed to query place index", err)

			return nil, err
		}

		for _, doc := range docs {
			if doc.ID == place.ID.String() {
				continue
			}

			kind, similar := titlesSimilar(place.Title, doc.Title)
			if !similar {
				continue
			}

			pairKey := place.ID.String() + ":" + doc.ID
			if doc.ID < place.ID.String() {
				pairKey = doc.ID + ":" + place.ID.String()
			}

			if _, dup := seen[pairKey]; dup {
				continue
			}

			seen[pairKey] = struct{}{}

			duplicates = append(duplicates, &Duplicate{
				ID:          place.ID,
				DuplicateID: mmodel.ID(doc.ID),
				Kind:        kind,
			})
		}
	}

	sort.Slice(duplicates, func(i, j int) bool {
		return duplicates[i].ID < duplicates[j].ID
	})

	return duplicates, nil
}

// bboxAround spans a box of the given radius around a point. The longitude
// extent widens towards the poles.
func bboxAround(pos mmodel.MapPoint, radiusMeters float64) mmodel.MapBbox {
	latExt := radiusMeters / metersPerLatDegree

	lngScale := math.Cos(pos.Lat * math.Pi / 180)
	if lngScale < 0.01 {
		lngScale = 0.01
	}

	lngExt := latExt / lngScale

	bbox, _ := mmodel.NewMapBbox(
		clampLat(pos.Lat-latExt), clampLng(pos.Lng-lngExt),
		clampLat(pos.Lat+latExt), clampLng(pos.Lng+lngExt))

	return bbox
}

// titlesSimilar applies the duplicate-title heuristics: a bounded edit
// distance, or nearly identical word multisets.
func titlesSimilar(t1, t2 string) (DuplicateKind, bool) {
	a := strings.ToLower(strings.TrimSpace(t1))
	b := strings.ToLower(strings.TrimSpace(t2))

	if a == "" || b == "" {
		return "", false
	}

	minLen := len([]rune(a))
	if l := len([]rune(b)); l < minLen {
		minLen = l
	}

	maxDistance := int(math.Ceil(float64(minLen) * 0.3))

	if levenshtein.ComputeDistance(a, b) <= maxDistance {
		return DuplicateSimilarChars, true
	}

	if wordsSimilar(a, b) {
		return DuplicateSimilarWords, true
	}

	return "", false
}

// wordsSimilar reports whether the whitespace-separated word multisets of
// the two titles differ in at most two words, while at least one title has
// more than one word.
func wordsSimilar(a, b string) bool {
	wordsA := strings.Fields(a)
	wordsB := strings.Fields(b)

	if len(wordsA) <= 1 && len(wordsB) <= 1 {
		return false
	}

	counts := make(map[string]int)

	for _, w := range wordsA {
		counts[w]++
	}

	for _, w := range wordsB {
		counts[w]--
	}

	diff := 0

	for _, c := range counts {
		if c > 0 {
			diff += c
		} else {
			diff -= c
		}
	}

	return diff <= 2
}

func clampLat(v float64) float64 {
	return math.Max(-90, math.Min(90, v))
}

func clampLng(v float64) float64 {
	return math.Max(-180, math.Min(180, v))
}
