package in

import (
	"github.com/gofiber/fiber/v2"
	"github.com/kartevonmorgen/openfairdb/internal/adapters/bleve"
	"github.com/kartevonmorgen/openfairdb/internal/services/query"
	"github.com/kartevonmorgen/openfairdb/pkg"
	"github.com/kartevonmorgen/openfairdb/pkg/constant"
	"github.com/kartevonmorgen/openfairdb/pkg/mmodel"
	"github.com/kartevonmorgen/openfairdb/pkg/net/http"
)

// SearchHandler handles HTTP requests for the place search.
type SearchHandler struct {
	Query *query.UseCase
}

type searchEntry struct {
	ID          string            `json:"id"`
	Lat         float64           `json:"lat"`
	Lng         float64           `json:"lng"`
	Status      string            `json:"status"`
	Title       string            `json:"title"`
	Description string            `json:"description"`
	Categories  []string          `json:"categories"`
	Tags        []string          `json:"tags"`
	Ratings     mmodel.AvgRatings `json:"ratings"`
}

type searchResponse struct {
	Visible   []searchEntry `json:"visible"`
	Invisible []searchEntry `json:"invisible"`
}

// Search runs the bbox+text place search.
func (handler *SearchHandler) Search(c *fiber.Ctx) error {
	ctx := c.UserContext()

	bboxParam := c.Query("bbox")
	if bboxParam == "" {
		return http.WithError(c, pkg.ValidateBusinessError(constant.ErrInvalidBbox, "Place"))
	}

	bbox, err := mmodel.ParseMapBbox(bboxParam)
	if err != nil {
		return http.WithError(c, pkg.ValidateBusinessError(constant.ErrInvalidBbox, "Place"))
	}

	request := &query.SearchPlacesRequest{
		Bbox:       bbox,
		Text:       c.Query("text"),
		Categories: splitCommaList(c.Query("categories")),
		HashTags:   splitCommaList(c.Query("tags")),
	}

	if ids := splitCommaList(c.Query("ids")); len(ids) > 0 {
		request.IDs = make([]mmodel.ID, len(ids))
		for i, id := range ids {
			request.IDs[i] = mmodel.ID(id)
		}
	}

	for _, status := range splitCommaList(c.Query("status")) {
		parsed, err := mmodel.ParseReviewStatusString(status)
		if err != nil {
			return http.BadRequest(c, http.ValidationKnownFieldsError{
				Title:   "Invalid Review Status",
				Message: err.Error(),
			})
		}

		request.Statuses = append(request.Statuses, parsed)
	}

	result, err := handler.Query.SearchPlaces(ctx, request)
	if err != nil {
		return http.WithError(c, err)
	}

	return http.OK(c, searchResponse{
		Visible:   searchEntries(result.Visible),
		Invisible: searchEntries(result.Invisible),
	})
}

// GetDuplicates flags probable duplicate places.
func (handler *SearchHandler) GetDuplicates(c *fiber.Ctx) error {
	ctx := c.UserContext()

	var ids []mmodel.ID
	for _, id := range splitCommaList(c.Query("ids")) {
		ids = append(ids, mmodel.ID(id))
	}

	duplicates, err := handler.Query.FindDuplicates(ctx, ids)
	if err != nil {
		return http.WithError(c, err)
	}

	return http.OK(c, duplicates)
}

func searchEntries(docs []*bleve.IndexedPlace) []searchEntry {
	entries := make([]searchEntry, len(docs))

	for i, doc := range docs {
		pos := doc.MapPoint()

		entries[i] = searchEntry{
			ID:          doc.ID,
			Lat:         pos.Lat,
			Lng:         pos.Lng,
			Status:      doc.Status,
			Title:       doc.Title,
			Description: doc.Description,
			Categories:  doc.Categories,
			Tags:        doc.Tags,
			Ratings:     doc.AvgRatings(),
		}
	}

	return entries
}
