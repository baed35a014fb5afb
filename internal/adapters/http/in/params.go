package in

import (
	"strconv"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/kartevonmorgen/openfairdb/internal/adapters/postgres/place"
	"github.com/kartevonmorgen/openfairdb/internal/services/query"
	"github.com/kartevonmorgen/openfairdb/pkg/mmodel"
)

func placeRecentlyChangedParams(c *fiber.Ctx) place.RecentlyChangedParams {
	params := place.RecentlyChangedParams{}

	if v := c.Query("since"); v != "" {
		if seconds, err := strconv.ParseInt(v, 10, 64); err == nil {
			since := mmodel.TimeFromSeconds(seconds)
			params.Since = &since
		}
	}

	if v := c.Query("until"); v != "" {
		if seconds, err := strconv.ParseInt(v, 10, 64); err == nil {
			until := mmodel.TimeFromSeconds(seconds)
			params.Until = &until
		}
	}

	return params
}

func popularTagsParams(c *fiber.Ctx) place.MostPopularTagsParams {
	params := place.MostPopularTagsParams{}

	if v := c.Query("min_count"); v != "" {
		if count, err := strconv.ParseUint(v, 10, 64); err == nil {
			params.MinCount = &count
		}
	}

	if v := c.Query("max_count"); v != "" {
		if count, err := strconv.ParseUint(v, 10, 64); err == nil {
			params.MaxCount = &count
		}
	}

	return params
}

func eventsRequestFromQuery(c *fiber.Ctx) (*query.EventsRequest, error) {
	request := &query.EventsRequest{
		Text: c.Query("text"),
	}

	if v := c.Query("bbox"); v != "" {
		bbox, err := mmodel.ParseMapBbox(v)
		if err != nil {
			return nil, err
		}

		request.Bbox = &bbox
	}

	if v := c.Query("created_by"); v != "" {
		email, err := mmodel.ParseEmailAddress(v)
		if err != nil {
			return nil, err
		}

		request.CreatedBy = &email
	}

	if v := c.Query("limit"); v != "" {
		limit, err := strconv.Atoi(v)
		if err != nil {
			return nil, err
		}

		request.Limit = &limit
	}

	for param, target := range map[string]**time.Time{
		"start_min": &request.StartMin,
		"start_max": &request.StartMax,
		"end_min":   &request.EndMin,
		"end_max":   &request.EndMax,
	} {
		if v := c.Query(param); v != "" {
			seconds, err := strconv.ParseInt(v, 10, 64)
			if err != nil {
				return nil, err
			}

			t := mmodel.TimeFromSeconds(seconds)
			*target = &t
		}
	}

	if v := c.Query("tag"); v != "" {
		request.Tags = append(request.Tags, v)
	}

	if v := c.Query("tags"); v != "" {
		request.Tags = append(request.Tags, splitCommaList(v)...)
	}

	request.Tags = mmodel.PrepareTagList(request.Tags)

	return request, nil
}

func splitCommaList(s string) []string {
	var out []string

	start := 0

	for i := 0; i <= len(s); i++ {
		if i == len(s) || s[i] == ',' {
			if i > start {
				out = append(out, s[start:i])
			}

			start = i + 1
		}
	}

	return out
}
