package query

import (
	"context"
	"encoding/csv"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/kartevonmorgen/openfairdb/pkg"
	"github.com/kartevonmorgen/openfairdb/pkg/mmodel"
	"github.com/kartevonmorgen/openfairdb/pkg/mopentelemetry"
)

var placeCSVHeader = []string{
	"id", "created", "version", "title", "description", "lat", "lng",
	"street", "zip", "city", "country", "state", "homepage",
	"categories", "tags", "license", "image_url", "image_link_url", "avg_rating",
}

// ExportPlacesCSV writes one CSV row per visible place within the bbox.
func (uc *UseCase) ExportPlacesCSV(ctx context.Context, w io.Writer, bbox mmodel.MapBbox) error {
	logger := pkg.NewLoggerFromContext(ctx)
	tracer := pkg.NewTracerFromContext(ctx)

	ctx, span := tracer.Start(ctx, "query.export_places_csv")
	defer span.End()

	result, err := uc.SearchPlaces(ctx, &SearchPlacesRequest{Bbox: bbox, Limit: maxSearchLimit})
	if err != nil {
		mopentelemetry.HandleSpanError(&span, "Failed to search places", err)

		return err
	}

	ids := make([]mmodel.ID, len(result.Visible))
	for i, doc := range result.Visible {
		ids[i] = mmodel.ID(doc.ID)
	}

	places, err := uc.PlaceRepo.GetPlaces(ctx, ids)
	if err != nil {
		mopentelemetry.HandleSpanError(&span, "Failed to load places", err)

		return err
	}

	ratingsByID := make(map[string]float64, len(result.Visible))
	for _, doc := range result.Visible {
		ratingsByID[doc.ID] = doc.Total
	}

	writer := csv.NewWriter(w)

	if err := writer.Write(placeCSVHeader); err != nil {
		return err
	}

	for _, placeWithStatus := range places {
		place := placeWithStatus.Place

		var street, zip, city, country, state string
		if addr := place.Location.Address; addr != nil {
			street, zip, city, country, state = addr.Street, addr.Zip, addr.City, addr.Country, addr.State
		}

		var homepage, imageURL, imageLinkURL string
		if links := place.Links; links != nil {
			homepage, imageURL, imageLinkURL = links.Homepage, links.Image, links.ImageHref
		}

		categoryIDs, tags := mmodel.SplitCategoriesFromTags(place.Tags)

		categories := make([]string, len(categoryIDs))
		for i, id := range categoryIDs {
			categories[i] = id.String()
		}

		record := []string{
			place.ID.String(),
			strconv.FormatInt(mmodel.TimestampSeconds(place.Created.At), 10),
			strconv.FormatUint(uint64(place.Revision), 10),
			place.Title,
			place.Description,
			formatFloat(place.Location.Pos.Lat),
			formatFloat(place.Location.Pos.Lng),
			street, zip, city, country, state,
			homepage,
			strings.Join(categories, ","),
			strings.Join(tags, ","),
			place.License,
			imageURL,
			imageLinkURL,
			formatFloat(ratingsByID[place.ID.String()]),
		}

		if err := writer.Write(record); err != nil {
			return err
		}
	}

	writer.Flush()

	if err := writer.Error(); err != nil {
		logger.Errorf("Error writing place export: %v", err)

		return err
	}

	return nil
}

var eventCSVHeader = []string{
	"id", "created_by", "organizer", "title", "description", "start", "end",
	"lat", "lng", "street", "zip", "city", "country", "state",
	"email", "phone", "homepage", "image_url", "image_link_url", "tags",
}

// ExportEventsCSV writes one CSV row per matching non-archived event.
// createdBy values are exposed only to the events owned by the organization.
func (uc *UseCase) ExportEventsCSV(ctx context.Context, w io.Writer, request *EventsRequest, org *mmodel.Organization) error {
	tracer := pkg.NewTracerFromContext(ctx)

	ctx, span := tracer.Start(ctx, "query.export_events_csv")
	defer span.End()

	events, err := uc.QueryEvents(ctx, request, org)
	if err != nil {
		mopentelemetry.HandleSpanError(&span, "Failed to query events", err)

		return err
	}

	writer := csv.NewWriter(w)

	if err := writer.Write(eventCSVHeader); err != nil {
		return err
	}

	for _, event := range events {
		record := eventCSVRecord(event, org != nil)

		if err := writer.Write(record); err != nil {
			return err
		}
	}

	writer.Flush()

	return writer.Error()
}

func eventCSVRecord(event *mmodel.Event, includeCreator bool) []string {
	var createdBy string
	if includeCreator && event.CreatedBy != nil {
		createdBy = event.CreatedBy.String()
	}

	var organizer string
	if event.Organizer != nil {
		organizer = *event.Organizer
	}

	var end string
	if event.End != nil {
		end = strconv.FormatInt(mmodel.TimestampSeconds(*event.End), 10)
	}

	var lat, lng, street, zip, city, country, state string

	if location := event.Location; location != nil {
		if location.Pos.IsValid() {
			lat = formatFloat(location.Pos.Lat)
			lng = formatFloat(location.Pos.Lng)
		}

		if addr := location.Address; addr != nil {
			street, zip, city, country, state = addr.Street, addr.Zip, addr.City, addr.Country, addr.State
		}
	}

	var email, phone string

	if contact := event.Contact; contact != nil {
		if contact.Email != nil {
			email = contact.Email.String()
		}

		phone = contact.Phone
	}

	return []string{
		event.ID.String(),
		createdBy,
		organizer,
		event.Title,
		event.Description,
		strconv.FormatInt(mmodel.TimestampSeconds(event.Start), 10),
		end,
		lat, lng, street, zip, city, country, state,
		email, phone,
		event.Homepage,
		event.ImageURL,
		event.ImageLinkURL,
		strings.Join(event.Tags, ","),
	}
}

const icalTimeLayout = "20060102T150405Z"

// ExportEventsICal writes a VCALENDAR with one VEVENT per matching event.
func (uc *UseCase) ExportEventsICal(ctx context.Context, w io.Writer, request *EventsRequest, org *mmodel.Organization) error {
	tracer := pkg.NewTracerFromContext(ctx)

	ctx, span := tracer.Start(ctx, "query.export_events_ical")
	defer span.End()

	events, err := uc.QueryEvents(ctx, request, org)
	if err != nil {
		mopentelemetry.HandleSpanError(&span, "Failed to query events", err)

		return err
	}

	var b strings.Builder

	b.WriteString("BEGIN:VCALENDAR\r\nVERSION:2.0\r\nPRODID:-//OpenFairDB//EN\r\n")

	for _, event := range events {
		writeVEvent(&b, event)
	}

	b.WriteString("END:VCALENDAR\r\n")

	_, err = io.WriteString(w, b.String())

	return err
}

func writeVEvent(b *strings.Builder, event *mmodel.Event) {
	b.WriteString("BEGIN:VEVENT\r\n")
	fmt.Fprintf(b, "UID:%s\r\n", event.ID)
	fmt.Fprintf(b, "SUMMARY:%s\r\n", icalEscape(event.Title))
	fmt.Fprintf(b, "DTSTART:%s\r\n", event.Start.UTC().Format(icalTimeLayout))

	if event.End != nil {
		fmt.Fprintf(b, "DTEND:%s\r\n", event.End.UTC().Format(icalTimeLayout))
	}

	if len(event.Tags) > 0 {
		fmt.Fprintf(b, "CATEGORIES:%s\r\n", icalEscape(strings.Join(event.Tags, ",")))
	}

	if location := event.Location; location != nil {
		if location.Pos.IsValid() {
			fmt.Fprintf(b, "GEO:%s;%s\r\n", formatFloat(location.Pos.Lat), formatFloat(location.Pos.Lng))
		}

		if addr := location.Address; addr != nil && !addr.IsEmpty() {
			parts := []string{addr.Street, strings.TrimSpace(addr.Zip + " " + addr.City), addr.Country, addr.State}
			nonEmpty := make([]string, 0, len(parts))

			for _, part := range parts {
				if strings.TrimSpace(part) != "" {
					nonEmpty = append(nonEmpty, strings.TrimSpace(part))
				}
			}

			fmt.Fprintf(b, "LOCATION:%s\r\n", icalEscape(strings.Join(nonEmpty, ", ")))
		}
	}

	if contact := event.Contact; contact != nil && !contact.IsEmpty() {
		parts := []string{contact.Name}
		if contact.Email != nil {
			parts = append(parts, contact.Email.String())
		}

		parts = append(parts, contact.Phone)

		nonEmpty := make([]string, 0, len(parts))

		for _, part := range parts {
			if strings.TrimSpace(part) != "" {
				nonEmpty = append(nonEmpty, strings.TrimSpace(part))
			}
		}

		if len(nonEmpty) > 0 {
			fmt.Fprintf(b, "CONTACT:%s\r\n", icalEscape(strings.Join(nonEmpty, ", ")))
		}
	}

	b.WriteString("CLASS:PUBLIC\r\nEND:VEVENT\r\n")
}

// icalEscape escapes the characters reserved by RFC 5545 text values.
func icalEscape(s string) string {
	replacer := strings.NewReplacer(
		"\\", "\\\\",
		";", "\\;",
		",", "\\,",
		"\n", "\\n",
	)

	return replacer.Replace(s)
}

func formatFloat(f float64) string {
	return strconv.FormatFloat(f, 'f', -1, 64)
}
