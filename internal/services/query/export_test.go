package query

import (
	"bytes"
	"context"
	"strings"
	"testing"
	"time"

	"go.uber.org/mock/gomock"

	"github.com/kartevonmorgen/openfairdb/internal/adapters/postgres/event"
	"github.com/kartevonmorgen/openfairdb/pkg/mmodel"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestICalEscape(t *testing.T) {
	assert.Equal(t, `a\,b\;c\\d\ne`, icalEscape("a,b;c\\d\ne"))
}

func TestExportEventsICal(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	eventRepo := event.NewMockRepository(ctrl)
	uc := &UseCase{EventRepo: eventRepo}

	ctx := context.Background()

	start := time.Date(2026, 9, 1, 18, 0, 0, 0, time.UTC)
	end := start.Add(2 * time.Hour)
	pos, _ := mmodel.NewMapPoint(48.0, 9.0)
	email := mmodel.EmailAddress("contact@example.com")

	events := []*mmodel.Event{
		{
			ID:    "e1",
			Title: "Open Day, all welcome",
			Start: start,
			End:   &end,
			Tags:  []string{"fair", "open"},
			Location: &mmodel.Location{
				Pos: pos,
				Address: &mmodel.Address{
					Street: "Main Street 1", Zip: "79098", City: "Freiburg", Country: "Germany",
				},
			},
			Contact: &mmodel.Contact{Name: "Alice", Email: &email, Phone: "123"},
		},
	}

	eventRepo.EXPECT().AllEvents(gomock.Any(), gomock.Any()).Return(events, nil).Times(1)

	var buf bytes.Buffer

	require.NoError(t, uc.ExportEventsICal(ctx, &buf, &EventsRequest{}, nil))

	out := buf.String()

	assert.True(t, strings.HasPrefix(out, "BEGIN:VCALENDAR\r\n"))
	assert.Contains(t, out, "BEGIN:VEVENT\r\n")
	assert.Contains(t, out, "UID:e1\r\n")
	assert.Contains(t, out, "SUMMARY:Open Day\\, all welcome\r\n")
	assert.Contains(t, out, "DTSTART:20260901T180000Z\r\n")
	assert.Contains(t, out, "DTEND:20260901T200000Z\r\n")
	assert.Contains(t, out, "CATEGORIES:fair\\,open\r\n")
	assert.Contains(t, out, "GEO:48;9\r\n")
	assert.Contains(t, out, "LOCATION:Main Street 1\\, 79098 Freiburg\\, Germany\r\n")
	assert.Contains(t, out, "CONTACT:Alice\\, contact@example.com\\, 123\r\n")
	assert.Contains(t, out, "CLASS:PUBLIC\r\n")
	assert.True(t, strings.HasSuffix(out, "END:VCALENDAR\r\n"))
}

func TestExportEventsCSVHeader(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	eventRepo := event.NewMockRepository(ctrl)
	uc := &UseCase{EventRepo: eventRepo}

	eventRepo.EXPECT().AllEvents(gomock.Any(), gomock.Any()).Return(nil, nil).Times(1)

	var buf bytes.Buffer

	require.NoError(t, uc.ExportEventsCSV(context.Background(), &buf, &EventsRequest{}, nil))

	lines := strings.Split(strings.TrimSpace(buf.String()), "\n")
	require.Len(t, lines, 1)
	assert.Equal(t, strings.Join(eventCSVHeader, ","), lines[0])
}
