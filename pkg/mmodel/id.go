package mmodel

import (
	"strings"
	"time"

	"github.com/kartevonmorgen/openfairdb/pkg"
)

// ID is an opaque, globally unique textual identifier of an entity.
// It is generated once at entity creation and immutable afterwards.
type ID string

// NewID generates a fresh identifier: a UUIDv7 with the hyphens stripped,
// i.e. 32 lowercase hex characters.
func NewID() ID {
	return ID(strings.ReplaceAll(pkg.GenerateUUIDv7().String(), "-", ""))
}

// String implements fmt.Stringer.
func (id ID) String() string {
	return string(id)
}

// IsEmpty reports whether the identifier is blank.
func (id ID) IsEmpty() bool {
	return strings.TrimSpace(string(id)) == ""
}

// Revision is a monotonic, non-negative version number of a place.
// The initial revision of a new place is 0.
type Revision uint64

// InitialRevision is the revision of a freshly created place.
const InitialRevision Revision = 0

// Next returns the revision that succeeds this one.
func (r Revision) Next() Revision {
	return r + 1
}

// IsInitial reports whether this is the first revision.
func (r Revision) IsInitial() bool {
	return r == InitialRevision
}

// TimestampMillis converts a time to the Unix-millisecond representation
// persisted in `*_at` columns.
func TimestampMillis(t time.Time) int64 {
	return t.UnixMilli()
}

// TimeFromMillis converts a persisted Unix-millisecond value back to UTC time.
func TimeFromMillis(ms int64) time.Time {
	return time.UnixMilli(ms).UTC()
}

// TimestampSeconds converts a time to the Unix-second representation used by
// event start/end columns.
func TimestampSeconds(t time.Time) int64 {
	return t.Unix()
}

// TimeFromSeconds converts a persisted Unix-second value back to UTC time.
func TimeFromSeconds(s int64) time.Time {
	return time.Unix(s, 0).UTC()
}

// Activity records who did something and when.
type Activity struct {
	At time.Time     `json:"at"`
	By *EmailAddress `json:"by,omitempty"`
}

// NewActivity creates an activity stamped with the current UTC time.
func NewActivity(by *EmailAddress) Activity {
	return Activity{
		At: time.Now().UTC(),
		By: by,
	}
}

// ActivityLog is an activity enriched with an optional context and comment,
// used for review records.
type ActivityLog struct {
	Activity
	Context *string `json:"context,omitempty"`
	Comment *string `json:"comment,omitempty"`
}
