package mmodel

import "time"

// Comment is a free-text reaction bound to a rating.
type Comment struct {
	ID         ID            `json:"id"`
	RatingID   ID            `json:"ratingId"`
	CreatedAt  time.Time     `json:"createdAt"`
	ArchivedAt *time.Time    `json:"archivedAt,omitempty"`
	Text       string        `json:"text"`
	CreatedBy  *EmailAddress `json:"createdBy,omitempty"`
	ArchivedBy *EmailAddress `json:"archivedBy,omitempty"`
}

// IsArchived reports whether the comment has been archived.
func (c *Comment) IsArchived() bool {
	return c.ArchivedAt != nil
}
