// Package domain contains core business entities and interfaces.
package domain

import (
	"encoding/json"
	"strconv"
	"time"
)

// Comment represents a comment attached to a task.
// A comment with a nil ParentID is a top-level comment; otherwise it is a
// reply to the comment with that id. The service models exactly two levels:
// a reply never has replies of its own.
// Fields are ordered to minimize memory padding.
type Comment struct {
	Commenter   *User   `json:"user,omitempty"`
	CreatedAt   *int64  `json:"date,omitempty"`
	UpdatedAt   *int64  `json:"date_updated,omitempty"`
	ParentID    *string `json:"parent_id,omitempty"`
	ID          string  `json:"id"`
	Text        string  `json:"comment_text"`
	TextPreview string  `json:"text_preview,omitempty"`
	Resolved    bool    `json:"resolved"`
}

// IsReply reports whether the comment is a reply to another comment.
func (c *Comment) IsReply() bool {
	return c.ParentID != nil
}

// CreatedTime returns the creation time, or the zero time if unknown.
// Timestamps are Unix milliseconds as returned by the service.
func (c *Comment) CreatedTime() time.Time {
	if c.CreatedAt == nil {
		return time.Time{}
	}
	return time.UnixMilli(*c.CreatedAt)
}

// Edited reports whether the comment was modified after creation.
func (c *Comment) Edited() bool {
	if c.UpdatedAt == nil {
		return false
	}
	return c.CreatedAt == nil || *c.UpdatedAt != *c.CreatedAt
}

// AuthorName returns the commenter's username, or "Unknown" when the
// service omitted the user record.
func (c *Comment) AuthorName() string {
	if c.Commenter == nil || c.Commenter.Username == "" {
		return "Unknown"
	}
	return c.Commenter.Username
}

// User is a user reference in comment and task context.
type User struct {
	ID       int64  `json:"id"`
	Username string `json:"username"`
	Email    string `json:"email,omitempty"`
	Color    string `json:"color,omitempty"`
	Initials string `json:"initials,omitempty"`
}

// UnmarshalJSON decodes a comment, tolerating the service's loose typing:
// null text, and timestamps sent as either a number or a decimal string.
func (c *Comment) UnmarshalJSON(data []byte) error {
	var raw struct {
		Commenter   *User           `json:"user"`
		CreatedAt   json.RawMessage `json:"date"`
		UpdatedAt   json.RawMessage `json:"date_updated"`
		ParentID    *string         `json:"parent_id"`
		ID          string          `json:"id"`
		Text        *string         `json:"comment_text"`
		TextPreview *string         `json:"text_preview"`
		Resolved    *bool           `json:"resolved"`
	}
	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}

	c.ID = raw.ID
	c.Commenter = raw.Commenter
	c.ParentID = raw.ParentID
	if raw.Text != nil {
		c.Text = *raw.Text
	} else {
		c.Text = ""
	}
	if raw.TextPreview != nil {
		c.TextPreview = *raw.TextPreview
	} else {
		c.TextPreview = ""
	}
	if raw.Resolved != nil {
		c.Resolved = *raw.Resolved
	} else {
		c.Resolved = false
	}

	var err error
	if c.CreatedAt, err = parseFlexibleMillis(raw.CreatedAt); err != nil {
		return err
	}
	if c.UpdatedAt, err = parseFlexibleMillis(raw.UpdatedAt); err != nil {
		return err
	}
	return nil
}

// parseFlexibleMillis parses a timestamp field that the service returns as
// either an integer, a decimal string, or null.
func parseFlexibleMillis(raw json.RawMessage) (*int64, error) {
	if len(raw) == 0 || string(raw) == "null" {
		return nil, nil
	}
	var n int64
	if err := json.Unmarshal(raw, &n); err == nil {
		return &n, nil
	}
	var s string
	if err := json.Unmarshal(raw, &s); err != nil {
		return nil, err
	}
	if s == "" {
		return nil, nil
	}
	n, err := strconv.ParseInt(s, 10, 64)
	if err != nil {
		return nil, err
	}
	return &n, nil
}
