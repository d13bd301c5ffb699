package domain

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestComment_UnmarshalJSON(t *testing.T) {
	tests := []struct {
		name string
		data string
		want Comment
	}{
		{
			name: "minimal",
			data: `{"id":"c1","comment_text":"hello"}`,
			want: Comment{ID: "c1", Text: "hello"},
		},
		{
			name: "integer timestamps",
			data: `{"id":"c2","comment_text":"hi","date":1700000000000,"date_updated":1700000001000}`,
			want: Comment{
				ID:        "c2",
				Text:      "hi",
				CreatedAt: int64Ptr(1700000000000),
				UpdatedAt: int64Ptr(1700000001000),
			},
		},
		{
			name: "string timestamps",
			data: `{"id":"c3","comment_text":"hi","date":"1700000000000"}`,
			want: Comment{ID: "c3", Text: "hi", CreatedAt: int64Ptr(1700000000000)},
		},
		{
			name: "null fields",
			data: `{"id":"c4","comment_text":null,"date":null,"user":null,"resolved":null}`,
			want: Comment{ID: "c4"},
		},
		{
			name: "reply with parent",
			data: `{"id":"c5","comment_text":"reply","parent_id":"c1"}`,
			want: Comment{ID: "c5", Text: "reply", ParentID: strPtr("c1")},
		},
		{
			name: "full",
			data: `{"id":"c6","comment_text":"done","resolved":true,"user":{"id":42,"username":"maya"},"date":"1700000000000"}`,
			want: Comment{
				ID:        "c6",
				Text:      "done",
				Resolved:  true,
				Commenter: &User{ID: 42, Username: "maya"},
				CreatedAt: int64Ptr(1700000000000),
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var got Comment
			require.NoError(t, json.Unmarshal([]byte(tt.data), &got))
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestComment_UnmarshalJSON_badTimestamp(t *testing.T) {
	var c Comment
	err := json.Unmarshal([]byte(`{"id":"c1","comment_text":"x","date":"not-a-number"}`), &c)
	assert.Error(t, err)
}

func TestComment_IsReply(t *testing.T) {
	top := Comment{ID: "c1"}
	reply := Comment{ID: "c2", ParentID: strPtr("c1")}

	assert.False(t, top.IsReply())
	assert.True(t, reply.IsReply())
}

func TestComment_Edited(t *testing.T) {
	tests := []struct {
		name    string
		comment Comment
		want    bool
	}{
		{"never updated", Comment{CreatedAt: int64Ptr(1000)}, false},
		{"updated later", Comment{CreatedAt: int64Ptr(1000), UpdatedAt: int64Ptr(2000)}, true},
		{"updated equals created", Comment{CreatedAt: int64Ptr(1000), UpdatedAt: int64Ptr(1000)}, false},
		{"updated without created", Comment{UpdatedAt: int64Ptr(2000)}, true},
		{"no timestamps", Comment{}, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.comment.Edited())
		})
	}
}

func TestComment_AuthorName(t *testing.T) {
	assert.Equal(t, "Unknown", (&Comment{}).AuthorName())
	assert.Equal(t, "Unknown", (&Comment{Commenter: &User{}}).AuthorName())
	assert.Equal(t, "maya", (&Comment{Commenter: &User{Username: "maya"}}).AuthorName())
}

func TestComment_CreatedTime(t *testing.T) {
	c := Comment{CreatedAt: int64Ptr(1700000000000)}
	assert.Equal(t, int64(1700000000), c.CreatedTime().Unix())
	assert.True(t, (&Comment{}).CreatedTime().IsZero())
}

func int64Ptr(v int64) *int64 { return &v }

func strPtr(s string) *string { return &s }
