package domain

import (
	"encoding/json"
	"sort"
	"strings"
	"time"
)

// Task is a work item belonging to a list.
type Task struct {
	Description *Description   `json:"description,omitempty"`
	Status      *TaskStatus    `json:"status,omitempty"`
	Priority    *TaskPriority  `json:"priority,omitempty"`
	Creator     *User          `json:"creator,omitempty"`
	DueDate     *int64         `json:"due_date,omitempty"`
	StartDate   *int64         `json:"start_date,omitempty"`
	CreatedAt   *int64         `json:"date_created,omitempty"`
	UpdatedAt   *int64         `json:"date_updated,omitempty"`
	Parent      *TaskRef       `json:"parent,omitempty"`
	List        *ListRef       `json:"list,omitempty"`
	Assignees   []User         `json:"assignees,omitempty"`
	Tags        []Tag          `json:"tags,omitempty"`
	ID          string         `json:"id"`
	Name        string         `json:"name"`
	URL         string         `json:"url,omitempty"`
	OrderIndex  string         `json:"orderindex,omitempty"`
}

// TaskStatus is the workflow state a task sits in.
type TaskStatus struct {
	Status string `json:"status"`
	Color  string `json:"color,omitempty"`
	Type   string `json:"type,omitempty"`
}

// TaskPriority is the urgency label attached to a task.
type TaskPriority struct {
	Priority string `json:"priority"`
	Color    string `json:"color,omitempty"`
}

// Tag is a label attached to a task.
type Tag struct {
	Name  string `json:"name"`
	Color string `json:"tag_fg,omitempty"`
}

// TaskRef is a minimal reference to another task.
type TaskRef struct {
	Name *string `json:"name,omitempty"`
	ID   string  `json:"id"`
}

// ListRef is a minimal reference to the list a task belongs to.
type ListRef struct {
	Name *string `json:"name,omitempty"`
	ID   string  `json:"id"`
}

// Description holds a task description that the service returns either as a
// plain string or as an object carrying markdown, text, and html variants.
type Description struct {
	Markdown string
	Text     string
	HTML     string
}

// AsText returns the best available rendering of the description,
// preferring markdown over plain text over html.
func (d *Description) AsText() string {
	if d == nil {
		return ""
	}
	if d.Markdown != "" {
		return d.Markdown
	}
	if d.Text != "" {
		return d.Text
	}
	return d.HTML
}

// UnmarshalJSON accepts both the plain-string and rich-object forms.
func (d *Description) UnmarshalJSON(data []byte) error {
	var plain string
	if err := json.Unmarshal(data, &plain); err == nil {
		*d = Description{Text: plain}
		return nil
	}
	var rich struct {
		Markdown *string `json:"markdown"`
		Text     *string `json:"text"`
		HTML     *string `json:"html"`
	}
	if err := json.Unmarshal(data, &rich); err != nil {
		return err
	}
	*d = Description{}
	if rich.Markdown != nil {
		d.Markdown = *rich.Markdown
	}
	if rich.Text != nil {
		d.Text = *rich.Text
	}
	if rich.HTML != nil {
		d.HTML = *rich.HTML
	}
	return nil
}

// MarshalJSON writes the description back in its plain-string form.
func (d Description) MarshalJSON() ([]byte, error) {
	return json.Marshal(d.AsText())
}

// UnmarshalJSON decodes a task, tolerating timestamps sent as either a
// number or a decimal string and null in place of optional objects.
func (t *Task) UnmarshalJSON(data []byte) error {
	type alias Task
	var raw struct {
		alias
		DueDate   json.RawMessage `json:"due_date"`
		StartDate json.RawMessage `json:"start_date"`
		CreatedAt json.RawMessage `json:"date_created"`
		UpdatedAt json.RawMessage `json:"date_updated"`
	}
	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}
	*t = Task(raw.alias)

	var err error
	if t.DueDate, err = parseFlexibleMillis(raw.DueDate); err != nil {
		return err
	}
	if t.StartDate, err = parseFlexibleMillis(raw.StartDate); err != nil {
		return err
	}
	if t.CreatedAt, err = parseFlexibleMillis(raw.CreatedAt); err != nil {
		return err
	}
	if t.UpdatedAt, err = parseFlexibleMillis(raw.UpdatedAt); err != nil {
		return err
	}
	return nil
}

// StatusName returns the task's status label, or "" when the service
// omitted the status object.
func (t *Task) StatusName() string {
	if t.Status == nil {
		return ""
	}
	return t.Status.Status
}

// PriorityName returns the task's priority label, or "" when unset.
func (t *Task) PriorityName() string {
	if t.Priority == nil {
		return ""
	}
	return t.Priority.Priority
}

// DueTime returns the due date, or the zero time if none is set.
func (t *Task) DueTime() time.Time {
	if t.DueDate == nil {
		return time.Time{}
	}
	return time.UnixMilli(*t.DueDate)
}

// Overdue reports whether the task's due date has passed as of now.
func (t *Task) Overdue(now time.Time) bool {
	if t.DueDate == nil {
		return false
	}
	return t.DueTime().Before(now)
}

var statusPriority = map[string]int{
	"urgent review": 0,
	"in review":     1,
	"in progress":   2,
	"to do":         3,
	"open":          3,
	"backlog":       4,
	"done":          5,
	"complete":      5,
	"closed":        6,
}

// SortTasks orders tasks for display: active statuses first, then by due
// date with undated tasks last, then by name for a stable order.
func SortTasks(tasks []*Task) {
	sort.SliceStable(tasks, func(i, j int) bool {
		pi, pj := taskStatusRank(tasks[i]), taskStatusRank(tasks[j])
		if pi != pj {
			return pi < pj
		}
		di, dj := tasks[i].DueDate, tasks[j].DueDate
		switch {
		case di != nil && dj != nil && *di != *dj:
			return *di < *dj
		case di != nil && dj == nil:
			return true
		case di == nil && dj != nil:
			return false
		}
		return tasks[i].Name < tasks[j].Name
	})
}

func taskStatusRank(t *Task) int {
	if p, ok := statusPriority[strings.ToLower(t.StatusName())]; ok {
		return p
	}
	// Unknown statuses sort with the active ones rather than vanishing
	// to the bottom of the list.
	return 3
}
