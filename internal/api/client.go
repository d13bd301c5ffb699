// Package api implements the remote task service client and its in-memory
// mock.
package api

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"time"

	"github.com/taskdeck/taskdeck/internal/domain"
)

const defaultBaseURL = "https://api.clickup.com/api/v2"

const userAgent = "taskdeck/" + Version

// Version is the client version reported to the service.
const Version = "0.2.0"

// ClientConfig configures a Client. Zero fields get defaults.
type ClientConfig struct {
	HTTPClient *http.Client
	Token      string
	BaseURL    string
}

// Client talks to the task service over HTTP. It implements domain.API.
type Client struct {
	httpClient *http.Client
	baseURL    string
	token      string
}

var _ domain.API = (*Client)(nil)

// NewClient returns a client authenticating with cfg.Token.
func NewClient(cfg ClientConfig) *Client {
	hc := cfg.HTTPClient
	if hc == nil {
		hc = &http.Client{Timeout: 30 * time.Second}
	}
	base := cfg.BaseURL
	if base == "" {
		base = defaultBaseURL
	}
	return &Client{httpClient: hc, baseURL: base, token: cfg.Token}
}

// AuthorizedUser returns the user the token belongs to.
func (c *Client) AuthorizedUser(ctx context.Context) (*domain.User, error) {
	var resp struct {
		User domain.User `json:"user"`
	}
	if err := c.get(ctx, "/user", &resp); err != nil {
		return nil, err
	}
	return &resp.User, nil
}

// Workspaces returns the workspaces visible to the token. The service
// calls these teams.
func (c *Client) Workspaces(ctx context.Context) ([]domain.Workspace, error) {
	var resp struct {
		Teams []domain.Workspace `json:"teams"`
	}
	if err := c.get(ctx, "/team", &resp); err != nil {
		return nil, err
	}
	return resp.Teams, nil
}

// Spaces returns the spaces of a workspace.
func (c *Client) Spaces(ctx context.Context, workspaceID string) ([]domain.Space, error) {
	var resp struct {
		Spaces []domain.Space `json:"spaces"`
	}
	if err := c.get(ctx, "/team/"+url.PathEscape(workspaceID)+"/space", &resp); err != nil {
		return nil, err
	}
	return resp.Spaces, nil
}

// Folders returns the folders of a space.
func (c *Client) Folders(ctx context.Context, spaceID string) ([]domain.Folder, error) {
	var resp struct {
		Folders []domain.Folder `json:"folders"`
	}
	if err := c.get(ctx, "/space/"+url.PathEscape(spaceID)+"/folder", &resp); err != nil {
		return nil, err
	}
	return resp.Folders, nil
}

// Lists returns the lists of a folder.
func (c *Client) Lists(ctx context.Context, folderID string) ([]domain.List, error) {
	var resp struct {
		Lists []domain.List `json:"lists"`
	}
	if err := c.get(ctx, "/folder/"+url.PathEscape(folderID)+"/list", &resp); err != nil {
		return nil, err
	}
	return resp.Lists, nil
}

// FolderlessLists returns the lists that sit directly in a space.
func (c *Client) FolderlessLists(ctx context.Context, spaceID string) ([]domain.List, error) {
	var resp struct {
		Lists []domain.List `json:"lists"`
	}
	if err := c.get(ctx, "/space/"+url.PathEscape(spaceID)+"/list", &resp); err != nil {
		return nil, err
	}
	return resp.Lists, nil
}

// Tasks returns the tasks of a list.
func (c *Client) Tasks(ctx context.Context, listID string, filter domain.TaskFilter) ([]*domain.Task, error) {
	q := url.Values{}
	q.Set("archived", "false")
	q.Set("include_markdown_description", "true")
	if filter.IncludeClosed {
		q.Set("include_closed", "true")
	}
	if filter.IncludeSubtasks {
		q.Set("subtasks", "true")
	}
	for _, status := range filter.Statuses {
		q.Add("statuses[]", status)
	}

	var resp struct {
		Tasks []*domain.Task `json:"tasks"`
	}
	path := "/list/" + url.PathEscape(listID) + "/task?" + q.Encode()
	if err := c.get(ctx, path, &resp); err != nil {
		return nil, err
	}
	return resp.Tasks, nil
}

// Task returns a single task by ID.
func (c *Client) Task(ctx context.Context, taskID string) (*domain.Task, error) {
	var task domain.Task
	path := "/task/" + url.PathEscape(taskID) + "?include_markdown_description=true"
	if err := c.get(ctx, path, &task); err != nil {
		return nil, err
	}
	return &task, nil
}

// TaskComments returns the top-level comments of a task.
func (c *Client) TaskComments(ctx context.Context, taskID string) ([]domain.Comment, error) {
	var resp struct {
		Comments []domain.Comment `json:"comments"`
	}
	if err := c.get(ctx, "/task/"+url.PathEscape(taskID)+"/comment", &resp); err != nil {
		return nil, err
	}
	return resp.Comments, nil
}

// CommentReplies returns the replies of a top-level comment.
func (c *Client) CommentReplies(ctx context.Context, commentID string) ([]domain.Comment, error) {
	var resp struct {
		Comments []domain.Comment `json:"comments"`
	}
	if err := c.get(ctx, "/comment/"+url.PathEscape(commentID)+"/reply", &resp); err != nil {
		return nil, err
	}
	return resp.Comments, nil
}

type createCommentRequest struct {
	CommentText string `json:"comment_text"`
	NotifyAll   bool   `json:"notify_all"`
}

// CreateComment posts a new top-level comment on a task.
func (c *Client) CreateComment(ctx context.Context, taskID, text string) (*domain.Comment, error) {
	var created domain.Comment
	path := "/task/" + url.PathEscape(taskID) + "/comment"
	err := c.send(ctx, http.MethodPost, path, createCommentRequest{CommentText: text}, &created)
	if err != nil {
		return nil, err
	}
	if created.Text == "" {
		// The create response omits the body; echo what was sent.
		created.Text = text
	}
	return &created, nil
}

// CreateReply posts a reply under a top-level comment.
func (c *Client) CreateReply(ctx context.Context, parentID, text string) (*domain.Comment, error) {
	var created domain.Comment
	path := "/comment/" + url.PathEscape(parentID) + "/reply"
	err := c.send(ctx, http.MethodPost, path, createCommentRequest{CommentText: text}, &created)
	if err != nil {
		return nil, err
	}
	if created.Text == "" {
		created.Text = text
	}
	if created.ParentID == nil {
		pid := parentID
		created.ParentID = &pid
	}
	return &created, nil
}

// UpdateComment replaces the text of an existing comment.
func (c *Client) UpdateComment(ctx context.Context, commentID, text string) (*domain.Comment, error) {
	var updated domain.Comment
	path := "/comment/" + url.PathEscape(commentID)
	err := c.send(ctx, http.MethodPut, path, createCommentRequest{CommentText: text}, &updated)
	if err != nil {
		return nil, err
	}
	if updated.ID == "" {
		updated.ID = commentID
	}
	if updated.Text == "" {
		updated.Text = text
	}
	return &updated, nil
}

// SearchDocs returns the documents of a workspace.
func (c *Client) SearchDocs(ctx context.Context, workspaceID string) ([]domain.Document, error) {
	var resp struct {
		Docs []domain.Document `json:"docs"`
	}
	path := "/workspaces/" + url.PathEscape(workspaceID) + "/docs"
	if err := c.get(ctx, path, &resp); err != nil {
		return nil, err
	}
	return resp.Docs, nil
}

// DocPages returns the pages of a document with content.
func (c *Client) DocPages(ctx context.Context, workspaceID, docID string) ([]domain.Page, error) {
	var resp struct {
		Pages []domain.Page `json:"pages"`
	}
	path := "/workspaces/" + url.PathEscape(workspaceID) + "/docs/" + url.PathEscape(docID) +
		"/pages?content_format=text%2Fmd"
	if err := c.get(ctx, path, &resp); err != nil {
		return nil, err
	}
	return resp.Pages, nil
}

func (c *Client) get(ctx context.Context, path string, out any) error {
	return c.send(ctx, http.MethodGet, path, nil, out)
}

func (c *Client) send(ctx context.Context, method, path string, body, out any) error {
	var reqBody io.Reader
	if body != nil {
		buf, err := json.Marshal(body)
		if err != nil {
			return fmt.Errorf("encode request: %w", err)
		}
		reqBody = bytes.NewReader(buf)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, reqBody)
	if err != nil {
		return fmt.Errorf("build request: %w", err)
	}
	req.Header.Set("Authorization", c.token)
	req.Header.Set("Accept", "application/json")
	req.Header.Set("User-Agent", userAgent)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("request %s %s: %w", method, path, err)
	}
	defer resp.Body.Close()

	if err := checkStatus(resp); err != nil {
		return err
	}
	if out == nil {
		return nil
	}
	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("decode response: %w", err)
	}
	return nil
}

// checkStatus maps HTTP failures onto domain errors where a sentinel
// exists, keeping the service's error body for everything else.
func checkStatus(resp *http.Response) error {
	if resp.StatusCode >= 200 && resp.StatusCode < 300 {
		return nil
	}
	switch resp.StatusCode {
	case http.StatusUnauthorized, http.StatusForbidden:
		return domain.ErrNotAuthenticated
	case http.StatusTooManyRequests:
		return domain.ErrRateLimited
	}
	body, _ := io.ReadAll(io.LimitReader(resp.Body, 512))
	return fmt.Errorf("api error (%d): %s", resp.StatusCode, bytes.TrimSpace(body))
}
