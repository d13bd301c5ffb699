package domain

// Workspace is the top of the task hierarchy. The service also calls this
// a team.
type Workspace struct {
	ID          string `json:"id"`
	Name        string `json:"name"`
	Color       string `json:"color,omitempty"`
	MemberCount int    `json:"member_count,omitempty"`
}

// Space groups folders and lists inside a workspace.
type Space struct {
	ID      string `json:"id"`
	Name    string `json:"name"`
	Color   string `json:"color,omitempty"`
	Private bool   `json:"private"`
}

// Folder groups lists inside a space.
type Folder struct {
	Space   *SpaceRef `json:"space,omitempty"`
	ID      string    `json:"id"`
	Name    string    `json:"name"`
	Color   string    `json:"color,omitempty"`
	Private bool      `json:"private"`
	Lists   []List    `json:"lists,omitempty"`
}

// List holds tasks. A list lives either in a folder or directly in a space.
type List struct {
	Space     *SpaceRef  `json:"space,omitempty"`
	Folder    *FolderRef `json:"folder,omitempty"`
	TaskCount *int       `json:"task_count,omitempty"`
	ID        string     `json:"id"`
	Name      string     `json:"name"`
	Content   string     `json:"content,omitempty"`
	Archived  bool       `json:"archived"`
}

// SpaceRef is a minimal reference to a space.
type SpaceRef struct {
	ID   string `json:"id"`
	Name string `json:"name,omitempty"`
}

// FolderRef is a minimal reference to a folder.
type FolderRef struct {
	ID   string `json:"id"`
	Name string `json:"name,omitempty"`
}
