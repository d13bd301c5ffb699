// Package app provides the dependency injection container for the
// application.
package app

import (
	"log/slog"
	"path/filepath"

	"github.com/taskdeck/taskdeck/internal/api"
	"github.com/taskdeck/taskdeck/internal/domain"
	"github.com/taskdeck/taskdeck/internal/infra/cache"
	"github.com/taskdeck/taskdeck/internal/infra/config"
	"github.com/taskdeck/taskdeck/internal/infra/logging"
	"github.com/taskdeck/taskdeck/internal/infra/token"
	"github.com/taskdeck/taskdeck/internal/usecase"
)

// Paths holds the filesystem locations the application uses.
type Paths struct {
	ConfigDir  string // Per-user config directory
	ConfigFile string // Path to config.toml
	TokenFile  string // Path to the token file
	CacheFile  string // Path to cache.json
	LogFile    string // Path to the log file
}

// Options configures container construction.
// Fields are ordered to minimize memory padding.
type Options struct {
	ConfigDir string // Override for the config directory, used by tests
	Mock      bool   // Use the in-memory mock service instead of HTTP
}

// Container provides dependency injection for the application. It holds
// all port implementations and provides factory methods for use cases.
type Container struct {
	API    domain.API
	Tokens domain.TokenStore
	Cache  domain.Cache
	Clock  domain.Clock

	Logger   *slog.Logger
	Config   *config.Config
	Paths    Paths
	loader   *config.Loader
	closeLog func() error

	mock bool
}

// New creates a Container wired to the user's config, token, and cache.
// The service client is only constructed once a token is available; before
// login, API is nil unless opts.Mock is set.
func New(opts Options) (*Container, error) {
	configDir := opts.ConfigDir
	if configDir == "" {
		configDir = config.DefaultConfigDir()
	}

	loader := config.NewLoaderWithDir(configDir)
	cfg, err := loader.Load()
	if err != nil {
		return nil, err
	}

	paths := Paths{
		ConfigDir:  configDir,
		ConfigFile: loader.Path(),
		TokenFile:  filepath.Join(configDir, "token"),
		CacheFile:  filepath.Join(configDir, "cache.json"),
		LogFile:    cfg.Log.File,
	}
	if paths.LogFile == "" {
		paths.LogFile = logging.DefaultPath()
	}

	logger, closeLog, err := logging.New(paths.LogFile, logging.ParseLevel(cfg.Log.Level))
	if err != nil {
		return nil, err
	}

	c := &Container{
		Tokens:   token.NewStore(configDir),
		Cache:    cache.New(paths.CacheFile),
		Clock:    domain.RealClock{},
		Logger:   logger,
		Config:   cfg,
		Paths:    paths,
		loader:   loader,
		closeLog: closeLog,
		mock:     opts.Mock,
	}

	if opts.Mock {
		c.API = api.NewMock()
		return c, nil
	}

	// A missing token is not an error here; the auth screen handles it.
	if tok, err := c.Tokens.Token(); err == nil {
		c.API = c.NewAPI(tok)
	}
	return c, nil
}

// NewWithDeps creates a Container with custom dependencies for testing.
func NewWithDeps(apiClient domain.API, tokens domain.TokenStore, cacheStore domain.Cache, clock domain.Clock, logger *slog.Logger) *Container {
	return &Container{
		API:      apiClient,
		Tokens:   tokens,
		Cache:    cacheStore,
		Clock:    clock,
		Logger:   logger,
		Config:   config.Default(),
		closeLog: func() error { return nil },
	}
}

// NewAPI builds a service client for the given token, honoring the
// configured base URL override.
func (c *Container) NewAPI(tok string) domain.API {
	if c.mock {
		return api.NewMock()
	}
	return api.NewClient(api.ClientConfig{Token: tok, BaseURL: c.Config.API.BaseURL})
}

// SetAPI swaps the active service client, used after a successful login.
func (c *Container) SetAPI(apiClient domain.API) {
	c.API = apiClient
}

// SaveConfig writes the in-memory config back to disk. A container built
// without a config file (NewWithDeps) silently skips the write.
func (c *Container) SaveConfig() error {
	if c.loader == nil {
		return nil
	}
	return c.loader.Save(c.Config)
}

// Authenticated reports whether a service client is available.
func (c *Container) Authenticated() bool {
	return c.API != nil
}

// Close releases resources held by the container.
func (c *Container) Close() error {
	if c.closeLog == nil {
		return nil
	}
	return c.closeLog()
}

// UseCase factory methods

// LoadCommentsUseCase returns a new LoadComments use case.
func (c *Container) LoadCommentsUseCase() *usecase.LoadComments {
	return usecase.NewLoadComments(c.API, c.Cache)
}

// CreateCommentUseCase returns a new CreateComment use case.
func (c *Container) CreateCommentUseCase() *usecase.CreateComment {
	return usecase.NewCreateComment(c.API, c.Cache)
}

// UpdateCommentUseCase returns a new UpdateComment use case.
func (c *Container) UpdateCommentUseCase() *usecase.UpdateComment {
	return usecase.NewUpdateComment(c.API, c.Cache)
}

// ListTasksUseCase returns a new ListTasks use case.
func (c *Container) ListTasksUseCase() *usecase.ListTasks {
	return usecase.NewListTasks(c.API, c.Cache)
}

// ListWorkspacesUseCase returns a new ListWorkspaces use case.
func (c *Container) ListWorkspacesUseCase() *usecase.ListWorkspaces {
	return usecase.NewListWorkspaces(c.API, c.Cache)
}

// ListSpacesUseCase returns a new ListSpaces use case.
func (c *Container) ListSpacesUseCase() *usecase.ListSpaces {
	return usecase.NewListSpaces(c.API, c.Cache)
}

// ListFoldersUseCase returns a new ListFolders use case.
func (c *Container) ListFoldersUseCase() *usecase.ListFolders {
	return usecase.NewListFolders(c.API, c.Cache)
}

// ListListsUseCase returns a new ListLists use case.
func (c *Container) ListListsUseCase() *usecase.ListLists {
	return usecase.NewListLists(c.API, c.Cache)
}

// SearchDocsUseCase returns a new SearchDocs use case.
func (c *Container) SearchDocsUseCase() *usecase.SearchDocs {
	return usecase.NewSearchDocs(c.API, c.Cache)
}

// LoadPagesUseCase returns a new LoadPages use case.
func (c *Container) LoadPagesUseCase() *usecase.LoadPages {
	return usecase.NewLoadPages(c.API, c.Cache)
}

// LoginUseCase returns a new Login use case.
func (c *Container) LoginUseCase() *usecase.Login {
	return usecase.NewLogin(c.NewAPI, c.Tokens)
}

// AuthStatusUseCase returns a new AuthStatus use case.
func (c *Container) AuthStatusUseCase() *usecase.AuthStatus {
	return usecase.NewAuthStatus(c.NewAPI, c.Tokens)
}

// LogoutUseCase returns a new Logout use case.
func (c *Container) LogoutUseCase() *usecase.Logout {
	return usecase.NewLogout(c.Tokens)
}
