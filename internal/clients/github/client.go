// Package github loads and saves the character sheet as a JSON file in a GitHub repository
package github

//go:generate mockgen -destination=mock/mock_client.go -package=mockgithub . Client

import (
	"context"
	"errors"
	"net/http"
	"net/url"
	"strings"

	"github.com/google/go-github/v66/github"

	"github.com/KirkDiggler/aegis-tracker/internal/domain/sheet"
	apperr "github.com/KirkDiggler/aegis-tracker/internal/errors"
)

const (
	DefaultRepository = "dandmin/DnDApp"
	DefaultPath       = "aegis_data.json"

	// ExportFileName is the name offered for a downloaded backup
	ExportFileName = "aegis_backup.json"

	createMessage = "Initial Save"
	updateMessage = "Session Save"
)

// Client is the persistence gateway for the sheet document.
// Errors carry CodeNotFound, CodeUnavailable (transport or missing token) or CodeDecode.
type Client interface {
	Load(ctx context.Context) (*sheet.CharacterSheet, error)
	Save(ctx context.Context, s *sheet.CharacterSheet) error
}

// Config holds the repository coordinates and credentials
type Config struct {
	Token      string
	Repository string // owner/name
	Path       string
	Branch     string // empty means the default branch
	HTTPClient *http.Client
	BaseURL    string // API root override, mostly for tests
}

type client struct {
	gh     *github.Client
	token  string
	owner  string
	repo   string
	path   string
	branch string
}

// New creates a gateway. A missing token is not an error here; Load and Save report it.
func New(cfg *Config) (Client, error) {
	if cfg == nil {
		return nil, apperr.InvalidArgument("cfg cannot be nil")
	}

	repository := cfg.Repository
	if repository == "" {
		repository = DefaultRepository
	}
	owner, repo, ok := strings.Cut(repository, "/")
	if !ok || owner == "" || repo == "" {
		return nil, apperr.InvalidArgumentf("repository must be owner/name, got %q", repository)
	}

	path := cfg.Path
	if path == "" {
		path = DefaultPath
	}

	gh := github.NewClient(cfg.HTTPClient)
	if cfg.Token != "" {
		gh = gh.WithAuthToken(cfg.Token)
	}

	if cfg.BaseURL != "" {
		base := cfg.BaseURL
		if !strings.HasSuffix(base, "/") {
			base += "/"
		}
		u, err := url.Parse(base)
		if err != nil {
			return nil, apperr.InvalidArgumentf("invalid GitHub base URL %q", cfg.BaseURL)
		}
		gh.BaseURL = u
	}

	return &client{
		gh:     gh,
		token:  cfg.Token,
		owner:  owner,
		repo:   repo,
		path:   path,
		branch: cfg.Branch,
	}, nil
}

// Load fetches and decodes the sheet document
func (c *client) Load(ctx context.Context) (*sheet.CharacterSheet, error) {
	if c.token == "" {
		return nil, apperr.Unavailablef("no GitHub token configured")
	}

	file, err := c.fetch(ctx)
	if err != nil {
		return nil, err
	}

	content, err := file.GetContent()
	if err != nil {
		return nil, apperr.WrapWithCode(err, apperr.CodeDecode, "failed to decode file content").
			WithMeta("path", c.path)
	}

	s, err := sheet.Decode([]byte(content))
	if err != nil {
		return nil, apperr.WrapWithCode(err, apperr.CodeDecode, "saved sheet is malformed").
			WithMeta("path", c.path)
	}

	return s, nil
}

// Save writes the sheet, updating the file when it exists and creating it otherwise
func (c *client) Save(ctx context.Context, s *sheet.CharacterSheet) error {
	if c.token == "" {
		return apperr.Unavailablef("no GitHub token configured")
	}

	data, err := sheet.Encode(s)
	if err != nil {
		return err
	}

	opts := &github.RepositoryContentFileOptions{
		Content: data,
	}
	if c.branch != "" {
		opts.Branch = github.String(c.branch)
	}

	existing, err := c.fetch(ctx)
	switch {
	case err == nil:
		opts.Message = github.String(updateMessage)
		opts.SHA = github.String(existing.GetSHA())
		_, _, err = c.gh.Repositories.UpdateFile(ctx, c.owner, c.repo, c.path, opts)
	case apperr.IsNotFound(err):
		opts.Message = github.String(createMessage)
		_, _, err = c.gh.Repositories.CreateFile(ctx, c.owner, c.repo, c.path, opts)
	default:
		return err
	}

	if err != nil {
		return apperr.WrapWithCode(err, apperr.CodeUnavailable, "failed to write sheet to GitHub").
			WithMeta("path", c.path)
	}

	return nil
}

func (c *client) fetch(ctx context.Context) (*github.RepositoryContent, error) {
	var opts *github.RepositoryContentGetOptions
	if c.branch != "" {
		opts = &github.RepositoryContentGetOptions{Ref: c.branch}
	}

	file, _, _, err := c.gh.Repositories.GetContents(ctx, c.owner, c.repo, c.path, opts)
	if err != nil {
		var ghErr *github.ErrorResponse
		if errors.As(err, &ghErr) && ghErr.Response != nil && ghErr.Response.StatusCode == http.StatusNotFound {
			return nil, apperr.NotFoundf("%s not found in %s/%s", c.path, c.owner, c.repo).
				WithMeta("path", c.path)
		}
		return nil, apperr.WrapWithCode(err, apperr.CodeUnavailable, "failed to reach GitHub").
			WithMeta("path", c.path)
	}
	if file == nil {
		return nil, apperr.NotFoundf("%s is a directory", c.path).
			WithMeta("path", c.path)
	}

	return file, nil
}

// Export renders the sheet exactly as Save would write it
func Export(s *sheet.CharacterSheet) ([]byte, error) {
	return sheet.Encode(s)
}
