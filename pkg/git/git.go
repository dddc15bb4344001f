// Package git locates the hooks directory of a Git repository.
package git

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/go-git/go-git/v5"
	"github.com/go-git/go-git/v5/config"
)

const (
	dotGit        = ".git"
	gitDirPrefix  = "gitdir: "
	commonDirFile = "commondir"
	hooksDirName  = "hooks"
)

// ErrNotRepository is returned when no enclosing git repository exists
var ErrNotRepository = errors.New("not in a git repository")

// Repository represents a git repository
type Repository struct {
	repo *git.Repository
	// Root is the top of the working tree
	Root string
	// GitDir is the git directory of this working tree
	GitDir string
	// CommonDir is the git directory shared by all worktrees
	CommonDir string
}

// NewRepository opens the repository enclosing path
func NewRepository(path string) (*Repository, error) {
	root, err := FindGitRoot(path)
	if err != nil {
		return nil, err
	}

	repo, err := git.PlainOpenWithOptions(root, &git.PlainOpenOptions{
		DetectDotGit:          true,
		EnableDotGitCommonDir: true,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to open git repository: %w", err)
	}

	gitDir, err := resolveGitDir(root)
	if err != nil {
		return nil, err
	}

	return &Repository{
		repo:      repo,
		Root:      root,
		GitDir:    gitDir,
		CommonDir: resolveCommonDir(gitDir),
	}, nil
}

// FindGitRoot finds the root of the git repository
func FindGitRoot(path string) (string, error) {
	if path == "" {
		var err error
		path, err = os.Getwd()
		if err != nil {
			return "", fmt.Errorf("failed to get current directory: %w", err)
		}
	}

	path, err := filepath.Abs(path)
	if err != nil {
		return "", fmt.Errorf("failed to get absolute path: %w", err)
	}

	for {
		gitDir := filepath.Join(path, dotGit)
		if info, err := os.Stat(gitDir); err == nil {
			if info.IsDir() {
				return path, nil
			}
			// Handle git worktrees (where .git is a file)
			// #nosec G304 -- reading git metadata
			if content, err := os.ReadFile(gitDir); err == nil {
				line := strings.TrimSpace(string(content))
				if strings.HasPrefix(line, gitDirPrefix) {
					return path, nil
				}
			}
		}

		parent := filepath.Dir(path)
		if parent == path {
			return "", ErrNotRepository
		}
		path = parent
	}
}

// IsInRepository checks if the current directory is inside a git repository
func IsInRepository() bool {
	_, err := FindGitRoot("")
	return err == nil
}

// HooksDir returns the directory git reads hooks from: core.hooksPath when
// set, otherwise the hooks directory of the common git dir.
func (r *Repository) HooksDir() (string, error) {
	hooksPath, err := r.configuredHooksPath()
	if err != nil {
		return "", err
	}
	if hooksPath == "" {
		return filepath.Join(r.CommonDir, hooksDirName), nil
	}

	if strings.HasPrefix(hooksPath, "~/") {
		home, err := os.UserHomeDir()
		if err != nil {
			return "", fmt.Errorf("failed to expand core.hooksPath: %w", err)
		}
		hooksPath = filepath.Join(home, hooksPath[2:])
	}
	if !filepath.IsAbs(hooksPath) {
		// Relative paths are relative to where hooks run, the working tree top
		hooksPath = filepath.Join(r.Root, hooksPath)
	}
	return filepath.Clean(hooksPath), nil
}

// configuredHooksPath reads core.hooksPath, with repository settings taking
// precedence over the user's global configuration.
func (r *Repository) configuredHooksPath() (string, error) {
	cfg, err := r.repo.ConfigScoped(config.GlobalScope)
	if err != nil {
		// An unreadable global config should not hide the local one
		cfg, err = r.repo.Config()
		if err != nil {
			return "", fmt.Errorf("failed to read git config: %w", err)
		}
	}
	return cfg.Raw.Section("core").Option("hooksPath"), nil
}

// resolveGitDir returns the git directory for the working tree at root,
// following the gitdir pointer of linked worktrees and submodules.
func resolveGitDir(root string) (string, error) {
	dir := filepath.Join(root, dotGit)
	info, err := os.Stat(dir)
	if err != nil {
		return "", fmt.Errorf("failed to stat %s: %w", dir, err)
	}
	if info.IsDir() {
		return dir, nil
	}

	content, err := os.ReadFile(dir) // #nosec G304 -- reading git metadata
	if err != nil {
		return "", fmt.Errorf("failed to read %s: %w", dir, err)
	}
	line := strings.TrimSpace(string(content))
	if !strings.HasPrefix(line, gitDirPrefix) {
		return "", fmt.Errorf("invalid gitdir file %s", dir)
	}

	target := strings.TrimSpace(strings.TrimPrefix(line, gitDirPrefix))
	if !filepath.IsAbs(target) {
		target = filepath.Join(root, target)
	}
	return filepath.Clean(target), nil
}

// resolveCommonDir returns the directory named by gitDir/commondir, which
// linked worktrees use to point at the main repository's git dir.
func resolveCommonDir(gitDir string) string {
	content, err := os.ReadFile(filepath.Join(gitDir, commonDirFile)) // #nosec G304 -- reading git metadata
	if err != nil {
		return gitDir
	}
	common := strings.TrimSpace(string(content))
	if common == "" {
		return gitDir
	}
	if !filepath.IsAbs(common) {
		common = filepath.Join(gitDir, common)
	}
	return filepath.Clean(common)
}
