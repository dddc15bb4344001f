package hook

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/sirupsen/logrus"

	"github.com/blairham/hooksmith/pkg/config"
	"github.com/blairham/hooksmith/pkg/errors"
)

const (
	// ScriptMode is the permission set of an installed hook
	ScriptMode os.FileMode = 0o755
	// dirMode is used when the hooks directory has to be created
	dirMode os.FileMode = 0o755

	sampleSuffix = ".sample"
)

// InstallResult reports what happened to one configured hook
type InstallResult struct {
	Err     error
	Name    string
	Path    string
	Actions []Action
	Written bool
}

// UninstallResult reports what happened to one hook file
type UninstallResult struct {
	Err     error
	Name    string
	Path    string
	Actions []Action
	Removed bool
}

// Installer writes and removes hook scripts in a hooks directory
type Installer struct {
	dir  string
	opts Options
}

// NewInstaller creates an installer for hooksDir
func NewInstaller(hooksDir string, opts Options) *Installer {
	return &Installer{dir: hooksDir, opts: opts}
}

// Dir returns the hooks directory
func (i *Installer) Dir() string {
	return i.dir
}

// Path returns the location of the named hook
func (i *Installer) Path(name string) string {
	return filepath.Join(i.dir, name)
}

// Install writes one script per configured hook, in configuration order,
// replacing whatever file is already there. A failing hook does not stop
// the others; all failures are joined into the returned error.
func (i *Installer) Install(cfg *config.HookConfig) ([]InstallResult, error) {
	log := i.opts.Log()
	results := make([]InstallResult, 0, cfg.Len())
	var errs []error

	dirReady := i.dirExists()
	for _, def := range cfg.Hooks() {
		res := InstallResult{Name: def.Name, Path: i.Path(def.Name)}
		hookLog := log.WithFields(logrus.Fields{"hook": def.Name, "path": res.Path})

		if !IsStandard(def.Name) {
			hookLog.Warn("not a standard git hook name, git will never run it")
		}

		if len(def.Commands) == 0 {
			res.Err = &errors.Error{Kind: errors.KindInstall, Op: "install", Hook: def.Name, Err: errors.ErrEmptyHook}
			errs = append(errs, res.Err)
			results = append(results, res)
			continue
		}

		script := Render(def)

		if i.opts.DryRun {
			if !dirReady {
				res.Actions = append(res.Actions, Action{Kind: ActionMkdir, Target: i.dir})
				dirReady = true
			}
			res.Actions = append(res.Actions,
				Action{Kind: ActionWrite, Target: res.Path},
				Action{Kind: ActionChmod, Target: res.Path},
			)
			hookLog.Debug("dry run, hook not written")
			results = append(results, res)
			continue
		}

		if !dirReady {
			if err := os.MkdirAll(i.dir, dirMode); err != nil {
				res.Err = i.writeError(def.Name, i.dir, fmt.Errorf("failed to create hooks directory: %w", err))
				errs = append(errs, res.Err)
				results = append(results, res)
				continue
			}
			res.Actions = append(res.Actions, Action{Kind: ActionMkdir, Target: i.dir})
			dirReady = true
		}

		if err := i.writeScript(res.Path, script); err != nil {
			res.Err = i.writeError(def.Name, res.Path, err)
			errs = append(errs, res.Err)
			results = append(results, res)
			continue
		}
		res.Actions = append(res.Actions,
			Action{Kind: ActionWrite, Target: res.Path},
			Action{Kind: ActionChmod, Target: res.Path},
		)
		res.Written = true
		hookLog.Debug("hook installed")
		results = append(results, res)
	}

	return results, errors.Join(errs...)
}

// writeScript writes content and makes the file executable. The explicit
// chmod covers files that already existed with other permissions.
func (i *Installer) writeScript(path, content string) error {
	// #nosec G306 -- hook scripts must be executable by git
	if err := os.WriteFile(path, []byte(content), ScriptMode); err != nil {
		return err
	}
	// #nosec G302 -- hook scripts must be executable by git
	if err := os.Chmod(path, ScriptMode); err != nil {
		return fmt.Errorf("failed to make hook executable: %w", err)
	}
	return nil
}

func (i *Installer) writeError(name, path string, cause error) error {
	return &errors.Error{
		Kind: errors.KindInstall,
		Op:   "install",
		Hook: name,
		Path: path,
		Err:  fmt.Errorf("%w: %w", errors.ErrWriteFailed, cause),
	}
}

// Uninstall removes the named hook, or every hooksmith-managed hook when
// name is empty. A name that is not a plain file name is refused.
//
// A named hook that is not installed yields ErrNotInstalled, which callers
// should treat as a warning. A named hook without the hooksmith marker is
// left alone unless Options.Force is set.
func (i *Installer) Uninstall(name string) ([]UninstallResult, error) {
	if name == "" {
		return i.uninstallAll()
	}
	if err := config.CheckName(name); err != nil {
		res := UninstallResult{Name: name, Err: &errors.Error{Kind: errors.KindUninstall, Op: "uninstall", Hook: name, Err: err}}
		return []UninstallResult{res}, res.Err
	}

	res := UninstallResult{Name: name, Path: i.Path(name)}
	content, found, err := i.ReadInstalled(name)
	if err != nil {
		res.Err = i.removeError(name, res.Path, err)
		return []UninstallResult{res}, res.Err
	}
	if !found {
		res.Err = &errors.Error{Kind: errors.KindUninstall, Op: "uninstall", Hook: name, Path: res.Path, Err: errors.ErrNotInstalled}
		return []UninstallResult{res}, res.Err
	}
	if !IsManaged(content) && !i.opts.Force {
		res.Err = &errors.Error{Kind: errors.KindUninstall, Op: "uninstall", Hook: name, Path: res.Path, Err: errors.ErrNotManaged}
		return []UninstallResult{res}, res.Err
	}

	i.remove(&res)
	return []UninstallResult{res}, res.Err
}

func (i *Installer) uninstallAll() ([]UninstallResult, error) {
	log := i.opts.Log()
	names, err := i.ListInstalled()
	if err != nil {
		return nil, &errors.Error{Kind: errors.KindUninstall, Op: "uninstall", Path: i.dir, Err: fmt.Errorf("%w: %w", errors.ErrRemoveFailed, err)}
	}

	var results []UninstallResult
	var errs []error
	for _, name := range names {
		res := UninstallResult{Name: name, Path: i.Path(name)}
		content, found, err := i.ReadInstalled(name)
		if err != nil {
			res.Err = i.removeError(name, res.Path, err)
			errs = append(errs, res.Err)
			results = append(results, res)
			continue
		}
		if !found || !IsManaged(content) {
			log.WithField("hook", name).Debug("skipping hook not managed by hooksmith")
			continue
		}

		i.remove(&res)
		if res.Err != nil {
			errs = append(errs, res.Err)
		}
		results = append(results, res)
	}

	return results, errors.Join(errs...)
}

func (i *Installer) remove(res *UninstallResult) {
	res.Actions = append(res.Actions, Action{Kind: ActionRemove, Target: res.Path})
	if i.opts.DryRun {
		i.opts.Log().WithField("hook", res.Name).Debug("dry run, hook not removed")
		return
	}
	if err := os.Remove(res.Path); err != nil {
		res.Err = i.removeError(res.Name, res.Path, err)
		return
	}
	res.Removed = true
	i.opts.Log().WithFields(logrus.Fields{"hook": res.Name, "path": res.Path}).Debug("hook removed")
}

func (i *Installer) removeError(name, path string, cause error) error {
	return &errors.Error{
		Kind: errors.KindUninstall,
		Op:   "uninstall",
		Hook: name,
		Path: path,
		Err:  fmt.Errorf("%w: %w", errors.ErrRemoveFailed, cause),
	}
}

// ReadInstalled returns the content of the named hook file. found is false
// when no regular file exists at that location.
func (i *Installer) ReadInstalled(name string) (content []byte, found bool, err error) {
	path := i.Path(name)
	info, err := os.Stat(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, false, nil
		}
		return nil, false, err
	}
	if !info.Mode().IsRegular() {
		return nil, false, nil
	}

	content, err = os.ReadFile(path) // #nosec G304 -- path is inside the hooks directory
	if err != nil {
		return nil, false, err
	}
	return content, true, nil
}

// ListInstalled returns the names of hook files in the hooks directory,
// sorted, ignoring git's *.sample files. A missing directory lists nothing.
func (i *Installer) ListInstalled() ([]string, error) {
	entries, err := os.ReadDir(i.dir)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, nil
		}
		return nil, err
	}

	var names []string
	for _, entry := range entries {
		if entry.IsDir() || strings.HasSuffix(entry.Name(), sampleSuffix) {
			continue
		}
		names = append(names, entry.Name())
	}
	return names, nil
}

func (i *Installer) dirExists() bool {
	info, err := os.Stat(i.dir)
	return err == nil && info.IsDir()
}
