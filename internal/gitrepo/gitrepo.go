// Package gitrepo drives the git executable to turn schedule events
// into real commits.
package gitrepo

import (
	"bytes"
	"fmt"
	"os"
	"os/exec"
	"path/filepath"
	"strings"
	"time"
)

// Runner executes one external command. The default implementation
// shells out to the binary; tests substitute a recording fake.
type Runner interface {
	Run(dir string, extraEnv []string, name string, args ...string) error
}

type execRunner struct{}

func (execRunner) Run(dir string, extraEnv []string, name string, args ...string) error {
	cmd := exec.Command(name, args...)
	cmd.Dir = dir
	if len(extraEnv) > 0 {
		cmd.Env = append(os.Environ(), extraEnv...)
	}
	var stderr bytes.Buffer
	cmd.Stderr = &stderr
	if err := cmd.Run(); err != nil {
		if msg := strings.TrimSpace(stderr.String()); msg != "" {
			return fmt.Errorf("%s %s: %w: %s", name, strings.Join(args, " "), err, msg)
		}
		return fmt.Errorf("%s %s: %w", name, strings.Join(args, " "), err)
	}
	return nil
}

// Repo is a git working tree receiving the generated commits. It
// implements the schedule recorder contract.
type Repo struct {
	dir      string
	artifact string
	runner   Runner
}

// Open binds a repository directory and the artifact file the commits
// touch. The artifact path is relative to dir.
func Open(dir, artifact string) *Repo {
	return &Repo{dir: dir, artifact: artifact, runner: execRunner{}}
}

// EnsureRepo verifies dir is inside a git work tree.
func (r *Repo) EnsureRepo() error {
	if err := r.runner.Run(r.dir, nil, "git", "rev-parse", "--is-inside-work-tree"); err != nil {
		return fmt.Errorf("%s is not a git work tree: %w", r.dir, err)
	}
	return nil
}

// EnsureInitialCommit creates a bootstrap commit when the repository
// has no HEAD yet, so the backdated commits have a parent.
func (r *Repo) EnsureInitialCommit() error {
	if r.runner.Run(r.dir, nil, "git", "rev-parse", "--verify", "HEAD") == nil {
		return nil
	}
	keep := filepath.Join(r.dir, ".keep")
	if err := os.WriteFile(keep, []byte("init\n"), 0o644); err != nil {
		return fmt.Errorf("failed to write bootstrap file: %w", err)
	}
	if err := r.runner.Run(r.dir, nil, "git", "add", ".keep"); err != nil {
		return err
	}
	return r.runner.Run(r.dir, nil, "git", "commit", "-m", "chore: initial commit")
}

// EnsureArtifact creates the artifact file when missing without
// touching existing content.
func (r *Repo) EnsureArtifact() error {
	f, err := os.OpenFile(r.artifactPath(), os.O_CREATE|os.O_WRONLY, 0o644)
	if err != nil {
		return fmt.Errorf("failed to create artifact file: %w", err)
	}
	return f.Close()
}

// AppendArtifact appends one line to the artifact file.
func (r *Repo) AppendArtifact(line string) error {
	f, err := os.OpenFile(r.artifactPath(), os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0o644)
	if err != nil {
		return fmt.Errorf("failed to open artifact file: %w", err)
	}
	if _, err := f.WriteString(line + "\n"); err != nil {
		f.Close()
		return fmt.Errorf("failed to write artifact line: %w", err)
	}
	if err := f.Close(); err != nil {
		return fmt.Errorf("failed to close artifact file: %w", err)
	}
	return nil
}

// CreateRecord stages the artifact and commits with both git dates set
// to stamp, so the contribution calendar attributes the commit to the
// pixel's day no matter when the tool actually runs.
func (r *Repo) CreateRecord(message string, stamp time.Time) error {
	if err := r.runner.Run(r.dir, nil, "git", "add", r.artifact); err != nil {
		return err
	}
	iso := stamp.Format(time.RFC3339)
	env := []string{"GIT_AUTHOR_DATE=" + iso, "GIT_COMMITTER_DATE=" + iso}
	return r.runner.Run(r.dir, env, "git", "commit", "-m", message)
}

func (r *Repo) artifactPath() string {
	return filepath.Join(r.dir, r.artifact)
}
