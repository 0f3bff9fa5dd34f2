// Package vcs tests repository detection, decision logic, and identity
// config reads against real on-disk repositories.
// Related: internal/vcs/vcs.go, internal/vcs/config.go
// Tags: vcs, git, repository

package vcs

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/go-git/go-git/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseMode(t *testing.T) {
	t.Parallel()

	tests := map[string]struct {
		input   string
		want    Mode
		wantErr bool
	}{
		"empty means auto":  {input: "", want: Auto},
		"auto":              {input: "auto", want: Auto},
		"git":               {input: "git", want: Git},
		"none":              {input: "none", want: None},
		"unknown value":     {input: "hg", wantErr: true},
		"case is not fuzzy": {input: "Git", wantErr: true},
	}

	for name, tt := range tests {
		tt := tt
		t.Run(name, func(t *testing.T) {
			t.Parallel()

			got, err := ParseMode(tt.input)
			if tt.wantErr {
				require.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestInsideRepository(t *testing.T) {
	t.Parallel()

	root := t.TempDir()
	nested := filepath.Join(root, "a", "b", "c")
	require.NoError(t, os.MkdirAll(nested, 0755))

	assert.False(t, InsideRepository(nested, nil))

	require.NoError(t, os.Mkdir(filepath.Join(root, ".git"), 0755))
	assert.True(t, InsideRepository(nested, nil))
	assert.True(t, InsideRepository(root, nil))
}

func TestInsideRepository_InjectedProbe(t *testing.T) {
	t.Parallel()

	var visited []string
	isRoot := func(dir string) bool {
		visited = append(visited, dir)
		return false
	}

	assert.False(t, InsideRepository(filepath.Join(t.TempDir(), "x", "y"), isRoot))
	// The walk includes the start directory and terminates at the
	// filesystem root.
	require.NotEmpty(t, visited)
	last := visited[len(visited)-1]
	assert.Equal(t, last, filepath.Dir(last))
}

func TestDecide(t *testing.T) {
	t.Parallel()

	inRepo := func(string) bool { return true }
	noRepo := func(string) bool { return false }

	tests := map[string]struct {
		requested Mode
		isRoot    RepoRootFunc
		want      Decision
	}{
		"auto outside a repository initializes git": {
			requested: Auto, isRoot: noRepo, want: InitGit,
		},
		"auto inside a repository skips vcs": {
			requested: Auto, isRoot: inRepo, want: NoVcs,
		},
		"explicit git wins even inside a repository": {
			requested: Git, isRoot: inRepo, want: InitGit,
		},
		"explicit none wins even outside a repository": {
			requested: None, isRoot: noRepo, want: NoVcs,
		},
	}

	for name, tt := range tests {
		tt := tt
		t.Run(name, func(t *testing.T) {
			t.Parallel()
			assert.Equal(t, tt.want, Decide(t.TempDir(), tt.requested, tt.isRoot))
		})
	}
}

func TestInitRepository(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	require.NoError(t, InitRepository(dir))

	assert.DirExists(t, filepath.Join(dir, ".git"))
	_, err := git.PlainOpen(dir)
	assert.NoError(t, err)
}

func TestGitConfig_LocalUser(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	repo, err := git.PlainInit(dir, false)
	require.NoError(t, err)

	cfg, err := repo.Config()
	require.NoError(t, err)
	cfg.User.Name = "bar"
	cfg.User.Email = "baz"
	require.NoError(t, repo.SetConfig(cfg))

	name, email := GitConfig{}.LocalUser(dir)
	assert.Equal(t, "bar", name)
	assert.Equal(t, "baz", email)

	// Lookups from a subdirectory find the same repository.
	sub := filepath.Join(dir, "sub")
	require.NoError(t, os.Mkdir(sub, 0755))
	name, email = GitConfig{}.LocalUser(sub)
	assert.Equal(t, "bar", name)
	assert.Equal(t, "baz", email)
}

func TestGitConfig_LocalUser_NoRepository(t *testing.T) {
	t.Parallel()

	name, email := GitConfig{}.LocalUser(t.TempDir())
	assert.Empty(t, name)
	assert.Empty(t, email)
}

func TestGitConfig_GlobalUser(t *testing.T) {
	home := t.TempDir()
	t.Setenv("HOME", home)
	t.Setenv("XDG_CONFIG_HOME", filepath.Join(home, ".config"))

	gitconfig := "[user]\n\tname = global-bar\n\temail = global-baz\n"
	require.NoError(t, os.WriteFile(filepath.Join(home, ".gitconfig"), []byte(gitconfig), 0644))

	name, email := GitConfig{}.GlobalUser()
	assert.Equal(t, "global-bar", name)
	assert.Equal(t, "global-baz", email)
}

func TestGitConfig_GlobalUser_Absent(t *testing.T) {
	home := t.TempDir()
	t.Setenv("HOME", home)
	t.Setenv("XDG_CONFIG_HOME", filepath.Join(home, ".config"))

	name, email := GitConfig{}.GlobalUser()
	assert.Empty(t, name)
	assert.Empty(t, email)
}
