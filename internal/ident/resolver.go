package ident

import (
	"github.com/cratekit/cratekit/internal/logging"
	"github.com/cratekit/cratekit/internal/vcs"
)

// Tool-specific identity override variables. These rank below the tool
// config file but above everything else.
const (
	EnvName  = "CRATEKIT_NAME"
	EnvEmail = "CRATEKIT_EMAIL"
)

// Source is one ranked layer of the identity chain. A source with no name
// value is skipped entirely; no merging of a name from one layer with an
// email from another takes place.
type Source interface {
	// Label names the layer for debug logging.
	Label() string
	// Identity returns the layer's identity fragment; zero when absent.
	Identity() Identity
}

// Resolver resolves an author identity from an ordered list of sources.
type Resolver struct {
	sources []Source
}

// NewResolver builds the standard source chain, in priority order:
//
//  1. tool config file name/email (explicit user override)
//  2. CRATEKIT_NAME / CRATEKIT_EMAIL environment pair
//  3. USER (or USERNAME) paired with EMAIL from the environment
//  4. repository-local git user.name / user.email, when repoPath is set
//  5. global git user.name / user.email
//  6. GIT_AUTHOR_NAME / GIT_AUTHOR_EMAIL environment pair
//  7. GIT_COMMITTER_NAME / GIT_COMMITTER_EMAIL environment pair
//
// gitCfg is injected so tests can replace the machine-wide git state with
// a fake; every git lookup treats absence as "no value", never an error.
func NewResolver(toolName, toolEmail string, env map[string]string, repoPath string, gitCfg vcs.ConfigReader) *Resolver {
	sources := []Source{
		staticSource{label: "tool config", id: Identity{Name: toolName, Email: toolEmail}},
		envPairSource{label: "tool environment", env: env, nameKey: EnvName, emailKey: EnvEmail},
		envUserSource{env: env},
	}
	if repoPath != "" {
		sources = append(sources, localGitSource{repoPath: repoPath, cfg: gitCfg})
	}
	sources = append(sources,
		globalGitSource{cfg: gitCfg},
		envPairSource{label: "git author environment", env: env, nameKey: "GIT_AUTHOR_NAME", emailKey: "GIT_AUTHOR_EMAIL"},
		envPairSource{label: "git committer environment", env: env, nameKey: "GIT_COMMITTER_NAME", emailKey: "GIT_COMMITTER_EMAIL"},
	)
	return &Resolver{sources: sources}
}

// NewResolverFromSources builds a resolver over an explicit source list.
// Used by tests to exercise precedence per layer.
func NewResolverFromSources(sources ...Source) *Resolver {
	return &Resolver{sources: sources}
}

// Resolve walks the chain and returns the first identity with a non-empty
// name. The returned identity is zero when no layer matched.
func (r *Resolver) Resolve() Identity {
	logger := logging.GetLogger("ident")

	for _, src := range r.sources {
		id := src.Identity()
		if id.IsZero() {
			continue
		}
		logger.Debug().Str("layer", src.Label()).Str("name", id.Name).Msg("identity resolved")
		return id
	}

	logger.Debug().Msg("no identity layer matched, authors will be omitted")
	return Identity{}
}

// staticSource yields a fixed identity, used for the tool config layer.
type staticSource struct {
	label string
	id    Identity
}

func (s staticSource) Label() string      { return s.label }
func (s staticSource) Identity() Identity { return s.id }

// envPairSource yields a name/email pair read from two environment
// variables of the same layer.
type envPairSource struct {
	label    string
	env      map[string]string
	nameKey  string
	emailKey string
}

func (s envPairSource) Label() string { return s.label }

func (s envPairSource) Identity() Identity {
	return Identity{Name: s.env[s.nameKey], Email: s.env[s.emailKey]}
}

// envUserSource yields USER (falling back to USERNAME) paired with EMAIL.
// This is the single documented exception where a name and email pair up
// across variables rather than coming from one tool- or git-specific pair.
type envUserSource struct {
	env map[string]string
}

func (s envUserSource) Label() string { return "user environment" }

func (s envUserSource) Identity() Identity {
	name := s.env["USER"]
	if name == "" {
		name = s.env["USERNAME"]
	}
	return Identity{Name: name, Email: s.env["EMAIL"]}
}

// localGitSource yields user.name/user.email from the repository
// containing repoPath.
type localGitSource struct {
	repoPath string
	cfg      vcs.ConfigReader
}

func (s localGitSource) Label() string { return "git local config" }

func (s localGitSource) Identity() Identity {
	name, email := s.cfg.LocalUser(s.repoPath)
	return Identity{Name: name, Email: email}
}

// globalGitSource yields user.name/user.email from the machine-wide git
// configuration.
type globalGitSource struct {
	cfg vcs.ConfigReader
}

func (s globalGitSource) Label() string { return "git global config" }

func (s globalGitSource) Identity() Identity {
	name, email := s.cfg.GlobalUser()
	return Identity{Name: name, Email: email}
}
