package config

// GetDefaultConfigTemplate returns a commented config template that
// documents the available options.
func GetDefaultConfigTemplate() string {
	return `# cratekit configuration

# Author identity written into new manifests. Highest-priority identity
# source; leave empty to fall back to the environment and git config.
name: ""
email: ""

# Default version control mode for new projects: git | none | auto
# (auto skips repository creation when already inside one).
# Can also be set via CRATEKIT_VCS or overridden per run with --vcs.
vcs: auto
`
}

// GetDefaults returns the default configuration values.
func GetDefaults() map[string]interface{} {
	return map[string]interface{}{
		"name":  "",
		"email": "",
		// vcs: empty means no preference; the probe decides.
		"vcs": "",
	}
}
