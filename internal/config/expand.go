package config

import (
	"os"
	"os/exec"
	"path/filepath"
	"strings"
)

// ExpandTilde replaces ~ or ~/path with the user's home directory.
// Does not support ~username syntax - just ~ for the current user.
func ExpandTilde(path string) string {
	if path == "" {
		return path
	}

	if strings.HasPrefix(path, "~/") {
		home, err := os.UserHomeDir()
		if err != nil {
			return path // Return unchanged if we can't get home
		}
		return filepath.Join(home, path[2:])
	}

	if path == "~" {
		home, err := os.UserHomeDir()
		if err != nil {
			return path
		}
		return home
	}

	return path
}

// Expand replaces variables in a string with their values.
// Supported variables:
//   - ${PROJECT}  - git repo name or directory name
//   - ${USER}     - current username
//   - ${HOME}     - user's home directory
//   - ${HOSTNAME} - name of the monitored machine
//
// Note: Does NOT expand ~ - use ExpandTilde for that.
func Expand(s string) string {
	if s == "" || !strings.Contains(s, "${") {
		return s
	}

	// Get values lazily to avoid unnecessary work
	vars := []struct {
		name  string
		value func() string
	}{
		{"${PROJECT}", getProject},
		{"${USER}", getUser},
		{"${HOME}", getHome},
		{"${HOSTNAME}", getHostname},
	}

	result := s
	for _, v := range vars {
		if strings.Contains(result, v.name) {
			result = strings.ReplaceAll(result, v.name, v.value())
		}
	}
	return result
}

// getProject returns the project name for ${PROJECT} expansion.
// Priority: git repo name > directory name.
func getProject() string {
	if name := getGitRepoName(); name != "" {
		return name
	}

	cwd, err := os.Getwd()
	if err != nil {
		return "project"
	}
	return filepath.Base(cwd)
}

// getGitRepoName returns the name of the enclosing git repository, or "".
func getGitRepoName() string {
	out, err := exec.Command("git", "rev-parse", "--show-toplevel").Output()
	if err != nil {
		return ""
	}
	return filepath.Base(strings.TrimSpace(string(out)))
}

// getUser returns the current username for ${USER} expansion.
func getUser() string {
	for _, key := range []string{"USER", "LOGNAME", "USERNAME"} {
		if user := os.Getenv(key); user != "" {
			return user
		}
	}
	return "user"
}

// getHome returns the home directory for ${HOME} expansion.
func getHome() string {
	if home, err := os.UserHomeDir(); err == nil {
		return home
	}
	if home := os.Getenv("HOME"); home != "" {
		return home
	}
	return "~"
}

// getHostname returns a filesystem-safe host name for ${HOSTNAME} expansion.
func getHostname() string {
	name, err := os.Hostname()
	if err != nil || name == "" {
		return "localhost"
	}
	return sanitizeName(name)
}

// sanitizeName replaces characters unsafe for filesystems with hyphens.
func sanitizeName(name string) string {
	replacer := strings.NewReplacer(
		"/", "-",
		"\\", "-",
		":", "-",
		"*", "-",
		"?", "-",
		"\"", "-",
		"<", "-",
		">", "-",
		"|", "-",
	)
	return replacer.Replace(name)
}
