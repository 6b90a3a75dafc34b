package paths

import (
	"os"
	"path/filepath"

	"github.com/adrg/xdg"
	"github.com/cockroachdb/errors"
)

// SkillFileName is the canonical skill definition file name.
// The name is case-sensitive on case-sensitive file systems.
const SkillFileName = "SKILL.md"

// Sentinel errors for path resolution.
var (
	// ErrHomeDirNotFound indicates the user's home directory could not be determined.
	ErrHomeDirNotFound = errors.New("home directory not found")

	// ErrInvalidPath indicates the provided path is malformed or invalid.
	ErrInvalidPath = errors.New("invalid path")
)

// DefaultDirPerm is the default permission for newly created directories (private).
const DefaultDirPerm = 0o700

// EnsureDir creates the directory and any necessary parents with specified permissions.
// If perm is 0, DefaultDirPerm (0700) is used.
// This function is idempotent; it returns nil if the directory already exists.
func EnsureDir(path string, perm os.FileMode) error {
	if perm == 0 {
		perm = DefaultDirPerm
	}
	return os.MkdirAll(path, perm)
}

// Home returns the user's home directory, or "" when it cannot be determined.
// Use ResolveHome for proper error handling.
func Home() string {
	h, _ := ResolveHome()
	return h
}

// ResolveHome returns the user's home directory.
// Returns ErrHomeDirNotFound if the directory cannot be determined.
func ResolveHome() (string, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return "", errors.Wrap(ErrHomeDirNotFound, err.Error())
	}
	return home, nil
}

// ConfigHome returns the XDG config home directory.
// On Linux: ~/.config
// On macOS: ~/Library/Application Support
// On Windows: %LOCALAPPDATA%
func ConfigHome() string {
	return xdg.ConfigHome
}

// CacheHome returns the XDG cache home directory.
// On Linux: ~/.cache
// On macOS: ~/Library/Caches
// On Windows: %LOCALAPPDATA%\cache
func CacheHome() string {
	return xdg.CacheHome
}

// ClaudeDir returns the Claude Code global config directory (~/.claude),
// or "" when the home directory cannot be determined.
func ClaudeDir() string {
	home := Home()
	if home == "" {
		return ""
	}
	return filepath.Join(home, ".claude")
}

// DefaultSkillsDir returns the directory scanned when no path is given:
// ~/.claude/skills. Returns "" when the home directory cannot be determined.
func DefaultSkillsDir() string {
	claudeDir := ClaudeDir()
	if claudeDir == "" {
		return ""
	}
	return filepath.Join(claudeDir, "skills")
}

// SkillFile returns the SKILL.md path for a path that may be either a skill
// directory or the skill file itself.
func SkillFile(path string) string {
	if filepath.Base(path) == SkillFileName {
		return path
	}
	return filepath.Join(path, SkillFileName)
}
