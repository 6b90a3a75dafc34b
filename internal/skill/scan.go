package skill

import (
	"log/slog"
	"os"
	"path/filepath"
	"runtime"
	"sort"
	"sync"

	"github.com/thoreinstein/sklint/internal/errors"
	"github.com/thoreinstein/sklint/internal/paths"
)

// Scanner discovers skills under a skills directory.
type Scanner struct {
	logger *slog.Logger
}

// NewScanner creates a new Scanner with a warn-level stderr logger.
func NewScanner() *Scanner {
	return &Scanner{
		logger: slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
			Level: slog.LevelWarn,
		})),
	}
}

// NewScannerWithLogger creates a new Scanner with the given logger.
func NewScannerWithLogger(logger *slog.Logger) *Scanner {
	return &Scanner{logger: logger}
}

// Scan loads every skill under dir. A directory holding a SKILL.md
// directly is a single skill; otherwise each immediate subdirectory
// holding a SKILL.md is one skill. Subdirectories that cannot be
// loaded are logged and skipped. Results are sorted by skill name.
func (s *Scanner) Scan(dir string) ([]*Skill, error) {
	if _, err := os.Stat(filepath.Join(dir, paths.SkillFileName)); err == nil {
		sk, err := Load(dir)
		if err != nil {
			return nil, err
		}
		return []*Skill{sk}, nil
	}

	entries, err := os.ReadDir(dir)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, errors.Wrapf(errors.ErrNoSkills, "skills directory %s does not exist", dir)
		}
		return nil, errors.Wrapf(err, "reading skills directory %s", dir)
	}

	var dirs []string
	for _, entry := range entries {
		if !entry.IsDir() {
			continue
		}
		skillFile := filepath.Join(dir, entry.Name(), paths.SkillFileName)
		if _, err := os.Stat(skillFile); err != nil {
			if !os.IsNotExist(err) {
				s.logger.Warn("skipping unreadable skill file",
					"path", skillFile,
					"error", err)
			}
			continue
		}
		dirs = append(dirs, filepath.Join(dir, entry.Name()))
	}

	if len(dirs) == 0 {
		return nil, errors.Wrapf(errors.ErrNoSkills, "no skills found in %s", dir)
	}

	skills := s.loadAll(dirs)

	sort.Slice(skills, func(i, j int) bool {
		return skills[i].Name < skills[j].Name
	})

	return skills, nil
}

// loadAll loads skill directories concurrently with a worker pool
// limited to GOMAXPROCS.
func (s *Scanner) loadAll(dirs []string) []*Skill {
	workers := runtime.GOMAXPROCS(0)
	if len(dirs) < workers {
		workers = len(dirs)
	}

	work := make(chan string, len(dirs))
	results := make(chan *Skill, len(dirs))

	var wg sync.WaitGroup
	for i := 0; i < workers; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for dir := range work {
				sk, err := Load(dir)
				if err != nil {
					s.logger.Warn("failed to load skill",
						"dir", dir,
						"error", err)
					continue
				}
				s.logger.Debug("loaded skill",
					"name", sk.Name,
					"lines", sk.Lines)
				results <- sk
			}
		}()
	}

	for _, dir := range dirs {
		work <- dir
	}
	close(work)

	go func() {
		wg.Wait()
		close(results)
	}()

	skills := make([]*Skill, 0, len(dirs))
	for sk := range results {
		skills = append(skills, sk)
	}

	return skills
}
