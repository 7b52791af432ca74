package pdf

import (
	"log"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/robfig/cron/v3"
)

// Sweeper reclaims spool directories that outlived a crashed or interrupted
// batch. Normal batches clean up after themselves; this is the backstop.
type Sweeper struct {
	cron   *cron.Cron
	dir    string
	maxAge time.Duration
}

// NewSweeper watches dir for leftover spool entries older than maxAge.
func NewSweeper(dir string, maxAge time.Duration) *Sweeper {
	return &Sweeper{
		cron:   cron.New(),
		dir:    dir,
		maxAge: maxAge,
	}
}

// Start runs one sweep immediately and then hourly until Stop is called.
func (s *Sweeper) Start() error {
	if _, err := s.cron.AddFunc("@hourly", s.Sweep); err != nil {
		return err
	}
	s.cron.Start()
	go s.Sweep()
	return nil
}

// Stop halts the schedule and waits for an in-flight sweep to finish.
func (s *Sweeper) Stop() {
	<-s.cron.Stop().Done()
}

// Sweep removes every spool entry whose modification time is older than the
// configured age.
func (s *Sweeper) Sweep() {
	entries, err := os.ReadDir(s.dir)
	if err != nil {
		log.Printf("pdf sweeper: reading spool dir %s: %v", s.dir, err)
		return
	}
	cutoff := time.Now().Add(-s.maxAge)
	for _, entry := range entries {
		if !strings.HasPrefix(entry.Name(), spoolPrefix) {
			continue
		}
		info, err := entry.Info()
		if err != nil {
			continue
		}
		if info.ModTime().After(cutoff) {
			continue
		}
		path := filepath.Join(s.dir, entry.Name())
		if err := os.RemoveAll(path); err != nil {
			log.Printf("pdf sweeper: removing %s: %v", path, err)
		}
	}
}
