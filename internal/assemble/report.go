package assemble

import (
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/natefinch/atomic"
)

// Report summarizes one assembly run; written to <dest>/build-report.json.
type Report struct {
	RunID      string    `json:"run_id"`
	StartedAt  time.Time `json:"started_at"`
	DurationMS int64     `json:"duration_ms"`

	Materials int `json:"materials"`
	Blocks    int `json:"blocks"`
	Partials  int `json:"partials"`
	Views     int `json:"views"`
	Docs      int `json:"docs"`

	PagesWritten  int      `json:"pages_written"`
	CopiesWritten int      `json:"copies_written"`
	Written       []string `json:"written"`

	Errors int `json:"errors"`
}

func newReport() *Report {
	return &Report{
		RunID:     uuid.NewString(),
		StartedAt: time.Now().UTC(),
	}
}

func (r *Report) recordWrite(path string) {
	r.PagesWritten++
	r.Written = append(r.Written, filepath.ToSlash(path))
}

// recordCopy tracks a dest-copy duplicate; copies are listed in Written
// but never counted as pages.
func (r *Report) recordCopy(path string) {
	r.CopiesWritten++
	r.Written = append(r.Written, filepath.ToSlash(path))
}

func (r *Report) write(dest string) error {
	r.DurationMS = time.Since(r.StartedAt).Milliseconds()
	raw, err := json.MarshalIndent(r, "", "  ")
	if err != nil {
		return err
	}
	if err := os.MkdirAll(dest, 0o755); err != nil {
		return err
	}
	return atomic.WriteFile(filepath.Join(dest, "build-report.json"), strings.NewReader(string(raw)+"\n"))
}
