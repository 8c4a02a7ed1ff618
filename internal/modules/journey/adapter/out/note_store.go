package out

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"go.uber.org/zap"

	"inward/internal/modules/journey/domain"
	journeyout "inward/internal/modules/journey/port/out"
	"inward/internal/platform/markdown"
	"inward/internal/platform/slug"
)

// FileNoteStore writes archived journeys as markdown notes with YAML
// frontmatter, one file per journey, for reading outside the app.
type FileNoteStore struct {
	notesPath string
	log       *zap.Logger
}

func NewFileNoteStore(notesPath string, log *zap.Logger) journeyout.NoteStore {
	if log == nil {
		log = zap.NewNop()
	}
	return &FileNoteStore{notesPath: notesPath, log: log}
}

func (s *FileNoteStore) Save(_ context.Context, j domain.Journey, themes []string) string {
	date := j.StartedAt
	if j.CompletedAt != nil {
		date = *j.CompletedAt
	}
	dir := filepath.Join(s.notesPath, "journeys")
	if err := os.MkdirAll(dir, 0o755); err != nil {
		s.log.Warn("create journey notes dir failed", zap.Error(err))
		return ""
	}

	label := domain.FallbackTheme
	if len(themes) > 0 {
		label = themes[0]
	}
	name := fmt.Sprintf("%s-%s.md", date.Format("2006-01-02-150405"), slug.Make(label))
	path := filepath.Join(dir, name)

	meta := map[string]any{
		"schema_version":  domain.SchemaVersion,
		"id":              j.ID,
		"started_at":      j.StartedAt.Format("2006-01-02T15:04:05Z07:00"),
		"completed_rules": j.CompletedRules,
		"themes":          themes,
	}
	if j.CompletedAt != nil {
		meta["completed_at"] = j.CompletedAt.Format("2006-01-02T15:04:05Z07:00")
	}

	body := fmt.Sprintf("# Journey %s\n\nThemes: %s\n\n```\n%s```\n", j.ID, strings.Join(themes, ", "), domain.ExportText(j))
	rendered, err := markdown.RenderFrontmatter(meta, body)
	if err != nil {
		s.log.Warn("render journey note failed", zap.String("id", j.ID), zap.Error(err))
		return ""
	}
	if err := os.WriteFile(path, []byte(rendered), 0o644); err != nil {
		s.log.Warn("write journey note failed", zap.String("id", j.ID), zap.Error(err))
		return ""
	}
	s.updateIndex(name, date, themes)
	return path
}

const (
	indexStartMarker = "<!-- inward:journeys:start -->"
	indexEndMarker   = "<!-- inward:journeys:end -->"
)

// updateIndex prepends the new note to the generated block of the
// journeys.md index. Text outside the markers is the user's and survives.
func (s *FileNoteStore) updateIndex(noteName string, date time.Time, themes []string) {
	path := filepath.Join(s.notesPath, "journeys.md")
	existing, err := os.ReadFile(path)
	if err != nil && !os.IsNotExist(err) {
		s.log.Warn("read journey index failed", zap.Error(err))
		return
	}
	body := string(existing)

	line := fmt.Sprintf("- %s [%s](journeys/%s): %s", date.Format("2006-01-02"), noteName, noteName, strings.Join(themes, ", "))
	entries := append([]string{line}, indexEntries(body)...)
	rendered := markdown.ReplaceManagedBlock(body, indexStartMarker, indexEndMarker, strings.Join(entries, "\n"))
	if err := os.WriteFile(path, []byte(rendered), 0o644); err != nil {
		s.log.Warn("write journey index failed", zap.Error(err))
	}
}

func indexEntries(body string) []string {
	start := strings.Index(body, indexStartMarker)
	end := strings.Index(body, indexEndMarker)
	if start < 0 || end <= start {
		return nil
	}
	inner := body[start+len(indexStartMarker) : end]
	entries := []string{}
	for _, line := range strings.Split(inner, "\n") {
		if strings.HasPrefix(line, "- ") {
			entries = append(entries, line)
		}
	}
	return entries
}
