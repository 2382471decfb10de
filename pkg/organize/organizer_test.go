package organize

import (
	"context"
	"io"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/sdejongh/sortnorris/pkg/category"
	"github.com/sdejongh/sortnorris/pkg/logging"
	"github.com/sdejongh/sortnorris/pkg/models"
	"github.com/sdejongh/sortnorris/pkg/output"
	"github.com/sdejongh/sortnorris/pkg/storage"
)

func newTestOperation(target string) *models.OrganizeOperation {
	return &models.OrganizeOperation{
		ID:         "test-op",
		TargetPath: target,
		CreatedAt:  time.Now(),
	}
}

func runOrganizer(t *testing.T, target string) *models.RunReport {
	t.Helper()

	backend, err := storage.NewLocal(target)
	if err != nil {
		t.Fatalf("NewLocal() error = %v", err)
	}
	defer backend.Close()

	organizer := NewOrganizer(backend, category.Default(), output.NewHumanFormatter(), logging.NewNullLogger(), newTestOperation(target))
	organizer.SetOutput(io.Discard)

	report, err := organizer.Run(context.Background())
	if err != nil {
		t.Fatalf("Run() error = %v", err)
	}
	return report
}

func createFiles(t *testing.T, dir string, names ...string) {
	t.Helper()
	for _, name := range names {
		path := filepath.Join(dir, name)
		if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
			t.Fatalf("MkdirAll() error = %v", err)
		}
		if err := os.WriteFile(path, []byte("content of "+name), 0644); err != nil {
			t.Fatalf("WriteFile() error = %v", err)
		}
	}
}

func TestRunEndToEnd(t *testing.T) {
	tempDir := t.TempDir()
	createFiles(t, tempDir, "a.txt", "b.jpg", "c.mp3", "d.xyz")

	report := runOrganizer(t, tempDir)

	ok, count := report.Result()
	if !ok {
		t.Error("Result() success = false, want true")
	}
	if count != 4 {
		t.Errorf("Result() count = %d, want 4", count)
	}
	if report.Status != models.StatusSuccess {
		t.Errorf("Status = %s, want success", report.Status)
	}

	expected := map[string]string{
		"a.txt": "Documents",
		"b.jpg": "Images",
		"c.mp3": "Audio",
		"d.xyz": "Others",
	}
	for name, cat := range expected {
		if _, err := os.Stat(filepath.Join(tempDir, cat, name)); err != nil {
			t.Errorf("%s/%s should exist: %v", cat, name, err)
		}
		if _, err := os.Stat(filepath.Join(tempDir, name)); !os.IsNotExist(err) {
			t.Errorf("%s should be gone from the top level", name)
		}
	}
}

func TestRunCreatesAllCategoryDirs(t *testing.T) {
	tempDir := t.TempDir()

	report := runOrganizer(t, tempDir)

	table := category.Default()
	for _, name := range table.Names() {
		info, err := os.Stat(filepath.Join(tempDir, name))
		if err != nil {
			t.Errorf("category directory %s should exist: %v", name, err)
			continue
		}
		if !info.IsDir() {
			t.Errorf("%s should be a directory", name)
		}
	}
	if report.Stats.DirsCreated != len(table) {
		t.Errorf("DirsCreated = %d, want %d", report.Stats.DirsCreated, len(table))
	}
}

func TestRunEmptyDirectory(t *testing.T) {
	tempDir := t.TempDir()

	report := runOrganizer(t, tempDir)

	ok, count := report.Result()
	if !ok {
		t.Error("Result() success = false, want true")
	}
	if count != 0 {
		t.Errorf("Result() count = %d, want 0", count)
	}
	if report.Stats.FilesScanned != 0 {
		t.Errorf("FilesScanned = %d, want 0", report.Stats.FilesScanned)
	}
}

func TestRunIdempotent(t *testing.T) {
	tempDir := t.TempDir()
	createFiles(t, tempDir, "a.txt", "b.jpg")

	first := runOrganizer(t, tempDir)
	if _, count := first.Result(); count != 2 {
		t.Fatalf("first run count = %d, want 2", count)
	}

	second := runOrganizer(t, tempDir)
	ok, count := second.Result()
	if !ok {
		t.Error("second run success = false, want true")
	}
	if count != 0 {
		t.Errorf("second run count = %d, want 0", count)
	}
	if second.Status != models.StatusSuccess {
		t.Errorf("second run status = %s, want success", second.Status)
	}
}

func TestRunCollision(t *testing.T) {
	tempDir := t.TempDir()
	createFiles(t, tempDir, "report.pdf", "photo.jpg", "Documents/report.pdf")

	report := runOrganizer(t, tempDir)

	// One fewer moved than the candidate count
	ok, count := report.Result()
	if !ok {
		t.Error("Result() success = false, want true")
	}
	if count != 1 {
		t.Errorf("Result() count = %d, want 1", count)
	}
	if report.Stats.FilesSkipped != 1 {
		t.Errorf("FilesSkipped = %d, want 1", report.Stats.FilesSkipped)
	}
	if report.Status != models.StatusPartial {
		t.Errorf("Status = %s, want partial", report.Status)
	}

	// Both files intact
	if _, err := os.Stat(filepath.Join(tempDir, "report.pdf")); err != nil {
		t.Error("colliding source file should remain in place")
	}
	if _, err := os.Stat(filepath.Join(tempDir, "Documents", "report.pdf")); err != nil {
		t.Error("existing destination file should remain in place")
	}
}

func TestRunSkipsSubdirectories(t *testing.T) {
	tempDir := t.TempDir()
	createFiles(t, tempDir, "a.txt", "nested/inner.jpg")

	report := runOrganizer(t, tempDir)

	if _, count := report.Result(); count != 1 {
		t.Errorf("Result() count = %d, want 1", count)
	}

	// The subdirectory and its contents are untouched
	if _, err := os.Stat(filepath.Join(tempDir, "nested", "inner.jpg")); err != nil {
		t.Errorf("nested file should be untouched: %v", err)
	}
}

func TestRunSkipsRunLogFiles(t *testing.T) {
	tempDir := t.TempDir()
	createFiles(t, tempDir, "a.txt", "sortnorris_20260314_150926.log")

	report := runOrganizer(t, tempDir)

	if _, count := report.Result(); count != 1 {
		t.Errorf("Result() count = %d, want 1", count)
	}
	if report.Stats.FilesScanned != 1 {
		t.Errorf("FilesScanned = %d, want 1", report.Stats.FilesScanned)
	}
	if _, err := os.Stat(filepath.Join(tempDir, "sortnorris_20260314_150926.log")); err != nil {
		t.Errorf("run log file should stay in place: %v", err)
	}
}

func TestRunDryRun(t *testing.T) {
	tempDir := t.TempDir()
	createFiles(t, tempDir, "a.txt", "b.jpg")

	backend, err := storage.NewLocal(tempDir)
	if err != nil {
		t.Fatalf("NewLocal() error = %v", err)
	}
	defer backend.Close()

	op := newTestOperation(tempDir)
	op.DryRun = true

	organizer := NewOrganizer(backend, category.Default(), output.NewHumanFormatter(), logging.NewNullLogger(), op)
	organizer.SetOutput(io.Discard)

	report, err := organizer.Run(context.Background())
	if err != nil {
		t.Fatalf("Run() error = %v", err)
	}

	if _, count := report.Result(); count != 0 {
		t.Errorf("dry run count = %d, want 0", count)
	}
	if report.Status != models.StatusSuccess {
		t.Errorf("dry run status = %s, want success", report.Status)
	}
	if report.Stats.DirsCreated != 0 {
		t.Errorf("dry run DirsCreated = %d, want 0", report.Stats.DirsCreated)
	}

	// Nothing moved
	for _, name := range []string{"a.txt", "b.jpg"} {
		if _, err := os.Stat(filepath.Join(tempDir, name)); err != nil {
			t.Errorf("%s should still be at the top level: %v", name, err)
		}
	}
}

func TestRunCustomTable(t *testing.T) {
	tempDir := t.TempDir()
	createFiles(t, tempDir, "notes.md", "data.bin")

	table := category.Table{
		{Name: "Markdown", Extensions: []string{".md"}},
		{Name: "Unsorted", Extensions: nil},
	}

	backend, err := storage.NewLocal(tempDir)
	if err != nil {
		t.Fatalf("NewLocal() error = %v", err)
	}
	defer backend.Close()

	organizer := NewOrganizer(backend, table, output.NewHumanFormatter(), logging.NewNullLogger(), newTestOperation(tempDir))
	organizer.SetOutput(io.Discard)

	report, err := organizer.Run(context.Background())
	if err != nil {
		t.Fatalf("Run() error = %v", err)
	}

	if _, count := report.Result(); count != 2 {
		t.Errorf("Result() count = %d, want 2", count)
	}
	if _, err := os.Stat(filepath.Join(tempDir, "Markdown", "notes.md")); err != nil {
		t.Errorf("Markdown/notes.md should exist: %v", err)
	}
	if _, err := os.Stat(filepath.Join(tempDir, "Unsorted", "data.bin")); err != nil {
		t.Errorf("Unsorted/data.bin should exist: %v", err)
	}
}

func TestRunRecordsOperations(t *testing.T) {
	tempDir := t.TempDir()
	createFiles(t, tempDir, "a.txt", "Documents/a.txt")

	report := runOrganizer(t, tempDir)

	if len(report.Operations) != 1 {
		t.Fatalf("Operations length = %d, want 1", len(report.Operations))
	}
	op := report.Operations[0]
	if op.Name != "a.txt" {
		t.Errorf("Operation.Name = %s, want a.txt", op.Name)
	}
	if op.Category != "Documents" {
		t.Errorf("Operation.Category = %s, want Documents", op.Category)
	}
	if op.Action != models.ActionSkip {
		t.Errorf("Operation.Action = %s, want skip", op.Action)
	}
}

func TestOrganizeDirectoryFatalPath(t *testing.T) {
	t.Run("NonExistentTarget", func(t *testing.T) {
		op := newTestOperation("/nonexistent/path/that/does/not/exist")

		report, err := OrganizeDirectory(context.Background(), op, category.Default(), output.NewHumanFormatter(), logging.NewNullLogger())
		if err == nil {
			t.Fatal("OrganizeDirectory() should fail for missing target")
		}

		ok, count := report.Result()
		if ok {
			t.Error("Result() success = true, want false")
		}
		if count != 0 {
			t.Errorf("Result() count = %d, want 0", count)
		}
		if report.Status != models.StatusFailed {
			t.Errorf("Status = %s, want failed", report.Status)
		}
	})

	t.Run("TargetIsFile", func(t *testing.T) {
		tempDir := t.TempDir()
		target := filepath.Join(tempDir, "not-a-dir.txt")
		if err := os.WriteFile(target, []byte("content"), 0644); err != nil {
			t.Fatalf("WriteFile() error = %v", err)
		}

		op := newTestOperation(target)
		report, err := OrganizeDirectory(context.Background(), op, category.Default(), output.NewHumanFormatter(), logging.NewNullLogger())
		if err == nil {
			t.Fatal("OrganizeDirectory() should fail for a file target")
		}
		if ok, _ := report.Result(); ok {
			t.Error("Result() success = true, want false")
		}

		// No category directories created anywhere
		entries, err := os.ReadDir(tempDir)
		if err != nil {
			t.Fatalf("ReadDir() error = %v", err)
		}
		if len(entries) != 1 {
			t.Errorf("no directories should be created on a fatal error, found %d entries", len(entries))
		}
	})

	t.Run("EmptyTargetPath", func(t *testing.T) {
		op := newTestOperation("")

		report, err := OrganizeDirectory(context.Background(), op, category.Default(), output.NewHumanFormatter(), logging.NewNullLogger())
		if err == nil {
			t.Fatal("OrganizeDirectory() should fail for empty target")
		}
		if report.Status != models.StatusFailed {
			t.Errorf("Status = %s, want failed", report.Status)
		}
	})

	t.Run("InvalidTable", func(t *testing.T) {
		tempDir := t.TempDir()
		op := newTestOperation(tempDir)

		table := category.Table{
			{Name: "Text", Extensions: []string{".txt"}},
		}

		_, err := OrganizeDirectory(context.Background(), op, table, output.NewHumanFormatter(), logging.NewNullLogger())
		if err == nil {
			t.Fatal("OrganizeDirectory() should fail for a table without fallback")
		}
	})
}

func TestOrganizeDirectoryEndToEnd(t *testing.T) {
	tempDir := t.TempDir()
	createFiles(t, tempDir, "a.txt", "b.jpg")

	op := newTestOperation(tempDir)

	formatter := output.NewHumanFormatter()
	report, err := OrganizeDirectory(context.Background(), op, category.Default(), formatter, logging.NewNullLogger())
	if err != nil {
		t.Fatalf("OrganizeDirectory() error = %v", err)
	}

	ok, count := report.Result()
	if !ok || count != 2 {
		t.Errorf("Result() = (%v, %d), want (true, 2)", ok, count)
	}
}
