package download

import (
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"swift-workbench/artifact"
)

func listDir(t *testing.T, dir string) []string {
	t.Helper()
	entries, err := os.ReadDir(dir)
	if err != nil {
		t.Fatalf("reading %s: %v", dir, err)
	}
	var names []string
	for _, entry := range entries {
		names = append(names, entry.Name())
	}
	return names
}

func TestStageTriggerRelease(t *testing.T) {
	dir := t.TempDir()
	saver := NewDirSaver(dir)

	text := "{1:F01BANKDEFFXXXX0000000000}{4:\n:20:REF\n-}"
	handle, err := saver.Stage(artifact.NewArtifact(artifact.DefaultFilename, text))
	if err != nil {
		t.Fatalf("Stage: %v", err)
	}
	if names := listDir(t, dir); len(names) != 1 || names[0] == artifact.DefaultFilename {
		t.Fatalf("after Stage dir holds %v, want one staging file", names)
	}

	location, err := handle.Trigger()
	if err != nil {
		t.Fatalf("Trigger: %v", err)
	}
	if want := filepath.Join(dir, "swift-message.txt"); location != want {
		t.Errorf("location = %q, want %q", location, want)
	}
	data, err := os.ReadFile(location)
	if err != nil {
		t.Fatal(err)
	}
	if string(data) != text {
		t.Errorf("saved %q, want %q", data, text)
	}

	if err := handle.Release(); err != nil {
		t.Errorf("Release after Trigger: %v", err)
	}
	if err := handle.Release(); err != nil {
		t.Errorf("second Release: %v", err)
	}
	if names := listDir(t, dir); len(names) != 1 || names[0] != "swift-message.txt" {
		t.Errorf("dir holds %v, want only swift-message.txt", names)
	}
}

func TestReleaseWithoutTrigger(t *testing.T) {
	dir := t.TempDir()
	handle, err := NewDirSaver(dir).Stage(artifact.NewArtifact("swift-message.txt", "x"))
	if err != nil {
		t.Fatal(err)
	}

	if err := handle.Release(); err != nil {
		t.Fatalf("Release: %v", err)
	}
	if names := listDir(t, dir); len(names) != 0 {
		t.Errorf("dir holds %v after release, want nothing", names)
	}
}

func TestTriggerTwice(t *testing.T) {
	handle, err := NewDirSaver(t.TempDir()).Stage(artifact.NewArtifact("a.txt", "x"))
	if err != nil {
		t.Fatal(err)
	}
	defer handle.Release()

	if _, err := handle.Trigger(); err != nil {
		t.Fatal(err)
	}
	if _, err := handle.Trigger(); !errors.Is(err, errAlreadyTriggered) {
		t.Errorf("second Trigger err = %v", err)
	}
}

func TestStageCreatesDirectory(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "exports", "today")
	handle, err := NewDirSaver(dir).Stage(artifact.NewArtifact("swift-message.txt", "x"))
	if err != nil {
		t.Fatalf("Stage: %v", err)
	}
	defer handle.Release()

	if _, err := handle.Trigger(); err != nil {
		t.Fatalf("Trigger: %v", err)
	}
	if _, err := os.Stat(filepath.Join(dir, "swift-message.txt")); err != nil {
		t.Error(err)
	}
}

func TestExporterWithDirSaver(t *testing.T) {
	dir := t.TempDir()
	exporter := artifact.NewExporter(nil, NewDirSaver(dir), nil)

	// An existing file of the same name is replaced.
	if err := os.WriteFile(filepath.Join(dir, "swift-message.txt"), []byte("old"), 0o644); err != nil {
		t.Fatal(err)
	}

	receipt, err := exporter.DownloadMessage(artifact.Surfaces{Output: artifact.StaticText(artifact.SampleMessage)})
	if err != nil {
		t.Fatalf("DownloadMessage: %v", err)
	}
	data, err := os.ReadFile(receipt.Location)
	if err != nil {
		t.Fatal(err)
	}
	if string(data) != artifact.SampleMessage {
		t.Errorf("saved content differs from output text")
	}
	if names := listDir(t, dir); len(names) != 1 {
		t.Errorf("dir holds %v, staging file left behind", names)
	}
}

type failingWriteFile struct {
	*os.File
}

func (failingWriteFile) Write([]byte) (int, error) {
	return 0, errors.New("disk full")
}

func TestStageCleansUpOnFailure(t *testing.T) {
	tests := []struct {
		name  string
		setup func(s *DirSaver)
	}{
		{
			name: "write fails",
			setup: func(s *DirSaver) {
				s.createTemp = func(dir, pattern string) (stagingFile, error) {
					f, err := os.CreateTemp(dir, pattern)
					if err != nil {
						return nil, err
					}
					return failingWriteFile{f}, nil
				}
			},
		},
		{
			name: "chmod fails",
			setup: func(s *DirSaver) {
				s.chmod = func(string, os.FileMode) error { return errors.New("operation not permitted") }
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			dir := t.TempDir()
			saver := NewDirSaver(dir)
			tt.setup(saver)

			if _, err := saver.Stage(artifact.NewArtifact("swift-message.txt", "x")); err == nil {
				t.Fatal("expected Stage to fail")
			}
			if names := listDir(t, dir); len(names) != 0 {
				t.Errorf("dir holds %v after failed Stage", names)
			}
		})
	}
}

func TestReceiptUsesSavedName(t *testing.T) {
	dir := t.TempDir()
	exporter := artifact.NewExporter(nil, NewDirSaver(dir), nil, artifact.WithFilename("report:1.txt"))

	receipt, err := exporter.DownloadMessage(artifact.Surfaces{Output: artifact.StaticText("x")})
	if err != nil {
		t.Fatalf("DownloadMessage: %v", err)
	}
	if receipt.Name != "report_1.txt" {
		t.Errorf("Name = %q, want the name on disk", receipt.Name)
	}
	if receipt.Location != filepath.Join(dir, "report_1.txt") {
		t.Errorf("Location = %q", receipt.Location)
	}
}

func TestStageRejectsDotNames(t *testing.T) {
	dir := t.TempDir()
	handle, err := NewDirSaver(dir).Stage(artifact.NewArtifact("..", "x"))
	if err != nil {
		t.Fatalf("Stage: %v", err)
	}
	defer handle.Release()

	location, err := handle.Trigger()
	if err != nil {
		t.Fatalf("Trigger: %v", err)
	}
	if location != filepath.Join(dir, "unnamed") {
		t.Errorf("location = %q", location)
	}
}

func TestStageLongName(t *testing.T) {
	dir := t.TempDir()
	handle, err := NewDirSaver(dir).Stage(artifact.NewArtifact(strings.Repeat("m", 240)+".txt", "x"))
	if err != nil {
		t.Fatalf("Stage: %v", err)
	}
	defer handle.Release()

	location, err := handle.Trigger()
	if err != nil {
		t.Fatalf("Trigger: %v", err)
	}
	if !strings.HasSuffix(location, ".txt") {
		t.Errorf("location = %q", location)
	}
}
