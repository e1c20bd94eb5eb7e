// Package download saves exported artifacts into a directory.
//
// The artifact is first staged as a hidden temporary file next to its
// destination, then moved into place with a rename. The staged file plays
// the part of a browser object URL: it exists only between Stage and
// Release.
package download

import (
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"
	"path/filepath"
	"sync"

	"swift-workbench/artifact"
	"swift-workbench/utils"
)

var errAlreadyTriggered = errors.New("artifact already saved")

// DirSaver saves artifacts into Dir.
type DirSaver struct {
	Dir  string
	Perm os.FileMode

	// Filesystem hooks, replaced in tests.
	createTemp func(dir, pattern string) (stagingFile, error)
	chmod      func(name string, mode os.FileMode) error
}

type stagingFile interface {
	io.WriteCloser
	Name() string
}

func createTemp(dir, pattern string) (stagingFile, error) {
	f, err := os.CreateTemp(dir, pattern)
	if err != nil {
		return nil, err
	}
	return f, nil
}

// NewDirSaver returns a saver for dir, defaulting to the working directory.
func NewDirSaver(dir string) *DirSaver {
	if dir == "" {
		dir = "."
	}
	return &DirSaver{Dir: dir, Perm: 0o644, createTemp: createTemp, chmod: os.Chmod}
}

// Stage writes the artifact to a temporary file in the destination
// directory.
func (s *DirSaver) Stage(a artifact.Artifact) (artifact.Handle, error) {
	if err := utils.EnsureDirectory(s.Dir); err != nil {
		return nil, err
	}

	name := a.Name
	if name == "" {
		name = artifact.DefaultFilename
	}
	name = utils.SanitizeFilename(name)

	create, chmod := s.createTemp, s.chmod
	if create == nil {
		create = createTemp
	}
	if chmod == nil {
		chmod = os.Chmod
	}

	f, err := create(s.Dir, "."+name+".*.part")
	if err != nil {
		return nil, fmt.Errorf("creating staging file: %w", err)
	}
	staged := &stagedFile{
		staged: f.Name(),
		dest:   filepath.Join(s.Dir, name),
	}

	if _, err := f.Write(a.Data); err != nil {
		f.Close()
		staged.Release()
		return nil, fmt.Errorf("writing staging file: %w", err)
	}
	if err := f.Close(); err != nil {
		staged.Release()
		return nil, fmt.Errorf("closing staging file: %w", err)
	}
	if err := chmod(staged.staged, s.Perm); err != nil {
		staged.Release()
		return nil, fmt.Errorf("setting permissions on staging file: %w", err)
	}
	return staged, nil
}

type stagedFile struct {
	staged    string
	dest      string
	triggered bool

	releaseOnce sync.Once
	releaseErr  error
}

// Trigger moves the staged file to its destination, replacing any file of
// the same name.
func (f *stagedFile) Trigger() (string, error) {
	if f.triggered {
		return "", errAlreadyTriggered
	}
	f.triggered = true

	if err := os.Rename(f.staged, f.dest); err != nil {
		return "", fmt.Errorf("moving %s into place: %w", filepath.Base(f.dest), err)
	}
	return f.dest, nil
}

// Release removes the staged file if it is still there.
func (f *stagedFile) Release() error {
	f.releaseOnce.Do(func() {
		err := os.Remove(f.staged)
		if err != nil && !errors.Is(err, fs.ErrNotExist) {
			f.releaseErr = err
		}
	})
	return f.releaseErr
}
