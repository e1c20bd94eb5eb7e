package utils

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"regexp"
	"slices"
	"strings"
	"unicode/utf8"

	"swift-workbench/models"
)

const maxExtBytes = 16

var invalidFilenameChars = regexp.MustCompile(`[<>:"/\\|?*]`)

func EnsureDirectory(dirPath string) error {
	if dirPath == "" {
		return fmt.Errorf("directory path cannot be empty")
	}

	absPath, err := filepath.Abs(dirPath)
	if err != nil {
		return fmt.Errorf("cannot resolve absolute path for %s: %w", dirPath, err)
	}

	if err := os.MkdirAll(absPath, 0755); err != nil {
		return fmt.Errorf("cannot create directory %s: %w", absPath, err)
	}

	return nil
}

func FormatFileSize(size int64) string {
	const unit = 1024
	if size < unit {
		return fmt.Sprintf("%d B", size)
	}

	div, exp := int64(unit), 0
	for n := size / unit; n >= unit; n /= unit {
		div *= unit
		exp++
	}

	units := []string{"KB", "MB", "GB", "TB", "PB"}
	return fmt.Sprintf("%.1f %s", float64(size)/float64(div), units[exp])
}

// SanitizeFilename makes filename safe to create inside a directory. The
// result is at most models.MaxFilenameBytes long, cut on a rune boundary,
// and never "." or "..".
func SanitizeFilename(filename string) string {
	filename = strings.TrimSpace(filename)
	filename = invalidFilenameChars.ReplaceAllString(filename, "_")

	if len(filename) > models.MaxFilenameBytes {
		ext := filepath.Ext(filename)
		if len(ext) > maxExtBytes {
			ext = ""
		}
		base := truncateUTF8(filename[:len(filename)-len(ext)], models.MaxFilenameBytes-len(ext))
		filename = base + ext
	}

	if filename == "" || filename == "." || filename == ".." {
		filename = "unnamed"
	}

	return filename
}

// truncateUTF8 cuts s to at most n bytes without splitting a rune.
func truncateUTF8(s string, n int) string {
	if len(s) <= n {
		return s
	}
	for n > 0 && !utf8.RuneStart(s[n]) {
		n--
	}
	return s[:n]
}

// ShortDigest keeps the leading characters of a hex digest for display.
func ShortDigest(digest string) string {
	if len(digest) <= 16 {
		return digest
	}
	return digest[:16]
}

func ReadMessageFile(filename string) (string, error) {
	if filename == "" {
		return "", fmt.Errorf("filename cannot be empty")
	}

	info, err := os.Stat(filename)
	if err != nil {
		if os.IsNotExist(err) {
			return "", fmt.Errorf("file does not exist: %s", filename)
		}
		return "", fmt.Errorf("cannot access file %s: %w", filename, err)
	}

	if info.IsDir() {
		return "", fmt.Errorf("path is a directory, not a file: %s", filename)
	}

	data, err := os.ReadFile(filename)
	if err != nil {
		return "", fmt.Errorf("cannot read file %s: %w", filename, err)
	}
	return string(data), nil
}

// MaxMessageFileSize caps files loaded into the message editor.
const MaxMessageFileSize = 5 << 20

// MessageFileExtensions are the extensions the message editor accepts.
var MessageFileExtensions = []string{".txt", ".swift", ".mt940", ".mt942", ".mt101"}

var (
	ErrUnsupportedFileType = errors.New("unsupported file type")
	ErrFileTooLarge        = errors.New("file too large")
)

// LoadMessageFile reads a message file for the editor. Only
// MessageFileExtensions are accepted, up to MaxMessageFileSize bytes.
func LoadMessageFile(filename string) (string, error) {
	ext := strings.ToLower(filepath.Ext(filename))
	if !slices.Contains(MessageFileExtensions, ext) {
		return "", fmt.Errorf("%w %q, expected one of %s", ErrUnsupportedFileType, ext, strings.Join(MessageFileExtensions, ", "))
	}

	info, err := os.Stat(filename)
	if err == nil && info.Size() > MaxMessageFileSize {
		return "", fmt.Errorf("%w: %s is %s, the limit is %s", ErrFileTooLarge, filename,
			FormatFileSize(info.Size()), FormatFileSize(MaxMessageFileSize))
	}

	return ReadMessageFile(filename)
}
