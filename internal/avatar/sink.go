package avatar

import (
	"context"
	"fmt"
	"os"
	"path/filepath"

	"github.com/pagardi95/ironunicorn/pkg"
)

const defaultAssetGender = "male"

// DiskSink writes generated assets as level_{n}.png into a directory, so a
// static store rooted there serves the generated set. On demand assets are
// kept per gender in a subdirectory and reused across runs.
type DiskSink struct {
	dir string
}

func NewDiskSink(dir string) (*DiskSink, error) {
	if err := pkg.EnsureDir(dir); err != nil {
		return nil, fmt.Errorf("asset dir: %w", err)
	}
	return &DiskSink{dir: dir}, nil
}

func (s *DiskSink) Put(_ context.Context, level int, img Image) (ImageRef, error) {
	return write(filepath.Join(s.dir, LevelFileName(level, ".png")), img)
}

func (s *DiskSink) Store(_ context.Context, level int, gender string, img Image) (ImageRef, error) {
	return write(s.genderPath(level, gender), img)
}

// Lookup finds a previously stored asset. Empty files do not count.
func (s *DiskSink) Lookup(level int, gender string) (ImageRef, bool) {
	path := s.genderPath(level, gender)
	info, err := os.Stat(path)
	if err != nil || info.IsDir() || info.Size() == 0 {
		return "", false
	}
	return ImageRef(path), true
}

func (s *DiskSink) genderPath(level int, gender string) string {
	if gender == "" {
		gender = defaultAssetGender
	}
	return filepath.Join(s.dir, filepath.Base(gender), LevelFileName(level, ".png"))
}

func write(path string, img Image) (ImageRef, error) {
	if len(img.Data) == 0 {
		return "", fmt.Errorf("write %s: %w", path, ErrNoImage)
	}
	if err := pkg.EnsureDir(filepath.Dir(path)); err != nil {
		return "", fmt.Errorf("asset dir: %w", err)
	}
	tmp := path + ".tmp"
	if err := os.WriteFile(tmp, img.Data, 0o644); err != nil {
		return "", fmt.Errorf("write %s: %w", tmp, err)
	}
	if err := os.Rename(tmp, path); err != nil {
		return "", fmt.Errorf("rename %s: %w", tmp, err)
	}
	return ImageRef(path), nil
}
