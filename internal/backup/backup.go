//go:build linux
// +build linux

package backup

import (
	"fmt"
	"io"
	"log/slog"
	"os"
	"os/user"
	"path/filepath"
	"sort"
	"strings"
	"time"
)

const (
	timeFormat   = "20060102-150405"
	keepBackups  = 10
	backupFolder = ".config/lazyufw/backups"
)

// Backup is one timestamped copy of an annotation file, taken before the
// file is rewritten.
type Backup struct {
	Path string
	Base string
	Time time.Time
	Size int64
}

func Dir() (string, error) {
	home, err := resolveHomeDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(home, backupFolder), nil
}

func resolveHomeDir() (string, error) {
	if sudoUser := os.Getenv("SUDO_USER"); sudoUser != "" && sudoUser != "root" {
		u, err := user.Lookup(sudoUser)
		if err == nil && u.HomeDir != "" {
			return u.HomeDir, nil
		}
	}
	if home := os.Getenv("HOME"); home != "" {
		return home, nil
	}
	return os.UserHomeDir()
}

// Create copies src into the backup directory. A missing source is not an
// error worth stopping for: there is nothing to preserve yet.
func Create(src string) (Backup, error) {
	info, err := os.Stat(src)
	if err != nil {
		return Backup{}, err
	}
	if info.IsDir() {
		return Backup{}, fmt.Errorf("%s is a directory", src)
	}

	dir, err := Dir()
	if err != nil {
		return Backup{}, err
	}
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return Backup{}, err
	}

	base := strings.TrimSuffix(filepath.Base(src), ".txt")
	ts := time.Now()
	name := fmt.Sprintf("%s-%s.txt", base, ts.Format(timeFormat))
	dest := filepath.Join(dir, name)
	if err := copyFile(src, dest); err != nil {
		return Backup{}, err
	}
	slog.Debug("backup created", "src", src, "dest", dest)

	b := Backup{
		Path: dest,
		Base: base,
		Time: ts,
		Size: info.Size(),
	}
	_ = prune(base, keepBackups)
	return b, nil
}

// List returns the backups for one annotation file base name ("notes" or
// "services"), newest first.
func List(base string) ([]Backup, error) {
	dir, err := Dir()
	if err != nil {
		return nil, err
	}
	entries, err := os.ReadDir(dir)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, nil
		}
		return nil, err
	}

	prefix := base + "-"
	items := make([]Backup, 0)
	for _, entry := range entries {
		if entry.IsDir() {
			continue
		}
		name := entry.Name()
		if !strings.HasPrefix(name, prefix) || !strings.HasSuffix(name, ".txt") {
			continue
		}
		tsPart := strings.TrimSuffix(strings.TrimPrefix(name, prefix), ".txt")
		ts, err := time.Parse(timeFormat, tsPart)
		if err != nil {
			continue
		}
		info, err := entry.Info()
		if err != nil {
			continue
		}
		items = append(items, Backup{
			Path: filepath.Join(dir, name),
			Base: base,
			Time: ts,
			Size: info.Size(),
		})
	}

	sort.Slice(items, func(i, j int) bool {
		return items[i].Time.After(items[j].Time)
	})
	return items, nil
}

func copyFile(src, dest string) error {
	in, err := os.Open(src)
	if err != nil {
		return err
	}
	defer in.Close()

	out, err := os.Create(dest)
	if err != nil {
		return err
	}
	defer out.Close()

	if _, err := io.Copy(out, in); err != nil {
		return err
	}
	return out.Sync()
}

func prune(base string, keep int) error {
	if keep <= 0 {
		return nil
	}
	items, err := List(base)
	if err != nil {
		return err
	}
	if len(items) <= keep {
		return nil
	}
	for _, b := range items[keep:] {
		_ = os.Remove(b.Path)
	}
	return nil
}
