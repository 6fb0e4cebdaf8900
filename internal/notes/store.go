package notes

import (
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strconv"
	"strings"
)

// Store maps a rule's positional index to a short annotation. The index is
// ufw's transient rule number, not a stable handle: every deletion below an
// entry invalidates it until ReindexAfterDelete has run.
type Store map[int]string

// Load reads one annotation file of "<index>:<text>" lines. A missing file
// is an empty store. Lines without a colon or with a non-numeric index are
// dropped rather than failing the load.
func Load(path string) (Store, error) {
	s := Store{}

	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return s, nil
		}
		return s, fmt.Errorf("read %s: %w", filepath.Base(path), err)
	}

	for _, line := range strings.Split(string(data), "\n") {
		num, text, ok := strings.Cut(line, ":")
		if !ok {
			continue
		}
		index, err := strconv.Atoi(strings.TrimSpace(num))
		if err != nil || index < 1 {
			continue
		}
		s[index] = strings.TrimSpace(text)
	}
	return s, nil
}

// Save rewrites the whole file from the store, entries in ascending index
// order. There is no incremental patching: the file always reflects exactly
// one store state.
func Save(path string, s Store) error {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf("create %s: %w", filepath.Dir(path), err)
	}

	indices := make([]int, 0, len(s))
	for index := range s {
		if index < 1 {
			continue
		}
		indices = append(indices, index)
	}
	sort.Ints(indices)

	var b strings.Builder
	for _, index := range indices {
		fmt.Fprintf(&b, "%d:%s\n", index, s[index])
	}

	if err := os.WriteFile(path, []byte(b.String()), 0o644); err != nil {
		return fmt.Errorf("write %s: %w", filepath.Base(path), err)
	}
	return nil
}

func (s Store) Get(index int) (string, bool) {
	text, ok := s[index]
	return text, ok
}

func (s Store) Set(index int, text string) {
	s[index] = text
}

func (s Store) Remove(index int) {
	delete(s, index)
}

// ReindexAfterDelete returns the store as it must look after the rule at
// deleted is removed externally: the entry at that index is dropped and every
// entry above it shifts down by one, matching ufw's own renumbering. Entries
// below pass through unchanged. The input store is not modified.
func ReindexAfterDelete(s Store, deleted int) Store {
	next := make(Store, len(s))
	for index, text := range s {
		switch {
		case index == deleted:
			continue
		case index > deleted:
			next[index-1] = text
		default:
			next[index] = text
		}
	}
	return next
}
