package render

import (
	"log"
	"os"
	"path/filepath"
	"sync"

	"making-change/shared"
)

// IconResolver finds the image file for a denomination under Dir.
// A missing file is reported once through Warnf and is never an error.
type IconResolver struct {
	Dir   string
	Warnf func(format string, args ...interface{})

	mu     sync.Mutex
	warned map[string]struct{}
}

func NewIconResolver(dir string) *IconResolver {
	return &IconResolver{Dir: dir, Warnf: log.Printf}
}

// Resolve returns the icon path and whether the file exists.
func (r *IconResolver) Resolve(d shared.Denomination) (string, bool) {
	if r == nil || d.Icon == "" {
		return "", false
	}
	path := filepath.Join(r.Dir, d.Icon)
	info, err := os.Stat(path)
	if err == nil && !info.IsDir() {
		return path, true
	}

	r.mu.Lock()
	defer r.mu.Unlock()
	if r.warned == nil {
		r.warned = make(map[string]struct{})
	}
	if _, seen := r.warned[path]; !seen {
		r.warned[path] = struct{}{}
		if r.Warnf != nil {
			if err == nil {
				r.Warnf("Warning: icon for %s is a directory: %s", d.Name, path)
			} else {
				r.Warnf("Warning: icon file not found for %s: %s", d.Name, path)
			}
		}
	}
	return "", false
}
