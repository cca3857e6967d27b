// Package artifact describes documents attached to a project in the creation
// wizard. Files are classified from their name and stat metadata only; their
// contents are never opened.
package artifact

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

// Kind is the document category shown next to an attachment.
type Kind string

const (
	KindContract    Kind = "Contract"
	KindDrawing     Kind = "Drawing"
	KindModel       Kind = "Model"
	KindSchedule    Kind = "Schedule"
	KindSpreadsheet Kind = "Spreadsheet"
	KindDocument    Kind = "Document"
	KindOther       Kind = "File"
)

var extKinds = map[string]Kind{
	".pdf":  KindDocument,
	".doc":  KindDocument,
	".docx": KindDocument,
	".dwg":  KindDrawing,
	".dxf":  KindDrawing,
	".ifc":  KindModel,
	".rvt":  KindModel,
	".mpp":  KindSchedule,
	".xer":  KindSchedule,
	".xls":  KindSpreadsheet,
	".xlsx": KindSpreadsheet,
	".csv":  KindSpreadsheet,
}

// Artifact is one attached document.
type Artifact struct {
	Path string
	Name string
	Kind Kind
	Size int64 // -1 when the file could not be stat'ed (e.g. sample names)
}

// Classify returns the kind for a file name. Names mentioning a contract or
// schedule win over the extension.
func Classify(name string) Kind {
	base := strings.ToLower(filepath.Base(name))
	switch {
	case strings.Contains(base, "contract"):
		return KindContract
	case strings.Contains(base, "schedule"):
		return KindSchedule
	}
	if k, ok := extKinds[filepath.Ext(base)]; ok {
		return k
	}
	return KindOther
}

// FromPath builds an Artifact for path using os.Stat for the size.
// Missing files are still returned, with Size -1.
func FromPath(path string) Artifact {
	a := Artifact{
		Path: path,
		Name: filepath.Base(path),
		Kind: Classify(path),
		Size: -1,
	}
	if info, err := os.Stat(path); err == nil && !info.IsDir() {
		a.Size = info.Size()
	}
	return a
}

// Label returns "name (Kind, size)" for lists.
func (a Artifact) Label() string {
	if a.Size < 0 {
		return fmt.Sprintf("%s (%s)", a.Name, a.Kind)
	}
	return fmt.Sprintf("%s (%s, %s)", a.Name, a.Kind, HumanSize(a.Size))
}

// HumanSize formats a byte count as B, KB or MB.
func HumanSize(n int64) string {
	switch {
	case n < 1024:
		return fmt.Sprintf("%d B", n)
	case n < 1024*1024:
		return fmt.Sprintf("%.1f KB", float64(n)/1024)
	default:
		return fmt.Sprintf("%.1f MB", float64(n)/(1024*1024))
	}
}

// Set is an ordered list of attachments with unique paths.
type Set struct {
	items []Artifact
}

// Add appends a unless an artifact with the same path is present.
// It reports whether a was added.
func (s *Set) Add(a Artifact) bool {
	for _, it := range s.items {
		if it.Path == a.Path {
			return false
		}
	}
	s.items = append(s.items, a)
	return true
}

// Remove drops the artifact at index i.
func (s *Set) Remove(i int) {
	if i < 0 || i >= len(s.items) {
		return
	}
	s.items = append(s.items[:i], s.items[i+1:]...)
}

// Items returns a copy of the attachments.
func (s *Set) Items() []Artifact {
	out := make([]Artifact, len(s.items))
	copy(out, s.items)
	return out
}

// Names returns the display names in order.
func (s *Set) Names() []string {
	out := make([]string, len(s.items))
	for i, it := range s.items {
		out[i] = it.Name
	}
	return out
}

// Len returns the number of attachments.
func (s *Set) Len() int {
	return len(s.items)
}
