package category

import (
	"path/filepath"
	"strings"
)

// Category is a named bucket of file extensions. A category with an
// empty extension list is the fallback for files that match nothing.
type Category struct {
	Name       string
	Extensions []string
}

// Table is an ordered list of categories. Order is the tie-break when
// classifying: the first category whose extension list contains the
// file's extension wins.
type Table []Category

// Default returns the built-in category table.
func Default() Table {
	return Table{
		{Name: "Documents", Extensions: []string{".pdf", ".docx", ".txt", ".xlsx", ".pptx", ".csv", ".rtf", ".odt"}},
		{Name: "Images", Extensions: []string{".jpg", ".jpeg", ".png", ".gif", ".bmp", ".svg", ".tiff", ".webp"}},
		{Name: "Videos", Extensions: []string{".mp4", ".mov", ".avi", ".mkv", ".flv", ".wmv", ".webm", ".m4v"}},
		{Name: "Others", Extensions: nil},
		{Name: "Audio", Extensions: []string{".mp3", ".wav", ".aac", ".flac", ".ogg", ".m4a", ".wma"}},
		{Name: "Archives", Extensions: []string{".zip", ".rar", ".7z", ".tar", ".gz", ".bz2"}},
		{Name: "Executables", Extensions: []string{".exe", ".msi", ".dmg", ".pkg", ".deb", ".rpm"}},
		{Name: "Code", Extensions: []string{".py", ".js", ".html", ".css", ".java", ".cpp", ".c", ".php", ".json", ".xml"}},
	}
}

// Validate checks the table invariants: category names are unique,
// extensions are lowercase with a leading dot and listed at most once
// across the whole table, and exactly one category has an empty
// extension list (the fallback).
func (t Table) Validate() error {
	if len(t) == 0 {
		return &TableError{Message: "table is empty"}
	}

	names := make(map[string]bool, len(t))
	seen := make(map[string]string)
	fallbacks := 0

	for _, c := range t {
		if c.Name == "" {
			return &TableError{Message: "category name is empty"}
		}
		if names[c.Name] {
			return &TableError{Category: c.Name, Message: "duplicate category name"}
		}
		names[c.Name] = true

		if len(c.Extensions) == 0 {
			fallbacks++
			continue
		}

		for _, ext := range c.Extensions {
			if !strings.HasPrefix(ext, ".") {
				return &TableError{Category: c.Name, Message: "extension missing leading dot: " + ext}
			}
			if ext != strings.ToLower(ext) {
				return &TableError{Category: c.Name, Message: "extension not lowercase: " + ext}
			}
			if other, ok := seen[ext]; ok {
				return &TableError{Category: c.Name, Message: "extension " + ext + " already listed in " + other}
			}
			seen[ext] = c.Name
		}
	}

	if fallbacks != 1 {
		return &TableError{Message: "table must have exactly one fallback category"}
	}

	return nil
}

// Classify returns the name of the first category whose extension list
// contains the filename's lowercased extension, or the fallback
// category name when none matches.
func (t Table) Classify(filename string) string {
	ext := strings.ToLower(filepath.Ext(filename))

	if ext != "" {
		for _, c := range t {
			for _, e := range c.Extensions {
				if e == ext {
					return c.Name
				}
			}
		}
	}

	return t.Fallback()
}

// Fallback returns the name of the fallback category (the one with an
// empty extension list), or "" for an invalid table.
func (t Table) Fallback() string {
	for _, c := range t {
		if len(c.Extensions) == 0 {
			return c.Name
		}
	}
	return ""
}

// Names returns all category names in table order.
func (t Table) Names() []string {
	names := make([]string, 0, len(t))
	for _, c := range t {
		names = append(names, c.Name)
	}
	return names
}

// TableError represents a category table validation error.
type TableError struct {
	Category string
	Message  string
}

func (e *TableError) Error() string {
	if e.Category == "" {
		return "invalid category table: " + e.Message
	}
	return "invalid category table: " + e.Category + ": " + e.Message
}
