package cmd

import (
	"fmt"
	"os"
	"path/filepath"
	"sort"

	"github.com/bmatcuk/doublestar/v4"
)

// resolveIncludes expands each include directory (which may itself be a
// glob, e.g. "shaders/**") into a sorted list of .osl/.nosl source files,
// matching the natural convention of dropping library shaders in a deep
// tree. A plain directory contributes only the files directly inside it.
func resolveIncludes(dirs []string) ([]string, error) {
	var files []string
	for _, dir := range dirs {
		if info, err := os.Stat(dir); err == nil && info.IsDir() {
			dir = filepath.ToSlash(filepath.Join(dir, "*"))
		}
		root, pattern := splitGlobRoot(dir)
		fsys := os.DirFS(root)
		matches, err := doublestar.Glob(fsys, pattern)
		if err != nil {
			return nil, fmt.Errorf("include dir %q: %w", dir, err)
		}
		for _, m := range matches {
			ext := filepath.Ext(m)
			if ext != ".osl" && ext != ".nosl" {
				continue
			}
			files = append(files, filepath.Join(root, m))
		}
	}
	sort.Strings(files)
	return files, nil
}

// splitGlobRoot separates dir into a non-magic root directory and a
// doublestar pattern relative to it, since doublestar.Glob requires an
// fs.FS rooted below any glob metacharacters.
func splitGlobRoot(dir string) (root, pattern string) {
	base, pat := doublestar.SplitPattern(dir)
	if base == "" {
		base = "."
	}
	return base, pat
}

// prependIncludes concatenates the text of every resolved include file
// ahead of source, giving struct and function declarations shared
// visibility across a single lex/parse/check pass without teaching the
// diagnostic sink about more than one file.
func prependIncludes(source string, dirs []string) (string, error) {
	files, err := resolveIncludes(dirs)
	if err != nil {
		return "", err
	}
	if len(files) == 0 {
		return source, nil
	}
	var out string
	for _, f := range files {
		content, err := os.ReadFile(f)
		if err != nil {
			return "", fmt.Errorf("reading include %q: %w", f, err)
		}
		out += string(content) + "\n"
	}
	return out + source, nil
}
