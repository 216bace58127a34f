// resolver.go — `use "X"` module path resolution (spec.md §4.7).
//
// Grounded on the teacher's modules.go: an ordered list of search
// roots (there: MINDSCRIPT_PATH; here: EZLIB plus any -lib flags),
// walked in a fixed fallback order per root, with package.ez playing
// the role the teacher's Module manifest JSON plays for a directory of
// files that isn't just one file.
package ez

import (
	"encoding/json"
	"os"
	"path/filepath"
)

// Resolver finds the source file behind a `use` path.
type Resolver struct {
	Roots []string
}

// NewResolver builds a Resolver whose search roots are, in order, the
// explicitly passed roots (e.g. from -lib CLI flags) followed by the
// OS-path-separated entries of EZLIB.
func NewResolver(extraRoots ...string) *Resolver {
	roots := append([]string{}, extraRoots...)
	if env := os.Getenv("EZLIB"); env != "" {
		roots = append(roots, filepath.SplitList(env)...)
	}
	return &Resolver{Roots: roots}
}

// packageManifest is the shape of a package.ez file: JSON naming the
// entry point relative to the package directory.
type packageManifest struct {
	Main string `json:"main"`
}

// Resolve turns a `use` path into an absolute file path and its source
// text, trying in order (spec.md §4.7):
//  1. path itself, if it names a readable file
//  2. for each root: root/path
//  3. root/path/package.ez (a JSON manifest naming the real entry file)
//  4. root/path.ez
//  5. root/path/main.ez
//
// A ModuleNotFound RuntimeError is returned if nothing matches.
func (r *Resolver) Resolve(path string, line int) (abs string, src string, err error) {
	if fileExists(path) {
		data, rerr := os.ReadFile(path)
		if rerr != nil {
			return "", "", newRuntimeError(KindImportError, line, "failed to read %q: %v", path, rerr)
		}
		return absPath(path), string(data), nil
	}
	for _, root := range r.Roots {
		direct := filepath.Join(root, path)
		if fileExists(direct) {
			data, rerr := os.ReadFile(direct)
			if rerr != nil {
				return "", "", newRuntimeError(KindImportError, line, "failed to read %q: %v", direct, rerr)
			}
			return absPath(direct), string(data), nil
		}

		manifest := filepath.Join(direct, "package.ez")
		if fileExists(manifest) {
			data, rerr := os.ReadFile(manifest)
			if rerr != nil {
				return "", "", newRuntimeError(KindImportError, line, "failed to read %q: %v", manifest, rerr)
			}
			var man packageManifest
			if jerr := json.Unmarshal(data, &man); jerr != nil {
				return "", "", newRuntimeError(KindImportError, line, "malformed package.ez at %q: %v", manifest, jerr)
			}
			if man.Main == "" {
				man.Main = "main.ez"
			}
			entry := filepath.Join(direct, man.Main)
			if fileExists(entry) {
				edata, rerr := os.ReadFile(entry)
				if rerr != nil {
					return "", "", newRuntimeError(KindImportError, line, "failed to read %q: %v", entry, rerr)
				}
				return absPath(entry), string(edata), nil
			}
			return "", "", newRuntimeError(KindImportError, line, "package.ez at %q names missing entry %q", manifest, man.Main)
		}

		withExt := direct + ".ez"
		if fileExists(withExt) {
			data, rerr := os.ReadFile(withExt)
			if rerr != nil {
				return "", "", newRuntimeError(KindImportError, line, "failed to read %q: %v", withExt, rerr)
			}
			return absPath(withExt), string(data), nil
		}

		mainFile := filepath.Join(direct, "main.ez")
		if fileExists(mainFile) {
			data, rerr := os.ReadFile(mainFile)
			if rerr != nil {
				return "", "", newRuntimeError(KindImportError, line, "failed to read %q: %v", mainFile, rerr)
			}
			return absPath(mainFile), string(data), nil
		}
	}
	return "", "", newRuntimeError(KindModuleNotFound, line, "could not resolve module %q", path)
}

func fileExists(p string) bool {
	info, err := os.Stat(p)
	return err == nil && !info.IsDir()
}

func absPath(p string) string {
	a, err := filepath.Abs(p)
	if err != nil {
		return p
	}
	return a
}
