package report

import (
	"embed"
	"encoding/json"
	"fmt"
	"io/fs"
	"os"
	"path"
	"strings"

	"github.com/bmatcuk/doublestar/v4"
)

//go:embed data
var embedded embed.FS

// comparisonPattern matches competitor comparison files. The file stem is the
// comparison key.
const comparisonPattern = "comparison/*.json"

// Embedded returns the datasets compiled into the binary.
func Embedded() fs.FS {
	sub, err := fs.Sub(embedded, "data")
	if err != nil {
		panic(err)
	}
	return sub
}

// LoadDir loads the dataset from dir, or from the embedded copy when dir is
// empty.
func LoadDir(dir string) (*Dataset, error) {
	if dir == "" {
		return Load(Embedded())
	}
	info, err := os.Stat(dir)
	if err != nil {
		return nil, fmt.Errorf("opening data dir: %w", err)
	}
	if !info.IsDir() {
		return nil, fmt.Errorf("data dir %s is not a directory", dir)
	}
	return Load(os.DirFS(dir))
}

// Load reads every dataset file from fsys and validates the result.
func Load(fsys fs.FS) (*Dataset, error) {
	ds := &Dataset{Comparisons: make(map[string]Comparison)}

	files := []struct {
		name string
		dst  any
	}{
		{"entities.json", &ds.Entities},
		{"metrics.json", &ds.Metrics},
		{"financials.json", &ds.Financials},
		{"flywheel.json", &ds.Flywheel},
		{"goals.json", &ds.Goals},
		{"investors.json", &ds.Investors},
		{"team.json", &ds.Team},
	}
	for _, f := range files {
		if err := readJSON(fsys, f.name, f.dst); err != nil {
			return nil, err
		}
	}

	matches, err := doublestar.Glob(fsys, comparisonPattern)
	if err != nil {
		return nil, fmt.Errorf("finding comparisons: %w", err)
	}
	for _, m := range matches {
		var c Comparison
		if err := readJSON(fsys, m, &c); err != nil {
			return nil, err
		}
		key := strings.TrimSuffix(path.Base(m), path.Ext(m))
		ds.Comparisons[key] = c
	}

	if err := ds.Validate(); err != nil {
		return nil, err
	}
	return ds, nil
}

func readJSON(fsys fs.FS, name string, dst any) error {
	data, err := fs.ReadFile(fsys, name)
	if err != nil {
		return fmt.Errorf("reading %s: %w", name, err)
	}
	if err := json.Unmarshal(data, dst); err != nil {
		return fmt.Errorf("parsing %s: %w", name, err)
	}
	return nil
}
