// report/load.go
// Package: report
package report

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"
)

// LoadMeta reads and parses the metadata descriptor for a run
// directory. This is the one required input: a missing or unparsable
// prompts.json is a hard error.
func LoadMeta(dir string) (RunMeta, error) {
	path := filepath.Join(dir, MetaFileName)
	b, err := os.ReadFile(path)
	if err != nil {
		return RunMeta{}, fmt.Errorf("could not read run metadata: %w", err)
	}
	var meta RunMeta
	if err := json.Unmarshal(b, &meta); err != nil {
		return RunMeta{}, fmt.Errorf("could not parse %s: %w", path, err)
	}
	return meta, nil
}

// LoadRun loads the metadata descriptor and every trial result record
// in dir. Only the metadata load can fail; a trial file that is
// missing or malformed degrades to an empty record.
func LoadRun(dir string) (*Run, error) {
	meta, err := LoadMeta(dir)
	if err != nil {
		return nil, err
	}
	return &Run{Dir: dir, Meta: meta, Results: loadResults(dir)}, nil
}

// loadResults parses every *.json file in dir other than the metadata
// descriptor, keyed by file name without extension. A file that cannot
// be read or parsed still gets an entry so the trial shows up as N/A
// downstream instead of aborting the run.
func loadResults(dir string) map[string]Record {
	results := make(map[string]Record)

	paths, _ := filepath.Glob(filepath.Join(dir, "*.json"))
	sort.Strings(paths)
	for _, p := range paths {
		name := strings.TrimSuffix(filepath.Base(p), ".json")
		if name == "prompts" {
			continue
		}
		var rec Record
		b, err := os.ReadFile(p)
		if err == nil {
			err = json.Unmarshal(b, &rec)
		}
		if err != nil || rec == nil {
			rec = Record{}
		}
		results[name] = rec
	}
	return results
}

// Answer reads the transcript text for a trial key. A missing or
// unreadable transcript renders the sentinel rather than an error.
func (r *Run) Answer(key string) string {
	b, err := os.ReadFile(filepath.Join(r.Dir, key+".txt"))
	if err != nil {
		return NotAvailable
	}
	return strings.TrimSpace(string(b))
}
