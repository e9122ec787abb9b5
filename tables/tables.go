// Package tables provides named residue score tables: a small built-in
// registry and a YAML file format for user-supplied tables.
package tables

import (
	"fmt"
	"os"
	"sort"

	"gopkg.in/yaml.v3"

	"github.com/bcblab/resscore/seq"
)

// A tableFile is the on-disk YAML representation of a score table. The
// alphabet is a string of residue codes and the scores correspond to it
// positionally.
type tableFile struct {
	Name     string    `yaml:"name"`
	Alphabet string    `yaml:"alphabet"`
	Scores   []float64 `yaml:"scores"`
}

// Load reads a score table from a YAML file. A table whose scores do not
// match its alphabet in length fails with seq.ErrLengthMismatch.
func Load(path string) (*seq.ScoreTable, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("tables: reading '%s': %w", path, err)
	}
	var tf tableFile
	if err := yaml.Unmarshal(raw, &tf); err != nil {
		return nil, fmt.Errorf("tables: decoding '%s': %w", path, err)
	}
	table, err := seq.NewScoreTable(seq.AlphabetFromString(tf.Alphabet), tf.Scores)
	if err != nil {
		return nil, fmt.Errorf("tables: '%s': %w", path, err)
	}
	return table, nil
}

// Save writes a score table to a YAML file that Load can read back.
func Save(path, name string, table *seq.ScoreTable) error {
	raw, err := yaml.Marshal(tableFile{
		Name:     name,
		Alphabet: table.Alphabet().String(),
		Scores:   table.Scores(),
	})
	if err != nil {
		return fmt.Errorf("tables: encoding '%s': %w", path, err)
	}
	if err := os.WriteFile(path, raw, 0644); err != nil {
		return fmt.Errorf("tables: writing '%s': %w", path, err)
	}
	return nil
}

// Builtin returns the built-in table with the given name.
func Builtin(name string) (*seq.ScoreTable, bool) {
	table, ok := builtins[name]
	return table, ok
}

// Names returns the names of all built-in tables, sorted.
func Names() []string {
	names := make([]string, 0, len(builtins))
	for name := range builtins {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Open resolves a built-in table name, falling back to loading the argument
// as a YAML file path.
func Open(nameOrPath string) (*seq.ScoreTable, error) {
	if table, ok := Builtin(nameOrPath); ok {
		return table, nil
	}
	return Load(nameOrPath)
}
