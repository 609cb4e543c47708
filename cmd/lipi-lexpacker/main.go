// Command lipi-lexpacker assembles the embeddable lexicon.json from fragment
// files under a root directory. Fragments are JSON or YAML word lists keyed
// by language, plus pattern lists; pack.yaml at the root supplies the header
package main

import (
	"encoding/json"
	"errors"
	"flag"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"gopkg.in/yaml.v3"
)

// header mirrors pack.yaml
type header struct {
	Version int            `json:"version" yaml:"version"`
	Meta    map[string]any `json:"meta" yaml:"meta"`
}

// fragment is one word-list or pattern file. A file carries words (with a
// lang) or patterns, never both
type fragment struct {
	Lang     string     `json:"lang" yaml:"lang"`
	Words    []string   `json:"words" yaml:"words"`
	Patterns [][]string `json:"patterns" yaml:"patterns"`
}

// outV2 is the assembled lexicon.json layout
type outV2 struct {
	Version  int            `json:"version"`
	Meta     map[string]any `json:"meta,omitempty"`
	English  []string       `json:"english"`
	Hindi    []string       `json:"hindi"`
	Patterns [][]string     `json:"patterns"`
}

func must(err error) {
	if err != nil {
		_, _ = fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}
}

func readFragment(path string, into any) error {
	b, err := os.ReadFile(path)
	if err != nil {
		return err
	}
	switch strings.ToLower(filepath.Ext(path)) {
	case ".json":
		if err := json.Unmarshal(b, into); err != nil {
			return fmt.Errorf("decode %s: %w", path, err)
		}
	case ".yaml", ".yml":
		if err := yaml.Unmarshal(b, into); err != nil {
			return fmt.Errorf("decode %s: %w", path, err)
		}
	default:
		return fmt.Errorf("unsupported fragment type: %s", path)
	}
	return nil
}

func findFragmentFiles(root string) ([]string, error) {
	var files []string
	err := filepath.WalkDir(root, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if d.IsDir() {
			return nil
		}
		if filepath.Base(path) == "pack.yaml" && filepath.Dir(path) == root {
			return nil
		}
		switch strings.ToLower(filepath.Ext(path)) {
		case ".json", ".yaml", ".yml":
			files = append(files, path)
		}
		return nil
	})
	sort.Strings(files)
	return files, err
}

func assemble(root string) (outV2, error) {
	var hdr header
	if err := readFragment(filepath.Join(root, "pack.yaml"), &hdr); err != nil {
		return outV2{}, fmt.Errorf("read pack.yaml: %w", err)
	}
	if hdr.Version != 2 {
		return outV2{}, fmt.Errorf("pack.yaml version=%d (expected 2)", hdr.Version)
	}

	paths, err := findFragmentFiles(root)
	if err != nil {
		return outV2{}, err
	}
	if len(paths) == 0 {
		return outV2{}, errors.New("no fragment files found under " + root)
	}

	// first-seen source per word, for overlap diagnostics
	english := map[string]string{}
	hindi := map[string]string{}
	seenPattern := map[string]bool{}
	var patterns [][]string

	for _, p := range paths {
		var fr fragment
		if err := readFragment(p, &fr); err != nil {
			return outV2{}, err
		}

		if len(fr.Words) > 0 {
			var dst map[string]string
			switch strings.ToLower(strings.TrimSpace(fr.Lang)) {
			case "english":
				dst = english
			case "hindi":
				dst = hindi
			default:
				return outV2{}, fmt.Errorf("fragment %s: bad lang %q (want english or hindi)", p, fr.Lang)
			}
			for _, w := range fr.Words {
				w = strings.ToLower(strings.TrimSpace(w))
				if w == "" {
					continue
				}
				if _, ok := dst[w]; !ok {
					dst[w] = p
				}
			}
		}

		for _, pat := range fr.Patterns {
			if len(pat) < 2 || len(pat) > 3 {
				return outV2{}, fmt.Errorf("fragment %s: pattern %v must have 2 or 3 tokens", p, pat)
			}
			toks := make([]string, 0, len(pat))
			for _, t := range pat {
				t = strings.ToLower(strings.TrimSpace(t))
				if t == "" {
					return outV2{}, fmt.Errorf("fragment %s: pattern %v has an empty token", p, pat)
				}
				toks = append(toks, t)
			}
			key := strings.Join(toks, " ")
			if seenPattern[key] {
				continue
			}
			seenPattern[key] = true
			patterns = append(patterns, toks)
		}
	}

	// The sets must be disjoint: the classifier counts a token for exactly
	// one side, so an overlap is a curation bug, not a tie to break here
	var overlaps []string
	for w, src := range hindi {
		if esrc, ok := english[w]; ok {
			overlaps = append(overlaps, fmt.Sprintf("%q (english: %s, hindi: %s)", w, esrc, src))
		}
	}
	if len(overlaps) > 0 {
		sort.Strings(overlaps)
		return outV2{}, fmt.Errorf("words on both sides:\n  %s", strings.Join(overlaps, "\n  "))
	}

	sort.Slice(patterns, func(i, j int) bool {
		return strings.Join(patterns[i], " ") < strings.Join(patterns[j], " ")
	})

	return outV2{
		Version:  hdr.Version,
		Meta:     hdr.Meta,
		English:  sortedKeys(english),
		Hindi:    sortedKeys(hindi),
		Patterns: patterns,
	}, nil
}

func sortedKeys(m map[string]string) []string {
	out := make([]string, 0, len(m))
	for w := range m {
		out = append(out, w)
	}
	sort.Strings(out)
	return out
}

func main() {
	var (
		flagRoot = flag.String("root", "./lexicons", "path to the fragment root directory")
		out      = flag.String("out", "./internal/core/lexicon/lexicon.json", "output path or '-' for stdout")
		pretty   = flag.Bool("pretty", true, "pretty-print JSON")
		verbose  = flag.Bool("v", false, "verbose logging")
	)
	flag.Parse()

	root := strings.TrimSpace(*flagRoot)
	if env := strings.TrimSpace(os.Getenv("LIPI_LEXICONS_ROOT")); env != "" && root == "./lexicons" {
		root = env
	}

	obj, err := assemble(root)
	must(err)
	if *verbose {
		_, _ = fmt.Fprintf(os.Stderr, "assembled %d english, %d hindi, %d patterns from %s\n",
			len(obj.English), len(obj.Hindi), len(obj.Patterns), root)
	}

	var enc []byte
	if *pretty {
		enc, err = json.MarshalIndent(obj, "", "  ")
	} else {
		enc, err = json.Marshal(obj)
	}
	must(err)

	if *out == "-" {
		_, _ = os.Stdout.Write(enc)
		_, _ = os.Stdout.WriteString("\n")
		return
	}

	must(os.MkdirAll(filepath.Dir(*out), 0o755))
	must(os.WriteFile(*out, append(enc, '\n'), 0o644))
	if *verbose {
		_, _ = fmt.Fprintf(os.Stderr, "wrote %s (%d bytes)\n", *out, len(enc)+1)
	}
}
