package datastructure

import (
	"bytes"
	"errors"
	"fmt"
	rege "regexp"
	"sort"
	"strings"
	"unicode"

	"github.com/lintang-b-s/campus-route/pkg"

	"github.com/RadhiFadlillah/go-sastrawi"
	"github.com/blevesearch/vellum"
	"github.com/blevesearch/vellum/levenshtein"
	"github.com/blevesearch/vellum/regexp"
	"github.com/tidwall/btree"
)

const (
	MAX_SUGGEST_EDIT_DISTANCE = 2
)

// POIRegistry maps unique display names to graph nodes. Read-only after construction.
type POIRegistry struct {
	byName     btree.Map[string, NodeID]
	lookup     map[string][]string // LookupKey -> display names
	normalized map[string][]string // normalized name -> display names
	fstKeys    []string
	namesFST   *vellum.FST
}

// LookupKey lowercases name and splits it on anything that is not a letter or a
// digit, so "Gate-1" and " gate 1 " share a key while "Gate 2" does not.
func LookupKey(name string) string {
	return strings.Join(strings.FieldsFunc(strings.ToLower(name), func(r rune) bool {
		return !unicode.IsLetter(r) && !unicode.IsDigit(r)
	}), " ")
}

// NormalizeName reduces name to its letter tokens. It only feeds fuzzy suggestions.
func NormalizeName(name string) string {
	return strings.Join(sastrawi.Tokenize(name), " ")
}

func NewPOIRegistry(pois []POIInput, nodeExists func(NodeID) bool) (*POIRegistry, error) {
	r := &POIRegistry{
		lookup:     make(map[string][]string),
		normalized: make(map[string][]string),
	}
	for _, poi := range pois {
		if strings.TrimSpace(poi.Name) == "" {
			return nil, malformed("poi for node %d has an empty name", poi.NodeID)
		}
		if !nodeExists(poi.NodeID) {
			return nil, malformed("poi %q references unknown node %d", poi.Name, poi.NodeID)
		}
		if _, ok := r.byName.Get(poi.Name); ok {
			return nil, malformed("duplicate poi name %q", poi.Name)
		}
		r.byName.Set(poi.Name, poi.NodeID)

		if lk := LookupKey(poi.Name); lk != "" {
			r.lookup[lk] = append(r.lookup[lk], poi.Name)
		}
		key := NormalizeName(poi.Name)
		if key != "" {
			r.normalized[key] = append(r.normalized[key], poi.Name)
		}
	}

	r.fstKeys = make([]string, 0, len(r.normalized))
	for key, names := range r.normalized {
		sort.Strings(names)
		r.fstKeys = append(r.fstKeys, key)
	}
	sort.Strings(r.fstKeys)

	if err := r.buildFST(); err != nil {
		return nil, fmt.Errorf("error when building poi name fst: %w", err)
	}
	return r, nil
}

// buildFST. vellum wants keys inserted in lexicographic order; the value is the position in fstKeys.
func (r *POIRegistry) buildFST() error {
	var buf bytes.Buffer
	fstBuilder, err := vellum.New(&buf, nil)
	if err != nil {
		return err
	}

	for i, key := range r.fstKeys {
		if err := fstBuilder.Insert([]byte(key), uint64(i)); err != nil {
			return err
		}
	}

	if err := fstBuilder.Close(); err != nil {
		return err
	}

	fst, err := vellum.Load(buf.Bytes())
	if err != nil {
		return err
	}
	r.namesFST = fst
	return nil
}

func (r *POIRegistry) Len() int {
	return r.byName.Len()
}

// Scan visits every POI in name order until fn returns false.
func (r *POIRegistry) Scan(fn func(name string, id NodeID) bool) {
	r.byName.Scan(fn)
}

func (r *POIRegistry) Names() []string {
	names := make([]string, 0, r.byName.Len())
	r.byName.Scan(func(name string, _ NodeID) bool {
		names = append(names, name)
		return true
	})
	return names
}

// canonical returns the registered display name for name. An exact match wins,
// otherwise the lookup key must identify exactly one POI.
func (r *POIRegistry) canonical(name string) (string, bool) {
	if _, ok := r.byName.Get(name); ok {
		return name, true
	}
	names := r.lookup[LookupKey(name)]
	if len(names) == 1 {
		return names[0], true
	}
	return "", false
}

func (r *POIRegistry) Resolve(name string) (NodeID, error) {
	display, ok := r.canonical(name)
	if !ok {
		return 0, pkg.WrapErrorf(nil, pkg.ErrUnknownLocation, "unknown location %q", name)
	}
	id, _ := r.byName.Get(display)
	return id, nil
}

// DisplayName returns the registered spelling of name, or name itself when it is not registered.
func (r *POIRegistry) DisplayName(name string) string {
	if display, ok := r.canonical(name); ok {
		return display
	}
	return name
}

// Suggest returns registered names whose normalized form is within maxEdits of the
// normalized query or starts with it. Results are sorted and unique.
func (r *POIRegistry) Suggest(query string, maxEdits int) ([]string, error) {
	key := NormalizeName(query)
	if key == "" || len(r.fstKeys) == 0 {
		return []string{}, nil
	}
	if maxEdits > MAX_SUGGEST_EDIT_DISTANCE {
		maxEdits = MAX_SUGGEST_EDIT_DISTANCE
	}
	if maxEdits < 0 {
		maxEdits = 0
	}

	matched := make(map[uint64]struct{})

	lv, err := levenshtein.NewLevenshteinAutomatonBuilder(uint8(maxEdits), false)
	if err != nil {
		return nil, err
	}
	dfa, err := lv.BuildDfa(key, uint8(maxEdits))
	if err != nil {
		return nil, err
	}
	if err := r.collect(dfa, matched); err != nil {
		return nil, err
	}

	prefixAutomaton, err := regexp.New(fmt.Sprintf(`%s.*`, rege.QuoteMeta(key)))
	if err != nil {
		return nil, fmt.Errorf("error when initializing regex automaton: %w", err)
	}
	if err := r.collect(prefixAutomaton, matched); err != nil {
		return nil, err
	}

	suggestions := []string{}
	for pos := range matched {
		suggestions = append(suggestions, r.normalized[r.fstKeys[pos]]...)
	}
	sort.Strings(suggestions)
	return suggestions, nil
}

func (r *POIRegistry) collect(automaton vellum.Automaton, matched map[uint64]struct{}) error {
	fstIt, err := r.namesFST.Search(automaton, nil, nil)
	for err == nil {
		_, pos := fstIt.Current()
		matched[pos] = struct{}{}
		err = fstIt.Next()
	}
	if errors.Is(err, vellum.ErrIteratorDone) {
		return nil
	}
	return err
}
