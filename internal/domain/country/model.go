package country

import (
	"sort"
	"strings"
)

// Ref is the static identity of a nation: canonical name, flag glyph and
// IOC 3-letter code.
type Ref struct {
	Name string
	Flag string
	Code string
}

// Table is the one source of truth for country lookups. It is built once at
// process start and passed explicitly to every extractor that needs it.
type Table struct {
	refs    []Ref
	byName  map[string]Ref
	byCode  map[string]Ref
	ordered []string
}

func NewTable(refs []Ref) *Table {
	t := &Table{
		refs:   refs,
		byName: make(map[string]Ref, len(refs)),
		byCode: make(map[string]Ref, len(refs)),
	}
	for _, ref := range refs {
		t.byName[strings.ToLower(ref.Name)] = ref
		if _, exists := t.byCode[ref.Code]; !exists {
			t.byCode[ref.Code] = ref
		}
		t.ordered = append(t.ordered, ref.Name)
	}
	// Longest first so substring scans prefer "Czech Republic" over any
	// shorter name embedded in the same text.
	sort.SliceStable(t.ordered, func(i, j int) bool {
		return len(t.ordered[i]) > len(t.ordered[j])
	})
	return t
}

func NewDefaultTable() *Table {
	return NewTable(defaultRefs)
}

// ByName resolves a canonical country name, case-insensitively.
func (t *Table) ByName(name string) (Ref, bool) {
	ref, ok := t.byName[strings.ToLower(strings.TrimSpace(name))]
	return ref, ok
}

// ByCode resolves an IOC code such as "NOR".
func (t *Table) ByCode(code string) (Ref, bool) {
	ref, ok := t.byCode[strings.ToUpper(strings.TrimSpace(code))]
	return ref, ok
}

// CodeFor returns the mapped code for a name, or the uppercased first three
// letters when the name is unknown.
func (t *Table) CodeFor(name string) string {
	if ref, ok := t.ByName(name); ok {
		return ref.Code
	}
	cleaned := strings.TrimSpace(name)
	if len(cleaned) >= 3 {
		return strings.ToUpper(cleaned[:3])
	}
	return strings.ToUpper(cleaned)
}

// FlagFor returns the flag glyph for a name, empty when unknown.
func (t *Table) FlagFor(name string) string {
	if ref, ok := t.ByName(name); ok {
		return ref.Flag
	}
	return ""
}

// MatchSegment reports whether a medalist-cell segment is exactly a country
// name or code rather than an athlete-name fragment.
func (t *Table) MatchSegment(segment string) (Ref, bool) {
	s := strings.TrimSpace(segment)
	if s == "" {
		return Ref{}, false
	}
	if ref, ok := t.ByName(s); ok {
		return ref, true
	}
	if len(s) == 3 && s == strings.ToUpper(s) {
		if ref, ok := t.ByCode(s); ok {
			return ref, true
		}
	}
	return Ref{}, false
}

// FindNameIn scans free text for an embedded full country name. Names are
// tried longest first.
func (t *Table) FindNameIn(text string) (Ref, bool) {
	lowered := strings.ToLower(text)
	for _, name := range t.ordered {
		if strings.Contains(lowered, strings.ToLower(name)) {
			return t.byName[strings.ToLower(name)], true
		}
	}
	return Ref{}, false
}

// All returns the table entries in registration order.
func (t *Table) All() []Ref {
	out := make([]Ref, len(t.refs))
	copy(out, t.refs)
	return out
}
