package macrocss

import "sync"

const (
	mangleLetters  = "abcdefghijklmnopqrstuvwxyz"
	mangleAlphabet = mangleLetters + "0123456789"
)

// reservedIdents are short identifiers the mangler never assigns: class names
// commonly stripped by content blockers plus CSS-wide keywords that happen to
// be valid short idents.
var reservedIdents = map[string]bool{
	"ad":     true,
	"ads":    true,
	"banner": true,
	"popup":  true,
}

// Mangler maps selector strings to minimal unique short identifiers. The
// first request for a selector assigns the next identifier in a deterministic
// sequence (single letters, then letter-led alphanumerics); repeated requests
// return the memoized assignment. A single Mangler may back several
// compilations running in parallel, so lookup-or-assign is mutex-guarded.
type Mangler struct {
	mu    sync.Mutex
	bySel map[string]string
	used  map[string]bool
	next  int
}

// NewMangler returns an empty mangler.
func NewMangler() *Mangler {
	return &Mangler{
		bySel: make(map[string]string),
		used:  make(map[string]bool),
	}
}

// MangledSelector returns the short identifier for selector, assigning the
// next free one on first request. Total over any selector string.
func (m *Mangler) MangledSelector(selector string) string {
	m.mu.Lock()
	defer m.mu.Unlock()

	if id, ok := m.bySel[selector]; ok {
		return id
	}

	var id string
	for {
		id = identAt(m.next)
		m.next++
		if !reservedIdents[id] && !m.used[id] {
			break
		}
	}

	m.bySel[selector] = id
	m.used[id] = true
	return id
}

// Table returns a copy of the current selector -> identifier assignments.
func (m *Mangler) Table() map[string]string {
	m.mu.Lock()
	defer m.mu.Unlock()

	table := make(map[string]string, len(m.bySel))
	for sel, id := range m.bySel {
		table[sel] = id
	}
	return table
}

// Restore seeds the mangler from a snapshot's assignment table. Identifiers
// present in the table are marked used so selectors compiled after hydration
// never collide with previously mangled ones.
func (m *Mangler) Restore(table map[string]string) {
	m.mu.Lock()
	defer m.mu.Unlock()

	for sel, id := range table {
		m.bySel[sel] = id
		m.used[id] = true
	}
}

// identAt maps a sequence index to its identifier: indexes 0..25 are single
// letters; longer identifiers start with a letter and continue over
// letters+digits, so every value is a valid CSS class name.
func identAt(n int) string {
	if n < len(mangleLetters) {
		return string(mangleLetters[n])
	}

	n -= len(mangleLetters)
	size := len(mangleLetters) * len(mangleAlphabet)
	length := 2
	for n >= size {
		n -= size
		size *= len(mangleAlphabet)
		length++
	}

	buf := make([]byte, length)
	for i := length - 1; i >= 1; i-- {
		buf[i] = mangleAlphabet[n%len(mangleAlphabet)]
		n /= len(mangleAlphabet)
	}
	buf[0] = mangleLetters[n%len(mangleLetters)]
	return string(buf)
}
