package roster

import (
	"sort"
	"strings"
	"sync/atomic"
)

// Entry is an eligible student as loaded from the spreadsheet. Entries live
// only in memory; the durable Student record is created at first login.
type Entry struct {
	Email  string
	Name   string
	Secret string
}

// Row is one raw spreadsheet row before acceptance filtering.
type Row struct {
	Name  string
	Email string
	Phone string
}

type snapshot struct {
	byEmail map[string]Entry
	ordered []Entry
}

// Store holds the current roster as an immutable snapshot behind an atomic
// pointer. Load replaces the whole snapshot in one swap, so readers racing
// a reload see either the old roster or the new one, never a mix.
type Store struct {
	current atomic.Pointer[snapshot]
}

func NewStore() *Store {
	s := &Store{}
	s.current.Store(&snapshot{byEmail: map[string]Entry{}})
	return s
}

// Load rebuilds the roster from raw rows and swaps it in. A row is accepted
// when its email contains "@" and its raw phone string is at least 10
// characters long; the login secret is the last 10 characters of the phone
// string as-is. Rejected rows are dropped silently. Returns the number of
// accepted entries.
func (s *Store) Load(rows []Row) int {
	next := &snapshot{byEmail: make(map[string]Entry, len(rows))}

	for _, r := range rows {
		email := strings.ToLower(strings.TrimSpace(r.Email))
		phone := strings.TrimSpace(r.Phone)
		if !strings.Contains(email, "@") || len(phone) < 10 {
			continue
		}

		name := strings.TrimSpace(r.Name)
		if name == "" {
			name = strings.SplitN(email, "@", 2)[0]
		}

		next.byEmail[email] = Entry{
			Email:  email,
			Name:   name,
			Secret: phone[len(phone)-10:],
		}
	}

	next.ordered = make([]Entry, 0, len(next.byEmail))
	for _, e := range next.byEmail {
		next.ordered = append(next.ordered, e)
	}
	sort.Slice(next.ordered, func(i, j int) bool {
		return next.ordered[i].Email < next.ordered[j].Email
	})

	s.current.Store(next)
	return len(next.ordered)
}

func (s *Store) Lookup(email string) (Entry, bool) {
	key := strings.ToLower(strings.TrimSpace(email))
	e, ok := s.current.Load().byEmail[key]
	return e, ok
}

// Entries returns the loaded roster ordered by email.
func (s *Store) Entries() []Entry {
	return s.current.Load().ordered
}

func (s *Store) Len() int {
	return len(s.current.Load().ordered)
}
