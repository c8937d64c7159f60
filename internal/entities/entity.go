package entities

import "strings"

// DefaultPassword is returned for tenants without a password.
// It is deliberately unmatchable so that an empty password field can never
// be used to gain entry.
const DefaultPassword = "asdfqlwevnwaevnwlvjwekfnsedhsadhfwe"

// Unit is a read-only view over a units record.
type Unit struct {
	record Record
}

// Address is the primary, spoken form of the unit number.
func (u Unit) Address() string {
	syns := synonyms(u.record)
	if len(syns) == 0 {
		return ""
	}

	return syns[0]
}

func (u Unit) Floor() int {
	f, _ := u.record["floor"].(int)
	return f
}

// Synonyms returns the phrases that refer to this unit, lowercased for
// keyword registration.
func (u Unit) Synonyms() []string {
	return lowercased(synonyms(u.record))
}

func (u Unit) PagingException() *PagingException {
	return pagingException(u.record)
}

// Tenant is a view over a tenants record. It reads through the store so
// that password writes and subsequent re-imports stay visible.
type Tenant struct {
	id    string
	store *Store
}

// Name is the spoken name, i.e. the first synonym.
func (t Tenant) Name() string {
	syns := synonyms(t.store.tenantRecord(t.id))
	if len(syns) == 0 {
		return ""
	}

	return syns[0]
}

func (t Tenant) PhoneNo() string {
	no, _ := t.store.tenantRecord(t.id)["phone_no"].(string)
	return no
}

// Password never returns an empty string: a missing or empty password
// field yields DefaultPassword.
func (t Tenant) Password() string {
	pw, _ := t.store.tenantRecord(t.id)["password"].(string)
	if pw == "" {
		return DefaultPassword
	}

	return pw
}

// SetPassword writes the new password through to the YAML file.
func (t Tenant) SetPassword(password string) error {
	return t.store.setTenantField(t.id, "password", password)
}

func (t Tenant) Synonyms() []string {
	return lowercased(synonyms(t.store.tenantRecord(t.id)))
}

func (t Tenant) PagingException() *PagingException {
	return pagingException(t.store.tenantRecord(t.id))
}

// PagingException is a per-entity override replacing the default paging
// response templates.
type PagingException struct {
	record Record
}

// Messages returns the override templates. A scalar message is returned
// as a single-element list.
func (p *PagingException) Messages() []string {
	switch msg := p.record["message"].(type) {
	case string:
		return []string{msg}
	case []any:
		msgs := make([]string, 0, len(msg))
		for _, m := range msg {
			if s, ok := m.(string); ok {
				msgs = append(msgs, s)
			}
		}
		return msgs
	}

	return nil
}

// Run triggers the override's paging action.
// There is no paging hardware attached yet, so this does nothing.
func (p *PagingException) Run() error {
	return nil
}

func synonyms(rec Record) []string {
	raw, _ := rec["synonyms"].([]any)
	syns := make([]string, 0, len(raw))

	for _, s := range raw {
		if str, ok := s.(string); ok {
			syns = append(syns, str)
		}
	}

	return syns
}

func lowercased(strs []string) []string {
	lower := make([]string, len(strs))

	for i, s := range strs {
		lower[i] = strings.ToLower(s)
	}

	return lower
}

func pagingException(rec Record) *PagingException {
	switch data := rec["paging_exception"].(type) {
	case Record:
		return &PagingException{record: data}
	case map[string]any:
		return &PagingException{record: Record(data)}
	}

	return nil
}
