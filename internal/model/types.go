package model

import (
	"database/sql/driver"
	"encoding/json"
	"fmt"
	"strings"
)

// ── password credential column ──

// CredentialState is the lifecycle state of a user's password.
type CredentialState int

const (
	// CredentialUnset — no value stored at all.
	CredentialUnset CredentialState = iota
	// CredentialPending — user registered without a password and has not
	// completed first-login setup yet.
	CredentialPending
	// CredentialSet — a bcrypt hash is stored.
	CredentialSet
)

// pendingSentinel is the legacy storage marker for a pending credential.
// It exists only here; business code works with CredentialState.
const pendingSentinel = "PENDING_PASSWORD"

// Credential wraps the password column so that "no password yet" is an
// explicit state instead of a magic string spread across services.
// Implements the GORM Scanner/Valuer pair.
type Credential struct {
	state CredentialState
	hash  string
}

// PendingCredential marks a user as awaiting first-login password setup.
func PendingCredential() Credential {
	return Credential{state: CredentialPending}
}

// HashedCredential wraps a bcrypt hash.
func HashedCredential(hash string) Credential {
	return Credential{state: CredentialSet, hash: hash}
}

// State returns the credential lifecycle state.
func (c Credential) State() CredentialState { return c.state }

// Pending reports whether the user still has to set a password.
func (c Credential) Pending() bool { return c.state == CredentialPending }

// Usable reports whether password-based authentication is possible.
func (c Credential) Usable() bool { return c.state == CredentialSet }

// Hash returns the stored bcrypt hash; ok is false unless the state is Set.
func (c Credential) Hash() (string, bool) {
	if c.state != CredentialSet {
		return "", false
	}
	return c.hash, true
}

// Scan decodes the stored text column into a credential state.
func (c *Credential) Scan(src interface{}) error {
	var s string
	switch v := src.(type) {
	case nil:
		*c = Credential{}
		return nil
	case []byte:
		s = string(v)
	case string:
		s = v
	default:
		return fmt.Errorf("Credential.Scan: unsupported type %T", src)
	}
	switch {
	case s == "":
		*c = Credential{}
	case strings.HasPrefix(s, "PENDING_"):
		*c = Credential{state: CredentialPending}
	default:
		*c = Credential{state: CredentialSet, hash: s}
	}
	return nil
}

// Value serializes the credential back to its text form.
func (c Credential) Value() (driver.Value, error) {
	switch c.state {
	case CredentialPending:
		return pendingSentinel, nil
	case CredentialSet:
		return c.hash, nil
	default:
		return "", nil
	}
}

// ── allowed tools column ──

// ToolList is the set of capability tags granting access to optional
// tool modules ("todo", "fitness", ...). Stored as a JSON array in a
// text column; only this adapter touches the serialized form.
type ToolList []string

// Has reports whether the tag is present.
func (t ToolList) Has(tool string) bool {
	for _, v := range t {
		if v == tool {
			return true
		}
	}
	return false
}

// Scan decodes the stored JSON array. A malformed column yields an
// empty list rather than an error: a broken tool list means no access.
func (t *ToolList) Scan(src interface{}) error {
	var b []byte
	switch v := src.(type) {
	case nil:
		*t = ToolList{}
		return nil
	case []byte:
		b = v
	case string:
		b = []byte(v)
	default:
		return fmt.Errorf("ToolList.Scan: unsupported type %T", src)
	}
	var tools []string
	if err := json.Unmarshal(b, &tools); err != nil {
		*t = ToolList{}
		return nil
	}
	*t = tools
	return nil
}

// Value serializes the list as a JSON array; nil becomes [].
func (t ToolList) Value() (driver.Value, error) {
	if t == nil {
		t = ToolList{}
	}
	b, err := json.Marshal([]string(t))
	if err != nil {
		return nil, err
	}
	return string(b), nil
}
