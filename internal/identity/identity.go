// Package identity generates the department-encoded business user IDs
// used across the directory. The code table is injected configuration:
// generated IDs are persisted, so the mapping must never drift.
package identity

import (
	"strings"
	"unicode"

	"github.com/Bataa715/Audit/config"
)

// Generator derives business user IDs from (department, name).
type Generator struct {
	codes       map[string]string
	defaultCode string
	orgPrefix   string
	management  string
	analytics   string
}

// NewGenerator builds a Generator from the identity configuration.
func NewGenerator(cfg *config.IdentityConfig) *Generator {
	codes := make(map[string]string, len(cfg.DepartmentCodes))
	for k, v := range cfg.DepartmentCodes {
		codes[k] = v
	}
	return &Generator{
		codes:       codes,
		defaultCode: cfg.DefaultCode,
		orgPrefix:   cfg.OrgPrefix,
		management:  cfg.ManagementDepartment,
		analytics:   cfg.AnalyticsDepartment,
	}
}

// Code returns the short code of a department, falling back to the
// default code for unknown departments.
func (g *Generator) Code(department string) string {
	if code, ok := g.codes[department]; ok {
		return code
	}
	return g.defaultCode
}

// NormalizeName title-cases each hyphen-separated segment and strips
// all whitespace: "бат-эрдэнэ " → "Бат-Эрдэнэ".
func NormalizeName(name string) string {
	parts := strings.Split(name, "-")
	for i, part := range parts {
		runes := []rune(strings.ToLower(part))
		if len(runes) > 0 {
			runes[0] = unicode.ToUpper(runes[0])
		}
		parts[i] = string(runes)
	}
	joined := strings.Join(parts, "-")
	return strings.Join(strings.Fields(joined), "")
}

// UserID derives the business identifier. Pure and deterministic:
// the same (department, name) pair always yields the same ID.
//
// Format by department:
//   - management:  .{name}-{code}
//   - analytics:   {code}-{name}
//   - everything else: {orgPrefix}-{code}-{name}
func (g *Generator) UserID(department, name string) string {
	code := g.Code(department)
	namePart := NormalizeName(name)

	switch department {
	case g.management:
		return "." + namePart + "-" + code
	case g.analytics:
		return code + "-" + namePart
	default:
		return g.orgPrefix + "-" + code + "-" + namePart
	}
}

// Prefix returns everything before the name part of a generated ID,
// for client-side preview while the name is still being typed.
// Invariant: UserID(d, n) starts with Prefix(d) for every d.
func (g *Generator) Prefix(department string) string {
	switch department {
	case g.management:
		return "."
	case g.analytics:
		return g.Code(department) + "-"
	default:
		return g.orgPrefix + "-" + g.Code(department) + "-"
	}
}
