package util

import (
	"fmt"
	"strings"
)

// Sentinel values used when an upstream payload omits a field. Consumers
// render these directly instead of branching on empty strings.
const (
	NoTitle    = "Job Title Not Available"
	NoCompany  = "Company Not Available"
	NoLocation = "Location Not Available"
	NoSalary   = "Salary Not Disclosed"
	NoPostedAt = "Recently posted"
)

func CleanText(s string) string {
	s = strings.ReplaceAll(s, " ", " ")
	s = strings.Join(strings.Fields(s), " ")
	return strings.TrimSpace(s)
}

// Default returns s cleaned, or fallback when s is blank.
func Default(s, fallback string) string {
	if v := CleanText(s); v != "" {
		return v
	}
	return fallback
}

func NormalizeLocation(loc string) string {
	loc = CleanText(loc)
	if loc == "" {
		return ""
	}

	loc = strings.TrimPrefix(loc, "Location:")
	loc = strings.TrimPrefix(loc, "LOCATIONS:")
	loc = strings.TrimSpace(loc)

	// collapse duplicated comma-separated parts ("Remote, Remote, US")
	parts := strings.Split(loc, ",")
	seen := map[string]bool{}
	var out []string
	for _, p := range parts {
		p = CleanText(p)
		if p == "" {
			continue
		}
		k := strings.ToLower(p)
		if seen[k] {
			continue
		}
		seen[k] = true
		out = append(out, p)
	}
	return strings.Join(out, ", ")
}

// InferRemote reports whether any of the given text fragments mark the
// posting as remote.
func InferRemote(fragments ...string) bool {
	blob := strings.ToLower(strings.Join(fragments, " "))
	return strings.Contains(blob, "remote") || strings.Contains(blob, "work from home") ||
		strings.Contains(blob, "work-from-home") || strings.Contains(blob, "wfh")
}

// ShortHash is an 8-hex-digit FNV-1a digest, used to derive stable
// posting IDs from payloads that carry no usable identifier.
func ShortHash(s string) string {
	var h uint32 = 2166136261
	for i := 0; i < len(s); i++ {
		h ^= uint32(s[i])
		h *= 16777619
	}
	return fmt.Sprintf("%08x", h)
}
