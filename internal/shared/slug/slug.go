package slug

import (
	"regexp"
	"strconv"
	"strings"
)

var nonAlnum = regexp.MustCompile(`[^a-z0-9]+`)

// FromName turns a display name into a lowercase, dash separated anchor.
// Names with nothing usable in them become "item".
func FromName(s string) string {
	s = strings.ToLower(strings.TrimSpace(s))
	s = nonAlnum.ReplaceAllString(s, "-")
	s = strings.Trim(s, "-")
	if s == "" {
		return "item"
	}
	return s
}

// Unique is FromName with -2, -3, ... appended until the result has not
// been handed out before. seen records every slug returned so far.
func Unique(s string, seen map[string]int) string {
	base := FromName(s)
	cand := base
	for n := 1; seen[cand] > 0; {
		n++
		cand = base + "-" + strconv.Itoa(n)
	}
	seen[cand]++
	return cand
}
