package elf

import "strings"

// SplitHints splits raw RUNPATH/RPATH values on ':' and newlines, trimming
// whitespace and dropping empty and repeated entries.
func SplitHints(values ...string) []string {
	var out []string
	seen := make(map[string]struct{})
	for _, v := range values {
		for _, part := range strings.FieldsFunc(v, func(r rune) bool { return r == ':' || r == '\n' }) {
			part = strings.TrimSpace(part)
			if part == "" {
				continue
			}
			if _, ok := seen[part]; ok {
				continue
			}
			seen[part] = struct{}{}
			out = append(out, part)
		}
	}
	return out
}

// SearchHints returns the split DT_RUNPATH entries, or the DT_RPATH entries
// when no runpath is present. The loader ignores DT_RPATH once DT_RUNPATH is
// set.
func SearchHints(runpath, rpath []string) []string {
	if hints := SplitHints(runpath...); len(hints) > 0 {
		return hints
	}
	return SplitHints(rpath...)
}

func dedupe(names []string) []string {
	if len(names) == 0 {
		return nil
	}
	out := make([]string, 0, len(names))
	seen := make(map[string]struct{}, len(names))
	for _, n := range names {
		if n == "" {
			continue
		}
		if _, ok := seen[n]; ok {
			continue
		}
		seen[n] = struct{}{}
		out = append(out, n)
	}
	return out
}
