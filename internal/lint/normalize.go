// SPDX-License-Identifier: MPL-2.0

package lint

import "strings"

// normalizeShellcheck strips the materialized file path from shellcheck
// output so findings read the same regardless of output directory.
func normalizeShellcheck(out, path string) string {
	return strings.ReplaceAll(strings.TrimSpace(out), path+" ", "")
}

// normalizeRuff keeps only per-finding lines: the "All checks passed!"
// banner is dropped and processing stops at the trailing "Found N ..."
// summary. File positions are rewritten as "line <row>:<col>".
func normalizeRuff(out, path string) string {
	var kept []string
	for _, line := range strings.Split(strings.TrimSpace(out), "\n") {
		if line == "All checks passed!" {
			continue
		}
		if strings.HasPrefix(line, "Found ") {
			break
		}
		kept = append(kept, strings.ReplaceAll(line, path+":", "line "))
	}
	return strings.TrimSpace(strings.Join(kept, "\n"))
}

// normalizeRubocop drops the "N file inspected" summary line and rewrites
// file positions as "line <row>:<col>".
func normalizeRubocop(out, path string) string {
	var kept []string
	for _, line := range strings.Split(out, "\n") {
		if strings.Contains(line, "1 file inspected") {
			continue
		}
		kept = append(kept, line)
	}
	joined := strings.TrimSpace(strings.Join(kept, "\n"))
	return strings.ReplaceAll(joined, path+":", "line ")
}
