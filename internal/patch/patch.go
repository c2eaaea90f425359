// Package patch builds standalone unified-diff patches — whole-hunk,
// arbitrary line-range ("region"), and reverse-sense — fed to `git
// apply` by the operations layer to stage, unstage, and discard at any
// granularity down to a single selected line.
package patch

import (
	"strconv"
	"strings"

	"github.com/jansmrcka/gitwright/internal/git"
)

// headerPaths resolves the a/ and b/ paths for a file-diff's patch
// header: the absent side of an add/delete substitutes the present
// side's path rather than "/dev/null", because the file header triplet
// must name concrete paths for `git apply` to locate the blob.
func headerPaths(f git.FileDiff) (oldPath, newPath string) {
	oldPath, newPath = f.OldFile, f.File
	if oldPath == "" {
		oldPath = f.File
	}
	if newPath == "" {
		newPath = f.OldFile
	}
	return oldPath, newPath
}

func fileHeader(f git.FileDiff) string {
	oldPath, newPath := headerPaths(f)
	var b strings.Builder
	b.WriteString("diff --git a/" + oldPath + " b/" + newPath + "\n")
	b.WriteString("--- a/" + oldPath + "\n")
	b.WriteString("+++ b/" + newPath + "\n")
	return b.String()
}

// WholeHunk builds a standalone patch for an entire hunk H of file-diff F.
func WholeHunk(f git.FileDiff, h git.Hunk) string {
	var b strings.Builder
	b.WriteString(fileHeader(f))
	b.WriteString(h.Header)
	b.WriteString("\n")
	for _, line := range h.Lines {
		b.WriteString(line)
		b.WriteString("\n")
	}
	return b.String()
}

// Region builds a standalone patch covering only the 0-indexed inclusive
// offset range [start, end] into h.Lines, re-contextualizing unselected
// lines per spec: unselected additions are dropped, unselected deletions
// become context (kept on both sides to preserve alignment).
func Region(f git.FileDiff, h git.Hunk, start, end int) string {
	var lines []string
	oldCount, newCount := 0, 0

	for i, line := range h.Lines {
		if line == "" {
			continue
		}
		inRange := i >= start && i <= end
		switch line[0] {
		case ' ':
			lines = append(lines, line)
			oldCount++
			newCount++
		case '+':
			if inRange {
				lines = append(lines, line)
				newCount++
			}
			// unselected addition: dropped
		case '-':
			if inRange {
				lines = append(lines, line)
				oldCount++
			} else {
				lines = append(lines, " "+line[1:])
				oldCount++
				newCount++
			}
		default:
			lines = append(lines, line)
		}
	}

	var b strings.Builder
	b.WriteString(fileHeader(f))
	b.WriteString("@@ -" + strconv.Itoa(h.OldStart) + "," + strconv.Itoa(oldCount) +
		" +" + strconv.Itoa(h.NewStart) + "," + strconv.Itoa(newCount) + " @@\n")
	for _, l := range lines {
		b.WriteString(l)
		b.WriteString("\n")
	}
	return b.String()
}

// Reverse swaps the sense of a patch's content lines: leading '+'
// becomes '-' and vice versa. File marker lines ("--- " / "+++ ") are
// left untouched. Applying Reverse twice yields the original patch.
func Reverse(patchText string) string {
	lines := strings.Split(patchText, "\n")
	for i, l := range lines {
		if strings.HasPrefix(l, "+++ ") || strings.HasPrefix(l, "--- ") {
			continue
		}
		switch {
		case strings.HasPrefix(l, "+"):
			lines[i] = "-" + l[1:]
		case strings.HasPrefix(l, "-"):
			lines[i] = "+" + l[1:]
		}
	}
	return strings.Join(lines, "\n")
}
