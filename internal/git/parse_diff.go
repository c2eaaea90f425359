package git

import (
	"strconv"
	"strings"
)

// Hunk is a contiguous region of a unified diff bounded by an `@@`
// header.
type Hunk struct {
	Header   string
	OldStart int
	OldCount int
	NewStart int
	NewCount int
	Context  string
	Lines    []string // each begins with ' ', '+', '-', or is the literal "\ No newline at end of file"
}

// FileDiff is one file's worth of a unified diff.
type FileDiff struct {
	Header  string
	File    string // new path; empty for deletions
	OldFile string // old path; empty for additions
	Binary  bool
	Hunks   []Hunk
}

// Path returns the diff's effective path: File, falling back to
// OldFile when the file was deleted.
func (f FileDiff) Path() string {
	if f.File != "" {
		return f.File
	}
	return f.OldFile
}

// ParseDiff parses the output of `git diff` (or `git show`) into a
// sequence of file-diffs, per spec.md §4.3. It is a streaming state
// machine over lines; unrecognized lines are skipped, never raised.
func ParseDiff(output string) []FileDiff {
	var files []FileDiff
	var cur *FileDiff
	var hunk *Hunk

	flushHunk := func() {
		if cur != nil && hunk != nil {
			cur.Hunks = append(cur.Hunks, *hunk)
			hunk = nil
		}
	}
	flushFile := func() {
		flushHunk()
		if cur != nil {
			files = append(files, *cur)
			cur = nil
		}
	}

	for _, line := range strings.Split(output, "\n") {
		switch {
		case strings.HasPrefix(line, "diff --git"):
			flushFile()
			cur = &FileDiff{Header: line}
		case cur == nil:
			continue
		case strings.HasPrefix(line, "--- "):
			cur.OldFile = stripDiffPathPrefix(line[4:], "a/")
		case strings.HasPrefix(line, "+++ "):
			cur.File = stripDiffPathPrefix(line[4:], "b/")
		case strings.HasPrefix(line, "index "):
			// consumed, no effect
		case strings.HasPrefix(line, "new file mode"),
			strings.HasPrefix(line, "deleted file mode"),
			strings.HasPrefix(line, "old mode"),
			strings.HasPrefix(line, "new mode"),
			strings.HasPrefix(line, "similarity index"),
			strings.HasPrefix(line, "rename from"),
			strings.HasPrefix(line, "rename to"),
			strings.HasPrefix(line, "copy from"),
			strings.HasPrefix(line, "copy to"):
			// consumed, no effect
		case strings.HasPrefix(line, "Binary files "):
			cur.Binary = true
		case strings.HasPrefix(line, "@@"):
			flushHunk()
			h := parseHunkHeader(line)
			hunk = &h
		case hunk != nil && isHunkBodyLine(line):
			hunk.Lines = append(hunk.Lines, line)
		}
	}
	flushFile()
	return files
}

func isHunkBodyLine(line string) bool {
	if line == "" {
		return false
	}
	switch line[0] {
	case ' ', '+', '-':
		return true
	case '\\':
		return strings.HasPrefix(line, `\ No newline at end of file`)
	}
	return false
}

// stripDiffPathPrefix strips the a/ or b/ prefix git uses on diff
// headers; "/dev/null" (the missing side of an add/delete) becomes
// the empty string.
func stripDiffPathPrefix(path, prefix string) string {
	if path == "/dev/null" {
		return ""
	}
	return strings.TrimPrefix(path, prefix)
}

// parseHunkHeader parses "@@ -a[,b] +c[,d] @@[ context]", defaulting
// missing counts to 1.
func parseHunkHeader(line string) Hunk {
	h := Hunk{Header: line, OldCount: 1, NewCount: 1}
	parts := strings.SplitN(line, "@@", 3)
	if len(parts) < 2 {
		return h
	}
	ranges := strings.TrimSpace(parts[1])
	for _, r := range strings.Fields(ranges) {
		switch {
		case strings.HasPrefix(r, "-"):
			start, count := parseRange(r[1:])
			h.OldStart, h.OldCount = start, count
		case strings.HasPrefix(r, "+"):
			start, count := parseRange(r[1:])
			h.NewStart, h.NewCount = start, count
		}
	}
	if len(parts) == 3 {
		h.Context = strings.TrimSpace(parts[2])
	}
	return h
}

func parseRange(s string) (start, count int) {
	count = 1
	nums := strings.SplitN(s, ",", 2)
	start, _ = strconv.Atoi(nums[0])
	if len(nums) == 2 {
		count, _ = strconv.Atoi(nums[1])
	}
	return start, count
}
