package patch

import (
	"strings"
	"testing"

	"github.com/jansmrcka/gitwright/internal/git"
)

func sampleFileDiff() git.FileDiff {
	return git.FileDiff{
		Header:  "diff --git a/file.go b/file.go",
		OldFile: "file.go",
		File:    "file.go",
	}
}

func TestWholeHunk(t *testing.T) {
	t.Parallel()
	f := sampleFileDiff()
	h := git.Hunk{
		Header:   "@@ -10,2 +10,4 @@",
		OldStart: 10, OldCount: 2, NewStart: 10, NewCount: 4,
		Lines: []string{" ctx", "+add1", "+add2", " ctx"},
	}
	got := WholeHunk(f, h)
	if !strings.Contains(got, "diff --git a/file.go b/file.go\n") {
		t.Errorf("missing diff header: %q", got)
	}
	if !strings.Contains(got, h.Header+"\n") {
		t.Errorf("missing hunk header: %q", got)
	}
	if !strings.HasSuffix(got, " ctx\n") {
		t.Errorf("expected trailing newline after last line, got %q", got)
	}
}

func TestRegion_StageOneAddition(t *testing.T) {
	t.Parallel()
	f := sampleFileDiff()
	h := git.Hunk{
		Header:   "@@ -10,2 +10,4 @@",
		OldStart: 10, NewStart: 10,
		Lines: []string{" ctx", "+add1", "+add2", " ctx"},
	}
	got := Region(f, h, 1, 1)
	if !strings.Contains(got, "@@ -10,2 +10,3 @@\n") {
		t.Errorf("unexpected hunk header in:\n%s", got)
	}
	want := "@@ -10,2 +10,3 @@\n ctx\n+add1\n ctx\n"
	if !strings.HasSuffix(got, want) {
		t.Errorf("Region() = %q, want suffix %q", got, want)
	}
	if strings.Contains(got, "add2") {
		t.Errorf("unselected addition must be dropped, got:\n%s", got)
	}
}

func TestRegion_FullRangeMatchesWholeHunk(t *testing.T) {
	t.Parallel()
	f := sampleFileDiff()
	h := git.Hunk{
		Header:   "@@ -10,2 +10,4 @@",
		OldStart: 10, OldCount: 2, NewStart: 10, NewCount: 4,
		Lines: []string{" ctx", "+add1", "+add2", " ctx"},
	}
	whole := WholeHunk(f, h)
	region := Region(f, h, 0, len(h.Lines)-1)
	if whole != region {
		t.Errorf("region over full range should equal whole-hunk patch:\nwhole=%q\nregion=%q", whole, region)
	}
}

func TestRegion_Counts(t *testing.T) {
	t.Parallel()
	f := sampleFileDiff()
	h := git.Hunk{
		Header:   "@@ -1,4 +1,2 @@",
		OldStart: 1, NewStart: 1,
		Lines: []string{" ctx", "-del1", "-del2", " ctx"},
	}
	// Select only offset 1 ("-del1"); offset 2 ("-del2") is unselected
	// and becomes context, counted on both sides.
	got := Region(f, h, 1, 1)
	if !strings.Contains(got, "@@ -1,4 +1,3 @@\n") {
		t.Errorf("unexpected header in:\n%s", got)
	}
}

func TestReverse(t *testing.T) {
	t.Parallel()
	input := "--- a/f\n+++ b/f\n@@ -1,2 +1,3 @@\n ctx\n+new\n ctx\n"
	got := Reverse(input)
	want := "--- a/f\n+++ b/f\n@@ -1,2 +1,3 @@\n ctx\n-new\n ctx\n"
	if got != want {
		t.Errorf("Reverse() = %q, want %q", got, want)
	}
}

func TestReverse_Involution(t *testing.T) {
	t.Parallel()
	input := "--- a/f\n+++ b/f\n@@ -1,2 +1,3 @@\n ctx\n+new\n-old\n ctx\n"
	got := Reverse(Reverse(input))
	if got != input {
		t.Errorf("Reverse(Reverse(x)) = %q, want %q", got, input)
	}
}
