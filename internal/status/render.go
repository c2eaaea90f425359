package status

import (
	"fmt"
	"strings"

	"github.com/jansmrcka/gitwright/internal/git"
	"github.com/jansmrcka/gitwright/internal/section"
)

// Span tags a contiguous line range with a face key the UI layer maps
// to a lipgloss style, mirroring the host editor's overlay model (one
// overlay per line that carries a face).
type Span struct {
	StartLine int
	EndLine   int
	Face      string
}

// Rendered is the output of a status render: text, the section tree
// describing it, and the style spans to overlay on it.
type Rendered struct {
	Text  string
	Tree  *section.Tree
	Spans []Span
}

// lineCursor assigns line numbers while building the rendered text. In
// virtual mode it advances the counter (so descendant spans stay
// self-consistent) without writing to the buffer or emitting spans,
// used to compute "what would be rendered" spans for the children of a
// collapsed section header, per spec: those children are never present
// in the actual text while their parent is collapsed.
type lineCursor struct {
	b       *strings.Builder
	n       int
	spans   *[]Span
	virtual bool
}

func (c *lineCursor) emit(s, face string) int {
	line := c.n
	if !c.virtual {
		c.b.WriteString(s)
		c.b.WriteString("\n")
		if face != "" {
			*c.spans = append(*c.spans, Span{StartLine: line, EndLine: line, Face: face})
		}
	}
	c.n++
	return line
}

func (c *lineCursor) fork(virtual bool) *lineCursor {
	return &lineCursor{b: c.b, n: c.n, spans: c.spans, virtual: c.virtual || virtual}
}

// Render builds the status dashboard's text, section tree, and style
// spans from a fetched snapshot and the buffer's persisted view state.
func Render(snap *Snapshot, st *State) Rendered {
	var b strings.Builder
	var spans []Span
	tree := section.New()
	cur := &lineCursor{b: &b, spans: &spans}

	renderHeader(cur, tree, snap)
	cur.emit("", "")

	renderFileGroup(cur, tree, st, section.KeyUntracked, "Untracked files", untrackedRows(snap), nil)
	renderFileGroup(cur, tree, st, section.KeyUnstaged, "Unstaged changes", changedRows(snap.Status, false), snap.UnstagedDiff)
	renderFileGroup(cur, tree, st, section.KeyStaged, "Staged changes", changedRows(snap.Status, true), snap.StagedDiff)

	if snap.HaveUpstream {
		renderCommitGroup(cur, tree, st, section.KeyUnpushed, "Unpushed commits", snap.Unpushed)
		renderCommitGroup(cur, tree, st, section.KeyUnpulled, "Unpulled commits", snap.Unpulled)
	}
	renderCommitGroup(cur, tree, st, section.KeyLog, "Recent commits", snap.Log)
	renderStashGroup(cur, tree, st, snap.Stashes)

	st.GitData = snap
	return Rendered{Text: b.String(), Tree: tree, Spans: spans}
}

func renderHeader(cur *lineCursor, tree *section.Tree, snap *Snapshot) {
	start := cur.n
	head := snap.Status.Branch.Head
	if head == "" {
		head = "(detached)"
	}
	oid := snap.Status.Branch.OID
	if len(oid) > 7 {
		oid = oid[:7]
	}
	cur.emit(fmt.Sprintf("Head: %s (%s)", head, oid), "header")
	if snap.HaveUpstream {
		cur.emit(fmt.Sprintf("Upstream: %s (%s)", snap.Upstream, abSummary(snap.Status.Branch)), "header")
	}
	tree.AddRoot(section.Node{Kind: section.KindHeader, StartLine: start, EndLine: cur.n - 1, FaceTag: "header"})
}

func abSummary(b git.Branch) string {
	switch {
	case b.Ahead > 0 && b.Behind > 0:
		return fmt.Sprintf("ahead %d, behind %d", b.Ahead, b.Behind)
	case b.Ahead > 0:
		return fmt.Sprintf("ahead %d", b.Ahead)
	case b.Behind > 0:
		return fmt.Sprintf("behind %d", b.Behind)
	default:
		return "up to date"
	}
}

// fileRow is one row to be rendered under a file group: either an
// untracked path (changeType empty) or a tracked status entry.
type fileRow struct {
	path       string
	changeType string
	entry      git.StatusEntry
}

func untrackedRows(snap *Snapshot) []fileRow {
	var rows []fileRow
	for _, e := range snap.Status.Entries {
		if e.Kind == git.EntryUntracked {
			rows = append(rows, fileRow{path: e.Path, entry: e})
		}
	}
	return rows
}

// changedRows returns the Staged (staged=true) or Unstaged (staged=false)
// rows, deriving change-type from the live half of the xy code: the
// index character for Staged, the worktree character for Unstaged.
func changedRows(st git.Status, staged bool) []fileRow {
	var rows []fileRow
	for _, e := range st.Entries {
		if e.Kind != git.EntryChanged && e.Kind != git.EntryRenamed {
			continue
		}
		live := e.Staged
		if !staged {
			live = e.Unstaged
		}
		if !live {
			continue
		}
		xy := e.XY
		if !staged {
			xy = "." + xy[1:]
		}
		rows = append(rows, fileRow{path: e.Path, changeType: git.ChangeType(xy), entry: e})
	}
	return rows
}

func findFileDiff(diffs []git.FileDiff, path string) *git.FileDiff {
	for i := range diffs {
		if diffs[i].Path() == path {
			return &diffs[i]
		}
	}
	return nil
}

func renderFileGroup(cur *lineCursor, tree *section.Tree, st *State, key section.StatusKey, title string, rows []fileRow, diffs []git.FileDiff) {
	if len(rows) == 0 {
		return
	}
	collapsed := st.CollapsedSections[string(key)]
	headerLine := cur.emit(fmt.Sprintf("%s (%d)", title, len(rows)), "sectionheader")
	rootIdx := tree.AddRoot(section.Node{
		Kind: section.KindSectionHeader, StartLine: headerLine, EndLine: headerLine,
		Collapsed: collapsed, FaceTag: "sectionheader",
		Data: &section.SectionHeaderData{StatusKey: key},
	})

	child := cur
	if collapsed {
		child = cur.fork(true)
	}
	for _, row := range rows {
		fileStart := child.n
		var text string
		if row.changeType == "" {
			text = "  " + row.path
		} else {
			text = fmt.Sprintf("  %s  %s", row.changeType, row.path)
		}
		child.emit(text, "file")
		expandKey := section.ExpandKey(key, row.path)
		fd := findFileDiff(diffs, row.path)
		fileData := &section.FileData{Path: row.path, StatusKey: key, Entry: row.entry, ExpandKey: expandKey, FileDiff: fd}
		fileIdx := tree.AddChild(rootIdx, section.Node{Kind: section.KindFile, StartLine: fileStart, EndLine: fileStart, Data: fileData})

		if fd != nil && st.ExpandedFiles[expandKey] {
			for _, h := range fd.Hunks {
				hunkStart := child.n
				child.emit("    "+h.Header, "hunk")
				for _, l := range h.Lines {
					child.emit("    "+l, diffLineFace(l))
				}
				tree.AddChild(fileIdx, section.Node{
					Kind: section.KindHunk, StartLine: hunkStart, EndLine: child.n - 1,
					Data: &section.HunkData{Hunk: h, FileDiff: fd},
				})
			}
		}
		tree.Node(fileIdx).EndLine = child.n - 1
	}
	if !collapsed {
		cur.n = child.n
		tree.Node(rootIdx).EndLine = child.n - 1
	}
	cur.emit("", "")
}

func diffLineFace(l string) string {
	if len(l) == 0 {
		return "diff.context"
	}
	switch l[0] {
	case '+':
		return "diff.add"
	case '-':
		return "diff.del"
	default:
		return "diff.context"
	}
}

func renderCommitGroup(cur *lineCursor, tree *section.Tree, st *State, key section.StatusKey, title string, commits []git.Commit) {
	if len(commits) == 0 {
		return
	}
	collapsed := st.CollapsedSections[string(key)]
	headerLine := cur.emit(fmt.Sprintf("%s (%d)", title, len(commits)), "sectionheader")
	rootIdx := tree.AddRoot(section.Node{
		Kind: section.KindSectionHeader, StartLine: headerLine, EndLine: headerLine,
		Collapsed: collapsed, FaceTag: "sectionheader",
		Data: &section.SectionHeaderData{StatusKey: key},
	})

	child := cur
	if collapsed {
		child = cur.fork(true)
	}
	for _, c := range commits {
		commitStart := child.n
		text := fmt.Sprintf("  %s %s  %s", c.Hash, c.Date, c.Subject)
		if c.Refs != "" {
			text += fmt.Sprintf(" (%s)", c.Refs)
		}
		child.emit(text, "commit")
		commitIdx := tree.AddChild(rootIdx, section.Node{
			Kind: section.KindCommit, StartLine: commitStart, EndLine: commitStart,
			Data: &section.CommitData{Hash: c.Hash, Subject: c.Subject, Date: c.Date, Author: c.Author, Refs: c.Refs},
		})

		if st.ExpandedCommits[c.Hash] {
			for _, fd := range st.CommitDiffs[c.Hash] {
				for _, h := range fd.Hunks {
					hunkStart := child.n
					child.emit("    "+h.Header, "hunk")
					for _, l := range h.Lines {
						child.emit("    "+l, diffLineFace(l))
					}
					tree.AddChild(commitIdx, section.Node{
						Kind: section.KindHunk, StartLine: hunkStart, EndLine: child.n - 1,
						Data: &section.HunkData{Hunk: h, FileDiff: &fd},
					})
				}
			}
		}
		tree.Node(commitIdx).EndLine = child.n - 1
	}
	if !collapsed {
		cur.n = child.n
		tree.Node(rootIdx).EndLine = child.n - 1
	}
	cur.emit("", "")
}

func renderStashGroup(cur *lineCursor, tree *section.Tree, st *State, stashes []git.Stash) {
	if len(stashes) == 0 {
		return
	}
	collapsed := st.CollapsedSections[string(section.KeyStash)]
	headerLine := cur.emit(fmt.Sprintf("Stashes (%d)", len(stashes)), "sectionheader")
	rootIdx := tree.AddRoot(section.Node{
		Kind: section.KindSectionHeader, StartLine: headerLine, EndLine: headerLine,
		Collapsed: collapsed, FaceTag: "sectionheader",
		Data: &section.SectionHeaderData{StatusKey: section.KeyStash},
	})

	child := cur
	if collapsed {
		child = cur.fork(true)
	}
	for _, s := range stashes {
		line := child.n
		child.emit(fmt.Sprintf("  %s  %s", s.Ref, s.Message), "stash")
		tree.AddChild(rootIdx, section.Node{
			Kind: section.KindStash, StartLine: line, EndLine: line,
			Data: &section.StashData{Ref: s.Ref, Message: s.Message},
		})
	}
	if !collapsed {
		cur.n = child.n
		tree.Node(rootIdx).EndLine = child.n - 1
	}
}
