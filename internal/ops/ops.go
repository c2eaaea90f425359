// Package ops implements the status dashboard's point-of-cursor
// operations: stage, unstage, discard, and visit, each dispatching on
// the kind of section under the cursor and, for hunks, on whichever
// line-range selection is currently active.
package ops

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/jansmrcka/gitwright/internal/git"
	"github.com/jansmrcka/gitwright/internal/patch"
	"github.com/jansmrcka/gitwright/internal/section"
)

// Engine performs operations against a repository.
type Engine struct {
	repo *git.Repo
}

// New returns an Engine bound to repo.
func New(repo *git.Repo) *Engine {
	return &Engine{repo: repo}
}

// hunkOffsets maps an active line selection to a [start,end] offset pair
// into a hunk's Lines, clamped to the hunk's content span. Offsets are
// computed relative to hunkStartLine+1, the first content line.
func hunkOffsets(hunkStartLine int, lineCount int, sel LineSelection) (start, end int, ok bool) {
	lo, hi := sel.Range()
	base := hunkStartLine + 1
	start = lo - base
	end = hi - base
	if start < 0 {
		start = 0
	}
	if end > lineCount-1 {
		end = lineCount - 1
	}
	if start > end {
		return 0, 0, false
	}
	return start, end, true
}

func hunkPatch(fd *section.FileData, hd *section.HunkData, hunkStartLine int, sel LineSelection) string {
	if sel.Active {
		if s, e, ok := hunkOffsets(hunkStartLine, len(hd.Hunk.Lines), sel); ok {
			return patch.Region(*hd.FileDiff, hd.Hunk, s, e)
		}
	}
	return patch.WholeHunk(*hd.FileDiff, hd.Hunk)
}

func ancestorFile(tree *section.Tree, idx int) (*section.Node, bool) {
	for {
		n := tree.Node(idx)
		if n == nil {
			return nil, false
		}
		if n.Kind == section.KindFile {
			return n, true
		}
		if n.Parent == -1 {
			return nil, false
		}
		idx = n.Parent
	}
}

// Stage stages the thing under the cursor at line: a file, a hunk (or
// selected region of one), or every file under an Untracked/Unstaged
// section header.
func (e *Engine) Stage(tree *section.Tree, line int, sel LineSelection) error {
	idx, ok := tree.SectionAtLine(line)
	if !ok {
		return fmt.Errorf("nothing at point")
	}
	n := tree.Node(idx)
	switch n.Kind {
	case section.KindFile:
		fd := n.Data.(*section.FileData)
		return e.repo.StageFile(fd.Path)
	case section.KindHunk:
		hd := n.Data.(*section.HunkData)
		fileNode, ok := ancestorFile(tree, idx)
		if !ok {
			return fmt.Errorf("hunk has no parent file")
		}
		fd := fileNode.Data.(*section.FileData)
		return e.repo.ApplyCached(hunkPatch(fd, hd, n.StartLine, sel))
	case section.KindSectionHeader:
		shd := n.Data.(*section.SectionHeaderData)
		if shd.StatusKey != section.KeyUntracked && shd.StatusKey != section.KeyUnstaged {
			return fmt.Errorf("nothing stageable in %s", shd.StatusKey)
		}
		for _, c := range n.Children {
			cn := tree.Node(c)
			if cn.Kind != section.KindFile {
				continue
			}
			fd := cn.Data.(*section.FileData)
			if err := e.repo.StageFile(fd.Path); err != nil {
				return err
			}
		}
		return nil
	default:
		return fmt.Errorf("nothing stageable at point")
	}
}

// Unstage unstages the thing under the cursor: a file, a hunk (or
// selected region), or every file under the Staged section header.
func (e *Engine) Unstage(tree *section.Tree, line int, sel LineSelection) error {
	idx, ok := tree.SectionAtLine(line)
	if !ok {
		return fmt.Errorf("nothing at point")
	}
	n := tree.Node(idx)
	switch n.Kind {
	case section.KindFile:
		fd := n.Data.(*section.FileData)
		return e.repo.RestoreStaged(fd.Path)
	case section.KindHunk:
		hd := n.Data.(*section.HunkData)
		fileNode, ok := ancestorFile(tree, idx)
		if !ok {
			return fmt.Errorf("hunk has no parent file")
		}
		fd := fileNode.Data.(*section.FileData)
		return e.repo.ApplyCachedReverse(hunkPatch(fd, hd, n.StartLine, sel))
	case section.KindSectionHeader:
		shd := n.Data.(*section.SectionHeaderData)
		if shd.StatusKey != section.KeyStaged {
			return fmt.Errorf("nothing to unstage in %s", shd.StatusKey)
		}
		for _, c := range n.Children {
			cn := tree.Node(c)
			if cn.Kind != section.KindFile {
				continue
			}
			fd := cn.Data.(*section.FileData)
			if err := e.repo.RestoreStaged(fd.Path); err != nil {
				return err
			}
		}
		return nil
	default:
		return fmt.Errorf("nothing to unstage at point")
	}
}

// Discard discards the thing under the cursor: an untracked file is
// deleted, an unstaged file's changes are checked out away, a hunk (or
// region) is reverse-applied against the worktree.
func (e *Engine) Discard(tree *section.Tree, line int, sel LineSelection) error {
	idx, ok := tree.SectionAtLine(line)
	if !ok {
		return fmt.Errorf("nothing at point")
	}
	n := tree.Node(idx)
	switch n.Kind {
	case section.KindFile:
		fd := n.Data.(*section.FileData)
		if fd.StatusKey == section.KeyUntracked {
			return os.Remove(filepath.Join(e.repo.Dir(), fd.Path))
		}
		return e.repo.CheckoutPath(fd.Path)
	case section.KindHunk:
		hd := n.Data.(*section.HunkData)
		fileNode, ok := ancestorFile(tree, idx)
		if !ok {
			return fmt.Errorf("hunk has no parent file")
		}
		fd := fileNode.Data.(*section.FileData)
		return e.repo.ApplyReverse(hunkPatch(fd, hd, n.StartLine, sel))
	case section.KindSectionHeader:
		for _, c := range n.Children {
			cn := tree.Node(c)
			if cn.Kind != section.KindFile {
				continue
			}
			fd := cn.Data.(*section.FileData)
			var err error
			if fd.StatusKey == section.KeyUntracked {
				err = os.Remove(filepath.Join(e.repo.Dir(), fd.Path))
			} else {
				err = e.repo.CheckoutPath(fd.Path)
			}
			if err != nil {
				return err
			}
		}
		return nil
	default:
		return fmt.Errorf("nothing to discard at point")
	}
}

// VisitTarget describes what Visit resolved the cursor position to.
type VisitTarget struct {
	Kind    string // "file", "blob", "commit"
	Path    string
	Line    int
	Content string
	Hash    string
}

// Visit resolves the cursor position to a navigable target, per the
// file/hunk-side/commit rules.
func (e *Engine) Visit(tree *section.Tree, line int) (VisitTarget, error) {
	idx, ok := tree.SectionAtLine(line)
	if !ok {
		return VisitTarget{}, fmt.Errorf("nothing at point")
	}
	n := tree.Node(idx)
	switch n.Kind {
	case section.KindFile:
		fd := n.Data.(*section.FileData)
		return VisitTarget{Kind: "file", Path: fd.Path, Line: 1}, nil
	case section.KindHunk:
		hd := n.Data.(*section.HunkData)
		fileNode, ok := ancestorFile(tree, idx)
		if !ok {
			return VisitTarget{}, fmt.Errorf("hunk has no parent file")
		}
		fd := fileNode.Data.(*section.FileData)
		if line == n.StartLine {
			return VisitTarget{Kind: "file", Path: fd.Path, Line: hd.Hunk.NewStart - 1}, nil
		}
		offset := line - (n.StartLine + 1)
		if offset < 0 || offset >= len(hd.Hunk.Lines) {
			return VisitTarget{Kind: "file", Path: fd.Path, Line: hd.Hunk.NewStart}, nil
		}
		text := hd.Hunk.Lines[offset]
		if len(text) > 0 && text[0] == '-' {
			ref := ""
			if fd.StatusKey == section.KeyStaged {
				ref = "HEAD"
			}
			oldPath := fd.Path
			content, err := e.repo.ShowBlob(ref, oldPath)
			if err != nil {
				return VisitTarget{}, err
			}
			return VisitTarget{Kind: "blob", Path: oldPath, Content: content, Line: oldLineNumber(hd.Hunk, offset)}, nil
		}
		return VisitTarget{Kind: "file", Path: fd.Path, Line: newLineNumber(hd.Hunk, offset)}, nil
	case section.KindCommit:
		cd := n.Data.(*section.CommitData)
		content, err := e.repo.ShowCommit(cd.Hash)
		if err != nil {
			return VisitTarget{}, err
		}
		return VisitTarget{Kind: "commit", Hash: cd.Hash, Content: content}, nil
	default:
		return VisitTarget{}, fmt.Errorf("nothing to visit at point")
	}
}

// oldLineNumber returns the old-file line number aligned with hunk line
// offset (a context or deletion line).
func oldLineNumber(h git.Hunk, offset int) int {
	n := h.OldStart
	for i := 0; i < offset; i++ {
		if len(h.Lines[i]) > 0 && h.Lines[i][0] != '+' {
			n++
		}
	}
	return n
}

// newLineNumber returns the new-file line number aligned with hunk line
// offset (a context or addition line).
func newLineNumber(h git.Hunk, offset int) int {
	n := h.NewStart
	for i := 0; i < offset; i++ {
		if len(h.Lines[i]) > 0 && h.Lines[i][0] != '-' {
			n++
		}
	}
	return n
}
