package ops

import (
	"os"
	"os/exec"
	"path/filepath"
	"testing"

	"github.com/jansmrcka/gitwright/internal/git"
	"github.com/jansmrcka/gitwright/internal/section"
)

func gitEnv(fakeHome string) []string {
	return []string{
		"HOME=" + fakeHome,
		"GIT_CONFIG_NOSYSTEM=1",
		"GIT_CONFIG_GLOBAL=/dev/null",
		"GIT_AUTHOR_NAME=test",
		"GIT_AUTHOR_EMAIL=test@test.com",
		"GIT_COMMITTER_NAME=test",
		"GIT_COMMITTER_EMAIL=test@test.com",
		"PATH=" + os.Getenv("PATH"),
	}
}

func setupTestRepo(t *testing.T) *git.Repo {
	t.Helper()
	dir := t.TempDir()
	fakeHome := t.TempDir()
	env := gitEnv(fakeHome)

	run := func(args ...string) {
		t.Helper()
		cmd := exec.Command("git", args...)
		cmd.Dir = dir
		cmd.Env = env
		if out, err := cmd.CombinedOutput(); err != nil {
			t.Fatalf("git %v: %v\n%s", args, err, out)
		}
	}
	run("init")
	run("config", "user.name", "test")
	run("config", "user.email", "test@test.com")

	repo, err := git.NewRepo(dir)
	if err != nil {
		t.Fatalf("NewRepo: %v", err)
	}
	return repo
}

func commit(t *testing.T, repo *git.Repo, name, content, msg string) {
	t.Helper()
	if err := os.WriteFile(filepath.Join(repo.Dir(), name), []byte(content), 0o644); err != nil {
		t.Fatal(err)
	}
	if err := repo.StageFile(name); err != nil {
		t.Fatal(err)
	}
	if err := repo.Commit(msg); err != nil {
		t.Fatal(err)
	}
}

func fileTree(path string, statusKey section.StatusKey) (*section.Tree, int) {
	tr := section.New()
	idx := tr.AddRoot(section.Node{
		Kind:      section.KindFile,
		StartLine: 0,
		EndLine:   0,
		Data: &section.FileData{
			Path:      path,
			StatusKey: statusKey,
		},
	})
	return tr, idx
}

func TestStage_File(t *testing.T) {
	t.Parallel()
	repo := setupTestRepo(t)
	commit(t, repo, "f.txt", "v1", "init")
	if err := os.WriteFile(filepath.Join(repo.Dir(), "f.txt"), []byte("v2"), 0o644); err != nil {
		t.Fatal(err)
	}
	tr, _ := fileTree("f.txt", section.KeyUnstaged)

	eng := New(repo)
	if err := eng.Stage(tr, 0, LineSelection{}); err != nil {
		t.Fatal(err)
	}
	files, err := repo.ChangedFiles(true, "")
	if err != nil {
		t.Fatal(err)
	}
	if len(files) != 1 || !files[0].Staged {
		t.Errorf("expected f.txt staged, got %+v", files)
	}
}

func TestUnstage_File(t *testing.T) {
	t.Parallel()
	repo := setupTestRepo(t)
	commit(t, repo, "f.txt", "v1", "init")
	if err := os.WriteFile(filepath.Join(repo.Dir(), "f.txt"), []byte("v2"), 0o644); err != nil {
		t.Fatal(err)
	}
	if err := repo.StageFile("f.txt"); err != nil {
		t.Fatal(err)
	}
	tr, _ := fileTree("f.txt", section.KeyStaged)

	eng := New(repo)
	if err := eng.Unstage(tr, 0, LineSelection{}); err != nil {
		t.Fatal(err)
	}
	files, err := repo.ChangedFiles(true, "")
	if err != nil {
		t.Fatal(err)
	}
	if len(files) != 0 {
		t.Errorf("expected no staged files, got %+v", files)
	}
}

func TestDiscard_UntrackedFile(t *testing.T) {
	t.Parallel()
	repo := setupTestRepo(t)
	commit(t, repo, "f.txt", "v1", "init")
	path := filepath.Join(repo.Dir(), "new.txt")
	if err := os.WriteFile(path, []byte("x"), 0o644); err != nil {
		t.Fatal(err)
	}
	tr, _ := fileTree("new.txt", section.KeyUntracked)

	eng := New(repo)
	if err := eng.Discard(tr, 0, LineSelection{}); err != nil {
		t.Fatal(err)
	}
	if _, err := os.Stat(path); !os.IsNotExist(err) {
		t.Error("expected new.txt to be removed")
	}
}

func TestLineSelection_Range(t *testing.T) {
	t.Parallel()
	var sel LineSelection
	sel.Start(10)
	sel.Extend(5)
	lo, hi := sel.Range()
	if lo != 5 || hi != 10 {
		t.Errorf("Range() = %d,%d; want 5,10", lo, hi)
	}
	sel.Clear()
	if sel.Active {
		t.Error("expected selection cleared")
	}
}

func TestVisit_Commit(t *testing.T) {
	t.Parallel()
	repo := setupTestRepo(t)
	commit(t, repo, "f.txt", "v1", "init")
	commits, err := repo.Log(1)
	if err != nil {
		t.Fatal(err)
	}
	tr := section.New()
	tr.AddRoot(section.Node{
		Kind:      section.KindCommit,
		StartLine: 0,
		EndLine:   0,
		Data: &section.CommitData{
			Hash:    commits[0].Hash,
			Subject: commits[0].Subject,
		},
	})

	eng := New(repo)
	target, err := eng.Visit(tr, 0)
	if err != nil {
		t.Fatal(err)
	}
	if target.Kind != "commit" || target.Content == "" {
		t.Errorf("unexpected visit target: %+v", target)
	}
}
