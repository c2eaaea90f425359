package transient

import "testing"

func TestMatrix_EveryActionKeyUnique(t *testing.T) {
	t.Parallel()
	for cat, menu := range Matrix {
		seen := make(map[string]bool)
		for _, a := range menu.Actions {
			if seen[a.Key] {
				t.Errorf("%s: duplicate action key %q", cat, a.Key)
			}
			seen[a.Key] = true
		}
	}
}

func TestState_ToggleAndFlags(t *testing.T) {
	t.Parallel()
	s := NewState(CategoryCommit)
	s.Toggle("-a")
	s.Toggle("-s")
	flags := s.Flags()
	if len(flags) != 2 || flags[0] != "--all" || flags[1] != "--signoff" {
		t.Errorf("Flags() = %v; want [--all --signoff]", flags)
	}

	s.Toggle("-a")
	flags = s.Flags()
	if len(flags) != 1 || flags[0] != "--signoff" {
		t.Errorf("Flags() after untoggle = %v; want [--signoff]", flags)
	}
}

func TestState_ToggleUnknownKeyIsNoop(t *testing.T) {
	t.Parallel()
	s := NewState(CategoryCommit)
	s.Toggle("-zzz")
	if len(s.Flags()) != 0 {
		t.Error("expected no flags set from unknown key")
	}
}

func TestPushMatrix_HasSetUpstreamFlag(t *testing.T) {
	t.Parallel()
	menu := Matrix[CategoryPush]
	for _, sw := range menu.Switches {
		if sw.Key == "-u" && sw.Flag == "--set-upstream" {
			return
		}
	}
	t.Error("push menu missing -u --set-upstream switch")
}
