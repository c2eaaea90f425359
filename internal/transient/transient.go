// Package transient holds the declarative command/flag matrix that
// drives the pop-up, argument-bearing menus for git's porcelain
// commands: infix switches the user can toggle, and suffix actions
// that run with whichever switches are on, per spec.md §4.10.
package transient

// Category names one of the transient menus.
type Category string

const (
	CategoryCommit      Category = "commit"
	CategoryPush        Category = "push"
	CategoryPull        Category = "pull"
	CategoryFetch       Category = "fetch"
	CategoryStash       Category = "stash"
	CategoryMerge       Category = "merge"
	CategoryRebase      Category = "rebase"
	CategoryCherryPick  Category = "cherry-pick"
	CategoryReset       Category = "reset"
	CategoryTag         Category = "tag"
	CategoryLog         Category = "log"
	CategoryDiff        Category = "diff"
)

// PositionalKind tags how a suffix action's positional argument (a
// branch, a remote, a rev) is sourced from the user.
type PositionalKind int

const (
	PositionalNone PositionalKind = iota
	PositionalBranchPicker
	PositionalRemotePicker
	PositionalUpstream
	PositionalPushRemote
	PositionalRevPrompt
	PositionalMessagePrompt
	PositionalCommitBuffer
)

// Switch is one infix toggle: a single key bound to a git flag.
type Switch struct {
	Key   string // e.g. "-a"
	Flag  string // e.g. "--all"
	Label string
}

// Action is one suffix command: a key bound to a git subcommand that
// runs with whichever switches are currently toggled on.
type Action struct {
	Key        string
	Subcommand string // e.g. "push", "commit --amend"
	Label      string
	Positional PositionalKind
}

// Menu is one category's full set of switches and actions.
type Menu struct {
	Category Category
	Title    string
	Switches []Switch
	Actions  []Action
}

// Matrix is the full C10 command/flag table, keyed by category.
var Matrix = map[Category]Menu{
	CategoryCommit: {
		Category: CategoryCommit,
		Title:    "Commit",
		Switches: []Switch{
			{Key: "-a", Flag: "--all", Label: "Stage all modified and deleted files"},
			{Key: "-e", Flag: "--allow-empty", Label: "Allow empty commit"},
			{Key: "-n", Flag: "--no-verify", Label: "Disable hooks"},
			{Key: "-s", Flag: "--signoff", Label: "Add Signed-off-by"},
			{Key: "-R", Flag: "--reset-author", Label: "Reset author"},
			{Key: "-v", Flag: "--verbose", Label: "Show diff in message buffer"},
		},
		Actions: []Action{
			{Key: "c", Subcommand: "commit", Label: "Commit", Positional: PositionalCommitBuffer},
			{Key: "e", Subcommand: "commit --amend", Label: "Extend/amend", Positional: PositionalCommitBuffer},
			{Key: "w", Subcommand: "commit --amend --no-edit", Label: "Reword", Positional: PositionalNone},
		},
	},
	CategoryPush: {
		Category: CategoryPush,
		Title:    "Push",
		Switches: []Switch{
			{Key: "-f", Flag: "--force-with-lease", Label: "Force with lease"},
			{Key: "-F", Flag: "--force", Label: "Force"},
			{Key: "-n", Flag: "--no-verify", Label: "Disable hooks"},
			{Key: "-u", Flag: "--set-upstream", Label: "Set upstream"},
			{Key: "-h", Flag: "--dry-run", Label: "Dry run"},
		},
		Actions: []Action{
			{Key: "p", Subcommand: "push", Label: "Push to upstream", Positional: PositionalUpstream},
			{Key: "e", Subcommand: "push", Label: "Push elsewhere", Positional: PositionalRemotePicker},
			{Key: "o", Subcommand: "push", Label: "Push to push-remote", Positional: PositionalPushRemote},
		},
	},
	CategoryPull: {
		Category: CategoryPull,
		Title:    "Pull",
		Switches: []Switch{
			{Key: "-f", Flag: "--ff-only", Label: "Fast-forward only"},
			{Key: "-r", Flag: "--rebase", Label: "Rebase local commits"},
			{Key: "-A", Flag: "--autostash", Label: "Autostash"},
			{Key: "-n", Flag: "--no-ff", Label: "No fast-forward"},
			{Key: "-N", Flag: "--no-rebase", Label: "No rebase"},
		},
		Actions: []Action{
			{Key: "p", Subcommand: "pull", Label: "Pull from upstream", Positional: PositionalUpstream},
			{Key: "e", Subcommand: "pull", Label: "Pull from elsewhere", Positional: PositionalRemotePicker},
			{Key: "o", Subcommand: "pull", Label: "Pull from push-remote", Positional: PositionalPushRemote},
		},
	},
	CategoryFetch: {
		Category: CategoryFetch,
		Title:    "Fetch",
		Switches: []Switch{
			{Key: "-p", Flag: "--prune", Label: "Prune deleted refs"},
			{Key: "-t", Flag: "--tags", Label: "Fetch all tags"},
			{Key: "-v", Flag: "--verbose", Label: "Verbose"},
		},
		Actions: []Action{
			{Key: "f", Subcommand: "fetch", Label: "Fetch from remote", Positional: PositionalRemotePicker},
			{Key: "a", Subcommand: "fetch --all", Label: "Fetch all remotes", Positional: PositionalNone},
			{Key: "u", Subcommand: "fetch", Label: "Fetch from upstream", Positional: PositionalUpstream},
			{Key: "o", Subcommand: "fetch", Label: "Fetch from push-remote", Positional: PositionalPushRemote},
		},
	},
	CategoryStash: {
		Category: CategoryStash,
		Title:    "Stash",
		Switches: []Switch{
			{Key: "-u", Flag: "--include-untracked", Label: "Include untracked"},
			{Key: "-a", Flag: "--all", Label: "Include ignored"},
			{Key: "-k", Flag: "--keep-index", Label: "Keep index"},
		},
		Actions: []Action{
			{Key: "z", Subcommand: "stash push", Label: "Stash", Positional: PositionalMessagePrompt},
			{Key: "Z", Subcommand: "stash push --staged", Label: "Stash staged only", Positional: PositionalMessagePrompt},
			{Key: "p", Subcommand: "stash pop", Label: "Pop", Positional: PositionalNone},
			{Key: "a", Subcommand: "stash apply", Label: "Apply", Positional: PositionalNone},
			{Key: "k", Subcommand: "stash drop", Label: "Drop", Positional: PositionalNone},
			{Key: "v", Subcommand: "stash show -p", Label: "Show", Positional: PositionalNone},
			{Key: "l", Subcommand: "stash list", Label: "List", Positional: PositionalNone},
		},
	},
	CategoryMerge: {
		Category: CategoryMerge,
		Title:    "Merge",
		Switches: []Switch{
			{Key: "-f", Flag: "--ff-only", Label: "Fast-forward only"},
			{Key: "-n", Flag: "--no-ff", Label: "No fast-forward"},
			{Key: "-s", Flag: "--squash", Label: "Squash"},
			{Key: "-c", Flag: "--no-commit", Label: "No commit"},
		},
		Actions: []Action{
			{Key: "m", Subcommand: "merge", Label: "Merge", Positional: PositionalBranchPicker},
			{Key: "a", Subcommand: "merge --abort", Label: "Abort", Positional: PositionalNone},
		},
	},
	CategoryRebase: {
		Category: CategoryRebase,
		Title:    "Rebase",
		Switches: []Switch{
			{Key: "-A", Flag: "--autostash", Label: "Autostash"},
			{Key: "-i", Flag: "--interactive", Label: "Interactive"},
			{Key: "-a", Flag: "--autosquash", Label: "Autosquash"},
		},
		Actions: []Action{
			{Key: "u", Subcommand: "rebase", Label: "Rebase onto upstream", Positional: PositionalUpstream},
			{Key: "b", Subcommand: "rebase", Label: "Rebase onto branch", Positional: PositionalBranchPicker},
			{Key: "r", Subcommand: "rebase", Label: "Rebase onto rev", Positional: PositionalRevPrompt},
			{Key: "c", Subcommand: "rebase --continue", Label: "Continue", Positional: PositionalNone},
			{Key: "s", Subcommand: "rebase --skip", Label: "Skip", Positional: PositionalNone},
			{Key: "a", Subcommand: "rebase --abort", Label: "Abort", Positional: PositionalNone},
		},
	},
	CategoryCherryPick: {
		Category: CategoryCherryPick,
		Title:    "Cherry-pick",
		Switches: []Switch{
			{Key: "-n", Flag: "--no-commit", Label: "No commit"},
			{Key: "-e", Flag: "--edit", Label: "Edit message"},
		},
		Actions: []Action{
			{Key: "A", Subcommand: "cherry-pick", Label: "Pick", Positional: PositionalRevPrompt},
			{Key: "c", Subcommand: "cherry-pick --continue", Label: "Continue", Positional: PositionalNone},
			{Key: "a", Subcommand: "cherry-pick --abort", Label: "Abort", Positional: PositionalNone},
		},
	},
	CategoryReset: {
		Category: CategoryReset,
		Title:    "Reset",
		Switches: nil,
		Actions: []Action{
			{Key: "s", Subcommand: "reset --soft", Label: "Soft", Positional: PositionalRevPrompt},
			{Key: "m", Subcommand: "reset --mixed", Label: "Mixed", Positional: PositionalRevPrompt},
			{Key: "h", Subcommand: "reset --hard", Label: "Hard", Positional: PositionalRevPrompt},
		},
	},
	CategoryTag: {
		Category: CategoryTag,
		Title:    "Tag",
		Switches: nil,
		Actions: []Action{
			{Key: "t", Subcommand: "tag", Label: "Create", Positional: PositionalMessagePrompt},
			{Key: "k", Subcommand: "tag -d", Label: "Delete", Positional: PositionalRevPrompt},
			{Key: "l", Subcommand: "tag -l", Label: "List", Positional: PositionalNone},
		},
	},
	CategoryLog: {
		Category: CategoryLog,
		Title:    "Log",
		Switches: []Switch{
			{Key: "-a", Flag: "--all", Label: "All refs"},
			{Key: "-d", Flag: "--decorate", Label: "Decorate"},
			{Key: "-g", Flag: "--graph", Label: "Graph"},
		},
		Actions: []Action{
			{Key: "l", Subcommand: "log", Label: "Log current branch", Positional: PositionalNone},
			{Key: "b", Subcommand: "log", Label: "Log branch", Positional: PositionalBranchPicker},
		},
	},
	CategoryDiff: {
		Category: CategoryDiff,
		Title:    "Diff",
		Switches: []Switch{
			{Key: "-w", Flag: "-w", Label: "Ignore whitespace"},
			{Key: "-s", Flag: "--stat", Label: "Stat only"},
		},
		Actions: []Action{
			{Key: "r", Subcommand: "diff", Label: "Diff rev/range", Positional: PositionalRevPrompt},
			{Key: "c", Subcommand: "diff --cached", Label: "Diff staged", Positional: PositionalNone},
		},
	},
}

// State is the live toggled-switch set for one open transient menu.
type State struct {
	Category Category
	On       map[string]bool // Switch.Key -> on
}

// NewState opens a transient on category with every switch off.
func NewState(cat Category) State {
	return State{Category: cat, On: make(map[string]bool)}
}

// Toggle flips a switch by key, a no-op if the menu has no such switch.
func (s State) Toggle(key string) {
	menu := Matrix[s.Category]
	for _, sw := range menu.Switches {
		if sw.Key == key {
			s.On[key] = !s.On[key]
			return
		}
	}
}

// Flags returns the git flag strings for every currently-on switch, in
// the menu's declared order, so the built argv is deterministic.
func (s State) Flags() []string {
	menu := Matrix[s.Category]
	var flags []string
	for _, sw := range menu.Switches {
		if s.On[sw.Key] {
			flags = append(flags, sw.Flag)
		}
	}
	return flags
}
