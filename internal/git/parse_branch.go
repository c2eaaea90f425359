package git

import "strings"

// BranchFormat is the `--format=` argument ParseBranchList expects:
// short refname, short objectname, and git's own "*"/" " HEAD marker.
const BranchFormat = "%(refname:short)%00%(objectname:short)%00%(HEAD)"

// BranchRef is one entry from `git branch --list` / `--format=BranchFormat`.
type BranchRef struct {
	Name    string
	Hash    string
	Current bool
	Remote  bool
}

// ParseBranchList decodes NUL-delimited branch listing lines.
func ParseBranchList(output string) []BranchRef {
	var refs []BranchRef
	for _, line := range strings.Split(output, "\n") {
		if line == "" {
			continue
		}
		fields := strings.SplitN(line, "\x00", 3)
		if len(fields) < 3 {
			continue
		}
		name := fields[0]
		refs = append(refs, BranchRef{
			Name:    name,
			Hash:    fields[1],
			Current: fields[2] == "*",
			Remote:  strings.HasPrefix(name, "remotes/"),
		})
	}
	return refs
}
