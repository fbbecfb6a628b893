package domain

import "fmt"

// RevisionContext identifies the repository, branch, actor, commit, and
// workflow run a notification is about. All fields are plain strings,
// collected once per invocation from the CI environment and immutable after.
type RevisionContext struct {
	// ServerURL is the base URL of the hosting instance (e.g., https://github.com).
	ServerURL string

	// Owner is the repository owner (user or organization).
	Owner string

	// Repo is the repository name.
	Repo string

	// Branch is the short branch name the deployment ran on.
	Branch string

	// Actor is the username that triggered the workflow run.
	Actor string

	// CommitSHA is the commit the deployment was built from.
	CommitSHA string

	// RunID is the workflow run identifier, used for the logs link.
	RunID string
}

// RepoURL returns the base URL of the repository.
func (c RevisionContext) RepoURL() string {
	return fmt.Sprintf("%s/%s/%s", c.ServerURL, c.Owner, c.Repo)
}

// RunURL returns the URL of the workflow run (deployment logs).
func (c RevisionContext) RunURL() string {
	return fmt.Sprintf("%s/actions/runs/%s", c.RepoURL(), c.RunID)
}

// CommitURL returns the diff view URL for the commit.
func (c RevisionContext) CommitURL() string {
	return fmt.Sprintf("%s/commit/%s", c.RepoURL(), c.CommitSHA)
}

// BranchURL returns the tree URL for the branch.
func (c RevisionContext) BranchURL() string {
	return fmt.Sprintf("%s/tree/%s", c.RepoURL(), c.Branch)
}

// BlobURL returns the blob URL for a file path at the current branch.
func (c RevisionContext) BlobURL(path string) string {
	return fmt.Sprintf("%s/blob/%s/%s", c.RepoURL(), c.Branch, path)
}

// ChangeSet is the ordered list of file paths changed by the deployment.
//
// A nil Files slice means the set was not computed; an empty non-nil slice
// means the diff ran and reported no changes. Both render the same
// placeholder on the card, but the distinction keeps the two diff modes
// independently testable.
type ChangeSet struct {
	// Files holds the changed paths in tool-reported order.
	Files []string

	// Truncated is true when the list was capped at the two-revision
	// diff limit.
	Truncated bool
}

// IsEmpty reports whether the change set has no file paths.
func (c ChangeSet) IsEmpty() bool {
	return len(c.Files) == 0
}
