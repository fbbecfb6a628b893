package card

import (
	"fmt"
	"strings"

	"github.com/opsnotify/teams-notify/internal/domain"
)

// NoFilesChanged is the literal placeholder rendered when the change set is
// empty or was not computed. Absence must never render as a blank field.
const NoFilesChanged = "No files changed."

// Fixed action link labels.
const (
	actionViewLogs  = "View Deployment Logs"
	actionViewDiffs = "View commit diffs"
)

// Input carries everything the builder needs to render a card.
type Input struct {
	// Status is the parsed deployment outcome.
	Status domain.Status

	// Context identifies the repository, branch, actor, commit, and run.
	Context domain.RevisionContext

	// CommitMessage is the latest commit's message, already trimmed.
	CommitMessage string

	// Changes is the changed-file set. A nil pointer means the set was
	// not computed for this invocation.
	Changes *domain.ChangeSet
}

// Build maps a deployment outcome and its revision data to a MessageCard.
// It is a pure function: same inputs, same card, no I/O.
func Build(in Input) (*MessageCard, error) {
	p, err := presentationFor(in.Status)
	if err != nil {
		return nil, err
	}

	c := in.Context
	return &MessageCard{
		Type:       messageCardType,
		Context:    messageCardContext,
		ThemeColor: p.color,
		Summary:    fmt.Sprintf("%s: %s/%s", p.title, c.Owner, c.Repo),
		Sections: []Section{
			{
				ActivityTitle:    fmt.Sprintf("%s %s", p.icon, p.title),
				ActivitySubtitle: fmt.Sprintf("%s/%s deployed by %s", c.Owner, c.Repo, c.Actor),
				Text:             p.detail,
				Facts: []Fact{
					{Name: "Commit message", Value: in.CommitMessage},
					{Name: "Branch", Value: fmt.Sprintf("[%s](%s)", c.Branch, c.BranchURL())},
					{Name: "Changed files", Value: renderChangedFiles(c, in.Changes)},
				},
				Markdown: true,
			},
		},
		PotentialAction: []Action{
			openURI(actionViewLogs, c.RunURL()),
			openURI(actionViewDiffs, c.CommitURL()),
		},
	}, nil
}

// renderChangedFiles renders each changed path as a markdown bullet linking
// to the file's blob at the current branch, joined by newlines in input
// order. An empty or uncomputed set renders the NoFilesChanged placeholder.
func renderChangedFiles(c domain.RevisionContext, changes *domain.ChangeSet) string {
	if changes == nil || changes.IsEmpty() {
		return NoFilesChanged
	}

	lines := make([]string, 0, len(changes.Files))
	for _, path := range changes.Files {
		lines = append(lines, fmt.Sprintf("* [%s](%s)", path, c.BlobURL(path)))
	}
	return strings.Join(lines, "\n")
}
