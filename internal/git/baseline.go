package git

// Baseline is the optional previous revision to diff against.
//
// It is an explicit option type rather than an empty-string sentinel so the
// two diff strategies (two-revision diff vs single-commit change set) stay
// exhaustive and independently testable.
type Baseline struct {
	sha string
	ok  bool
}

// NoBaseline returns a Baseline indicating no previous revision was supplied.
func NoBaseline() Baseline {
	return Baseline{}
}

// BaselineAt returns a Baseline anchored at the given revision.
// An empty sha is treated as no baseline.
func BaselineAt(sha string) Baseline {
	if sha == "" {
		return Baseline{}
	}
	return Baseline{sha: sha, ok: true}
}

// SHA returns the baseline revision and whether one was supplied.
func (b Baseline) SHA() (string, bool) {
	return b.sha, b.ok
}

// IsSet reports whether a baseline revision was supplied.
func (b Baseline) IsSet() bool {
	return b.ok
}
