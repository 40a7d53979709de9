package api

// Builder is one configured builder in the buildbot master's roster
type Builder struct {
	ID   int    `json:"builderid"`
	Name string `json:"name"`
}

// Build is the outcome of a single builder for one change
type Build struct {
	BuilderID   int    `json:"builderid"`
	Number      int    `json:"number"`
	StateString string `json:"state_string"`
}

// SourceStamp identifies the commit a change was observed on
type SourceStamp struct {
	Branch   string `json:"branch"`
	Revision string `json:"revision"`
}

// Change is the latest commit buildbot saw on a branch, together with the builds it triggered
type Change struct {
	SourceStamp SourceStamp `json:"sourcestamp"`
	Builds      []Build     `json:"builds"`
}

// ReportRow is one builder's outcome on one branch's latest commit, flattened for reporting
type ReportRow struct {
	BuilderName string
	Branch      string
	Commit      string
	Status      string
	DetailURL   string
}
