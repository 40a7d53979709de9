package report

import (
	"fmt"

	"github.com/failman/failman/api"
)

// FilterBuilders reduces the builder roster to the names in the allowlist; an empty
// allowlist keeps the full roster
func FilterBuilders(builders []api.Builder, allowlist []string) (filtered []api.Builder) {

	if len(allowlist) == 0 {
		return builders
	}

	filtered = make([]api.Builder, 0, len(builders))
	for _, builder := range builders {
		if contains(allowlist, builder.Name) {
			filtered = append(filtered, builder)
		}
	}

	return filtered
}

// JoinBuildersWithChange merges the builder roster with one change's builds into report
// rows; the roster and the builds come from independent api calls, so entries without a
// counterpart on the other side are dropped without error
func JoinBuildersWithChange(builders []api.Builder, builds []api.Build, branch, revision, baseURL string) (rows []api.ReportRow) {

	// index builds by builder id; when a builder id appears more than once the last
	// build in the list wins
	buildIndex := make(map[int]api.Build, len(builds))
	for _, build := range builds {
		buildIndex[build.BuilderID] = build
	}

	rows = make([]api.ReportRow, 0, len(builders))
	for _, builder := range builders {
		build, ok := buildIndex[builder.ID]
		if !ok {
			continue
		}

		rows = append(rows, api.ReportRow{
			BuilderName: builder.Name,
			Branch:      branch,
			Commit:      revision,
			Status:      build.StateString,
			DetailURL:   fmt.Sprintf("%v#/builders/%v/builds/%v", baseURL, builder.ID, build.Number),
		})
	}

	return rows
}
