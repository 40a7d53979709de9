package report

import (
	"strings"

	"github.com/failman/failman/api"
)

// healthyStateStrings are the buildbot state strings that should not be reported; any
// other state string counts as failed, so new or unknown states surface in the report
// instead of being swallowed
var healthyStateStrings = []string{
	"acquiring locks",
	"building",
	"build successful",
	"preparing worker",
}

// FilterFailed returns the rows worth reporting, comparing state strings
// case-insensitively against the healthy markers
func FilterFailed(rows []api.ReportRow) (failed []api.ReportRow) {

	failed = make([]api.ReportRow, 0, len(rows))
	for _, row := range rows {
		if !contains(healthyStateStrings, strings.ToLower(row.Status)) {
			failed = append(failed, row)
		}
	}

	return failed
}
