package report

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/failman/failman/api"
)

func TestFilterFailed(t *testing.T) {

	t.Run("ExcludesHealthyStateStringsRegardlessOfCase", func(t *testing.T) {

		rows := []api.ReportRow{
			{BuilderName: "B1", Status: "Build Successful"},
			{BuilderName: "B2", Status: "BUILDING"},
			{BuilderName: "B3", Status: "acquiring locks"},
			{BuilderName: "B4", Status: "Preparing Worker"},
		}

		// act
		failed := FilterFailed(rows)

		assert.Equal(t, 0, len(failed))
	})

	t.Run("IncludesExplicitFailureStateStrings", func(t *testing.T) {

		rows := []api.ReportRow{
			{BuilderName: "B1", Status: "failed"},
			{BuilderName: "B2", Status: "exception"},
		}

		// act
		failed := FilterFailed(rows)

		assert.Equal(t, 2, len(failed))
	})

	t.Run("IncludesUnknownStateStrings", func(t *testing.T) {

		rows := []api.ReportRow{
			{BuilderName: "B1", Status: "timed out"},
		}

		// act
		failed := FilterFailed(rows)

		assert.Equal(t, 1, len(failed))
		assert.Equal(t, "timed out", failed[0].Status)
	})

	t.Run("IncludesRowsWithEmptyStatus", func(t *testing.T) {

		rows := []api.ReportRow{
			{BuilderName: "B1", Status: ""},
		}

		// act
		failed := FilterFailed(rows)

		assert.Equal(t, 1, len(failed))
	})

	t.Run("KeepsFailedRowsInSuppliedOrder", func(t *testing.T) {

		rows := []api.ReportRow{
			{BuilderName: "B1", Status: "failed"},
			{BuilderName: "B2", Status: "build successful"},
			{BuilderName: "B3", Status: "exception"},
		}

		// act
		failed := FilterFailed(rows)

		assert.Equal(t, 2, len(failed))
		assert.Equal(t, "B1", failed[0].BuilderName)
		assert.Equal(t, "B3", failed[1].BuilderName)
	})
}
