package report

import (
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/failman/failman/api"
)

func getSampleRows() []api.ReportRow {
	return []api.ReportRow{
		{BuilderName: "build-A", Branch: "main", Commit: "abc123", Status: "success", DetailURL: "http://example.com/A"},
		{BuilderName: "build-B", Branch: "dev", Commit: "def456", Status: "failed", DetailURL: "http://example.com/B"},
	}
}

func TestRenderCSV(t *testing.T) {

	t.Run("StartsWithLiteralHeaderRow", func(t *testing.T) {

		// act
		csvContent, err := RenderCSV(getSampleRows())

		assert.Nil(t, err)
		assert.True(t, strings.HasPrefix(csvContent, "Branch,Build,Commit,Status,URL\n"))
	})

	t.Run("ContainsOneLinePerRowInSuppliedOrder", func(t *testing.T) {

		// act
		csvContent, err := RenderCSV(getSampleRows())

		assert.Nil(t, err)
		lines := strings.Split(strings.TrimRight(csvContent, "\n"), "\n")
		assert.Equal(t, 3, len(lines))
		assert.Equal(t, "main,build-A,abc123,success,http://example.com/A", lines[1])
		assert.Equal(t, "dev,build-B,def456,failed,http://example.com/B", lines[2])
	})

	t.Run("QuotesFieldsContainingTheDelimiter", func(t *testing.T) {

		rows := []api.ReportRow{
			{BuilderName: "build-A", Branch: "main", Commit: "abc123", Status: "failed, worker lost", DetailURL: "http://example.com/A"},
		}

		// act
		csvContent, err := RenderCSV(rows)

		assert.Nil(t, err)
		assert.Contains(t, csvContent, "\"failed, worker lost\"")
	})

	t.Run("ReturnsHeaderOnlyIfRowsAreEmpty", func(t *testing.T) {

		// act
		csvContent, err := RenderCSV([]api.ReportRow{})

		assert.Nil(t, err)
		assert.Equal(t, "Branch,Build,Commit,Status,URL\n", csvContent)
	})
}

func TestRenderHTMLTable(t *testing.T) {

	t.Run("GroupsRowsByBranchWithHeadingAndTable", func(t *testing.T) {

		// act
		html := RenderHTMLTable(getSampleRows())

		assert.Contains(t, html, "<h3>Branch: main</h3>")
		assert.Contains(t, html, "<h3>Branch: dev</h3>")
		assert.Contains(t, html, "<table border='1' cellpadding='4' cellspacing='0' style='border-collapse:collapse'>")
		assert.Contains(t, html, "<a href=\"http://example.com/A\">build-A</a>")
	})

	t.Run("RendersBranchSectionsInDescendingOrder", func(t *testing.T) {

		// act
		html := RenderHTMLTable(getSampleRows())

		assert.True(t, strings.Index(html, "<h3>Branch: main</h3>") < strings.Index(html, "<h3>Branch: dev</h3>"))
	})

	t.Run("SortsBuildsByNameAscendingIgnoringCaseInsideBranch", func(t *testing.T) {

		rows := []api.ReportRow{
			{BuilderName: "b", Branch: "main", Commit: "abc", Status: "failed", DetailURL: "http://example.com/b"},
			{BuilderName: "A", Branch: "main", Commit: "abc", Status: "failed", DetailURL: "http://example.com/A"},
		}

		// act
		html := RenderHTMLTable(rows)

		assert.True(t, strings.Index(html, ">A</a>") < strings.Index(html, ">b</a>"))
	})

	t.Run("WrapsEachBranchTableInSeparators", func(t *testing.T) {

		rows := []api.ReportRow{
			{BuilderName: "build-A", Branch: "main", Commit: "abc", Status: "failed", DetailURL: "http://example.com/A"},
		}

		// act
		html := RenderHTMLTable(rows)

		assert.Equal(t, 2, strings.Count(html, separator))
	})

	t.Run("OmitsBranchAndURLColumnsFromTableHeader", func(t *testing.T) {

		// act
		html := RenderHTMLTable(getSampleRows())

		assert.Contains(t, html, "<tr><th>Build</th><th>Commit</th><th>Status</th></tr>")
		assert.NotContains(t, html, "<th>Branch</th>")
		assert.NotContains(t, html, "<th>URL</th>")
	})

	t.Run("JoinsSectionsWithSingleNewlines", func(t *testing.T) {

		// act
		html := RenderHTMLTable(getSampleRows())

		// 2 branches, 4 parts each, joined by newlines
		assert.Equal(t, 7, strings.Count(html, "\n"))
	})
}

func TestRenderSummary(t *testing.T) {

	t.Run("WritesOneTableRowPerFailedBuild", func(t *testing.T) {

		var buffer bytes.Buffer

		// act
		RenderSummary(getSampleRows(), &buffer)

		output := buffer.String()
		assert.Contains(t, output, "build-A")
		assert.Contains(t, output, "build-B")
		assert.Contains(t, output, "abc123")
		assert.Contains(t, output, "def456")
	})
}
