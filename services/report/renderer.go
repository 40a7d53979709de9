package report

import (
	"bytes"
	"encoding/csv"
	"fmt"
	"io"
	"sort"
	"strings"

	"github.com/logrusorgru/aurora"
	"github.com/olekukonko/tablewriter"

	"github.com/failman/failman/api"
)

// separator renders as a gmail-friendly horizontal line with padding
const separator = "<hr style='border:none;border-top:1px solid #ccc;margin:20px 0;'>"

// RenderCSV turns the rows into a csv document for spreadsheet consumption, in the
// order supplied
func RenderCSV(rows []api.ReportRow) (string, error) {

	var buffer bytes.Buffer
	writer := csv.NewWriter(&buffer)

	err := writer.Write([]string{"Branch", "Build", "Commit", "Status", "URL"})
	if err != nil {
		return "", err
	}

	for _, row := range rows {
		err = writer.Write([]string{row.Branch, row.BuilderName, row.Commit, row.Status, row.DetailURL})
		if err != nil {
			return "", err
		}
	}

	writer.Flush()

	return buffer.String(), writer.Error()
}

// RenderHTMLTable turns the rows into the html email body, one section per branch
func RenderHTMLTable(rows []api.ReportRow) string {

	// group rows by branch
	grouped := map[string][]api.ReportRow{}
	branches := []string{}
	for _, row := range rows {
		if _, ok := grouped[row.Branch]; !ok {
			branches = append(branches, row.Branch)
		}
		grouped[row.Branch] = append(grouped[row.Branch], row)
	}

	// branches render in byte-wise descending order
	sort.Sort(sort.Reverse(sort.StringSlice(branches)))

	htmlParts := []string{}
	for _, branch := range branches {
		rowsInBranch := grouped[branch]

		// builds sort by name ascending inside the branch, ignoring case
		sort.SliceStable(rowsInBranch, func(i, j int) bool {
			return strings.ToLower(rowsInBranch[i].BuilderName) < strings.ToLower(rowsInBranch[j].BuilderName)
		})

		htmlParts = append(htmlParts, fmt.Sprintf("<h3>Branch: %v</h3>", branch))
		htmlParts = append(htmlParts, separator)

		tableRows := []string{"<tr><th>Build</th><th>Commit</th><th>Status</th></tr>"}
		for _, row := range rowsInBranch {
			hyperlink := fmt.Sprintf("<a href=\"%v\">%v</a>", row.DetailURL, row.BuilderName)
			tableRows = append(tableRows, fmt.Sprintf("<tr><td>%v</td><td>%v</td><td>%v</td></tr>", hyperlink, row.Commit, row.Status))
		}

		htmlParts = append(htmlParts, fmt.Sprintf("<table border='1' cellpadding='4' cellspacing='0' style='border-collapse:collapse'>%v</table>", strings.Join(tableRows, "")))
		htmlParts = append(htmlParts, separator)
	}

	return strings.Join(htmlParts, "\n")
}

// RenderSummary writes a console table of the failed rows, so a run's outcome can be
// read from the cron logs without opening the email
func RenderSummary(rows []api.ReportRow, w io.Writer) {

	data := make([][]string, 0, len(rows))
	for _, row := range rows {
		data = append(data, []string{
			row.Branch,
			row.BuilderName,
			row.Commit,
			aurora.Red(row.Status).String(),
		})
	}

	table := tablewriter.NewWriter(w)
	table.SetHeader([]string{"Branch", "Build", "Commit", "Status"})
	table.SetBorder(false)
	table.AppendBulk(data)
	table.Render()
}
