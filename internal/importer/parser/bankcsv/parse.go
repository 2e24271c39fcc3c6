// Package bankcsv parses generic bank export CSV files.
//
// The file needs a header row with the columns "date", "description"
// and "amount", matched case-insensitively. A "category" column is
// optional. Additional columns are ignored.
package bankcsv

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"regexp"
	"strings"

	"github.com/spendlog/backend/internal/importer"
	"github.com/spendlog/backend/internal/types"

	"github.com/shopspring/decimal"
)

var (
	ErrNoHeader      = errors.New("the file does not contain a header row")
	ErrMissingColumn = errors.New("the header row is missing a required column")
)

// currencySymbols are stripped from the beginning of amounts before
// parsing, so that exports like "$3.50" work.
const currencySymbols = "$€£¥"

// columns holds the resolved positions of the recognized columns.
type columns struct {
	date        int
	description int
	amount      int
	category    int // -1 when the file has no category column
}

// Parse reads a CSV file and returns the parsed rows along with the
// rows that could not be parsed. A single bad row never aborts the
// import, only an unreadable file or an unusable header do.
func Parse(f io.Reader) ([]importer.Row, []importer.Rejection, error) {
	reader := csv.NewReader(f)

	// We can reuse the array in the background to improve performance
	reader.ReuseRecord = true

	header, err := reader.Read()
	if err == io.EOF {
		return nil, nil, ErrNoHeader
	}
	if err != nil {
		return nil, nil, fmt.Errorf("could not read the header row: %w", err)
	}

	cols, err := resolveColumns(header)
	if err != nil {
		return nil, nil, err
	}

	var rows []importer.Row
	var rejected []importer.Rejection

	// The header is not a data row, numbering starts afterwards
	number := 0

	for {
		record, err := reader.Read()
		if err == io.EOF {
			break
		}

		number++

		// A row with the wrong number of fields is rejected, the
		// remaining rows are still processed
		if err != nil {
			rejected = append(rejected, importer.Rejection{
				Row:    number,
				Status: importer.StatusRejectedInvalid,
				Reason: rowError(err),
			})
			continue
		}

		date, err := types.ParseDate(strings.TrimSpace(record[cols.date]))
		if err != nil {
			rejected = append(rejected, importer.Rejection{
				Row:    number,
				Status: importer.StatusRejectedInvalid,
				Reason: fmt.Sprintf("could not parse date: %q is not a valid YYYY-MM-DD date", strings.TrimSpace(record[cols.date])),
			})
			continue
		}

		amount, err := parseAmount(record[cols.amount])
		if err != nil {
			rejected = append(rejected, importer.Rejection{
				Row:    number,
				Status: importer.StatusRejectedInvalid,
				Reason: fmt.Sprintf("could not parse amount: %s", err),
			})
			continue
		}

		row := importer.Row{
			Row:         number,
			Date:        date,
			Description: strings.TrimSpace(record[cols.description]),
			Amount:      amount,
		}

		if cols.category != -1 {
			row.Category = strings.TrimSpace(record[cols.category])
		}

		rows = append(rows, row)
	}

	return rows, rejected, nil
}

// resolveColumns matches the header fields against the recognized
// column names.
func resolveColumns(header []string) (columns, error) {
	cols := columns{date: -1, description: -1, amount: -1, category: -1}

	for i, field := range header {
		switch strings.ToLower(strings.TrimSpace(field)) {
		case "date":
			cols.date = i
		case "description":
			cols.description = i
		case "amount":
			cols.amount = i
		case "category":
			cols.category = i
		}
	}

	required := []struct {
		name  string
		index int
	}{
		{"date", cols.date},
		{"description", cols.description},
		{"amount", cols.amount},
	}

	for _, col := range required {
		if col.index == -1 {
			return columns{}, fmt.Errorf("%w: %s", ErrMissingColumn, col.name)
		}
	}

	return cols, nil
}

// thousandsSeparated matches amounts like "1,299.00" where the commas
// group digits in threes.
var thousandsSeparated = regexp.MustCompile(`^\d{1,3}(,\d{3})+(\.\d+)?$`)

// parseAmount parses a decimal amount string, stripping an optional
// leading currency symbol and thousands separators.
func parseAmount(s string) (decimal.Decimal, error) {
	s = strings.TrimSpace(s)
	for _, symbol := range currencySymbols {
		s = strings.TrimSpace(strings.TrimPrefix(s, string(symbol)))
	}

	if thousandsSeparated.MatchString(s) {
		s = strings.ReplaceAll(s, ",", "")
	}

	amount, err := decimal.NewFromString(s)
	if err != nil {
		return decimal.Decimal{}, fmt.Errorf("%q is not a decimal number", s)
	}

	if amount.IsNegative() {
		return decimal.Decimal{}, fmt.Errorf("%q is negative, amounts must not be negative", s)
	}

	return amount, nil
}

// rowError turns a csv.Reader error into a readable reason.
func rowError(err error) string {
	var parseErr *csv.ParseError
	if errors.As(err, &parseErr) {
		return fmt.Sprintf("malformed CSV row: %s", parseErr.Err)
	}

	return fmt.Sprintf("could not read row: %s", err)
}
