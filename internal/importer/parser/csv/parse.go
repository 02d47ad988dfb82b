// Package csvimport parses CSV exports from Brazilian banking apps into
// transaction previews.
//
// The expected format is a header line followed by records of the form
//
//	date,description,amount,paymentMethod
//
// with the date in DD/MM/YYYY format. Negative amounts become expenses,
// positive amounts become incomes.
package csvimport

import (
	"bytes"
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"strings"
	"time"
	"unicode/utf8"

	"github.com/google/uuid"
	"github.com/meubolso/backend/internal/importer"
	"github.com/meubolso/backend/internal/importer/helpers"
	"github.com/meubolso/backend/internal/models"
	"github.com/shopspring/decimal"
	"golang.org/x/text/encoding/charmap"
)

// The column indexes of the CSV files.
const (
	Date = iota
	Description
	Amount
	PaymentMethod
)

// Parse parses a CSV export for the given account.
func Parse(f io.Reader, account models.Account) ([]importer.TransactionPreview, error) {
	raw, err := io.ReadAll(f)
	if err != nil {
		return []importer.TransactionPreview{}, fmt.Errorf("could not read the CSV: %w", err)
	}

	// Some banking apps export Windows-1252 instead of UTF-8. Decode it so
	// accented descriptions survive the import.
	if !utf8.Valid(raw) {
		raw, err = charmap.Windows1252.NewDecoder().Bytes(raw)
		if err != nil {
			return []importer.TransactionPreview{}, fmt.Errorf("could not decode the CSV: %w", err)
		}
	}

	reader := csv.NewReader(bytes.NewReader(raw))

	// We can reuse the array in the background to improve performance
	reader.ReuseRecord = true

	var transactions []importer.TransactionPreview

	// Skip the header line
	_, err = reader.Read()
	if err == io.EOF {
		return []importer.TransactionPreview{}, nil
	}

	for {
		record, err := reader.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return csvReadError(reader, fmt.Errorf("could not read line in CSV: %w", err))
		}

		date, err := time.Parse("02/01/2006", record[Date])
		if err != nil {
			return csvReadError(reader, fmt.Errorf("could not parse time: %w", err))
		}

		amount, err := decimal.NewFromString(record[Amount])
		if err != nil {
			return csvReadError(reader, errors.New("amount could not be parsed to a decimal"))
		}

		if amount.IsZero() {
			return csvReadError(reader, errors.New("the amount for a transaction must not be 0"))
		}

		t := importer.TransactionPreview{
			Transaction: models.Transaction{
				Date:          date,
				Description:   record[Description],
				PaymentMethod: record[PaymentMethod],
				ImportHash:    helpers.Sha256String(strings.Join(record, ",")),
			},
		}

		if account.ID != uuid.Nil {
			id := account.ID
			t.Transaction.AccountID = &id
		}

		if amount.IsNegative() {
			t.Transaction.Type = models.TransactionTypeExpense
			t.Transaction.Amount = amount.Neg()
		} else {
			t.Transaction.Type = models.TransactionTypeIncome
			t.Transaction.Amount = amount
		}

		transactions = append(transactions, t)
	}

	return transactions, nil
}

// csvReadError returns an error including the line of the input
// the error occurred in in the message.
func csvReadError(r *csv.Reader, err error) ([]importer.TransactionPreview, error) {
	// always use the first field, we are only interested in the line
	line, _ := r.FieldPos(1)

	return []importer.TransactionPreview{}, fmt.Errorf("error in line %d of the CSV: %w", line, err)
}
