package services

import (
	"context"
	"errors"
	"fmt"
	"time"

	"google.golang.org/api/option"
	"google.golang.org/api/sheets/v4"

	"shootbook/pkg/utils"
)

var ErrLedgerDisabled = errors.New("ledger not configured")

// LedgerColumns is the header of the order sheet, in column order.
var LedgerColumns = []string{
	"Order ID", "Phone", "Package", "Outfits", "Amount", "Hairstyle", "Makeup",
	"Background", "Status", "Timestamp", "Shoot Type", "Add-ons", "Notes", "Photo Status",
}

// LedgerRow is one append-only line of the order sheet.
type LedgerRow struct {
	OrderID     string
	Phone       string
	Package     string
	Outfits     string
	Amount      string
	Hairstyle   string
	Makeup      string
	Background  string
	Status      string
	Timestamp   time.Time
	ShootType   string
	AddOns      string
	Notes       string
	PhotoStatus string
}

// Values renders the row for a USER_ENTERED append. Text cells are
// escaped so customer input is never evaluated as a formula.
func (r LedgerRow) Values() []interface{} {
	return []interface{}{
		ledgerText(r.OrderID),
		ledgerText(r.Phone),
		ledgerText(r.Package),
		ledgerText(r.Outfits),
		r.Amount,
		ledgerText(r.Hairstyle),
		ledgerText(r.Makeup),
		ledgerText(r.Background),
		ledgerText(r.Status),
		utils.FormatLedgerTime(r.Timestamp),
		ledgerText(r.ShootType),
		ledgerText(r.AddOns),
		ledgerText(r.Notes),
		ledgerText(r.PhotoStatus),
	}
}

// ledgerText forces a cell to plain text when Sheets would otherwise parse
// it as a formula.
func ledgerText(s string) string {
	if s == "" {
		return s
	}
	switch s[0] {
	case '=', '+', '-', '@', '\t', '\r':
		return "'" + s
	}
	return s
}

type LedgerWriter interface {
	Append(ctx context.Context, row LedgerRow) error
}

type disabledLedger struct{}

func NewDisabledLedger() LedgerWriter { return disabledLedger{} }

func (disabledLedger) Append(context.Context, LedgerRow) error { return ErrLedgerDisabled }

type sheetsLedger struct {
	values        *sheets.SpreadsheetsValuesService
	spreadsheetID string
	sheetRange    string
}

// NewSheetsLedger appends rows to a Google spreadsheet using a service
// account. Extra client options are appended after the credentials.
func NewSheetsLedger(ctx context.Context, credentialsJSON, spreadsheetID, sheetRange string, opts ...option.ClientOption) (LedgerWriter, error) {
	if spreadsheetID == "" {
		return nil, ErrLedgerDisabled
	}
	clientOpts := []option.ClientOption{option.WithScopes(sheets.SpreadsheetsScope)}
	if credentialsJSON != "" {
		clientOpts = append(clientOpts, option.WithCredentialsJSON([]byte(credentialsJSON)))
	}
	clientOpts = append(clientOpts, opts...)

	srv, err := sheets.NewService(ctx, clientOpts...)
	if err != nil {
		return nil, fmt.Errorf("sheets client init: %w", err)
	}
	return &sheetsLedger{
		values:        srv.Spreadsheets.Values,
		spreadsheetID: spreadsheetID,
		sheetRange:    sheetRange,
	}, nil
}

func (l *sheetsLedger) Append(ctx context.Context, row LedgerRow) error {
	vr := &sheets.ValueRange{Values: [][]interface{}{row.Values()}}
	_, err := l.values.Append(l.spreadsheetID, l.sheetRange, vr).
		ValueInputOption("USER_ENTERED").
		InsertDataOption("INSERT_ROWS").
		Context(ctx).
		Do()
	if err != nil {
		return fmt.Errorf("sheets append %s: %w", row.OrderID, err)
	}
	return nil
}
