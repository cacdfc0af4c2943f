package sheetdb

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"golang.org/x/oauth2/google"
	"google.golang.org/api/googleapi"
	"google.golang.org/api/option"
	"google.golang.org/api/sheets/v4"
)

// GoogleStore reads and writes a single Google spreadsheet through the
// Sheets v4 API using service-account credentials.
type GoogleStore struct {
	svc           *sheets.Service
	spreadsheetID string
}

func NewGoogleStore(ctx context.Context, credentialsJSON []byte, spreadsheetID string) (*GoogleStore, error) {
	creds, err := google.CredentialsFromJSON(ctx, credentialsJSON, sheets.SpreadsheetsScope)
	if err != nil {
		return nil, fmt.Errorf("failed to parse service account credentials: %w", err)
	}

	svc, err := sheets.NewService(ctx, option.WithCredentials(creds))
	if err != nil {
		return nil, fmt.Errorf("failed to create sheets client: %w", err)
	}

	return &GoogleStore{
		svc:           svc,
		spreadsheetID: spreadsheetID,
	}, nil
}

// GetRange implements Store.
func (s *GoogleStore) GetRange(ctx context.Context, ref string) ([][]string, error) {
	resp, err := s.svc.Spreadsheets.Values.Get(s.spreadsheetID, ref).Context(ctx).Do()
	if err != nil {
		return nil, mapGoogleError(err)
	}

	rows := make([][]string, 0, len(resp.Values))
	for _, raw := range resp.Values {
		row := make([]string, len(raw))
		for i, cell := range raw {
			row[i] = fmt.Sprint(cell)
		}
		rows = append(rows, row)
	}
	return rows, nil
}

// AppendRow implements Store.
func (s *GoogleStore) AppendRow(ctx context.Context, ref string, row []string) error {
	vr := &sheets.ValueRange{Values: [][]interface{}{toInterfaceRow(row)}}
	_, err := s.svc.Spreadsheets.Values.Append(s.spreadsheetID, ref, vr).
		ValueInputOption("RAW").
		Context(ctx).
		Do()
	if err != nil {
		return mapGoogleError(err)
	}
	return nil
}

// UpdateRow implements Store.
func (s *GoogleStore) UpdateRow(ctx context.Context, ref string, row []string) error {
	vr := &sheets.ValueRange{Values: [][]interface{}{toInterfaceRow(row)}}
	_, err := s.svc.Spreadsheets.Values.Update(s.spreadsheetID, ref, vr).
		ValueInputOption("RAW").
		Context(ctx).
		Do()
	if err != nil {
		return mapGoogleError(err)
	}
	return nil
}

// SheetExists implements Store.
func (s *GoogleStore) SheetExists(ctx context.Context, title string) (bool, error) {
	meta, err := s.svc.Spreadsheets.Get(s.spreadsheetID).
		Fields("sheets.properties.title").
		Context(ctx).
		Do()
	if err != nil {
		return false, mapGoogleError(err)
	}
	for _, sheet := range meta.Sheets {
		if sheet.Properties != nil && sheet.Properties.Title == title {
			return true, nil
		}
	}
	return false, nil
}

func toInterfaceRow(row []string) []interface{} {
	out := make([]interface{}, len(row))
	for i, cell := range row {
		out[i] = cell
	}
	return out
}

// mapGoogleError folds API errors into the store sentinels so callers can
// branch with errors.Is instead of inspecting googleapi codes.
func mapGoogleError(err error) error {
	var gerr *googleapi.Error
	if !errors.As(err, &gerr) {
		return err
	}
	switch {
	case gerr.Code == 403:
		return fmt.Errorf("%w: %s", ErrPermissionDenied, gerr.Message)
	case gerr.Code == 400 && strings.Contains(gerr.Message, "Unable to parse range"):
		return fmt.Errorf("%w: %s", ErrRangeUnparseable, gerr.Message)
	case gerr.Code == 404:
		return fmt.Errorf("%w: %s", ErrSheetNotFound, gerr.Message)
	default:
		return err
	}
}
