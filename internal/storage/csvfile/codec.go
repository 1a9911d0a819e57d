package csvfile

import (
	"fmt"
	"strconv"

	"github.com/PudgyPigeon/MockBankSystem/internal/model"
)

// Fixed table schema, in column order
var header = []string{"Username", "Password", "Balance"}

// decodeTable converts raw CSV records (header included) into account rows.
// Column types are coerced explicitly: username and digest stay text, the
// balance column is parsed as a 64-bit float. A duplicate username is a
// table integrity failure, not a first-match-wins lookup.
func decodeTable(records [][]string) ([]model.Account, error) {
	if len(records) == 0 {
		return nil, fmt.Errorf("missing header row: %w", model.ErrStoreUnavailable)
	}
	if err := checkHeader(records[0]); err != nil {
		return nil, err
	}

	accounts := make([]model.Account, 0, len(records)-1)
	seen := make(map[model.Username]struct{}, len(records)-1)

	for i, rec := range records[1:] {
		if len(rec) != len(header) {
			return nil, fmt.Errorf("row %d has %d columns, want %d: %w",
				i+1, len(rec), len(header), model.ErrStoreUnavailable)
		}

		username := model.Username(rec[0])
		if _, dup := seen[username]; dup {
			return nil, fmt.Errorf("row %d duplicates username %q: %w",
				i+1, rec[0], model.ErrStoreUnavailable)
		}
		seen[username] = struct{}{}

		balance, err := strconv.ParseFloat(rec[2], 64)
		if err != nil {
			return nil, fmt.Errorf("row %d has non-numeric balance: %w",
				i+1, model.ErrStoreUnavailable)
		}

		accounts = append(accounts, model.Account{
			Username:       username,
			PasswordDigest: rec[1],
			Balance:        balance,
		})
	}

	return accounts, nil
}

// encodeTable converts account rows into CSV records with the header row.
// Balances use the shortest float representation that round-trips exactly.
func encodeTable(accounts []model.Account) [][]string {
	records := make([][]string, 0, len(accounts)+1)
	records = append(records, header)
	for _, a := range accounts {
		records = append(records, []string{
			string(a.Username),
			a.PasswordDigest,
			strconv.FormatFloat(a.Balance, 'f', -1, 64),
		})
	}
	return records
}

func checkHeader(row []string) error {
	if len(row) != len(header) {
		return fmt.Errorf("header has %d columns, want %d: %w",
			len(row), len(header), model.ErrStoreUnavailable)
	}
	for i, col := range header {
		if row[i] != col {
			return fmt.Errorf("header column %d is %q, want %q: %w",
				i, row[i], col, model.ErrStoreUnavailable)
		}
	}
	return nil
}
