package famfin

import (
	"context"
	"encoding/json"
	"fmt"
	"io"

	"github.com/PaesslerAG/jsonpath"
)

// SnapshotPaths locates the record lists inside a snapshot document, as
// JSONPath expressions. An empty path means the list is absent.
type SnapshotPaths struct {
	Accounts          string
	Transactions      string
	Trips             string
	ProjectedAccounts string
}

// DefaultSnapshotPaths matches a document with one top level array per record kind.
var DefaultSnapshotPaths = SnapshotPaths{
	Accounts:          "$.accounts",
	Transactions:      "$.transactions",
	Trips:             "$.trips",
	ProjectedAccounts: "$.projectedAccounts",
}

// Snapshot is the decoded, unvalidated content of a snapshot document.
type Snapshot struct {
	Accounts          []Account
	Transactions      []Transaction
	Trips             []Trip
	ProjectedAccounts []Account
}

// Input returns the dashboard input for this snapshot.
func (s Snapshot) Input() Input {
	return Input{
		Accounts:          s.Accounts,
		Transactions:      s.Transactions,
		Trips:             s.Trips,
		ProjectedAccounts: s.ProjectedAccounts,
	}
}

// DecodeSnapshot reads a JSON document and decodes the records found at paths.
//
// A path that does not match anything gives an empty list. Elements that are
// not JSON objects are decoded as empty records and fail validation later.
func DecodeSnapshot(r io.Reader, paths SnapshotPaths) (Snapshot, error) {
	dec := json.NewDecoder(r)
	dec.UseNumber()
	var doc any
	if err := dec.Decode(&doc); err != nil {
		return Snapshot{}, fmt.Errorf("could not decode snapshot: %w", err)
	}

	var s Snapshot
	accounts, err := records(doc, paths.Accounts)
	if err != nil {
		return s, err
	}
	transactions, err := records(doc, paths.Transactions)
	if err != nil {
		return s, err
	}
	trips, err := records(doc, paths.Trips)
	if err != nil {
		return s, err
	}
	projected, err := records(doc, paths.ProjectedAccounts)
	if err != nil {
		return s, err
	}

	for _, raw := range accounts {
		s.Accounts = append(s.Accounts, DecodeAccount(raw))
	}
	for _, raw := range transactions {
		s.Transactions = append(s.Transactions, DecodeTransaction(raw))
	}
	for _, raw := range trips {
		s.Trips = append(s.Trips, DecodeTrip(raw))
	}
	for _, raw := range projected {
		s.ProjectedAccounts = append(s.ProjectedAccounts, DecodeAccount(raw))
	}
	return s, nil
}

// records evaluates path on doc and returns the matched objects.
func records(doc any, path string) ([]Raw, error) {
	if path == "" {
		return nil, nil
	}
	eval, err := jsonpath.New(path)
	if err != nil {
		return nil, fmt.Errorf("invalid snapshot path %q: %w", path, err)
	}
	val, err := eval(context.Background(), doc)
	if err != nil {
		// unknown keys are reported as evaluation errors
		return nil, nil
	}

	var list []any
	switch v := val.(type) {
	case nil:
		return nil, nil
	case []any:
		list = v
	default:
		list = []any{v}
	}
	// a wildcard path over an array of arrays yields a list of one list.
	if len(list) == 1 {
		if inner, ok := list[0].([]any); ok {
			list = inner
		}
	}

	res := make([]Raw, 0, len(list))
	for _, item := range list {
		m, _ := item.(map[string]any)
		res = append(res, m)
	}
	return res, nil
}
