// Package action defines the fixed catalog of operations the knowledge
// provider test server understands. The catalog is static: every action,
// its description, and whether it carries a payload body are known at
// compile time, and the command line only ever selects from this set.
package action

import (
	"fmt"
	"strings"

	kgerrors "kgdebug/cli/internal/errors"
)

// Action names a server-side operation.
type Action string

const (
	ClearAll        Action = "clear-all"
	CreateDatastore Action = "create-datastore"
	DeleteDatastore Action = "delete-datastore"
	ImportPrefixes  Action = "import-prefixes"
	ImportSchemas   Action = "import-schemas"
	ImportRules     Action = "import-rules"
	ImportAxioms    Action = "import-axioms"
	Insert          Action = "insert"
	Delete          Action = "delete"
	Query           Action = "query"
	GetTriplesCount Action = "get-triples-count"
)

// Entry pairs an action with its human-readable description.
type Entry struct {
	Action      Action
	Description string
}

// Catalog lists every supported action in display order.
var Catalog = []Entry{
	{ClearAll, "clear all data in server"},
	{CreateDatastore, "create the datastore"},
	{DeleteDatastore, "delete the datastore"},
	{ImportPrefixes, "import rules/facts and prefixes"},
	{ImportSchemas, "import rules/facts"},
	{ImportRules, "import rules/facts"},
	{ImportAxioms, "run TBoxReasoning"},
	{Insert, "import rules/facts"},
	{Delete, "delete rules/facts"},
	{Query, "run the query"},
	{GetTriplesCount, "get the number of triples"},
}

// Parse validates a raw action name from the command line. It fails before
// any network I/O when the name is outside the catalog.
func Parse(raw string) (Action, error) {
	for _, e := range Catalog {
		if string(e.Action) == raw {
			return e.Action, nil
		}
	}
	return "", kgerrors.New(kgerrors.UnsupportedAction, fmt.Sprintf("unknown action %q", raw))
}

// NeedsInput reports whether the action streams a payload body after its
// command line. import-axioms runs entirely server-side and takes none.
func (a Action) NeedsInput() bool {
	switch a {
	case ImportPrefixes, ImportSchemas, ImportRules, Insert, Delete, Query:
		return true
	}
	return false
}

// Names returns the action names in catalog order, for flag completion.
func Names() []string {
	names := make([]string, len(Catalog))
	for i, e := range Catalog {
		names[i] = string(e.Action)
	}
	return names
}

// Describe renders the aligned action listing embedded in the command help.
func Describe() string {
	width := 0
	for _, e := range Catalog {
		if len(e.Action) > width {
			width = len(e.Action)
		}
	}
	lines := make([]string, 0, len(Catalog)+1)
	lines = append(lines, "available actions:")
	for _, e := range Catalog {
		lines = append(lines, fmt.Sprintf("%*s : %s", width+4, e.Action, e.Description))
	}
	return strings.Join(lines, "\n")
}
