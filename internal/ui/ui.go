// Package ui defines the interaction boundary between the pick engine
// and a human (or a test script).
//
// The engine never touches a console directly: it calls a UI to present
// candidates and show chance tables. Production uses Console; tests use
// Script, which replays canned responses and records what it was shown.
package ui

// Response is the user's answer to a presented candidate.
type Response int

const (
	// Accept takes the candidate and ends the invocation.
	Accept Response = iota

	// Decline rejects the candidate; it is excluded for the rest of
	// this invocation.
	Decline

	// Abort cancels the whole invocation without mutating state.
	Abort
)

// String returns the response name for logs.
func (r Response) String() string {
	switch r {
	case Accept:
		return "accept"
	case Decline:
		return "decline"
	case Abort:
		return "abort"
	default:
		return "unknown"
	}
}

// Row is one line of a chance table. Chosen marks the row holding the
// currently offered candidate so renderers can highlight it.
type Row struct {
	Cells  []string
	Chosen bool
}

// Table is a chance table built by the engine for one offer: the
// candidates still in play and, where the model is probabilistic, each
// one's chance of being offered.
type Table struct {
	Header []string
	Rows   []Row
	Footer []string
}

// UI is the capability the engine calls to interact with the user.
//
// PromptChoice blocks until the user answers; it is the invocation's
// only suspension point. TablesEnabled is a small optimization: chance
// tables are only built when the UI will actually show them.
type UI interface {
	PromptChoice(choice string) (Response, error)
	Info(message string)
	TablesEnabled() bool
	ShowTable(table Table)
}
