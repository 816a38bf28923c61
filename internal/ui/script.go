package ui

import "fmt"

// Script is a deterministic UI for tests and the scenario harness. It
// replays a fixed list of responses and records everything it was
// asked or shown.
type Script struct {
	// Responses are consumed one per PromptChoice call.
	Responses []Response

	// ShowTables makes the engine build chance tables; they are
	// captured in Tables rather than rendered.
	ShowTables bool

	// Recorded interactions.
	Prompted []string
	Messages []string
	Tables   []Table

	next int
}

// NewScript builds a scripted UI that will answer with the given
// responses in order.
func NewScript(responses ...Response) *Script {
	return &Script{Responses: responses}
}

// PromptChoice records the candidate and replays the next scripted
// response. Running past the script is a test bug and fails loudly.
func (s *Script) PromptChoice(choice string) (Response, error) {
	s.Prompted = append(s.Prompted, choice)
	if s.next >= len(s.Responses) {
		return Abort, fmt.Errorf("script exhausted: unexpected prompt for %q", choice)
	}
	r := s.Responses[s.next]
	s.next++
	return r, nil
}

// Info records the message.
func (s *Script) Info(message string) {
	s.Messages = append(s.Messages, message)
}

// TablesEnabled reports whether the script captures chance tables.
func (s *Script) TablesEnabled() bool {
	return s.ShowTables
}

// ShowTable captures the table.
func (s *Script) ShowTable(table Table) {
	s.Tables = append(s.Tables, table)
}
