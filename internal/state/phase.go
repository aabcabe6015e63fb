package state

import "github.com/five82/shelf/internal/catalog"

// Phase is what the book area of a view should show.
type Phase int

const (
	PhaseLoading Phase = iota
	PhaseError
	PhaseEmpty
	PhasePopulated
)

// Messages shown for the non-grid phases.
const (
	LoadingMessage = "Loading books..."
	EmptyMessage   = "No books found matching your criteria."
)

func (p Phase) String() string {
	switch p {
	case PhaseLoading:
		return "loading"
	case PhaseError:
		return "error"
	case PhaseEmpty:
		return "empty"
	default:
		return "populated"
	}
}

// Phase selects the book-area state for the visible books, checked in
// fixed priority: loading, error, empty, populated.
func (s Snapshot) Phase(visible []catalog.Book) Phase {
	switch {
	case s.Loading:
		return PhaseLoading
	case s.HasError():
		return PhaseError
	case len(visible) == 0:
		return PhaseEmpty
	default:
		return PhasePopulated
	}
}

// PhaseMessage returns the text for non-populated phases.
func (s Snapshot) PhaseMessage(p Phase) string {
	switch p {
	case PhaseLoading:
		return LoadingMessage
	case PhaseError:
		return "Error: " + s.ErrorText()
	case PhaseEmpty:
		return EmptyMessage
	default:
		return ""
	}
}
