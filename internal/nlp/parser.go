package nlp

// Parser turns raw text into a parsed Document. Implementations wrap
// an external NLP engine; a parse failure is fatal for the call and is
// returned as an error, never as a partial document.
type Parser interface {
	Parse(text string) (*Document, error)
}
