// Package prose adapts the jdkato/prose NLP engine (tokenization,
// sentence segmentation, Penn Treebank POS tagging) to the parsed
// document model, adding rule-based lemmatization and noun-phrase
// detection on top of the tagger output.
package prose

import (
	"fmt"
	"strings"

	engine "github.com/jdkato/prose/v2"

	"github.com/jeduden/cefrize/internal/nlp"
)

// Parser is the default nlp.Parser backed by the prose engine. The
// zero value is ready to use and safe for concurrent calls.
type Parser struct{}

// New returns a prose-backed parser.
func New() *Parser {
	return &Parser{}
}

// Parse segments, tokenizes, and tags the text, then derives lemmas
// and noun-phrase spans. A failure in the underlying engine is fatal
// for the call.
func (p *Parser) Parse(text string) (*nlp.Document, error) {
	if strings.TrimSpace(text) == "" {
		return &nlp.Document{}, nil
	}

	seg, err := engine.NewDocument(text, engine.WithTagging(false), engine.WithExtraction(false))
	if err != nil {
		return nil, fmt.Errorf("segmenting text: %w", err)
	}

	doc := &nlp.Document{}
	for _, sent := range seg.Sentences() {
		tagged, err := engine.NewDocument(sent.Text,
			engine.WithSegmentation(false), engine.WithExtraction(false))
		if err != nil {
			return nil, fmt.Errorf("tagging sentence: %w", err)
		}

		proseTokens := tagged.Tokens()
		tokens := make([]nlp.Token, 0, len(proseTokens))
		for _, pt := range proseTokens {
			tokens = append(tokens, nlp.Token{
				Surface: pt.Text,
				Lemma:   Lemma(pt.Text, pt.Tag),
				POS:     coarsePOS(pt.Tag, pt.Text),
				Tag:     pt.Tag,
				Dep:     nlp.RoleOther,
				Head:    -1,
			})
		}

		si := len(doc.Sentences)
		for _, np := range nounPhrases(tokens) {
			np.Sentence = si
			doc.NounPhrases = append(doc.NounPhrases, np)

			// Mark the span head's role and point members at it.
			head := np.End - 1
			tokens[head].Dep = np.Role
			for i := np.Start; i < head; i++ {
				tokens[i].Head = head
			}
		}
		doc.Sentences = append(doc.Sentences, nlp.Sentence{Tokens: tokens})
	}
	return doc, nil
}
