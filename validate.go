package macrocss

import (
	"fmt"
	"io"

	"github.com/tdewolff/parse/v2"
	"github.com/tdewolff/parse/v2/css"
)

// ValidateCss token-checks generated CSS: balanced blocks, no lexer errors.
// It is a structural sanity gate over the generator's own output, used by
// the CLI --check flag; it does not validate property semantics.
func ValidateCss(text string) error {
	input := parse.NewInputString(text)
	lexer := css.NewLexer(input)
	depth := 0

	for {
		tt, _ := lexer.Next()
		switch tt {
		case css.ErrorToken:
			if err := lexer.Err(); err != io.EOF {
				return fmt.Errorf("css lex error at offset %d: %w", input.Offset(), err)
			}
			if depth != 0 {
				return fmt.Errorf("unbalanced blocks: %d unclosed at end of output", depth)
			}
			return nil
		case css.LeftBraceToken:
			depth++
		case css.RightBraceToken:
			depth--
			if depth < 0 {
				return fmt.Errorf("unbalanced blocks: unexpected } at offset %d", input.Offset())
			}
		}
	}
}
