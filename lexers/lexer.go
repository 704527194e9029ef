package lexers

import "github.com/reusee/esotape/insts"

// Lexer translates a dialect's source into the shared instruction set.
// Characters outside the dialect's grammar are skipped.
type Lexer interface {
	Lex(source string) (insts.Program, error)
}

type LexerFunc func(source string) (insts.Program, error)

var _ Lexer = LexerFunc(nil)

func (l LexerFunc) Lex(source string) (insts.Program, error) {
	return l(source)
}

// Lex lexes source with the lexer of dialect d.
func Lex(d Dialect, source string) (insts.Program, error) {
	lexer, err := For(d)
	if err != nil {
		return nil, err
	}
	return lexer.Lex(source)
}
