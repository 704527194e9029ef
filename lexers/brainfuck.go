package lexers

import "github.com/reusee/esotape/insts"

type BrainfuckLexer struct{}

var _ Lexer = BrainfuckLexer{}

func (BrainfuckLexer) Lex(source string) (insts.Program, error) {
	program := make(insts.Program, 0, len(source))
	for i := 0; i < len(source); i++ {
		switch source[i] {
		case '>':
			program = append(program, insts.Right)
		case '<':
			program = append(program, insts.Left)
		case '+':
			program = append(program, insts.Incr)
		case '-':
			program = append(program, insts.Decr)
		case '.':
			program = append(program, insts.Out)
		case ',':
			program = append(program, insts.In)
		case '[':
			program = append(program, insts.Begin)
		case ']':
			program = append(program, insts.End)
		}
	}
	return program, nil
}
