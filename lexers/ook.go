package lexers

import "github.com/reusee/esotape/insts"

// OokLexer reads instructions spelled as pairs of "Ook." "Ook?" "Ook!" words.
type OokLexer struct{}

var _ Lexer = OokLexer{}

const ookPunctuations = ".?!"

var ookLetters = [...]rune{'O', 'o', 'k'}

func (OokLexer) Lex(source string) (insts.Program, error) {
	var program insts.Program
	// punctuation of the pending first word, 0 if none
	var first rune
	// position in the current word, 3 means waiting for punctuation
	head := 0
	pos := Pos{
		Line:   1,
		Column: 1,
	}

	for offset, r := range source {
		pos.Offset = offset

		switch r {

		case 'O', 'o', 'k':
			if head >= len(ookLetters) || ookLetters[head] != r {
				return nil, WithPos(UnexpectedCharacterError{
					Got:      r,
					Expected: ookExpected(head),
				}, pos)
			}
			head++

		case '.', '?', '!':
			if head != len(ookLetters) {
				return nil, WithPos(UnexpectedCharacterError{
					Got:      r,
					Expected: ookExpected(head),
				}, pos)
			}
			head = 0
			if first == 0 {
				first = r
				break
			}
			inst, err := ookPair(first, r)
			if err != nil {
				return nil, WithPos(err, pos)
			}
			program = append(program, inst)
			first = 0

		}

		if r == '\n' {
			pos.Line++
			pos.Column = 1
		} else {
			pos.Column++
		}
	}

	pos.Offset = len(source)
	if head != 0 {
		return nil, WithPos(ErrTruncatedWord, pos)
	}
	if first != 0 {
		return nil, WithPos(ErrUnpairedWord, pos)
	}

	return program, nil
}

func ookExpected(head int) string {
	if head < len(ookLetters) {
		return string(ookLetters[head])
	}
	return ookPunctuations
}

func ookPair(first, second rune) (insts.Inst, error) {
	switch [2]rune{first, second} {
	case [2]rune{'.', '?'}:
		return insts.Right, nil
	case [2]rune{'?', '.'}:
		return insts.Left, nil
	case [2]rune{'.', '.'}:
		return insts.Incr, nil
	case [2]rune{'!', '!'}:
		return insts.Decr, nil
	case [2]rune{'!', '.'}:
		return insts.Out, nil
	case [2]rune{'.', '!'}:
		return insts.In, nil
	case [2]rune{'!', '?'}:
		return insts.Begin, nil
	case [2]rune{'?', '!'}:
		return insts.End, nil
	case [2]rune{'?', '?'}:
		return insts.Exit, nil
	}
	return 0, ErrInternal
}
