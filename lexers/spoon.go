package lexers

import "github.com/reusee/esotape/insts"

// SpoonLexer reads a prefix code of bits. Codes are, in order of length:
// 1 Incr, 010 Right, 011 Left, 000 Decr, 0011 End, 00100 Begin,
// 001010 Out, 0010110 In, 00101110 Print, 00101111 Exit.
type SpoonLexer struct{}

var _ Lexer = SpoonLexer{}

const spoonWordSize = 8

func (SpoonLexer) Lex(source string) (insts.Program, error) {
	var program insts.Program
	var word [spoonWordSize]byte
	head := 0

	for i := 0; i < len(source); i++ {
		c := source[i]
		if c != '0' && c != '1' {
			continue
		}
		word[head] = c

		inst, ok := spoonMatch(&word, head)
		if ok {
			program = append(program, inst)
			head = 0
			continue
		}
		head++
		if head == spoonWordSize {
			// not reachable with a complete prefix code
			head = 0
		}
	}

	return program, nil
}

func spoonMatch(word *[spoonWordSize]byte, head int) (insts.Inst, bool) {
	switch head {
	case 0:
		if word[0] == '1' {
			return insts.Incr, true
		}
	case 2:
		switch string(word[1:3]) {
		case "10":
			return insts.Right, true
		case "11":
			return insts.Left, true
		case "00":
			return insts.Decr, true
		}
	case 3:
		if word[3] == '1' {
			return insts.End, true
		}
	case 4:
		if word[4] == '0' {
			return insts.Begin, true
		}
	case 5:
		if word[5] == '0' {
			return insts.Out, true
		}
	case 6:
		if word[6] == '0' {
			return insts.In, true
		}
	case 7:
		if word[7] == '0' {
			return insts.Print, true
		}
		return insts.Exit, true
	}
	return 0, false
}
