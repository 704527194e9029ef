package insts

import (
	"fmt"
	"strings"
)

type Inst uint8

const (
	Right Inst = iota
	Left
	Incr
	Decr
	Out
	In
	Begin
	End
	Exit
	Print

	numInsts
)

var names = [numInsts]string{
	Right: "Right",
	Left:  "Left",
	Incr:  "Incr",
	Decr:  "Decr",
	Out:   "Out",
	In:    "In",
	Begin: "Begin",
	End:   "End",
	Exit:  "Exit",
	Print: "Print",
}

// Exit and Print have no brainfuck spelling; '!' and '#' are the usual debug extensions.
var brainfuckChars = [numInsts]byte{
	Right: '>',
	Left:  '<',
	Incr:  '+',
	Decr:  '-',
	Out:   '.',
	In:    ',',
	Begin: '[',
	End:   ']',
	Exit:  '!',
	Print: '#',
}

func (i Inst) Valid() bool {
	return i < numInsts
}

func (i Inst) String() string {
	if !i.Valid() {
		return fmt.Sprintf("Inst(%d)", uint8(i))
	}
	return names[i]
}

func (i Inst) Brainfuck() byte {
	if !i.Valid() {
		return '?'
	}
	return brainfuckChars[i]
}

type Program []Inst

func (p Program) String() string {
	var sb strings.Builder
	sb.WriteByte('[')
	for i, inst := range p {
		if i > 0 {
			sb.WriteByte(' ')
		}
		sb.WriteString(inst.String())
	}
	sb.WriteByte(']')
	return sb.String()
}

func (p Program) Brainfuck() string {
	buf := make([]byte, len(p))
	for i, inst := range p {
		buf[i] = inst.Brainfuck()
	}
	return string(buf)
}
