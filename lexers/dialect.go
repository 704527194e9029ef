package lexers

import (
	"fmt"
	"strings"
)

type Dialect uint8

const (
	Brainfuck Dialect = iota
	Ook
	Spoon
)

var Dialects = []Dialect{
	Brainfuck,
	Ook,
	Spoon,
}

func (d Dialect) String() string {
	switch d {
	case Brainfuck:
		return "brainfuck"
	case Ook:
		return "ook"
	case Spoon:
		return "spoon"
	}
	return fmt.Sprintf("Dialect(%d)", uint8(d))
}

// ParseDialect accepts "ook", "-ook" and "--ook" alike, ignoring case.
func ParseDialect(str string) (Dialect, error) {
	name := strings.ToLower(strings.TrimLeft(strings.TrimSpace(str), "-"))
	for _, d := range Dialects {
		if d.String() == name {
			return d, nil
		}
	}
	return 0, fmt.Errorf("unknown dialect %q, should be brainfuck, ook or spoon", str)
}

// For returns the lexer of the dialect.
func For(d Dialect) (Lexer, error) {
	switch d {
	case Brainfuck:
		return BrainfuckLexer{}, nil
	case Ook:
		return OokLexer{}, nil
	case Spoon:
		return SpoonLexer{}, nil
	}
	return nil, fmt.Errorf("no lexer for %v", d)
}
