package debugs

import (
	"github.com/reusee/esotape/machines"
)

// MachineGlobals exposes the state of m to a tap.
// The tape is cut after its last nonzero cell.
func MachineGlobals(m *machines.Machine, status machines.Status) map[string]any {
	tape := m.Tape.AppendTo(nil)
	end := len(tape)
	for end > 0 && tape[end-1] == 0 {
		end--
	}
	end = max(end, m.Tape.Head()+1)

	return map[string]any{
		"status":     status,
		"pc":         m.PC,
		"program":    m.Program.Brainfuck(),
		"steps":      m.Steps,
		"head":       m.Tape.Head(),
		"cell":       m.Tape.Get(),
		"tape":       tape[:end],
		"tape_size":  m.Tape.Len(),
		"input":      m.Input,
		"input_head": m.InputHead,
		"output":     m.Output,
		"matching":   m.Matching(),
	}
}
