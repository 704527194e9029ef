package machines

import "github.com/reusee/esotape/insts"

// matchForward returns the End to continue after, for a Begin at PC.
func (m *Machine) matchForward() (int, bool) {
	if m.matching == NestedMatching {
		to := m.jumps[m.PC]
		return to, to >= 0
	}
	for pc := m.PC; pc < len(m.Program); pc++ {
		if m.Program[pc] == insts.End {
			return pc, true
		}
	}
	return 0, false
}

// matchBackward returns the Begin to continue after, for an End at PC.
func (m *Machine) matchBackward() (int, bool) {
	if m.matching == NestedMatching {
		to := m.jumps[m.PC]
		return to, to >= 0
	}
	for pc := m.PC; pc >= 0; pc-- {
		if m.Program[pc] == insts.Begin {
			return pc, true
		}
	}
	return 0, false
}

// jumpTable maps every loop marker to its nested partner, or -1 if unmatched.
func jumpTable(program insts.Program) []int {
	jumps := make([]int, len(program))
	var stack []int
	for pc, inst := range program {
		jumps[pc] = -1
		switch inst {
		case insts.Begin:
			stack = append(stack, pc)
		case insts.End:
			if len(stack) == 0 {
				continue
			}
			begin := stack[len(stack)-1]
			stack = stack[:len(stack)-1]
			jumps[begin] = pc
			jumps[pc] = begin
		}
	}
	return jumps
}
