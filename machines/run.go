package machines

import (
	"github.com/reusee/esotape/insts"
)

func (m *Machine) Run() (status Status, err error) {
	if m.logger != nil {
		m.logger.Debug("machine start",
			"insts", len(m.Program),
			"input", len(m.Input),
			"tape", m.Tape.Len(),
			"matching", m.matching,
		)
		defer func() {
			m.logger.Debug("machine stop",
				"status", status,
				"steps", m.Steps,
				"pc", m.PC,
				"head", m.Tape.Head(),
				"output", len(m.Output),
			)
		}()
	}

	for {
		if m.PC < 0 || m.PC >= len(m.Program) {
			return Completed, nil
		}

		inst := m.Program[m.PC]
		m.Steps++

		switch inst {

		case insts.Right:
			if err := m.Tape.Right(); err != nil {
				return Failed, m.fail(inst, err)
			}

		case insts.Left:
			if err := m.Tape.Left(); err != nil {
				return Failed, m.fail(inst, err)
			}

		case insts.Incr:
			m.Tape.Incr()

		case insts.Decr:
			m.Tape.Decr()

		case insts.Out:
			m.Output = append(m.Output, m.Tape.Get())

		case insts.In:
			if m.InputHead >= len(m.Input) {
				return Failed, m.fail(inst, ErrInputExhausted)
			}
			m.Tape.Set(m.Input[m.InputHead])
			m.InputHead++

		case insts.Begin:
			if m.Tape.Get() == 0 {
				to, ok := m.matchForward()
				if !ok {
					return Halted, nil
				}
				m.PC = to
			}

		case insts.End:
			if m.Tape.Get() != 0 {
				to, ok := m.matchBackward()
				if !ok {
					return Halted, nil
				}
				m.PC = to
			}

		case insts.Exit:
			return Exited, nil

		case insts.Print:
			m.Output = m.Tape.AppendTo(m.Output)

		default:
			return Failed, m.fail(inst, errInvalidInst)

		}

		m.PC++
	}
}

func (m *Machine) fail(inst insts.Inst, err error) error {
	return &ExecError{
		PC:   m.PC,
		Inst: inst,
		Err:  err,
	}
}
