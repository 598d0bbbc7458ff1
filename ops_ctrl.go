package mips32

// trapCond identifies the comparison a conditional trap instruction tests.
type trapCond int

const (
	trapEQ trapCond = iota
	trapNE
	trapGE
	trapGEU
	trapLT
	trapLTU
)

// satisfies evaluates cond over the register-register pair (a, b).
func (cond trapCond) satisfies(a, b uint32) bool {
	switch cond {
	case trapEQ:
		return a == b
	case trapNE:
		return a != b
	case trapGE:
		return int32(a) >= int32(b)
	case trapGEU:
		return a >= b
	case trapLT:
		return int32(a) < int32(b)
	case trapLTU:
		return a < b
	}
	return false
}

// opTrapCond implements the SPECIAL teq/tne/tge/tgeu/tlt/tltu family: when
// cond holds over gpr[rs] and gpr[rt], raise Trap with the code field
// from the instruction's low bits (see spec.md §4.3).
func (c *CPU) opTrapCond(instr uint32, rsv, rtv uint32, cond trapCond) {
	if cond.satisfies(c.gpr[rsv], c.gpr[rtv]) {
		c.raiseTrap(instr)
	}
}

// opTrapCondImm implements the REGIMM teqi/tgei/tgeiu/tlti/tltiu/tnei
// family: compare gpr[rs] against the sign-extended immediate.
func (c *CPU) opTrapCondImm(instr uint32, rsv uint32, cond trapCond) {
	imm := uint32(immSE(instr))
	if cond.satisfies(c.gpr[rsv], imm) {
		c.raiseTrap(instr)
	}
}

// --- conditional move ---

// opMovz implements SPECIAL funct 0x0A (movz): rd := rs if rt == 0.
func (c *CPU) opMovz(rsv, rtv, rdv uint32) {
	if c.gpr[rtv] == 0 {
		c.setReg(rdv, c.gpr[rsv])
	}
}

// opMovn implements SPECIAL funct 0x0B (movn): rd := rs if rt != 0.
func (c *CPU) opMovn(rsv, rtv, rdv uint32) {
	if c.gpr[rtv] != 0 {
		c.setReg(rdv, c.gpr[rsv])
	}
}
