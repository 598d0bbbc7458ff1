package mips32

// --- add / addu / sub / subu ---

// opAdd implements SPECIAL funct 0x20 (add): signed 32-bit add. Overflow
// raises IntegerOverflow and suppresses the destination write.
func (c *CPU) opAdd(rsv, rtv, rdv uint32) {
	a, b := c.gpr[rsv], c.gpr[rtv]
	sum := a + b
	if addOverflows(a, b, sum) {
		c.exception = IntegerOverflow
		return
	}
	c.setReg(rdv, sum)
}

// opAddu implements SPECIAL funct 0x21 (addu): unsigned add, never traps.
func (c *CPU) opAddu(rsv, rtv, rdv uint32) {
	c.setReg(rdv, c.gpr[rsv]+c.gpr[rtv])
}

// opSub implements SPECIAL funct 0x22 (sub): signed subtract. Overflow
// raises IntegerOverflow and suppresses the destination write.
func (c *CPU) opSub(rsv, rtv, rdv uint32) {
	a, b := c.gpr[rsv], c.gpr[rtv]
	diff := a - b
	if subOverflows(a, b, diff) {
		c.exception = IntegerOverflow
		return
	}
	c.setReg(rdv, diff)
}

// opSubu implements SPECIAL funct 0x23 (subu): unsigned subtract, never
// traps.
func (c *CPU) opSubu(rsv, rtv, rdv uint32) {
	c.setReg(rdv, c.gpr[rsv]-c.gpr[rtv])
}

// addOverflows reports whether a + b, computed as sum, overflowed as a
// signed 32-bit add: the result's sign must be inconsistent with both
// operand signs.
func addOverflows(a, b, sum uint32) bool {
	return ((sum^a)&(sum^b))>>31 != 0
}

// subOverflows reports whether a - b, computed as diff, overflowed as a
// signed 32-bit subtract.
func subOverflows(a, b, diff uint32) bool {
	return ((a^b)&(diff^a))>>31 != 0
}

// --- slt / sltu ---

// opSlt implements SPECIAL funct 0x2A (slt): signed set-less-than.
func (c *CPU) opSlt(rsv, rtv, rdv uint32) {
	if int32(c.gpr[rsv]) < int32(c.gpr[rtv]) {
		c.setReg(rdv, 1)
	} else {
		c.setReg(rdv, 0)
	}
}

// opSltu implements SPECIAL funct 0x2B (sltu): unsigned set-less-than.
func (c *CPU) opSltu(rsv, rtv, rdv uint32) {
	if c.gpr[rsv] < c.gpr[rtv] {
		c.setReg(rdv, 1)
	} else {
		c.setReg(rdv, 0)
	}
}

// --- HI/LO access ---

// opMfhi implements SPECIAL funct 0x10 (mfhi): gpr[rd] := hi.
func (c *CPU) opMfhi(rdv uint32) {
	c.setReg(rdv, c.hi)
}

// opMflo implements SPECIAL funct 0x12 (mflo): gpr[rd] := lo.
func (c *CPU) opMflo(rdv uint32) {
	c.setReg(rdv, c.lo)
}

// opMthi implements SPECIAL funct 0x11 (mthi): hi := gpr[rs].
func (c *CPU) opMthi(rsv uint32) {
	c.hi = c.gpr[rsv]
}

// opMtlo implements SPECIAL funct 0x13 (mtlo): lo := gpr[rs].
func (c *CPU) opMtlo(rsv uint32) {
	c.lo = c.gpr[rsv]
}

// --- multiply / divide ---

// opMult implements SPECIAL funct 0x18 (mult): signed 32x32 -> 64 into
// HI:LO.
func (c *CPU) opMult(rsv, rtv uint32) {
	v := int64(int32(c.gpr[rsv])) * int64(int32(c.gpr[rtv]))
	c.setAcc(uint64(v))
}

// opMultu implements SPECIAL funct 0x19 (multu): unsigned 32x32 -> 64
// into HI:LO.
func (c *CPU) opMultu(rsv, rtv uint32) {
	v := uint64(c.gpr[rsv]) * uint64(c.gpr[rtv])
	c.setAcc(v)
}

// opDiv implements SPECIAL funct 0x1A (div): signed quotient into lo,
// signed remainder into hi. Division by zero is not trapped by this
// architecture subset (the result is architecturally UNPREDICTABLE); this
// core's chosen non-crashing definition is lo = hi = 0, leaving HI/LO
// cleanly observable rather than reading whatever they previously held.
func (c *CPU) opDiv(rsv, rtv uint32) {
	a, b := int32(c.gpr[rsv]), int32(c.gpr[rtv])
	if b == 0 {
		c.lo, c.hi = 0, 0
		return
	}
	c.lo = uint32(a / b)
	c.hi = uint32(a % b)
}

// opDivu implements SPECIAL funct 0x1B (divu): unsigned counterpart of
// opDiv, with the same division-by-zero convention.
func (c *CPU) opDivu(rsv, rtv uint32) {
	a, b := c.gpr[rsv], c.gpr[rtv]
	if b == 0 {
		c.lo, c.hi = 0, 0
		return
	}
	c.lo = a / b
	c.hi = a % b
}

// --- I-type arithmetic immediates ---

// opAddi implements opcode 0x08 (addi): signed add with a sign-extended
// immediate. Overflow raises IntegerOverflow and suppresses the write.
func (c *CPU) opAddi(rsv, rtv uint32, instr uint32) {
	a := c.gpr[rsv]
	imm := uint32(immSE(instr))
	sum := a + imm
	if addOverflows(a, imm, sum) {
		c.exception = IntegerOverflow
		return
	}
	c.setReg(rtv, sum)
}

// opAddiu implements opcode 0x09 (addiu): add with a sign-extended
// immediate, never traps.
func (c *CPU) opAddiu(rsv, rtv uint32, instr uint32) {
	c.setReg(rtv, c.gpr[rsv]+uint32(immSE(instr)))
}

// opSlti implements opcode 0x0A (slti): signed set-less-than-immediate.
func (c *CPU) opSlti(rsv, rtv uint32, instr uint32) {
	if int32(c.gpr[rsv]) < immSE(instr) {
		c.setReg(rtv, 1)
	} else {
		c.setReg(rtv, 0)
	}
}

// opSltiu implements opcode 0x0B (sltiu): unsigned set-less-than, but the
// immediate is still sign-extended to 32 bits before the unsigned
// comparison per the architecture's definition of this instruction.
func (c *CPU) opSltiu(rsv, rtv uint32, instr uint32) {
	if c.gpr[rsv] < uint32(immSE(instr)) {
		c.setReg(rtv, 1)
	} else {
		c.setReg(rtv, 0)
	}
}
