package mips32

import "math/bits"

// execSpecial2 decodes and executes opcode 0x1C (SPECIAL2), selected by
// the 6-bit funct field. See spec.md §4.4.
//
// The madd/maddu/msub/msubu block dispatches on funct, not on the raw
// instruction word. The rd==0/aux==0 guard does not clear the opcode,
// rs or rt bits, so matching the raw word against a bare funct value
// would never match a real encoding of these instructions.
func (c *CPU) execSpecial2(instr uint32) bool {
	f := funct(instr)
	rsv, rtv, rdv, auxv := rs(instr), rt(instr), rd(instr), aux(instr)

	switch f {
	case 0x02: // mul
		if auxv != 0 {
			return false
		}
		c.opMul(rsv, rtv, rdv)
		return true
	case 0x20: // clz
		if rtv != 0 || auxv != 0 {
			return false
		}
		c.opClz(rsv, rdv)
		return true
	case 0x21: // clo
		if rtv != 0 || auxv != 0 {
			return false
		}
		c.opClo(rsv, rdv)
		return true
	case 0x00: // madd
		if rdv != 0 || auxv != 0 {
			return false
		}
		c.opMadd(rsv, rtv)
		return true
	case 0x01: // maddu
		if rdv != 0 || auxv != 0 {
			return false
		}
		c.opMaddu(rsv, rtv)
		return true
	case 0x04: // msub
		if rdv != 0 || auxv != 0 {
			return false
		}
		c.opMsub(rsv, rtv)
		return true
	case 0x05: // msubu
		if rdv != 0 || auxv != 0 {
			return false
		}
		c.opMsubu(rsv, rtv)
		return true
	}

	return false
}

// opMul implements SPECIAL2 funct 0x02 (mul): signed 32x32 -> low 32
// into rd. HI/LO are left untouched.
func (c *CPU) opMul(rsv, rtv, rdv uint32) {
	v := int32(c.gpr[rsv]) * int32(c.gpr[rtv])
	c.setReg(rdv, uint32(v))
}

// opClz implements SPECIAL2 funct 0x20 (clz): count leading zeros.
func (c *CPU) opClz(rsv, rdv uint32) {
	c.setReg(rdv, uint32(bits.LeadingZeros32(c.gpr[rsv])))
}

// opClo implements SPECIAL2 funct 0x21 (clo): count leading ones.
func (c *CPU) opClo(rsv, rdv uint32) {
	c.setReg(rdv, uint32(bits.LeadingZeros32(^c.gpr[rsv])))
}

// opMadd implements SPECIAL2 funct 0x00 (madd): acc += signed(rs * rt).
func (c *CPU) opMadd(rsv, rtv uint32) {
	prod := int64(int32(c.gpr[rsv])) * int64(int32(c.gpr[rtv]))
	c.setAcc(c.acc() + uint64(prod))
}

// opMaddu implements SPECIAL2 funct 0x01 (maddu): acc += unsigned(rs * rt).
func (c *CPU) opMaddu(rsv, rtv uint32) {
	prod := uint64(c.gpr[rsv]) * uint64(c.gpr[rtv])
	c.setAcc(c.acc() + prod)
}

// opMsub implements SPECIAL2 funct 0x04 (msub): acc -= signed(rs * rt).
func (c *CPU) opMsub(rsv, rtv uint32) {
	prod := int64(int32(c.gpr[rsv])) * int64(int32(c.gpr[rtv]))
	c.setAcc(c.acc() - uint64(prod))
}

// opMsubu implements SPECIAL2 funct 0x05 (msubu): acc -= unsigned(rs * rt).
func (c *CPU) opMsubu(rsv, rtv uint32) {
	prod := uint64(c.gpr[rsv]) * uint64(c.gpr[rtv])
	c.setAcc(c.acc() - prod)
}
