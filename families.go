package mips32

// execSpecial decodes and executes opcode 0x00 (SPECIAL), selected by the
// 6-bit funct field. See spec.md §4.3. Each case enforces the "must be
// zero" field constraints the architecture places on that encoding; a
// constraint violation falls through to the caller as a reserved
// instruction rather than executing with garbage operands.
func (c *CPU) execSpecial(instr uint32) bool {
	f := funct(instr)
	rsv, rtv, rdv, auxv := rs(instr), rt(instr), rd(instr), aux(instr)

	switch f {
	case 0x20: // add
		if auxv != 0 {
			return false
		}
		c.opAdd(rsv, rtv, rdv)
		return true
	case 0x21: // addu
		if auxv != 0 {
			return false
		}
		c.opAddu(rsv, rtv, rdv)
		return true
	case 0x22: // sub
		if auxv != 0 {
			return false
		}
		c.opSub(rsv, rtv, rdv)
		return true
	case 0x23: // subu
		if auxv != 0 {
			return false
		}
		c.opSubu(rsv, rtv, rdv)
		return true
	case 0x24: // and
		if auxv != 0 {
			return false
		}
		c.opAnd(rsv, rtv, rdv)
		return true
	case 0x25: // or
		if auxv != 0 {
			return false
		}
		c.opOr(rsv, rtv, rdv)
		return true
	case 0x26: // xor
		if auxv != 0 {
			return false
		}
		c.opXor(rsv, rtv, rdv)
		return true
	case 0x27: // nor
		if auxv != 0 {
			return false
		}
		c.opNor(rsv, rtv, rdv)
		return true
	case 0x2A: // slt
		if auxv != 0 {
			return false
		}
		c.opSlt(rsv, rtv, rdv)
		return true
	case 0x2B: // sltu
		if auxv != 0 {
			return false
		}
		c.opSltu(rsv, rtv, rdv)
		return true
	case 0x0A: // movz
		if auxv != 0 {
			return false
		}
		c.opMovz(rsv, rtv, rdv)
		return true
	case 0x0B: // movn
		if auxv != 0 {
			return false
		}
		c.opMovn(rsv, rtv, rdv)
		return true

	case 0x00: // sll
		if rsv != 0 {
			return false
		}
		c.opSll(rtv, rdv, auxv)
		return true
	case 0x02: // srl, or rotr when rs == 1
		switch rsv {
		case 0:
			c.opSrl(rtv, rdv, auxv)
			return true
		case 1:
			c.opRotr(rtv, rdv, auxv)
			return true
		default:
			return false
		}
	case 0x03: // sra
		if rsv != 0 {
			return false
		}
		c.opSra(rtv, rdv, auxv)
		return true
	case 0x04: // sllv
		if auxv != 0 {
			return false
		}
		c.opSllv(rsv, rtv, rdv)
		return true
	case 0x06: // srlv, or rotrv when aux == 1
		switch auxv {
		case 0:
			c.opSrlv(rsv, rtv, rdv)
			return true
		case 1:
			c.opRotrv(rsv, rtv, rdv)
			return true
		default:
			return false
		}
	case 0x07: // srav
		if auxv != 0 {
			return false
		}
		c.opSrav(rsv, rtv, rdv)
		return true

	case 0x10: // mfhi
		if rsv != 0 || rtv != 0 || auxv != 0 {
			return false
		}
		c.opMfhi(rdv)
		return true
	case 0x11: // mthi
		if rtv != 0 || rdv != 0 || auxv != 0 {
			return false
		}
		c.opMthi(rsv)
		return true
	case 0x12: // mflo
		if rsv != 0 || rtv != 0 || auxv != 0 {
			return false
		}
		c.opMflo(rdv)
		return true
	case 0x13: // mtlo
		if rtv != 0 || rdv != 0 || auxv != 0 {
			return false
		}
		c.opMtlo(rsv)
		return true
	case 0x18: // mult
		if rdv != 0 || auxv != 0 {
			return false
		}
		c.opMult(rsv, rtv)
		return true
	case 0x19: // multu
		if rdv != 0 || auxv != 0 {
			return false
		}
		c.opMultu(rsv, rtv)
		return true
	case 0x1A: // div
		if rdv != 0 || auxv != 0 {
			return false
		}
		c.opDiv(rsv, rtv)
		return true
	case 0x1B: // divu
		if rdv != 0 || auxv != 0 {
			return false
		}
		c.opDivu(rsv, rtv)
		return true

	case 0x08: // jr
		if rtv != 0 || rdv != 0 {
			return false
		}
		c.opJr(rsv)
		return true
	case 0x09: // jalr
		if rtv != 0 {
			return false
		}
		c.opJalr(rsv, rdv)
		return true

	case 0x0C: // syscall
		c.raiseSyscall(instr)
		return true
	case 0x0D: // break
		c.raiseBreak(instr)
		return true

	case 0x34: // teq
		c.opTrapCond(instr, rsv, rtv, trapEQ)
		return true
	case 0x36: // tne
		c.opTrapCond(instr, rsv, rtv, trapNE)
		return true
	case 0x30: // tge
		c.opTrapCond(instr, rsv, rtv, trapGE)
		return true
	case 0x31: // tgeu
		c.opTrapCond(instr, rsv, rtv, trapGEU)
		return true
	case 0x32: // tlt
		c.opTrapCond(instr, rsv, rtv, trapLT)
		return true
	case 0x33: // tltu
		c.opTrapCond(instr, rsv, rtv, trapLTU)
		return true
	}

	return false
}

// execJType decodes and executes opcodes 0x02 (j) and 0x03 (jal). See
// spec.md §4.2.
func (c *CPU) execJType(instr uint32) bool {
	target := c.jTarget(instr)
	switch instr >> 26 {
	case opJ:
		c.scheduleAbsolute(target)
		return true
	case opJal:
		c.setReg(31, c.linkAddress())
		c.scheduleAbsolute(target)
		return true
	}
	return false
}
