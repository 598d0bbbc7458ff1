package mips32

// execIType decodes and executes the I-type family: REGIMM, arithmetic/
// logical immediates, branches, and loads/stores. See spec.md §4.6.
func (c *CPU) execIType(instr uint32) bool {
	opcode := instr >> 26
	rsv, rtv := rs(instr), rt(instr)

	switch opcode {
	case opRegimm:
		return c.execRegimm(instr)

	case 0x04: // beq
		c.opBeq(rsv, rtv, instr)
		return true
	case 0x05: // bne
		c.opBne(rsv, rtv, instr)
		return true
	case 0x06: // blez
		if rtv != 0 {
			return false
		}
		c.opBlez(rsv, instr)
		return true
	case 0x07: // bgtz
		if rtv != 0 {
			return false
		}
		c.opBgtz(rsv, instr)
		return true

	case 0x08: // addi
		c.opAddi(rsv, rtv, instr)
		return true
	case 0x09: // addiu
		c.opAddiu(rsv, rtv, instr)
		return true
	case 0x0A: // slti
		c.opSlti(rsv, rtv, instr)
		return true
	case 0x0B: // sltiu
		c.opSltiu(rsv, rtv, instr)
		return true
	case 0x0C: // andi
		c.opAndi(rsv, rtv, instr)
		return true
	case 0x0D: // ori
		c.opOri(rsv, rtv, instr)
		return true
	case 0x0E: // xori
		c.opXori(rsv, rtv, instr)
		return true
	case 0x0F: // lui
		if rsv != 0 {
			return false
		}
		c.opLui(rtv, instr)
		return true

	case 0x20: // lb
		c.opLb(rsv, rtv, instr)
		return true
	case 0x21: // lh
		c.opLh(rsv, rtv, instr)
		return true
	case 0x22: // lwl
		c.opLwl(rsv, rtv, instr)
		return true
	case 0x23: // lw
		c.opLw(rsv, rtv, instr)
		return true
	case 0x24: // lbu
		c.opLbu(rsv, rtv, instr)
		return true
	case 0x25: // lhu
		c.opLhu(rsv, rtv, instr)
		return true
	case 0x26: // lwr
		c.opLwr(rsv, rtv, instr)
		return true

	case 0x28: // sb
		c.opSb(rsv, rtv, instr)
		return true
	case 0x29: // sh
		c.opSh(rsv, rtv, instr)
		return true
	case 0x2A: // swl
		c.opSwl(rsv, rtv, instr)
		return true
	case 0x2B: // sw
		c.opSw(rsv, rtv, instr)
		return true
	case 0x2E: // swr
		c.opSwr(rsv, rtv, instr)
		return true

	case 0x30: // ll
		c.opLl()
		return true
	case 0x38: // sc
		c.opSc()
		return true
	}

	return false
}

// execRegimm decodes and executes opcode 0x01 (REGIMM), sub-selected by
// the rt field. See spec.md §4.6.
func (c *CPU) execRegimm(instr uint32) bool {
	rsv, rtv := rs(instr), rt(instr)

	switch rtv {
	case 0x00: // bltz
		c.opBltz(rsv, instr)
		return true
	case 0x01: // bgez
		c.opBgez(rsv, instr)
		return true
	case 0x10: // bltzal
		c.opBltzal(rsv, instr)
		return true
	case 0x11: // bgezal
		c.opBgezal(rsv, instr)
		return true

	case 0x0C: // teqi
		c.opTrapCondImm(instr, rsv, trapEQ)
		return true
	case 0x0E: // tnei
		c.opTrapCondImm(instr, rsv, trapNE)
		return true
	case 0x08: // tgei
		c.opTrapCondImm(instr, rsv, trapGE)
		return true
	case 0x09: // tgeiu
		c.opTrapCondImm(instr, rsv, trapGEU)
		return true
	case 0x0A: // tlti
		c.opTrapCondImm(instr, rsv, trapLT)
		return true
	case 0x0B: // tltiu
		c.opTrapCondImm(instr, rsv, trapLTU)
		return true
	}

	return false
}
