package mips32

// --- simple loads (address = gpr[rs] + imm_se) ---

// opLb implements opcode 0x20 (lb): sign-extended byte load.
func (c *CPU) opLb(rsv, rtv uint32, instr uint32) {
	addr := c.gpr[rsv] + uint32(immSE(instr))
	v := c.readAligned(Byte, addr)
	if c.exception != OK {
		return
	}
	c.setReg(rtv, signExtend(v, 8))
}

// opLbu implements opcode 0x24 (lbu): zero-extended byte load.
func (c *CPU) opLbu(rsv, rtv uint32, instr uint32) {
	addr := c.gpr[rsv] + uint32(immSE(instr))
	v := c.readAligned(Byte, addr)
	if c.exception != OK {
		return
	}
	c.setReg(rtv, v)
}

// opLh implements opcode 0x21 (lh): sign-extended halfword load.
func (c *CPU) opLh(rsv, rtv uint32, instr uint32) {
	addr := c.gpr[rsv] + uint32(immSE(instr))
	v := c.readAligned(Half, addr)
	if c.exception != OK {
		return
	}
	c.setReg(rtv, signExtend(v, 16))
}

// opLhu implements opcode 0x25 (lhu): zero-extended halfword load.
func (c *CPU) opLhu(rsv, rtv uint32, instr uint32) {
	addr := c.gpr[rsv] + uint32(immSE(instr))
	v := c.readAligned(Half, addr)
	if c.exception != OK {
		return
	}
	c.setReg(rtv, v)
}

// opLw implements opcode 0x23 (lw): word load.
func (c *CPU) opLw(rsv, rtv uint32, instr uint32) {
	addr := c.gpr[rsv] + uint32(immSE(instr))
	v := c.readAligned(Word, addr)
	if c.exception != OK {
		return
	}
	c.setReg(rtv, v)
}

// --- unaligned word loads ---

// lwlKeepMask and lwlShift give, indexed by byte offset (addr&3), the
// mask of existing register bits to keep and the left-shift applied to
// the fetched word, per the little-endian table in spec.md §4.6.
var lwlKeepMask = [4]uint32{0x00FFFFFF, 0x0000FFFF, 0x000000FF, 0x00000000}
var lwlShift = [4]uint32{24, 16, 8, 0}

// lwrKeepMask and lwrShift are the lwr counterparts.
var lwrKeepMask = [4]uint32{0x00000000, 0xFF000000, 0xFFFF0000, 0xFFFFFF00}
var lwrShift = [4]uint32{0, 8, 16, 24}

// opLwl implements opcode 0x22 (lwl): fill the high-order bytes of rt
// from the low-order bytes of the naturally-aligned word containing the
// effective address, keeping rt's low-order bytes per the offset.
func (c *CPU) opLwl(rsv, rtv uint32, instr uint32) {
	addr := c.gpr[rsv] + uint32(immSE(instr))
	off := addr & 3
	word := c.readAligned(Word, addr&^3)
	if c.exception != OK {
		return
	}
	reg := c.gpr[rtv] & lwlKeepMask[off]
	c.setReg(rtv, reg|(word<<lwlShift[off]))
}

// opLwr implements opcode 0x26 (lwr): the lwl counterpart, filling the
// low-order bytes of rt from the high-order bytes of the aligned word and
// keeping rt's high-order bytes per the offset.
func (c *CPU) opLwr(rsv, rtv uint32, instr uint32) {
	addr := c.gpr[rsv] + uint32(immSE(instr))
	off := addr & 3
	word := c.readAligned(Word, addr&^3)
	if c.exception != OK {
		return
	}
	reg := c.gpr[rtv] & lwrKeepMask[off]
	c.setReg(rtv, reg|(word>>lwrShift[off]))
}

// --- simple stores ---

// opSb implements opcode 0x28 (sb).
func (c *CPU) opSb(rsv, rtv uint32, instr uint32) {
	addr := c.gpr[rsv] + uint32(immSE(instr))
	c.writeAligned(Byte, addr, c.gpr[rtv])
}

// opSh implements opcode 0x29 (sh).
func (c *CPU) opSh(rsv, rtv uint32, instr uint32) {
	addr := c.gpr[rsv] + uint32(immSE(instr))
	c.writeAligned(Half, addr, c.gpr[rtv])
}

// opSw implements opcode 0x2B (sw).
func (c *CPU) opSw(rsv, rtv uint32, instr uint32) {
	addr := c.gpr[rsv] + uint32(immSE(instr))
	c.writeAligned(Word, addr, c.gpr[rtv])
}

// --- unaligned word stores ---

// opSwl implements opcode 0x2A (swl): decompose the store of rt into
// byte/halfword/word sub-accesses at the aligned base, per offset.
func (c *CPU) opSwl(rsv, rtv uint32, instr uint32) {
	addr := c.gpr[rsv] + uint32(immSE(instr))
	base := addr &^ 3
	reg := c.gpr[rtv]

	switch addr & 3 {
	case 0:
		c.writeAligned(Byte, base, reg>>24)
	case 1:
		c.writeAligned(Half, base, reg>>16)
	case 2:
		c.writeAligned(Half, base, reg>>8)
		if c.exception != OK {
			return
		}
		c.writeAligned(Byte, base+2, reg>>24)
	default: // 3
		c.writeAligned(Word, base, reg)
	}
}

// opSwr implements opcode 0x2E (swr): the swl counterpart.
func (c *CPU) opSwr(rsv, rtv uint32, instr uint32) {
	addr := c.gpr[rsv] + uint32(immSE(instr))
	base := addr &^ 3
	reg := c.gpr[rtv]

	switch addr & 3 {
	case 0:
		c.writeAligned(Word, base, reg)
	case 1:
		c.writeAligned(Byte, base+1, reg)
		if c.exception != OK {
			return
		}
		c.writeAligned(Half, base+2, reg>>8)
	case 2:
		c.writeAligned(Half, base+2, reg)
	default: // 3
		c.writeAligned(Byte, base+3, reg)
	}
}

// --- load-linked / store-conditional ---

// opLl implements opcode 0x30 (ll): recognised but unimplemented, it
// decodes successfully and commits no state beyond normal decode.
func (c *CPU) opLl() {}

// opSc implements opcode 0x38 (sc): recognised but unimplemented, it
// decodes successfully and commits no state beyond normal decode.
func (c *CPU) opSc() {}
