package mips32

// --- fixed-amount shifts (rs must be 0, shift count = aux) ---

// opSll implements SPECIAL funct 0x00 (sll): logical left shift by a
// fixed amount. A shift of 0 is the identity.
func (c *CPU) opSll(rtv, rdv, auxv uint32) {
	c.setReg(rdv, c.gpr[rtv]<<auxv)
}

// opSrl implements SPECIAL funct 0x02 with rs == 0 (srl): logical right
// shift by a fixed amount.
func (c *CPU) opSrl(rtv, rdv, auxv uint32) {
	c.setReg(rdv, c.gpr[rtv]>>auxv)
}

// opSra implements SPECIAL funct 0x03 (sra): arithmetic (sign-preserving)
// right shift by a fixed amount.
func (c *CPU) opSra(rtv, rdv, auxv uint32) {
	c.setReg(rdv, uint32(int32(c.gpr[rtv])>>auxv))
}

// --- variable shifts (shift amount = gpr[rs] & 0x1F) ---

// opSllv implements SPECIAL funct 0x04 (sllv).
func (c *CPU) opSllv(rsv, rtv, rdv uint32) {
	c.setReg(rdv, c.gpr[rtv]<<(c.gpr[rsv]&0x1F))
}

// opSrlv implements SPECIAL funct 0x06 with aux == 0 (srlv).
func (c *CPU) opSrlv(rsv, rtv, rdv uint32) {
	c.setReg(rdv, c.gpr[rtv]>>(c.gpr[rsv]&0x1F))
}

// opSrav implements SPECIAL funct 0x07 (srav): arithmetic variable shift.
func (c *CPU) opSrav(rsv, rtv, rdv uint32) {
	c.setReg(rdv, uint32(int32(c.gpr[rtv])>>(c.gpr[rsv]&0x1F)))
}

// --- rotates ---

// opRotr implements SPECIAL funct 0x02 with rs == 1 (rotr): rotate rt
// right by the fixed amount aux. Go defines shifting an unsigned value by
// its own bit width as yielding 0, so a rotate amount of 0 correctly
// degenerates to (x>>0)|(x<<32) == x without a special case.
func (c *CPU) opRotr(rtv, rdv, auxv uint32) {
	v := c.gpr[rtv]
	c.setReg(rdv, (v>>auxv)|(v<<(32-auxv)))
}

// opRotrv implements SPECIAL funct 0x06 with aux == 1 (rotrv): rotate rt
// right by gpr[rs] & 0x1F.
func (c *CPU) opRotrv(rsv, rtv, rdv uint32) {
	s := c.gpr[rsv] & 0x1F
	v := c.gpr[rtv]
	c.setReg(rdv, (v>>s)|(v<<(32-s)))
}
