package mips32

// execSpecial3 decodes and executes opcode 0x1F (SPECIAL3), selected by
// the 6-bit funct field. See spec.md §4.5.
func (c *CPU) execSpecial3(instr uint32) bool {
	f := funct(instr)
	rsv, rtv, rdv, auxv := rs(instr), rt(instr), rd(instr), aux(instr)

	switch f {
	case 0x00: // ext
		c.opExt(rsv, rtv, rdv, auxv)
		return true
	case 0x04: // ins
		return c.opIns(rsv, rtv, rdv, auxv)
	case 0x20: // BSHFL family
		if rsv != 0 {
			return false
		}
		switch auxv {
		case 0x02: // wsbh
			c.opWsbh(rtv, rdv)
			return true
		case 0x10: // seb
			c.opSeb(rtv, rdv)
			return true
		case 0x18: // seh
			c.opSeh(rtv, rdv)
			return true
		}
		return false
	}

	return false
}
