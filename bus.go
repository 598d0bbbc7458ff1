package mips32

// Bus is the host-supplied memory interface. Byte accesses accept any
// address; the CPU enforces halfword (2-byte) and word (4-byte) alignment
// itself and never invokes these callbacks with a misaligned address — see
// readAligned/writeAligned below and spec.md §4.1 (Bus Adapter).
//
// Implementations must treat reads as total functions: an out-of-range
// address is the host's concern (return zero, wrap, or panic — the core
// never inspects the returned value for validity).
type Bus interface {
	ReadByte(addr uint32) uint8
	ReadHalf(addr uint32) uint16
	ReadWord(addr uint32) uint32

	WriteByte(addr uint32, v uint8)
	WriteHalf(addr uint32, v uint16)
	WriteWord(addr uint32, v uint32)
}

// readAligned performs a width-checked read. A misaligned halfword or word
// access raises ReadAddressError and returns zero without invoking the
// underlying bus callback, per spec.md §4.1/§7.
func (c *CPU) readAligned(w Width, addr uint32) uint32 {
	if addr%w.Align() != 0 {
		c.exception = ReadAddressError
		return 0
	}
	switch w {
	case Byte:
		return uint32(c.bus.ReadByte(addr))
	case Half:
		return uint32(c.bus.ReadHalf(addr))
	default:
		return c.bus.ReadWord(addr)
	}
}

// writeAligned performs a width-checked write. A misaligned halfword or
// word access raises WriteAddressError and suppresses the underlying bus
// call, per spec.md §4.1/§7.
func (c *CPU) writeAligned(w Width, addr uint32, v uint32) {
	if addr%w.Align() != 0 {
		c.exception = WriteAddressError
		return
	}
	switch w {
	case Byte:
		c.bus.WriteByte(addr, uint8(v))
	case Half:
		c.bus.WriteHalf(addr, uint16(v))
	default:
		c.bus.WriteWord(addr, v)
	}
}
