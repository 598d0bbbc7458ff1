package mips32

// Result is the outcome of a single Step. Unlike the open-ended error
// interface, the set of architectural exceptions a MIPS32r2 core can
// signal is closed and every value is meaningful to the host, so Result
// is a small Stringer enum rather than an error.
type Result int

const (
	// OK means the instruction decoded and executed with no architectural
	// exception.
	OK Result = iota

	// ReservedInstr means the bit pattern matched no opcode in any decoder
	// family, or matched a family with no corresponding sub-operation.
	ReservedInstr

	// ReadAddressError means a halfword or word read was misaligned; the
	// underlying bus callback was not invoked and the destination
	// register, if any, was not written.
	ReadAddressError

	// WriteAddressError means a halfword or word write was misaligned; the
	// underlying bus callback was not invoked.
	WriteAddressError

	// IntegerOverflow means a signed add/addi/sub overflowed; the
	// destination register was not written.
	IntegerOverflow

	// Break means a BREAK instruction executed. CallCode holds the
	// 20-bit payload encoded in bits [25:6] of the instruction.
	Break

	// Syscall means a SYSCALL instruction executed. CallCode holds the
	// 20-bit payload encoded in bits [25:6] of the instruction.
	Syscall

	// Trap means a trap condition (teq/tne/tge/tgeu/tlt/tltu or their
	// immediate forms) held. CallCode holds the 10-bit payload encoded in
	// bits [15:6] of the instruction.
	Trap
)

// String returns a human-readable name for this result code.
func (r Result) String() string {
	switch r {
	case OK:
		return "ok"
	case ReservedInstr:
		return "reserved instruction"
	case ReadAddressError:
		return "read address error"
	case WriteAddressError:
		return "write address error"
	case IntegerOverflow:
		return "integer overflow"
	case Break:
		return "break"
	case Syscall:
		return "syscall"
	case Trap:
		return "trap"
	default:
		return "unknown"
	}
}

// raiseTrap records the 10-bit trap payload and raises Trap. Per spec.md
// §4.3/§4.6, the payload is bits [15:6] of the raw instruction word.
func (c *CPU) raiseTrap(instr uint32) {
	c.code = (instr >> 6) & 0x3FF
	c.exception = Trap
}

// raiseBreak records the 20-bit break payload and raises Break. Per
// spec.md §4.3, the payload is bits [25:6] of the raw instruction word.
func (c *CPU) raiseBreak(instr uint32) {
	c.code = (instr >> 6) & 0xFFFFF
	c.exception = Break
}

// raiseSyscall records the 20-bit syscall payload and raises Syscall.
func (c *CPU) raiseSyscall(instr uint32) {
	c.code = (instr >> 6) & 0xFFFFF
	c.exception = Syscall
}
