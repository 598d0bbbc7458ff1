// Package mips32 implements a software interpreter for the MIPS32 release 2
// instruction subset: a 32-bit little-endian RISC ISA in the MIPS family.
//
// The core executes one instruction per call to Step, maintaining
// architectural state (program counter, 32-entry general-purpose register
// file, a 64-bit multiply/divide accumulator aliased as HI/LO, and a
// one-slot branch-delay shadow) and signalling architectural exceptions
// back to the host via Step's return value.
//
// Out of scope: any memory-management unit, TLB, cache or coprocessor-0
// machinery; floating point (COP1), COP2/COP3, privileged mode, interrupts
// and ERET; host-side syscall/break/trap handling (the core only reports
// them and exposes the encoded code field via CallCode); program loading,
// image formats, debuggers, disassembly and CLI drivers. These are the
// host's concern.
package mips32

import "log"

// CPU is one MIPS32r2 virtual processor. The zero value is not usable;
// construct with New.
type CPU struct {
	gpr [32]uint32
	pc  uint32

	hi uint32
	lo uint32

	branchPC      uint32
	branchPending bool

	code      uint32
	exception Result

	bus Bus

	// Logger, when non-nil, receives one line per raised exception and
	// per reserved-instruction dispatch miss. It is nil by default: the
	// core never logs on its own, since exception reporting is
	// exclusively the return value's job. This is purely an optional
	// trace aid for a host embedding the core.
	Logger *log.Logger
}

// New constructs a CPU wired to bus with the program counter set to
// resetPC. All other architectural state is zeroed, per spec.md §3.
func New(bus Bus, resetPC uint32) *CPU {
	c := &CPU{bus: bus}
	c.Reset(resetPC)
	return c
}

// Reset zeroes all architectural state except the installed bus and sets
// pc to resetPC. Equivalent to spec.md §6's init operation.
func (c *CPU) Reset(resetPC uint32) {
	c.gpr = [32]uint32{}
	c.hi = 0
	c.lo = 0
	c.branchPC = 0
	c.branchPending = false
	c.code = 0
	c.exception = OK
	c.pc = resetPC
}

// CallCode returns the code payload captured by the most recent
// Break/Syscall/Trap result. It is only meaningful immediately after Step
// returned one of those three values.
func (c *CPU) CallCode() uint32 {
	return c.code
}

// Step fetches and executes exactly one instruction, returning the
// architectural outcome. See spec.md §4.1 for the full sequencing
// contract.
func (c *CPU) Step() Result {
	c.gpr[0] = 0
	c.exception = OK

	instr := c.readAligned(Word, c.pc)
	if c.exception != OK {
		// A misaligned pc aborts the step immediately: no control
		// advance, no dispatch, no other state change.
		if c.Logger != nil {
			c.Logger.Printf("mips32: %s fetching at pc=%#08x", c.exception, c.pc)
		}
		return c.exception
	}

	if c.branchPending {
		c.branchPending = false
		c.pc = c.branchPC
	} else {
		c.pc += 4
	}

	opcode := instr >> 26
	decoded := false

	switch classify(opcode) {
	case famSpecial:
		decoded = c.execSpecial(instr)
	case famSpecial2:
		decoded = c.execSpecial2(instr)
	case famSpecial3:
		decoded = c.execSpecial3(instr)
	case famJType:
		decoded = c.execJType(instr)
	case famCOP:
		decoded = false
	default:
		decoded = c.execIType(instr)
	}

	if c.exception != OK {
		if c.Logger != nil {
			c.Logger.Printf("mips32: %s at pc=%#08x instr=%#08x", c.exception, c.pc, instr)
		}
		return c.exception
	}

	if !decoded {
		if c.Logger != nil {
			c.Logger.Printf("mips32: reserved instruction %#08x at pc=%#08x", instr, c.pc)
		}
		return ReservedInstr
	}

	return OK
}

// setReg writes v into general-purpose register n, except that writes to
// r0 are always discarded: r0 is hardwired to zero by the architecture.
func (c *CPU) setReg(n uint32, v uint32) {
	if n == 0 {
		return
	}
	c.gpr[n] = v
}

// GPR returns a snapshot of the general-purpose register file.
func (c *CPU) GPR() [32]uint32 {
	return c.gpr
}

// SetGPR sets general-purpose register n (0-31) directly. Writes to r0 are
// ignored, since r0 always reads as zero.
func (c *CPU) SetGPR(n int, v uint32) {
	if n == 0 {
		return
	}
	c.gpr[n] = v
}

// PC returns the program counter: the address of the next instruction to
// be fetched.
func (c *CPU) PC() uint32 {
	return c.pc
}

// SetPC sets the program counter directly, e.g. to install a reset vector
// or redirect execution after the host services an exception.
func (c *CPU) SetPC(pc uint32) {
	c.pc = pc
}

// HiLo returns the two halves of the 64-bit multiply/divide accumulator.
func (c *CPU) HiLo() (hi, lo uint32) {
	return c.hi, c.lo
}

// SetHiLo sets the two halves of the 64-bit multiply/divide accumulator
// directly.
func (c *CPU) SetHiLo(hi, lo uint32) {
	c.hi = hi
	c.lo = lo
}

// acc reads HI:LO as the 64-bit accumulator value mult/div/madd/msub
// operate on.
func (c *CPU) acc() uint64 {
	return uint64(c.hi)<<32 | uint64(c.lo)
}

// setAcc writes the 64-bit accumulator value back into HI:LO.
func (c *CPU) setAcc(v uint64) {
	c.hi = uint32(v >> 32)
	c.lo = uint32(v)
}

// BranchPending reports whether a branch is currently scheduled for the
// delay slot about to execute.
func (c *CPU) BranchPending() bool {
	return c.branchPending
}
