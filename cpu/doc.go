// Package cpu implements the Very Simple Computer (VSC) and its machine code loader.
//
// The machine has 10000 memory cells of five decimal digits. The first digit
// of a word is a sign (0 positive, 1 negative) and the other four hold the
// magnitude, so a word holds -9999 to +9999.
//
// The register file is an accumulator (A), an instruction pointer (IP), a
// stack pointer (SP) and base pointer (BP), and the ZERO and NEGATIVE flags.
// The stack lives at the top of memory and grows downward from BP.
//
// Instructions are one or two words long. The leading digit selects the
// operation for direct addressing (1aaaa to 8aaaa); the 0xxxx family holds
// HLT, INC, DEC, PUSH and POP, and the 9xxxx family holds the flag branches
// and the immediate, indirect and two-word forms.
package cpu
