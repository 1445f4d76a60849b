// This file is part of Gestencil.
//
// Gestencil is free software: you can redistribute it and/or modify
// it under the terms of the GNU General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// Gestencil is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU General Public License for more details.
//
// You should have received a copy of the GNU General Public License
// along with Gestencil.  If not, see <https://www.gnu.org/licenses/>.

package modalflag

import (
	"errors"
	"flag"
	"io"
	"strings"
)

// Modes parses a command line one mode at a time. The Output field should be
// set before calling Parse() otherwise help messages will not be seen.
type Modes struct {
	// where help messages are written
	Output io.Writer

	// the flags for the current mode. replaced by NewMode()
	flags  *flag.FlagSet
	parsed bool

	// command line and the index of the first argument for the current mode
	args    []string
	argsIdx int

	// sub-modes for the current mode. the first entry is the default
	subModes []string

	// every mode selected so far. never reset
	path []string

	additionalHelp string
}

func (md *Modes) String() string {
	return md.Path()
}

// Mode returns the most recently selected mode. Returns the empty string if
// no mode has been selected.
func (md *Modes) Mode() string {
	if len(md.path) == 0 {
		return ""
	}
	return md.path[len(md.path)-1]
}

// Path returns every mode selected so far separated by a forward slash.
func (md *Modes) Path() string {
	return strings.Join(md.path, "/")
}

// NewArgs begins parsing of a new command line. The program name should not
// be included.
func (md *Modes) NewArgs(args []string) {
	md.args = args
	md.argsIdx = 0
	md.NewMode()
}

// NewMode discards the flags and sub-modes of the current mode. Flags added
// after this call will be parsed from the argument following the most
// recently selected mode.
func (md *Modes) NewMode() {
	md.flags = flag.NewFlagSet("", flag.ContinueOnError)
	md.subModes = md.subModes[:0]
	md.additionalHelp = ""
	md.parsed = false
}

// AdditionalHelp is printed after the list of flags and sub-modes.
func (md *Modes) AdditionalHelp(help string) {
	md.additionalHelp = help
}

// Parsed returns true if Parse() has been called since the last call to
// NewMode(). This is true even if Parse() returned an error.
func (md *Modes) Parsed() bool {
	return md.parsed
}

// ParseResult is returned by Parse().
type ParseResult int

// List of valid ParseResult values.
const (
	// parsing was successful. if sub-modes were added then Mode() will
	// return the selected mode
	ParseContinue ParseResult = iota

	// help was requested and has been written to Output
	ParseHelp

	// the command line could not be parsed. the error is returned alongside
	// this value
	ParseError
)

// Parse the arguments of the current mode. Expected usage:
//
//	switch r, err := md.Parse(); r {
//	case modalflag.ParseHelp:
//		return nil
//	case modalflag.ParseError:
//		return err
//	}
func (md *Modes) Parse() (ParseResult, error) {
	md.parsed = true

	hw := &helpWriter{}
	md.flags.SetOutput(hw)

	err := md.flags.Parse(md.args[md.argsIdx:])
	if err != nil {
		if errors.Is(err, flag.ErrHelp) {
			hw.help(md.Output, md.Path(), md.subModes, md.additionalHelp)
			return ParseHelp, nil
		}

		// an unknown flag may belong to the default sub-mode
		if len(md.subModes) == 0 {
			return ParseError, err
		}
		md.path = append(md.path, md.subModes[0])
		return ParseContinue, nil
	}

	if len(md.subModes) == 0 {
		return ParseContinue, nil
	}

	// arguments for the next mode begin after the flags of this mode and
	// after the name of the mode if one was given
	md.argsIdx = len(md.args) - md.flags.NArg()

	mode := md.subModes[0]
	arg := strings.ToUpper(md.flags.Arg(0))
	for _, m := range md.subModes {
		if m == arg {
			mode = m
			md.argsIdx++
			break
		}
	}
	md.path = append(md.path, mode)

	return ParseContinue, nil
}

// RemainingArgs returns the arguments that were not consumed by Parse().
func (md *Modes) RemainingArgs() []string {
	return md.flags.Args()
}

// GetArg returns the numbered argument from RemainingArgs(). Returns the empty
// string if there is no such argument.
func (md *Modes) GetArg(i int) string {
	return md.flags.Arg(i)
}

// AddSubModes adds to the list of sub-modes for the next call to Parse(). The
// first sub-mode is the default. Sub-modes are case insensitive.
func (md *Modes) AddSubModes(subModes ...string) {
	for _, m := range subModes {
		md.subModes = append(md.subModes, strings.ToUpper(m))
	}
}

// AddBool flag for next call to Parse().
func (md *Modes) AddBool(name string, value bool, usage string) *bool {
	return md.flags.Bool(name, value, usage)
}

// AddInt flag for next call to Parse().
func (md *Modes) AddInt(name string, value int, usage string) *int {
	return md.flags.Int(name, value, usage)
}

// AddString flag for next call to Parse().
func (md *Modes) AddString(name string, value string, usage string) *string {
	return md.flags.String(name, value, usage)
}

// AddVar adds a flag of a type that implements the flag.Value interface.
func (md *Modes) AddVar(value flag.Value, name string, usage string) {
	md.flags.Var(value, name, usage)
}
