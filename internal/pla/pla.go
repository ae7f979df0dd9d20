// Package pla reads and writes Berkeley/espresso PLA files.
//
// Input column c is variable c (bit c of a row index), so the leftmost
// column is A.
package pla

import (
	"bufio"
	"io"
	"strconv"
	"strings"

	"github.com/pkg/errors"

	"github.com/pborges/qmin/internal/truth"
)

// File is a parsed PLA with one truth table per output.
type File struct {
	Inputs      int
	Outputs     int
	InputNames  []string
	OutputNames []string
	Tables      [][]int
}

// Parse reads PLA text. Cubes mark output j with '1' to add their rows to
// table j; '0', '~' and '-' add nothing.
func Parse(r io.Reader) (*File, error) {
	f := &File{Inputs: -1, Outputs: -1}
	scanner := bufio.NewScanner(r)
	line := 0
	for scanner.Scan() {
		line++
		text := scanner.Text()
		if idx := strings.IndexByte(text, '#'); idx >= 0 {
			text = text[:idx]
		}
		text = strings.TrimSpace(text)
		if text == "" {
			continue
		}
		var err error
		if strings.HasPrefix(text, ".") {
			var done bool
			done, err = f.directive(text)
			if err == nil && done {
				break
			}
		} else {
			err = f.cube(text)
		}
		if err != nil {
			return nil, errors.Wrapf(err, "line %d", line)
		}
	}
	if err := scanner.Err(); err != nil {
		return nil, errors.Wrap(err, "read pla")
	}
	if f.Inputs < 0 {
		return nil, errors.New("missing .i directive")
	}
	if err := f.ensureTables(); err != nil {
		return nil, err
	}
	return f, nil
}

func (f *File) directive(text string) (bool, error) {
	parts := strings.Fields(text)
	switch parts[0] {
	case ".i", ".o", ".p":
		if len(parts) != 2 {
			return false, errors.Errorf("%s takes one argument", parts[0])
		}
		v, err := strconv.Atoi(parts[1])
		if err != nil || v < 0 {
			return false, errors.Errorf("invalid count %q", parts[1])
		}
		if parts[0] != ".p" && f.Tables != nil {
			return false, errors.Errorf("%s after first cube", parts[0])
		}
		switch parts[0] {
		case ".i":
			if v > truth.MaxVars {
				return false, errors.Wrapf(truth.ErrTooManyVars, "got %d", v)
			}
			f.Inputs = v
		case ".o":
			f.Outputs = v
		}
	case ".ilb", ".ob":
		if f.Tables != nil {
			return false, errors.Errorf("%s after first cube", parts[0])
		}
		if parts[0] == ".ilb" {
			f.InputNames = parts[1:]
		} else {
			f.OutputNames = parts[1:]
		}
	case ".type":
		if len(parts) != 2 || (parts[1] != "f" && parts[1] != "fd") {
			return false, errors.Errorf("unsupported type %q", strings.Join(parts[1:], " "))
		}
	case ".e", ".end":
		return true, nil
	default:
		return false, errors.Errorf("unknown directive %q", parts[0])
	}
	return false, nil
}

func (f *File) ensureTables() error {
	if f.Tables != nil {
		return nil
	}
	if f.Inputs < 0 {
		return errors.New("cube before .i directive")
	}
	if f.Outputs < 0 {
		f.Outputs = 1
	}
	if f.InputNames != nil && len(f.InputNames) != f.Inputs {
		return errors.Errorf(".ilb names %d inputs, want %d", len(f.InputNames), f.Inputs)
	}
	if f.OutputNames != nil && len(f.OutputNames) != f.Outputs {
		return errors.Errorf(".ob names %d outputs, want %d", len(f.OutputNames), f.Outputs)
	}
	f.Tables = make([][]int, f.Outputs)
	for i := range f.Tables {
		f.Tables[i] = make([]int, 1<<f.Inputs)
	}
	return nil
}

func (f *File) cube(text string) error {
	if err := f.ensureTables(); err != nil {
		return err
	}
	parts := strings.Fields(text)
	in, out := "", ""
	switch {
	case len(parts) == 2:
		in, out = parts[0], parts[1]
	case len(parts) == 1 && f.Inputs == 0:
		in, out = "", parts[0]
	case len(parts) == 1 && f.Outputs == 1:
		in, out = parts[0], "1"
	default:
		return errors.Errorf("invalid cube %q", text)
	}
	if len(in) != f.Inputs {
		return errors.Errorf("cube has %d inputs, want %d", len(in), f.Inputs)
	}
	if len(out) != f.Outputs {
		return errors.Errorf("cube has %d outputs, want %d", len(out), f.Outputs)
	}

	var value, mask uint64
	for c := 0; c < len(in); c++ {
		bit := uint64(1) << c
		switch in[c] {
		case '0':
			mask |= bit
		case '1':
			mask |= bit
			value |= bit
		case '-':
		default:
			return errors.Errorf("invalid input %q in cube", in[c])
		}
	}
	for j := 0; j < len(out); j++ {
		switch out[j] {
		case '1':
			for row := range f.Tables[j] {
				if uint64(row)&mask == value {
					f.Tables[j][row] = 1
				}
			}
		case '0', '~', '-':
		default:
			return errors.Errorf("invalid output %q in cube", out[j])
		}
	}
	return nil
}

// OutputName is the .ob name of output j, F for a lone unnamed output and
// f<j> otherwise.
func (f *File) OutputName(j int) string {
	switch {
	case j < len(f.OutputNames):
		return f.OutputNames[j]
	case f.Outputs == 1:
		return "F"
	}
	return "f" + strconv.Itoa(j)
}
