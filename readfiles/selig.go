package readfiles

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/pkg/errors"

	"github.com/notargets/gofoil/geometry2D"
	"github.com/notargets/gofoil/types"
	"github.com/notargets/gofoil/utils"
)

/*
Selig format:
	line 1:   free text name, the first two whitespace separated tokens are joined without a separator
	line 2..: two floating point values "x y" per line, tracing the section from the trailing edge over
	          the upper surface, around the leading edge and back along the lower surface
*/

func ReadSeligFile(filename string, verbose bool) (name string, pts []geometry2D.Point, err error) {
	var (
		file *os.File
	)
	if verbose {
		fmt.Printf("Reading Selig file named: %s\n", filename)
	}
	if file, err = os.Open(filename); err != nil {
		err = errors.Wrapf(err, "unable to open file %s", filename)
		return
	}
	defer file.Close()
	if name, pts, err = ParseSelig(file); err != nil {
		return
	}
	if verbose {
		fmt.Printf("Read %d coordinates for airfoil %s\n", len(pts), name)
	}
	return
}

// ParseSelig returns either the full section or an error with no geometry
func ParseSelig(r io.Reader) (name string, pts []geometry2D.Point, err error) {
	if name, pts, err = parseSelig(r); err != nil {
		return "", nil, err
	}
	return
}

func parseSelig(r io.Reader) (name string, pts []geometry2D.Point, err error) {
	var (
		scanner = bufio.NewScanner(r)
		lineNum int
	)
	if !scanner.Scan() {
		if err = scanner.Err(); err != nil {
			err = errors.Wrap(err, "reading airfoil name")
			return
		}
		err = types.NewParseError(1, "", "missing airfoil name line")
		return
	}
	lineNum++
	if name, err = readName(scanner.Text(), lineNum); err != nil {
		return
	}
	for scanner.Scan() {
		var pt geometry2D.Point
		lineNum++
		line := scanner.Text()
		if len(strings.TrimSpace(line)) == 0 {
			continue
		}
		if pt, err = readCoordinate(line, lineNum); err != nil {
			return
		}
		pts = append(pts, pt)
	}
	if err = scanner.Err(); err != nil {
		err = errors.Wrapf(err, "reading coordinates after line %d", lineNum)
		return
	}
	if len(pts) == 0 {
		err = types.NewParseError(lineNum+1, "", "no coordinates found for airfoil %s", name)
		return
	}
	return
}

func readName(line string, lineNum int) (name string, err error) {
	fields := strings.Fields(line)
	switch len(fields) {
	case 0:
		err = types.NewParseError(lineNum, line, "empty airfoil name")
	case 1:
		name = fields[0]
	default:
		name = fields[0] + fields[1]
	}
	return
}

func readCoordinate(line string, lineNum int) (pt geometry2D.Point, err error) {
	fields := strings.Fields(line)
	if len(fields) != 2 {
		err = types.NewParseError(lineNum, line, "expected 2 coordinates, found %d", len(fields))
		return
	}
	for i, field := range fields {
		var f float64
		if f, err = strconv.ParseFloat(field, 64); err != nil {
			err = types.NewParseError(lineNum, line, "non numeric coordinate %q", field)
			return
		}
		if utils.IsNan(f) {
			err = types.NewParseError(lineNum, line, "coordinate %q is not finite", field)
			return
		}
		pt.X[i] = f
	}
	return
}

// WriteSelig writes pts in the order given, the name is written as is
func WriteSelig(w io.Writer, name string, pts []geometry2D.Point) (err error) {
	bw := bufio.NewWriter(w)
	if _, err = fmt.Fprintf(bw, "%s\n", name); err != nil {
		return
	}
	for _, pt := range pts {
		if _, err = fmt.Fprintf(bw, "%12.8f %12.8f\n", pt.X[0], pt.X[1]); err != nil {
			return
		}
	}
	return bw.Flush()
}

func WriteSeligFile(filename, name string, pts []geometry2D.Point, verbose bool) (err error) {
	var (
		file *os.File
	)
	if file, err = os.Create(filename); err != nil {
		return errors.Wrapf(err, "unable to create file %s", filename)
	}
	if err = WriteSelig(file, name, pts); err != nil {
		file.Close()
		return errors.Wrapf(err, "writing %s", filename)
	}
	if verbose {
		fmt.Printf("Wrote %d coordinates to %s\n", len(pts), filename)
	}
	return file.Close()
}
