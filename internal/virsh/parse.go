package virsh

import (
	"strconv"
	"strings"
)

// ParseList parses the output of `virsh list`:
//
//	 Id   Name       State
//	--------------------------
//	 1    vm1        running
//	 -    vm2        shut off
//
// Header, separator and blank lines are ignored. Column widths vary with
// the longest name, so rows are split on whitespace and everything after
// the name is the state. A row with fewer than three columns, or with an id
// that is neither "-" nor a number, is skipped and counted.
//
// ErrParseFailure is returned when non-blank output has no header line.
func ParseList(output string) (ListResult, error) {
	var result ListResult
	sawHeader := false
	sawContent := false

	for _, line := range strings.Split(output, "\n") {
		trimmed := strings.TrimSpace(line)
		if trimmed == "" {
			continue
		}
		sawContent = true

		if isSeparator(trimmed) {
			continue
		}

		fields := strings.Fields(trimmed)
		if isListHeader(fields) {
			sawHeader = true
			continue
		}
		if !sawHeader {
			continue
		}

		if len(fields) < 3 || !validID(fields[0]) {
			result.Skipped++
			continue
		}

		result.Records = append(result.Records, VMRecord{
			ID:    fields[0],
			Name:  fields[1],
			State: VMState(strings.Join(fields[2:], " ")),
		})
	}

	if sawContent && !sawHeader {
		return ListResult{}, ErrParseFailure
	}
	return result, nil
}

func isSeparator(line string) bool {
	return strings.Trim(line, "-") == ""
}

func isListHeader(fields []string) bool {
	return len(fields) == 3 &&
		strings.EqualFold(fields[0], "Id") &&
		strings.EqualFold(fields[1], "Name") &&
		strings.EqualFold(fields[2], "State")
}

func validID(id string) bool {
	if id == "-" {
		return true
	}
	_, err := strconv.Atoi(id)
	return err == nil
}

// ParseDomIfAddr returns the first IPv4 address in `virsh domifaddr` output,
// without its prefix length.
//
//	 Name       MAC address          Protocol     Address
//	-------------------------------------------------------
//	 vnet0      52:54:00:12:34:56    ipv4         192.168.122.10/24
func ParseDomIfAddr(output string) (string, bool) {
	for _, line := range strings.Split(output, "\n") {
		fields := strings.Fields(line)
		if len(fields) < 4 || fields[2] != "ipv4" {
			continue
		}
		addr, _, _ := strings.Cut(fields[3], "/")
		if addr != "" {
			return addr, true
		}
	}
	return "", false
}
