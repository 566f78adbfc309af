package util

import (
	"fmt"
	"strconv"
	"strings"
)

// IntSliceFlag is a comma separated list of non-negative integers,
// such as the sample sizes "10,1000,100000".
// it implements pflag.Value so it can be registered directly with cobra.
type IntSliceFlag []int

func (i *IntSliceFlag) Set(value string) error {
	var parsed []int
	for _, split := range strings.Split(value, ",") {
		split = strings.TrimSpace(split)
		if split == "" {
			continue
		}
		n, err := strconv.Atoi(split)
		if err != nil {
			return err
		}
		if n < 0 {
			return fmt.Errorf("negative value %d", n)
		}
		parsed = append(parsed, n)
	}
	*i = parsed
	return nil
}

func (i *IntSliceFlag) String() string {
	// This is just a 1-liner to print a slice as a comma separated list.
	return strings.Trim(strings.Replace(fmt.Sprint([]int(*i)), " ", ",", -1), "[]")
}

func (i *IntSliceFlag) Type() string {
	return "ints"
}

// ParseIntSlice parses a comma separated list of non-negative integers.
func ParseIntSlice(value string) ([]int, error) {
	var f IntSliceFlag
	if err := f.Set(value); err != nil {
		return nil, err
	}
	return []int(f), nil
}

// SplitList splits a comma separated list, dropping empty entries and surrounding whitespace.
func SplitList(value string) []string {
	var out []string
	for _, split := range strings.Split(value, ",") {
		split = strings.TrimSpace(split)
		if split != "" {
			out = append(out, split)
		}
	}
	return out
}
