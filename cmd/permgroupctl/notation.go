package main

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/permgroup/hcgt/domain"
	"github.com/permgroup/hcgt/permloop"
	"github.com/permgroup/hcgt/permutation"
)

// parsePermutation parses one permutation written as concatenated
// parenthesized cycles, e.g. "(1 2 3)(4 5)".
func parsePermutation(dom domain.Domain[int], s string) (*permutation.Permutation[int], error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return permutation.Identity(dom), nil
	}

	var loops []*permloop.Loop[int]
	for len(s) > 0 {
		if s[0] != '(' {
			return nil, fmt.Errorf("permgroupctl: expected '(' in %q", s)
		}
		end := strings.IndexByte(s, ')')
		if end < 0 {
			return nil, fmt.Errorf("permgroupctl: unterminated cycle in %q", s)
		}

		fields := strings.Fields(s[1:end])
		elems := make([]int, 0, len(fields))
		for _, f := range fields {
			n, err := strconv.Atoi(f)
			if err != nil {
				return nil, fmt.Errorf("permgroupctl: bad element %q: %w", f, err)
			}
			elems = append(elems, n)
		}

		loop, err := permloop.New(elems...)
		if err != nil {
			return nil, fmt.Errorf("permgroupctl: invalid cycle %q: %w", s[:end+1], err)
		}
		loops = append(loops, loop)

		s = strings.TrimSpace(s[end+1:])
	}

	return permutation.New(dom, loops), nil
}

// parseGenerators parses a semicolon-separated list of permutations, each
// in the notation parsePermutation accepts, e.g. "(1 2 3)(4 5); (2 6)(3 5)".
func parseGenerators(dom domain.Domain[int], s string) ([]*permutation.Permutation[int], error) {
	parts := strings.Split(s, ";")
	gens := make([]*permutation.Permutation[int], 0, len(parts))
	for _, p := range parts {
		p = strings.TrimSpace(p)
		if p == "" {
			continue
		}
		perm, err := parsePermutation(dom, p)
		if err != nil {
			return nil, err
		}
		gens = append(gens, perm)
	}

	return gens, nil
}
