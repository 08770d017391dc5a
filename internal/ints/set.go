// Package ints implements a set of small non-negative integers.
package ints

import (
	"math/bits"
)

const intSize = bits.UintSize

// Set is a bit set of non-negative integers. Zero value is an empty set.
type Set struct {
	chunks []uint
}

func NewSet(items ...int) *Set {
	s := &Set{}
	return s.Add(items...)
}

func (s *Set) Add(items ...int) *Set {
	for _, item := range items {
		if item < 0 {
			continue
		}

		i := item / intSize
		for len(s.chunks) <= i {
			s.chunks = append(s.chunks, 0)
		}
		s.chunks[i] |= 1 << (item % intSize)
	}
	return s
}

func (s *Set) Contains(item int) bool {
	if item < 0 {
		return false
	}

	i := item / intSize
	return i < len(s.chunks) && s.chunks[i]&(1<<(item%intSize)) != 0
}

// Union adds all items of t to s. Returns true if s has changed.
func (s *Set) Union(t *Set) bool {
	changed := false
	for len(s.chunks) < len(t.chunks) {
		s.chunks = append(s.chunks, 0)
	}
	for i, c := range t.chunks {
		if s.chunks[i]|c != s.chunks[i] {
			s.chunks[i] |= c
			changed = true
		}
	}
	return changed
}

func (s *Set) IsEmpty() bool {
	for _, c := range s.chunks {
		if c != 0 {
			return false
		}
	}
	return true
}

func (s *Set) Len() int {
	n := 0
	for _, c := range s.chunks {
		n += bits.OnesCount(c)
	}
	return n
}

// ToSlice returns set items in ascending order.
func (s *Set) ToSlice() []int {
	result := make([]int, 0, s.Len())
	for i, c := range s.chunks {
		for c != 0 {
			b := bits.TrailingZeros(c)
			result = append(result, i*intSize+b)
			c &= c - 1
		}
	}
	return result
}

func (s *Set) Copy() *Set {
	return &Set{append([]uint(nil), s.chunks...)}
}
