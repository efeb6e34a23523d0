// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package dictionary

import (
	"fmt"
	"io"
	"strings"
)

// Empty - text of a dictionary with no items
const Empty = "<EMPTY>"

// String - the name followed by each key and value in order,
// separated by single spaces
func (d *Dictionary[K, V]) String() string {
	s := strings.Builder{}
	d.WriteTo(&s)
	return s.String()
}

// WriteTo - write the same text as String
func (d *Dictionary[K, V]) WriteTo(w io.Writer) (int64, error) {
	if 0 == d.Size() {
		n, err := io.WriteString(w, Empty)
		return int64(n), err
	}

	total := int64(0)
	n, err := io.WriteString(w, d.name)
	total += int64(n)
	if nil != err {
		return total, err
	}
	for it := d.CBegin(); it.Valid(); it.Next() {
		n, err := fmt.Fprintf(w, " %v %v", it.Key(), it.Value())
		total += int64(n)
		if nil != err {
			return total, err
		}
	}
	return total, nil
}

// Print - ASCII picture of the underlying tree
func (d *Dictionary[K, V]) Print(w io.Writer) int {
	return d.data.Print(w, true)
}
