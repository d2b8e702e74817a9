// SPDX-License-Identifier: MIT

package features

import (
	"encoding/binary"
	"fmt"

	"github.com/cespare/xxhash/v2"
)

// keyVersion is bumped whenever the table layout changes, so stale cache
// entries stop matching.
const keyVersion = 1

// Key derives the cache key of a table from the ordered collection names and
// the ordered feature function names. Every name is length-prefixed, so
// ("ab","c") and ("a","bc") never collide by concatenation.
func Key(collections, funcs []string) string {
	d := xxhash.New()
	var scrap [binary.MaxVarintLen64]byte

	write := func(names []string) {
		n := binary.PutUvarint(scrap[:], uint64(len(names)))
		_, _ = d.Write(scrap[:n])
		for _, s := range names {
			n = binary.PutUvarint(scrap[:], uint64(len(s)))
			_, _ = d.Write(scrap[:n])
			_, _ = d.WriteString(s)
		}
	}
	write(collections)
	write(funcs)

	return fmt.Sprintf("fv%d-%016x", keyVersion, d.Sum64())
}
