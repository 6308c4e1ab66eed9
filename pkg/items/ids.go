package items

import (
	"strconv"

	"github.com/google/uuid"
)

// IDGenerator returns a candidate id for a new item of the given kind.
// The store retries when a candidate was already issued.
type IDGenerator func(kind Kind) string

// RootID is the id of the root folder of a fresh store.
const RootID = "root"

var newUUID = uuid.NewString

func newRandomID(kind Kind) string {
	return string(kind) + "-" + newUUID()
}

// SequentialIDs returns a generator producing kind-1, kind-2, ... Handy in tests.
func SequentialIDs() IDGenerator {
	var n int
	return func(kind Kind) string {
		n++
		return string(kind) + "-" + strconv.Itoa(n)
	}
}
