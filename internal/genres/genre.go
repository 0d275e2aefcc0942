package genres

import (
	"fmt"

	"github.com/google/uuid"
)

// Genre is identified solely by its ID; two genres are equal when their IDs are.
type Genre struct {
	ID uuid.UUID
}

// New returns a genre with a fresh random ID.
func New() Genre {
	return Genre{ID: uuid.New()}
}

// Parse builds a genre from its textual UUID.
func Parse(s string) (Genre, error) {
	id, err := uuid.Parse(s)
	if err != nil {
		return Genre{}, fmt.Errorf("parse genre id %q: %w", s, err)
	}
	return Genre{ID: id}, nil
}

func (g Genre) String() string {
	return g.ID.String()
}

// Clone returns a copy of list, or nil when it is empty.
func Clone(list []Genre) []Genre {
	if len(list) == 0 {
		return nil
	}
	dup := make([]Genre, len(list))
	copy(dup, list)
	return dup
}

// Equal reports whether a and b hold the same genres in the same order.
func Equal(a, b []Genre) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}
	return true
}
