package models

import (
	"fmt"
	"math/rand/v2"
	"regexp"
	"strings"
)

const transactionIDCharset = "ABCDEFGHIJKLMNOPQRSTUVWXYZ0123456789"

// TransactionIDPattern matches the four-group payment transaction id format.
var TransactionIDPattern = regexp.MustCompile(`^[A-Z0-9]{4}-[A-Z0-9]{4}-[A-Z0-9]{4}-[A-Z0-9]{4}$`)

// NewTransactionID returns a random payment transaction id of the form
// XXXX-XXXX-XXXX-XXXX. Uniqueness is enforced by the database constraint,
// not here; callers retry on collision.
func NewTransactionID() string {
	var b strings.Builder
	b.Grow(19)
	for group := 0; group < 4; group++ {
		if group > 0 {
			b.WriteByte('-')
		}
		for i := 0; i < 4; i++ {
			b.WriteByte(transactionIDCharset[rand.IntN(len(transactionIDCharset))])
		}
	}
	return b.String()
}

// NewTDTNumber returns a tourist development tax account number of the
// form TDT-<year>-<6 digits>.
func NewTDTNumber(year int) string {
	return fmt.Sprintf("TDT-%d-%06d", year, 100000+rand.IntN(900000))
}
