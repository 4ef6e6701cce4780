package shared

import "time"

// Clock supplies the current time for transaction stamping. It is abstracted
// so the account entity and ledger service can be exercised with a
// deterministic time source in tests.
type Clock interface {
	Now() time.Time
}
