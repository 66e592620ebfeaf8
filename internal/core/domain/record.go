package domain

import "time"

// Record is a single ledger entry. The date is assigned by the server at
// insertion time and the value is expressed in the smallest currency unit,
// so it is always a positive integer.
type Record struct {
	UserID      int64     `json:"userId"`
	Date        time.Time `json:"date"`
	Description string    `json:"description"`
	Value       int64     `json:"value"`
}

// Statement is the result of listing a user's ledger: every record owned by
// the session's user, most recent first, plus the owner's display name.
// Records is empty (not nil) for a valid session with no history.
type Statement struct {
	Records   []Record `json:"records"`
	OwnerName string   `json:"name"`
}
