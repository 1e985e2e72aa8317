// Package stats computes read-only aggregates over books and borrows.
package stats

// Summary is the global aggregate: empty tables yield zeros, never null.
type Summary struct {
	TotalBorrowedQuantity int `json:"totalBorrowedQuantity"`
	TotalBorrowRecords    int `json:"totalBorrowRecords"`
	TotalBooks            int `json:"totalBooks"`
	TotalCopies           int `json:"totalCopies"`
}
