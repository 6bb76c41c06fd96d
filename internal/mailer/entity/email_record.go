// Package entity holds the domain types of the mailer module.
package entity

import "time"

// EmailRecord is one recipient-level send job inside a batch.
//
// Records for rows that fail validation are persisted immediately in failed
// state so the batch history stays complete.
type EmailRecord struct {
	ID        int64
	UserID    int64
	BatchID   int64
	Recipient string
	Subject   string
	Body      string
	Status    Status
	Error     *string
	CreatedAt time.Time
}

// StatusCounts aggregates record outcomes for one batch.
type StatusCounts struct {
	Total   int64
	Sent    int64
	Failed  int64
	Pending int64
}

// LogFilter selects a page of records for one owner.
type LogFilter struct {
	UserID int64
	Page   int32
	Search string
}
