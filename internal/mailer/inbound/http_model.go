package inbound

import (
	"time"

	"github.com/ardiansetya/goblast/internal/mailer/entity"
)

type UploadResponse struct {
	message string

	BatchID int64 `json:"batch_id,string"`
	Total   int   `json:"total"`
}

func (u UploadResponse) Message() string {
	return u.message
}

type BatchStatusResponse struct {
	BatchID int64 `json:"batch_id,string"`
	Total   int64 `json:"total"`
	Sent    int64 `json:"sent"`
	Failed  int64 `json:"failed"`
	Pending int64 `json:"pending"`
}

type EmailRecordResponse struct {
	ID        int64     `json:"id,string"`
	UserID    int64     `json:"user_id,string"`
	BatchID   int64     `json:"batch_id,string"`
	Recipient string    `json:"recipient"`
	Subject   string    `json:"subject"`
	Body      string    `json:"body"`
	Status    string    `json:"status"`
	Error     *string   `json:"error"`
	Timestamp time.Time `json:"timestamp"`
}

func toEmailRecordResponse(rec entity.EmailRecord, _ int) EmailRecordResponse {
	return EmailRecordResponse{
		ID:        rec.ID,
		UserID:    rec.UserID,
		BatchID:   rec.BatchID,
		Recipient: rec.Recipient,
		Subject:   rec.Subject,
		Body:      rec.Body,
		Status:    rec.Status.String(),
		Error:     rec.Error,
		Timestamp: rec.CreatedAt,
	}
}

type LogsResponse struct {
	Emails     []EmailRecordResponse `json:"emails"`
	TotalCount int64                 `json:"total_count"`
	Page       int32                 `json:"page"`
	TotalPages int32                 `json:"total_pages"`
}

func (l LogsResponse) Meta() map[string]any {
	return map[string]any{
		"page":        l.Page,
		"total_pages": l.TotalPages,
		"total_count": l.TotalCount,
	}
}

type DeleteRequest struct {
	IDs []int64 `json:"ids"`
}

type DeleteResponse struct {
	Deleted int64 `json:"deleted"`
}

type ValidateSMTPRequest struct {
	SMTPEmail    string `json:"smtp_email"`
	SMTPPassword string `json:"smtp_password"`
}

type ValidateSMTPResponse struct {
	Valid bool `json:"valid"`
}

func (ValidateSMTPResponse) Message() string {
	return "SMTP credentials are valid."
}
