package inbound

import (
	"github.com/ardiansetya/goblast/internal/mailer/usecase"
	"github.com/ardiansetya/goblast/internal/pkg/router"
	"github.com/samber/lo"
)

// HTTPEndpoint exposes HTTP handlers for batch email dispatch.
type HTTPEndpoint struct {
	uc uc
}

// Upload accepts a workbook of recipients and queues a send batch.
// @Summary Upload send batch
// @Description Expands an .xlsx workbook into per-recipient emails and dispatches them in the background.
// @Tags Mailer
// @Accept mpfd
// @Produce json
// @Param file formData file true "Workbook with an email column"
// @Param smtp_email formData string true "SMTP account, also used as sender"
// @Param smtp_password formData string true "SMTP password"
// @Param subject formData string true "Email subject"
// @Param body formData string true "Email body template, {column} placeholders allowed"
// @Param Idempotency-Key header string false "Duplicate submission guard"
// @Security BearerAuth
// @Success 200 {object} router.successResponse{data=UploadResponse} "Batch accepted"
// @Failure 400 {object} router.errorResponse "Unreadable workbook or wrong file type"
// @Failure 401 {object} router.errorResponse "Missing token or SMTP login rejected"
// @Failure 422 {object} router.errorResponse "Validation error"
// @Failure 500 {object} router.errorResponse "Internal server error"
// @Router /api/v1/mailer/batches [post]
func (h *HTTPEndpoint) Upload(r *router.Request) (any, error) {
	file, filename, err := r.ReadFormFile("file")
	if err != nil {
		return nil, err
	}

	resp, err := h.uc.Upload(r.Context(), usecase.UploadInput{
		FileName:       filename,
		File:           file,
		SMTPEmail:      r.GetFormValue("smtp_email"),
		SMTPPassword:   r.GetFormValue("smtp_password"),
		Subject:        r.GetFormValue("subject"),
		Body:           r.GetFormValue("body"),
		IdempotencyKey: r.Header.Get("Idempotency-Key"),
	})
	if err != nil {
		return nil, err
	}

	return UploadResponse{
		message: resp.Message,
		BatchID: resp.BatchID,
		Total:   resp.Total,
	}, nil
}

// BatchStatus reports aggregate counts for one batch.
// @Summary Batch status
// @Description Returns sent/failed/pending counts, defaulting to the latest batch.
// @Tags Mailer
// @Produce json
// @Param batch_id query string false "Batch id, latest when omitted"
// @Security BearerAuth
// @Success 200 {object} router.successResponse{data=BatchStatusResponse} "Batch summary"
// @Failure 400 {object} router.errorResponse "Invalid batch id"
// @Failure 401 {object} router.errorResponse "Missing token"
// @Failure 500 {object} router.errorResponse "Internal server error"
// @Router /api/v1/mailer/batches/status [get]
func (h *HTTPEndpoint) BatchStatus(r *router.Request) (any, error) {
	batchID, err := r.GetQueryInt64("batch_id")
	if err != nil {
		return nil, err
	}

	resp, err := h.uc.BatchStatus(r.Context(), usecase.BatchStatusInput{BatchID: batchID})
	if err != nil {
		return nil, err
	}

	return BatchStatusResponse{
		BatchID: resp.BatchID,
		Total:   resp.Counts.Total,
		Sent:    resp.Counts.Sent,
		Failed:  resp.Counts.Failed,
		Pending: resp.Counts.Pending,
	}, nil
}

// Logs lists the caller's send history.
// @Summary Send logs
// @Description Returns a page of email records, newest first, optionally filtered by recipient.
// @Tags Mailer
// @Produce json
// @Param page query int false "Page number, 1-based"
// @Param search query string false "Recipient substring filter"
// @Security BearerAuth
// @Success 200 {object} router.successResponse{data=LogsResponse} "Send history page"
// @Failure 400 {object} router.errorResponse "Invalid page"
// @Failure 401 {object} router.errorResponse "Missing token"
// @Failure 500 {object} router.errorResponse "Internal server error"
// @Router /api/v1/mailer/logs [get]
func (h *HTTPEndpoint) Logs(r *router.Request) (any, error) {
	page, err := r.GetQueryInt32("page")
	if err != nil {
		return nil, err
	}

	resp, err := h.uc.Logs(r.Context(), usecase.LogsInput{
		Page:   page,
		Search: r.GetQuery("search"),
	})
	if err != nil {
		return nil, err
	}

	return LogsResponse{
		Emails:     lo.Map(resp.Emails, toEmailRecordResponse),
		TotalCount: resp.TotalCount,
		Page:       resp.Page,
		TotalPages: resp.TotalPages,
	}, nil
}

// Delete removes selected email records.
// @Summary Delete records
// @Description Deletes the given record ids owned by the caller.
// @Tags Mailer
// @Accept json
// @Produce json
// @Param request body DeleteRequest true "Record ids"
// @Security BearerAuth
// @Success 200 {object} router.successResponse{data=DeleteResponse} "Deletion result"
// @Failure 400 {object} router.errorResponse "Invalid request body"
// @Failure 401 {object} router.errorResponse "Missing token"
// @Failure 422 {object} router.errorResponse "Validation error"
// @Failure 500 {object} router.errorResponse "Internal server error"
// @Router /api/v1/mailer/emails [delete]
func (h *HTTPEndpoint) Delete(r *router.Request) (any, error) {
	var req DeleteRequest
	if err := r.DecodeBody(&req); err != nil {
		return nil, err
	}

	resp, err := h.uc.Delete(r.Context(), usecase.DeleteInput{IDs: req.IDs})
	if err != nil {
		return nil, err
	}

	return DeleteResponse{Deleted: resp.Deleted}, nil
}

// Clear removes every record the caller owns.
// @Summary Clear records
// @Description Deletes the caller's entire send history.
// @Tags Mailer
// @Produce json
// @Security BearerAuth
// @Success 200 {object} router.successResponse{data=DeleteResponse} "Deletion result"
// @Failure 401 {object} router.errorResponse "Missing token"
// @Failure 500 {object} router.errorResponse "Internal server error"
// @Router /api/v1/mailer/emails/clear [delete]
func (h *HTTPEndpoint) Clear(r *router.Request) (any, error) {
	resp, err := h.uc.Clear(r.Context())
	if err != nil {
		return nil, err
	}

	return DeleteResponse{Deleted: resp.Deleted}, nil
}

// ValidateSMTP checks SMTP credentials without sending.
// @Summary Validate SMTP credentials
// @Description Performs an SMTP login with the given credentials.
// @Tags Mailer
// @Accept json
// @Produce json
// @Param request body ValidateSMTPRequest true "SMTP credentials"
// @Success 200 {object} router.successResponse{data=ValidateSMTPResponse} "Credentials accepted"
// @Failure 400 {object} router.errorResponse "Invalid request body"
// @Failure 401 {object} router.errorResponse "SMTP login rejected"
// @Failure 422 {object} router.errorResponse "Validation error"
// @Failure 500 {object} router.errorResponse "Internal server error"
// @Router /api/v1/smtp/validate [post]
func (h *HTTPEndpoint) ValidateSMTP(r *router.Request) (any, error) {
	var req ValidateSMTPRequest
	if err := r.DecodeBody(&req); err != nil {
		return nil, err
	}

	resp, err := h.uc.ValidateSMTP(r.Context(), usecase.ValidateSMTPInput{
		SMTPEmail:    req.SMTPEmail,
		SMTPPassword: req.SMTPPassword,
	})
	if err != nil {
		return nil, err
	}

	return ValidateSMTPResponse{Valid: resp.Valid}, nil
}
