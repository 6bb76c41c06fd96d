package event

const BatchCreatedDestination string = "mailer_batch_created"

type BatchCreatedMessage struct {
	BatchID int64 `json:"batch_id,string"`
	UserID  int64 `json:"user_id,string"`
	Total   int   `json:"total"`
	Pending int   `json:"pending"`
	Failed  int   `json:"failed"`
}
