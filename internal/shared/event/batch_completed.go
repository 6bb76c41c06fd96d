package event

const BatchCompletedDestination string = "mailer_batch_completed"

type BatchCompletedMessage struct {
	BatchID int64 `json:"batch_id,string"`
	UserID  int64 `json:"user_id,string"`
	Total   int   `json:"total"`
	Sent    int   `json:"sent"`
	Failed  int   `json:"failed"`
	Pending int   `json:"pending"`
}
