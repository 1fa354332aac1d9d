package cancel_task

// CancelTaskRequest тело запроса на отмену задачи
type CancelTaskRequest struct {
	Reason string `json:"reason"`
}
