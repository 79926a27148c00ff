package jar_webhook

// webhookTypeStatementItem тип события пополнения счёта
const webhookTypeStatementItem = "StatementItem"

// StatementWebhook тело вебхука personal API
type StatementWebhook struct {
	Type string        `json:"type"`
	Data StatementData `json:"data"`
}

// StatementData данные события
type StatementData struct {
	Account       string        `json:"account"`
	StatementItem StatementItem `json:"statementItem"`
}

// StatementItem запись выписки
// Balance - полный баланс счёта после операции в минимальных единицах валюты
type StatementItem struct {
	ID          string `json:"id"`
	Time        int64  `json:"time"`
	Description string `json:"description,omitempty"`
	Amount      int64  `json:"amount"`
	Balance     int64  `json:"balance"`
}
