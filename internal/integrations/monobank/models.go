package monobank

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}

// Статусы инвойса платёжного провайдера
const (
	InvoiceStatusCreated    = "created"
	InvoiceStatusProcessing = "processing"
	InvoiceStatusHold       = "hold"
	InvoiceStatusSuccess    = "success"
	InvoiceStatusFailure    = "failure"
	InvoiceStatusReversed   = "reversed"
	InvoiceStatusExpired    = "expired"
)

// MerchantPaymInfo данные мерчанта, прикрепляемые к инвойсу
// Reference возвращается провайдером в вебхуке и используется для корреляции с бронированием
type MerchantPaymInfo struct {
	Reference   string `json:"reference"`
	Destination string `json:"destination,omitempty"`
}

// CreateInvoiceRequest запрос на создание инвойса
// Amount указывается в минимальных единицах валюты (копейках)
type CreateInvoiceRequest struct {
	Amount           int64            `json:"amount"`
	Ccy              int              `json:"ccy"`
	MerchantPaymInfo MerchantPaymInfo `json:"merchantPaymInfo"`
	RedirectURL      string           `json:"redirectUrl,omitempty"`
	WebHookURL       string           `json:"webHookUrl,omitempty"`
	Validity         int64            `json:"validity,omitempty"`
}

// Invoice ответ провайдера на создание инвойса
type Invoice struct {
	InvoiceID string `json:"invoiceId"`
	PageURL   string `json:"pageUrl"`
}

// InvoiceStatus текущее состояние инвойса
// Та же структура приходит в теле вебхука
type InvoiceStatus struct {
	InvoiceID     string `json:"invoiceId"`
	Status        string `json:"status"`
	Amount        int64  `json:"amount"`
	Ccy           int    `json:"ccy"`
	Reference     string `json:"reference"`
	FailureReason string `json:"failureReason,omitempty"`
	ModifiedDate  string `json:"modifiedDate,omitempty"`
}

// IsPaid возвращает true, если инвойс успешно оплачен
func (s *InvoiceStatus) IsPaid() bool {
	return s.Status == InvoiceStatusSuccess
}

// Jar банка для сбора донатов из personal API провайдера
// Balance и Goal в минимальных единицах валюты
type Jar struct {
	ID           string `json:"id"`
	SendID       string `json:"sendId"`
	Title        string `json:"title"`
	Description  string `json:"description"`
	CurrencyCode int    `json:"currencyCode"`
	Balance      int64  `json:"balance"`
	Goal         *int64 `json:"goal,omitempty"`
}

// clientInfo ответ personal API /personal/client-info (интересуют только банки)
type clientInfo struct {
	ClientID string `json:"clientId"`
	Name     string `json:"name"`
	Jars     []Jar  `json:"jars"`
}

// apiError тело ошибки провайдера
type apiError struct {
	ErrCode string `json:"errCode"`
	ErrText string `json:"errText"`
}
