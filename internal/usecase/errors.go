package usecase

// Códigos usados pelos handlers para mapear o status HTTP.
const (
	CodeValidation         = "VALIDATION_ERROR"
	CodeNotAuthenticated   = "NOT_AUTHENTICATED"
	CodeLeadNotFound       = "LEAD_NOT_FOUND"
	CodeLeadsNotAuthorized = "LEADS_NOT_AUTHORIZED"
	CodeAuthUpdateFailed   = "AUTH_UPDATE_FAILED"
	CodeAuthGateway        = "AUTH_GATEWAY_ERROR"
	CodeDatabase           = "DATABASE_ERROR"
)

type DomainError struct {
	Code    string
	Message string
}

func (e *DomainError) Error() string {
	return e.Message
}

type TechnicalError struct {
	Code    string
	Message string
}

func (e *TechnicalError) Error() string {
	return e.Message
}

func ErrNotAuthenticated() *DomainError {
	return &DomainError{Code: CodeNotAuthenticated, Message: "Usuário não autenticado"}
}

func ErrLeadNotAuthorized() *DomainError {
	// Mesma mensagem para "não existe" e "não é seu": não vazamos a
	// existência de leads de outros usuários.
	return &DomainError{Code: CodeLeadNotFound, Message: "Lead não encontrado ou não autorizado"}
}
