package usecase

// DomainError é um erro de regra de negócio: entrada que o operador pode
// corrigir (modelo desconhecido, imóvel de outro corretor, status inválido).
type DomainError struct {
	Code    string
	Message string
	Err     error
}

func (e *DomainError) Error() string {
	return e.Message
}

func (e *DomainError) Unwrap() error {
	return e.Err
}

func IsDomainError(err error) bool {
	_, ok := err.(*DomainError)
	return ok
}

// TechnicalError é falha de infraestrutura (banco, fila, host de mídia).
// Sempre terminal: nenhuma operação é re-tentada automaticamente, o
// operador repete a ação manualmente.
type TechnicalError struct {
	Code    string
	Message string
	Err     error
}

func (e *TechnicalError) Error() string {
	return e.Message
}

func (e *TechnicalError) Unwrap() error {
	return e.Err
}

func IsTechnicalError(err error) bool {
	_, ok := err.(*TechnicalError)
	return ok
}
