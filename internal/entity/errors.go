package entity

import "errors"

// Erros de domínio compartilhados entre usecases e repositórios.
var (
	ErrUsuarioNotFound   = errors.New("usuário não encontrado")
	ErrImovelNotFound    = errors.New("imóvel não encontrado")
	ErrTransacaoNotFound = errors.New("transação não encontrada")
	ErrFavoritoNotFound  = errors.New("favorito não encontrado")

	ErrEmailAlreadyExists = errors.New("email já cadastrado")
	ErrFavoritoDuplicado  = errors.New("imóvel já está nos favoritos")

	ErrTemplateDesconhecido = errors.New("modelo de processo desconhecido")
	ErrEtapaInvalida        = errors.New("etapa inválida")
	ErrStatusInvalido       = errors.New("status de transação inválido")

	ErrUploadFalhou = errors.New("falha no upload do arquivo")
)
