package domain

import (
	"errors"
	"fmt"
)

// AuthError indica falha na troca de credenciais com a API da Fudo ou
// falha de autenticação repetida que não pôde ser resolvida com renovação
type AuthError struct {
	StatusCode int
	Message    string
}

func (e *AuthError) Error() string {
	if e.StatusCode > 0 {
		return fmt.Sprintf("erro de autenticação na API da Fudo (status %d): %s", e.StatusCode, e.Message)
	}
	return fmt.Sprintf("erro de autenticação na API da Fudo: %s", e.Message)
}

// NewAuthError cria um erro de autenticação com o status e a mensagem
// retornados pela API
func NewAuthError(statusCode int, message string) *AuthError {
	return &AuthError{StatusCode: statusCode, Message: message}
}

// IsAuthError verifica se o erro (ou algum erro encadeado) é um AuthError
func IsAuthError(err error) bool {
	var authErr *AuthError
	return errors.As(err, &authErr)
}

// FetchError indica falha de transporte ou HTTP ao buscar uma página de
// vendas, depois de esgotadas as tentativas de retry
type FetchError struct {
	Page       int
	StatusCode int
	Err        error
}

func (e *FetchError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("erro ao buscar página %d de vendas (status %d): %v", e.Page, e.StatusCode, e.Err)
	}
	return fmt.Sprintf("erro ao buscar página %d de vendas (status %d)", e.Page, e.StatusCode)
}

func (e *FetchError) Unwrap() error {
	return e.Err
}

// NewFetchError cria um erro de busca com o contexto da página afetada
func NewFetchError(page, statusCode int, err error) *FetchError {
	return &FetchError{Page: page, StatusCode: statusCode, Err: err}
}

// IsFetchError verifica se o erro (ou algum erro encadeado) é um FetchError
func IsFetchError(err error) bool {
	var fetchErr *FetchError
	return errors.As(err, &fetchErr)
}
