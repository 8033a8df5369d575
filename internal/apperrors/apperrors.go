// Package apperrors defines the error conditions the service distinguishes
// and their HTTP mappings.
package apperrors

import (
	"errors"
	"fmt"
	"net/http"
)

// UserNotFoundError indicates a user id that does not exist.
type UserNotFoundError struct {
	UserID string
}

func (e *UserNotFoundError) Error() string {
	return fmt.Sprintf("User with id '%s' not found.", e.UserID)
}

// UserExistsError indicates an email address that is already registered.
type UserExistsError struct {
	Email string
}

func (e *UserExistsError) Error() string {
	return fmt.Sprintf("User with email '%s' already exists.", e.Email)
}

// CardNotFoundError indicates a card definition that does not exist, either
// by id or by its (type, issuer) pair.
type CardNotFoundError struct {
	CardID string
	Type   string
	Issuer string
}

func (e *CardNotFoundError) Error() string {
	if e.CardID != "" {
		return fmt.Sprintf("Card with id '%s' not found.", e.CardID)
	}
	return fmt.Sprintf("Card with type '%s' and issuer '%s' not found.", e.Type, e.Issuer)
}

// CardExistsError indicates a (type, issuer) pair already in the catalogue.
type CardExistsError struct {
	Type   string
	Issuer string
}

func (e *CardExistsError) Error() string {
	return fmt.Sprintf("Card with type '%s' and issuer '%s' already exists.", e.Type, e.Issuer)
}

// MerchantNotFoundError indicates a merchant id that does not exist.
type MerchantNotFoundError struct {
	MerchantID string
}

func (e *MerchantNotFoundError) Error() string {
	return fmt.Sprintf("Merchant with id '%s' not found.", e.MerchantID)
}

// MerchantExistsError indicates a merchant name already registered.
type MerchantExistsError struct {
	Name string
}

func (e *MerchantExistsError) Error() string {
	return fmt.Sprintf("Merchant with name '%s' already exists.", e.Name)
}

// TransactionNotFoundError indicates a transaction id that does not exist.
type TransactionNotFoundError struct {
	TransactionID string
}

func (e *TransactionNotFoundError) Error() string {
	return fmt.Sprintf("Transaction with id '%s' not found.", e.TransactionID)
}

// UserCardNotFoundError indicates a wallet card name the user does not have.
type UserCardNotFoundError struct {
	UserID   string
	CardName string
}

func (e *UserCardNotFoundError) Error() string {
	return fmt.Sprintf("User with id '%s' has no card with name '%s'.", e.UserID, e.CardName)
}

// UserCardExistsError indicates a wallet card name already in use by the
// user. Names are compared case-insensitively.
type UserCardExistsError struct {
	UserID   string
	CardName string
}

func (e *UserCardExistsError) Error() string {
	return fmt.Sprintf("User with id '%s' already has a card with name '%s'.", e.UserID, e.CardName)
}

// NoCardsError indicates a recommendation request for a user with an empty
// wallet. This is the only request-level failure the engine raises itself.
type NoCardsError struct {
	UserID string
}

func (e *NoCardsError) Error() string {
	return fmt.Sprintf("User with id '%s' has no cards.", e.UserID)
}

// ErrIncorrectCredentials is returned on a failed login. The message never
// says whether the email or the password was wrong.
var ErrIncorrectCredentials = errors.New("Incorrect credentials.")

// Status maps an error to the HTTP status code the API responds with.
func Status(err error) int {
	var (
		userNotFound        *UserNotFoundError
		userExists          *UserExistsError
		cardNotFound        *CardNotFoundError
		cardExists          *CardExistsError
		merchantNotFound    *MerchantNotFoundError
		merchantExists      *MerchantExistsError
		transactionNotFound *TransactionNotFoundError
		userCardNotFound    *UserCardNotFoundError
		userCardExists      *UserCardExistsError
		noCards             *NoCardsError
	)

	switch {
	case errors.As(err, &userNotFound),
		errors.As(err, &merchantNotFound),
		errors.As(err, &transactionNotFound),
		errors.As(err, &userCardNotFound):
		return http.StatusNotFound
	case errors.As(err, &cardNotFound):
		// A missing catalogue id is a plain 404; an unknown (type, issuer)
		// pair on a wallet request is rejected as unprocessable.
		if cardNotFound.CardID != "" {
			return http.StatusNotFound
		}
		return http.StatusUnprocessableEntity
	case errors.As(err, &userExists),
		errors.As(err, &cardExists),
		errors.As(err, &merchantExists):
		return http.StatusConflict
	case errors.As(err, &userCardExists),
		errors.As(err, &noCards):
		return http.StatusUnprocessableEntity
	case errors.Is(err, ErrIncorrectCredentials):
		return http.StatusUnauthorized
	default:
		return http.StatusInternalServerError
	}
}
