package models

// Alphabet for generated session identifiers.
var Alphabet = "0123456789ABCDEFGHIJKLMNOPQRSTUVWXYZ"

type ErrorResponse struct {
	Error string `json:"error"`
}
