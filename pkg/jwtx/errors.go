package jwtx

import "errors"

var (
	// ErrExpired means the token's exp claim has passed.
	ErrExpired = errors.New("jwtx: token expired")

	// ErrNotYetValid means the token's nbf claim is in the future.
	ErrNotYetValid = errors.New("jwtx: token not yet valid")

	// ErrIssuer means the iss claim does not match the expected issuer.
	ErrIssuer = errors.New("jwtx: unexpected issuer")

	// ErrNoKey means no public key is registered for the token's kid.
	ErrNoKey = errors.New("jwtx: key not found")
)
