package admin

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"

	"golang.org/x/term"
)

// readPassword is a test seam for term.ReadPassword.
var readPassword = term.ReadPassword

// ErrPasswordMismatch is returned when the confirmation differs.
var ErrPasswordMismatch = errors.New("passwords do not match")

// GetPassword prints prompt to w and reads a password from the terminal
// without echo. The caller should wipe the returned slice.
func GetPassword(w io.Writer, prompt string) ([]byte, error) {
	if _, err := fmt.Fprint(w, prompt); err != nil {
		return nil, err
	}
	pw, err := readPassword(int(os.Stdin.Fd()))
	fmt.Fprintln(w)
	if err != nil {
		return nil, err
	}
	return pw, nil
}

// GetConfirmedPassword asks for the password twice.
func GetConfirmedPassword(w io.Writer) (string, error) {
	first, err := GetPassword(w, "Enter password: ")
	if err != nil {
		return "", err
	}
	defer wipe(first)

	second, err := GetPassword(w, "Repeat password: ")
	if err != nil {
		return "", err
	}
	defer wipe(second)

	if !bytes.Equal(first, second) {
		return "", ErrPasswordMismatch
	}
	return string(first), nil
}

func wipe(b []byte) {
	for i := range b {
		b[i] = 0
	}
}
