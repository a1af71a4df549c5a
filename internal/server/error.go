package server

import (
	"net/http"
)

func httpError(w http.ResponseWriter, status int, errString string) {
	if errString == "" {
		errString = http.StatusText(status)
	}
	http.Error(w, errString, status)
}
