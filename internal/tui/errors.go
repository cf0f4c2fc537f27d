// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package tui

import (
	"errors"

	"github.com/MKhiriev/go-portfolio/internal/adapter"
	"github.com/MKhiriev/go-portfolio/internal/service"
)

var ErrUserQuit = errors.New("user quit the console")

// errorText turns err into the text shown to the admin. Local validation
// errors get a fixed hint; everything else goes through
// [adapter.FormatError].
func errorText(err error) string {
	if err == nil {
		return ""
	}

	switch {
	case errors.Is(err, service.ErrInvalidDataProvided):
		return "Please fill in the required fields."
	case errors.Is(err, service.ErrEmptyFilePath):
		return "Please choose a file first."
	}

	return adapter.FormatError(err)
}
