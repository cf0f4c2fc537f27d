// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package tui

import (
	"github.com/MKhiriev/go-portfolio/models"
)

func renderBuildInfoWindow(info models.AppBuildInfo) string {
	data := "Application: KELLYFLO portfolio admin\n" +
		"Version: " + info.BuildVersion() + "\n" +
		"Date: " + info.BuildDate() + "\n" +
		"Commit: " + info.BuildCommit()

	return renderPage("ABOUT", data, "esc: back")
}
