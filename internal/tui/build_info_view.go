// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package tui

import (
	"strings"

	"github.com/MKhiriev/go-register/models"
)

func renderBuildInfoFooter(info models.AppBuildInfo) string {
	var b strings.Builder

	b.WriteString("go-register ")
	b.WriteString(valueOrNA(info.BuildVersion()))
	b.WriteString(" (")
	b.WriteString(valueOrNA(info.BuildCommit()))
	b.WriteString(", ")
	b.WriteString(valueOrNA(info.BuildDate()))
	b.WriteString(")")

	return b.String()
}

func valueOrNA(v string) string {
	v = strings.TrimSpace(v)
	if v == "" {
		return "N/A"
	}
	return v
}
