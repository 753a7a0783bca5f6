// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package client

import (
	"errors"
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/MKhiriev/go-note-sync/internal/service"
)

var (
	titleStyle  = lipgloss.NewStyle().Bold(true)
	helpStyle   = lipgloss.NewStyle().Faint(true)
	errorStyle  = lipgloss.NewStyle().Bold(true)
	bannerStyle = lipgloss.NewStyle().Border(lipgloss.RoundedBorder()).Padding(0, 1)
)

// ErrorBanner renders err as a boxed message for the terminal. Remote
// failures show their user-facing message with the failure class below it.
func ErrorBanner(err error) string {
	if err == nil {
		return ""
	}

	lines := []string{errorStyle.Render("Error")}

	var ce *service.CommunicationError
	if errors.As(err, &ce) {
		lines = append(lines, ce.Message())
		detail := fmt.Sprintf("operation %s, %s error", ce.Op, ce.Kind)
		if ce.Attempts > 0 {
			detail += fmt.Sprintf(", %d retries", ce.Attempts)
		}
		lines = append(lines, helpStyle.Render(detail))
	} else {
		lines = append(lines, err.Error())
	}

	return bannerStyle.Render(strings.Join(lines, "\n")) + "\n"
}
