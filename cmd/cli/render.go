package main

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
	apisdk "github.com/hilthontt/sovereign/api-sdk"
)

const reportWidth = 72

type renderer struct {
	title  lipgloss.Style
	label  lipgloss.Style
	body   lipgloss.Style
	faint  lipgloss.Style
	frame  lipgloss.Style
	danger lipgloss.Style
}

func newRenderer(r *lipgloss.Renderer) *renderer {
	return &renderer{
		title:  r.NewStyle().Foreground(lipgloss.Color("#00D9FF")).Bold(true),
		label:  r.NewStyle().Foreground(lipgloss.Color("#FFB86C")).Bold(true),
		body:   r.NewStyle().Width(reportWidth - 4),
		faint:  r.NewStyle().Faint(true),
		frame:  r.NewStyle().Border(lipgloss.RoundedBorder()).BorderForeground(lipgloss.Color("#6272A4")).Padding(0, 1),
		danger: r.NewStyle().Foreground(lipgloss.Color("#F93939")),
	}
}

func (r *renderer) Report(res *apisdk.ExecuteResponse) string {
	lines := []string{
		r.title.Render(res.Status),
		"",
		r.body.Render(res.IntelligenceReport),
		"",
		r.label.Render("World  ") + res.WorldContext,
		r.label.Render("Health ") + res.SystemHealth,
	}
	if res.ExecutionID != "" {
		lines = append(lines, r.faint.Render("execution "+res.ExecutionID))
	}

	return r.frame.Render(strings.Join(lines, "\n"))
}

func (r *renderer) Health(res *apisdk.HealthResponse) string {
	return r.frame.Render(lipgloss.JoinVertical(lipgloss.Left,
		r.title.Render(strings.ToUpper(res.Status)),
		r.label.Render("Uptime ")+res.Uptime,
		r.label.Render("Health ")+res.SystemHealth,
	))
}

func (r *renderer) Error(err error) string {
	return r.danger.Render("■ ERROR: ") + err.Error()
}
