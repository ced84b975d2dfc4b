// Package printer writes styled status lines for CLI commands.
package printer

import (
	"context"
	"fmt"
	"io"
	"os"

	lipgloss "charm.land/lipgloss/v2"

	"github.com/colonyops/lobby/internal/core/styles"
	"github.com/colonyops/lobby/internal/core/toast"
)

type ctxKey struct{}

// Printer prefixes messages with a colored severity icon.
type Printer struct {
	w io.Writer
}

func New(w io.Writer) *Printer {
	return &Printer{w: w}
}

// NewContext returns a child of ctx carrying p.
func NewContext(ctx context.Context, p *Printer) context.Context {
	return context.WithValue(ctx, ctxKey{}, p)
}

// Ctx returns the printer stored in ctx, or one writing to stdout.
func Ctx(ctx context.Context) *Printer {
	if p, ok := ctx.Value(ctxKey{}).(*Printer); ok && p != nil {
		return p
	}
	return New(os.Stdout)
}

func (p *Printer) line(icon string, style lipgloss.Style, format string, args ...any) {
	msg := fmt.Sprintf(format, args...)
	if icon != "" {
		msg = style.Render(icon) + " " + msg
	}
	_, _ = fmt.Fprintln(p.w, msg)
}

func (p *Printer) Printf(format string, args ...any) {
	p.line("", lipgloss.Style{}, format, args...)
}

func (p *Printer) Successf(format string, args ...any) {
	p.line(styles.IconNotifySuccess, lipgloss.NewStyle().Foreground(styles.ColorSuccess), format, args...)
}

func (p *Printer) Infof(format string, args ...any) {
	p.line(styles.IconNotifyInfo, lipgloss.NewStyle().Foreground(styles.ColorInfo), format, args...)
}

func (p *Printer) Warnf(format string, args ...any) {
	p.line(styles.IconNotifyWarning, lipgloss.NewStyle().Foreground(styles.ColorWarning), format, args...)
}

func (p *Printer) Errorf(format string, args ...any) {
	p.line(styles.IconNotifyError, lipgloss.NewStyle().Foreground(styles.ColorError), format, args...)
}

// Toast prints an open packet as a status line. Closed packets print nothing.
func (p *Printer) Toast(pkt toast.Packet) {
	if !pkt.Open {
		return
	}
	switch pkt.Severity {
	case toast.SeveritySuccess:
		p.Successf("%s", pkt.Message)
	case toast.SeverityError:
		p.Errorf("%s", pkt.Message)
	case toast.SeverityWarning:
		p.Warnf("%s", pkt.Message)
	default:
		p.Infof("%s", pkt.Message)
	}
}
