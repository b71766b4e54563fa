package main

import (
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"

	"connectrpc.com/connect"
	"github.com/fatih/color"

	"github.com/Denniskaninu/chama-smart-sync/internal/refcheck"
	pb "github.com/Denniskaninu/chama-smart-sync/pkg/proto"
)

var (
	errorColor   = color.New(color.FgRed, color.Bold)
	headingColor = color.New(color.Bold)
	faintColor   = color.New(color.Faint)
)

var statusColors = map[string]*color.Color{
	"pending":  color.New(color.FgYellow),
	"approved": color.New(color.FgGreen),
	"rejected": color.New(color.FgRed),
	"valid":    color.New(color.FgGreen),
	"invalid":  color.New(color.FgRed),
	"idle":     faintColor,
}

func colorStatus(status string) string {
	if c, ok := statusColors[status]; ok {
		return c.Sprint(status)
	}
	return status
}

// formatAmount renders whole shillings with thousands separators.
func formatAmount(v int64) string {
	sign := ""
	if v < 0 {
		sign = "-"
		v = -v
	}
	digits := strconv.FormatInt(v, 10)
	var b strings.Builder
	for i, d := range digits {
		if i > 0 && (len(digits)-i)%3 == 0 {
			b.WriteByte(',')
		}
		b.WriteRune(d)
	}
	return sign + "KES " + b.String()
}

func describeError(err error) string {
	var cerr *connect.Error
	if errors.As(err, &cerr) {
		return fmt.Sprintf("%s: %s", cerr.Code(), cerr.Message())
	}
	return err.Error()
}

func printGroup(out io.Writer, g *pb.Group) {
	if g == nil {
		return
	}
	fmt.Fprintf(out, "%s %s\n", headingColor.Sprint(g.Name), faintColor.Sprint(g.Id))
	fmt.Fprintf(out, "  kitty: %s\n", formatAmount(g.KittyBalance))
	names := make([]string, len(g.Members))
	for i, m := range g.Members {
		names[i] = m.Name
		if int32(i) == g.MerryGoRoundIndex {
			names[i] = "*" + m.Name
		}
	}
	fmt.Fprintf(out, "  members: %s\n", strings.Join(names, ", "))
}

func printLoan(out io.Writer, l *pb.Loan) {
	if l == nil {
		return
	}
	fmt.Fprintf(out, "loan %s: %s for %s [%s] %d for, %d against\n",
		faintColor.Sprint(l.Id), formatAmount(l.Amount), l.MemberName,
		colorStatus(l.Status), l.Approvals, l.Rejections)
}

func printHistory(out io.Writer, h *pb.ListContributionHistoryResponse) {
	for _, c := range h.Contributions {
		line := fmt.Sprintf("%s %s %s from %s (ref %s)",
			faintColor.Sprint(c.Date), headingColor.Sprint(c.GroupName),
			formatAmount(c.Amount), c.MemberName, c.Ref)
		if c.Check != nil {
			line += " " + colorStatus(c.Check.Status)
		}
		fmt.Fprintln(out, line)
	}
	fmt.Fprintf(out, "You have contributed %s\n", formatAmount(h.TotalContributed))
}

func printEvent(out io.Writer, ev *pb.GroupEvent) {
	if ev.Resync {
		fmt.Fprintln(out, faintColor.Sprint("(fell behind, showing latest state)"))
	}
	switch {
	case ev.Kind == "group" && ev.Group != nil:
		printGroup(out, ev.Group)
	case ev.Contribution != nil:
		fmt.Fprintf(out, "+ %s from %s (ref %s)\n",
			formatAmount(ev.Contribution.Amount), ev.Contribution.MemberName, ev.Contribution.Ref)
		if ev.Group != nil {
			fmt.Fprintf(out, "  kitty: %s\n", formatAmount(ev.Group.KittyBalance))
		}
	case ev.Loan != nil:
		printLoan(out, ev.Loan)
	case ev.Message != nil:
		fmt.Fprintf(out, "%s: %s\n", faintColor.Sprint(ev.Message.SenderId), ev.Message.Text)
	case ev.Receipt != nil:
		fmt.Fprintf(out, "receipt %s %s\n", ev.Receipt.FileName, faintColor.Sprint(ev.Receipt.Url))
	case ev.Group != nil:
		fmt.Fprintf(out, "%s updated\n", ev.Kind)
		printGroup(out, ev.Group)
	default:
		fmt.Fprintf(out, "%s event\n", ev.Kind)
	}
}

func printCheck(out io.Writer, res refcheck.Result) {
	line := fmt.Sprintf("%s %s", res.Ref, colorStatus(string(res.Status)))
	if res.Status != refcheck.StatusIdle {
		line += fmt.Sprintf(" (confidence %.0f%%)", res.Verdict.Confidence*100)
	}
	if res.Degraded {
		line += " " + faintColor.Sprint("checker unavailable")
	}
	fmt.Fprintln(out, line)
}
