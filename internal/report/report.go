// Package report renders the dashboard overview for a terminal.
package report

import (
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/charmbracelet/lipgloss"

	"kexpay/internal/format"
	"kexpay/internal/ledger"
	"kexpay/internal/metrics"
)

// Summary is everything the overview command prints.
type Summary struct {
	Generated    time.Time
	Overview     metrics.Overview
	NetWorth     metrics.NetWorth
	Budgets      []metrics.BudgetStatus
	BudgetsTotal metrics.BudgetOverview
	Goals        []metrics.GoalProgress
	GoalsTotal   metrics.GoalsOverview
	Transactions int
}

// FromLedger computes a Summary from the ledger's current state.
func FromLedger(l *ledger.Ledger) Summary {
	txs := l.Transactions()
	budgets := l.Budgets()
	goals := l.Goals()

	s := Summary{
		Generated:    l.Now(),
		Overview:     metrics.ComputeOverview(txs),
		NetWorth:     metrics.ComputeNetWorth(l.Accounts()),
		BudgetsTotal: metrics.ComputeBudgetOverview(budgets),
		GoalsTotal:   metrics.ComputeGoalsOverview(goals),
		Transactions: len(txs),
	}
	for _, b := range budgets {
		s.Budgets = append(s.Budgets, metrics.ComputeBudgetStatus(b))
	}
	for _, g := range goals {
		s.Goals = append(s.Goals, metrics.ComputeGoalProgress(g))
	}
	return s
}

type styles struct {
	title   lipgloss.Style
	header  lipgloss.Style
	label   lipgloss.Style
	name    lipgloss.Style
	muted   lipgloss.Style
	good    lipgloss.Style
	warn    lipgloss.Style
	bad     lipgloss.Style
	section lipgloss.Style
}

func newStyles(r *lipgloss.Renderer) styles {
	return styles{
		title:   r.NewStyle().Bold(true).Foreground(lipgloss.Color("86")),
		header:  r.NewStyle().Bold(true).Foreground(lipgloss.Color("4")),
		label:   r.NewStyle().Width(14).Foreground(lipgloss.Color("245")),
		name:    r.NewStyle().Width(18),
		muted:   r.NewStyle().Foreground(lipgloss.Color("241")),
		good:    r.NewStyle().Foreground(lipgloss.Color("42")),
		warn:    r.NewStyle().Foreground(lipgloss.Color("214")),
		bad:     r.NewStyle().Foreground(lipgloss.Color("196")),
		section: r.NewStyle().MarginTop(1),
	}
}

// Render writes s to w. Colours are only emitted when w is a terminal.
func Render(w io.Writer, s Summary) error {
	st := newStyles(lipgloss.NewRenderer(w))

	var b strings.Builder
	b.WriteString(st.title.Render("KeX-Pay overview · "+format.MonthTitle(s.Generated)) + "\n")
	b.WriteString(st.section.Render(summaryBlock(st, s)) + "\n")
	if len(s.Budgets) > 0 {
		b.WriteString(st.section.Render(budgetBlock(st, s)) + "\n")
	}
	if len(s.Goals) > 0 {
		b.WriteString(st.section.Render(goalBlock(st, s)) + "\n")
	}

	_, err := io.WriteString(w, b.String())
	return err
}

func row(st styles, label, value string) string {
	return st.label.Render(label) + value
}

func summaryBlock(st styles, s Summary) string {
	o := s.Overview
	lines := []string{
		row(st, "Net worth", format.SignedCompactCurrency(s.NetWorth.Total)),
		row(st, "Income", format.Currency(o.Totals.TotalIncome)),
		row(st, "Expenses", format.Currency(o.Totals.TotalExpense)),
		row(st, "Balance", balanceStyle(st, o.Totals.Balance).Render(format.SignedCurrency(o.Totals.Balance))),
		row(st, "Savings rate", format.Percent(o.SavingsRate)),
		row(st, "Health score", healthStyle(st, o.HealthScore).Render(fmt.Sprintf("%d/100", o.HealthScore))),
		row(st, "Transactions", fmt.Sprintf("%d", s.Transactions)),
	}
	if o.TopCategory != nil {
		top := o.TopCategory
		lines = append(lines, row(st, "Top category",
			fmt.Sprintf("%s %s", top.Name, st.muted.Render(fmt.Sprintf("(%s, %s)", format.Currency(top.Amount), format.Percent(top.Percent))))))
	} else {
		lines = append(lines, row(st, "Top category", st.muted.Render("none")))
	}
	return lipgloss.JoinVertical(lipgloss.Left, lines...)
}

func budgetBlock(st styles, s Summary) string {
	lines := []string{st.header.Render("Budgets")}
	for _, b := range s.Budgets {
		lines = append(lines, "  "+st.name.Render(b.Name)+
			fmt.Sprintf("%s / %s  %4s  ", format.Currency(b.Spent), format.Currency(b.Budget), format.Percent(b.PercentUsed))+
			budgetStyle(st, b.Status).Render(b.StatusLabel))
	}
	t := s.BudgetsTotal
	lines = append(lines, "  "+st.muted.Render(fmt.Sprintf("%s of %s used (%s), %s left",
		format.Currency(t.TotalSpent), format.Currency(t.TotalBudget), format.Percent(t.OverallPercent), format.SignedCurrency(t.TotalRemaining))))
	return lipgloss.JoinVertical(lipgloss.Left, lines...)
}

func goalBlock(st styles, s Summary) string {
	lines := []string{st.header.Render("Goals")}
	for _, g := range s.Goals {
		status := st.muted.Render(fmt.Sprintf("%s/month until %s", format.Currency(g.Monthly), format.ShortDate(g.Deadline)))
		if g.Completed {
			status = st.good.Render("Completed")
		}
		lines = append(lines, "  "+st.name.Render(g.Name)+
			fmt.Sprintf("%s / %s  %4s  ", format.CompactCurrency(g.Current), format.CompactCurrency(g.Target), format.Percent(g.Percent))+status)
	}
	t := s.GoalsTotal
	lines = append(lines, "  "+st.muted.Render(fmt.Sprintf("%s of %s saved (%s)",
		format.CompactCurrency(t.TotalSaved), format.CompactCurrency(t.TotalTarget), format.Percent(t.OverallPercent))))
	return lipgloss.JoinVertical(lipgloss.Left, lines...)
}

func balanceStyle(st styles, balance int64) lipgloss.Style {
	if balance < 0 {
		return st.bad
	}
	return st.good
}

func healthStyle(st styles, score int) lipgloss.Style {
	switch {
	case score >= 70:
		return st.good
	case score >= 40:
		return st.warn
	default:
		return st.bad
	}
}

func budgetStyle(st styles, state metrics.BudgetState) lipgloss.Style {
	switch state {
	case metrics.BudgetOverLimit:
		return st.bad
	case metrics.BudgetCaution:
		return st.warn
	default:
		return st.good
	}
}
