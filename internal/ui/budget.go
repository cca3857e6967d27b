package ui

import (
	"fmt"
	"strings"

	progressbar "github.com/charmbracelet/bubbles/progress"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"constructplan/internal/project"
	"constructplan/internal/ui/textutil"
)

// BudgetView shows the portfolio budget and its category breakdown.
type BudgetView struct {
	Budget project.BudgetSummary
	bar    progressbar.Model
}

// Ensure BudgetView implements View.
var _ View = (*BudgetView)(nil)

func NewBudgetView(b project.BudgetSummary) *BudgetView {
	return &BudgetView{
		Budget: b,
		bar:    progressbar.New(progressbar.WithSolidFill(ColorAccent), progressbar.WithWidth(30)),
	}
}

func (v *BudgetView) Init() tea.Cmd { return nil }

func (v *BudgetView) Update(tea.Msg) (View, tea.Cmd) { return v, nil }

func (v *BudgetView) View() string {
	var b strings.Builder
	b.WriteString(Styles.Title.Render("Budget Overview") + "\n\n")

	card := func(title, value string) string {
		return Styles.Card.Width(18).Render(Styles.Muted.Render(title) + "\n" + lipgloss.NewStyle().Bold(true).Render(value))
	}
	b.WriteString(lipgloss.JoinHorizontal(lipgloss.Top,
		card("Total Budget", textutil.Money(v.Budget.Total)),
		card("Spent", textutil.Money(v.Budget.Spent)),
		card("Remaining", textutil.Money(v.Budget.Remaining())),
	) + "\n\n")

	fmt.Fprintf(&b, "  %s %d%% of budget spent\n\n", v.bar.ViewAs(float64(v.Budget.SpentPercent())/100), v.Budget.SpentPercent())

	b.WriteString(Styles.Section.Render("Budget Breakdown") + "\n")
	for _, c := range v.Budget.Categories {
		fmt.Fprintf(&b, "  %s %s  %s / %s\n",
			textutil.PadRightVisual(c.Category, 12),
			textutil.Bar(c.Share, 20),
			textutil.Money(c.Spent),
			textutil.Money(c.Allocated))
	}
	return b.String()
}
