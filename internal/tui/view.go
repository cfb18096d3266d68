package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/vitos/cryptopeek/internal/domain"
	"github.com/vitos/cryptopeek/internal/usecase"
)

const (
	maxPriceDigits     = 8
	maxMarketCapDigits = 3
)

func (m Model) View() string {
	var b strings.Builder

	b.WriteString(titleStyle.Render("Crypto Peek"))
	b.WriteString("\n")
	b.WriteString(m.tabsView())
	b.WriteString("\n")

	switch m.state.Tab {
	case domain.TabPrices:
		b.WriteString(mutedStyle.Render("currency: ") + accentStyle.Render(m.state.Currency.Upper()) + mutedStyle.Render("  (c to change)"))
		b.WriteString("\n")
	case domain.TabSearch:
		b.WriteString(m.search.View())
		b.WriteString("\n")
	}
	b.WriteString("\n")

	b.WriteString(m.bodyView())
	b.WriteString("\n")
	b.WriteString(m.controlsView())
	b.WriteString("\n")
	b.WriteString(m.helpView())
	b.WriteString("\n")
	b.WriteString(mutedStyle.Render("Data from CoinGecko"))

	return panelStyle.Render(b.String())
}

func (m Model) tabsView() string {
	var parts []string
	for i, tab := range domain.Tabs() {
		label := fmt.Sprintf("%d %s", i+1, tab.Label())
		if tab == m.state.Tab {
			parts = append(parts, activeTabStyle.Render(label))
		} else {
			parts = append(parts, tabStyle.Render(label))
		}
	}
	return lipgloss.JoinHorizontal(lipgloss.Top, parts...)
}

func (m Model) bodyView() string {
	switch m.state.Status {
	case usecase.StatusLoading:
		return m.spinner.View() + " Loading..."
	case usecase.StatusError:
		return errorStyle.Render("Error loading data.")
	}

	visible := m.state.Visible()
	if len(visible) == 0 {
		return "No results."
	}

	labelWidth := 0
	for _, it := range visible {
		if w := lipgloss.Width(it.Label()); w > labelWidth {
			labelWidth = w
		}
	}
	labelCol := lipgloss.NewStyle().Width(labelWidth + 2)

	rows := make([]string, 0, len(visible))
	for _, it := range visible {
		rows = append(rows, m.rowView(it, labelCol))
	}
	return strings.Join(rows, "\n")
}

func (m Model) rowView(it domain.ListItem, labelCol lipgloss.Style) string {
	cols := []string{labelCol.Render(it.Label())}
	if it.Price.Valid {
		cols = append(cols, priceStyle.Render(m.state.Currency.Upper()+" "+formatNumber(it.Price.Decimal, maxPriceDigits)))
	}
	if it.MarketCap.Valid && !it.MarketCap.Decimal.IsZero() {
		cols = append(cols, "MC $"+formatNumber(it.MarketCap.Decimal, maxMarketCapDigits))
	}
	cols = append(cols, mutedStyle.Render(it.Link()))
	return strings.Join(cols, "  ")
}

func (m Model) controlsView() string {
	s := m.state
	button := func(label string, disabled bool) string {
		if disabled {
			return disabledButtonStyle.Render(label)
		}
		return buttonStyle.Render(label)
	}

	position := "all"
	if !s.ShowAll {
		position = fmt.Sprintf("page %d/%d", s.Page+1, s.LastPage()+1)
		if s.LastPage() < 0 {
			position = "page 0/0"
		}
	}

	return lipgloss.JoinHorizontal(lipgloss.Center,
		button("Previous", s.PrevDisabled()),
		button("Show all", s.ShowAllDisabled()),
		button("Next", s.NextDisabled()),
		"  "+mutedStyle.Render(fmt.Sprintf("%s · %d items", position, len(s.Items))),
	)
}

func (m Model) helpView() string {
	parts := make([]string, 0, len(m.keys.help()))
	for _, k := range m.keys.help() {
		h := k.Help()
		parts = append(parts, h.Key+" "+h.Desc)
	}
	return helpStyle.Render(strings.Join(parts, " • "))
}
