package tui

import (
	"context"
	"fmt"
	"strings"
	"time"

	"product-console/internal/console"
	"product-console/internal/model"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"go.uber.org/zap"
)

const (
	inputID = iota
	inputName
	inputCategory
	inputPrice
	inputStock
	inputCount
)

var inputLabels = [inputCount]string{"Product ID", "Name", "Category", "Price", "Stock"}

type productsLoadedMsg struct {
	seq      int
	products []model.Product
	err      error
}

type productCreatedMsg struct {
	err error
}

type bannerExpiredMsg struct {
	seq int
}

// Model is the terminal product page. All controller state changes happen in
// Update; requests run as commands and report back with messages.
type Model struct {
	ctx  context.Context
	api  console.ProductAPI
	ctrl *console.Controller

	inputs    [inputCount]textinput.Model
	focused   int
	bannerTTL time.Duration
	// loadSeq identifies the newest list request; older results are dropped.
	loadSeq int

	width    int
	height   int
	quitting bool
}

// NewModel creates the page and marks the list as loading
func NewModel(ctx context.Context, api console.ProductAPI, log *zap.Logger) *Model {
	m := &Model{
		ctx:       ctx,
		api:       api,
		ctrl:      console.NewController(api, log),
		bannerTTL: console.SuccessBannerTTL,
	}

	for i := range m.inputs {
		in := textinput.New()
		in.Prompt = "> "
		in.CharLimit = 64
		in.Width = 32
		m.inputs[i] = in
	}
	m.inputs[inputID].Placeholder = "e.g. 101"
	m.inputs[inputPrice].Placeholder = "0"
	m.inputs[inputStock].Placeholder = "0"
	m.inputs[inputID].Focus()

	m.ctrl.StartLoad()
	return m
}

func (m *Model) Init() tea.Cmd {
	return tea.Batch(textinput.Blink, m.loadProducts())
}

func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		return m, nil

	case tea.KeyMsg:
		switch msg.String() {
		case "ctrl+c", "esc":
			m.quitting = true
			return m, tea.Quit
		case "tab", "down":
			m.focus((m.focused + 1) % inputCount)
			return m, nil
		case "shift+tab", "up":
			m.focus((m.focused - 1 + inputCount) % inputCount)
			return m, nil
		case "ctrl+r":
			m.ctrl.StartLoad()
			return m, m.loadProducts()
		case "enter":
			return m, m.submit()
		}

	case productsLoadedMsg:
		if msg.seq != m.loadSeq {
			return m, nil
		}
		m.ctrl.ApplyLoad(msg.products, msg.err)
		return m, nil

	case productCreatedMsg:
		if !m.ctrl.CompleteSubmit(msg.err) {
			return m, nil
		}
		m.syncInputs()
		m.ctrl.StartLoad()
		return m, tea.Batch(m.loadProducts(), m.expireBanner())

	case bannerExpiredMsg:
		m.ctrl.ExpireBanner(msg.seq)
		return m, nil
	}

	var cmd tea.Cmd
	m.inputs[m.focused], cmd = m.inputs[m.focused].Update(msg)
	return m, cmd
}

// submit hands the form to the controller. Nothing is sent while a create is
// in flight or when validation fails.
func (m *Model) submit() tea.Cmd {
	m.ctrl.SetForm(m.form())
	product, err := m.ctrl.BeginSubmit()
	if err != nil {
		return nil
	}
	return m.createProduct(product)
}

func (m *Model) loadProducts() tea.Cmd {
	m.loadSeq++
	ctx, api, seq := m.ctx, m.api, m.loadSeq
	return func() tea.Msg {
		products, err := api.ListProducts(ctx)
		return productsLoadedMsg{seq: seq, products: products, err: err}
	}
}

func (m *Model) createProduct(product model.Product) tea.Cmd {
	ctx, api := m.ctx, m.api
	return func() tea.Msg {
		_, err := api.CreateProduct(ctx, product)
		return productCreatedMsg{err: err}
	}
}

func (m *Model) expireBanner() tea.Cmd {
	b := m.ctrl.Banner()
	if b == nil || !b.Transient {
		return nil
	}
	seq := b.Seq
	return tea.Tick(m.bannerTTL, func(time.Time) tea.Msg {
		return bannerExpiredMsg{seq: seq}
	})
}

func (m *Model) focus(i int) {
	m.focused = i
	for j := range m.inputs {
		if j == i {
			m.inputs[j].Focus()
		} else {
			m.inputs[j].Blur()
		}
	}
}

func (m *Model) form() console.Form {
	return console.Form{
		ID:       m.inputs[inputID].Value(),
		Name:     m.inputs[inputName].Value(),
		Category: m.inputs[inputCategory].Value(),
		Price:    m.inputs[inputPrice].Value(),
		Stock:    m.inputs[inputStock].Value(),
	}
}

// syncInputs copies the controller's form back into the inputs
func (m *Model) syncInputs() {
	f := m.ctrl.Form()
	m.inputs[inputID].SetValue(f.ID)
	m.inputs[inputName].SetValue(f.Name)
	m.inputs[inputCategory].SetValue(f.Category)
	m.inputs[inputPrice].SetValue(f.Price)
	m.inputs[inputStock].SetValue(f.Stock)
}

func (m *Model) View() string {
	if m.quitting {
		return ""
	}

	view := m.ctrl.View()

	title := titleStyle.Render("Product Catalog")
	page := lipgloss.JoinHorizontal(lipgloss.Top, m.renderForm(view), "  ", renderList(view))
	help := helpStyle.Render("Tab/Shift+Tab: Navigate • Enter: Add product • Ctrl+R: Reload • Esc: Quit")

	parts := []string{title}
	if banner := renderBanner(view.Banner); banner != "" {
		parts = append(parts, banner)
	}
	parts = append(parts, page, help)
	return lipgloss.JoinVertical(lipgloss.Left, parts...)
}

func (m *Model) renderForm(view console.PageView) string {
	var b strings.Builder
	for i := range m.inputs {
		if i > 0 {
			b.WriteString("\n\n")
		}
		b.WriteString(labelStyle.Render(inputLabels[i]))
		b.WriteString("\n")
		b.WriteString(m.inputs[i].View())
	}

	button := buttonStyle
	if view.Submitting {
		button = disabledButtonStyle
	}
	b.WriteString("\n")
	b.WriteString(button.Render(view.SubmitLabel))

	return formStyle.Render(b.String())
}

func renderBanner(b *console.Banner) string {
	if b == nil {
		return ""
	}
	if b.Kind == console.BannerSuccess {
		return successStyle.Render("✓ " + b.Message)
	}
	return errorStyle.Render("✗ " + b.Message)
}

func renderList(view console.PageView) string {
	if view.Placeholder != "" {
		return placeholderStyle.Render(view.Placeholder)
	}

	cards := make([]string, 0, len(view.Products))
	for _, p := range view.Products {
		cards = append(cards, renderCard(p))
	}
	return lipgloss.JoinVertical(lipgloss.Left, cards...)
}

func renderCard(p console.ProductView) string {
	header := fmt.Sprintf("%s  %s", cardNameStyle.Render(p.Name), fieldLabelStyle.Render("ID: "+p.ID))
	body := fmt.Sprintf("%s %s\n%s %s\n%s %s",
		fieldLabelStyle.Render("Category:"), p.Category,
		fieldLabelStyle.Render("Price:"), p.Price,
		fieldLabelStyle.Render("Stock:"), p.Stock,
	)
	return cardStyle.Render(header + "\n" + body)
}
