package layout

// LayoutMode determines which chrome rows are visible
type LayoutMode int

const (
	LayoutFull    LayoutMode = iota // Header + Carousel + Footer
	LayoutNoTitle                   // Carousel + Footer
	LayoutBare                      // Carousel only
)

// Manager splits the window into the title row, the carousel and the
// footer row, dropping chrome on short terminals.
type Manager struct {
	mode LayoutMode

	totalWidth  int
	totalHeight int

	headerHeight int
	footerHeight int

	// Configuration
	minCarouselHeight int
	chromeHeight      int
}

// NewManager creates a new layout manager
func NewManager() *Manager {
	return &Manager{
		minCarouselHeight: 6,
		chromeHeight:      1,
	}
}

// Resize recalculates layout based on new dimensions
func (m *Manager) Resize(width, height int) {
	m.totalWidth = max(0, width)
	m.totalHeight = max(0, height)

	switch {
	case m.totalHeight >= m.minCarouselHeight+2*m.chromeHeight:
		m.mode = LayoutFull
		m.headerHeight = m.chromeHeight
		m.footerHeight = m.chromeHeight
	case m.totalHeight >= m.minCarouselHeight+m.chromeHeight:
		m.mode = LayoutNoTitle
		m.headerHeight = 0
		m.footerHeight = m.chromeHeight
	default:
		m.mode = LayoutBare
		m.headerHeight = 0
		m.footerHeight = 0
	}
}

// Mode returns the current layout mode
func (m *Manager) Mode() LayoutMode {
	return m.mode
}

// Width returns the total width
func (m *Manager) Width() int {
	return m.totalWidth
}

// Height returns the total height
func (m *Manager) Height() int {
	return m.totalHeight
}

// HeaderHeight returns the title row height, zero when hidden.
func (m *Manager) HeaderHeight() int {
	return m.headerHeight
}

// FooterHeight returns the footer row height, zero when hidden.
func (m *Manager) FooterHeight() int {
	return m.footerHeight
}

// CarouselY returns the screen row the carousel starts on.
func (m *Manager) CarouselY() int {
	return m.headerHeight
}

// CarouselHeight returns the rows left for the carousel.
func (m *Manager) CarouselHeight() int {
	return max(0, m.totalHeight-m.headerHeight-m.footerHeight)
}

// FooterY returns the footer row.
func (m *Manager) FooterY() int {
	return m.totalHeight - m.footerHeight
}

// ShowHeader returns whether the title row should be shown
func (m *Manager) ShowHeader() bool {
	return m.mode == LayoutFull
}

// ShowFooter returns whether the footer should be shown
func (m *Manager) ShowFooter() bool {
	return m.mode != LayoutBare
}
