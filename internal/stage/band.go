// Package stage renders a marquee band as a fixed-width strip of terminal
// cells. It implements the engine's Stage contract: it owns the template
// chip and its clones, receives translation writes, and composites every
// placed chip into a single styled row.
package stage

import (
	"math"
	"sort"
	"strings"
	"sync"

	"github.com/charmbracelet/lipgloss"

	"marquee/internal/marquee"
)

// templateNode is the id of the slide that owns the original chip.
const templateNode marquee.NodeID = 0

type node struct {
	x      float64
	placed bool
}

// Band is a terminal-cell rendering surface for one marquee.
type Band struct {
	mu sync.Mutex

	chip  string
	style lipgloss.Style
	chipW int
	chipH int

	width   int
	left    int
	height  int
	markers map[string]bool

	nodes map[marquee.NodeID]*node
	order []marquee.NodeID
	next  marquee.NodeID
}

// NewBand creates a band with the given chip content and style. Markers are
// container attributes the engine's configuration resolver reads.
func NewBand(chip string, style lipgloss.Style, markers ...string) *Band {
	b := &Band{
		chip:    chip,
		style:   style,
		chipW:   lipgloss.Width(chip),
		chipH:   lipgloss.Height(chip),
		markers: make(map[string]bool, len(markers)),
		nodes:   make(map[marquee.NodeID]*node),
	}
	for _, m := range markers {
		b.markers[m] = true
	}
	b.nodes[templateNode] = &node{}
	b.order = append(b.order, templateNode)
	b.next = templateNode
	return b
}

// SetWidth resizes the container band.
func (b *Band) SetWidth(w int) {
	b.mu.Lock()
	defer b.mu.Unlock()
	if w < 0 {
		w = 0
	}
	b.width = w
}

// SetChip replaces the repeated content, e.g. after a config reload.
func (b *Band) SetChip(chip string) {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.chip = chip
	b.chipW = lipgloss.Width(chip)
	b.chipH = lipgloss.Height(chip)
}

// Template returns the node backing the first slide.
func (b *Band) Template() marquee.NodeID {
	return templateNode
}

// Clone appends a copy of the template to the band.
func (b *Band) Clone() marquee.NodeID {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.next++
	id := b.next
	b.nodes[id] = &node{}
	b.order = append(b.order, id)
	return id
}

// Remove detaches a cloned node.
func (b *Band) Remove(id marquee.NodeID) {
	b.mu.Lock()
	defer b.mu.Unlock()
	if id == templateNode {
		return
	}
	delete(b.nodes, id)
	for i, o := range b.order {
		if o == id {
			b.order = append(b.order[:i], b.order[i+1:]...)
			break
		}
	}
}

// Transform positions a node at x cells from the band's origin.
func (b *Band) Transform(id marquee.NodeID, x float64) {
	b.mu.Lock()
	defer b.mu.Unlock()
	if n, ok := b.nodes[id]; ok {
		n.x = x
		n.placed = true
	}
}

// ElementSize reports the chip's rendered box.
func (b *Band) ElementSize() (width, height float64) {
	b.mu.Lock()
	defer b.mu.Unlock()
	return float64(b.chipW), float64(b.chipH)
}

// ContainerSize reports the band's width and left offset.
func (b *Band) ContainerSize() (width, left float64) {
	b.mu.Lock()
	defer b.mu.Unlock()
	return float64(b.width), float64(b.left)
}

// SetContainerHeight makes the band hug the chip.
func (b *Band) SetContainerHeight(h float64) {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.height = int(math.Round(h))
}

// Marker reports a container attribute.
func (b *Band) Marker(name string) bool {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.markers[name]
}

// Nodes reports how many nodes the band currently owns.
func (b *Band) Nodes() int {
	b.mu.Lock()
	defer b.mu.Unlock()
	return len(b.nodes)
}

// View composites every placed chip into one styled row, clipping at the
// band edges. Chips never overlap: the engine spaces them one pitch apart.
func (b *Band) View() string {
	b.mu.Lock()
	defer b.mu.Unlock()
	if b.width <= 0 {
		return ""
	}

	type placement struct {
		start int
		text  string
	}
	var placed []placement
	for _, n := range b.nodes {
		if !n.placed {
			continue
		}
		start := int(math.Round(n.x))
		text := b.chip
		if start < 0 {
			cut := -start
			if cut >= len([]rune(text)) {
				continue
			}
			text = string([]rune(text)[cut:])
			start = 0
		}
		if start >= b.width {
			continue
		}
		if over := start + lipgloss.Width(text) - b.width; over > 0 {
			r := []rune(text)
			if over >= len(r) {
				continue
			}
			text = string(r[:len(r)-over])
		}
		placed = append(placed, placement{start: start, text: text})
	}
	sort.Slice(placed, func(i, j int) bool { return placed[i].start < placed[j].start })

	var sb strings.Builder
	cursor := 0
	for _, p := range placed {
		if p.start < cursor {
			continue
		}
		sb.WriteString(strings.Repeat(" ", p.start-cursor))
		sb.WriteString(b.style.Render(p.text))
		cursor = p.start + lipgloss.Width(p.text)
	}
	if cursor < b.width {
		sb.WriteString(strings.Repeat(" ", b.width-cursor))
	}
	return sb.String()
}
