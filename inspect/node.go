package inspect

// Node is one component in the inspection tree. Components build their own
// node through InspectNode; the app stitches them together with Tree.
type Node struct {
	Type     string                 `json:"type"`
	ID       string                 `json:"id,omitempty"`
	Bounds   Bounds                 `json:"bounds"`
	Visible  bool                   `json:"visible"`
	State    map[string]interface{} `json:"state,omitempty"`
	Styles   *StyleInfo             `json:"styles,omitempty"`
	Children []*Node                `json:"children,omitempty"`
}

// Bounds is the size a component was last given, in cells.
type Bounds struct {
	Width  int `json:"width"`
	Height int `json:"height"`
}

// StyleInfo is the part of a lipgloss.Style worth looking at when a
// component renders wrong.
type StyleInfo struct {
	Foreground  string `json:"foreground,omitempty"`
	Background  string `json:"background,omitempty"`
	Bold        bool   `json:"bold,omitempty"`
	Border      string `json:"border,omitempty"`
	BorderColor string `json:"border_color,omitempty"`
	// Padding is top, right, bottom, left.
	Padding []int `json:"padding,omitempty"`
	// AppliedStyles names the package styles the component renders with.
	AppliedStyles []string `json:"applied_styles,omitempty"`
}

// NewNode returns a visible node of the given type. The With methods all
// return the node so calls can be chained.
func NewNode(nodeType string) *Node {
	return &Node{
		Type:    nodeType,
		Visible: true,
		State:   make(map[string]interface{}),
	}
}

func (n *Node) WithID(id string) *Node {
	n.ID = id
	return n
}

func (n *Node) WithBounds(width, height int) *Node {
	n.Bounds = Bounds{Width: width, Height: height}
	return n
}

// WithVisible marks whether the component is drawn at its current size.
func (n *Node) WithVisible(visible bool) *Node {
	n.Visible = visible
	return n
}

func (n *Node) WithState(key string, value interface{}) *Node {
	if n.State == nil {
		n.State = make(map[string]interface{})
	}
	n.State[key] = value
	return n
}

func (n *Node) WithStyles(styles *StyleInfo) *Node {
	n.Styles = styles
	return n
}

func (n *Node) AddChild(child *Node) *Node {
	n.Children = append(n.Children, child)
	return n
}
