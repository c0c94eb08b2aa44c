package pixedit

// Catalog arranges filter names into display categories for menu
// rendering. It is pure presentation metadata; the registry remains the
// source of truth for dispatch.
type Catalog struct {
	root *catalogNode
}

type catalogNode struct {
	name     string
	children []*catalogNode
}

// NewCatalog creates a catalog with a single root category named
// "Filters".
func NewCatalog() *Catalog {
	return &Catalog{root: &catalogNode{name: "Filters"}}
}

// Add places name under the named parent category. It reports whether
// the parent was found; nothing is added when it was not.
func (c *Catalog) Add(parent, name string) bool {
	node := c.root.find(parent)
	if node == nil {
		return false
	}
	node.children = append(node.children, &catalogNode{name: name})
	return true
}

func (n *catalogNode) find(name string) *catalogNode {
	if n.name == name {
		return n
	}
	for _, child := range n.children {
		if found := child.find(name); found != nil {
			return found
		}
	}
	return nil
}

// Walk calls fn for every entry below the root in depth-first,
// insertion order. Top-level categories have depth 1.
func (c *Catalog) Walk(fn func(name string, depth int)) {
	c.root.walk(0, fn)
}

func (n *catalogNode) walk(depth int, fn func(string, int)) {
	if depth > 0 {
		fn(n.name, depth)
	}
	for _, child := range n.children {
		child.walk(depth+1, fn)
	}
}

// DefaultCatalog groups the DefaultRegistry filters the way the
// interactive menu presents them.
func DefaultCatalog() *Catalog {
	c := NewCatalog()
	c.Add("Filters", "Color Filters")
	c.Add("Color Filters", "grayscale")
	c.Add("Color Filters", "invert")
	c.Add("Color Filters", "sepia")
	c.Add("Filters", "Effects")
	c.Add("Effects", "blur")
	c.Add("Filters", "Transformations")
	c.Add("Transformations", "rotate")
	c.Add("Transformations", "flip")
	return c
}
