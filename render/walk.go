package render

import "github.com/lixenwraith/hawktui/element"

// Walk visits the forest post-order in list order: children strictly before their parent
func Walk(roots []element.Element, fn func(element.Element)) {
	for _, e := range roots {
		Walk(e.Children(), fn)
		fn(e)
	}
}
