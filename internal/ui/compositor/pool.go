package compositor

import (
	"sync"

	uv "github.com/charmbracelet/ultraviolet"
)

// cellPool reuses cells while drawing. Screen.SetCell copies the cell value,
// so a cell can go back to the pool as soon as SetCell returns.
var cellPool = sync.Pool{
	New: func() any { return &uv.Cell{} },
}

func getCell() *uv.Cell {
	c, _ := cellPool.Get().(*uv.Cell)
	if c == nil {
		return &uv.Cell{}
	}
	*c = uv.Cell{}
	return c
}

func putCell(c *uv.Cell) {
	cellPool.Put(c)
}
